package services

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/jobdesk/jobdesk/internal/client/api"
	"github.com/jobdesk/jobdesk/internal/client/models"
	"github.com/jobdesk/jobdesk/internal/client/session"
	"github.com/jobdesk/jobdesk/internal/common"
	"github.com/jobdesk/jobdesk/internal/filex"
	"github.com/jobdesk/jobdesk/internal/logging"
	"github.com/jobdesk/jobdesk/internal/netx"
)

// ProfileService defines the account profile operations.
type ProfileService interface {
	Get(ctx context.Context) (*models.User, error)
	Update(ctx context.Context, req models.ProfileUpdate) (*models.User, error)
	DownloadResume(ctx context.Context) (string, error)
}

type profileService struct {
	client       api.Client
	sessions     *session.Store
	downloadsDir string
	log          logging.Logger
}

// NewProfileService constructs a ProfileService. downloadsDir names the
// subdirectory resumes are saved into.
func NewProfileService(client api.Client, sessions *session.Store, downloadsDir string, log logging.Logger) ProfileService {
	return &profileService{
		client:       client,
		sessions:     sessions,
		downloadsDir: downloadsDir,
		log:          log.With("component", "profile"),
	}
}

func (s *profileService) Get(ctx context.Context) (*models.User, error) {
	return s.client.GetProfile(ctx)
}

// Update submits the multipart edit and merges the backend's view of the
// user into the persisted session record, so a later bootstrap sees the
// updated profile.
func (s *profileService) Update(ctx context.Context, req models.ProfileUpdate) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	patch := models.UserPatch{
		Name:      &user.Name,
		AvatarURL: &user.AvatarURL,
		ResumeURL: &user.ResumeURL,
	}
	if err := s.sessions.PatchUser(ctx, patch); err != nil {
		s.log.Warn(ctx, "persisting profile update locally", "err", err)
	}
	return user, nil
}

// DownloadResume fetches the current user's stored resume into the downloads
// directory and returns the local path.
func (s *profileService) DownloadResume(ctx context.Context) (string, error) {
	sess := s.sessions.Current()
	if sess == nil {
		return "", common.ErrorUnauthorized
	}
	if sess.User.ResumeURL == "" {
		return "", fmt.Errorf("%w: no resume on file", common.ErrorNotFound)
	}

	dir, err := filex.EnsureSubDir(s.downloadsDir)
	if err != nil {
		return "", err
	}

	name := path.Base(sess.User.ResumeURL)
	if name == "." || name == "/" {
		name = "resume.pdf"
	}
	dest := filepath.Join(dir, name)

	if err := netx.DownloadToFile(sess.User.ResumeURL, dest); err != nil {
		return "", err
	}
	return dest, nil
}
