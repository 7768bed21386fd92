package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jobdesk/jobdesk/internal/client/models"
	"github.com/jobdesk/jobdesk/internal/client/session"
)

// Profile shows the account as the backend sees it.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.profileService.Get(ctx)
	if err != nil {
		printlnFn("Could not load profile:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("%s <%s> (%s)", user.Name, user.Email, user.Role))
	if user.ResumeURL != "" {
		printlnFn("Resume on file; run 'resume' to download it.")
	}

	if sess := a.sessions.Current(); sess != nil {
		if exp, err := session.TokenExpiry(sess.AccessToken); err == nil && !exp.IsZero() {
			if time.Now().After(exp) {
				printlnFn("Access token expired; it will be refreshed on the next request.")
			} else {
				printlnFn("Session valid until", exp.Format(time.RFC1123))
			}
		}
	}
	return nil
}

// EditProfile updates the name and optionally uploads an avatar or resume.
// Empty answers leave the field unchanged.
func (a *App) EditProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	avatarPath, err := getSimpleText(a.reader, "Avatar file path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	resumePath, err := getSimpleText(a.reader, "Resume file path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.profileService.Update(ctx, models.ProfileUpdate{
		Name:       name,
		AvatarPath: avatarPath,
		ResumePath: resumePath,
	})
	if err != nil {
		printlnFn("Updating profile failed:", err.Error())
		return err
	}
	printlnFn("Profile updated for", user.Email)
	return nil
}

// DownloadResume saves the stored resume locally.
func (a *App) DownloadResume(ctx context.Context) error {
	dest, err := a.profileService.DownloadResume(ctx)
	if err != nil {
		printlnFn("Download failed:", err.Error())
		return err
	}
	printlnFn("Saved resume to", dest)
	return nil
}

// ToggleDarkMode flips the persisted dark-mode preference. It survives
// logout, unlike the session keys.
func (a *App) ToggleDarkMode(ctx context.Context) error {
	on := !a.sessions.DarkMode(ctx)
	if err := a.sessions.SetDarkMode(ctx, on); err != nil {
		printlnFn("Saving preference failed:", err.Error())
		return err
	}
	if on {
		printlnFn("Dark mode on.")
	} else {
		printlnFn("Dark mode off.")
	}
	return nil
}
