// Package session implements the single source of truth for "who is logged
// in", backed by the durable metadata store. Exactly one session is active
// per profile; re-login overwrites, never merges.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobdesk/jobdesk/internal/client/models"
	"github.com/jobdesk/jobdesk/internal/client/repositories/metadata"
	"github.com/jobdesk/jobdesk/internal/common"
	"github.com/jobdesk/jobdesk/internal/dbx"
	"github.com/jobdesk/jobdesk/internal/logging"
)

// Storage keys. These four values are the whole persisted-state surface of
// the client.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
	keyDarkMode     = "dark_mode"
)

// Store owns the persisted session. All mutations go through Establish,
// UpdateTokens, PatchUser and Teardown.
type Store struct {
	db   *sql.DB
	repo metadata.Repository
	log  logging.Logger

	mu      sync.Mutex
	current *models.Session

	onTeardown func()
}

// NewStore builds a Store over the given local database.
func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		log:  log.With("component", "session"),
	}
}

// OnTeardown registers the dependent notified when the session is destroyed,
// e.g. to redirect the UI to the login surface.
func (s *Store) OnTeardown(fn func()) { s.onTeardown = fn }

// Current returns the active session, or nil when unauthenticated.
func (s *Store) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Bootstrap loads the persisted session on app start. Corrupt or partial
// stored state is cleared and treated as "unauthenticated"; this never
// fails hard.
func (s *Store) Bootstrap(ctx context.Context) *models.Session {
	access, err := s.repo.Get(ctx, keyAccessToken)
	if err != nil {
		s.log.Warn(ctx, "reading stored access token", "err", err)
		return nil
	}
	userRaw, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		s.log.Warn(ctx, "reading stored user", "err", err)
		return nil
	}

	if len(access) == 0 || len(userRaw) == 0 {
		if len(access) != 0 || len(userRaw) != 0 {
			s.clearStored(ctx) // half a session is no session
		}
		return nil
	}

	user, err := models.ParseUser(userRaw)
	if err != nil {
		s.log.Warn(ctx, "stored user record is corrupt, clearing", "err", err)
		s.clearStored(ctx)
		return nil
	}

	refresh, err := s.repo.Get(ctx, keyRefreshToken)
	if err != nil {
		s.log.Warn(ctx, "reading stored refresh token", "err", err)
		refresh = nil
	}

	sess := &models.Session{
		AccessToken:  string(access),
		RefreshToken: string(refresh),
		User:         *user,
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return sess
}

// Establish persists a fresh session after login or OTP verification. The
// three keys are written in one transaction so a concurrent bootstrap can
// never observe a half-written session.
func (s *Store) Establish(ctx context.Context, sess *models.Session) error {
	userRaw, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(sess.AccessToken)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyRefreshToken, []byte(sess.RefreshToken)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, userRaw)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return nil
}

// UpdateTokens persists a rotated token pair without touching the user
// record. Used after a transparent refresh.
func (s *Store) UpdateTokens(ctx context.Context, access, refresh string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(access)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRefreshToken, []byte(refresh))
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.current != nil {
		s.current.AccessToken = access
		s.current.RefreshToken = refresh
	}
	s.mu.Unlock()
	return nil
}

// PatchUser merges a partial user update into the persisted record, leaving
// the tokens alone.
func (s *Store) PatchUser(ctx context.Context, patch models.UserPatch) error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil
	}
	updated := s.current.User
	patch.Apply(&updated)
	s.mu.Unlock()

	raw, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, keyUser, raw); err != nil {
		return err
	}

	s.mu.Lock()
	if s.current != nil {
		s.current.User = updated
	}
	s.mu.Unlock()
	return nil
}

// Teardown destroys the session and notifies the registered dependent.
// Calling it without an active session is a no-op, which also makes the
// "teardown exactly once on auth failure" contract hold: the second caller
// finds nothing to destroy.
func (s *Store) Teardown(ctx context.Context) {
	s.mu.Lock()
	had := s.current != nil
	s.current = nil
	s.mu.Unlock()

	if !had {
		stored, err := s.repo.Get(ctx, keyAccessToken)
		if err != nil || len(stored) == 0 {
			return
		}
	}

	s.clearStored(ctx)

	if s.onTeardown != nil {
		s.onTeardown()
	}
}

// clearStored removes the session keys but keeps the dark-mode preference.
func (s *Store) clearStored(ctx context.Context) {
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUser} {
		if err := s.repo.Delete(ctx, key); err != nil {
			s.log.Warn(ctx, "clearing stored session", "key", key, "err", err)
		}
	}
}

// DarkMode reports the persisted dark-mode preference; absent means off.
func (s *Store) DarkMode(ctx context.Context) bool {
	v, err := s.repo.Get(ctx, keyDarkMode)
	if err != nil {
		return false
	}
	return string(v) == "true"
}

// SetDarkMode persists the dark-mode preference.
func (s *Store) SetDarkMode(ctx context.Context, on bool) error {
	v := "false"
	if on {
		v = "true"
	}
	return s.repo.Set(ctx, keyDarkMode, []byte(v))
}

// TokenExpiry extracts the expiry claim from a JWT access token without
// verifying the signature (the client has no key material; the claim is
// informational only).
func TokenExpiry(raw string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}
