// Package services contains the application services for the job-board
// client. Each service validates input locally, talks to the backend through
// the API client and keeps the local session state in sync. This file defines
// the authentication service: login, two-step registration, password
// recovery and logout.
package services

import (
	"context"

	"github.com/jobdesk/jobdesk/internal/client/api"
	"github.com/jobdesk/jobdesk/internal/client/models"
	"github.com/jobdesk/jobdesk/internal/client/session"
	"github.com/jobdesk/jobdesk/internal/logging"
)

// AuthService defines the authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate and establish the local session.
//   - Register: start registration; the account stays inactive until the
//     emailed OTP is verified.
//   - CompleteRegistration: verify the OTP and establish the session.
//   - ForgotPassword / ResetPassword: the recovery flow.
//   - Logout: invalidate the backend session if reachable and always tear
//     down the local one.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	CompleteRegistration(ctx context.Context, req models.CompleteRegistrationRequest) (*models.Session, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	Logout(ctx context.Context) error
}

type authService struct {
	client   api.Client
	sessions *session.Store
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, sessions *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, sessions: sessions, log: log.With("component", "auth")}
}

func (a *authService) establish(ctx context.Context, res *api.AuthResult) (*models.Session, error) {
	sess := &models.Session{
		AccessToken:  res.Token,
		RefreshToken: res.RefreshToken,
		User:         res.User,
	}
	if err := a.sessions.Establish(ctx, sess); err != nil {
		return nil, err
	}
	a.client.SetTokens(sess.AccessToken, sess.RefreshToken)
	return sess, nil
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	res, err := a.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return a.establish(ctx, res)
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return a.client.Register(ctx, req)
}

func (a *authService) CompleteRegistration(ctx context.Context, req models.CompleteRegistrationRequest) (*models.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	res, err := a.client.CompleteRegistration(ctx, req)
	if err != nil {
		return nil, err
	}
	return a.establish(ctx, res)
}

func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return a.client.ForgotPassword(ctx, req)
}

func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return a.client.ResetPassword(ctx, req)
}

// Logout tears down the local session even when the backend call fails: the
// user asked to leave, and an unreachable server must not pin them in.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "backend logout failed, clearing local session anyway", "err", err)
	}
	a.client.ClearTokens()
	a.sessions.Teardown(ctx)
	return nil
}
