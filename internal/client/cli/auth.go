package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jobdesk/jobdesk/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) currentSession() *models.Session {
	return a.sessions.Current()
}

// Register starts the two-step registration: the account becomes usable only
// after the emailed code is confirmed with the verify command.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Role (candidate/recruit)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	req := models.RegisterRequest{Name: name, Email: email, Password: password, Role: models.Role(role)}
	if err := a.authService.Register(ctx, req); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Check your email for the verification code, then run 'verify'.")
	return nil
}

// Verify confirms the emailed code and logs the new account in.
func (a *App) Verify(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	otp, err := getSimpleText(a.reader, "Enter verification code", os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.authService.CompleteRegistration(ctx, models.CompleteRegistrationRequest{Email: email, OTP: otp})
	if err != nil {
		printlnFn("Verification failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", sess.User.Name))
	return nil
}

// Login prompts for credentials and establishes the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.authService.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s (%s)", sess.User.Email, sess.User.Role))
	return nil
}

// ForgotPassword asks the backend to mail a reset token.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.authService.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: email}); err != nil {
		printlnFn("Request failed:", err.Error())
		return err
	}
	printlnFn("Check your email for the reset token, then run 'resetpw'.")
	return nil
}

// ResetPassword completes the recovery flow with the mailed token.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if err := a.authService.ResetPassword(ctx, models.ResetPasswordRequest{Token: token, Password: password}); err != nil {
		printlnFn("Reset failed:", err.Error())
		return err
	}
	printlnFn("Password updated. Please log in.")
	return nil
}

// Logout ends the session. The teardown hook prints the goodbye.
func (a *App) Logout(ctx context.Context) error {
	return a.authService.Logout(ctx)
}
