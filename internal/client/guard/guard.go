// Package guard decides whether the current session may enter a destination.
//
// The decision is pure: it looks only at the session and the destination's
// declared requirements, performs no I/O and keeps no state. Callers apply
// the verdict (switch surface, print a denial) themselves.
package guard

import "github.com/jobdesk/jobdesk/internal/client/models"

// Destination declares a surface's access requirements.
type Destination struct {
	Name string

	// RequiresAuth gates the destination behind an active session.
	RequiresAuth bool

	// RequiredRole, when set, additionally restricts the destination to one
	// role. Implies RequiresAuth.
	RequiredRole models.Role

	// GuestOnly marks surfaces that make no sense while logged in, such as
	// the login and registration forms.
	GuestOnly bool
}

// Decision is the guard's verdict for an access attempt.
type Decision int

const (
	// Allow admits the session to the destination.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated visitor to the login surface.
	// The attempted destination is not remembered.
	RedirectLogin
	// RedirectHome bounces an authenticated user off a guest-only surface.
	RedirectHome
	// Deny refuses a logged-in user whose role does not match. The user
	// stays where they are and sees the refusal inline.
	Deny
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

// Decide evaluates an access attempt. sess is nil when unauthenticated.
func Decide(sess *models.Session, dest Destination) Decision {
	if sess == nil {
		if dest.RequiresAuth || dest.RequiredRole != "" {
			return RedirectLogin
		}
		return Allow
	}

	if dest.GuestOnly {
		return RedirectHome
	}
	if dest.RequiredRole != "" && sess.User.Role != dest.RequiredRole {
		// authenticated but wrong role: refuse in place, no redirect
		return Deny
	}
	return Allow
}
