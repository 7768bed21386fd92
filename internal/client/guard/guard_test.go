package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobdesk/jobdesk/internal/client/models"
)

var (
	public    = Destination{Name: "jobs"}
	login     = Destination{Name: "login", GuestOnly: true}
	protected = Destination{Name: "profile", RequiresAuth: true}
	recruiter = Destination{Name: "dashboard", RequiredRole: models.RoleRecruit}
	candidate = Destination{Name: "my-applications", RequiredRole: models.RoleCandidate}
)

func sessionWith(role models.Role) *models.Session {
	return &models.Session{
		AccessToken: "tok",
		User:        models.User{ID: "u1", Email: "a@b.com", Role: role},
	}
}

func TestDecide_Unauthenticated(t *testing.T) {
	assert.Equal(t, Allow, Decide(nil, public))
	assert.Equal(t, Allow, Decide(nil, login))
	assert.Equal(t, RedirectLogin, Decide(nil, protected))
	assert.Equal(t, RedirectLogin, Decide(nil, recruiter),
		"role-gated implies auth-gated")
}

func TestDecide_AuthenticatedOnGuestOnly(t *testing.T) {
	assert.Equal(t, RedirectHome, Decide(sessionWith(models.RoleCandidate), login))
	assert.Equal(t, RedirectHome, Decide(sessionWith(models.RoleRecruit), login))
}

func TestDecide_RoleMismatchIsDenyNotRedirect(t *testing.T) {
	assert.Equal(t, Deny, Decide(sessionWith(models.RoleCandidate), recruiter))
	assert.Equal(t, Deny, Decide(sessionWith(models.RoleRecruit), candidate))
}

func TestDecide_MatchingRole(t *testing.T) {
	assert.Equal(t, Allow, Decide(sessionWith(models.RoleRecruit), recruiter))
	assert.Equal(t, Allow, Decide(sessionWith(models.RoleCandidate), candidate))
	assert.Equal(t, Allow, Decide(sessionWith(models.RoleCandidate), protected))
	assert.Equal(t, Allow, Decide(sessionWith(models.RoleRecruit), public))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect-login", RedirectLogin.String())
	assert.Equal(t, "redirect-home", RedirectHome.String())
	assert.Equal(t, "deny", Deny.String())
}
