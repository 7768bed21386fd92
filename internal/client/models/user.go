// Package models defines the view models and wire records exchanged with the
// job-board backend, plus the request DTOs the client submits.
package models

import "encoding/json"

// Role determines which surfaces a user may access. There is no
// finer-grained permission model.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruit   Role = "recruit"
)

// User is the account record persisted alongside the session tokens.
type User struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CompanyID string `json:"company,omitempty"`
	AvatarURL string `json:"avatar,omitempty"`
	ResumeURL string `json:"resume,omitempty"`
}

// Valid reports whether a decoded user record has the minimal shape required
// to back a session.
func (u *User) Valid() bool {
	if u.ID == "" || u.Email == "" {
		return false
	}
	return u.Role == RoleCandidate || u.Role == RoleRecruit
}

// UserPatch is a partial user update merged into the persisted record after
// a profile edit. Nil fields are left unchanged.
type UserPatch struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	CompanyID *string `json:"company,omitempty"`
	AvatarURL *string `json:"avatar,omitempty"`
	ResumeURL *string `json:"resume,omitempty"`
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.CompanyID != nil {
		u.CompanyID = *p.CompanyID
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.ResumeURL != nil {
		u.ResumeURL = *p.ResumeURL
	}
}

// Session holds the authenticated identity for the current profile.
// Exactly one session is active at a time; re-login overwrites it.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         User
}

// ParseUser decodes a persisted user record. A syntactically valid JSON blob
// that does not match the expected shape is rejected the same way as garbage.
func ParseUser(data []byte) (*User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	if !u.Valid() {
		return nil, ErrMalformedUser
	}
	return &u, nil
}
