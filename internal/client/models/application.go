package models

import "time"

// ApplicationStatus values. Accepted and rejected are terminal from the
// client's point of view; no path back to pending is exposed.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is a candidate's application to a posting.
type Application struct {
	ID          string            `json:"_id"`
	JobID       string            `json:"job"`
	JobTitle    string            `json:"jobTitle,omitempty"`
	CandidateID string            `json:"candidate"`
	Candidate   string            `json:"candidateName,omitempty"`
	ResumeURL   string            `json:"resume,omitempty"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}
