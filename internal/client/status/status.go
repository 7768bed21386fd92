// Package status encodes the lifecycle rules for postings and applications.
//
// The rules are enforced client-side before any update request leaves the
// process, so an illegal transition never reaches the wire.
package status

import (
	"fmt"

	"github.com/jobdesk/jobdesk/internal/client/models"
)

// ToggleJob returns the posting status after a recruiter toggles it.
// Active and closed flip into each other. Draft is reachable only at
// creation time, so toggling never produces it and a draft toggles into
// active (publishing it).
func ToggleJob(cur models.JobStatus) (models.JobStatus, error) {
	switch cur {
	case models.JobStatusActive:
		return models.JobStatusClosed, nil
	case models.JobStatusClosed, models.JobStatusDraft:
		return models.JobStatusActive, nil
	default:
		return "", fmt.Errorf("unknown job status %q", cur)
	}
}

// CanTransitionJob reports whether a posting may move from one status to
// another.
func CanTransitionJob(from, to models.JobStatus) bool {
	next, err := ToggleJob(from)
	return err == nil && next == to
}

// CanTransitionApplication reports whether an application may move from one
// status to another. Pending resolves to accepted or rejected; both are
// terminal and nothing ever returns to pending.
func CanTransitionApplication(from, to models.ApplicationStatus) bool {
	if from != models.ApplicationPending {
		return false
	}
	return to == models.ApplicationAccepted || to == models.ApplicationRejected
}

// ParseApplicationDecision maps a user-entered decision to a target status.
func ParseApplicationDecision(s string) (models.ApplicationStatus, error) {
	switch s {
	case "accepted", "accept":
		return models.ApplicationAccepted, nil
	case "rejected", "reject":
		return models.ApplicationRejected, nil
	default:
		return "", fmt.Errorf("unknown decision %q, want accept or reject", s)
	}
}
