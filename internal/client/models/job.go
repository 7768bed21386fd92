package models

import (
	"errors"
	"time"
)

var ErrMalformedUser = errors.New("malformed user record")

// JobStatus values for a posting. "draft" is reachable only at creation
// time; the recruiter toggle moves between active and closed.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// JobType classifies the engagement.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeRemote     JobType = "remote"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// ExperienceLevel classifies seniority.
type ExperienceLevel string

const (
	ExperienceIntern  ExperienceLevel = "intern"
	ExperienceFresher ExperienceLevel = "fresher"
	ExperienceJunior  ExperienceLevel = "junior"
	ExperienceMid     ExperienceLevel = "mid-level"
	ExperienceSenior  ExperienceLevel = "senior"
)

// SalaryRecord is the wire shape of a posting's salary: currency minor units
// (the domain convention quotes salaries in millions).
type SalaryRecord struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// CompanyRef is the nested company object on a job record.
type CompanyRef struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// JobRecord is a raw job posting as returned by the backend.
type JobRecord struct {
	ID              string          `json:"_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Company         CompanyRef      `json:"company"`
	Location        string          `json:"location"`
	Salary          SalaryRecord    `json:"salary"`
	JobType         JobType         `json:"jobType"`
	Category        string          `json:"category"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Status          JobStatus       `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	ClosingDate     time.Time       `json:"closingDate"`
}

// JobListing is the normalized view model the UI renders. Salary bounds are
// scaled to the human-readable "millions" unit. Immutable once built;
// replaced wholesale on refetch.
type JobListing struct {
	ID              string
	Title           string
	Company         string
	CompanyAvatar   string
	Location        string
	SalaryMin       float64
	SalaryMax       float64
	SalaryCurrency  string
	SalaryValid     bool
	JobType         JobType
	Category        string
	ExperienceLevel ExperienceLevel
	Status          JobStatus
	CreatedAt       time.Time
	ClosingDate     time.Time
}
