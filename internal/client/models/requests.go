package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jobdesk/jobdesk/internal/common"
)

// validate is the shared validator instance for request DTOs. Struct tags
// cover field-local rules; cross-field rules live in the Validate methods.
var validate = validator.New(validator.WithRequiredStructEnabled())

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", common.ErrorValidation, err)
}

// LoginRequest is the credentials payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r LoginRequest) Validate() error { return wrapValidation(validate.Struct(r)) }

// RegisterRequest starts the registration flow; the account is completed
// with an OTP verification.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role" validate:"required,oneof=candidate recruit"`
}

func (r RegisterRequest) Validate() error { return wrapValidation(validate.Struct(r)) }

// CompleteRegistrationRequest carries the emailed one-time code.
type CompleteRegistrationRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

func (r CompleteRegistrationRequest) Validate() error { return wrapValidation(validate.Struct(r)) }

// ForgotPasswordRequest asks the backend to mail a reset token.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r ForgotPasswordRequest) Validate() error { return wrapValidation(validate.Struct(r)) }

// ResetPasswordRequest completes the forgot-password flow.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r ResetPasswordRequest) Validate() error { return wrapValidation(validate.Struct(r)) }

// JobRequest is the payload for creating or updating a posting.
type JobRequest struct {
	Title           string          `json:"title" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	Location        string          `json:"location" validate:"required"`
	SalaryMin       float64         `json:"salaryMin" validate:"gte=0"`
	SalaryMax       float64         `json:"salaryMax" validate:"gte=0"`
	SalaryCurrency  string          `json:"salaryCurrency" validate:"required"`
	JobType         JobType         `json:"jobType" validate:"required,oneof=full-time part-time remote contract internship"`
	Category        string          `json:"category" validate:"required"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel" validate:"required,oneof=intern fresher junior mid-level senior"`
	Status          JobStatus       `json:"status" validate:"required,oneof=active closed draft"`
	ClosingDate     time.Time       `json:"closingDate" validate:"required"`
}

// Validate applies tag rules plus the cross-field rules the backend would
// reject anyway: min salary must not exceed max, and the closing date must
// be in the future.
func (r JobRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return wrapValidation(err)
	}
	if r.SalaryMin > r.SalaryMax {
		return fmt.Errorf("%w: min salary exceeds max salary", common.ErrorValidation)
	}
	if !r.ClosingDate.After(time.Now()) {
		return fmt.Errorf("%w: closing date must be in the future", common.ErrorValidation)
	}
	return nil
}

// ApplicationRequest submits an application to a posting.
type ApplicationRequest struct {
	JobID       string `json:"job" validate:"required"`
	CoverLetter string `json:"coverLetter" validate:"required"`
}

func (r ApplicationRequest) Validate() error { return wrapValidation(validate.Struct(r)) }

// CompanyRequest creates or updates a company profile.
type CompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Website     string `json:"website" validate:"omitempty,url"`
	Location    string `json:"location" validate:"required"`
}

func (r CompanyRequest) Validate() error { return wrapValidation(validate.Struct(r)) }

// ProfileUpdate is the multipart profile edit: optional text fields plus
// optional local file paths for the avatar and resume uploads.
type ProfileUpdate struct {
	Name       string `validate:"omitempty"`
	AvatarPath string `validate:"omitempty,file"`
	ResumePath string `validate:"omitempty,file"`
}

func (r ProfileUpdate) Validate() error { return wrapValidation(validate.Struct(r)) }
