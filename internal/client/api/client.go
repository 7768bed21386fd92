package api

import (
	"context"

	"github.com/jobdesk/jobdesk/internal/client/models"
)

// AuthResult is the payload of a successful login or OTP verification.
type AuthResult struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	User         models.User `json:"user"`
}

// Client defines the operations the job-board backend exposes.
//
// Implementations attach the bearer token to authenticated calls and map
// failures to the package sentinel errors. Every method honors context
// cancellation.
type Client interface {
	// Auth flows.
	Login(ctx context.Context, req models.LoginRequest) (*AuthResult, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	CompleteRegistration(ctx context.Context, req models.CompleteRegistrationRequest) (*AuthResult, error)
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	Logout(ctx context.Context) error

	// Job lifecycle.
	ListJobs(ctx context.Context) ([]models.JobRecord, error)
	GetJob(ctx context.Context, id string) (*models.JobRecord, error)
	ListCompanyJobs(ctx context.Context, companyID string) ([]models.JobRecord, error)
	CreateJob(ctx context.Context, req models.JobRequest) (*models.JobRecord, error)
	UpdateJob(ctx context.Context, id string, req models.JobRequest) (*models.JobRecord, error)
	UpdateJobStatus(ctx context.Context, id string, status models.JobStatus) (*models.JobRecord, error)
	DeleteJob(ctx context.Context, id string) error

	// Applications.
	CreateApplication(ctx context.Context, req models.ApplicationRequest) (*models.Application, error)
	ListJobApplications(ctx context.Context, jobID string) ([]models.Application, error)
	ListMyApplications(ctx context.Context) ([]models.Application, error)
	GetApplication(ctx context.Context, id string) (*models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
	DeleteApplication(ctx context.Context, id string) error

	// Profile.
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.User, error)

	// Companies.
	CreateCompany(ctx context.Context, req models.CompanyRequest) (*models.Company, error)
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, id string, req models.CompanyRequest) (*models.Company, error)
	DeleteCompany(ctx context.Context, id string) error

	// Token plumbing for the session store.
	SetTokens(access, refresh string)
	ClearTokens()
}
