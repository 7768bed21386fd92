package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/jobdesk/jobdesk/internal/client/api"
	"github.com/jobdesk/jobdesk/internal/client/models"
	"github.com/jobdesk/jobdesk/internal/client/session"
	"github.com/jobdesk/jobdesk/internal/logging"
)

// fakeAPI implements api.Client with overridable function fields. Calls to
// methods with no override fail the test, so each test states exactly which
// endpoints it expects to be hit.
type fakeAPI struct {
	t *testing.T

	loginFn                func(context.Context, models.LoginRequest) (*api.AuthResult, error)
	registerFn             func(context.Context, models.RegisterRequest) error
	completeRegistrationFn func(context.Context, models.CompleteRegistrationRequest) (*api.AuthResult, error)
	forgotPasswordFn       func(context.Context, models.ForgotPasswordRequest) error
	resetPasswordFn        func(context.Context, models.ResetPasswordRequest) error
	logoutFn               func(context.Context) error

	listJobsFn        func(context.Context) ([]models.JobRecord, error)
	getJobFn          func(context.Context, string) (*models.JobRecord, error)
	listCompanyJobsFn func(context.Context, string) ([]models.JobRecord, error)
	createJobFn       func(context.Context, models.JobRequest) (*models.JobRecord, error)
	updateJobFn       func(context.Context, string, models.JobRequest) (*models.JobRecord, error)
	updateJobStatusFn func(context.Context, string, models.JobStatus) (*models.JobRecord, error)
	deleteJobFn       func(context.Context, string) error

	createApplicationFn       func(context.Context, models.ApplicationRequest) (*models.Application, error)
	listJobApplicationsFn     func(context.Context, string) ([]models.Application, error)
	listMyApplicationsFn      func(context.Context) ([]models.Application, error)
	getApplicationFn          func(context.Context, string) (*models.Application, error)
	updateApplicationStatusFn func(context.Context, string, models.ApplicationStatus) (*models.Application, error)
	deleteApplicationFn       func(context.Context, string) error

	getProfileFn    func(context.Context) (*models.User, error)
	updateProfileFn func(context.Context, models.ProfileUpdate) (*models.User, error)

	createCompanyFn func(context.Context, models.CompanyRequest) (*models.Company, error)
	getCompanyFn    func(context.Context, string) (*models.Company, error)
	listCompaniesFn func(context.Context) ([]models.Company, error)
	updateCompanyFn func(context.Context, string, models.CompanyRequest) (*models.Company, error)
	deleteCompanyFn func(context.Context, string) error

	setTokensCalls   int
	clearTokensCalls int
	lastAccessToken  string
	lastRefreshToken string
}

var _ api.Client = (*fakeAPI)(nil)

func newFakeAPI(t *testing.T) *fakeAPI { return &fakeAPI{t: t} }

func (f *fakeAPI) unexpected(name string) {
	f.t.Helper()
	f.t.Fatalf("unexpected call to %s", name)
}

func (f *fakeAPI) Login(ctx context.Context, req models.LoginRequest) (*api.AuthResult, error) {
	if f.loginFn == nil {
		f.unexpected("Login")
	}
	return f.loginFn(ctx, req)
}

func (f *fakeAPI) Register(ctx context.Context, req models.RegisterRequest) error {
	if f.registerFn == nil {
		f.unexpected("Register")
	}
	return f.registerFn(ctx, req)
}

func (f *fakeAPI) CompleteRegistration(ctx context.Context, req models.CompleteRegistrationRequest) (*api.AuthResult, error) {
	if f.completeRegistrationFn == nil {
		f.unexpected("CompleteRegistration")
	}
	return f.completeRegistrationFn(ctx, req)
}

func (f *fakeAPI) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if f.forgotPasswordFn == nil {
		f.unexpected("ForgotPassword")
	}
	return f.forgotPasswordFn(ctx, req)
}

func (f *fakeAPI) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if f.resetPasswordFn == nil {
		f.unexpected("ResetPassword")
	}
	return f.resetPasswordFn(ctx, req)
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	if f.logoutFn == nil {
		f.unexpected("Logout")
	}
	return f.logoutFn(ctx)
}

func (f *fakeAPI) ListJobs(ctx context.Context) ([]models.JobRecord, error) {
	if f.listJobsFn == nil {
		f.unexpected("ListJobs")
	}
	return f.listJobsFn(ctx)
}

func (f *fakeAPI) GetJob(ctx context.Context, id string) (*models.JobRecord, error) {
	if f.getJobFn == nil {
		f.unexpected("GetJob")
	}
	return f.getJobFn(ctx, id)
}

func (f *fakeAPI) ListCompanyJobs(ctx context.Context, companyID string) ([]models.JobRecord, error) {
	if f.listCompanyJobsFn == nil {
		f.unexpected("ListCompanyJobs")
	}
	return f.listCompanyJobsFn(ctx, companyID)
}

func (f *fakeAPI) CreateJob(ctx context.Context, req models.JobRequest) (*models.JobRecord, error) {
	if f.createJobFn == nil {
		f.unexpected("CreateJob")
	}
	return f.createJobFn(ctx, req)
}

func (f *fakeAPI) UpdateJob(ctx context.Context, id string, req models.JobRequest) (*models.JobRecord, error) {
	if f.updateJobFn == nil {
		f.unexpected("UpdateJob")
	}
	return f.updateJobFn(ctx, id, req)
}

func (f *fakeAPI) UpdateJobStatus(ctx context.Context, id string, status models.JobStatus) (*models.JobRecord, error) {
	if f.updateJobStatusFn == nil {
		f.unexpected("UpdateJobStatus")
	}
	return f.updateJobStatusFn(ctx, id, status)
}

func (f *fakeAPI) DeleteJob(ctx context.Context, id string) error {
	if f.deleteJobFn == nil {
		f.unexpected("DeleteJob")
	}
	return f.deleteJobFn(ctx, id)
}

func (f *fakeAPI) CreateApplication(ctx context.Context, req models.ApplicationRequest) (*models.Application, error) {
	if f.createApplicationFn == nil {
		f.unexpected("CreateApplication")
	}
	return f.createApplicationFn(ctx, req)
}

func (f *fakeAPI) ListJobApplications(ctx context.Context, jobID string) ([]models.Application, error) {
	if f.listJobApplicationsFn == nil {
		f.unexpected("ListJobApplications")
	}
	return f.listJobApplicationsFn(ctx, jobID)
}

func (f *fakeAPI) ListMyApplications(ctx context.Context) ([]models.Application, error) {
	if f.listMyApplicationsFn == nil {
		f.unexpected("ListMyApplications")
	}
	return f.listMyApplicationsFn(ctx)
}

func (f *fakeAPI) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	if f.getApplicationFn == nil {
		f.unexpected("GetApplication")
	}
	return f.getApplicationFn(ctx, id)
}

func (f *fakeAPI) UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	if f.updateApplicationStatusFn == nil {
		f.unexpected("UpdateApplicationStatus")
	}
	return f.updateApplicationStatusFn(ctx, id, status)
}

func (f *fakeAPI) DeleteApplication(ctx context.Context, id string) error {
	if f.deleteApplicationFn == nil {
		f.unexpected("DeleteApplication")
	}
	return f.deleteApplicationFn(ctx, id)
}

func (f *fakeAPI) GetProfile(ctx context.Context) (*models.User, error) {
	if f.getProfileFn == nil {
		f.unexpected("GetProfile")
	}
	return f.getProfileFn(ctx)
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.User, error) {
	if f.updateProfileFn == nil {
		f.unexpected("UpdateProfile")
	}
	return f.updateProfileFn(ctx, req)
}

func (f *fakeAPI) CreateCompany(ctx context.Context, req models.CompanyRequest) (*models.Company, error) {
	if f.createCompanyFn == nil {
		f.unexpected("CreateCompany")
	}
	return f.createCompanyFn(ctx, req)
}

func (f *fakeAPI) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	if f.getCompanyFn == nil {
		f.unexpected("GetCompany")
	}
	return f.getCompanyFn(ctx, id)
}

func (f *fakeAPI) ListCompanies(ctx context.Context) ([]models.Company, error) {
	if f.listCompaniesFn == nil {
		f.unexpected("ListCompanies")
	}
	return f.listCompaniesFn(ctx)
}

func (f *fakeAPI) UpdateCompany(ctx context.Context, id string, req models.CompanyRequest) (*models.Company, error) {
	if f.updateCompanyFn == nil {
		f.unexpected("UpdateCompany")
	}
	return f.updateCompanyFn(ctx, id, req)
}

func (f *fakeAPI) DeleteCompany(ctx context.Context, id string) error {
	if f.deleteCompanyFn == nil {
		f.unexpected("DeleteCompany")
	}
	return f.deleteCompanyFn(ctx, id)
}

func (f *fakeAPI) SetTokens(access, refresh string) {
	f.setTokensCalls++
	f.lastAccessToken = access
	f.lastRefreshToken = refresh
}

func (f *fakeAPI) ClearTokens() { f.clearTokensCalls++ }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testSessionStore builds a session store over a fresh in-memory database.
func testSessionStore(t *testing.T) (*session.Store, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", "file:services_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)

	return session.NewStore(db, testLogger()), db
}
