package services

import (
	"context"
	"fmt"

	"github.com/jobdesk/jobdesk/internal/client/api"
	"github.com/jobdesk/jobdesk/internal/client/models"
	"github.com/jobdesk/jobdesk/internal/client/status"
	"github.com/jobdesk/jobdesk/internal/common"
	"github.com/jobdesk/jobdesk/internal/logging"
)

// JobService defines the posting management operations for recruiters, plus
// single-posting reads shared with candidates. The browsing collection itself
// is served by the query engine, not here.
type JobService interface {
	Get(ctx context.Context, id string) (*models.JobRecord, error)
	ListForCompany(ctx context.Context, companyID string) ([]models.JobRecord, error)
	Create(ctx context.Context, req models.JobRequest) (*models.JobRecord, error)
	Update(ctx context.Context, id string, req models.JobRequest) (*models.JobRecord, error)
	ToggleStatus(ctx context.Context, id string) (*models.JobRecord, error)
	Delete(ctx context.Context, id string) error
}

type jobService struct {
	client api.Client
	log    logging.Logger
}

// NewJobService constructs a JobService over the given API client.
func NewJobService(client api.Client, log logging.Logger) JobService {
	return &jobService{client: client, log: log.With("component", "jobs")}
}

func (s *jobService) Get(ctx context.Context, id string) (*models.JobRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: job id is required", common.ErrorValidation)
	}
	return s.client.GetJob(ctx, id)
}

func (s *jobService) ListForCompany(ctx context.Context, companyID string) ([]models.JobRecord, error) {
	if companyID == "" {
		return nil, fmt.Errorf("%w: company id is required", common.ErrorValidation)
	}
	return s.client.ListCompanyJobs(ctx, companyID)
}

func (s *jobService) Create(ctx context.Context, req models.JobRequest) (*models.JobRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreateJob(ctx, req)
}

func (s *jobService) Update(ctx context.Context, id string, req models.JobRequest) (*models.JobRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: job id is required", common.ErrorValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.client.UpdateJob(ctx, id, req)
}

// ToggleStatus flips a posting between active and closed. The current status
// is read from the backend first, and nothing changes locally until the
// backend confirms the update.
func (s *jobService) ToggleStatus(ctx context.Context, id string) (*models.JobRecord, error) {
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := status.ToggleJob(cur.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return s.client.UpdateJobStatus(ctx, id, next)
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: job id is required", common.ErrorValidation)
	}
	return s.client.DeleteJob(ctx, id)
}
