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

// ApplicationService defines the application operations: candidates submit
// and track their own, recruiters review and decide the ones on their
// postings.
type ApplicationService interface {
	Apply(ctx context.Context, req models.ApplicationRequest) (*models.Application, error)
	ListForJob(ctx context.Context, jobID string) ([]models.Application, error)
	ListMine(ctx context.Context) ([]models.Application, error)
	Get(ctx context.Context, id string) (*models.Application, error)
	Decide(ctx context.Context, id string, decision string) (*models.Application, error)
	Withdraw(ctx context.Context, id string) error
}

type applicationService struct {
	client api.Client
	log    logging.Logger
}

// NewApplicationService constructs an ApplicationService over the given API
// client.
func NewApplicationService(client api.Client, log logging.Logger) ApplicationService {
	return &applicationService{client: client, log: log.With("component", "applications")}
}

func (s *applicationService) Apply(ctx context.Context, req models.ApplicationRequest) (*models.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreateApplication(ctx, req)
}

func (s *applicationService) ListForJob(ctx context.Context, jobID string) ([]models.Application, error) {
	if jobID == "" {
		return nil, fmt.Errorf("%w: job id is required", common.ErrorValidation)
	}
	return s.client.ListJobApplications(ctx, jobID)
}

func (s *applicationService) ListMine(ctx context.Context) ([]models.Application, error) {
	return s.client.ListMyApplications(ctx)
}

func (s *applicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: application id is required", common.ErrorValidation)
	}
	return s.client.GetApplication(ctx, id)
}

// Decide resolves a pending application. The transition is checked locally
// against the current backend state before the update is sent, and the
// caller's view changes only once the backend confirms: a decided
// application stays decided.
func (s *applicationService) Decide(ctx context.Context, id string, decision string) (*models.Application, error) {
	target, err := status.ParseApplicationDecision(decision)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !status.CanTransitionApplication(cur.Status, target) {
		return nil, fmt.Errorf("%w: application is already %s", common.ErrorValidation, cur.Status)
	}

	return s.client.UpdateApplicationStatus(ctx, id, target)
}

func (s *applicationService) Withdraw(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: application id is required", common.ErrorValidation)
	}
	return s.client.DeleteApplication(ctx, id)
}
