package services

import (
	"context"
	"fmt"

	"github.com/jobdesk/jobdesk/internal/client/api"
	"github.com/jobdesk/jobdesk/internal/client/models"
	"github.com/jobdesk/jobdesk/internal/common"
	"github.com/jobdesk/jobdesk/internal/logging"
)

// CompanyService defines the company profile operations for recruiters and
// the public directory reads.
type CompanyService interface {
	Create(ctx context.Context, req models.CompanyRequest) (*models.Company, error)
	Get(ctx context.Context, id string) (*models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
	Update(ctx context.Context, id string, req models.CompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, id string) error
}

type companyService struct {
	client api.Client
	log    logging.Logger
}

// NewCompanyService constructs a CompanyService over the given API client.
func NewCompanyService(client api.Client, log logging.Logger) CompanyService {
	return &companyService{client: client, log: log.With("component", "companies")}
}

func (s *companyService) Create(ctx context.Context, req models.CompanyRequest) (*models.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreateCompany(ctx, req)
}

func (s *companyService) Get(ctx context.Context, id string) (*models.Company, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: company id is required", common.ErrorValidation)
	}
	return s.client.GetCompany(ctx, id)
}

func (s *companyService) List(ctx context.Context) ([]models.Company, error) {
	return s.client.ListCompanies(ctx)
}

func (s *companyService) Update(ctx context.Context, id string, req models.CompanyRequest) (*models.Company, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: company id is required", common.ErrorValidation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.client.UpdateCompany(ctx, id, req)
}

func (s *companyService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: company id is required", common.ErrorValidation)
	}
	return s.client.DeleteCompany(ctx, id)
}
