package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
)

type companyService struct {
	companies ports.CompanyRepository
	jobs      ports.JobRepository
	log       zerolog.Logger
}

// NewCompanyService returns a CompanyService implementation.
func NewCompanyService(companies ports.CompanyRepository, jobs ports.JobRepository, log zerolog.Logger) ports.CompanyService {
	return &companyService{companies: companies, jobs: jobs, log: log}
}

func (s *companyService) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companies.FindByID(ctx, companyID)
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

func (s *companyService) ListByIndustry(ctx context.Context, industry string) ([]domain.Company, error) {
	return s.companies.ListByIndustry(ctx, industry)
}

// PostJob creates a posting under an existing company. The owner reference
// and the posted timestamp are set here, never taken from the caller.
func (s *companyService) PostJob(ctx context.Context, companyID string, in ports.PostJobInput) (*domain.Job, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	job := &domain.Job{
		ID:          newID(),
		CompanyID:   companyID,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		SalaryMin:   in.SalaryMin,
		SalaryMax:   in.SalaryMax,
		PostedAt:    time.Now().UTC(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.log.Info().Str("job_id", job.ID).Str("company_id", companyID).Str("title", job.Title).Msg("job posted")
	return job, nil
}

func (s *companyService) ListJobs(ctx context.Context, companyID string) ([]domain.Job, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.jobs.ListByCompany(ctx, companyID)
}
