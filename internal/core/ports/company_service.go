package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// PostJobInput carries the validated fields of a new job posting.
type PostJobInput struct {
	Title       string
	Description string
	Location    string
	SalaryMin   float64
	SalaryMax   float64
}

// CompanyService implements the company directory and job posting operations.
type CompanyService interface {
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	ListByIndustry(ctx context.Context, industry string) ([]domain.Company, error)
	PostJob(ctx context.Context, companyID string, in PostJobInput) (*domain.Job, error)
	ListJobs(ctx context.Context, companyID string) ([]domain.Job, error)
}
