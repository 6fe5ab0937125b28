package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// CompanyRepository defines the interface for company profile persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	FindByEmail(ctx context.Context, email string) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	ListByIndustry(ctx context.Context, industry string) ([]domain.Company, error)
}
