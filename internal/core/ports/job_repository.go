package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// JobRepository defines the interface for job posting persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.Job, error)
}
