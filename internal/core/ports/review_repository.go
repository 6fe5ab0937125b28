package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByCompany(ctx context.Context, companyID string) ([]domain.Review, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Review, error)
}
