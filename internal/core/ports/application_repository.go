package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// ApplicationRepository defines the interface for application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Application, error)
}
