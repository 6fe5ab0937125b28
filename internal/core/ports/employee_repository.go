package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// EmployeeRepository defines the interface for employee profile persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	SearchByName(ctx context.Context, name string) ([]domain.Employee, error)
}
