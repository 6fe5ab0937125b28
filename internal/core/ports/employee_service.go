package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// EmployeeService implements employee directory operations.
type EmployeeService interface {
	Search(ctx context.Context, name string) ([]domain.Employee, error)
}
