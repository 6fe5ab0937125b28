package service

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
)

type employeeService struct {
	employees ports.EmployeeRepository
}

// NewEmployeeService returns an EmployeeService implementation.
func NewEmployeeService(employees ports.EmployeeRepository) ports.EmployeeService {
	return &employeeService{employees: employees}
}

func (s *employeeService) Search(ctx context.Context, name string) ([]domain.Employee, error) {
	if name == "" {
		return []domain.Employee{}, nil
	}
	return s.employees.SearchByName(ctx, name)
}
