package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// RegisterCompanyInput carries the validated fields of a company registration.
type RegisterCompanyInput struct {
	Name        string
	Industry    string
	Email       string
	Password    string
	Description string
}

// RegisterEmployeeInput carries the validated fields of an employee registration.
type RegisterEmployeeInput struct {
	FullName string
	Email    string
	Password string
}

// CompanyLogin is the result of a successful company authentication.
type CompanyLogin struct {
	Token   string
	Company *domain.Company
}

// EmployeeLogin is the result of a successful employee authentication.
type EmployeeLogin struct {
	Token    string
	Employee *domain.Employee
}

// AuthService implements the registration and authentication workflows for
// both actor kinds.
type AuthService interface {
	RegisterCompany(ctx context.Context, in RegisterCompanyInput) (*domain.Company, error)
	RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (*domain.Employee, error)
	LoginCompany(ctx context.Context, email, password string) (*CompanyLogin, error)
	LoginEmployee(ctx context.Context, email, password string) (*EmployeeLogin, error)
}
