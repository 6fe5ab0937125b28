package service

import (
	"context"
	"time"

	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
)

type blogService struct {
	blogs     ports.BlogRepository
	companies ports.CompanyRepository
	employees ports.EmployeeRepository
}

// NewBlogService returns a BlogService implementation.
func NewBlogService(blogs ports.BlogRepository, companies ports.CompanyRepository, employees ports.EmployeeRepository) ports.BlogService {
	return &blogService{blogs: blogs, companies: companies, employees: employees}
}

func (s *blogService) CreateForCompany(ctx context.Context, companyID string, in ports.CreateBlogInput) (*domain.Blog, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.create(ctx, domain.AuthorCompany, companyID, in)
}

func (s *blogService) CreateForEmployee(ctx context.Context, employeeID string, in ports.CreateBlogInput) (*domain.Blog, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.create(ctx, domain.AuthorEmployee, employeeID, in)
}

func (s *blogService) ListForCompany(ctx context.Context, companyID string) ([]domain.Blog, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.blogs.ListByAuthor(ctx, domain.AuthorCompany, companyID)
}

func (s *blogService) ListForEmployee(ctx context.Context, employeeID string) ([]domain.Blog, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.blogs.ListByAuthor(ctx, domain.AuthorEmployee, employeeID)
}

func (s *blogService) create(ctx context.Context, kind domain.AuthorKind, authorID string, in ports.CreateBlogInput) (*domain.Blog, error) {
	blog := &domain.Blog{
		ID:         newID(),
		AuthorKind: kind,
		AuthorID:   authorID,
		Title:      in.Title,
		Content:    in.Content,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}
