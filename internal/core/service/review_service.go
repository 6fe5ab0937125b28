package service

import (
	"context"
	"time"

	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
)

type reviewService struct {
	reviews   ports.ReviewRepository
	companies ports.CompanyRepository
	employees ports.EmployeeRepository
}

// NewReviewService returns a ReviewService implementation.
func NewReviewService(reviews ports.ReviewRepository, companies ports.CompanyRepository, employees ports.EmployeeRepository) ports.ReviewService {
	return &reviewService{reviews: reviews, companies: companies, employees: employees}
}

// Create persists a review after checking that both referenced entities exist.
func (s *reviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	if _, err := s.companies.FindByID(ctx, in.CompanyID); err != nil {
		return nil, err
	}
	if _, err := s.employees.FindByID(ctx, in.EmployeeID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:         newID(),
		CompanyID:  in.CompanyID,
		EmployeeID: in.EmployeeID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListForCompany(ctx context.Context, companyID string) ([]domain.Review, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.reviews.ListByCompany(ctx, companyID)
}

func (s *reviewService) ListForEmployee(ctx context.Context, employeeID string) ([]domain.Review, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.reviews.ListByEmployee(ctx, employeeID)
}
