package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// CreateReviewInput carries the validated fields of a new review.
type CreateReviewInput struct {
	CompanyID  string
	EmployeeID string
	Rating     int
	Comment    string
}

// ReviewService implements company reviews. Both the company and the
// employee must exist when a review is created.
type ReviewService interface {
	Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	ListForCompany(ctx context.Context, companyID string) ([]domain.Review, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]domain.Review, error)
}
