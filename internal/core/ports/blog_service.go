package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// CreateBlogInput carries the validated fields of a new blog post.
type CreateBlogInput struct {
	Title   string
	Content string
}

// BlogService implements blog publishing for both author kinds. The author
// must exist; creation is gated on that check.
type BlogService interface {
	CreateForCompany(ctx context.Context, companyID string, in CreateBlogInput) (*domain.Blog, error)
	CreateForEmployee(ctx context.Context, employeeID string, in CreateBlogInput) (*domain.Blog, error)
	ListForCompany(ctx context.Context, companyID string) ([]domain.Blog, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]domain.Blog, error)
}
