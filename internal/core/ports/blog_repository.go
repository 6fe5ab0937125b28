package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// BlogRepository defines the interface for blog persistence.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) error
	ListByAuthor(ctx context.Context, kind domain.AuthorKind, authorID string) ([]domain.Blog, error)
}
