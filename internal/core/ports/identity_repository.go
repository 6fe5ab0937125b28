package ports

import (
	"context"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// IdentityRepository defines the interface for credential persistence.
// Create must rely on the store's unique email constraint and return
// domain.ErrDuplicateEmail on violation. Delete exists solely for the
// registration workflow's compensating rollback.
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	Delete(ctx context.Context, email string) error
}
