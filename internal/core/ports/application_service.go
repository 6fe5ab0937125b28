package ports

import (
	"context"
	"io"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// ApplyInput carries a job application submission. Document is the attached
// CV stream; Filename is the client-supplied name, used only as a hint for
// the stored name and the record.
type ApplyInput struct {
	EmployeeID string
	JobID      string
	Filename   string
	Size       int64
	Document   io.Reader
}

// ApplicationService implements the job application workflow.
type ApplicationService interface {
	Apply(ctx context.Context, in ApplyInput) (*domain.Application, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Application, error)
}
