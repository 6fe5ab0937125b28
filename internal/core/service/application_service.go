package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
)

// ApplicationGuard abstracts the duplicate-submission check (Redis).
type ApplicationGuard interface {
	AlreadyApplied(ctx context.Context, employeeID, jobID string) (bool, error)
	Mark(ctx context.Context, employeeID, jobID string) error
}

type applicationService struct {
	employees    ports.EmployeeRepository
	jobs         ports.JobRepository
	applications ports.ApplicationRepository
	documents    ports.DocumentStore
	guard        ApplicationGuard
	log          zerolog.Logger
}

// NewApplicationService returns an ApplicationService implementation.
func NewApplicationService(
	employees ports.EmployeeRepository,
	jobs ports.JobRepository,
	applications ports.ApplicationRepository,
	documents ports.DocumentStore,
	guard ApplicationGuard,
	log zerolog.Logger,
) ports.ApplicationService {
	return &applicationService{
		employees:    employees,
		jobs:         jobs,
		applications: applications,
		documents:    documents,
		guard:        guard,
		log:          log,
	}
}

// Apply validates the referenced entities and the attached document, writes
// the document to stable storage, then inserts the application record.
// The file write and the record insert cannot share one atomic commit, so a
// failed insert triggers a compensating delete of the just-written file:
// no application record without a readable document, no orphan file after a
// failed submission.
func (s *applicationService) Apply(ctx context.Context, in ports.ApplyInput) (*domain.Application, error) {
	if _, err := s.employees.FindByID(ctx, in.EmployeeID); err != nil {
		return nil, err
	}
	if _, err := s.jobs.FindByID(ctx, in.JobID); err != nil {
		return nil, err
	}
	if in.Document == nil || in.Size == 0 {
		return nil, domain.ErrMissingDocument
	}

	// Duplicate guard is an optimization, never authoritative: a guard
	// outage degrades to accepting the submission.
	dup, err := s.guard.AlreadyApplied(ctx, in.EmployeeID, in.JobID)
	if err != nil {
		s.log.Warn().Err(err).Str("employee_id", in.EmployeeID).Str("job_id", in.JobID).
			Msg("duplicate check failed, processing anyway")
	} else if dup {
		return nil, domain.ErrDuplicateApplication
	}

	path, size, err := s.documents.Save(ctx, in.Filename, in.Document)
	if err != nil {
		s.log.Error().Err(err).Str("employee_id", in.EmployeeID).Msg("failed to store document")
		return nil, err
	}
	if size == 0 {
		// Empty multipart part that reported a size: clean up and reject.
		s.deleteDocument(ctx, path)
		return nil, domain.ErrMissingDocument
	}

	application := &domain.Application{
		ID:           newID(),
		EmployeeID:   in.EmployeeID,
		JobID:        in.JobID,
		DocumentPath: path,
		DocumentName: in.Filename,
		DocumentSize: size,
		AppliedAt:    time.Now().UTC(),
	}
	if err := s.applications.Create(ctx, application); err != nil {
		s.deleteDocument(ctx, path)
		return nil, err
	}

	if err := s.guard.Mark(ctx, in.EmployeeID, in.JobID); err != nil {
		s.log.Warn().Err(err).Str("employee_id", in.EmployeeID).Str("job_id", in.JobID).
			Msg("failed to mark application in duplicate guard")
	}

	s.log.Info().
		Str("application_id", application.ID).
		Str("employee_id", in.EmployeeID).
		Str("job_id", in.JobID).
		Int64("document_size", size).
		Msg("application submitted")

	return application, nil
}

func (s *applicationService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Application, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.applications.ListByEmployee(ctx, employeeID)
}

func (s *applicationService) deleteDocument(ctx context.Context, path string) {
	if err := s.documents.Delete(ctx, path); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("failed to delete orphaned document")
	}
}
