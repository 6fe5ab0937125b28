package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
)

type stubJobRepo struct {
	jobs map[string]*domain.Job
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) error {
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) ListByCompany(_ context.Context, companyID string) ([]domain.Job, error) {
	out := []domain.Job{}
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, *j)
		}
	}
	return out, nil
}

type stubApplicationRepo struct {
	applications []*domain.Application
	failNext     error
}

func (r *stubApplicationRepo) Create(_ context.Context, application *domain.Application) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	clone := *application
	r.applications = append(r.applications, &clone)
	return nil
}

func (r *stubApplicationRepo) ListByEmployee(_ context.Context, employeeID string) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, a := range r.applications {
		if a.EmployeeID == employeeID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type stubDocumentStore struct {
	saved    map[string][]byte
	deleted  []string
	failSave bool
}

func newStubDocumentStore() *stubDocumentStore {
	return &stubDocumentStore{saved: make(map[string][]byte)}
}

func (s *stubDocumentStore) Save(_ context.Context, filename string, content io.Reader) (string, int64, error) {
	if s.failSave {
		return "", 0, domain.ErrStorageFailure
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", 0, err
	}
	path := "stored/" + filename
	s.saved[path] = data
	return path, int64(len(data)), nil
}

func (s *stubDocumentStore) Delete(_ context.Context, path string) error {
	delete(s.saved, path)
	s.deleted = append(s.deleted, path)
	return nil
}

type stubGuard struct {
	duplicate bool
	checkErr  error
	marked    []string
}

func (g *stubGuard) AlreadyApplied(_ context.Context, employeeID, jobID string) (bool, error) {
	if g.checkErr != nil {
		return false, g.checkErr
	}
	return g.duplicate, nil
}

func (g *stubGuard) Mark(_ context.Context, employeeID, jobID string) error {
	g.marked = append(g.marked, employeeID+":"+jobID)
	return nil
}

type applyFixture struct {
	employees *stubEmployeeRepo
	jobs      *stubJobRepo
	records   *stubApplicationRepo
	store     *stubDocumentStore
	guard     *stubGuard
	svc       ports.ApplicationService
}

func newApplyFixture() *applyFixture {
	f := &applyFixture{
		employees: newStubEmployeeRepo(),
		jobs:      newStubJobRepo(),
		records:   &stubApplicationRepo{},
		store:     newStubDocumentStore(),
		guard:     &stubGuard{},
	}
	f.svc = NewApplicationService(f.employees, f.jobs, f.records, f.store, f.guard, zerolog.Nop())

	_ = f.employees.Create(context.Background(), &domain.Employee{
		ID: "emp-1", FullName: "Jane Doe", Email: "jane@example.com", CreatedAt: time.Now(),
	})
	_ = f.jobs.Create(context.Background(), &domain.Job{
		ID: "job-1", CompanyID: "co-1", Title: "Engineer", PostedAt: time.Now(),
	})
	return f
}

func validInput() ports.ApplyInput {
	doc := "pretend this is a CV"
	return ports.ApplyInput{
		EmployeeID: "emp-1",
		JobID:      "job-1",
		Filename:   "cv.pdf",
		Size:       int64(len(doc)),
		Document:   strings.NewReader(doc),
	}
}

func TestApplicationService_Apply_Success(t *testing.T) {
	f := newApplyFixture()

	application, err := f.svc.Apply(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if application.EmployeeID != "emp-1" || application.JobID != "job-1" {
		t.Fatalf("unexpected references: %+v", application)
	}
	if application.DocumentPath == "" {
		t.Fatalf("expected stored document path")
	}
	if _, ok := f.store.saved[application.DocumentPath]; !ok {
		t.Fatalf("document not stored")
	}
	if len(f.records.applications) != 1 {
		t.Fatalf("expected one record, got %d", len(f.records.applications))
	}
	if len(f.guard.marked) != 1 {
		t.Fatalf("expected guard mark")
	}
}

func TestApplicationService_Apply_EmployeeNotFound(t *testing.T) {
	f := newApplyFixture()
	in := validInput()
	in.EmployeeID = "ghost"

	_, err := f.svc.Apply(context.Background(), in)
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if len(f.store.saved) != 0 || len(f.records.applications) != 0 {
		t.Fatalf("nothing should be persisted on failed precondition")
	}
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	f := newApplyFixture()
	in := validInput()
	in.JobID = "ghost"

	_, err := f.svc.Apply(context.Background(), in)
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if len(f.store.saved) != 0 || len(f.records.applications) != 0 {
		t.Fatalf("nothing should be persisted on failed precondition")
	}
}

func TestApplicationService_Apply_MissingDocument(t *testing.T) {
	f := newApplyFixture()

	in := validInput()
	in.Document = nil
	in.Size = 0
	if _, err := f.svc.Apply(context.Background(), in); !errors.Is(err, domain.ErrMissingDocument) {
		t.Fatalf("expected ErrMissingDocument for nil document, got %v", err)
	}

	in = validInput()
	in.Size = 0
	if _, err := f.svc.Apply(context.Background(), in); !errors.Is(err, domain.ErrMissingDocument) {
		t.Fatalf("expected ErrMissingDocument for empty document, got %v", err)
	}

	if len(f.store.saved) != 0 || len(f.records.applications) != 0 {
		t.Fatalf("nothing should be persisted on missing document")
	}
}

func TestApplicationService_Apply_CleansUpFileWhenRecordFails(t *testing.T) {
	f := newApplyFixture()
	f.records.failNext = errors.New("insert failed")

	_, err := f.svc.Apply(context.Background(), validInput())
	if err == nil {
		t.Fatalf("expected Apply to fail")
	}
	if len(f.store.saved) != 0 {
		t.Fatalf("orphaned document left behind: %v", f.store.saved)
	}
	if len(f.store.deleted) != 1 {
		t.Fatalf("expected one compensating delete, got %d", len(f.store.deleted))
	}
	if len(f.records.applications) != 0 {
		t.Fatalf("no record should exist")
	}
}

func TestApplicationService_Apply_StorageFailure(t *testing.T) {
	f := newApplyFixture()
	f.store.failSave = true

	_, err := f.svc.Apply(context.Background(), validInput())
	if !errors.Is(err, domain.ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", err)
	}
	if len(f.records.applications) != 0 {
		t.Fatalf("no record should exist after storage failure")
	}
}

func TestApplicationService_Apply_DuplicateGuard(t *testing.T) {
	f := newApplyFixture()
	f.guard.duplicate = true

	_, err := f.svc.Apply(context.Background(), validInput())
	if !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
	if len(f.store.saved) != 0 || len(f.records.applications) != 0 {
		t.Fatalf("nothing should be persisted on duplicate")
	}
}

func TestApplicationService_Apply_GuardOutageDegradesToAccept(t *testing.T) {
	f := newApplyFixture()
	f.guard.checkErr = errors.New("redis down")

	if _, err := f.svc.Apply(context.Background(), validInput()); err != nil {
		t.Fatalf("guard outage must not block submissions: %v", err)
	}
	if len(f.records.applications) != 1 {
		t.Fatalf("expected record despite guard outage")
	}
}

func TestApplicationService_ListByEmployee(t *testing.T) {
	f := newApplyFixture()

	if _, err := f.svc.Apply(context.Background(), validInput()); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	applications, err := f.svc.ListByEmployee(context.Background(), "emp-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(applications) != 1 {
		t.Fatalf("expected one application, got %d", len(applications))
	}

	if _, err := f.svc.ListByEmployee(context.Background(), "ghost"); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
