package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/job-portal/internal/api/middleware"
	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
)

// --- Stub services shared by the handler tests ---

type stubAuthService struct {
	registerCompanyIn  *ports.RegisterCompanyInput
	registerEmployeeIn *ports.RegisterEmployeeInput
	loginEmail         string
	failWith           error
}

func (s *stubAuthService) RegisterCompany(_ context.Context, in ports.RegisterCompanyInput) (*domain.Company, error) {
	s.registerCompanyIn = &in
	if s.failWith != nil {
		return nil, s.failWith
	}
	return &domain.Company{ID: "co-1", Name: in.Name, Email: in.Email, Industry: in.Industry}, nil
}

func (s *stubAuthService) RegisterEmployee(_ context.Context, in ports.RegisterEmployeeInput) (*domain.Employee, error) {
	s.registerEmployeeIn = &in
	if s.failWith != nil {
		return nil, s.failWith
	}
	return &domain.Employee{ID: "emp-1", FullName: in.FullName, Email: in.Email}, nil
}

func (s *stubAuthService) LoginCompany(_ context.Context, email, _ string) (*ports.CompanyLogin, error) {
	s.loginEmail = email
	if s.failWith != nil {
		return nil, s.failWith
	}
	return &ports.CompanyLogin{
		Token:   "signed-token",
		Company: &domain.Company{ID: "co-1", Name: "Acme", Email: email},
	}, nil
}

func (s *stubAuthService) LoginEmployee(_ context.Context, email, _ string) (*ports.EmployeeLogin, error) {
	s.loginEmail = email
	if s.failWith != nil {
		return nil, s.failWith
	}
	return &ports.EmployeeLogin{
		Token:    "signed-token",
		Employee: &domain.Employee{ID: "emp-1", FullName: "Jane Doe", Email: email},
	}, nil
}

type stubCompanyService struct {
	companies []domain.Company
	jobs      []domain.Job
	failWith  error
}

func (s *stubCompanyService) GetCompany(_ context.Context, companyID string) (*domain.Company, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.companies {
		if s.companies[i].ID == companyID {
			return &s.companies[i], nil
		}
	}
	return nil, domain.ErrCompanyNotFound
}

func (s *stubCompanyService) ListCompanies(_ context.Context) ([]domain.Company, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.companies, nil
}

func (s *stubCompanyService) ListByIndustry(_ context.Context, industry string) ([]domain.Company, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []domain.Company{}
	for _, co := range s.companies {
		if co.Industry == industry {
			out = append(out, co)
		}
	}
	return out, nil
}

func (s *stubCompanyService) PostJob(_ context.Context, companyID string, in ports.PostJobInput) (*domain.Job, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	job := domain.Job{
		ID:        "job-1",
		CompanyID: companyID,
		Title:     in.Title,
		Location:  in.Location,
		PostedAt:  time.Now(),
	}
	s.jobs = append(s.jobs, job)
	return &job, nil
}

func (s *stubCompanyService) ListJobs(_ context.Context, companyID string) ([]domain.Job, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []domain.Job{}
	for _, j := range s.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

// newTestContext builds an echo context with the request validator wired the
// same way the router does it.
func newTestContext(method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context, subjectID, role string) {
	c.Set(middleware.CtxSubjectID, subjectID)
	c.Set(middleware.CtxRole, role)
}

func TestCompanyHandler_Register_Created(t *testing.T) {
	auth := &stubAuthService{}
	h := NewCompanyHandler(auth, &stubCompanyService{})

	body := `{"name":"Acme","industry":"logistics","email":"hr@acme.com","password":"s3cret"}`
	c, rec := newTestContext(http.MethodPost, "/companies/register", strings.NewReader(body), echo.MIMEApplicationJSON)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if auth.registerCompanyIn == nil || auth.registerCompanyIn.Email != "hr@acme.com" {
		t.Fatalf("service did not receive the registration: %+v", auth.registerCompanyIn)
	}

	var company domain.Company
	if err := json.Unmarshal(rec.Body.Bytes(), &company); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if company.ID == "" || company.Name != "Acme" {
		t.Fatalf("unexpected company payload: %+v", company)
	}
}

func TestCompanyHandler_Register_RejectsInvalidPayload(t *testing.T) {
	h := NewCompanyHandler(&stubAuthService{}, &stubCompanyService{})

	body := `{"name":"Acme","email":"not-an-email","password":"s3cret"}`
	c, _ := newTestContext(http.MethodPost, "/companies/register", strings.NewReader(body), echo.MIMEApplicationJSON)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %v", err)
	}
}

func TestCompanyHandler_Register_PropagatesDuplicate(t *testing.T) {
	auth := &stubAuthService{failWith: domain.ErrDuplicateEmail}
	h := NewCompanyHandler(auth, &stubCompanyService{})

	body := `{"name":"Acme","email":"hr@acme.com","password":"s3cret"}`
	c, _ := newTestContext(http.MethodPost, "/companies/register", strings.NewReader(body), echo.MIMEApplicationJSON)

	if err := h.Register(c); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCompanyHandler_Login_Success(t *testing.T) {
	auth := &stubAuthService{}
	h := NewCompanyHandler(auth, &stubCompanyService{})

	body := `{"email":"hr@acme.com","password":"s3cret"}`
	c, rec := newTestContext(http.MethodPost, "/companies/login", strings.NewReader(body), echo.MIMEApplicationJSON)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Token   string          `json:"token"`
		Company *domain.Company `json:"company"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token != "signed-token" || resp.Company == nil {
		t.Fatalf("unexpected login payload: %+v", resp)
	}
}

func TestCompanyHandler_Login_PropagatesInvalidCredentials(t *testing.T) {
	auth := &stubAuthService{failWith: domain.ErrInvalidCredentials}
	h := NewCompanyHandler(auth, &stubCompanyService{})

	body := `{"email":"hr@acme.com","password":"wrong"}`
	c, _ := newTestContext(http.MethodPost, "/companies/login", strings.NewReader(body), echo.MIMEApplicationJSON)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestCompanyHandler_Get(t *testing.T) {
	companies := &stubCompanyService{companies: []domain.Company{
		{ID: "co-1", Name: "Acme", Industry: "logistics"},
	}}
	h := NewCompanyHandler(&stubAuthService{}, companies)

	c, rec := newTestContext(http.MethodGet, "/companies/co-1", nil, "")
	c.SetParamNames("companyId")
	c.SetParamValues("co-1")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newTestContext(http.MethodGet, "/companies/ghost", nil, "")
	c.SetParamNames("companyId")
	c.SetParamValues("ghost")

	if err := h.Get(c); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestCompanyHandler_ListByIndustry(t *testing.T) {
	companies := &stubCompanyService{companies: []domain.Company{
		{ID: "co-1", Name: "Acme", Industry: "logistics"},
		{ID: "co-2", Name: "Globex", Industry: "finance"},
	}}
	h := NewCompanyHandler(&stubAuthService{}, companies)

	c, rec := newTestContext(http.MethodGet, "/companies/industry/logistics", nil, "")
	c.SetParamNames("industry")
	c.SetParamValues("logistics")

	if err := h.ListByIndustry(c); err != nil {
		t.Fatalf("ListByIndustry returned error: %v", err)
	}

	var listed []domain.Company
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != "co-1" {
		t.Fatalf("unexpected companies: %+v", listed)
	}
}

func TestCompanyHandler_PostJob_Created(t *testing.T) {
	companies := &stubCompanyService{}
	h := NewCompanyHandler(&stubAuthService{}, companies)

	body := `{"title":"Engineer","location":"Remote","salary_min":50000,"salary_max":90000}`
	c, rec := newTestContext(http.MethodPost, "/companies/co-1/jobs", strings.NewReader(body), echo.MIMEApplicationJSON)
	c.SetParamNames("companyId")
	c.SetParamValues("co-1")
	authenticate(c, "co-1", domain.RoleCompany)

	if err := h.PostJob(c); err != nil {
		t.Fatalf("PostJob returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(companies.jobs) != 1 || companies.jobs[0].CompanyID != "co-1" {
		t.Fatalf("job not created for owner: %+v", companies.jobs)
	}
}

func TestCompanyHandler_PostJob_RequiresClaims(t *testing.T) {
	h := NewCompanyHandler(&stubAuthService{}, &stubCompanyService{})

	body := `{"title":"Engineer"}`
	c, _ := newTestContext(http.MethodPost, "/companies/co-1/jobs", strings.NewReader(body), echo.MIMEApplicationJSON)
	c.SetParamNames("companyId")
	c.SetParamValues("co-1")

	err := h.PostJob(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestCompanyHandler_PostJob_RejectsNegativeSalary(t *testing.T) {
	h := NewCompanyHandler(&stubAuthService{}, &stubCompanyService{})

	body := `{"title":"Engineer","salary_min":-1}`
	c, _ := newTestContext(http.MethodPost, "/companies/co-1/jobs", strings.NewReader(body), echo.MIMEApplicationJSON)
	c.SetParamNames("companyId")
	c.SetParamValues("co-1")
	authenticate(c, "co-1", domain.RoleCompany)

	err := h.PostJob(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative salary, got %v", err)
	}
}
