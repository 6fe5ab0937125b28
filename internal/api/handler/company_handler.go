package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/job-portal/internal/api/metrics"
	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
)

// CompanyHandler handles company registration, login, the company
// directory, and job postings.
type CompanyHandler struct {
	auth      ports.AuthService
	companies ports.CompanyService
}

func NewCompanyHandler(auth ports.AuthService, companies ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{auth: auth, companies: companies}
}

// --- Request / Response types ---

type registerCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Industry    string `json:"industry"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Description string `json:"description"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type companyLoginResponse struct {
	Token   string          `json:"token"`
	Company *domain.Company `json:"company"`
}

type postJobRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	SalaryMin   float64 `json:"salary_min" validate:"gte=0"`
	SalaryMax   float64 `json:"salary_max" validate:"gte=0"`
}

// Register handles POST /companies/register.
//
// @Summary      Register a new company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      registerCompanyRequest  true  "Company registration details"
// @Success      201   {object}  domain.Company
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /companies/register [post]
func (h *CompanyHandler) Register(c echo.Context) error {
	var req registerCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.auth.RegisterCompany(c.Request().Context(), ports.RegisterCompanyInput{
		Name:        req.Name,
		Industry:    req.Industry,
		Email:       req.Email,
		Password:    req.Password,
		Description: req.Description,
	})
	metrics.RegistrationsTotal.WithLabelValues(domain.RoleCompany, registrationResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, company)
}

// Login handles POST /companies/login.
//
// @Summary      Authenticate a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  companyLoginResponse
// @Failure      401   {object}  errorResponse
// @Router       /companies/login [post]
func (h *CompanyHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	login, err := h.auth.LoginCompany(c.Request().Context(), req.Email, req.Password)
	metrics.LoginsTotal.WithLabelValues(domain.RoleCompany, loginResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, companyLoginResponse{Token: login.Token, Company: login.Company})
}

// List handles GET /companies.
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.companies.ListCompanies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Get handles GET /companies/:companyId.
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.companies.GetCompany(c.Request().Context(), c.Param("companyId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// ListByIndustry handles GET /companies/industry/:industry.
func (h *CompanyHandler) ListByIndustry(c echo.Context) error {
	companies, err := h.companies.ListByIndustry(c.Request().Context(), c.Param("industry"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// PostJob handles POST /companies/:companyId/jobs. Requires the Company role.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path      string          true  "Company id"
// @Param        body       body      postJobRequest  true  "Job details"
// @Success      201        {object}  domain.Job
// @Failure      404        {object}  errorResponse
// @Router       /companies/{companyId}/jobs [post]
func (h *CompanyHandler) PostJob(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req postJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.companies.PostJob(c.Request().Context(), c.Param("companyId"), ports.PostJobInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
	})
	if err != nil {
		return err
	}

	metrics.JobsPostedTotal.Inc()
	return c.JSON(http.StatusCreated, job)
}

// ListJobs handles GET /companies/:companyId/jobs.
func (h *CompanyHandler) ListJobs(c echo.Context) error {
	jobs, err := h.companies.ListJobs(c.Request().Context(), c.Param("companyId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}
