package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/job-portal/internal/api/metrics"
	"github.com/jobportal/job-portal/internal/core/domain"
	"github.com/jobportal/job-portal/internal/core/ports"
)

// documentField is the multipart form field carrying the CV attachment.
const documentField = "document"

// EmployeeHandler handles employee registration, login, search, and the job
// application workflow.
type EmployeeHandler struct {
	auth         ports.AuthService
	employees    ports.EmployeeService
	applications ports.ApplicationService
}

func NewEmployeeHandler(auth ports.AuthService, employees ports.EmployeeService, applications ports.ApplicationService) *EmployeeHandler {
	return &EmployeeHandler{auth: auth, employees: employees, applications: applications}
}

// --- Request / Response types ---

type registerEmployeeRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type employeeLoginResponse struct {
	Token    string           `json:"token"`
	Employee *domain.Employee `json:"employee"`
	Roles    []string         `json:"roles"`
}

type applicationSummary struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	DocumentName  string `json:"document_name"`
	AppliedAt     string `json:"applied_at"`
}

// Register handles POST /employees/register.
//
// @Summary      Register a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      registerEmployeeRequest  true  "Employee registration details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /employees/register [post]
func (h *EmployeeHandler) Register(c echo.Context) error {
	var req registerEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.auth.RegisterEmployee(c.Request().Context(), ports.RegisterEmployeeInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	metrics.RegistrationsTotal.WithLabelValues(domain.RoleEmployee, registrationResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, employee)
}

// Login handles POST /employees/login.
//
// @Summary      Authenticate an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  employeeLoginResponse
// @Failure      401   {object}  errorResponse
// @Router       /employees/login [post]
func (h *EmployeeHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	login, err := h.auth.LoginEmployee(c.Request().Context(), req.Email, req.Password)
	metrics.LoginsTotal.WithLabelValues(domain.RoleEmployee, loginResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employeeLoginResponse{
		Token:    login.Token,
		Employee: login.Employee,
		Roles:    []string{domain.RoleEmployee},
	})
}

// Apply handles POST /employees/:employeeId/apply/:jobId. Requires the
// Employee role and a non-empty multipart "document" part.
//
// @Summary      Apply for a job
// @Tags         applications
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        employeeId  path      string  true  "Employee id"
// @Param        jobId       path      string  true  "Job id"
// @Param        document    formData  file    true  "CV document"
// @Success      201         {object}  domain.Application
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      409         {object}  errorResponse
// @Router       /employees/{employeeId}/apply/{jobId} [post]
func (h *EmployeeHandler) Apply(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	in := ports.ApplyInput{
		EmployeeID: c.Param("employeeId"),
		JobID:      c.Param("jobId"),
	}

	// A missing part is the caller's problem (400), not a bind failure.
	fh, err := c.FormFile(documentField)
	if err == nil && fh.Size > 0 {
		f, openErr := fh.Open()
		if openErr != nil {
			return domain.ErrStorageFailure
		}
		defer f.Close()

		in.Filename = fh.Filename
		in.Size = fh.Size
		in.Document = f
	}

	application, err := h.applications.Apply(c.Request().Context(), in)
	metrics.ApplicationsSubmittedTotal.WithLabelValues(applicationResult(err)).Inc()
	if err != nil {
		return err
	}

	metrics.DocumentBytesStored.Add(float64(application.DocumentSize))
	return c.JSON(http.StatusCreated, application)
}

// Applications handles GET /employees/:employeeId/applications. Requires
// the Employee role.
func (h *EmployeeHandler) Applications(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	applications, err := h.applications.ListByEmployee(c.Request().Context(), c.Param("employeeId"))
	if err != nil {
		return err
	}

	summaries := make([]applicationSummary, 0, len(applications))
	for _, a := range applications {
		summaries = append(summaries, applicationSummary{
			ApplicationID: a.ID,
			JobID:         a.JobID,
			DocumentName:  a.DocumentName,
			AppliedAt:     a.AppliedAt.Format("2006-01-02"),
		})
	}
	return c.JSON(http.StatusOK, summaries)
}

// Search handles GET /employees/search?name=.
func (h *EmployeeHandler) Search(c echo.Context) error {
	employees, err := h.employees.Search(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}
