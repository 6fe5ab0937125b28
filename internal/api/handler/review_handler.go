package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/job-portal/internal/core/ports"
)

// ReviewHandler handles company reviews.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	CompanyID  string `json:"company_id" validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// Create handles POST /reviews. Requires the Employee role.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviews.Create(c.Request().Context(), ports.CreateReviewInput{
		CompanyID:  req.CompanyID,
		EmployeeID: req.EmployeeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// ListForCompany handles GET /companies/:companyId/reviews.
func (h *ReviewHandler) ListForCompany(c echo.Context) error {
	reviews, err := h.reviews.ListForCompany(c.Request().Context(), c.Param("companyId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListForEmployee handles GET /employees/:employeeId/reviews.
func (h *ReviewHandler) ListForEmployee(c echo.Context) error {
	reviews, err := h.reviews.ListForEmployee(c.Request().Context(), c.Param("employeeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
