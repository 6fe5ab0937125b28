package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/job-portal/internal/core/ports"
)

// BlogHandler handles blog publishing for companies and employees.
type BlogHandler struct {
	blogs ports.BlogService
}

func NewBlogHandler(blogs ports.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

type createBlogRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreateForCompany handles POST /companies/:companyId/blogs. Requires the
// Company role.
func (h *BlogHandler) CreateForCompany(c echo.Context) error {
	in, err := h.bindBlog(c)
	if err != nil {
		return err
	}

	blog, err := h.blogs.CreateForCompany(c.Request().Context(), c.Param("companyId"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, blog)
}

// ListForCompany handles GET /companies/:companyId/blogs.
func (h *BlogHandler) ListForCompany(c echo.Context) error {
	blogs, err := h.blogs.ListForCompany(c.Request().Context(), c.Param("companyId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// CreateForEmployee handles POST /employees/:employeeId/blogs. Requires the
// Employee role.
func (h *BlogHandler) CreateForEmployee(c echo.Context) error {
	in, err := h.bindBlog(c)
	if err != nil {
		return err
	}

	blog, err := h.blogs.CreateForEmployee(c.Request().Context(), c.Param("employeeId"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, blog)
}

// ListForEmployee handles GET /employees/:employeeId/blogs.
func (h *BlogHandler) ListForEmployee(c echo.Context) error {
	blogs, err := h.blogs.ListForEmployee(c.Request().Context(), c.Param("employeeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

func (h *BlogHandler) bindBlog(c echo.Context) (ports.CreateBlogInput, error) {
	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return ports.CreateBlogInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.CreateBlogInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.CreateBlogInput{Title: req.Title, Content: req.Content}, nil
}
