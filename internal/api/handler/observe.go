package handler

import (
	"errors"

	"github.com/jobportal/job-portal/internal/core/domain"
)

// registrationResult maps a registration outcome to a metric label.
func registrationResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return "duplicate"
	case errors.Is(err, domain.ErrWeakPassword):
		return "invalid"
	default:
		return "error"
	}
}

// loginResult maps a login outcome to a metric label. All failures look the
// same on purpose.
func loginResult(err error) string {
	if err == nil {
		return "success"
	}
	return "failure"
}

// applicationResult maps an application submission outcome to a metric label.
func applicationResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrDuplicateApplication):
		return "duplicate"
	case errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrMissingDocument):
		return "rejected"
	default:
		return "error"
	}
}
