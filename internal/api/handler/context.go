package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/job-portal/internal/api/middleware"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: role and subject must
// both be present (presence proves the middleware ran and the token carried
// a real profile id). A token without a subject is structurally valid but
// operationally unusable, so it is rejected with 401.
func ctxClaims(c echo.Context) (subjectID, role string, err error) {
	role, _ = c.Get(middleware.CtxRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	subjectID, _ = c.Get(middleware.CtxSubjectID).(string)
	if subjectID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing subject identity")
	}

	return subjectID, role, nil
}
