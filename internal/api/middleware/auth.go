package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys under which verified claims are stored for downstream
// handlers.
const (
	CtxSubjectID = "subject_id"
	CtxEmail     = "email"
	CtxRole      = "role"
	CtxName      = "name"
)

// Auth validates the bearer token and injects its claims into the request
// context. Signature and expiry are verified here; jwt/v5 rejects expired
// tokens during parsing. A missing or invalid token is always 401;
// role checks are RBAC's job.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxSubjectID, claims["sub"])
			c.Set(CtxEmail, claims["email"])
			c.Set(CtxRole, claims["role"])
			c.Set(CtxName, claims["name"])

			return next(c)
		}
	}
}
