package httpserver

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/SukumarThillairajan/customer-feedback-analyzer/internal/platform/errors"
)

const tokenPrefix = "Token "

// requireAdminToken guards admin endpoints with a static bearer-style token
// ("Authorization: Token <token>"). Comparison is constant time.
func (s *Server) requireAdminToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, tokenPrefix) {
			return apperrors.UnauthorizedError("missing or malformed authorization header")
		}

		token := strings.TrimPrefix(header, tokenPrefix)
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.config.AdminToken)) != 1 {
			return apperrors.UnauthorizedError("invalid admin token")
		}

		return next(c)
	}
}
