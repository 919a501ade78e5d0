package middleware

import (
	"crypto/subtle"

	"yasen/config"
	"yasen/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const adminTokenHeader = "X-Admin-Token"

// AdminMiddleware guards the reporting endpoints behind a shared admin token.
type AdminMiddleware struct {
	token string
}

// NewAdminMiddleware is the constructor for AdminMiddleware.
func NewAdminMiddleware(cfg *config.Config) *AdminMiddleware {
	token := ""
	if cfg.Admin != nil {
		token = cfg.Admin.Token
	}

	return &AdminMiddleware{token: token}
}

// Authorize rejects requests whose admin token header does not match the
// configured secret. The comparison is constant time.
func (m *AdminMiddleware) Authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		provided := c.Request().Header.Get(adminTokenHeader)
		if m.token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(m.token)) != 1 {
			return response.Unauthorized(c, "ADMIN_UNAUTHORIZED", "Invalid admin token")
		}

		return next(c)
	}
}
