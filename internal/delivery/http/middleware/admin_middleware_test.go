package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yasen/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminTestContext(t *testing.T, token string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAdminMiddleware_Authorize(t *testing.T) {
	cfg := &config.Config{Admin: &config.AdminConfig{Token: "secret-token"}}

	t.Run("passes matching token through", func(t *testing.T) {
		m := NewAdminMiddleware(cfg)
		c, rec := newAdminTestContext(t, "secret-token")

		called := false
		err := m.Authorize(func(c echo.Context) error {
			called = true

			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects wrong token", func(t *testing.T) {
		m := NewAdminMiddleware(cfg)
		c, rec := newAdminTestContext(t, "wrong-token")

		called := false
		err := m.Authorize(func(c echo.Context) error {
			called = true

			return nil
		})(c)

		require.NoError(t, err)
		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "ADMIN_UNAUTHORIZED")
	})

	t.Run("rejects missing token", func(t *testing.T) {
		m := NewAdminMiddleware(cfg)
		c, rec := newAdminTestContext(t, "")

		err := m.Authorize(func(c echo.Context) error { return nil })(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects everything when no token configured", func(t *testing.T) {
		m := NewAdminMiddleware(&config.Config{})
		c, rec := newAdminTestContext(t, "secret-token")

		err := m.Authorize(func(c echo.Context) error { return nil })(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
