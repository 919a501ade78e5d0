package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	t.Run("handles non-string http error message", func(t *testing.T) {
		c, rec := newErrorTestContext(t)

		assert.NotPanics(t, func() {
			m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, map[string]string{"reason": "missing"}), c)
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
	})

	t.Run("redacts internal detail on unhandled errors", func(t *testing.T) {
		c, rec := newErrorTestContext(t)

		m.HandleHTTPError(errors.New("pq: connection refused"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}
