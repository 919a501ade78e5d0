package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProjectUsecase records the last update input.
type stubProjectUsecase struct {
	usecase.ProjectUsecase

	updated   *usecase.UpdateProjectInput
	updateErr error
}

func (s *stubProjectUsecase) UpdateProject(_ context.Context, _ uuid.UUID, input *usecase.UpdateProjectInput) error {
	s.updated = input

	return s.updateErr
}

func TestProjectHandler_UpdateProject_EmptyBody(t *testing.T) {
	uc := &stubProjectUsecase{updateErr: domainerrors.ErrNoFieldsToUpdate}
	handler := NewProjectHandler(uc, slog.Default())

	id := uuid.Must(uuid.NewV7())
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/projects/"+id.String(), nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.UpdateProject(c)

	// An empty body reaches the usecase as the empty update, never as nil.
	require.Error(t, err)
	require.NotNil(t, uc.updated)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "NO_FIELDS_TO_UPDATE", appErr.ErrorCode())
}
