package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yasen/internal/delivery/http/validator"
	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMeasurementUsecase records the last create input and returns a canned
// measurement.
type stubMeasurementUsecase struct {
	usecase.MeasurementUsecase

	created     *usecase.CreateMeasurementInput
	measurement *entity.RoomMeasurement
	updated     *usecase.UpdateMeasurementInput
	updateErr   error
}

func (s *stubMeasurementUsecase) CreateMeasurement(_ context.Context, input *usecase.CreateMeasurementInput) (*entity.RoomMeasurement, error) {
	s.created = input

	return s.measurement, nil
}

func (s *stubMeasurementUsecase) UpdateMeasurement(_ context.Context, _ uuid.UUID, input *usecase.UpdateMeasurementInput) error {
	s.updated = input

	return s.updateErr
}

func newMeasurementTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/measurements", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestMeasurementHandler_CreateMeasurement(t *testing.T) {
	projectID := uuid.Must(uuid.NewV7())

	t.Run("creates measurement and returns derived area", func(t *testing.T) {
		uc := &stubMeasurementUsecase{
			measurement: &entity.RoomMeasurement{
				ID:        uuid.Must(uuid.NewV7()),
				ProjectID: projectID,
				RoomName:  "Кухня",
				Length:    5,
				Width:     4,
				Height:    2.7,
				Area:      20,
			},
		}
		handler := NewMeasurementHandler(uc, slog.Default())

		body := `{"project_id":"` + projectID.String() + `","room_name":"Кухня","length":5,"width":4,"height":2.7}`
		c, rec := newMeasurementTestContext(t, body)

		err := handler.CreateMeasurement(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "measurement_id")
		assert.Contains(t, rec.Body.String(), `"area":20`)
		require.NotNil(t, uc.created)
		assert.Equal(t, projectID, uc.created.ProjectID)
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		uc := &stubMeasurementUsecase{}
		handler := NewMeasurementHandler(uc, slog.Default())

		body := `{"project_id":"` + projectID.String() + `","room_name":"Кухня","length":0,"width":4,"height":2.7}`
		c, rec := newMeasurementTestContext(t, body)

		err := handler.CreateMeasurement(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		assert.Nil(t, uc.created)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		handler := NewMeasurementHandler(&stubMeasurementUsecase{}, slog.Default())

		c, rec := newMeasurementTestContext(t, `{"project_id":`)

		err := handler.CreateMeasurement(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	})
}

func TestMeasurementHandler_UpdateMeasurement_EmptyBody(t *testing.T) {
	uc := &stubMeasurementUsecase{updateErr: domainerrors.ErrNoFieldsToUpdate}
	handler := NewMeasurementHandler(uc, slog.Default())

	id := uuid.Must(uuid.NewV7())
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPut, "/measurements/"+id.String(), nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.UpdateMeasurement(c)

	// An empty body reaches the usecase as the empty update, never as nil.
	require.Error(t, err)
	require.NotNil(t, uc.updated)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "NO_FIELDS_TO_UPDATE", appErr.ErrorCode())
}
