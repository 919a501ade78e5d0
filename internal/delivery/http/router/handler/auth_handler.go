package handler

import (
	"log/slog"
	"net/http"

	"yasen/internal/delivery/http/response"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for phone verification handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendCode handles the request to issue a verification code.
func (h *AuthHandler) SendCode(c echo.Context) error {
	var input *usecase.SendCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid send code input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Phone is required")
	}

	output, err := h.uc.SendCode(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, output.Message)
}

// VerifyCode handles the request to confirm a code and sign the user in.
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var input *usecase.VerifyCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verify code input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Phone, code and name are required")
	}

	output, err := h.uc.VerifyCode(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":         output.User,
		"access_token": output.AccessToken,
	}, "Phone verified successfully")
}

// GetUser handles the lookup of a user by phone number.
func (h *AuthHandler) GetUser(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Phone query parameter is required")
	}

	user, err := h.uc.GetUserByPhone(c.Request().Context(), phone)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": user}, "User retrieved successfully")
}

// Me echoes the authenticated user's token claims.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	userType, _ := c.Get("userType").(string)

	return response.Success(c, http.StatusOK, map[string]string{
		"user_id":   userID.String(),
		"user_type": userType,
	}, "Profile retrieved successfully")
}
