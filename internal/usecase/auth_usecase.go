// Package usecase defines the application's use case interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"

	"yasen/internal/domain/entity"
)

// SendCodeInput is the request to issue a new verification code.
type SendCodeInput struct {
	Phone    string `json:"phone" validate:"required"`
	UserType string `json:"user_type"`
}

// SendCodeOutput echoes the delivery confirmation. DevCode carries the
// plaintext code in debug environments only.
type SendCodeOutput struct {
	Message string `json:"message"`
	DevCode string `json:"dev_code,omitempty"`
}

// VerifyCodeInput is the request to confirm a verification code and
// register or re-verify the user behind the phone number.
type VerifyCodeInput struct {
	Phone          string `json:"phone" validate:"required"`
	Code           string `json:"code" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email"`
	UserType       string `json:"user_type"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
}

// VerifyCodeOutput carries the verified user and a signed access token.
type VerifyCodeOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// AuthUsecase defines the phone verification flows.
type AuthUsecase interface {
	// SendCode generates a fresh code for the phone and stores its hash
	// with a fixed expiry.
	SendCode(ctx context.Context, input *SendCodeInput) (*SendCodeOutput, error)

	// VerifyCode consumes a matching unexpired code exactly once and
	// creates or re-verifies the user.
	VerifyCode(ctx context.Context, input *VerifyCodeInput) (*VerifyCodeOutput, error)

	// GetUserByPhone looks up a user by phone number.
	GetUserByPhone(ctx context.Context, phone string) (*entity.User, error)
}
