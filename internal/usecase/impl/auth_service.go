// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"yasen/config"
	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	"yasen/internal/domain/service"
	"yasen/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultCodeTTL = 10 * time.Minute

	// Codes are four digits in the 1000-9999 range, so every code has the
	// same length and no leading zero ambiguity.
	codeMin  = 1000
	codeSpan = 9000

	// How many active codes are checked against a submitted code. The most
	// recent code wins, older ones remain valid until they expire.
	activeCodeLimit = 3
)

// AuthServiceParams defines the dependencies of the auth service.
type AuthServiceParams struct {
	fx.In

	Config       *config.Config
	TxManager    repository.TransactionManager
	CodeHasher   service.CodeHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// authService implements the AuthUsecase interface.
type authService struct {
	cfg          *config.Config
	txManager    repository.TransactionManager
	codeHasher   service.CodeHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		cfg:          params.Config,
		txManager:    params.TxManager,
		codeHasher:   params.CodeHasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// SendCode generates a fresh verification code for the phone and stores its
// hash with a fixed expiry. The plaintext code leaves the process only via
// the dev_code field in debug environments.
func (srv *authService) SendCode(ctx context.Context, input *usecase.SendCodeInput) (*usecase.SendCodeOutput, error) {
	srv.logger.Info("Sending verification code", "phone", input.Phone)

	code, err := generateCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	codeHash, err := srv.codeHasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash verification code")
	}

	ttl := defaultCodeTTL
	if srv.cfg.Auth != nil && srv.cfg.Auth.CodeTTL > 0 {
		ttl = srv.cfg.Auth.CodeTTL
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CodeRepo().Create(ctx, &entity.VerificationCode{
			Phone:     input.Phone,
			CodeHash:  codeHash,
			ExpiresAt: time.Now().Add(ttl),
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store verification code")
	}

	output := &usecase.SendCodeOutput{
		Message: fmt.Sprintf("Код отправлен на %s", input.Phone),
	}
	if srv.cfg.Env.Debug {
		output.DevCode = code
	}

	return output, nil
}

// VerifyCode consumes a matching unexpired code exactly once and creates or
// re-verifies the user behind the phone number.
func (srv *authService) VerifyCode(ctx context.Context, input *usecase.VerifyCodeInput) (*usecase.VerifyCodeOutput, error) {
	srv.logger.Info("Verifying code", "phone", input.Phone)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.CodeRepo()
		userRepo := repoFactory.UserRepo()

		now := time.Now()

		candidates, err := codeRepo.FindActiveByPhone(ctx, input.Phone, now, activeCodeLimit)
		if err != nil {
			return errors.Wrap(err, "failed to load active codes")
		}

		// Compare against the most recent codes first, then consume the
		// match with a conditional update so a concurrent verification of
		// the same code loses the race.
		var matched *entity.VerificationCode
		for _, candidate := range candidates {
			if srv.codeHasher.Check(input.Code, candidate.CodeHash) {
				matched = candidate

				break
			}
		}
		if matched == nil {
			return domainerrors.ErrCodeInvalid
		}

		if err := codeRepo.Consume(ctx, matched.ID, now); err != nil {
			if errors.Is(err, repository.ErrCodeNotFound) {
				return domainerrors.ErrCodeInvalid
			}

			return errors.Wrap(err, "failed to consume verification code")
		}

		existing, err := userRepo.FindByPhone(ctx, input.Phone)
		switch {
		case err == nil:
			existing.IsVerified = true
			if err := userRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to re-verify user")
			}
			user = existing
		case errors.Is(err, repository.ErrUserNotFound):
			userType := entity.UserType(input.UserType)
			if userType == "" {
				userType = entity.UserTypeCustomer
			}

			created := &entity.User{
				Phone:          input.Phone,
				Name:           input.Name,
				Email:          input.Email,
				UserType:       userType,
				Specialization: input.Specialization,
				Experience:     input.Experience,
				IsVerified:     true,
			}
			if err := userRepo.Create(ctx, created); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
			user = created
		default:
			return errors.Wrap(err, "failed to look up user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, string(user.UserType))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.VerifyCodeOutput{
		User:        user,
		AccessToken: accessToken,
	}, nil
}

// GetUserByPhone looks up a user by phone number.
func (srv *authService) GetUserByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByPhone(ctx, phone)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// generateCode draws a uniform four digit code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d", codeMin+n.Int64()), nil
}
