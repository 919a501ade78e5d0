package impl

import (
	"context"
	"testing"
	"time"

	"yasen/config"
	"yasen/internal/domain/entity"
	domainerrors "yasen/internal/domain/errors"
	"yasen/internal/domain/repository"
	mockRepo "yasen/internal/mocks/repository"
	mockService "yasen/internal/mocks/service"
	"yasen/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	cfg          *config.Config
	userRepo     *mockRepo.MockUserRepository
	codeRepo     *mockRepo.MockVerificationCodeRepository
	codeHasher   *mockService.MockCodeHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	codeRepo := mockRepo.NewMockVerificationCodeRepository(t)
	codeHasher := mockService.NewMockCodeHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().CodeRepo().Return(codeRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	cfg := &config.Config{}
	cfg.Env.Debug = true

	service := NewAuthService(AuthServiceParams{
		Config:       cfg,
		TxManager:    txManager,
		CodeHasher:   codeHasher,
		TokenService: tokenService,
		Logger:       testLogger(),
	})

	return authServiceFixtures{
		service:      service,
		cfg:          cfg,
		userRepo:     userRepo,
		codeRepo:     codeRepo,
		codeHasher:   codeHasher,
		tokenService: tokenService,
	}
}

func TestAuthService_SendCode_StoresHashAndEchoesPhone(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	var plaintext string
	f.codeHasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		RunAndReturn(func(code string) (string, error) {
			plaintext = code
			return "hashed:" + code, nil
		})

	f.codeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VerificationCode")).
		RunAndReturn(func(_ context.Context, code *entity.VerificationCode) error {
			assert.Equal(t, "+79991234567", code.Phone)
			assert.Equal(t, "hashed:"+plaintext, code.CodeHash)
			assert.True(t, code.ExpiresAt.After(time.Now()))
			return nil
		})

	output, err := f.service.SendCode(ctx, &usecase.SendCodeInput{Phone: "+79991234567"})
	require.NoError(t, err)
	assert.Equal(t, "Код отправлен на +79991234567", output.Message)
	assert.Len(t, plaintext, 4)
	assert.Equal(t, plaintext, output.DevCode)
}

func TestAuthService_SendCode_HidesCodeOutsideDebug(t *testing.T) {
	f := createTestAuthService(t)
	f.cfg.Env.Debug = false

	ctx := context.Background()

	f.codeHasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hash", nil)
	f.codeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.VerificationCode")).Return(nil)

	output, err := f.service.SendCode(ctx, &usecase.SendCodeInput{Phone: "+79991234567"})
	require.NoError(t, err)
	assert.Empty(t, output.DevCode)
}

func TestAuthService_VerifyCode_CreatesUserOnFirstVerification(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	codeID := uuid.New()

	f.codeRepo.EXPECT().
		FindActiveByPhone(ctx, "+79991234567", mock.AnythingOfType("time.Time"), 3).
		Return([]*entity.VerificationCode{
			{ID: codeID, Phone: "+79991234567", CodeHash: "stored-hash", ExpiresAt: time.Now().Add(time.Minute)},
		}, nil)

	f.codeHasher.EXPECT().Check("1234", "stored-hash").Return(true)
	f.codeRepo.EXPECT().Consume(ctx, codeID, mock.AnythingOfType("time.Time")).Return(nil)

	f.userRepo.EXPECT().
		FindByPhone(ctx, "+79991234567").
		Return(nil, repository.ErrUserNotFound)

	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()
			assert.Equal(t, entity.UserTypeCustomer, user.UserType)
			assert.True(t, user.IsVerified)
			return nil
		})

	f.tokenService.EXPECT().
		GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), "customer").
		Return("signed-token", nil)

	output, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Phone: "+79991234567",
		Code:  "1234",
		Name:  "Иван",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, "Иван", output.User.Name)
	assert.True(t, output.User.IsVerified)
}

func TestAuthService_VerifyCode_ReverifiesExistingUser(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	codeID := uuid.New()
	userID := uuid.New()

	f.codeRepo.EXPECT().
		FindActiveByPhone(ctx, "+79991234567", mock.AnythingOfType("time.Time"), 3).
		Return([]*entity.VerificationCode{
			{ID: codeID, CodeHash: "stored-hash", ExpiresAt: time.Now().Add(time.Minute)},
		}, nil)

	f.codeHasher.EXPECT().Check("1234", "stored-hash").Return(true)
	f.codeRepo.EXPECT().Consume(ctx, codeID, mock.AnythingOfType("time.Time")).Return(nil)

	existing := &entity.User{
		ID:       userID,
		Phone:    "+79991234567",
		Name:     "Мария",
		UserType: entity.UserTypeContractor,
	}
	f.userRepo.EXPECT().FindByPhone(ctx, "+79991234567").Return(existing, nil)
	f.userRepo.EXPECT().Update(ctx, existing).Return(nil)

	f.tokenService.EXPECT().
		GenerateAccessToken(userID, "contractor").
		Return("signed-token", nil)

	output, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Phone: "+79991234567",
		Code:  "1234",
		Name:  "Мария",
	})
	require.NoError(t, err)
	assert.True(t, output.User.IsVerified)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_VerifyCode_RejectsWrongCode(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.codeRepo.EXPECT().
		FindActiveByPhone(ctx, "+79991234567", mock.AnythingOfType("time.Time"), 3).
		Return([]*entity.VerificationCode{
			{ID: uuid.New(), CodeHash: "stored-hash", ExpiresAt: time.Now().Add(time.Minute)},
		}, nil)

	f.codeHasher.EXPECT().Check("9999", "stored-hash").Return(false)

	_, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Phone: "+79991234567",
		Code:  "9999",
		Name:  "Иван",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCodeInvalid)
}

func TestAuthService_VerifyCode_RejectsWhenNoActiveCodes(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.codeRepo.EXPECT().
		FindActiveByPhone(ctx, "+79991234567", mock.AnythingOfType("time.Time"), 3).
		Return([]*entity.VerificationCode{}, nil)

	_, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Phone: "+79991234567",
		Code:  "1234",
		Name:  "Иван",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCodeInvalid)
}

func TestAuthService_VerifyCode_LosesConsumeRace(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()
	codeID := uuid.New()

	f.codeRepo.EXPECT().
		FindActiveByPhone(ctx, "+79991234567", mock.AnythingOfType("time.Time"), 3).
		Return([]*entity.VerificationCode{
			{ID: codeID, CodeHash: "stored-hash", ExpiresAt: time.Now().Add(time.Minute)},
		}, nil)

	f.codeHasher.EXPECT().Check("1234", "stored-hash").Return(true)

	// A concurrent verification consumed the code first.
	f.codeRepo.EXPECT().
		Consume(ctx, codeID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrCodeNotFound)

	_, err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Phone: "+79991234567",
		Code:  "1234",
		Name:  "Иван",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCodeInvalid)
}

func TestAuthService_GetUserByPhone_NotFound(t *testing.T) {
	f := createTestAuthService(t)

	ctx := context.Background()

	f.userRepo.EXPECT().
		FindByPhone(ctx, "+70000000000").
		Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetUserByPhone(ctx, "+70000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
