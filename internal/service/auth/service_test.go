package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"chisan-market/internal/config"
	"chisan-market/internal/domain"
	"chisan-market/internal/service/auth"
	"chisan-market/tests/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	input := domain.CreateUserInput{
		Name:     "Aiko",
		Email:    "aiko@example.com",
		Password: "password123",
		Role:     domain.RoleMunicipality,
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, testConfig())

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == input.Email &&
				u.Role == domain.RoleMunicipality &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)) == nil
		})).Return(nil).Once()

		user, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, input.Email, user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, testConfig())

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil).Once()

		_, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, domain.ErrEmailExists)
	})

	t.Run("Invalid Role", func(t *testing.T) {
		svc := auth.NewService(new(mocks.UserRepository), testConfig())

		bad := input
		bad.Role = "ADMIN"
		_, err := svc.Register(ctx, bad)

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &domain.User{
		ID:           uuid.New(),
		Email:        "aiko@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleSales,
	}

	t.Run("Success Issues Token", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, testConfig())

		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		result, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "password123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, int64(3600), result.ExpiresIn)

		claims, err := svc.ValidateAccessToken(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, domain.RoleSales, claims.Role)
	})

	// Wrong password and unknown email must be indistinguishable.
	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, testConfig())

		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil).Once()

		_, err := svc.Login(ctx, domain.LoginInput{Email: user.Email, Password: "nope"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		svc := auth.NewService(userRepo, testConfig())

		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil).Once()

		_, err := svc.Login(ctx, domain.LoginInput{Email: "ghost@example.com", Password: "password123"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	svc := auth.NewService(new(mocks.UserRepository), testConfig())

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-token")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWTSecret = "different-secret"
		otherSvc := auth.NewService(new(mocks.UserRepository), otherCfg)

		userRepo := new(mocks.UserRepository)
		issuer := auth.NewService(userRepo, testConfig())
		hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
		user := &domain.User{ID: uuid.New(), Email: "a@b.c", PasswordHash: string(hash), Role: domain.RoleProducer}
		userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil).Once()

		result, err := issuer.Login(context.Background(), domain.LoginInput{Email: user.Email, Password: "pw"})
		assert.NoError(t, err)

		_, err = otherSvc.ValidateAccessToken(result.Token)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
