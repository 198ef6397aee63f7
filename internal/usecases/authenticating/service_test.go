package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytico-api/infrastructure/repository"
	"github.com/vfg2006/analytico-api/infrastructure/repository/mocks"
	"github.com/vfg2006/analytico-api/internal/config"
	"github.com/vfg2006/analytico-api/internal/domain"
	"github.com/vfg2006/analytico-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{SecretKey: "segredo-de-teste", Auth: config.Auth{TokenTTL: time.Hour}}
	return NewService(userRepo, cfg), userRepo
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		setup    func(repo *mocks.MockUserRepository)
		wantCode string
	}{
		{
			name:     "campos obrigatórios",
			user:     &domain.User{Email: "ana@loja.com"},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "senha curta",
			user:     &domain.User{Name: "Ana", Email: "ana@loja.com", PasswordHash: "1234567"},
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name: "email já cadastrado",
			user: &domain.User{Name: "Ana", Email: " Ana@Loja.com ", PasswordHash: "12345678"},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(&domain.User{ID: 1}, nil)
			},
			wantCode: apiErrors.ErrUserAlreadyExists,
		},
		{
			name: "violação de unicidade na inserção",
			user: &domain.User{Name: "Ana", Email: "ana@loja.com", PasswordHash: "12345678"},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(nil, nil)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, repository.ErrDuplicated)
			},
			wantCode: apiErrors.ErrUserAlreadyExists,
		},
		{
			name: "cria cliente ativo com senha em bcrypt",
			user: &domain.User{Name: " Ana ", Email: "ana@loja.com", PasswordHash: "12345678"},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(nil, nil)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.Equal(t, "Ana", u.Name)
						assert.Equal(t, defaultRoleID, u.RoleID)
						assert.True(t, u.Active)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("12345678")))
						u.ID = 10
						return u, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			user, err := service.Register(context.Background(), tt.user)

			if tt.wantCode != "" {
				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, tt.wantCode, authErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10, user.ID)
			assert.Empty(t, user.PasswordHash)
		})
	}
}

func TestService_LoginAndValidateToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: 5, Name: "Bia", Email: "bia@loja.com", PasswordHash: string(hash), Active: true, RoleID: 3}

	t.Run("login válido gera token verificável", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "bia@loja.com").Return(stored, nil)

		token, err := service.LoginUser(context.Background(), "BIA@loja.com", "senha-forte")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 5, claims.UserID)
		assert.Equal(t, 3, claims.UserRoleID)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "bia@loja.com").Return(stored, nil)

		_, err := service.LoginUser(context.Background(), "bia@loja.com", "outra")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "x@loja.com").Return(nil, nil)

		_, err := service.LoginUser(context.Background(), "x@loja.com", "senha-forte")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("usuário desativado", func(t *testing.T) {
		service, repo := newTestService(t)
		disabled := *stored
		disabled.Active = false
		repo.EXPECT().GetUserByEmail(gomock.Any(), "bia@loja.com").Return(&disabled, nil)

		_, err := service.LoginUser(context.Background(), "bia@loja.com", "senha-forte")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("token expirado", func(t *testing.T) {
		service, _ := newTestService(t)
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, err := service.generateJWT(stored)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token assinado com outro segredo", func(t *testing.T) {
		service, _ := newTestService(t)
		other := NewService(nil, &config.Config{SecretKey: "outro"})

		token, err := other.generateJWT(stored)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().GetUserByID(gomock.Any(), 9).Return(nil, nil)

	_, err := service.GetUserProfile(context.Background(), 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
