package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "chave-de-teste"}

	return NewService(userRepo, cfg), userRepo
}

func hashPassword(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestService_CreateUser(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@email.com").
		Return(nil, nil)

	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			// Senha nunca é persistida em texto puro
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@123")))
			assert.Equal(t, domain.RoleAnalyst, user.RoleID)
			user.ID = 10
			return user, nil
		})

	user, err := service.CreateUser(&domain.User{
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        " Ana@Email.com ",
		PasswordHash: "Senha@123",
		WorkspaceID:  "ws_1",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, user.ID)
	assert.Equal(t, "ana@email.com", user.Email)
}

func TestService_CreateUser_Validacoes(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
	}{
		{
			name: "sem email",
			user: &domain.User{Name: "Ana", Lastname: "Souza", PasswordHash: "Senha@123", WorkspaceID: "ws_1"},
		},
		{
			name: "sem nome",
			user: &domain.User{Lastname: "Souza", Email: "ana@email.com", PasswordHash: "Senha@123", WorkspaceID: "ws_1"},
		},
		{
			name: "sem senha",
			user: &domain.User{Name: "Ana", Lastname: "Souza", Email: "ana@email.com", WorkspaceID: "ws_1"},
		},
		{
			name: "sem workspace",
			user: &domain.User{Name: "Ana", Lastname: "Souza", Email: "ana@email.com", PasswordHash: "Senha@123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			_, err := service.CreateUser(tt.user)
			assert.ErrorIs(t, err, ErrMissingRequiredData)
		})
	}
}

func TestService_CreateUser_EmailJaCadastrado(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@email.com").
		Return(&domain.User{ID: 5, Email: "ana@email.com"}, nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@email.com",
		PasswordHash: "Senha@123",
		WorkspaceID:  "ws_1",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestService_LoginUser(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().
		GetUserByEmail("ana@email.com").
		Return(&domain.User{
			ID:           7,
			Name:         "Ana",
			Email:        "ana@email.com",
			Active:       true,
			RoleID:       domain.RoleManager,
			WorkspaceID:  "ws_1",
			PasswordHash: hashPassword(t, "Senha@123"),
		}, nil)

	token, err := service.LoginUser("Ana@Email.com", "Senha@123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// O token emitido deve carregar os dados do usuário e do workspace
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, domain.RoleManager, claims.UserRoleID)
	assert.Equal(t, "ws_1", claims.UserWorkspaceID)
}

func TestService_LoginUser_Falhas(t *testing.T) {
	t.Run("usuário não encontrado", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("ana@email.com").
			Return(nil, nil)

		_, err := service.LoginUser("ana@email.com", "Senha@123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("conta desativada", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("ana@email.com").
			Return(&domain.User{ID: 7, Active: false}, nil)

		_, err := service.LoginUser("ana@email.com", "Senha@123")
		assert.ErrorIs(t, err, ErrUserDisabled)

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, 7, authErr.UserID)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByEmail("ana@email.com").
			Return(&domain.User{
				ID:           7,
				Active:       true,
				PasswordHash: hashPassword(t, "Senha@123"),
			}, nil)

		_, err := service.LoginUser("ana@email.com", "SenhaErrada@1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("dados ausentes", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.LoginUser("", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidateToken_AssinaturaInvalida(t *testing.T) {
	serviceA, userRepoA := newTestService(t)

	userRepoA.EXPECT().
		GetUserByEmail("ana@email.com").
		Return(&domain.User{
			ID:           7,
			Active:       true,
			PasswordHash: hashPassword(t, "Senha@123"),
		}, nil)

	token, err := serviceA.LoginUser("ana@email.com", "Senha@123")
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	serviceB := NewService(mocks.NewMockUserRepository(ctrl), &config.Config{SecretKey: "outra-chave"})

	_, err = serviceB.ValidateToken(token)
	assert.Error(t, err)
}

func TestService_GenerateStrongPassword(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().
		GetUserByID(1).
		Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin, WorkspaceID: "ws_1"}, nil)

	userRepo.EXPECT().
		GetUserByID(2).
		Return(&domain.User{ID: 2, RoleID: domain.RoleAnalyst, WorkspaceID: "ws_1"}, nil)

	userRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			assert.Equal(t, 2, user.ID)
			assert.NotEmpty(t, user.PasswordHash)
			return nil
		})

	password, err := service.GenerateStrongPassword(1, 2)
	require.NoError(t, err)
	assert.Len(t, password, 12)
	assert.NoError(t, service.ValidatePasswordStrength(password))
}

func TestService_GenerateStrongPassword_Permissoes(t *testing.T) {
	t.Run("solicitante não é administrador", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, RoleID: domain.RoleManager, WorkspaceID: "ws_1"}, nil)

		_, err := service.GenerateStrongPassword(1, 2)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("usuário alvo de outro workspace", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin, WorkspaceID: "ws_1"}, nil)

		userRepo.EXPECT().
			GetUserByID(2).
			Return(&domain.User{ID: 2, RoleID: domain.RoleAnalyst, WorkspaceID: "ws_2"}, nil)

		_, err := service.GenerateStrongPassword(1, 2)
		assert.ErrorIs(t, err, ErrInsufficientPrivilege)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "senha válida", password: "Senha@123", wantErr: false},
		{name: "muito curta", password: "Se@1", wantErr: true},
		{name: "sem maiúscula", password: "senha@123", wantErr: true},
		{name: "sem número", password: "Senha@abc", wantErr: true},
		{name: "sem caractere especial", password: "Senha1234", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().
		GetUserByID(7).
		Return(&domain.User{ID: 7, PasswordHash: hashPassword(t, "SenhaAtual@1")}, nil)

	userRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("SenhaNova@2")))
			return nil
		})

	err := service.ChangePassword(7, "SenhaAtual@1", "SenhaNova@2")
	assert.NoError(t, err)
}

func TestService_ChangePassword_Falhas(t *testing.T) {
	t.Run("nova senha igual à atual", func(t *testing.T) {
		service, _ := newTestService(t)

		err := service.ChangePassword(7, "SenhaAtual@1", "SenhaAtual@1")
		assert.ErrorIs(t, err, ErrSamePassword)
	})

	t.Run("nova senha fraca", func(t *testing.T) {
		service, _ := newTestService(t)

		err := service.ChangePassword(7, "SenhaAtual@1", "fraca")
		assert.Error(t, err)
	})

	t.Run("senha atual incorreta", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(7).
			Return(&domain.User{ID: 7, PasswordHash: hashPassword(t, "SenhaAtual@1")}, nil)

		err := service.ChangePassword(7, "SenhaErrada@1", "SenhaNova@2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ListUsers_OmitePasswordHash(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().
		ListByWorkspace("ws_1").
		Return([]*domain.User{
			{ID: 1, PasswordHash: "hash-1"},
			{ID: 2, PasswordHash: "hash-2"},
		}, nil)

	users, err := service.ListUsers("ws_1")
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
}

func TestService_ChangePassword_ErroBanco(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().
		GetUserByID(7).
		Return(nil, errors.New("connection refused"))

	err := service.ChangePassword(7, "SenhaAtual@1", "SenhaNova@2")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, authErr.Code)
}
