package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/godcrm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/godcrm-api/internal/config"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "segredo-de-teste"}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           1,
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ana@godcrm.local",
			Active:       true,
			RoleID:       1,
			PasswordHash: hashPassword(t, "Senha@123"),
		}
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(t *testing.T)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Login válido gera token JWT verificável",
			email:    "ana@godcrm.local",
			password: "Senha@123",
			setup: func(t *testing.T) {
				userRepo.EXPECT().
					GetUserByEmail("ana@godcrm.local").
					Return(activeUser(t), nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				assert.Equal(t, "ana@godcrm.local", claims.UserEmail)
			},
		},
		{
			name:     "Email é normalizado antes da consulta",
			email:    "  ANA@GodCRM.local ",
			password: "Senha@123",
			setup: func(t *testing.T) {
				userRepo.EXPECT().
					GetUserByEmail("ana@godcrm.local").
					Return(activeUser(t), nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Senha incorreta é rejeitada",
			email:    "ana@godcrm.local",
			password: "senha-errada",
			setup: func(t *testing.T) {
				userRepo.EXPECT().
					GetUserByEmail("ana@godcrm.local").
					Return(activeUser(t), nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:     "Conta desativada é rejeitada",
			email:    "ana@godcrm.local",
			password: "Senha@123",
			setup: func(t *testing.T) {
				user := activeUser(t)
				user.Active = false
				userRepo.EXPECT().
					GetUserByEmail("ana@godcrm.local").
					Return(user, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserDisabled)
				assert.Empty(t, token)
			},
		},
		{
			name:     "Usuário inexistente é rejeitado",
			email:    "ninguem@godcrm.local",
			password: "Senha@123",
			setup: func(t *testing.T) {
				userRepo.EXPECT().
					GetUserByEmail("ninguem@godcrm.local").
					Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
				assert.Empty(t, token)
			},
		},
		{
			name:     "Credenciais vazias são rejeitadas sem consulta",
			email:    "",
			password: "",
			setup:    func(t *testing.T) {},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
				assert.Empty(t, token)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		other := NewService(userRepo, &config.Config{SecretKey: "outro-segredo"})

		userRepo.EXPECT().
			GetUserByEmail("ana@godcrm.local").
			Return(&domain.User{
				ID:           1,
				Email:        "ana@godcrm.local",
				Active:       true,
				PasswordHash: hashPassword(t, "Senha@123"),
			}, nil)

		token, err := other.LoginUser("ana@godcrm.local", "Senha@123")
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Token malformado é rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("nao-e-um-jwt")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "Senha completa é aceita", password: "Senha@123", valid: true},
		{name: "Senha curta é rejeitada", password: "S@1a", valid: false},
		{name: "Sem maiúscula é rejeitada", password: "senha@123", valid: false},
		{name: "Sem minúscula é rejeitada", password: "SENHA@123", valid: false},
		{name: "Sem número é rejeitada", password: "Senha@abc", valid: false},
		{name: "Sem caractere especial é rejeitada", password: "Senha1234", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	t.Run("Troca de senha válida grava o novo hash", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "Antiga@123")}, nil)

		userRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nova@Senha1")))
				return nil
			})

		assert.NoError(t, service.ChangePassword(1, "Antiga@123", "Nova@Senha1"))
	})

	t.Run("Senha atual incorreta bloqueia a troca", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "Antiga@123")}, nil)

		err := service.ChangePassword(1, "errada", "Nova@Senha1")
		assert.EqualError(t, err, "senha atual incorreta")
	})

	t.Run("Senha nova fraca bloqueia a troca", func(t *testing.T) {
		userRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "Antiga@123")}, nil)

		err := service.ChangePassword(1, "Antiga@123", "fraca")
		assert.Error(t, err)
	})
}
