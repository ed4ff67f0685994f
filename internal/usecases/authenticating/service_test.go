package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name     string
		password string
		hasError bool
	}{
		{
			name:     "Senha forte - deve passar",
			password: "Senha@123",
			hasError: false,
		},
		{
			name:     "Menos de 8 caracteres - deve falhar",
			password: "Se@1abc",
			hasError: true,
		},
		{
			name:     "Sem letra maiúscula - deve falhar",
			password: "senha@123",
			hasError: true,
		},
		{
			name:     "Sem letra minúscula - deve falhar",
			password: "SENHA@123",
			hasError: true,
		},
		{
			name:     "Sem número - deve falhar",
			password: "Senha@abc",
			hasError: true,
		},
		{
			name:     "Sem caractere especial - deve falhar",
			password: "Senha1234",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	service := &Service{}

	t.Run("Senha gerada deve passar na validação de força", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			password, err := generateStrongPassword(12)

			assert.NoError(t, err)
			assert.Len(t, password, 12)
			assert.NoError(t, service.ValidatePasswordStrength(password))
		}
	})

	t.Run("Comprimento abaixo do mínimo sobe para 8", func(t *testing.T) {
		password, err := generateStrongPassword(4)

		assert.NoError(t, err)
		assert.Len(t, password, 8)
	})
}

func TestService_LoginUser(t *testing.T) {
	secretKey := "chave-de-teste"
	hashed, err := bcrypt.GenerateFromPassword([]byte("Senha@123"), bcrypt.MinCost)
	assert.NoError(t, err)

	activeUser := func() *domain.User {
		return &domain.User{
			ID:           7,
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@agencia.com.br",
			PasswordHash: string(hashed),
			Active:       true,
			RoleID:       2,
		}
	}

	t.Run("Credenciais válidas - token gerado deve validar com os claims do usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("maria@agencia.com.br").Return(activeUser(), nil)

		service := &Service{userRepo: userRepo, cfg: &config.Config{SecretKey: secretKey}}

		token, err := service.LoginUser(" Maria@Agencia.com.br ", "Senha@123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "Maria", claims.UserName)
		assert.Equal(t, 2, claims.UserRoleID)
		assert.True(t, claims.UserActive)
	})

	t.Run("Usuário não encontrado - deve retornar ErrUserNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ninguem@agencia.com.br").Return(nil, nil)

		service := &Service{userRepo: userRepo, cfg: &config.Config{SecretKey: secretKey}}

		token, err := service.LoginUser("ninguem@agencia.com.br", "Senha@123")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Conta desativada - deve retornar ErrUserDisabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		disabled := activeUser()
		disabled.Active = false

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("maria@agencia.com.br").Return(disabled, nil)

		service := &Service{userRepo: userRepo, cfg: &config.Config{SecretKey: secretKey}}

		token, err := service.LoginUser("maria@agencia.com.br", "Senha@123")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Senha incorreta - deve retornar ErrInvalidCredentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("maria@agencia.com.br").Return(activeUser(), nil)

		service := &Service{userRepo: userRepo, cfg: &config.Config{SecretKey: secretKey}}

		token, err := service.LoginUser("maria@agencia.com.br", "senha-errada")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Campos vazios - deve recusar sem consultar o banco", func(t *testing.T) {
		service := &Service{cfg: &config.Config{SecretKey: secretKey}}

		token, err := service.LoginUser("", "")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_CreateUser(t *testing.T) {
	t.Run("Deve normalizar e-mail, aplicar papel padrão e hashear a senha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("joao@agencia.com.br").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.Equal(t, "joao@agencia.com.br", u.Email)
			assert.Equal(t, 3, u.RoleID)
			assert.False(t, u.Active)

			// A senha nunca é persistida em texto puro
			assert.NotEqual(t, "Senha@123", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Senha@123")))
			return u, nil
		})

		service := &Service{userRepo: userRepo}

		created, err := service.CreateUser(&domain.User{
			Name:         "João",
			Lastname:     "Souza",
			Email:        " Joao@Agencia.com.BR ",
			PasswordHash: "Senha@123",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
	})

	t.Run("Dados obrigatórios ausentes - deve recusar", func(t *testing.T) {
		service := &Service{}

		created, err := service.CreateUser(&domain.User{Name: "João"})

		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("E-mail já cadastrado - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("maria@agencia.com.br").Return(&domain.User{ID: 7}, nil)

		service := &Service{userRepo: userRepo}

		created, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@agencia.com.br",
			PasswordHash: "Senha@123",
		})

		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestService_GenerateStrongPassword_Permissoes(t *testing.T) {
	t.Run("Somente administrador pode gerar senha para outro usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(2).Return(&domain.User{ID: 2, RoleID: 2}, nil)

		service := &Service{userRepo: userRepo}

		password, err := service.GenerateStrongPassword(2, 7)

		assert.Empty(t, password)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
	})

	t.Run("Administrador gera e persiste a nova senha do alvo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: 1}, nil)
		userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, RoleID: 3}, nil)

		var persisted *domain.User
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
			persisted = u
			return nil
		})

		service := &Service{userRepo: userRepo}

		password, err := service.GenerateStrongPassword(1, 7)

		assert.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NotNil(t, persisted)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte(password)))
	})
}
