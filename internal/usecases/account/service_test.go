package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestService_ListAdAccounts(t *testing.T) {
	t.Run("Deve montar a resposta com o estado de conexão de cada conta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		clientRepo := mocks.NewMockClientRepository(ctrl)
		connectionRepo := mocks.NewMockProviderConnectionRepository(ctrl)

		accounts := []*domain.AdAccount{
			{ID: "acc-1", ExternalID: "ext-1", Provider: domain.ProviderMeta, Name: "Loja A"},
			{ID: "acc-2", ExternalID: "ext-2", Provider: domain.ProviderGoogle, Name: "Loja B"},
		}

		accountRepo.EXPECT().ListAccounts().Return(accounts, nil)
		connectionRepo.EXPECT().ListByAccountID("acc-1").Return([]*domain.ProviderConnection{
			{AccountID: "acc-1", Provider: domain.ProviderMeta, Status: domain.ConnectionStatusActive},
		}, nil)
		connectionRepo.EXPECT().ListByAccountID("acc-2").Return([]*domain.ProviderConnection{
			{AccountID: "acc-2", Provider: domain.ProviderGoogle, Status: domain.ConnectionStatusExpired},
		}, nil)

		service := NewService(accountRepo, clientRepo, connectionRepo)

		result, err := service.ListAdAccounts()

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.True(t, result[0].Connected)

		// Conexão expirada não conta como conectada
		assert.False(t, result[1].Connected)
	})

	t.Run("Falha ao listar contas - deve devolver erro tipado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		clientRepo := mocks.NewMockClientRepository(ctrl)
		connectionRepo := mocks.NewMockProviderConnectionRepository(ctrl)

		accountRepo.EXPECT().ListAccounts().Return(nil, assert.AnError)

		service := NewService(accountRepo, clientRepo, connectionRepo)

		result, err := service.ListAdAccounts()

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrFetchAccounts)
	})
}

func TestService_UpdateAccount(t *testing.T) {
	t.Run("Deve aplicar apelido, cliente e status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		clientRepo := mocks.NewMockClientRepository(ctrl)
		connectionRepo := mocks.NewMockProviderConnectionRepository(ctrl)

		existing := &domain.AdAccount{ID: "acc-1", Name: "Loja A", Status: domain.AdAccountStatusActive}

		accountRepo.EXPECT().GetAccountByID("acc-1").Return(existing, nil)
		clientRepo.EXPECT().GetClientByID("cli-1").Return(&domain.Client{ID: "cli-1"}, nil)
		accountRepo.EXPECT().UpdateAccount(gomock.Any()).Return(nil)

		service := NewService(accountRepo, clientRepo, connectionRepo)

		result, err := service.UpdateAccount(&domain.UpdateAdAccountRequest{
			ID:       "acc-1",
			Nickname: stringPtr("Aurora"),
			ClientID: stringPtr("cli-1"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Aurora", *result.Nickname)
		assert.Equal(t, "cli-1", *result.ClientID)
	})

	t.Run("ID ausente - deve recusar", func(t *testing.T) {
		service := NewService(nil, nil, nil)

		result, err := service.UpdateAccount(&domain.UpdateAdAccountRequest{})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrAccountIDRequired)
	})

	t.Run("Conta não encontrada - erro carrega o ID da conta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)

		accountRepo.EXPECT().GetAccountByID("acc-404").Return(nil, nil)

		service := NewService(accountRepo, nil, nil)

		result, err := service.UpdateAccount(&domain.UpdateAdAccountRequest{ID: "acc-404"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrAccountNotFound)

		accountErr := &AccountError{}
		assert.ErrorAs(t, err, &accountErr)
		assert.Equal(t, "acc-404", accountErr.AccountID)
	})

	t.Run("Cliente informado não existe - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		clientRepo := mocks.NewMockClientRepository(ctrl)

		accountRepo.EXPECT().GetAccountByID("acc-1").Return(&domain.AdAccount{ID: "acc-1"}, nil)
		clientRepo.EXPECT().GetClientByID("cli-404").Return(nil, nil)

		service := NewService(accountRepo, clientRepo, nil)

		result, err := service.UpdateAccount(&domain.UpdateAdAccountRequest{
			ID:       "acc-1",
			ClientID: stringPtr("cli-404"),
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrClientNotFound)
	})
}
