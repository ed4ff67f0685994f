package account

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/pkg/apiErrors"
)

type AccountService interface {
	ListAdAccounts() ([]*domain.AdAccountResponse, error)
	UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.AdAccount, error)
}

type Service struct {
	accountRepository    repository.AccountRepository
	clientRepository     repository.ClientRepository
	connectionRepository repository.ProviderConnectionRepository
}

func NewService(
	accountRepository repository.AccountRepository,
	clientRepository repository.ClientRepository,
	connectionRepository repository.ProviderConnectionRepository,
) AccountService {
	return &Service{
		accountRepository:    accountRepository,
		clientRepository:     clientRepository,
		connectionRepository: connectionRepository,
	}
}

func (s *Service) ListAdAccounts() ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	adAccountsResponse := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		adAccountsResponse = append(adAccountsResponse, &domain.AdAccountResponse{
			ID:         account.ID,
			ExternalID: account.ExternalID,
			Provider:   account.Provider,
			Name:       account.Name,
			Nickname:   account.Nickname,
			Connected:  s.hasActiveConnection(account.ID),
			Status:     account.Status,
		})
	}

	return adAccountsResponse, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAdAccountRequest) (*domain.AdAccount, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, request.ID, "Conta não encontrada")
	}

	if request.ClientID != nil && *request.ClientID != "" {
		client, err := s.clientRepository.GetClientByID(*request.ClientID)
		if err != nil {
			return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente no banco de dados")
		}
		if client == nil {
			return nil, NewAccountErrorWithID(ErrClientNotFound, apiErrors.ErrInvalidRequest, request.ID, "Cliente informado não existe")
		}
	}

	if request.Nickname != nil {
		account.Nickname = request.Nickname
	}
	if request.ClientID != nil {
		account.ClientID = request.ClientID
	}
	if request.Status != nil {
		account.Status = *request.Status
	}

	if err := s.accountRepository.UpdateAccount(account); err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return account, nil
}

func (s *Service) hasActiveConnection(accountID string) bool {
	connections, err := s.connectionRepository.ListByAccountID(accountID)
	if err != nil {
		logrus.Warnf("Erro ao listar conexões da conta %s: %v", accountID, err)
		return false
	}

	for _, connection := range connections {
		if connection.Status == domain.ConnectionStatusActive {
			return true
		}
	}

	return false
}
