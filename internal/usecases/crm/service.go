package crm

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/google/uuid"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

// Manager define a interface do CRM consumida pelos handlers.
type Manager interface {
	ListClients() ([]*domain.Client, error)
	CreateClient(request *domain.CreateClientRequest) (*domain.Client, error)
	UpdateClient(request *domain.UpdateClientRequest) (*domain.Client, error)

	// GetBillingSummary devolve as faturas do cliente e os totais por status.
	GetBillingSummary(clientID string) (*domain.BillingSummary, error)
	CreateInvoice(request *domain.CreateInvoiceRequest) (*domain.Invoice, error)
	UpdateInvoiceStatus(publicID string, status domain.InvoiceStatus) (*domain.Invoice, error)
}

type Service struct {
	clientRepository  repository.ClientRepository
	invoiceRepository repository.InvoiceRepository
}

// NewService cria uma nova instância do serviço de CRM
func NewService(
	clientRepo repository.ClientRepository,
	invoiceRepo repository.InvoiceRepository,
) Manager {
	return &Service{
		clientRepository:  clientRepo,
		invoiceRepository: invoiceRepo,
	}
}

func (s *Service) ListClients() ([]*domain.Client, error) {
	return s.clientRepository.ListClients()
}

func (s *Service) CreateClient(request *domain.CreateClientRequest) (*domain.Client, error) {
	if strings.TrimSpace(request.Name) == "" || strings.TrimSpace(request.Email) == "" {
		return nil, fmt.Errorf("nome e e-mail do cliente são obrigatórios")
	}

	client := &domain.Client{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(request.Name),
		Company:         strings.TrimSpace(request.Company),
		Email:           strings.ToLower(strings.TrimSpace(request.Email)),
		Phone:           request.Phone,
		Status:          domain.ClientStatusLead,
		MonthlyRetainer: request.MonthlyRetainer,
	}

	return s.clientRepository.CreateClient(client)
}

func (s *Service) UpdateClient(request *domain.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepository.GetClientByID(request.ID)
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, fmt.Errorf("cliente não encontrado: %s", request.ID)
	}

	if request.Name != nil {
		client.Name = *request.Name
	}
	if request.Company != nil {
		client.Company = *request.Company
	}
	if request.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*request.Email))
	}
	if request.Phone != nil {
		client.Phone = request.Phone
	}
	if request.Status != nil {
		client.Status = *request.Status
	}
	if request.MonthlyRetainer != nil {
		client.MonthlyRetainer = *request.MonthlyRetainer
	}

	if err := s.clientRepository.UpdateClient(client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *Service) GetBillingSummary(clientID string) (*domain.BillingSummary, error) {
	client, err := s.clientRepository.GetClientByID(clientID)
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, fmt.Errorf("cliente não encontrado: %s", clientID)
	}

	invoices, err := s.invoiceRepository.ListByClientID(clientID)
	if err != nil {
		return nil, err
	}

	summary := &domain.BillingSummary{
		ClientID: clientID,
		Invoices: invoices,
	}

	for _, invoice := range invoices {
		summary.InvoiceCount++
		switch invoice.Status {
		case domain.InvoiceStatusOpen:
			summary.OpenTotal += invoice.Amount
		case domain.InvoiceStatusPaid:
			summary.PaidTotal += invoice.Amount
		case domain.InvoiceStatusOverdue:
			summary.OverdueTotal += invoice.Amount
		}
	}

	return summary, nil
}

func (s *Service) CreateInvoice(request *domain.CreateInvoiceRequest) (*domain.Invoice, error) {
	client, err := s.clientRepository.GetClientByID(request.ClientID)
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, fmt.Errorf("cliente não encontrado: %s", request.ClientID)
	}

	if request.Amount <= 0 {
		return nil, fmt.Errorf("o valor da fatura deve ser maior que zero")
	}

	publicID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador da fatura: %w", err)
	}

	currency := strings.ToUpper(strings.TrimSpace(request.Currency))
	if currency == "" {
		currency = "BRL"
	}

	invoice := &domain.Invoice{
		PublicID:    publicID,
		ClientID:    request.ClientID,
		Description: request.Description,
		Amount:      request.Amount,
		Currency:    currency,
		Status:      domain.InvoiceStatusOpen,
		IssuedAt:    time.Now(),
		DueDate:     request.DueDate,
	}

	return s.invoiceRepository.CreateInvoice(invoice)
}

func (s *Service) UpdateInvoiceStatus(publicID string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepository.GetByPublicID(publicID)
	if err != nil {
		return nil, err
	}

	if invoice == nil {
		return nil, fmt.Errorf("fatura não encontrada: %s", publicID)
	}

	if err := validateStatusTransition(invoice.Status, status); err != nil {
		return nil, err
	}

	var paidAt *time.Time
	if status == domain.InvoiceStatusPaid {
		now := time.Now()
		paidAt = &now
	}

	if err := s.invoiceRepository.UpdateStatus(publicID, status, paidAt); err != nil {
		return nil, err
	}

	invoice.Status = status
	invoice.PaidAt = paidAt

	return invoice, nil
}

// validateStatusTransition impede reabrir fatura paga ou anulada.
func validateStatusTransition(from, to domain.InvoiceStatus) error {
	if from == to {
		return nil
	}

	switch from {
	case domain.InvoiceStatusPaid, domain.InvoiceStatusVoid:
		return fmt.Errorf("fatura %s não pode mudar para %s", from, to)
	}

	switch to {
	case domain.InvoiceStatusOpen, domain.InvoiceStatusPaid, domain.InvoiceStatusOverdue, domain.InvoiceStatusVoid:
		return nil
	}

	return fmt.Errorf("status de fatura inválido: %s", to)
}
