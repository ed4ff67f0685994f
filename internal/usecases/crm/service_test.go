package crm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateClient(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.CreateClientRequest
		setup    func(clientRepo *mocks.MockClientRepository)
		validate func(t *testing.T, result *domain.Client, err error)
	}{
		{
			name: "Dados válidos - deve normalizar e-mail e criar como lead",
			request: &domain.CreateClientRequest{
				Name:    "  Loja Aurora  ",
				Company: "Aurora Comércio LTDA",
				Email:   "  Contato@Aurora.com.BR ",
			},
			setup: func(clientRepo *mocks.MockClientRepository) {
				clientRepo.EXPECT().CreateClient(gomock.Any()).DoAndReturn(func(c *domain.Client) (*domain.Client, error) {
					assert.NotEmpty(t, c.ID)
					assert.Equal(t, "Loja Aurora", c.Name)
					assert.Equal(t, "contato@aurora.com.br", c.Email)
					assert.Equal(t, domain.ClientStatusLead, c.Status)
					return c, nil
				})
			},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Loja Aurora", result.Name)
			},
		},
		{
			name:    "Nome vazio - deve recusar sem chamar o repositório",
			request: &domain.CreateClientRequest{Name: "   ", Email: "x@y.com"},
			setup:   func(clientRepo *mocks.MockClientRepository) {},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "obrigatórios")
				assert.Nil(t, result)
			},
		},
		{
			name:    "E-mail vazio - deve recusar sem chamar o repositório",
			request: &domain.CreateClientRequest{Name: "Loja Aurora", Email: ""},
			setup:   func(clientRepo *mocks.MockClientRepository) {},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clientRepo := mocks.NewMockClientRepository(ctrl)
			invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
			tt.setup(clientRepo)

			service := NewService(clientRepo, invoiceRepo)
			result, err := service.CreateClient(tt.request)
			tt.validate(t, result, err)
		})
	}
}

func TestService_UpdateClient(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("Deve aplicar somente os campos enviados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		existing := &domain.Client{
			ID:              "cli-1",
			Name:            "Loja Aurora",
			Email:           "contato@aurora.com.br",
			Status:          domain.ClientStatusLead,
			MonthlyRetainer: 2500,
		}

		clientRepo.EXPECT().GetClientByID("cli-1").Return(existing, nil)
		clientRepo.EXPECT().UpdateClient(gomock.Any()).Return(nil)

		service := NewService(clientRepo, invoiceRepo)

		active := domain.ClientStatusActive
		result, err := service.UpdateClient(&domain.UpdateClientRequest{
			ID:     "cli-1",
			Status: &active,
			Email:  strPtr(" NOVO@Aurora.com.br "),
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.ClientStatusActive, result.Status)
		assert.Equal(t, "novo@aurora.com.br", result.Email)
		assert.Equal(t, "Loja Aurora", result.Name)
		assert.Equal(t, 2500.0, result.MonthlyRetainer)
	})

	t.Run("Cliente não encontrado - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		clientRepo.EXPECT().GetClientByID("cli-404").Return(nil, nil)

		service := NewService(clientRepo, invoiceRepo)

		result, err := service.UpdateClient(&domain.UpdateClientRequest{ID: "cli-404"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cliente não encontrado")
		assert.Nil(t, result)
	})
}

func TestService_GetBillingSummary(t *testing.T) {
	t.Run("Deve somar faturas por status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		invoices := []*domain.Invoice{
			{PublicID: "inv-1", Status: domain.InvoiceStatusOpen, Amount: 1000},
			{PublicID: "inv-2", Status: domain.InvoiceStatusOpen, Amount: 500},
			{PublicID: "inv-3", Status: domain.InvoiceStatusPaid, Amount: 2500},
			{PublicID: "inv-4", Status: domain.InvoiceStatusOverdue, Amount: 700},
			{PublicID: "inv-5", Status: domain.InvoiceStatusVoid, Amount: 9999},
		}

		clientRepo.EXPECT().GetClientByID("cli-1").Return(&domain.Client{ID: "cli-1"}, nil)
		invoiceRepo.EXPECT().ListByClientID("cli-1").Return(invoices, nil)

		service := NewService(clientRepo, invoiceRepo)

		summary, err := service.GetBillingSummary("cli-1")

		assert.NoError(t, err)
		assert.Equal(t, "cli-1", summary.ClientID)
		assert.Equal(t, 1500.0, summary.OpenTotal)
		assert.Equal(t, 2500.0, summary.PaidTotal)
		assert.Equal(t, 700.0, summary.OverdueTotal)

		// Anuladas contam no total de faturas mas não somam em nenhum bucket
		assert.Equal(t, 5, summary.InvoiceCount)
		assert.Len(t, summary.Invoices, 5)
	})

	t.Run("Cliente não encontrado - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		clientRepo.EXPECT().GetClientByID("cli-404").Return(nil, nil)

		service := NewService(clientRepo, invoiceRepo)

		summary, err := service.GetBillingSummary("cli-404")
		assert.Error(t, err)
		assert.Nil(t, summary)
	})
}

func TestService_CreateInvoice(t *testing.T) {
	dueDate := time.Now().AddDate(0, 1, 0)

	t.Run("Deve criar fatura aberta com moeda padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		clientRepo.EXPECT().GetClientByID("cli-1").Return(&domain.Client{ID: "cli-1"}, nil)
		invoiceRepo.EXPECT().CreateInvoice(gomock.Any()).DoAndReturn(func(inv *domain.Invoice) (*domain.Invoice, error) {
			assert.NotEmpty(t, inv.PublicID)
			assert.Equal(t, domain.InvoiceStatusOpen, inv.Status)
			assert.Equal(t, "BRL", inv.Currency)
			assert.Equal(t, 3500.0, inv.Amount)
			return inv, nil
		})

		service := NewService(clientRepo, invoiceRepo)

		invoice, err := service.CreateInvoice(&domain.CreateInvoiceRequest{
			ClientID:    "cli-1",
			Description: "Gestão de tráfego - março",
			Amount:      3500,
			DueDate:     dueDate,
		})

		assert.NoError(t, err)
		assert.Equal(t, "cli-1", invoice.ClientID)
	})

	t.Run("Valor não positivo - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		clientRepo.EXPECT().GetClientByID("cli-1").Return(&domain.Client{ID: "cli-1"}, nil)

		service := NewService(clientRepo, invoiceRepo)

		invoice, err := service.CreateInvoice(&domain.CreateInvoiceRequest{
			ClientID: "cli-1",
			Amount:   0,
			DueDate:  dueDate,
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "maior que zero")
		assert.Nil(t, invoice)
	})

	t.Run("Cliente não encontrado - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		clientRepo.EXPECT().GetClientByID("cli-404").Return(nil, nil)

		service := NewService(clientRepo, invoiceRepo)

		invoice, err := service.CreateInvoice(&domain.CreateInvoiceRequest{
			ClientID: "cli-404",
			Amount:   100,
			DueDate:  dueDate,
		})

		assert.Error(t, err)
		assert.Nil(t, invoice)
	})
}

func TestService_UpdateInvoiceStatus(t *testing.T) {
	t.Run("Marcar como paga - deve registrar a data de pagamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		invoiceRepo.EXPECT().GetByPublicID("inv-1").Return(&domain.Invoice{
			PublicID: "inv-1",
			Status:   domain.InvoiceStatusOpen,
			Amount:   1000,
		}, nil)
		invoiceRepo.EXPECT().
			UpdateStatus("inv-1", domain.InvoiceStatusPaid, gomock.Not(gomock.Nil())).
			Return(nil)

		service := NewService(clientRepo, invoiceRepo)

		invoice, err := service.UpdateInvoiceStatus("inv-1", domain.InvoiceStatusPaid)

		assert.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusPaid, invoice.Status)
		assert.NotNil(t, invoice.PaidAt)
	})

	t.Run("Fatura paga não pode ser reaberta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		invoiceRepo.EXPECT().GetByPublicID("inv-1").Return(&domain.Invoice{
			PublicID: "inv-1",
			Status:   domain.InvoiceStatusPaid,
		}, nil)

		service := NewService(clientRepo, invoiceRepo)

		invoice, err := service.UpdateInvoiceStatus("inv-1", domain.InvoiceStatusOpen)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "não pode mudar")
		assert.Nil(t, invoice)
	})

	t.Run("Fatura anulada não pode mudar de status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		invoiceRepo.EXPECT().GetByPublicID("inv-2").Return(&domain.Invoice{
			PublicID: "inv-2",
			Status:   domain.InvoiceStatusVoid,
		}, nil)

		service := NewService(clientRepo, invoiceRepo)

		_, err := service.UpdateInvoiceStatus("inv-2", domain.InvoiceStatusPaid)
		assert.Error(t, err)
	})

	t.Run("Status desconhecido - deve recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		invoiceRepo.EXPECT().GetByPublicID("inv-1").Return(&domain.Invoice{
			PublicID: "inv-1",
			Status:   domain.InvoiceStatusOpen,
		}, nil)

		service := NewService(clientRepo, invoiceRepo)

		_, err := service.UpdateInvoiceStatus("inv-1", domain.InvoiceStatus("CANCELLED"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status de fatura inválido")
	})

	t.Run("Fatura não encontrada - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		invoiceRepo.EXPECT().GetByPublicID("inv-404").Return(nil, nil)

		service := NewService(clientRepo, invoiceRepo)

		_, err := service.UpdateInvoiceStatus("inv-404", domain.InvoiceStatusPaid)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "fatura não encontrada")
	})

	t.Run("Mesmo status - transição é aceita sem efeito colateral", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		clientRepo := mocks.NewMockClientRepository(ctrl)
		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		invoiceRepo.EXPECT().GetByPublicID("inv-1").Return(&domain.Invoice{
			PublicID: "inv-1",
			Status:   domain.InvoiceStatusPaid,
		}, nil)
		invoiceRepo.EXPECT().
			UpdateStatus("inv-1", domain.InvoiceStatusPaid, gomock.Not(gomock.Nil())).
			Return(nil)

		service := NewService(clientRepo, invoiceRepo)

		invoice, err := service.UpdateInvoiceStatus("inv-1", domain.InvoiceStatusPaid)
		assert.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatusPaid, invoice.Status)
	})
}
