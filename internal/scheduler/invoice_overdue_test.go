package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestInvoiceOverdueService_markOverdueInvoices(t *testing.T) {
	t.Run("Deve marcar faturas vencidas e registrar a execução", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		invoiceRepo.EXPECT().MarkOverdue(gomock.Any()).Return(int64(3), nil)

		service := &InvoiceOverdueService{invoiceRepo: invoiceRepo}

		service.markOverdueInvoices()

		assert.Equal(t, int64(3), service.lastRunMarked)
		assert.False(t, service.lastRunAt.IsZero())
	})

	t.Run("Erro no repositório - não deve registrar a execução", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
		invoiceRepo.EXPECT().MarkOverdue(gomock.Any()).Return(int64(0), assert.AnError)

		service := &InvoiceOverdueService{invoiceRepo: invoiceRepo}

		service.markOverdueInvoices()

		assert.True(t, service.lastRunAt.IsZero())
		assert.Equal(t, int64(0), service.lastRunMarked)
	})

	t.Run("Execução concorrente - a segunda chamada deve ser ignorada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)

		started := make(chan struct{})
		release := make(chan struct{})

		// Somente uma chamada chega ao repositório
		invoiceRepo.EXPECT().MarkOverdue(gomock.Any()).DoAndReturn(func(now time.Time) (int64, error) {
			close(started)
			<-release
			return int64(1), nil
		})

		service := &InvoiceOverdueService{invoiceRepo: invoiceRepo}

		done := make(chan struct{})
		go func() {
			service.markOverdueInvoices()
			close(done)
		}()

		<-started
		service.markOverdueInvoices()
		close(release)
		<-done

		assert.Equal(t, int64(1), service.lastRunMarked)
	})
}

func TestInvoiceOverdueService_GetStatus(t *testing.T) {
	service := &InvoiceOverdueService{
		enabled:       true,
		cronSchedule:  "0 1 * * *",
		lastRunMarked: 5,
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, "0 1 * * *", status["cron"])
	assert.Equal(t, int64(5), status["last_run_marked"])
}
