package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
)

// InvoiceOverdueService marca diariamente como OVERDUE as faturas abertas com
// vencimento no passado.
type InvoiceOverdueService struct {
	scheduler     *gocron.Scheduler
	cronSchedule  string
	enabled       bool
	invoiceRepo   repository.InvoiceRepository
	runMutex      sync.Mutex
	running       bool
	lastRunAt     time.Time
	lastRunMarked int64
}

// NewInvoiceOverdueService cria uma nova instância do serviço de vencimento de faturas
func NewInvoiceOverdueService(invoiceRepo repository.InvoiceRepository, appConfig *config.Config) *InvoiceOverdueService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.InvoiceOverdue.CronSchedule,
		"enabled":       appConfig.InvoiceOverdue.Enabled,
	}).Info("Configuração do agendador de vencimento de faturas carregada")

	return &InvoiceOverdueService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.InvoiceOverdue.CronSchedule,
		enabled:      appConfig.InvoiceOverdue.Enabled,
		invoiceRepo:  invoiceRepo,
	}
}

// Start inicia o agendador
func (s *InvoiceOverdueService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Marcação de faturas vencidas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de vencimento de faturas")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.markOverdueInvoices()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar marcação de faturas vencidas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de vencimento de faturas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *InvoiceOverdueService) markOverdueInvoices() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Marcação de faturas vencidas já em andamento, ignorando")
		return
	}
	s.running = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	marked, err := s.invoiceRepo.MarkOverdue(time.Now())
	if err != nil {
		logrus.WithError(err).Error("Erro ao marcar faturas vencidas")
		return
	}

	s.lastRunAt = time.Now()
	s.lastRunMarked = marked

	logrus.WithField("invoices_marked", marked).Info("Marcação de faturas vencidas concluída")
}

// TriggerManualRun executa manualmente a marcação de faturas vencidas
func (s *InvoiceOverdueService) TriggerManualRun() {
	logrus.Info("Iniciando marcação manual de faturas vencidas")
	go s.markOverdueInvoices()
}

// GetStatus retorna o status atual do agendador
func (s *InvoiceOverdueService) GetStatus() map[string]any {
	return map[string]any{
		"enabled":         s.enabled,
		"cron":            s.cronSchedule,
		"last_run_at":     s.lastRunAt,
		"last_run_marked": s.lastRunMarked,
	}
}
