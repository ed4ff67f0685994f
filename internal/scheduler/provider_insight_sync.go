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
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/internal/metrics"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/insighting"
)

// InsightSyncConfig representa a configuração do agendador de insights
type InsightSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// InsightSyncService gerencia o agendamento e execução da sincronização
// diária de insights de todas as plataformas.
type InsightSyncService struct {
	scheduler           *gocron.Scheduler
	config              InsightSyncConfig
	accountRepo         repository.AccountRepository
	insightService      insighting.Insighter
	metrics             *metrics.Metrics
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewInsightSyncService cria uma nova instância do serviço de sincronização de insights
func NewInsightSyncService(
	accountRepo repository.AccountRepository,
	insightService insighting.Insighter,
	m *metrics.Metrics,
	appConfig *config.Config,
) *InsightSyncService {
	insightConfig := InsightSyncConfig{
		CronSchedule:        appConfig.InsightSync.CronSchedule,
		LookbackDays:        appConfig.InsightSync.LookbackDays,
		RequestDelaySeconds: appConfig.InsightSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.InsightSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.InsightSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         insightConfig.CronSchedule,
		"lookback_days":         insightConfig.LookbackDays,
		"request_delay_seconds": insightConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   insightConfig.MaxConcurrentJobs,
		"sync_enabled":          insightConfig.SyncEnabled,
	}).Info("Configuração do agendador de insights carregada")

	return &InsightSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         insightConfig,
		accountRepo:    accountRepo,
		insightService: insightService,
		metrics:        m,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *InsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts sincroniza os insights de todas as contas ativas no período
// de lookback configurado.
func (s *InsightSyncService) syncAllAccounts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de insights para todas as contas ativas")

	accounts, err := s.accountRepo.ListActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de insights")
		s.recordRun("error")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de insights")
		s.recordRun("noop")
		return
	}

	filters := s.lookbackFilters()

	// Contas em paralelo limitado; dentro de cada conta o serviço de
	// insights já limita os dias concorrentes.
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(acc *domain.AdAccount) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"external_id":  acc.ExternalID,
				"account_name": acc.Name,
				"provider":     acc.Provider,
			}).Info("Sincronizando insights da conta")

			if err := s.insightService.SyncAccountInsights(acc.ID, filters); err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": acc.ID,
					"provider":   acc.Provider,
					"error":      err.Error(),
				}).Error("Erro ao sincronizar insights da conta")
			}

			// Pausa entre contas para não sobrecarregar as APIs
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(account)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(accounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de insights concluída")

	s.lastSyncCompletedAt = time.Now()
	s.recordRun("success")
}

// lookbackFilters monta o período de ontem até lookback dias atrás.
func (s *InsightSyncService) lookbackFilters() *domain.InsightFilters {
	end := time.Now().AddDate(0, 0, -1)
	start := time.Now().AddDate(0, 0, -s.config.LookbackDays)
	return &domain.InsightFilters{
		StartDate: &start,
		EndDate:   &end,
	}
}

func (s *InsightSyncService) recordRun(result string) {
	if s.metrics != nil {
		s.metrics.RecordInsightSync(result)
	}
}

// TriggerManualSync inicia manualmente uma sincronização de insights
func (s *InsightSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de insights")
	go s.syncAllAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *InsightSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
