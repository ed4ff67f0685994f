package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/database/redis"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/google"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/linkedin"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/tiktok"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard-api/internal/api"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/internal/metrics"
	"github.com/vfg2006/agency-dashboard-api/internal/realtime"
	"github.com/vfg2006/agency-dashboard-api/internal/scheduler"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/collaborating"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/creative"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/crm"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/oauth"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/targeting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	defer redisClient.Close()
	logrus.Info("Conexão com Redis estabelecida com sucesso")

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	campaignInsightRepo := repository.NewCampaignInsightRepository(pgConn)
	targetingRecordRepo := repository.NewTargetingRecordRepository(pgConn)
	creativeRepo := repository.NewCreativeRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	chatRepo := repository.NewChatRepository(pgConn)
	connectionRepo := repository.NewProviderConnectionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, accountRepo, connectionRepo, cfg)

	tokenManager := metaclient.NewTokenManager(cfg)
	tokenManager.InitToken()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	integrators := map[domain.Provider]integrator.Insighter{
		domain.ProviderMeta:     meta.New(cfg, metaClient),
		domain.ProviderGoogle:   google.New(cfg),
		domain.ProviderTikTok:   tiktok.New(cfg),
		domain.ProviderLinkedIn: linkedin.New(cfg),
	}

	accountService := account.NewService(accountRepo, clientRepo, connectionRepo)
	insightService := insighting.NewService(cfg, integrators, accountRepo, campaignRepo, campaignInsightRepo)
	targetingService := targeting.NewService(integrators, campaignRepo, targetingRecordRepo)
	creativeService := creative.NewService(integrators, campaignRepo, creativeRepo)
	crmService := crm.NewService(clientRepo, invoiceRepo)
	oauthService := oauth.NewService(cfg, accountRepo, connectionRepo)

	hub := realtime.NewHub(cfg, redisClient, m)
	go hub.Run(ctx)

	chatService := collaborating.NewService(chatRepo, hub)

	insightSyncService := scheduler.NewInsightSyncService(accountRepo, insightService, m, cfg)
	invoiceOverdueService := scheduler.NewInvoiceOverdueService(invoiceRepo, cfg)

	if err := insightSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de insights")
	} else {
		logrus.Info("Agendador de sincronização de insights iniciado com sucesso")
	}

	if err := invoiceOverdueService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de vencimento de faturas")
	} else {
		logrus.Info("Agendador de vencimento de faturas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Insights:              insightService,
		Accounts:              accountService,
		Targeting:             targetingService,
		Creatives:             creativeService,
		CRM:                   crmService,
		Chat:                  chatService,
		OAuth:                 oauthService,
		Authenticator:         authenticator,
		Hub:                   hub,
		Metrics:               m,
		MetricsHandler:        metricsHandler,
		InsightSyncService:    insightSyncService,
		InvoiceOverdueService: invoiceOverdueService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
