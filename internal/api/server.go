package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/internal/api/handler"
	"github.com/vfg2006/agency-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
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
	"github.com/vfg2006/agency-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências dos handlers para a montagem das rotas.
type Services struct {
	Insights      insighting.Insighter
	Accounts      account.AccountService
	Targeting     targeting.Targeter
	Creatives     creative.Manager
	CRM           crm.Manager
	Chat          collaborating.Collaborator
	OAuth         oauth.Connector
	Authenticator authenticating.Authenticator

	Hub            *realtime.Hub
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler

	InsightSyncService    *scheduler.InsightSyncService
	InvoiceOverdueService *scheduler.InvoiceOverdueService
}

func New(config *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{
		InsightSyncService:    services.InsightSyncService,
		InvoiceOverdueService: services.InvoiceOverdueService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(services.MetricsHandler)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.UserAccounts(services.Authenticator)...),
		router.WithRoutes(handler.AdAccounts(services.Accounts)...),
		router.WithRoutes(handler.Insights(services.Insights)...),
		router.WithRoutes(handler.Targeting(services.Targeting)...),
		router.WithRoutes(handler.Creatives(services.Creatives)...),
		router.WithRoutes(handler.Clients(services.CRM)...),
		router.WithRoutes(handler.Chat(services.Chat, services.Hub)...),
		router.WithRoutes(handler.OAuthConnect(services.OAuth)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.MetricsMiddleware(services.Metrics),
		middleware.AuthMiddleware(services.Authenticator),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
