package handler

import (
	"net/http"

	"github.com/vfg2006/agency-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/agency-dashboard-api/internal/realtime"
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

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics expõe os coletores Prometheus. O handler vem pronto do main para o
// registry ficar em um único lugar.
func Metrics(promHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promHandler,
		},
	}
}

func AdAccounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     AdAccountList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/accounts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAdAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/insights",
			Method:      http.MethodGet,
			Handler:     GetAccountInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/insights",
			Method:      http.MethodGet,
			Handler:     GetCampaignInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Targeting(service targeting.Targeter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/targeting",
			Method:      http.MethodGet,
			Handler:     GetCampaignTargeting(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/targeting/sync",
			Method:      http.MethodPost,
			Handler:     SyncCampaignTargeting(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Creatives(service creative.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/creatives",
			Method:      http.MethodGet,
			Handler:     ListCampaignCreatives(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/creatives/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCreative(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Clients(service crm.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/clients/:id/billing",
			Method:      http.MethodGet,
			Handler:     GetBillingSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/clients/:id/invoices",
			Method:      http.MethodPost,
			Handler:     CreateInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/invoices/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateInvoiceStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Chat(service collaborating.Collaborator, hub *realtime.Hub) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/chat/channels",
			Method:      http.MethodGet,
			Handler:     ListChannels(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/channels",
			Method:      http.MethodPost,
			Handler:     CreateChannel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/channels/:id/messages",
			Method:      http.MethodGet,
			Handler:     GetChannelMessages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/channels/:id/messages",
			Method:      http.MethodPost,
			Handler:     PostMessage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/messages/:id",
			Method:      http.MethodPut,
			Handler:     EditMessage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/messages/:id/thread",
			Method:      http.MethodGet,
			Handler:     GetThread(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/messages/:id/reactions",
			Method:      http.MethodPost,
			Handler:     AddReaction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/messages/:id/reactions/:emoji",
			Method:      http.MethodDelete,
			Handler:     RemoveReaction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/presence",
			Method:      http.MethodGet,
			Handler:     GetPresence(hub),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/chat/ws",
			Method:      http.MethodGet,
			Handler:     ChatWebSocket(hub),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// OAuthConnect retorna as rotas do fluxo de conexão com as plataformas. O
// callback fica fora do AuthMiddleware porque quem chama é o redirect da
// plataforma, sem token.
func OAuthConnect(service oauth.Connector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/oauth/:provider/connect",
			Method:  http.MethodGet,
			Handler: OAuthAuthorize(service),
		},
		{
			Path:    "/v1/oauth/:provider/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// UserAccounts retorna as rotas para gerenciamento de contas vinculadas a usuários
func UserAccounts(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/accounts",
			Method:      http.MethodGet,
			Handler:     GetUserAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/accounts",
			Method:      http.MethodPut,
			Handler:     UpdateUserAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/accounts/link",
			Method:      http.MethodPost,
			Handler:     LinkUserAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/accounts/:account_id",
			Method:      http.MethodDelete,
			Handler:     UnlinkUserAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}
