package metaclient

import (
	"net/http"

	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"

	metadomain "github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/meta/domain"
)

type Client interface {
	GetCampaignsByAccountID(accountExternalID string) ([]metadomain.Campaign, error)
	GetDailyInsightsByCampaignID(campaignExternalID string, filters *domain.InsightFilters) ([]metadomain.DailyInsight, error)
	GetAdInsightsByCampaignID(campaignExternalID string, filters *domain.InsightFilters) ([]metadomain.AdInsight, error)
	GetAdSetsByCampaignID(campaignExternalID string) ([]metadomain.AdSet, error)
	GetCreativesByCampaignID(campaignExternalID string) ([]metadomain.Creative, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken verifica se o token atual é válido e tenta renová-lo se necessário
func (c *MetaClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
