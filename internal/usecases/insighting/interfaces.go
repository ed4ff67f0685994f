package insighting

import (
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

// Insighter define a interface do serviço de insights consumida pelos
// handlers e pelo scheduler.
type Insighter interface {
	// GetAccountInsights obtém os totais, métricas derivadas e score de
	// eficiência de uma conta no período dos filtros.
	GetAccountInsights(accountID string, filters *domain.InsightFilters) (*domain.AccountInsightsResponse, error)

	// GetCampaignInsights obtém os totais e métricas derivadas de uma única
	// campanha no período dos filtros.
	GetCampaignInsights(campaignID string, filters *domain.InsightFilters) (*domain.AccountInsightsResponse, error)

	// SyncAccountInsights força a sincronização dos insights diários de uma
	// conta a partir das APIs das plataformas.
	SyncAccountInsights(accountID string, filters *domain.InsightFilters) error
}
