package integrator

import (
	"time"

	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

// DailyInsight é o total bruto de um dia de uma campanha, já saneado
// (nenhum campo negativo chega às camadas de cima).
type DailyInsight struct {
	Date   time.Time
	Totals domain.MetricTotals
}

// Insighter é o contrato comum dos clientes de plataformas de anúncios.
// Cada provider devolve dados já convertidos para os tipos do domínio.
type Insighter interface {
	Provider() domain.Provider
	FetchCampaigns(accountExternalID string) ([]*domain.Campaign, error)
	FetchDailyInsights(campaignExternalID string, filters *domain.InsightFilters) ([]*DailyInsight, error)
	FetchTargeting(campaignExternalID string) ([]*domain.TargetingRecord, error)
	FetchCreatives(campaignExternalID string) ([]*domain.Creative, error)

	// FetchCreativeMetrics devolve os totais do período por anúncio/criativo,
	// chaveados pelo ID externo do criativo. Todas as plataformas atendem com
	// uma única chamada de relatório no nível de anúncio.
	FetchCreativeMetrics(campaignExternalID string, filters *domain.InsightFilters) (map[string]domain.MetricTotals, error)
}

// SanitizeTotals zera qualquer campo negativo vindo da integração. As
// plataformas ocasionalmente reportam ajustes negativos retroativos que
// quebrariam as invariantes das métricas derivadas.
func SanitizeTotals(totals domain.MetricTotals) domain.MetricTotals {
	if totals.Spend < 0 {
		totals.Spend = 0
	}
	if totals.Impressions < 0 {
		totals.Impressions = 0
	}
	if totals.Clicks < 0 {
		totals.Clicks = 0
	}
	if totals.Conversions < 0 {
		totals.Conversions = 0
	}
	if totals.Revenue < 0 {
		totals.Revenue = 0
	}
	if totals.Reach < 0 {
		totals.Reach = 0
	}
	return totals
}
