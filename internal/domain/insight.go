package domain

import (
	"time"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// MetricTotals representa os totais brutos de performance de um período.
// Todos os campos são somas não-negativas; valores negativos vindos de
// integrações são zerados na borda (ver dto de providers).
type MetricTotals struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	Reach       int64   `json:"reach,omitempty"`
}

// DerivedMetrics são as métricas calculadas a partir de MetricTotals.
// Invariante: qualquer razão com denominador zero vale 0 (nunca NaN/Inf).
type DerivedMetrics struct {
	CTR      float64 `json:"ctr"`
	CPC      float64 `json:"cpc"`
	CPA      float64 `json:"cpa"`
	ROAS     float64 `json:"roas"`
	ConvRate float64 `json:"conv_rate"`
}

type InsightLevel string

const (
	InsightLevelSuccess InsightLevel = "success"
	InsightLevelInfo    InsightLevel = "info"
	InsightLevelWarning InsightLevel = "warning"
	InsightLevelError   InsightLevel = "error"
)

// Insight é uma observação qualitativa exibida no painel junto ao score.
type Insight struct {
	Title      string       `json:"title"`
	Level      InsightLevel `json:"level"`
	Message    string       `json:"message"`
	Suggestion string       `json:"suggestion,omitempty"`
}

// EfficiencyResult resume a saúde da conta em um score de 0 a 100.
type EfficiencyResult struct {
	Score    int       `json:"score"`
	Insights []Insight `json:"insights"`
}

// DailyMetrics é um ponto da série diária retornada ao painel.
type DailyMetrics struct {
	Date   string       `json:"date"`
	Totals MetricTotals `json:"totals"`
}

// CampaignInsightEntry representa os totais diários de uma campanha
// armazenados no banco (cache de insights por dia).
type CampaignInsightEntry struct {
	ID         int64         `json:"id"`
	AccountID  string        `json:"account_id"`
	Provider   Provider      `json:"provider"`
	CampaignID string        `json:"campaign_id"`
	Date       time.Time     `json:"date"`
	Totals     *MetricTotals `json:"totals"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// AccountInsightsResponse é a resposta completa de insights de uma conta.
type AccountInsightsResponse struct {
	AccountID  string                     `json:"account_id"`
	Totals     MetricTotals               `json:"totals"`
	Derived    DerivedMetrics             `json:"derived"`
	Efficiency *EfficiencyResult          `json:"efficiency"`
	ByProvider map[Provider]*MetricTotals `json:"by_provider,omitempty"`
	Daily      []DailyMetrics             `json:"daily,omitempty"`
	Filters    *InsightFilters            `json:"filters"`
}
