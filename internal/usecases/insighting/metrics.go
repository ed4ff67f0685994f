package insighting

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/pkg/utils"
)

// DeriveMetrics calcula CTR, CPC, CPA, ROAS e taxa de conversão a partir dos
// totais brutos. Função pura e total: qualquer denominador zero resulta em 0
// para a razão correspondente, nunca em NaN ou Inf.
func DeriveMetrics(t domain.MetricTotals) domain.DerivedMetrics {
	spend := sanitize(t.Spend)
	impressions := float64(sanitizeCount(t.Impressions))
	clicks := float64(sanitizeCount(t.Clicks))
	conversions := float64(sanitizeCount(t.Conversions))
	revenue := sanitize(t.Revenue)

	m := domain.DerivedMetrics{}

	if impressions > 0 {
		m.CTR = utils.RoundWithTwoDecimalPlace(clicks / impressions * 100)
	}
	if clicks > 0 {
		m.CPC = utils.RoundWithTwoDecimalPlace(spend / clicks)
		m.ConvRate = utils.RoundWithTwoDecimalPlace(conversions / clicks * 100)
	}
	if conversions > 0 {
		m.CPA = utils.RoundWithTwoDecimalPlace(spend / conversions)
	}
	if spend > 0 {
		m.ROAS = utils.RoundWithTwoDecimalPlace(revenue / spend)
	}

	return m
}

// sanitize trata valores malformados (negativos, NaN, Inf) como zero.
func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func sanitizeCount(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// CombineEntries agrega as entradas diárias do cache em totais do período,
// totais por provider e série diária ordenada por data.
func CombineEntries(entries []*domain.CampaignInsightEntry) (domain.MetricTotals, map[domain.Provider]*domain.MetricTotals, []domain.DailyMetrics) {
	totals := domain.MetricTotals{}
	byProvider := make(map[domain.Provider]*domain.MetricTotals)
	byDate := make(map[string]*domain.MetricTotals)

	for _, entry := range entries {
		if entry == nil || entry.Totals == nil {
			continue
		}

		addTotals(&totals, entry.Totals)

		pt, ok := byProvider[entry.Provider]
		if !ok {
			pt = &domain.MetricTotals{}
			byProvider[entry.Provider] = pt
		}
		addTotals(pt, entry.Totals)

		dateKey := entry.Date.Format(time.DateOnly)
		dt, ok := byDate[dateKey]
		if !ok {
			dt = &domain.MetricTotals{}
			byDate[dateKey] = dt
		}
		addTotals(dt, entry.Totals)
	}

	daily := make([]domain.DailyMetrics, 0, len(byDate))
	for date, t := range byDate {
		daily = append(daily, domain.DailyMetrics{Date: date, Totals: *t})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date < daily[j].Date })

	return totals, byProvider, daily
}

func addTotals(dst, src *domain.MetricTotals) {
	dst.Spend += sanitize(src.Spend)
	dst.Impressions += sanitizeCount(src.Impressions)
	dst.Clicks += sanitizeCount(src.Clicks)
	dst.Conversions += sanitizeCount(src.Conversions)
	dst.Revenue += sanitize(src.Revenue)
	dst.Reach += sanitizeCount(src.Reach)
}
