package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

func TestDeriveMetrics(t *testing.T) {
	tests := []struct {
		name     string
		totals   domain.MetricTotals
		expected domain.DerivedMetrics
	}{
		{
			name: "Totais completos - deve calcular todas as métricas derivadas",
			totals: domain.MetricTotals{
				Spend:       10000,
				Impressions: 100000,
				Clicks:      5000,
				Conversions: 500,
				Revenue:     30000,
			},
			expected: domain.DerivedMetrics{
				CTR:      5,
				CPC:      2,
				CPA:      20,
				ROAS:     3,
				ConvRate: 10,
			},
		},
		{
			name:     "Totais zerados - todas as razões devem valer zero",
			totals:   domain.MetricTotals{},
			expected: domain.DerivedMetrics{},
		},
		{
			name: "Sem cliques - CPC e taxa de conversão devem valer zero",
			totals: domain.MetricTotals{
				Spend:       500,
				Impressions: 20000,
				Revenue:     1000,
			},
			expected: domain.DerivedMetrics{
				ROAS: 2,
			},
		},
		{
			name: "Sem conversões - CPA deve valer zero",
			totals: domain.MetricTotals{
				Spend:       100,
				Impressions: 1000,
				Clicks:      50,
			},
			expected: domain.DerivedMetrics{
				CTR: 5,
				CPC: 2,
			},
		},
		{
			name: "Sem investimento - ROAS deve valer zero mesmo com receita",
			totals: domain.MetricTotals{
				Impressions: 1000,
				Clicks:      10,
				Conversions: 1,
				Revenue:     500,
			},
			expected: domain.DerivedMetrics{
				CTR:      1,
				ConvRate: 10,
			},
		},
		{
			name: "Valores negativos - devem ser tratados como zero",
			totals: domain.MetricTotals{
				Spend:       -100,
				Impressions: -1000,
				Clicks:      200,
				Conversions: -5,
				Revenue:     -50,
			},
			expected: domain.DerivedMetrics{},
		},
		{
			name: "Arredondamento - razões devem ter duas casas decimais",
			totals: domain.MetricTotals{
				Spend:       100,
				Impressions: 3000,
				Clicks:      100,
				Conversions: 3,
				Revenue:     100,
			},
			expected: domain.DerivedMetrics{
				CTR:      3.33,
				CPC:      1,
				CPA:      33.33,
				ROAS:     1,
				ConvRate: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DeriveMetrics(tt.totals)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCombineEntries(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	entries := []*domain.CampaignInsightEntry{
		{
			Provider: domain.ProviderMeta,
			Date:     day2,
			Totals:   &domain.MetricTotals{Spend: 300, Impressions: 3000, Clicks: 30, Conversions: 3, Revenue: 900},
		},
		{
			Provider: domain.ProviderGoogle,
			Date:     day1,
			Totals:   &domain.MetricTotals{Spend: 100, Impressions: 1000, Clicks: 10, Conversions: 1, Revenue: 200},
		},
		{
			Provider: domain.ProviderMeta,
			Date:     day1,
			Totals:   &domain.MetricTotals{Spend: 200, Impressions: 2000, Clicks: 20, Conversions: 2, Revenue: 400},
		},
		nil,
		{Provider: domain.ProviderTikTok, Date: day1, Totals: nil},
	}

	totals, byProvider, daily := CombineEntries(entries)

	// Totais do período somam todas as entradas válidas
	assert.Equal(t, 600.0, totals.Spend)
	assert.Equal(t, int64(6000), totals.Impressions)
	assert.Equal(t, int64(60), totals.Clicks)
	assert.Equal(t, int64(6), totals.Conversions)
	assert.Equal(t, 1500.0, totals.Revenue)

	// Quebra por provider
	assert.Len(t, byProvider, 2)
	assert.Equal(t, 500.0, byProvider[domain.ProviderMeta].Spend)
	assert.Equal(t, 100.0, byProvider[domain.ProviderGoogle].Spend)

	// Série diária ordenada por data, agregando providers do mesmo dia
	assert.Len(t, daily, 2)
	assert.Equal(t, "2025-03-10", daily[0].Date)
	assert.Equal(t, 300.0, daily[0].Totals.Spend)
	assert.Equal(t, "2025-03-11", daily[1].Date)
	assert.Equal(t, 300.0, daily[1].Totals.Spend)
}

func TestCombineEntries_SemEntradas(t *testing.T) {
	totals, byProvider, daily := CombineEntries(nil)

	assert.Equal(t, domain.MetricTotals{}, totals)
	assert.Empty(t, byProvider)
	assert.Empty(t, daily)
}
