package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

func TestScoreEfficiency(t *testing.T) {
	tests := []struct {
		name          string
		metrics       domain.DerivedMetrics
		expectedScore int
		expectTitles  []string
	}{
		{
			name: "Conta saudável - score alto com insights positivos",
			metrics: domain.DerivedMetrics{
				CTR:      5,
				CPC:      2,
				CPA:      20,
				ROAS:     3,
				ConvRate: 10,
			},
			expectedScore: 86,
			expectTitles:  []string{"CTR saudável", "Taxa de conversão forte"},
		},
		{
			name: "ROAS acima da meta - deve saturar o sub-score e elogiar",
			metrics: domain.DerivedMetrics{
				CTR:      4,
				CPA:      25,
				ROAS:     8,
				ConvRate: 12,
			},
			expectedScore: 95,
			expectTitles:  []string{"ROAS excelente", "CTR saudável", "Taxa de conversão forte"},
		},
		{
			name: "Receita abaixo do investimento - deve alertar com nível de erro",
			metrics: domain.DerivedMetrics{
				CTR:      0.5,
				CPA:      120,
				ROAS:     0.6,
				ConvRate: 0.4,
			},
			expectedScore: 15,
			expectTitles:  []string{"Retorno abaixo do investimento", "CTR baixo", "Custo por aquisição elevado", "Taxa de conversão baixa"},
		},
		{
			name:          "Métricas zeradas - score mínimo sem insights",
			metrics:       domain.DerivedMetrics{},
			expectedScore: 15,
			expectTitles:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreEfficiency(tt.metrics)

			assert.Equal(t, tt.expectedScore, result.Score)

			titles := make([]string, 0, len(result.Insights))
			for _, insight := range result.Insights {
				titles = append(titles, insight.Title)
			}
			assert.Equal(t, tt.expectTitles, titles)
		})
	}
}

func TestScoreEfficiency_Limites(t *testing.T) {
	// O score fica sempre em [0,100], mesmo com métricas extremas.
	extreme := ScoreEfficiency(domain.DerivedMetrics{
		CTR:      100,
		CPA:      0.01,
		ROAS:     1000,
		ConvRate: 100,
	})
	assert.LessOrEqual(t, extreme.Score, 100)

	worst := ScoreEfficiency(domain.DerivedMetrics{
		CPA: 1e9,
	})
	assert.GreaterOrEqual(t, worst.Score, 0)
}

func TestScoreEfficiency_Monotonicidade(t *testing.T) {
	base := domain.DerivedMetrics{CTR: 2, CPA: 40, ROAS: 1.5, ConvRate: 4}

	baseScore := ScoreEfficiency(base).Score

	// Melhorar o ROAS nunca reduz o score
	better := base
	better.ROAS = 3
	assert.GreaterOrEqual(t, ScoreEfficiency(better).Score, baseScore)

	// Aumentar o CPA nunca aumenta o score
	worse := base
	worse.CPA = 200
	assert.LessOrEqual(t, ScoreEfficiency(worse).Score, baseScore)
}

func TestScoreEfficiency_Deterministico(t *testing.T) {
	metrics := domain.DerivedMetrics{CTR: 1.5, CPA: 80, ROAS: 1.2, ConvRate: 2}

	first := ScoreEfficiency(metrics)
	second := ScoreEfficiency(metrics)

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Insights, second.Insights)
}
