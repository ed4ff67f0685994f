package insighting

import (
	"math"

	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

// Pesos do score de eficiência. A soma dos pesos é 1; cada sub-score fica
// em [0,1], então o score final fica em [0,100] por construção.
const (
	weightROAS     = 0.40
	weightConvRate = 0.25
	weightCTR      = 0.20
	weightCPA      = 0.15

	// Valores de referência: no alvo (ou acima dele) o sub-score satura em 1.
	targetROAS     = 4.0
	targetConvRate = 10.0
	targetCTR      = 3.0

	// Meia-vida do sub-score de CPA: com CPA igual a este valor o sub-score
	// vale 0.5, caindo monotonicamente conforme o CPA cresce.
	cpaHalfPoint = 50.0
)

// ScoreEfficiency resume as métricas derivadas em um score de 0 a 100 e uma
// lista determinística de insights qualitativos. O score é monotônico em
// ROAS e taxa de conversão e anti-monotônico em CPA.
func ScoreEfficiency(m domain.DerivedMetrics) domain.EfficiencyResult {
	roas := sanitize(m.ROAS)
	convRate := sanitize(m.ConvRate)
	ctr := sanitize(m.CTR)
	cpa := sanitize(m.CPA)

	roasScore := capped(roas / targetROAS)
	convScore := capped(convRate / targetConvRate)
	ctrScore := capped(ctr / targetCTR)
	cpaScore := cpaHalfPoint / (cpaHalfPoint + cpa)

	raw := 100 * (weightROAS*roasScore +
		weightConvRate*convScore +
		weightCTR*ctrScore +
		weightCPA*cpaScore)

	score := int(math.Round(raw))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.EfficiencyResult{
		Score:    score,
		Insights: buildInsights(roas, convRate, ctr, cpa),
	}
}

func capped(f float64) float64 {
	if f > 1 {
		return 1
	}
	return f
}

// buildInsights avalia as regras sempre na mesma ordem para que entradas
// idênticas produzam a mesma lista na mesma ordem.
func buildInsights(roas, convRate, ctr, cpa float64) []domain.Insight {
	insights := make([]domain.Insight, 0, 4)

	switch {
	case roas >= targetROAS:
		insights = append(insights, domain.Insight{
			Title:   "ROAS excelente",
			Level:   domain.InsightLevelSuccess,
			Message: "O retorno sobre o investimento em anúncios está acima da meta da agência.",
		})
	case roas < 1 && roas > 0:
		insights = append(insights, domain.Insight{
			Title:      "Retorno abaixo do investimento",
			Level:      domain.InsightLevelError,
			Message:    "A receita atribuída é menor que o valor investido no período.",
			Suggestion: "Revise os públicos e pause os conjuntos de anúncios com pior desempenho.",
		})
	case roas >= 1 && roas < 2:
		insights = append(insights, domain.Insight{
			Title:      "ROAS apertado",
			Level:      domain.InsightLevelWarning,
			Message:    "O retorno cobre o investimento, mas deixa pouca margem.",
			Suggestion: "Concentre o orçamento nas campanhas com melhor ROAS.",
		})
	}

	if ctr > 0 && ctr < 1 {
		insights = append(insights, domain.Insight{
			Title:      "CTR baixo",
			Level:      domain.InsightLevelWarning,
			Message:    "Poucos cliques em relação às impressões entregues.",
			Suggestion: "Teste novos criativos ou ajuste a segmentação dos anúncios.",
		})
	} else if ctr >= targetCTR {
		insights = append(insights, domain.Insight{
			Title:   "CTR saudável",
			Level:   domain.InsightLevelSuccess,
			Message: "Os criativos estão engajando bem o público segmentado.",
		})
	}

	if cpa > 2*cpaHalfPoint {
		insights = append(insights, domain.Insight{
			Title:      "Custo por aquisição elevado",
			Level:      domain.InsightLevelWarning,
			Message:    "O custo por conversão está acima do dobro da referência.",
			Suggestion: "Avalie a página de destino e o funil de conversão.",
		})
	}

	if convRate >= targetConvRate {
		insights = append(insights, domain.Insight{
			Title:   "Taxa de conversão forte",
			Level:   domain.InsightLevelSuccess,
			Message: "Uma parcela alta dos cliques está convertendo.",
		})
	} else if convRate > 0 && convRate < 1 {
		insights = append(insights, domain.Insight{
			Title:   "Taxa de conversão baixa",
			Level:   domain.InsightLevelInfo,
			Message: "Menos de 1% dos cliques resultam em conversão.",
		})
	}

	return insights
}
