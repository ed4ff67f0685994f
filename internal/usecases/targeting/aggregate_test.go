package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		records  []*domain.TargetingRecord
		validate func(t *testing.T, agg domain.AggregatedTargeting)
	}{
		{
			name: "Entidades duplicadas entre conjuntos - deve deduplicar por ID mantendo a primeira ocorrência",
			records: []*domain.TargetingRecord{
				{
					Provider: domain.ProviderMeta,
					EntityID: "adset-1",
					Audiences: domain.EntitySplit{
						Included: []domain.TargetingEntity{
							{ID: "aud-1", Name: "Lookalike compradores"},
							{ID: "aud-2", Name: "Visitantes do site"},
						},
					},
					Locations: domain.EntitySplit{
						Included: []domain.TargetingEntity{{ID: "loc-br", Name: "Brasil"}},
					},
				},
				{
					Provider: domain.ProviderMeta,
					EntityID: "adset-2",
					Audiences: domain.EntitySplit{
						Included: []domain.TargetingEntity{
							{ID: "aud-1", Name: "Lookalike compradores (cópia)"},
							{ID: "aud-3", Name: "Engajamento Instagram"},
						},
					},
					Locations: domain.EntitySplit{
						Included: []domain.TargetingEntity{{ID: "loc-br", Name: "Brasil"}},
					},
				},
			},
			validate: func(t *testing.T, agg domain.AggregatedTargeting) {
				assert.Len(t, agg.Audiences.Included, 3)
				assert.Equal(t, "aud-1", agg.Audiences.Included[0].ID)
				assert.Equal(t, "Lookalike compradores", agg.Audiences.Included[0].Name)
				assert.Equal(t, "aud-2", agg.Audiences.Included[1].ID)
				assert.Equal(t, "aud-3", agg.Audiences.Included[2].ID)

				assert.Len(t, agg.Locations.Included, 1)
				assert.Equal(t, "loc-br", agg.Locations.Included[0].ID)
			},
		},
		{
			name: "Mesmo ID em facetas diferentes - não deve colidir entre incluídos e excluídos",
			records: []*domain.TargetingRecord{
				{
					Provider: domain.ProviderMeta,
					EntityID: "adset-1",
					Audiences: domain.EntitySplit{
						Included: []domain.TargetingEntity{{ID: "aud-1", Name: "Compradores"}},
						Excluded: []domain.TargetingEntity{{ID: "aud-1", Name: "Compradores"}},
					},
				},
			},
			validate: func(t *testing.T, agg domain.AggregatedTargeting) {
				assert.Len(t, agg.Audiences.Included, 1)
				assert.Len(t, agg.Audiences.Excluded, 1)
			},
		},
		{
			name: "Palavras-chave - deve deduplicar por texto normalizado",
			records: []*domain.TargetingRecord{
				{
					Provider: domain.ProviderGoogle,
					EntityID: "adgroup-1",
					Keywords: []domain.Keyword{
						{Text: "tênis de corrida"},
						{Text: "  Tênis de Corrida  "},
						{Text: "TÊNIS DE CORRIDA"},
						{Text: "   "},
						{Text: "tênis casual"},
					},
				},
			},
			validate: func(t *testing.T, agg domain.AggregatedTargeting) {
				assert.Len(t, agg.Keywords, 2)
				assert.Equal(t, "tênis de corrida", agg.Keywords[0].Text)
				assert.Equal(t, "tênis casual", agg.Keywords[1].Text)
			},
		},
		{
			name: "Facetas profissionais e posicionamentos por plataforma",
			records: []*domain.TargetingRecord{
				{
					Provider: domain.ProviderLinkedIn,
					EntityID: "campaign-li-1",
					Professional: &domain.Professional{
						Industries: []domain.TargetingEntity{{ID: "ind-1", Name: "Tecnologia"}},
						JobTitles:  []domain.TargetingEntity{{ID: "job-1", Name: "Gerente de Marketing"}},
					},
				},
				{
					Provider: domain.ProviderMeta,
					EntityID: "adset-1",
					PlatformPlacements: map[string][]string{
						"instagram": {"stories", "feed"},
					},
				},
				{
					Provider: domain.ProviderMeta,
					EntityID: "adset-2",
					PlatformPlacements: map[string][]string{
						"instagram": {"feed", "reels"},
						"facebook":  {"feed"},
					},
				},
			},
			validate: func(t *testing.T, agg domain.AggregatedTargeting) {
				assert.Len(t, agg.Industries, 1)
				assert.Len(t, agg.JobTitles, 1)
				assert.Equal(t, []string{"stories", "feed", "reels"}, agg.PlatformPlacements["instagram"])
				assert.Equal(t, []string{"feed"}, agg.PlatformPlacements["facebook"])
			},
		},
		{
			name:    "Entrada vazia - deve devolver listas vazias e não nulas",
			records: nil,
			validate: func(t *testing.T, agg domain.AggregatedTargeting) {
				assert.NotNil(t, agg.Audiences.Included)
				assert.NotNil(t, agg.Audiences.Excluded)
				assert.NotNil(t, agg.Locations.Included)
				assert.NotNil(t, agg.Interests)
				assert.NotNil(t, agg.Keywords)
				assert.NotNil(t, agg.Devices)
				assert.Empty(t, agg.Audiences.Included)
			},
		},
		{
			name: "Registros nulos na entrada - devem ser ignorados",
			records: []*domain.TargetingRecord{
				nil,
				{
					Provider:  domain.ProviderTikTok,
					EntityID:  "adgroup-tt-1",
					Interests: []domain.TargetingEntity{{ID: "int-1", Name: "Esportes"}},
					Devices:   []string{"mobile"},
				},
				nil,
			},
			validate: func(t *testing.T, agg domain.AggregatedTargeting) {
				assert.Len(t, agg.Interests, 1)
				assert.Equal(t, []string{"mobile"}, agg.Devices)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := Aggregate(tt.records)
			tt.validate(t, agg)
		})
	}
}

func TestAggregate_Idempotente(t *testing.T) {
	records := []*domain.TargetingRecord{
		{
			Provider: domain.ProviderMeta,
			EntityID: "adset-1",
			Demographics: domain.Demographics{
				AgeRanges: []string{"25-34", "35-44"},
				Genders:   []string{"female", "male"},
			},
			Audiences: domain.EntitySplit{
				Included: []domain.TargetingEntity{{ID: "aud-1", Name: "Compradores"}},
			},
			Keywords: []domain.Keyword{{Text: "promoção"}},
			Devices:  []string{"mobile", "desktop"},
		},
	}

	first := Aggregate(records)
	second := Aggregate(records)

	assert.Equal(t, first, second)
}
