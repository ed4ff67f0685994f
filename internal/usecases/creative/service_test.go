package creative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	integratormocks "github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/mocks"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_ListCampaignCreatives(t *testing.T) {
	campaign := &domain.Campaign{
		ID:         "cmp-1",
		ExternalID: "ext-123",
		AccountID:  "acc-1",
		Provider:   domain.ProviderMeta,
	}

	creatives := []*domain.Creative{
		{ID: "cmp-1:cr-a", ExternalID: "cr-a", CampaignID: "cmp-1", Name: "Carrossel lançamento"},
		{ID: "cmp-1:cr-b", ExternalID: "cr-b", CampaignID: "cmp-1", Name: "Vídeo depoimento"},
		{ID: "cmp-1:cr-c", ExternalID: "cr-c", CampaignID: "cmp-1", Name: "Imagem promocional"},
	}

	t.Run("Deve ordenar por CTR decrescente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		creativeRepo := mocks.NewMockCreativeRepository(ctrl)
		metaIntegrator := integratormocks.NewMockInsighter(ctrl)

		campaignRepo.EXPECT().GetByID("cmp-1").Return(campaign, nil)
		creativeRepo.EXPECT().ListByCampaignID("cmp-1").Return(creatives, nil)

		// cr-b tem o maior CTR (2%), cr-a o segundo (1%), cr-c ficou sem
		// métricas no período
		metaIntegrator.EXPECT().
			FetchCreativeMetrics("ext-123", gomock.Any()).
			Return(map[string]domain.MetricTotals{
				"cr-a": {Spend: 100, Impressions: 10000, Clicks: 100},
				"cr-b": {Spend: 100, Impressions: 10000, Clicks: 200},
			}, nil)

		service := NewService(
			map[domain.Provider]integrator.Insighter{domain.ProviderMeta: metaIntegrator},
			campaignRepo,
			creativeRepo,
		)

		result, err := service.ListCampaignCreatives("cmp-1", &domain.InsightFilters{})

		assert.NoError(t, err)
		assert.Len(t, result, 3)
		assert.Equal(t, "cr-b", result[0].Creative.ExternalID)
		assert.Equal(t, 2.0, result[0].Derived.CTR)
		assert.Equal(t, "cr-a", result[1].Creative.ExternalID)
		assert.Equal(t, 1.0, result[1].Derived.CTR)

		// Sem métricas no período sai por último, zerado
		assert.Equal(t, "cr-c", result[2].Creative.ExternalID)
		assert.Equal(t, domain.MetricTotals{}, result[2].Totals)
	})

	t.Run("Cache vazio - deve sincronizar criativos do provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		creativeRepo := mocks.NewMockCreativeRepository(ctrl)
		metaIntegrator := integratormocks.NewMockInsighter(ctrl)

		remote := []*domain.Creative{
			{ExternalID: "cr-x", Name: "Novo criativo"},
		}
		synced := []*domain.Creative{
			{ID: "cmp-1:cr-x", ExternalID: "cr-x", CampaignID: "cmp-1", AccountID: "acc-1", Name: "Novo criativo"},
		}

		campaignRepo.EXPECT().GetByID("cmp-1").Return(campaign, nil)
		creativeRepo.EXPECT().ListByCampaignID("cmp-1").Return(nil, nil)
		metaIntegrator.EXPECT().FetchCreatives("ext-123").Return(remote, nil)
		creativeRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(c *domain.Creative) error {
			// IDs internos são derivados da campanha antes de persistir
			assert.Equal(t, "cmp-1:cr-x", c.ID)
			assert.Equal(t, "cmp-1", c.CampaignID)
			assert.Equal(t, "acc-1", c.AccountID)
			return nil
		})
		creativeRepo.EXPECT().ListByCampaignID("cmp-1").Return(synced, nil)
		metaIntegrator.EXPECT().FetchCreativeMetrics("ext-123", gomock.Any()).Return(nil, nil)

		service := NewService(
			map[domain.Provider]integrator.Insighter{domain.ProviderMeta: metaIntegrator},
			campaignRepo,
			creativeRepo,
		)

		result, err := service.ListCampaignCreatives("cmp-1", nil)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "cmp-1:cr-x", result[0].Creative.ID)
	})

	t.Run("Falha ao obter métricas por criativo - lista sai com métricas zeradas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		creativeRepo := mocks.NewMockCreativeRepository(ctrl)
		metaIntegrator := integratormocks.NewMockInsighter(ctrl)

		campaignRepo.EXPECT().GetByID("cmp-1").Return(campaign, nil)
		creativeRepo.EXPECT().ListByCampaignID("cmp-1").Return(creatives[:1], nil)
		metaIntegrator.EXPECT().FetchCreativeMetrics("ext-123", gomock.Any()).Return(nil, assert.AnError)

		service := NewService(
			map[domain.Provider]integrator.Insighter{domain.ProviderMeta: metaIntegrator},
			campaignRepo,
			creativeRepo,
		)

		result, err := service.ListCampaignCreatives("cmp-1", nil)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, domain.MetricTotals{}, result[0].Totals)
		assert.Equal(t, domain.DerivedMetrics{}, result[0].Derived)
	})

	t.Run("Campanha não encontrada - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		creativeRepo := mocks.NewMockCreativeRepository(ctrl)

		campaignRepo.EXPECT().GetByID("cmp-404").Return(nil, nil)

		service := NewService(nil, campaignRepo, creativeRepo)

		result, err := service.ListCampaignCreatives("cmp-404", nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "campanha não encontrada")
		assert.Nil(t, result)
	})
}

func TestService_UpdateCreative(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("Deve aplicar somente os campos enviados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		creativeRepo := mocks.NewMockCreativeRepository(ctrl)

		existing := &domain.Creative{
			ID:           "cmp-1:cr-a",
			Name:         "Nome antigo",
			Headline:     "Chamada antiga",
			Body:         "Texto antigo",
			CallToAction: "SHOP_NOW",
			Status:       domain.CreativeStatusActive,
		}

		creativeRepo.EXPECT().GetByID("cmp-1:cr-a").Return(existing, nil)
		creativeRepo.EXPECT().UpdateCreative(gomock.Any()).Return(nil)

		service := NewService(nil, nil, creativeRepo)

		paused := domain.CreativeStatusPaused
		result, err := service.UpdateCreative(&domain.UpdateCreativeRequest{
			ID:     "cmp-1:cr-a",
			Name:   strPtr("Nome novo"),
			Status: &paused,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Nome novo", result.Name)
		assert.Equal(t, domain.CreativeStatusPaused, result.Status)

		// Campos não enviados permanecem intactos
		assert.Equal(t, "Chamada antiga", result.Headline)
		assert.Equal(t, "Texto antigo", result.Body)
		assert.Equal(t, "SHOP_NOW", result.CallToAction)
	})

	t.Run("Criativo não encontrado - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		creativeRepo := mocks.NewMockCreativeRepository(ctrl)
		creativeRepo.EXPECT().GetByID("cr-404").Return(nil, nil)

		service := NewService(nil, nil, creativeRepo)

		result, err := service.UpdateCreative(&domain.UpdateCreativeRequest{ID: "cr-404"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "criativo não encontrado")
		assert.Nil(t, result)
	})
}
