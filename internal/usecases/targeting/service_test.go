package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	integratormocks "github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/mocks"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetCampaignTargeting(t *testing.T) {
	campaign := &domain.Campaign{
		ID:         "cmp-1",
		ExternalID: "ext-123",
		AccountID:  "acc-1",
		Provider:   domain.ProviderMeta,
		Name:       "Campanha de Verão",
	}

	cachedRecords := []*domain.TargetingRecord{
		{
			Provider: domain.ProviderMeta,
			EntityID: "adset-1",
			Locations: domain.EntitySplit{
				Included: []domain.TargetingEntity{{ID: "loc-br", Name: "Brazil"}},
			},
			Devices: []string{"mobile"},
		},
	}

	tests := []struct {
		name     string
		setup    func(campaignRepo *mocks.MockCampaignRepository, recordRepo *mocks.MockTargetingRecordRepository, metaIntegrator *integratormocks.MockInsighter)
		validate func(t *testing.T, result *domain.CampaignTargetingResponse, err error)
	}{
		{
			name: "Campanha não encontrada - deve retornar erro",
			setup: func(campaignRepo *mocks.MockCampaignRepository, recordRepo *mocks.MockTargetingRecordRepository, metaIntegrator *integratormocks.MockInsighter) {
				campaignRepo.EXPECT().GetByID("cmp-1").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.CampaignTargetingResponse, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "campanha não encontrada")
				assert.Nil(t, result)
			},
		},
		{
			name: "Segmentação em cache - deve responder sem consultar o provider",
			setup: func(campaignRepo *mocks.MockCampaignRepository, recordRepo *mocks.MockTargetingRecordRepository, metaIntegrator *integratormocks.MockInsighter) {
				campaignRepo.EXPECT().GetByID("cmp-1").Return(campaign, nil)
				recordRepo.EXPECT().ListByCampaignID("cmp-1").Return(cachedRecords, nil)
			},
			validate: func(t *testing.T, result *domain.CampaignTargetingResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "cmp-1", result.CampaignID)
				assert.Equal(t, []string{"mobile"}, result.Targeting.Devices)

				// Localizações incluídas chegam resolvidas para o mapa
				assert.Len(t, result.Locations, 1)
				assert.Equal(t, "Brazil", result.Locations[0].Name)
				assert.NotNil(t, result.Locations[0].Coordinate)
			},
		},
		{
			name: "Cache vazio - deve buscar do provider e persistir cada registro",
			setup: func(campaignRepo *mocks.MockCampaignRepository, recordRepo *mocks.MockTargetingRecordRepository, metaIntegrator *integratormocks.MockInsighter) {
				campaignRepo.EXPECT().GetByID("cmp-1").Return(campaign, nil)
				recordRepo.EXPECT().ListByCampaignID("cmp-1").Return(nil, nil)
				metaIntegrator.EXPECT().FetchTargeting("ext-123").Return(cachedRecords, nil)
				recordRepo.EXPECT().SaveOrUpdate("cmp-1", cachedRecords[0]).Return(nil)
			},
			validate: func(t *testing.T, result *domain.CampaignTargetingResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "cmp-1", result.CampaignID)
				assert.Len(t, result.Locations, 1)
			},
		},
		{
			name: "Provider falha na sincronização - deve propagar o erro",
			setup: func(campaignRepo *mocks.MockCampaignRepository, recordRepo *mocks.MockTargetingRecordRepository, metaIntegrator *integratormocks.MockInsighter) {
				campaignRepo.EXPECT().GetByID("cmp-1").Return(campaign, nil)
				recordRepo.EXPECT().ListByCampaignID("cmp-1").Return(nil, nil)
				metaIntegrator.EXPECT().FetchTargeting("ext-123").Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, result *domain.CampaignTargetingResponse, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			recordRepo := mocks.NewMockTargetingRecordRepository(ctrl)
			metaIntegrator := integratormocks.NewMockInsighter(ctrl)

			tt.setup(campaignRepo, recordRepo, metaIntegrator)

			service := NewService(
				map[domain.Provider]integrator.Insighter{domain.ProviderMeta: metaIntegrator},
				campaignRepo,
				recordRepo,
			)

			result, err := service.GetCampaignTargeting("cmp-1")
			tt.validate(t, result, err)
		})
	}
}

func TestService_SyncCampaignTargeting(t *testing.T) {
	campaign := &domain.Campaign{
		ID:         "cmp-1",
		ExternalID: "ext-123",
		Provider:   domain.ProviderMeta,
	}

	t.Run("Deve limpar o cache antigo antes de ressincronizar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		recordRepo := mocks.NewMockTargetingRecordRepository(ctrl)
		metaIntegrator := integratormocks.NewMockInsighter(ctrl)

		records := []*domain.TargetingRecord{
			{Provider: domain.ProviderMeta, EntityID: "adset-1"},
			{Provider: domain.ProviderMeta, EntityID: "adset-2"},
		}

		campaignRepo.EXPECT().GetByID("cmp-1").Return(campaign, nil)
		recordRepo.EXPECT().DeleteByCampaignID("cmp-1").Return(nil)
		metaIntegrator.EXPECT().FetchTargeting("ext-123").Return(records, nil)
		recordRepo.EXPECT().SaveOrUpdate("cmp-1", records[0]).Return(nil)
		recordRepo.EXPECT().SaveOrUpdate("cmp-1", records[1]).Return(nil)

		service := NewService(
			map[domain.Provider]integrator.Insighter{domain.ProviderMeta: metaIntegrator},
			campaignRepo,
			recordRepo,
		)

		assert.NoError(t, service.SyncCampaignTargeting("cmp-1"))
	})

	t.Run("Provider sem integrador configurado - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		recordRepo := mocks.NewMockTargetingRecordRepository(ctrl)

		campaignRepo.EXPECT().GetByID("cmp-1").Return(campaign, nil)
		recordRepo.EXPECT().DeleteByCampaignID("cmp-1").Return(nil)

		service := NewService(
			map[domain.Provider]integrator.Insighter{},
			campaignRepo,
			recordRepo,
		)

		err := service.SyncCampaignTargeting("cmp-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "nenhum integrador configurado")
	})
}
