package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	integratormocks "github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/mocks"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestService_GetAccountInsights(t *testing.T) {
	account := &domain.AdAccount{
		ID:         "acc-1",
		ExternalID: "ext-acc",
		Provider:   domain.ProviderMeta,
		Name:       "Loja Aurora",
	}

	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	filters := &domain.InsightFilters{
		StartDate: timePtr(day1),
		EndDate:   timePtr(day2),
	}

	t.Run("Filtros inválidos - deve recusar antes de consultar a conta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := &Service{cfg: &config.Config{}}

		tests := []*domain.InsightFilters{
			nil,
			{},
			{StartDate: timePtr(day2), EndDate: timePtr(day1)},
		}

		for _, invalid := range tests {
			result, err := service.GetAccountInsights("acc-1", invalid)
			assert.Error(t, err)
			assert.Nil(t, result)
		}
	})

	t.Run("Conta não encontrada - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		accountRepo.EXPECT().GetAccountByID("acc-404").Return(nil, nil)

		service := &Service{cfg: &config.Config{}, accountRepository: accountRepo}

		result, err := service.GetAccountInsights("acc-404", filters)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "conta não encontrada")
		assert.Nil(t, result)
	})

	t.Run("Cache completo - deve responder sem chamar a API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		insightRepo := mocks.NewMockCampaignInsightRepository(ctrl)

		entries := []*domain.CampaignInsightEntry{
			{
				AccountID:  "acc-1",
				Provider:   domain.ProviderMeta,
				CampaignID: "cmp-1",
				Date:       day1,
				Totals:     &domain.MetricTotals{Spend: 100, Impressions: 10000, Clicks: 500, Conversions: 50, Revenue: 300},
			},
			{
				AccountID:  "acc-1",
				Provider:   domain.ProviderMeta,
				CampaignID: "cmp-1",
				Date:       day2,
				Totals:     &domain.MetricTotals{Spend: 100, Impressions: 10000, Clicks: 500, Conversions: 50, Revenue: 300},
			},
		}

		accountRepo.EXPECT().GetAccountByID("acc-1").Return(account, nil)
		insightRepo.EXPECT().GetByAccountAndDateRange("acc-1", day1, day2).Return(entries, nil)

		service := &Service{
			cfg:                       &config.Config{},
			accountRepository:         accountRepo,
			campaignInsightRepository: insightRepo,
		}

		result, err := service.GetAccountInsights("acc-1", filters)

		assert.NoError(t, err)
		assert.Equal(t, "acc-1", result.AccountID)
		assert.Equal(t, 200.0, result.Totals.Spend)
		assert.Equal(t, 5.0, result.Derived.CTR)
		assert.Equal(t, 3.0, result.Derived.ROAS)
		assert.NotNil(t, result.Efficiency)
		assert.Len(t, result.Daily, 2)
	})

	t.Run("Dias faltantes no cache - deve preencher pela API e cachear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		accountRepo := mocks.NewMockAccountRepository(ctrl)
		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		insightRepo := mocks.NewMockCampaignInsightRepository(ctrl)
		metaIntegrator := integratormocks.NewMockInsighter(ctrl)

		campaign := &domain.Campaign{
			ID:         "cmp-1",
			ExternalID: "ext-cmp",
			AccountID:  "acc-1",
			Provider:   domain.ProviderMeta,
		}

		cached := []*domain.CampaignInsightEntry{
			{
				AccountID:  "acc-1",
				Provider:   domain.ProviderMeta,
				CampaignID: "cmp-1",
				Date:       day1,
				Totals:     &domain.MetricTotals{Spend: 100},
			},
		}

		accountRepo.EXPECT().GetAccountByID("acc-1").Return(account, nil)
		insightRepo.EXPECT().GetByAccountAndDateRange("acc-1", day1, day2).Return(cached, nil)
		campaignRepo.EXPECT().ListByAccountID("acc-1").Return([]*domain.Campaign{campaign}, nil)

		// Somente o dia 11 falta no cache
		metaIntegrator.EXPECT().
			FetchDailyInsights("ext-cmp", gomock.Any()).
			DoAndReturn(func(_ string, f *domain.InsightFilters) ([]*integrator.DailyInsight, error) {
				assert.True(t, f.StartDate.Equal(day2))
				assert.True(t, f.EndDate.Equal(day2))
				return []*integrator.DailyInsight{
					{Date: day2, Totals: domain.MetricTotals{Spend: 50}},
				}, nil
			})
		insightRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		service := &Service{
			cfg:                       &config.Config{},
			integrators:               map[domain.Provider]integrator.Insighter{domain.ProviderMeta: metaIntegrator},
			accountRepository:         accountRepo,
			campaignRepository:        campaignRepo,
			campaignInsightRepository: insightRepo,
		}

		result, err := service.GetAccountInsights("acc-1", filters)

		assert.NoError(t, err)
		assert.Equal(t, 150.0, result.Totals.Spend)
		assert.Len(t, result.Daily, 2)
	})
}

func TestService_GetCampaignInsights(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	filters := &domain.InsightFilters{StartDate: timePtr(day), EndDate: timePtr(day)}

	t.Run("Campanha não encontrada - deve retornar erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		campaignRepo.EXPECT().GetByID("cmp-404").Return(nil, nil)

		service := &Service{cfg: &config.Config{}, campaignRepository: campaignRepo}

		result, err := service.GetCampaignInsights("cmp-404", filters)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "campanha não encontrada")
		assert.Nil(t, result)
	})

	t.Run("Cache completo - resposta carrega a conta dona da campanha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		campaignRepo := mocks.NewMockCampaignRepository(ctrl)
		insightRepo := mocks.NewMockCampaignInsightRepository(ctrl)

		campaign := &domain.Campaign{ID: "cmp-1", AccountID: "acc-1", Provider: domain.ProviderMeta}
		entries := []*domain.CampaignInsightEntry{
			{AccountID: "acc-1", Provider: domain.ProviderMeta, CampaignID: "cmp-1", Date: day, Totals: &domain.MetricTotals{Spend: 80}},
		}

		campaignRepo.EXPECT().GetByID("cmp-1").Return(campaign, nil)
		insightRepo.EXPECT().GetByCampaignAndDateRange("cmp-1", day, day).Return(entries, nil)

		service := &Service{
			cfg:                       &config.Config{},
			campaignRepository:        campaignRepo,
			campaignInsightRepository: insightRepo,
		}

		result, err := service.GetCampaignInsights("cmp-1", filters)

		assert.NoError(t, err)
		assert.Equal(t, "acc-1", result.AccountID)
		assert.Equal(t, 80.0, result.Totals.Spend)
	})
}

func TestMissingDates(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	filters := &domain.InsightFilters{StartDate: timePtr(day1), EndDate: timePtr(day3)}

	entries := []*domain.CampaignInsightEntry{
		{Date: day1, Totals: &domain.MetricTotals{}},
		{Date: day3, Totals: &domain.MetricTotals{}},
	}

	missing := missingDates(entries, filters)

	assert.Len(t, missing, 1)
	assert.Equal(t, day2.Format(time.DateOnly), missing[0].Format(time.DateOnly))
}

func TestValidateFilters(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.Error(t, validateFilters(nil))
	assert.Error(t, validateFilters(&domain.InsightFilters{StartDate: timePtr(day1)}))
	assert.Error(t, validateFilters(&domain.InsightFilters{StartDate: timePtr(day2), EndDate: timePtr(day1)}))
	assert.NoError(t, validateFilters(&domain.InsightFilters{StartDate: timePtr(day1), EndDate: timePtr(day2)}))
	assert.NoError(t, validateFilters(&domain.InsightFilters{StartDate: timePtr(day1), EndDate: timePtr(day1)}))
}
