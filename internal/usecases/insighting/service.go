package insighting

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/pkg/utils"
)

// Service implementa a interface Insighter com cache diário por campanha.
// Dias ausentes no cache são preenchidos sob demanda via APIs das
// plataformas; o dia corrente nunca é cacheado porque ainda está parcial.
type Service struct {
	cfg                       *config.Config
	integrators               map[domain.Provider]integrator.Insighter
	accountRepository         repository.AccountRepository
	campaignRepository        repository.CampaignRepository
	campaignInsightRepository repository.CampaignInsightRepository
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	cfg *config.Config,
	integrators map[domain.Provider]integrator.Insighter,
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	campaignInsightRepo repository.CampaignInsightRepository,
) Insighter {
	return &Service{
		cfg:                       cfg,
		integrators:               integrators,
		accountRepository:         accountRepo,
		campaignRepository:        campaignRepo,
		campaignInsightRepository: campaignInsightRepo,
	}
}

// GetAccountInsights obtém os totais, métricas derivadas e score de
// eficiência de uma conta no período dos filtros.
func (s *Service) GetAccountInsights(accountID string, filters *domain.InsightFilters) (*domain.AccountInsightsResponse, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar conta no repositório")
		return nil, err
	}

	if account == nil {
		return nil, fmt.Errorf("conta não encontrada: %s", accountID)
	}

	entries, err := s.entriesWithBackfill(account, filters)
	if err != nil {
		return nil, err
	}

	return buildResponse(accountID, entries, filters), nil
}

// GetCampaignInsights obtém os totais e métricas derivadas de uma única
// campanha no período dos filtros.
func (s *Service) GetCampaignInsights(campaignID string, filters *domain.InsightFilters) (*domain.AccountInsightsResponse, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepository.GetByID(campaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao buscar campanha no repositório")
		return nil, err
	}

	if campaign == nil {
		return nil, fmt.Errorf("campanha não encontrada: %s", campaignID)
	}

	entries, err := s.campaignInsightRepository.GetByCampaignAndDateRange(
		campaignID,
		*filters.StartDate,
		*filters.EndDate,
	)
	if err != nil {
		return nil, err
	}

	missing := missingDates(entries, filters)
	if len(missing) > 0 {
		fetched := s.fetchCampaignDays(campaign, missing)
		entries = append(entries, fetched...)
	}

	return buildResponse(campaign.AccountID, entries, filters), nil
}

// SyncAccountInsights força a sincronização dos insights diários de uma
// conta. Usada pelo scheduler e pelo endpoint manual de sincronização.
func (s *Service) SyncAccountInsights(accountID string, filters *domain.InsightFilters) error {
	if err := validateFilters(filters); err != nil {
		return err
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return err
	}

	if account == nil {
		return fmt.Errorf("conta não encontrada: %s", accountID)
	}

	campaigns, err := s.syncCampaigns(account)
	if err != nil {
		return err
	}

	allDates, err := utils.DateRange(*filters.StartDate, *filters.EndDate)
	if err != nil {
		return err
	}

	for _, campaign := range campaigns {
		s.fetchAndCacheDays(campaign, allDates)
	}

	return nil
}

// entriesWithBackfill busca as entradas do cache para o período e preenche os
// dias faltantes chamando as APIs das plataformas em paralelo.
func (s *Service) entriesWithBackfill(account *domain.AdAccount, filters *domain.InsightFilters) ([]*domain.CampaignInsightEntry, error) {
	entries, err := s.campaignInsightRepository.GetByAccountAndDateRange(
		account.ID,
		*filters.StartDate,
		*filters.EndDate,
	)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": account.ID,
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Warn("Erro ao buscar insights do banco de dados para o período")
		entries = nil
	}

	missing := missingDates(entries, filters)
	if len(missing) == 0 {
		return entries, nil
	}

	logrus.WithFields(logrus.Fields{
		"account_id":    account.ID,
		"missing_dates": len(missing),
		"first_missing": missing[0].Format(time.DateOnly),
		"last_missing":  missing[len(missing)-1].Format(time.DateOnly),
	}).Info("Buscando insights da API para datas faltantes")

	campaigns, err := s.campaignRepository.ListByAccountID(account.ID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).Warn("Erro ao listar campanhas da conta")
		return entries, nil
	}

	for _, campaign := range campaigns {
		fetched := s.fetchCampaignDays(campaign, missing)
		entries = append(entries, fetched...)
	}

	return entries, nil
}

// fetchCampaignDays busca da API os dias informados de uma campanha, limitando
// a concorrência com um semáforo, e cacheia tudo que não for o dia corrente.
func (s *Service) fetchCampaignDays(campaign *domain.Campaign, dates []time.Time) []*domain.CampaignInsightEntry {
	provider, ok := s.integrators[campaign.Provider]
	if !ok {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"provider":    campaign.Provider,
		}).Warn("Nenhum integrador configurado para o provider da campanha")
		return nil
	}

	maxConcurrent := s.cfg.InsightSync.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = 3
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	var mutex sync.Mutex
	entries := make([]*domain.CampaignInsightEntry, 0, len(dates))

	for _, date := range dates {
		wg.Add(1)

		go func(date time.Time) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			dailyFilter := &domain.InsightFilters{
				StartDate: &date,
				EndDate:   &date,
			}

			insights, err := provider.FetchDailyInsights(campaign.ExternalID, dailyFilter)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"campaign_id": campaign.ID,
					"provider":    campaign.Provider,
					"date":        date.Format(time.DateOnly),
				}).Warn("Erro ao obter insights diários da API")
				return
			}

			for _, insight := range insights {
				totals := insight.Totals
				entry := &domain.CampaignInsightEntry{
					AccountID:  campaign.AccountID,
					Provider:   campaign.Provider,
					CampaignID: campaign.ID,
					Date:       insight.Date,
					Totals:     &totals,
				}

				// O dia corrente ainda está parcial e não entra no cache
				if insight.Date.Format(time.DateOnly) != time.Now().Format(time.DateOnly) {
					if err := s.campaignInsightRepository.SaveOrUpdate(entry); err != nil {
						logrus.WithError(err).WithFields(logrus.Fields{
							"campaign_id": campaign.ID,
							"date":        insight.Date.Format(time.DateOnly),
						}).Warn("Erro ao salvar insights no banco de dados")
					}
				}

				mutex.Lock()
				entries = append(entries, entry)
				mutex.Unlock()
			}
		}(date)
	}

	wg.Wait()

	return entries
}

// fetchAndCacheDays é a variante do sync agendado: só grava no cache, sem
// acumular as entradas em memória.
func (s *Service) fetchAndCacheDays(campaign *domain.Campaign, dates []time.Time) {
	s.fetchCampaignDays(campaign, dates)
}

// syncCampaigns atualiza a lista de campanhas da conta a partir da API da
// plataforma e devolve as campanhas persistidas.
func (s *Service) syncCampaigns(account *domain.AdAccount) ([]*domain.Campaign, error) {
	provider, ok := s.integrators[account.Provider]
	if !ok {
		return nil, fmt.Errorf("nenhum integrador configurado para o provider %s", account.Provider)
	}

	remote, err := provider.FetchCampaigns(account.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanhas do provider %s: %w", account.Provider, err)
	}

	for _, campaign := range remote {
		campaign.ID = account.ID + ":" + campaign.ExternalID
		campaign.AccountID = account.ID

		if err := s.campaignRepository.SaveOrUpdate(campaign); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":  account.ID,
				"campaign_id": campaign.ID,
			}).Warn("Erro ao salvar campanha sincronizada")
		}
	}

	return s.campaignRepository.ListByAccountID(account.ID)
}

func buildResponse(accountID string, entries []*domain.CampaignInsightEntry, filters *domain.InsightFilters) *domain.AccountInsightsResponse {
	totals, byProvider, daily := CombineEntries(entries)
	derived := DeriveMetrics(totals)
	efficiency := ScoreEfficiency(derived)

	return &domain.AccountInsightsResponse{
		AccountID:  accountID,
		Totals:     totals,
		Derived:    derived,
		Efficiency: &efficiency,
		ByProvider: byProvider,
		Daily:      daily,
		Filters:    filters,
	}
}

// missingDates calcula os dias do período sem nenhuma entrada no cache.
func missingDates(entries []*domain.CampaignInsightEntry, filters *domain.InsightFilters) []time.Time {
	existing := make(map[string]bool)
	for _, entry := range entries {
		existing[entry.Date.Format(time.DateOnly)] = true
	}

	allDates, err := utils.DateRange(*filters.StartDate, *filters.EndDate)
	if err != nil {
		return nil
	}

	var missing []time.Time
	for _, date := range allDates {
		if !existing[date.Format(time.DateOnly)] {
			missing = append(missing, date)
		}
	}

	return missing
}

func validateFilters(filters *domain.InsightFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return nil
}
