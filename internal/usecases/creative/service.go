package creative

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/insighting"
)

// Manager define a interface do serviço de criativos consumida pelos
// handlers.
type Manager interface {
	// ListCampaignCreatives lista os criativos da campanha com os totais e
	// métricas derivadas do período, ordenados por CTR decrescente.
	ListCampaignCreatives(campaignID string, filters *domain.InsightFilters) ([]*domain.CreativePerformance, error)

	// UpdateCreative aplica as alterações editáveis (nome, textos, CTA,
	// status) em um criativo já sincronizado.
	UpdateCreative(request *domain.UpdateCreativeRequest) (*domain.Creative, error)
}

type Service struct {
	integrators        map[domain.Provider]integrator.Insighter
	campaignRepository repository.CampaignRepository
	creativeRepository repository.CreativeRepository
}

// NewService cria uma nova instância do serviço de criativos
func NewService(
	integrators map[domain.Provider]integrator.Insighter,
	campaignRepo repository.CampaignRepository,
	creativeRepo repository.CreativeRepository,
) Manager {
	return &Service{
		integrators:        integrators,
		campaignRepository: campaignRepo,
		creativeRepository: creativeRepo,
	}
}

func (s *Service) ListCampaignCreatives(campaignID string, filters *domain.InsightFilters) ([]*domain.CreativePerformance, error) {
	campaign, err := s.campaignRepository.GetByID(campaignID)
	if err != nil {
		return nil, err
	}

	if campaign == nil {
		return nil, fmt.Errorf("campanha não encontrada: %s", campaignID)
	}

	creatives, err := s.creativeRepository.ListByCampaignID(campaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Warn("Erro ao buscar criativos no banco de dados")
		creatives = nil
	}

	if len(creatives) == 0 {
		creatives, err = s.syncCreatives(campaign)
		if err != nil {
			return nil, err
		}
	}

	metrics := s.creativeMetrics(campaign, filters)

	performances := make([]*domain.CreativePerformance, 0, len(creatives))
	for _, creative := range creatives {
		totals := metrics[creative.ExternalID]
		performances = append(performances, &domain.CreativePerformance{
			Creative: creative,
			Totals:   totals,
			Derived:  insighting.DeriveMetrics(totals),
		})
	}

	// Ordena por CTR decrescente; empate mantém a ordem de criação vinda do
	// repositório.
	sort.SliceStable(performances, func(i, j int) bool {
		return performances[i].Derived.CTR > performances[j].Derived.CTR
	})

	return performances, nil
}

func (s *Service) UpdateCreative(request *domain.UpdateCreativeRequest) (*domain.Creative, error) {
	creative, err := s.creativeRepository.GetByID(request.ID)
	if err != nil {
		return nil, err
	}

	if creative == nil {
		return nil, fmt.Errorf("criativo não encontrado: %s", request.ID)
	}

	if request.Name != nil {
		creative.Name = *request.Name
	}
	if request.Headline != nil {
		creative.Headline = *request.Headline
	}
	if request.Body != nil {
		creative.Body = *request.Body
	}
	if request.CallToAction != nil {
		creative.CallToAction = *request.CallToAction
	}
	if request.Status != nil {
		creative.Status = *request.Status
	}

	if err := s.creativeRepository.UpdateCreative(creative); err != nil {
		return nil, err
	}

	return creative, nil
}

// syncCreatives busca os criativos da API da plataforma, persiste e devolve a
// lista gravada.
func (s *Service) syncCreatives(campaign *domain.Campaign) ([]*domain.Creative, error) {
	provider, ok := s.integrators[campaign.Provider]
	if !ok {
		return nil, fmt.Errorf("nenhum integrador configurado para o provider %s", campaign.Provider)
	}

	remote, err := provider.FetchCreatives(campaign.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar criativos do provider %s: %w", campaign.Provider, err)
	}

	for _, creative := range remote {
		creative.ID = campaign.ID + ":" + creative.ExternalID
		creative.CampaignID = campaign.ID
		creative.AccountID = campaign.AccountID

		if err := s.creativeRepository.SaveOrUpdate(creative); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"creative_id": creative.ID,
			}).Warn("Erro ao salvar criativo sincronizado")
		}
	}

	return s.creativeRepository.ListByCampaignID(campaign.ID)
}

// creativeMetrics busca da API os totais por criativo no período. Falha aqui
// não derruba a listagem; os criativos saem com métricas zeradas.
func (s *Service) creativeMetrics(campaign *domain.Campaign, filters *domain.InsightFilters) map[string]domain.MetricTotals {
	provider, ok := s.integrators[campaign.Provider]
	if !ok {
		return nil
	}

	metrics, err := provider.FetchCreativeMetrics(campaign.ExternalID, filters)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"provider":    campaign.Provider,
		}).Warn("Erro ao obter métricas por criativo da API")
		return nil
	}

	return metrics
}
