package targeting

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/internal/usecases/locating"
)

// Targeter define a interface do serviço de segmentação consumida pelos
// handlers.
type Targeter interface {
	// GetCampaignTargeting devolve a segmentação agregada da campanha com as
	// localizações incluídas resolvidas para o mapa.
	GetCampaignTargeting(campaignID string) (*domain.CampaignTargetingResponse, error)

	// SyncCampaignTargeting ressincroniza os registros de segmentação da
	// campanha a partir da API da plataforma.
	SyncCampaignTargeting(campaignID string) error
}

type Service struct {
	integrators               map[domain.Provider]integrator.Insighter
	campaignRepository        repository.CampaignRepository
	targetingRecordRepository repository.TargetingRecordRepository
}

// NewService cria uma nova instância do serviço de segmentação
func NewService(
	integrators map[domain.Provider]integrator.Insighter,
	campaignRepo repository.CampaignRepository,
	targetingRecordRepo repository.TargetingRecordRepository,
) Targeter {
	return &Service{
		integrators:               integrators,
		campaignRepository:        campaignRepo,
		targetingRecordRepository: targetingRecordRepo,
	}
}

func (s *Service) GetCampaignTargeting(campaignID string) (*domain.CampaignTargetingResponse, error) {
	campaign, err := s.campaignRepository.GetByID(campaignID)
	if err != nil {
		return nil, err
	}

	if campaign == nil {
		return nil, fmt.Errorf("campanha não encontrada: %s", campaignID)
	}

	records, err := s.targetingRecordRepository.ListByCampaignID(campaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Warn("Erro ao buscar segmentação no banco de dados")
		records = nil
	}

	// Sem registro cacheado, busca da API na hora e persiste para as
	// próximas consultas.
	if len(records) == 0 {
		records, err = s.syncRecords(campaign)
		if err != nil {
			return nil, err
		}
	}

	aggregated := Aggregate(records)

	return &domain.CampaignTargetingResponse{
		CampaignID: campaignID,
		Targeting:  aggregated,
		Locations:  locating.ResolveAll(aggregated.Locations.Included),
	}, nil
}

func (s *Service) SyncCampaignTargeting(campaignID string) error {
	campaign, err := s.campaignRepository.GetByID(campaignID)
	if err != nil {
		return err
	}

	if campaign == nil {
		return fmt.Errorf("campanha não encontrada: %s", campaignID)
	}

	if err := s.targetingRecordRepository.DeleteByCampaignID(campaignID); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Warn("Erro ao limpar segmentação antiga da campanha")
	}

	_, err = s.syncRecords(campaign)

	return err
}

// syncRecords busca a segmentação da API da plataforma e grava cada registro
// no repositório antes de devolvê-los.
func (s *Service) syncRecords(campaign *domain.Campaign) ([]*domain.TargetingRecord, error) {
	provider, ok := s.integrators[campaign.Provider]
	if !ok {
		return nil, fmt.Errorf("nenhum integrador configurado para o provider %s", campaign.Provider)
	}

	records, err := provider.FetchTargeting(campaign.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar segmentação do provider %s: %w", campaign.Provider, err)
	}

	for _, record := range records {
		if err := s.targetingRecordRepository.SaveOrUpdate(campaign.ID, record); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"entity_id":   record.EntityID,
			}).Warn("Erro ao salvar registro de segmentação")
		}
	}

	return records, nil
}
