package tiktok

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/pkg/utils"
)

// DTOs da Business API do TikTok. O envelope padrão é {code, message, data}.
type tiktokEnvelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type tiktokCampaign struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Objective    string `json:"objective_type"`
	Status       string `json:"operation_status"`
}

type tiktokDailyRow struct {
	Date        string  `json:"stat_time_day"`
	Spend       float64 `json:"spend,string"`
	Impressions int64   `json:"impressions,string"`
	Clicks      int64   `json:"clicks,string"`
	Conversions int64   `json:"conversions,string"`
	Revenue     float64 `json:"total_purchase_value,string"`
	Reach       int64   `json:"reach,string"`
}

// tiktokAdRow é uma linha do relatório integrado no nível de anúncio
// (dimensão ad_id, sem granularidade de tempo).
type tiktokAdRow struct {
	Dimensions struct {
		AdID string `json:"ad_id"`
	} `json:"dimensions"`
	Metrics struct {
		Spend       float64 `json:"spend,string"`
		Impressions int64   `json:"impressions,string"`
		Clicks      int64   `json:"clicks,string"`
		Conversions int64   `json:"conversions,string"`
		Revenue     float64 `json:"total_purchase_value,string"`
	} `json:"metrics"`
}

type tiktokAdGroup struct {
	AdGroupID      string   `json:"adgroup_id"`
	AdGroupName    string   `json:"adgroup_name"`
	AgeGroups      []string `json:"age_groups"`
	Genders        []string `json:"gender"`
	Languages      []string `json:"languages"`
	LocationIDs    []string `json:"location_ids"`
	InterestIDs    []string `json:"interest_category_ids"`
	Placements     []string `json:"placements"`
	DeviceModels   []string `json:"device_model_ids"`
	AudienceIDs    []string `json:"audience_ids"`
	ExcludedAudIDs []string `json:"excluded_audience_ids"`
}

type tiktokAd struct {
	AdID     string `json:"ad_id"`
	AdName   string `json:"ad_name"`
	AdText   string `json:"ad_text"`
	CTA      string `json:"call_to_action"`
	Status   string `json:"operation_status"`
	Format   string `json:"ad_format"`
	ImageURL string `json:"image_url"`
}

func (s *TikTokIntegrator) authHeaders() map[string]string {
	return map[string]string{
		"Access-Token": s.cfg.TikTok.AccessToken,
	}
}

func (s *TikTokIntegrator) get(path string, out interface{}) error {
	url := s.cfg.TikTok.URL + path

	data, err := utils.MakeRequestWithHeaders(url, s.authHeaders())
	if err != nil {
		return fmt.Errorf("erro ao chamar a API do TikTok: %w", err)
	}

	var envelope tiktokEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("erro ao decodificar envelope do TikTok: %w", err)
	}

	if envelope.Code != 0 {
		return fmt.Errorf("API do TikTok retornou erro %d: %s", envelope.Code, envelope.Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("erro ao decodificar dados do TikTok: %w", err)
	}

	return nil
}

func (s *TikTokIntegrator) getCampaigns(accountExternalID string) ([]tiktokCampaign, error) {
	var data struct {
		List []tiktokCampaign `json:"list"`
	}
	path := fmt.Sprintf("/campaign/get/?advertiser_id=%s", accountExternalID)
	if err := s.get(path, &data); err != nil {
		return nil, err
	}
	return data.List, nil
}

func (s *TikTokIntegrator) getDailyRows(campaignExternalID string, filters *domain.InsightFilters) ([]tiktokDailyRow, error) {
	var data struct {
		List []tiktokDailyRow `json:"list"`
	}

	path := fmt.Sprintf("/report/integrated/get/?campaign_id=%s&data_level=AUCTION_CAMPAIGN&time_granularity=STAT_TIME_GRANULARITY_DAILY", campaignExternalID)
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		path += fmt.Sprintf("&start_date=%s&end_date=%s",
			filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
	}

	if err := s.get(path, &data); err != nil {
		return nil, err
	}
	return data.List, nil
}

func (s *TikTokIntegrator) getAdRows(campaignExternalID string, filters *domain.InsightFilters) ([]tiktokAdRow, error) {
	var data struct {
		List []tiktokAdRow `json:"list"`
	}

	path := fmt.Sprintf("/report/integrated/get/?campaign_id=%s&data_level=AUCTION_AD&dimensions=[\"ad_id\"]", campaignExternalID)
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		path += fmt.Sprintf("&start_date=%s&end_date=%s",
			filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
	}

	if err := s.get(path, &data); err != nil {
		return nil, err
	}
	return data.List, nil
}

func (s *TikTokIntegrator) getAdGroups(campaignExternalID string) ([]tiktokAdGroup, error) {
	var data struct {
		List []tiktokAdGroup `json:"list"`
	}
	path := fmt.Sprintf("/adgroup/get/?campaign_id=%s", campaignExternalID)
	if err := s.get(path, &data); err != nil {
		return nil, err
	}
	return data.List, nil
}

func (s *TikTokIntegrator) getAds(campaignExternalID string) ([]tiktokAd, error) {
	var data struct {
		List []tiktokAd `json:"list"`
	}
	path := fmt.Sprintf("/ad/get/?campaign_id=%s", campaignExternalID)
	if err := s.get(path, &data); err != nil {
		return nil, err
	}
	return data.List, nil
}
