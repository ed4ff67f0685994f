package google

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/pkg/utils"
)

// DTOs do Google Ads. Os números vêm em micros (1e6) para valores monetários.
type googleCampaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Objective string `json:"advertisingChannelType"`
}

type googleDailyRow struct {
	Date            string  `json:"date"`
	CostMicros      int64   `json:"costMicros"`
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversionsValue"`
}

type googleCriterion struct {
	Type     string `json:"type"`
	ID       string `json:"criterionId"`
	Name     string `json:"displayName"`
	Keyword  string `json:"keywordText"`
	Negative bool   `json:"negative"`
	Device   string `json:"device"`
}

type googleAdMetricsRow struct {
	AdID            string  `json:"adId"`
	CostMicros      int64   `json:"costMicros"`
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversionsValue"`
}

type googleAd struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Format      string `json:"adType"`
	ImageURL    string `json:"imageUrl"`
}

func (s *GoogleIntegrator) authHeaders() map[string]string {
	return map[string]string{
		"Authorization":   "Bearer " + s.cfg.Google.AccessToken,
		"developer-token": s.cfg.Google.AppSecret,
	}
}

func (s *GoogleIntegrator) getCampaigns(accountExternalID string) ([]googleCampaign, error) {
	url := fmt.Sprintf("%s/customers/%s/campaigns", s.cfg.Google.URL, accountExternalID)

	data, err := utils.MakeRequestWithHeaders(url, s.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanhas do Google Ads: %w", err)
	}

	var response struct {
		Results []googleCampaign `json:"results"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do Google Ads: %w", err)
	}

	return response.Results, nil
}

func (s *GoogleIntegrator) getDailyRows(campaignExternalID string, filters *domain.InsightFilters) ([]googleDailyRow, error) {
	url := fmt.Sprintf("%s/campaigns/%s/metrics?granularity=DAILY", s.cfg.Google.URL, campaignExternalID)
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		url += fmt.Sprintf("&startDate=%s&endDate=%s",
			filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
	}

	data, err := utils.MakeRequestWithHeaders(url, s.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas do Google Ads: %w", err)
	}

	var response struct {
		Results []googleDailyRow `json:"results"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do Google Ads: %w", err)
	}

	return response.Results, nil
}

func (s *GoogleIntegrator) getCriteria(campaignExternalID string) ([]googleCriterion, error) {
	url := fmt.Sprintf("%s/campaigns/%s/criteria", s.cfg.Google.URL, campaignExternalID)

	data, err := utils.MakeRequestWithHeaders(url, s.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar critérios do Google Ads: %w", err)
	}

	var response struct {
		Results []googleCriterion `json:"results"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do Google Ads: %w", err)
	}

	return response.Results, nil
}

func (s *GoogleIntegrator) getAdMetricsRows(campaignExternalID string, filters *domain.InsightFilters) ([]googleAdMetricsRow, error) {
	url := fmt.Sprintf("%s/campaigns/%s/ads/metrics", s.cfg.Google.URL, campaignExternalID)
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		url += fmt.Sprintf("?startDate=%s&endDate=%s",
			filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
	}

	data, err := utils.MakeRequestWithHeaders(url, s.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas por anúncio do Google Ads: %w", err)
	}

	var response struct {
		Results []googleAdMetricsRow `json:"results"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do Google Ads: %w", err)
	}

	return response.Results, nil
}

func (s *GoogleIntegrator) getAds(campaignExternalID string) ([]googleAd, error) {
	url := fmt.Sprintf("%s/campaigns/%s/ads", s.cfg.Google.URL, campaignExternalID)

	data, err := utils.MakeRequestWithHeaders(url, s.authHeaders())
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anúncios do Google Ads: %w", err)
	}

	var response struct {
		Results []googleAd `json:"results"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta do Google Ads: %w", err)
	}

	return response.Results, nil
}
