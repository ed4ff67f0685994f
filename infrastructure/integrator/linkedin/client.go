package linkedin

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vfg2006/agency-dashboard-api/internal/domain"
	"github.com/vfg2006/agency-dashboard-api/pkg/utils"
)

// DTOs da Marketing API do LinkedIn.
type linkedinCampaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Objective string `json:"objectiveType"`
}

type linkedinDailyRow struct {
	DateRange struct {
		Start struct {
			Year  int `json:"year"`
			Month int `json:"month"`
			Day   int `json:"day"`
		} `json:"start"`
	} `json:"dateRange"`
	CostInLocalCurrency  float64 `json:"costInLocalCurrency,string"`
	Impressions          int64   `json:"impressions"`
	Clicks               int64   `json:"clicks"`
	ExternalConversions  int64   `json:"externalWebsiteConversions"`
	ConversionValueLocal float64 `json:"conversionValueInLocalCurrency,string"`
}

// linkedinCreativeRow é uma linha do adAnalytics com pivot=CREATIVE; o
// criativo vem como URN em pivotValues.
type linkedinCreativeRow struct {
	PivotValues          []string `json:"pivotValues"`
	CostInLocalCurrency  float64  `json:"costInLocalCurrency,string"`
	Impressions          int64    `json:"impressions"`
	Clicks               int64    `json:"clicks"`
	ExternalConversions  int64    `json:"externalWebsiteConversions"`
	ConversionValueLocal float64  `json:"conversionValueInLocalCurrency,string"`
}

type linkedinTargeting struct {
	Industries   []linkedinEntity `json:"industries"`
	JobTitles    []linkedinEntity `json:"titles"`
	Locations    []linkedinEntity `json:"locations"`
	ExcludedLocs []linkedinEntity `json:"excludedLocations"`
	Audiences    []linkedinEntity `json:"audienceMatchingSegments"`
	ExcludedAuds []linkedinEntity `json:"excludedAudienceSegments"`
	Interests    []linkedinEntity `json:"interests"`
	Languages    []string         `json:"interfaceLocales"`
	AgeRanges    []string         `json:"ageRanges"`
	Genders      []string         `json:"genders"`
}

type linkedinEntity struct {
	URN  string `json:"urn"`
	Name string `json:"name"`
}

type linkedinCreative struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"intendedStatus"`
	Headline string `json:"headline"`
	Body     string `json:"commentary"`
	CTA      string `json:"callToActionLabel"`
	Type     string `json:"type"`
	ImageURL string `json:"downloadUrl"`
}

func (s *LinkedInIntegrator) authHeaders() map[string]string {
	return map[string]string{
		"Authorization":             "Bearer " + s.cfg.LinkedIn.AccessToken,
		"LinkedIn-Version":          s.cfg.LinkedIn.Version,
		"X-Restli-Protocol-Version": "2.0.0",
	}
}

func (s *LinkedInIntegrator) get(path string, out interface{}) error {
	url := s.cfg.LinkedIn.BaseURL + path

	data, err := utils.MakeRequestWithHeaders(url, s.authHeaders())
	if err != nil {
		return fmt.Errorf("erro ao chamar a API do LinkedIn: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("erro ao decodificar resposta do LinkedIn: %w", err)
	}

	return nil
}

func (s *LinkedInIntegrator) getCampaigns(accountExternalID string) ([]linkedinCampaign, error) {
	var response struct {
		Elements []linkedinCampaign `json:"elements"`
	}
	path := fmt.Sprintf("/adAccounts/%s/adCampaigns?q=search", accountExternalID)
	if err := s.get(path, &response); err != nil {
		return nil, err
	}
	return response.Elements, nil
}

func (s *LinkedInIntegrator) getDailyRows(campaignExternalID string, filters *domain.InsightFilters) ([]linkedinDailyRow, error) {
	var response struct {
		Elements []linkedinDailyRow `json:"elements"`
	}

	path := fmt.Sprintf("/adAnalytics?q=analytics&pivot=CAMPAIGN&timeGranularity=DAILY&campaigns=urn:li:sponsoredCampaign:%s", campaignExternalID)
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		path += fmt.Sprintf("&dateRange.start.year=%d&dateRange.start.month=%d&dateRange.start.day=%d",
			filters.StartDate.Year(), int(filters.StartDate.Month()), filters.StartDate.Day())
		path += fmt.Sprintf("&dateRange.end.year=%d&dateRange.end.month=%d&dateRange.end.day=%d",
			filters.EndDate.Year(), int(filters.EndDate.Month()), filters.EndDate.Day())
	}

	if err := s.get(path, &response); err != nil {
		return nil, err
	}
	return response.Elements, nil
}

func (s *LinkedInIntegrator) getCreativeRows(campaignExternalID string, filters *domain.InsightFilters) ([]linkedinCreativeRow, error) {
	var response struct {
		Elements []linkedinCreativeRow `json:"elements"`
	}

	path := fmt.Sprintf("/adAnalytics?q=analytics&pivot=CREATIVE&timeGranularity=ALL&campaigns=urn:li:sponsoredCampaign:%s", campaignExternalID)
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		path += fmt.Sprintf("&dateRange.start.year=%d&dateRange.start.month=%d&dateRange.start.day=%d",
			filters.StartDate.Year(), int(filters.StartDate.Month()), filters.StartDate.Day())
		path += fmt.Sprintf("&dateRange.end.year=%d&dateRange.end.month=%d&dateRange.end.day=%d",
			filters.EndDate.Year(), int(filters.EndDate.Month()), filters.EndDate.Day())
	}

	if err := s.get(path, &response); err != nil {
		return nil, err
	}
	return response.Elements, nil
}

func (s *LinkedInIntegrator) getTargeting(campaignExternalID string) (*linkedinTargeting, error) {
	var response struct {
		TargetingCriteria linkedinTargeting `json:"targetingCriteria"`
	}
	path := fmt.Sprintf("/adCampaigns/%s?fields=targetingCriteria", campaignExternalID)
	if err := s.get(path, &response); err != nil {
		return nil, err
	}
	return &response.TargetingCriteria, nil
}

func (s *LinkedInIntegrator) getCreatives(campaignExternalID string) ([]linkedinCreative, error) {
	var response struct {
		Elements []linkedinCreative `json:"elements"`
	}
	path := fmt.Sprintf("/creatives?q=criteria&campaigns=urn:li:sponsoredCampaign:%s", campaignExternalID)
	if err := s.get(path, &response); err != nil {
		return nil, err
	}
	return response.Elements, nil
}

func (r *linkedinDailyRow) date() time.Time {
	start := r.DateRange.Start
	return time.Date(start.Year, time.Month(start.Month), start.Day, 0, 0, 0, 0, time.UTC)
}
