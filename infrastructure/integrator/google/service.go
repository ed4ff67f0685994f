package google

import (
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

type GoogleIntegrator struct {
	cfg *config.Config
}

func New(cfg *config.Config) *GoogleIntegrator {
	return &GoogleIntegrator{cfg: cfg}
}

func (s *GoogleIntegrator) Provider() domain.Provider {
	return domain.ProviderGoogle
}

func (s *GoogleIntegrator) FetchCampaigns(accountExternalID string) ([]*domain.Campaign, error) {
	rows, err := s.getCampaigns(accountExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaigns from Google Ads API")
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, &domain.Campaign{
			ExternalID: row.ID,
			Provider:   domain.ProviderGoogle,
			Name:       row.Name,
			Objective:  row.Objective,
			Status:     statusFromGoogle(row.Status),
		})
	}

	return campaigns, nil
}

func (s *GoogleIntegrator) FetchDailyInsights(campaignExternalID string, filters *domain.InsightFilters) ([]*integrator.DailyInsight, error) {
	rows, err := s.getDailyRows(campaignExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("insights: failed to get daily metrics from Google Ads API")
		return nil, err
	}

	insights := make([]*integrator.DailyInsight, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"date":  row.Date,
				"error": err.Error(),
			}).Warn("insights: error parsing Google Ads date")
			continue
		}

		totals := domain.MetricTotals{
			Spend:       float64(row.CostMicros) / 1e6,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			Conversions: int64(math.Round(row.Conversions)),
			Revenue:     row.ConversionValue,
		}

		insights = append(insights, &integrator.DailyInsight{
			Date:   date,
			Totals: integrator.SanitizeTotals(totals),
		})
	}

	return insights, nil
}

func (s *GoogleIntegrator) FetchTargeting(campaignExternalID string) ([]*domain.TargetingRecord, error) {
	criteria, err := s.getCriteria(campaignExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("targeting: failed to get criteria from Google Ads API")
		return nil, err
	}

	// O Google devolve critérios soltos; agrupamos tudo em um registro único
	// por campanha.
	record := &domain.TargetingRecord{
		Provider: domain.ProviderGoogle,
		EntityID: campaignExternalID,
	}

	for _, criterion := range criteria {
		switch strings.ToUpper(criterion.Type) {
		case "KEYWORD":
			record.Keywords = append(record.Keywords, domain.Keyword{Text: criterion.Keyword})
		case "LOCATION":
			entity := domain.TargetingEntity{ID: criterion.ID, Name: criterion.Name}
			if criterion.Negative {
				record.Locations.Excluded = append(record.Locations.Excluded, entity)
			} else {
				record.Locations.Included = append(record.Locations.Included, entity)
			}
		case "USER_LIST", "AUDIENCE":
			entity := domain.TargetingEntity{ID: criterion.ID, Name: criterion.Name}
			if criterion.Negative {
				record.Audiences.Excluded = append(record.Audiences.Excluded, entity)
			} else {
				record.Audiences.Included = append(record.Audiences.Included, entity)
			}
		case "USER_INTEREST":
			record.Interests = append(record.Interests, domain.TargetingEntity{ID: criterion.ID, Name: criterion.Name})
		case "DEVICE":
			record.Devices = append(record.Devices, strings.ToLower(criterion.Device))
		case "LANGUAGE":
			record.Demographics.Languages = append(record.Demographics.Languages, criterion.Name)
		case "AGE_RANGE":
			record.Demographics.AgeRanges = append(record.Demographics.AgeRanges, criterion.Name)
		case "GENDER":
			record.Demographics.Genders = append(record.Demographics.Genders, strings.ToLower(criterion.Name))
		}
	}

	return []*domain.TargetingRecord{record}, nil
}

func (s *GoogleIntegrator) FetchCreatives(campaignExternalID string) ([]*domain.Creative, error) {
	ads, err := s.getAds(campaignExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("creatives: failed to get ads from Google Ads API")
		return nil, err
	}

	creatives := make([]*domain.Creative, 0, len(ads))
	for _, ad := range ads {
		var thumbnail *string
		if ad.ImageURL != "" {
			url := ad.ImageURL
			thumbnail = &url
		}

		creatives = append(creatives, &domain.Creative{
			ExternalID:   ad.ID,
			Provider:     domain.ProviderGoogle,
			Name:         ad.Name,
			Format:       formatFromGoogle(ad.Format),
			Headline:     ad.Headline,
			Body:         ad.Description,
			ThumbnailURL: thumbnail,
			Status:       creativeStatusFromGoogle(ad.Status),
		})
	}

	return creatives, nil
}

func (s *GoogleIntegrator) FetchCreativeMetrics(campaignExternalID string, filters *domain.InsightFilters) (map[string]domain.MetricTotals, error) {
	rows, err := s.getAdMetricsRows(campaignExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("creatives: failed to get ad metrics from Google Ads API")
		return nil, err
	}

	metrics := make(map[string]domain.MetricTotals, len(rows))
	for _, row := range rows {
		totals := domain.MetricTotals{
			Spend:       float64(row.CostMicros) / 1e6,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			Conversions: int64(math.Round(row.Conversions)),
			Revenue:     row.ConversionValue,
		}
		metrics[row.AdID] = integrator.SanitizeTotals(totals)
	}

	return metrics, nil
}

func statusFromGoogle(status string) domain.CampaignStatus {
	switch strings.ToUpper(status) {
	case "ENABLED":
		return domain.CampaignStatusActive
	case "PAUSED":
		return domain.CampaignStatusPaused
	default:
		return domain.CampaignStatusArchived
	}
}

func creativeStatusFromGoogle(status string) domain.CreativeStatus {
	switch strings.ToUpper(status) {
	case "ENABLED":
		return domain.CreativeStatusActive
	case "PAUSED":
		return domain.CreativeStatusPaused
	default:
		return domain.CreativeStatusArchived
	}
}

func formatFromGoogle(adType string) domain.CreativeFormat {
	switch strings.ToUpper(adType) {
	case "VIDEO_AD", "VIDEO_RESPONSIVE_AD":
		return domain.CreativeFormatVideo
	case "IMAGE_AD", "RESPONSIVE_DISPLAY_AD":
		return domain.CreativeFormatImage
	default:
		return domain.CreativeFormatCarousel
	}
}
