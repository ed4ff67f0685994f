package tiktok

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

type TikTokIntegrator struct {
	cfg *config.Config
}

func New(cfg *config.Config) *TikTokIntegrator {
	return &TikTokIntegrator{cfg: cfg}
}

func (s *TikTokIntegrator) Provider() domain.Provider {
	return domain.ProviderTikTok
}

func (s *TikTokIntegrator) FetchCampaigns(accountExternalID string) ([]*domain.Campaign, error) {
	rows, err := s.getCampaigns(accountExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaigns from TikTok API")
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, &domain.Campaign{
			ExternalID: row.CampaignID,
			Provider:   domain.ProviderTikTok,
			Name:       row.CampaignName,
			Objective:  row.Objective,
			Status:     statusFromTikTok(row.Status),
		})
	}

	return campaigns, nil
}

func (s *TikTokIntegrator) FetchDailyInsights(campaignExternalID string, filters *domain.InsightFilters) ([]*integrator.DailyInsight, error) {
	rows, err := s.getDailyRows(campaignExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("insights: failed to get daily report from TikTok API")
		return nil, err
	}

	insights := make([]*integrator.DailyInsight, 0, len(rows))
	for _, row := range rows {
		// stat_time_day vem como "2024-01-15 00:00:00"
		date, err := time.Parse("2006-01-02 15:04:05", row.Date)
		if err != nil {
			if date, err = time.Parse(time.DateOnly, row.Date); err != nil {
				logrus.WithFields(logrus.Fields{
					"date":  row.Date,
					"error": err.Error(),
				}).Warn("insights: error parsing TikTok report date")
				continue
			}
		}

		totals := domain.MetricTotals{
			Spend:       row.Spend,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			Conversions: row.Conversions,
			Revenue:     row.Revenue,
			Reach:       row.Reach,
		}

		insights = append(insights, &integrator.DailyInsight{
			Date:   date,
			Totals: integrator.SanitizeTotals(totals),
		})
	}

	return insights, nil
}

func (s *TikTokIntegrator) FetchTargeting(campaignExternalID string) ([]*domain.TargetingRecord, error) {
	adGroups, err := s.getAdGroups(campaignExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("targeting: failed to get ad groups from TikTok API")
		return nil, err
	}

	records := make([]*domain.TargetingRecord, 0, len(adGroups))
	for _, adGroup := range adGroups {
		record := &domain.TargetingRecord{
			Provider:   domain.ProviderTikTok,
			EntityID:   adGroup.AdGroupID,
			EntityName: adGroup.AdGroupName,
			Demographics: domain.Demographics{
				AgeRanges: adGroup.AgeGroups,
				Genders:   normalizeGenders(adGroup.Genders),
				Languages: adGroup.Languages,
			},
			Placements: adGroup.Placements,
			Devices:    adGroup.DeviceModels,
		}

		for _, id := range adGroup.LocationIDs {
			record.Locations.Included = append(record.Locations.Included, domain.TargetingEntity{ID: id, Name: id})
		}
		for _, id := range adGroup.InterestIDs {
			record.Interests = append(record.Interests, domain.TargetingEntity{ID: id, Name: id})
		}
		for _, id := range adGroup.AudienceIDs {
			record.Audiences.Included = append(record.Audiences.Included, domain.TargetingEntity{ID: id, Name: id})
		}
		for _, id := range adGroup.ExcludedAudIDs {
			record.Audiences.Excluded = append(record.Audiences.Excluded, domain.TargetingEntity{ID: id, Name: id})
		}

		records = append(records, record)
	}

	return records, nil
}

func (s *TikTokIntegrator) FetchCreatives(campaignExternalID string) ([]*domain.Creative, error) {
	ads, err := s.getAds(campaignExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("creatives: failed to get ads from TikTok API")
		return nil, err
	}

	creatives := make([]*domain.Creative, 0, len(ads))
	for _, ad := range ads {
		var thumbnail *string
		if ad.ImageURL != "" {
			url := ad.ImageURL
			thumbnail = &url
		}

		format := domain.CreativeFormatVideo
		if strings.Contains(strings.ToUpper(ad.Format), "IMAGE") {
			format = domain.CreativeFormatImage
		}

		creatives = append(creatives, &domain.Creative{
			ExternalID:   ad.AdID,
			Provider:     domain.ProviderTikTok,
			Name:         ad.AdName,
			Format:       format,
			Body:         ad.AdText,
			CallToAction: ad.CTA,
			ThumbnailURL: thumbnail,
			Status:       creativeStatusFromTikTok(ad.Status),
		})
	}

	return creatives, nil
}

func (s *TikTokIntegrator) FetchCreativeMetrics(campaignExternalID string, filters *domain.InsightFilters) (map[string]domain.MetricTotals, error) {
	rows, err := s.getAdRows(campaignExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("creatives: failed to get ad report from TikTok API")
		return nil, err
	}

	metrics := make(map[string]domain.MetricTotals, len(rows))
	for _, row := range rows {
		totals := domain.MetricTotals{
			Spend:       row.Metrics.Spend,
			Impressions: row.Metrics.Impressions,
			Clicks:      row.Metrics.Clicks,
			Conversions: row.Metrics.Conversions,
			Revenue:     row.Metrics.Revenue,
		}
		metrics[row.Dimensions.AdID] = integrator.SanitizeTotals(totals)
	}

	return metrics, nil
}

func normalizeGenders(genders []string) []string {
	out := make([]string, 0, len(genders))
	for _, g := range genders {
		out = append(out, strings.ToLower(strings.TrimPrefix(g, "GENDER_")))
	}
	return out
}

func statusFromTikTok(status string) domain.CampaignStatus {
	switch strings.ToUpper(status) {
	case "ENABLE":
		return domain.CampaignStatusActive
	case "DISABLE":
		return domain.CampaignStatusPaused
	default:
		return domain.CampaignStatusArchived
	}
}

func creativeStatusFromTikTok(status string) domain.CreativeStatus {
	switch strings.ToUpper(status) {
	case "ENABLE":
		return domain.CreativeStatusActive
	case "DISABLE":
		return domain.CreativeStatusPaused
	default:
		return domain.CreativeStatusArchived
	}
}
