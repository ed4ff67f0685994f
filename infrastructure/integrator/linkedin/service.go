package linkedin

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

type LinkedInIntegrator struct {
	cfg *config.Config
}

func New(cfg *config.Config) *LinkedInIntegrator {
	return &LinkedInIntegrator{cfg: cfg}
}

func (s *LinkedInIntegrator) Provider() domain.Provider {
	return domain.ProviderLinkedIn
}

func (s *LinkedInIntegrator) FetchCampaigns(accountExternalID string) ([]*domain.Campaign, error) {
	rows, err := s.getCampaigns(accountExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaigns from LinkedIn API")
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, &domain.Campaign{
			ExternalID: row.ID,
			Provider:   domain.ProviderLinkedIn,
			Name:       row.Name,
			Objective:  row.Objective,
			Status:     statusFromLinkedIn(row.Status),
		})
	}

	return campaigns, nil
}

func (s *LinkedInIntegrator) FetchDailyInsights(campaignExternalID string, filters *domain.InsightFilters) ([]*integrator.DailyInsight, error) {
	rows, err := s.getDailyRows(campaignExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("insights: failed to get daily analytics from LinkedIn API")
		return nil, err
	}

	insights := make([]*integrator.DailyInsight, 0, len(rows))
	for _, row := range rows {
		totals := domain.MetricTotals{
			Spend:       row.CostInLocalCurrency,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			Conversions: row.ExternalConversions,
			Revenue:     row.ConversionValueLocal,
		}

		insights = append(insights, &integrator.DailyInsight{
			Date:   row.date(),
			Totals: integrator.SanitizeTotals(totals),
		})
	}

	return insights, nil
}

func (s *LinkedInIntegrator) FetchTargeting(campaignExternalID string) ([]*domain.TargetingRecord, error) {
	targeting, err := s.getTargeting(campaignExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("targeting: failed to get targeting criteria from LinkedIn API")
		return nil, err
	}

	record := &domain.TargetingRecord{
		Provider: domain.ProviderLinkedIn,
		EntityID: campaignExternalID,
		Demographics: domain.Demographics{
			AgeRanges: targeting.AgeRanges,
			Genders:   normalizeGenders(targeting.Genders),
			Languages: targeting.Languages,
		},
		Professional: &domain.Professional{
			Industries: entities(targeting.Industries),
			JobTitles:  entities(targeting.JobTitles),
		},
		Interests: entities(targeting.Interests),
	}

	record.Locations.Included = entities(targeting.Locations)
	record.Locations.Excluded = entities(targeting.ExcludedLocs)
	record.Audiences.Included = entities(targeting.Audiences)
	record.Audiences.Excluded = entities(targeting.ExcludedAuds)

	return []*domain.TargetingRecord{record}, nil
}

func (s *LinkedInIntegrator) FetchCreatives(campaignExternalID string) ([]*domain.Creative, error) {
	rows, err := s.getCreatives(campaignExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("creatives: failed to get creatives from LinkedIn API")
		return nil, err
	}

	creatives := make([]*domain.Creative, 0, len(rows))
	for _, row := range rows {
		var thumbnail *string
		if row.ImageURL != "" {
			url := row.ImageURL
			thumbnail = &url
		}

		format := domain.CreativeFormatImage
		if strings.Contains(strings.ToUpper(row.Type), "VIDEO") {
			format = domain.CreativeFormatVideo
		} else if strings.Contains(strings.ToUpper(row.Type), "CAROUSEL") {
			format = domain.CreativeFormatCarousel
		}

		creatives = append(creatives, &domain.Creative{
			ExternalID:   row.ID,
			Provider:     domain.ProviderLinkedIn,
			Name:         row.Name,
			Format:       format,
			Headline:     row.Headline,
			Body:         row.Body,
			CallToAction: row.CTA,
			ThumbnailURL: thumbnail,
			Status:       creativeStatusFromLinkedIn(row.Status),
		})
	}

	return creatives, nil
}

func (s *LinkedInIntegrator) FetchCreativeMetrics(campaignExternalID string, filters *domain.InsightFilters) (map[string]domain.MetricTotals, error) {
	rows, err := s.getCreativeRows(campaignExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("creatives: failed to get creative analytics from LinkedIn API")
		return nil, err
	}

	metrics := make(map[string]domain.MetricTotals, len(rows))
	for _, row := range rows {
		id := creativeIDFromPivot(row.PivotValues)
		if id == "" {
			continue
		}

		totals := domain.MetricTotals{
			Spend:       row.CostInLocalCurrency,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			Conversions: row.ExternalConversions,
			Revenue:     row.ConversionValueLocal,
		}
		metrics[id] = integrator.SanitizeTotals(totals)
	}

	return metrics, nil
}

// creativeIDFromPivot extrai o ID numérico do URN
// urn:li:sponsoredCreative:<id> devolvido no pivô do relatório.
func creativeIDFromPivot(pivotValues []string) string {
	for _, urn := range pivotValues {
		if !strings.Contains(urn, "sponsoredCreative") {
			continue
		}
		parts := strings.Split(urn, ":")
		return parts[len(parts)-1]
	}
	return ""
}

func entities(in []linkedinEntity) []domain.TargetingEntity {
	out := make([]domain.TargetingEntity, 0, len(in))
	for _, e := range in {
		out = append(out, domain.TargetingEntity{ID: e.URN, Name: e.Name})
	}
	return out
}

func normalizeGenders(genders []string) []string {
	out := make([]string, 0, len(genders))
	for _, g := range genders {
		out = append(out, strings.ToLower(g))
	}
	return out
}

func statusFromLinkedIn(status string) domain.CampaignStatus {
	switch strings.ToUpper(status) {
	case "ACTIVE":
		return domain.CampaignStatusActive
	case "PAUSED", "DRAFT":
		return domain.CampaignStatusPaused
	default:
		return domain.CampaignStatusArchived
	}
}

func creativeStatusFromLinkedIn(status string) domain.CreativeStatus {
	switch strings.ToUpper(status) {
	case "ACTIVE":
		return domain.CreativeStatusActive
	case "PAUSED", "DRAFT":
		return domain.CreativeStatusPaused
	default:
		return domain.CreativeStatusArchived
	}
}
