package meta

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator"
	metadomain "github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/agency-dashboard-api/internal/config"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) Provider() domain.Provider {
	return domain.ProviderMeta
}

func (s *MetaIntegrator) FetchCampaigns(accountExternalID string) ([]*domain.Campaign, error) {
	metaCampaigns, err := s.Client.GetCampaignsByAccountID(accountExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountExternalID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaigns from Meta API")
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(metaCampaigns))
	for _, mc := range metaCampaigns {
		campaigns = append(campaigns, &domain.Campaign{
			ExternalID: mc.ID,
			Provider:   domain.ProviderMeta,
			Name:       mc.Name,
			Objective:  mc.Objective,
			Status:     campaignStatusFromMeta(mc.Status),
		})
	}

	return campaigns, nil
}

func (s *MetaIntegrator) FetchDailyInsights(campaignExternalID string, filters *domain.InsightFilters) ([]*integrator.DailyInsight, error) {
	rows, err := s.Client.GetDailyInsightsByCampaignID(campaignExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("insights: failed to get daily insights from Meta API")
		return nil, err
	}

	insights := make([]*integrator.DailyInsight, 0, len(rows))
	for i := range rows {
		insight := factoryDailyInsight(&rows[i])
		if insight == nil {
			continue
		}
		insights = append(insights, insight)
	}

	return insights, nil
}

func (s *MetaIntegrator) FetchTargeting(campaignExternalID string) ([]*domain.TargetingRecord, error) {
	adSets, err := s.Client.GetAdSetsByCampaignID(campaignExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("targeting: failed to get ad sets from Meta API")
		return nil, err
	}

	records := make([]*domain.TargetingRecord, 0, len(adSets))
	for _, adSet := range adSets {
		records = append(records, factoryTargetingRecord(adSet))
	}

	return records, nil
}

func (s *MetaIntegrator) FetchCreatives(campaignExternalID string) ([]*domain.Creative, error) {
	metaCreatives, err := s.Client.GetCreativesByCampaignID(campaignExternalID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("creatives: failed to get creatives from Meta API")
		return nil, err
	}

	creatives := make([]*domain.Creative, 0, len(metaCreatives))
	for _, mc := range metaCreatives {
		var thumbnail *string
		if mc.ThumbnailURL != "" {
			url := mc.ThumbnailURL
			thumbnail = &url
		}

		creatives = append(creatives, &domain.Creative{
			ExternalID:   mc.ID,
			Provider:     domain.ProviderMeta,
			Name:         mc.Name,
			Format:       creativeFormatFromMeta(mc.ObjectType),
			Headline:     mc.Title,
			Body:         mc.Body,
			CallToAction: mc.CallToAction,
			ThumbnailURL: thumbnail,
			Status:       creativeStatusFromMeta(mc.Status),
		})
	}

	return creatives, nil
}

func (s *MetaIntegrator) FetchCreativeMetrics(campaignExternalID string, filters *domain.InsightFilters) (map[string]domain.MetricTotals, error) {
	rows, err := s.Client.GetAdInsightsByCampaignID(campaignExternalID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignExternalID,
			"error":       err.Error(),
		}).Error("creatives: failed to get ad insights from Meta API")
		return nil, err
	}

	metrics := make(map[string]domain.MetricTotals, len(rows))
	for i := range rows {
		row := &rows[i]
		if row.AdID == "" {
			continue
		}

		totals := domain.MetricTotals{
			Spend:       parseFloatField(row.Spend, "spend"),
			Impressions: parseIntField(row.Impressions, "impressions"),
			Clicks:      parseIntField(row.Clicks, "clicks"),
			Reach:       parseIntField(row.Reach, "reach"),
		}
		for _, action := range row.Conversions() {
			totals.Conversions += parseIntField(action.Value, "conversions")
		}
		for _, action := range row.Revenue() {
			totals.Revenue += parseFloatField(action.Value, "revenue")
		}

		metrics[row.AdID] = integrator.SanitizeTotals(totals)
	}

	return metrics, nil
}

// factoryDailyInsight converte uma linha de insight do Meta para o tipo do
// domínio. A API devolve números como strings; falhas de conversão viram
// warning e o campo fica zerado.
func factoryDailyInsight(row *metadomain.DailyInsight) *integrator.DailyInsight {
	date, err := time.Parse(time.DateOnly, row.DateStart)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date_start": row.DateStart,
			"error":      err.Error(),
		}).Warn("insights: error parsing insight date")
		return nil
	}

	totals := domain.MetricTotals{
		Spend:       parseFloatField(row.Spend, "spend"),
		Impressions: parseIntField(row.Impressions, "impressions"),
		Clicks:      parseIntField(row.Clicks, "clicks"),
		Reach:       parseIntField(row.Reach, "reach"),
	}

	for _, action := range row.Conversions() {
		totals.Conversions += parseIntField(action.Value, "conversions")
	}
	for _, action := range row.Revenue() {
		totals.Revenue += parseFloatField(action.Value, "revenue")
	}

	return &integrator.DailyInsight{
		Date:   date,
		Totals: integrator.SanitizeTotals(totals),
	}
}

func factoryTargetingRecord(adSet metadomain.AdSet) *domain.TargetingRecord {
	record := &domain.TargetingRecord{
		Provider:   domain.ProviderMeta,
		EntityID:   adSet.ID,
		EntityName: adSet.Name,
	}

	targeting := adSet.Targeting
	if targeting == nil {
		return record
	}

	if targeting.AgeMin > 0 || targeting.AgeMax > 0 {
		record.Demographics.AgeRanges = []string{ageRange(targeting.AgeMin, targeting.AgeMax)}
	}
	for _, g := range targeting.Genders {
		switch g {
		case 1:
			record.Demographics.Genders = append(record.Demographics.Genders, "male")
		case 2:
			record.Demographics.Genders = append(record.Demographics.Genders, "female")
		}
	}

	for _, audience := range targeting.CustomAudiences {
		record.Audiences.Included = append(record.Audiences.Included, domain.TargetingEntity{ID: audience.ID, Name: audience.Name})
	}
	for _, audience := range targeting.ExcludedCustom {
		record.Audiences.Excluded = append(record.Audiences.Excluded, domain.TargetingEntity{ID: audience.ID, Name: audience.Name})
	}

	if targeting.GeoLocations != nil {
		record.Locations.Included = geoEntities(targeting.GeoLocations)
	}
	if targeting.ExcludedGeo != nil {
		record.Locations.Excluded = geoEntities(targeting.ExcludedGeo)
	}

	for _, interest := range targeting.Interests {
		record.Interests = append(record.Interests, domain.TargetingEntity{ID: interest.ID, Name: interest.Name})
	}

	record.Devices = targeting.DevicePlatforms
	record.Placements = targeting.PublisherPlats

	if len(targeting.Positions) > 0 {
		record.PlatformPlacements = targeting.Positions
	}

	return record
}

func geoEntities(geo *metadomain.GeoLocations) []domain.TargetingEntity {
	entities := make([]domain.TargetingEntity, 0)
	for _, country := range geo.Countries {
		entities = append(entities, domain.TargetingEntity{ID: country, Name: country})
	}
	for _, city := range geo.Cities {
		entities = append(entities, domain.TargetingEntity{ID: city.ID, Name: city.Name})
	}
	for _, region := range geo.Regions {
		entities = append(entities, domain.TargetingEntity{ID: region.ID, Name: region.Name})
	}
	return entities
}

func ageRange(min, max int) string {
	return strconv.Itoa(min) + "-" + strconv.Itoa(max)
}

func parseFloatField(value, field string) float64 {
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to float")
		return 0
	}
	return parsed
}

func parseIntField(value, field string) int64 {
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to integer")
		return 0
	}
	return parsed
}

func campaignStatusFromMeta(status string) domain.CampaignStatus {
	switch strings.ToUpper(status) {
	case "ACTIVE":
		return domain.CampaignStatusActive
	case "PAUSED":
		return domain.CampaignStatusPaused
	default:
		return domain.CampaignStatusArchived
	}
}

func creativeStatusFromMeta(status string) domain.CreativeStatus {
	switch strings.ToUpper(status) {
	case "ACTIVE":
		return domain.CreativeStatusActive
	case "PAUSED":
		return domain.CreativeStatusPaused
	default:
		return domain.CreativeStatusArchived
	}
}

func creativeFormatFromMeta(objectType string) domain.CreativeFormat {
	switch strings.ToUpper(objectType) {
	case "VIDEO":
		return domain.CreativeFormatVideo
	case "SHARE", "PHOTO":
		return domain.CreativeFormatImage
	default:
		return domain.CreativeFormatCarousel
	}
}
