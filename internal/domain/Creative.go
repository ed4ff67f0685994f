package domain

import "time"

type CreativeStatus string

const (
	CreativeStatusActive   CreativeStatus = "ACTIVE"
	CreativeStatusPaused   CreativeStatus = "PAUSED"
	CreativeStatusArchived CreativeStatus = "ARCHIVED"
)

type CreativeFormat string

const (
	CreativeFormatImage    CreativeFormat = "IMAGE"
	CreativeFormatVideo    CreativeFormat = "VIDEO"
	CreativeFormatCarousel CreativeFormat = "CAROUSEL"
)

// Creative é um criativo de anúncio gerenciado pelo painel.
type Creative struct {
	ID           string         `json:"id"`
	ExternalID   string         `json:"external_id"`
	CampaignID   string         `json:"campaign_id"`
	AccountID    string         `json:"account_id"`
	Provider     Provider       `json:"provider"`
	Name         string         `json:"name"`
	Format       CreativeFormat `json:"format"`
	Headline     string         `json:"headline"`
	Body         string         `json:"body"`
	CallToAction string         `json:"call_to_action"`
	ThumbnailURL *string        `json:"thumbnail_url"`
	Status       CreativeStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// CreativePerformance junta o criativo às suas métricas derivadas para a
// listagem ordenável por CTR do painel.
type CreativePerformance struct {
	Creative *Creative      `json:"creative"`
	Totals   MetricTotals   `json:"totals"`
	Derived  DerivedMetrics `json:"derived"`
}

type UpdateCreativeRequest struct {
	ID           string          `json:"id"`
	Name         *string         `json:"name"`
	Headline     *string         `json:"headline"`
	Body         *string         `json:"body"`
	CallToAction *string         `json:"call_to_action"`
	Status       *CreativeStatus `json:"status"`
}
