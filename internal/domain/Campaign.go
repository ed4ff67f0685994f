package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusPaused   CampaignStatus = "PAUSED"
	CampaignStatusArchived CampaignStatus = "ARCHIVED"
)

// Campaign é uma campanha sincronizada de uma plataforma de anúncios.
type Campaign struct {
	ID         string         `json:"id"`
	ExternalID string         `json:"external_id"`
	AccountID  string         `json:"account_id"`
	Provider   Provider       `json:"provider"`
	Name       string         `json:"name"`
	Objective  string         `json:"objective"`
	Status     CampaignStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
