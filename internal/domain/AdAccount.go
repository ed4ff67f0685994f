package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount é uma conta de anúncios de um cliente da agência em uma
// plataforma específica.
type AdAccount struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Provider   Provider        `json:"provider"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	ClientID   *string         `json:"client_id"`
	Status     AdAccountStatus `json:"status"`
}

type AdAccountResponse struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Provider   Provider        `json:"provider"`
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Connected  bool            `json:"connected"`
	Status     AdAccountStatus `json:"status"`
}

type UpdateAdAccountRequest struct {
	ID       string           `json:"id"`
	Nickname *string          `json:"nickname"`
	ClientID *string          `json:"client_id"`
	Status   *AdAccountStatus `json:"status"`
}
