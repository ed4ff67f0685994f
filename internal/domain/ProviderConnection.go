package domain

import "time"

type ConnectionStatus string

const (
	ConnectionStatusActive  ConnectionStatus = "ACTIVE"
	ConnectionStatusExpired ConnectionStatus = "EXPIRED"
	ConnectionStatusRevoked ConnectionStatus = "REVOKED"
)

// ProviderConnection guarda as credenciais OAuth de uma conta de anúncios
// junto à plataforma. Uma conta tem no máximo uma conexão por provider.
type ProviderConnection struct {
	ID           int64            `json:"id"`
	AccountID    string           `json:"account_id"`
	Provider     Provider         `json:"provider"`
	AccessToken  string           `json:"-"`
	RefreshToken string           `json:"-"`
	Scope        string           `json:"scope"`
	ExpiresAt    time.Time        `json:"expires_at"`
	Status       ConnectionStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
