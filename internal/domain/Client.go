package domain

import "time"

type ClientStatus string

const (
	ClientStatusLead    ClientStatus = "LEAD"
	ClientStatusActive  ClientStatus = "ACTIVE"
	ClientStatusChurned ClientStatus = "CHURNED"
)

// Client é um cliente da agência no CRM do painel.
type Client struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Company         string       `json:"company"`
	Email           string       `json:"email"`
	Phone           *string      `json:"phone"`
	Status          ClientStatus `json:"status"`
	MonthlyRetainer float64      `json:"monthly_retainer"`
	AccountIDs      []string     `json:"account_ids"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type CreateClientRequest struct {
	Name            string  `json:"name"`
	Company         string  `json:"company"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	MonthlyRetainer float64 `json:"monthly_retainer"`
}

type UpdateClientRequest struct {
	ID              string        `json:"id"`
	Name            *string       `json:"name"`
	Company         *string       `json:"company"`
	Email           *string       `json:"email"`
	Phone           *string       `json:"phone"`
	Status          *ClientStatus `json:"status"`
	MonthlyRetainer *float64      `json:"monthly_retainer"`
}
