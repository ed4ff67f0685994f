package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusOpen    InvoiceStatus = "OPEN"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
	InvoiceStatusVoid    InvoiceStatus = "VOID"
)

// Invoice é uma fatura emitida para um cliente da agência.
type Invoice struct {
	ID          int64         `json:"id"`
	PublicID    string        `json:"public_id"`
	ClientID    string        `json:"client_id"`
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Status      InvoiceStatus `json:"status"`
	IssuedAt    time.Time     `json:"issued_at"`
	DueDate     time.Time     `json:"due_date"`
	PaidAt      *time.Time    `json:"paid_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// BillingSummary é a visão de cobrança de um cliente exibida no painel.
type BillingSummary struct {
	ClientID     string     `json:"client_id"`
	OpenTotal    float64    `json:"open_total"`
	PaidTotal    float64    `json:"paid_total"`
	OverdueTotal float64    `json:"overdue_total"`
	InvoiceCount int        `json:"invoice_count"`
	Invoices     []*Invoice `json:"invoices"`
}

type CreateInvoiceRequest struct {
	ClientID    string    `json:"client_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	DueDate     time.Time `json:"due_date"`
}
