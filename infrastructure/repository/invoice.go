package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

const (
	invoicesTable = "invoices i"

	invoiceColumns = "i.id, i.public_id, i.client_id, i.description, i.amount, i.currency, i.status, i.issued_at, i.due_date, i.paid_at, i.created_at, i.updated_at"
)

type InvoiceRepository interface {
	GetByPublicID(publicID string) (*domain.Invoice, error)
	ListByClientID(clientID string) ([]*domain.Invoice, error)
	CreateInvoice(invoice *domain.Invoice) (*domain.Invoice, error)
	UpdateStatus(publicID string, status domain.InvoiceStatus, paidAt *time.Time) error
	MarkOverdue(now time.Time) (int64, error)
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

func (r *invoiceRepository) GetByPublicID(publicID string) (*domain.Invoice, error) {
	query, args, err := squirrel.
		Select(invoiceColumns).
		From(invoicesTable).
		Where(squirrel.Eq{"i.public_id": publicID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	invoice, err := scanInvoiceRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
	}

	return invoice, nil
}

func (r *invoiceRepository) ListByClientID(clientID string) ([]*domain.Invoice, error) {
	query, args, err := squirrel.
		Select(invoiceColumns).
		From(invoicesTable).
		Where(squirrel.Eq{"i.client_id": clientID}).
		OrderBy("i.issued_at DESC", "i.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		invoice := &domain.Invoice{}
		var status string

		err := rows.Scan(
			&invoice.ID,
			&invoice.PublicID,
			&invoice.ClientID,
			&invoice.Description,
			&invoice.Amount,
			&invoice.Currency,
			&status,
			&invoice.IssuedAt,
			&invoice.DueDate,
			&invoice.PaidAt,
			&invoice.CreatedAt,
			&invoice.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
		}

		invoice.Status = domain.InvoiceStatus(status)
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}

func (r *invoiceRepository) CreateInvoice(invoice *domain.Invoice) (*domain.Invoice, error) {
	query := squirrel.StatementBuilder.
		Insert("invoices").
		Columns("public_id", "client_id", "description", "amount", "currency", "status", "issued_at", "due_date").
		Values(
			invoice.PublicID,
			invoice.ClientID,
			invoice.Description,
			invoice.Amount,
			invoice.Currency,
			string(invoice.Status),
			invoice.IssuedAt,
			invoice.DueDate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)
	if err := row.Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return invoice, nil
}

func (r *invoiceRepository) UpdateStatus(publicID string, status domain.InvoiceStatus, paidAt *time.Time) error {
	query, args, err := squirrel.
		Update("invoices").
		Set("status", string(status)).
		Set("paid_at", paidAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"public_id": publicID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// MarkOverdue marca como OVERDUE toda fatura aberta com vencimento anterior a
// now. Retorna a quantidade de faturas alteradas.
func (r *invoiceRepository) MarkOverdue(now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update("invoices").
		Set("status", string(domain.InvoiceStatusOverdue)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": string(domain.InvoiceStatusOpen)}).
		Where(squirrel.Lt{"due_date": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected, nil
}

func scanInvoiceRow(row *sql.Row) (*domain.Invoice, error) {
	invoice := &domain.Invoice{}
	var status string

	err := row.Scan(
		&invoice.ID,
		&invoice.PublicID,
		&invoice.ClientID,
		&invoice.Description,
		&invoice.Amount,
		&invoice.Currency,
		&status,
		&invoice.IssuedAt,
		&invoice.DueDate,
		&invoice.PaidAt,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	invoice.Status = domain.InvoiceStatus(status)

	return invoice, nil
}
