package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

const (
	clientsTable = "clients cl"
)

type ClientRepository interface {
	ListClients() ([]*domain.Client, error)
	GetClientByID(id string) (*domain.Client, error)
	CreateClient(client *domain.Client) (*domain.Client, error)
	UpdateClient(client *domain.Client) error
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) ListClients() ([]*domain.Client, error) {
	// account_ids agregado por subquery para evitar N+1 na listagem do CRM
	query, args, err := squirrel.
		Select(`cl.id, cl.name, cl.company, cl.email, cl.phone, cl.status, cl.monthly_retainer,
			COALESCE((SELECT ARRAY_AGG(a.id) FROM ad_accounts a WHERE a.client_id = cl.id), '{}') AS account_ids,
			cl.created_at, cl.updated_at`).
		From(clientsTable).
		OrderBy("cl.name ASC").
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

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) GetClientByID(id string) (*domain.Client, error) {
	query, args, err := squirrel.
		Select(`cl.id, cl.name, cl.company, cl.email, cl.phone, cl.status, cl.monthly_retainer,
			COALESCE((SELECT ARRAY_AGG(a.id) FROM ad_accounts a WHERE a.client_id = cl.id), '{}') AS account_ids,
			cl.created_at, cl.updated_at`).
		From(clientsTable).
		Where(squirrel.Eq{"cl.id": id}).
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

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}
		return nil, nil
	}

	client, err := scanClient(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return client, nil
}

func (r *clientRepository) CreateClient(client *domain.Client) (*domain.Client, error) {
	query := squirrel.StatementBuilder.
		Insert("clients").
		Columns("id", "name", "company", "email", "phone", "status", "monthly_retainer").
		Values(
			client.ID,
			client.Name,
			client.Company,
			client.Email,
			client.Phone,
			string(client.Status),
			client.MonthlyRetainer,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)
	if err := row.Scan(&client.CreatedAt, &client.UpdatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return client, nil
}

func (r *clientRepository) UpdateClient(client *domain.Client) error {
	query, args, err := squirrel.
		Update("clients").
		Set("name", client.Name).
		Set("company", client.Company).
		Set("email", client.Email).
		Set("phone", client.Phone).
		Set("status", string(client.Status)).
		Set("monthly_retainer", client.MonthlyRetainer).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": client.ID}).
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

func scanClient(rows *sql.Rows) (*domain.Client, error) {
	client := &domain.Client{}
	var status string
	var accountIDs pq.StringArray

	err := rows.Scan(
		&client.ID,
		&client.Name,
		&client.Company,
		&client.Email,
		&client.Phone,
		&status,
		&client.MonthlyRetainer,
		&accountIDs,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	client.Status = domain.ClientStatus(status)
	client.AccountIDs = accountIDs

	return client, nil
}
