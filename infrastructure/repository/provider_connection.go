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
	providerConnectionsTable = "provider_connections pc"

	providerConnectionColumns = "pc.id, pc.account_id, pc.provider, pc.access_token, pc.refresh_token, pc.scope, pc.expires_at, pc.status, pc.created_at, pc.updated_at"
)

type ProviderConnectionRepository interface {
	GetByAccountAndProvider(accountID string, provider domain.Provider) (*domain.ProviderConnection, error)
	ListByAccountID(accountID string) ([]*domain.ProviderConnection, error)
	SaveOrUpdate(connection *domain.ProviderConnection) error
	UpdateTokens(id int64, accessToken, refreshToken string, expiresAt time.Time) error
	Revoke(accountID string, provider domain.Provider) error
	MarkExpired(now time.Time) (int64, error)
}

type providerConnectionRepository struct {
	conn *postgres.Connection
}

func NewProviderConnectionRepository(conn *postgres.Connection) ProviderConnectionRepository {
	return &providerConnectionRepository{
		conn: conn,
	}
}

func (r *providerConnectionRepository) GetByAccountAndProvider(accountID string, provider domain.Provider) (*domain.ProviderConnection, error) {
	query, args, err := squirrel.
		Select(providerConnectionColumns).
		From(providerConnectionsTable).
		Where(squirrel.Eq{
			"pc.account_id": accountID,
			"pc.provider":   string(provider),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	connection := &domain.ProviderConnection{}
	var providerValue, status string

	err = r.conn.QueryRow(query, args...).Scan(
		&connection.ID,
		&connection.AccountID,
		&providerValue,
		&connection.AccessToken,
		&connection.RefreshToken,
		&connection.Scope,
		&connection.ExpiresAt,
		&status,
		&connection.CreatedAt,
		&connection.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
	}

	connection.Provider = domain.Provider(providerValue)
	connection.Status = domain.ConnectionStatus(status)

	return connection, nil
}

func (r *providerConnectionRepository) ListByAccountID(accountID string) ([]*domain.ProviderConnection, error) {
	query, args, err := squirrel.
		Select(providerConnectionColumns).
		From(providerConnectionsTable).
		Where(squirrel.Eq{"pc.account_id": accountID}).
		OrderBy("pc.provider ASC").
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

	connections := make([]*domain.ProviderConnection, 0)
	for rows.Next() {
		connection := &domain.ProviderConnection{}
		var providerValue, status string

		err := rows.Scan(
			&connection.ID,
			&connection.AccountID,
			&providerValue,
			&connection.AccessToken,
			&connection.RefreshToken,
			&connection.Scope,
			&connection.ExpiresAt,
			&status,
			&connection.CreatedAt,
			&connection.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
		}

		connection.Provider = domain.Provider(providerValue)
		connection.Status = domain.ConnectionStatus(status)
		connections = append(connections, connection)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return connections, nil
}

func (r *providerConnectionRepository) SaveOrUpdate(connection *domain.ProviderConnection) error {
	query := squirrel.StatementBuilder.
		Insert("provider_connections").
		Columns("account_id", "provider", "access_token", "refresh_token", "scope", "expires_at", "status").
		Values(
			connection.AccountID,
			string(connection.Provider),
			connection.AccessToken,
			connection.RefreshToken,
			connection.Scope,
			connection.ExpiresAt,
			string(connection.Status),
		).
		Suffix(`
			ON CONFLICT (account_id, provider) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				scope = EXCLUDED.scope,
				expires_at = EXCLUDED.expires_at,
				status = EXCLUDED.status,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *providerConnectionRepository) UpdateTokens(id int64, accessToken, refreshToken string, expiresAt time.Time) error {
	query, args, err := squirrel.
		Update("provider_connections").
		Set("access_token", accessToken).
		Set("refresh_token", refreshToken).
		Set("expires_at", expiresAt).
		Set("status", string(domain.ConnectionStatusActive)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
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

func (r *providerConnectionRepository) Revoke(accountID string, provider domain.Provider) error {
	query, args, err := squirrel.
		Update("provider_connections").
		Set("status", string(domain.ConnectionStatusRevoked)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"account_id": accountID,
			"provider":   string(provider),
		}).
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

// MarkExpired marca como EXPIRED toda conexão ativa cujo token já venceu.
func (r *providerConnectionRepository) MarkExpired(now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update("provider_connections").
		Set("status", string(domain.ConnectionStatusExpired)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": string(domain.ConnectionStatusActive)}).
		Where(squirrel.Lt{"expires_at": now}).
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
