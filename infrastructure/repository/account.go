package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

const (
	adAccountsTable = "ad_accounts a"
)

type AccountRepository interface {
	ListAccounts() ([]*domain.AdAccount, error)
	ListActiveAccounts() ([]*domain.AdAccount, error)
	GetAccountByID(id string) (*domain.AdAccount, error)
	GetAccountsByClientID(clientID string) ([]*domain.AdAccount, error)
	SaveOrUpdate(account *domain.AdAccount) error
	UpdateAccount(account *domain.AdAccount) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) ListAccounts() ([]*domain.AdAccount, error) {
	return r.listWithFilter(nil)
}

func (r *accountRepository) ListActiveAccounts() ([]*domain.AdAccount, error) {
	return r.listWithFilter(squirrel.Eq{"a.status": string(domain.AdAccountStatusActive)})
}

func (r *accountRepository) listWithFilter(filter interface{}) ([]*domain.AdAccount, error) {
	builder := squirrel.
		Select("a.id, a.external_id, a.provider, a.name, a.nickname, a.client_id, a.status").
		From(adAccountsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account, err := r.scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) GetAccountByID(id string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("a.id, a.external_id, a.provider, a.name, a.nickname, a.client_id, a.status").
		From(adAccountsTable).
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	account := &domain.AdAccount{}
	var provider, status string
	err = row.Scan(
		&account.ID,
		&account.ExternalID,
		&provider,
		&account.Name,
		&account.Nickname,
		&account.ClientID,
		&status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	account.Provider = domain.Provider(provider)
	account.Status = domain.AdAccountStatus(status)

	return account, nil
}

func (r *accountRepository) GetAccountsByClientID(clientID string) ([]*domain.AdAccount, error) {
	return r.listWithFilter(squirrel.Eq{"a.client_id": clientID})
}

func (r *accountRepository) SaveOrUpdate(account *domain.AdAccount) error {
	query := squirrel.StatementBuilder.
		Insert("ad_accounts").
		Columns("id", "external_id", "provider", "name", "nickname", "client_id", "status").
		Values(
			account.ID,
			account.ExternalID,
			string(account.Provider),
			account.Name,
			account.Nickname,
			account.ClientID,
			string(account.Status),
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				external_id = EXCLUDED.external_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status
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

func (r *accountRepository) UpdateAccount(account *domain.AdAccount) error {
	query, args, err := squirrel.
		Update("ad_accounts").
		Set("nickname", account.Nickname).
		Set("client_id", account.ClientID).
		Set("status", string(account.Status)).
		Where(squirrel.Eq{"id": account.ID}).
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

func (r *accountRepository) scanAccount(rows *sql.Rows) (*domain.AdAccount, error) {
	account := &domain.AdAccount{}
	var provider, status string

	err := rows.Scan(
		&account.ID,
		&account.ExternalID,
		&provider,
		&account.Name,
		&account.Nickname,
		&account.ClientID,
		&status,
	)
	if err != nil {
		return nil, err
	}

	account.Provider = domain.Provider(provider)
	account.Status = domain.AdAccountStatus(status)

	return account, nil
}
