package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

type CampaignRepository interface {
	GetByID(id string) (*domain.Campaign, error)
	ListByAccountID(accountID string) ([]*domain.Campaign, error)
	SaveOrUpdate(campaign *domain.Campaign) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.id, c.external_id, c.account_id, c.provider, c.name, c.objective, c.status, c.created_at, c.updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	campaign, err := scanCampaignRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListByAccountID(accountID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.id, c.external_id, c.account_id, c.provider, c.name, c.objective, c.status, c.created_at, c.updated_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.account_id": accountID}).
		OrderBy("c.name ASC").
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		var provider, status string

		err := rows.Scan(
			&campaign.ID,
			&campaign.ExternalID,
			&campaign.AccountID,
			&provider,
			&campaign.Name,
			&campaign.Objective,
			&status,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}

		campaign.Provider = domain.Provider(provider)
		campaign.Status = domain.CampaignStatus(status)
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) error {
	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "external_id", "account_id", "provider", "name", "objective", "status").
		Values(
			campaign.ID,
			campaign.ExternalID,
			campaign.AccountID,
			string(campaign.Provider),
			campaign.Name,
			campaign.Objective,
			string(campaign.Status),
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				objective = EXCLUDED.objective,
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

func scanCampaignRow(row *sql.Row) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	var provider, status string

	err := row.Scan(
		&campaign.ID,
		&campaign.ExternalID,
		&campaign.AccountID,
		&provider,
		&campaign.Name,
		&campaign.Objective,
		&status,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	campaign.Provider = domain.Provider(provider)
	campaign.Status = domain.CampaignStatus(status)

	return campaign, nil
}
