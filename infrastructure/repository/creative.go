package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

const (
	creativesTable = "creatives cr"

	creativeColumns = "cr.id, cr.external_id, cr.campaign_id, cr.account_id, cr.provider, cr.name, cr.format, cr.headline, cr.body, cr.call_to_action, cr.thumbnail_url, cr.status, cr.created_at, cr.updated_at"
)

type CreativeRepository interface {
	GetByID(id string) (*domain.Creative, error)
	ListByCampaignID(campaignID string) ([]*domain.Creative, error)
	SaveOrUpdate(creative *domain.Creative) error
	UpdateCreative(creative *domain.Creative) error
}

type creativeRepository struct {
	conn *postgres.Connection
}

func NewCreativeRepository(conn *postgres.Connection) CreativeRepository {
	return &creativeRepository{
		conn: conn,
	}
}

func (r *creativeRepository) GetByID(id string) (*domain.Creative, error) {
	query, args, err := squirrel.
		Select(creativeColumns).
		From(creativesTable).
		Where(squirrel.Eq{"cr.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	creative := &domain.Creative{}
	var provider, format, status string

	err = row.Scan(
		&creative.ID,
		&creative.ExternalID,
		&creative.CampaignID,
		&creative.AccountID,
		&provider,
		&creative.Name,
		&format,
		&creative.Headline,
		&creative.Body,
		&creative.CallToAction,
		&creative.ThumbnailURL,
		&status,
		&creative.CreatedAt,
		&creative.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear criativo: %w", err)
	}

	creative.Provider = domain.Provider(provider)
	creative.Format = domain.CreativeFormat(format)
	creative.Status = domain.CreativeStatus(status)

	return creative, nil
}

func (r *creativeRepository) ListByCampaignID(campaignID string) ([]*domain.Creative, error) {
	query, args, err := squirrel.
		Select(creativeColumns).
		From(creativesTable).
		Where(squirrel.Eq{"cr.campaign_id": campaignID}).
		OrderBy("cr.created_at ASC").
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

	creatives := make([]*domain.Creative, 0)
	for rows.Next() {
		creative := &domain.Creative{}
		var provider, format, status string

		err := rows.Scan(
			&creative.ID,
			&creative.ExternalID,
			&creative.CampaignID,
			&creative.AccountID,
			&provider,
			&creative.Name,
			&format,
			&creative.Headline,
			&creative.Body,
			&creative.CallToAction,
			&creative.ThumbnailURL,
			&status,
			&creative.CreatedAt,
			&creative.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear criativo: %w", err)
		}

		creative.Provider = domain.Provider(provider)
		creative.Format = domain.CreativeFormat(format)
		creative.Status = domain.CreativeStatus(status)
		creatives = append(creatives, creative)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return creatives, nil
}

func (r *creativeRepository) SaveOrUpdate(creative *domain.Creative) error {
	query := squirrel.StatementBuilder.
		Insert("creatives").
		Columns("id", "external_id", "campaign_id", "account_id", "provider", "name", "format", "headline", "body", "call_to_action", "thumbnail_url", "status").
		Values(
			creative.ID,
			creative.ExternalID,
			creative.CampaignID,
			creative.AccountID,
			string(creative.Provider),
			creative.Name,
			string(creative.Format),
			creative.Headline,
			creative.Body,
			creative.CallToAction,
			creative.ThumbnailURL,
			string(creative.Status),
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				headline = EXCLUDED.headline,
				body = EXCLUDED.body,
				call_to_action = EXCLUDED.call_to_action,
				thumbnail_url = EXCLUDED.thumbnail_url,
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

func (r *creativeRepository) UpdateCreative(creative *domain.Creative) error {
	query, args, err := squirrel.
		Update("creatives").
		Set("name", creative.Name).
		Set("headline", creative.Headline).
		Set("body", creative.Body).
		Set("call_to_action", creative.CallToAction).
		Set("status", string(creative.Status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": creative.ID}).
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
