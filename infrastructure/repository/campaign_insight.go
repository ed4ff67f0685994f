package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

const (
	campaignInsightsTable = "campaign_insights ci"
)

type CampaignInsightRepository interface {
	GetByAccountAndDateRange(accountID string, startDate, endDate time.Time) ([]*domain.CampaignInsightEntry, error)
	GetByCampaignAndDateRange(campaignID string, startDate, endDate time.Time) ([]*domain.CampaignInsightEntry, error)
	SaveOrUpdate(entry *domain.CampaignInsightEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type campaignInsightRepository struct {
	conn *postgres.Connection
}

func NewCampaignInsightRepository(conn *postgres.Connection) CampaignInsightRepository {
	return &campaignInsightRepository{
		conn: conn,
	}
}

func (r *campaignInsightRepository) GetByAccountAndDateRange(accountID string, startDate, endDate time.Time) ([]*domain.CampaignInsightEntry, error) {
	query, args, err := squirrel.
		Select("ci.id, ci.account_id, ci.provider, ci.campaign_id, ci.date, ci.totals, ci.created_at, ci.updated_at").
		From(campaignInsightsTable).
		Where(squirrel.Eq{"ci.account_id": accountID}).
		Where(squirrel.GtOrEq{"ci.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ci.date": endDate.Format("2006-01-02")}).
		OrderBy("ci.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *campaignInsightRepository) GetByCampaignAndDateRange(campaignID string, startDate, endDate time.Time) ([]*domain.CampaignInsightEntry, error) {
	query, args, err := squirrel.
		Select("ci.id, ci.account_id, ci.provider, ci.campaign_id, ci.date, ci.totals, ci.created_at, ci.updated_at").
		From(campaignInsightsTable).
		Where(squirrel.Eq{"ci.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"ci.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ci.date": endDate.Format("2006-01-02")}).
		OrderBy("ci.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *campaignInsightRepository) queryEntries(query string, args []interface{}) ([]*domain.CampaignInsightEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.CampaignInsightEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campaign insights: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *campaignInsightRepository) SaveOrUpdate(entry *domain.CampaignInsightEntry) error {
	var totalsJSON []byte
	var err error

	if entry.Totals != nil {
		totalsJSON, err = json.Marshal(entry.Totals)
		if err != nil {
			return fmt.Errorf("erro ao serializar totais para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("campaign_insights").
		Columns("account_id", "provider", "campaign_id", "date", "totals").
		Values(
			entry.AccountID,
			string(entry.Provider),
			entry.CampaignID,
			entry.Date.Format("2006-01-02"),
			totalsJSON,
		).
		Suffix(`
			ON CONFLICT (campaign_id, date) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				provider = EXCLUDED.provider,
				totals = EXCLUDED.totals,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignInsightRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("campaign_insights").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *campaignInsightRepository) scanEntry(rows *sql.Rows) (*domain.CampaignInsightEntry, error) {
	entry := &domain.CampaignInsightEntry{}
	var provider string
	var totalsJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.AccountID,
		&provider,
		&entry.CampaignID,
		&entry.Date,
		&totalsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Provider = domain.Provider(provider)

	if totalsJSON != nil {
		totals := &domain.MetricTotals{}
		if err := json.Unmarshal(totalsJSON, totals); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de totais: %w", err)
		}
		entry.Totals = totals
	}

	return entry, nil
}
