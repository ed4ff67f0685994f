package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/agency-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/agency-dashboard-api/internal/domain"
)

const (
	targetingRecordsTable = "targeting_records tr"
)

type TargetingRecordRepository interface {
	ListByCampaignID(campaignID string) ([]*domain.TargetingRecord, error)
	SaveOrUpdate(campaignID string, record *domain.TargetingRecord) error
	DeleteByCampaignID(campaignID string) error
}

type targetingRecordRepository struct {
	conn *postgres.Connection
}

func NewTargetingRecordRepository(conn *postgres.Connection) TargetingRecordRepository {
	return &targetingRecordRepository{
		conn: conn,
	}
}

// ListByCampaignID retorna os registros de segmentação sincronizados de uma
// campanha, na ordem em que foram gravados. A configuração completa fica na
// coluna JSON record.
func (r *targetingRecordRepository) ListByCampaignID(campaignID string) ([]*domain.TargetingRecord, error) {
	query, args, err := squirrel.
		Select("tr.record").
		From(targetingRecordsTable).
		Where(squirrel.Eq{"tr.campaign_id": campaignID}).
		OrderBy("tr.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.TargetingRecord, 0)
	for rows.Next() {
		var recordJSON []byte
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de segmentação: %w", err)
		}

		record := &domain.TargetingRecord{}
		if err := json.Unmarshal(recordJSON, record); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de segmentação: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *targetingRecordRepository) SaveOrUpdate(campaignID string, record *domain.TargetingRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("erro ao serializar registro de segmentação: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("targeting_records").
		Columns("campaign_id", "provider", "entity_id", "record").
		Values(
			campaignID,
			string(record.Provider),
			record.EntityID,
			recordJSON,
		).
		Suffix(`
			ON CONFLICT (campaign_id, entity_id) DO UPDATE SET
				provider = EXCLUDED.provider,
				record = EXCLUDED.record,
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

func (r *targetingRecordRepository) DeleteByCampaignID(campaignID string) error {
	query, args, err := squirrel.
		Delete("targeting_records").
		Where(squirrel.Eq{"campaign_id": campaignID}).
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
