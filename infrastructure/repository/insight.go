package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const insightsTable = "insights_cache"

type InsightRepository interface {
	GetByAccountIDAndDate(accountID string, date time.Time) (*domain.InsightEntry, error)
	SaveOrUpdate(insight *domain.InsightEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type insightRepository struct {
	conn *postgres.Connection
}

func NewInsightRepository(conn *postgres.Connection) InsightRepository {
	return &insightRepository{
		conn: conn,
	}
}

func (r *insightRepository) GetByAccountIDAndDate(accountID string, date time.Time) (*domain.InsightEntry, error) {
	query, args, err := squirrel.
		Select("id", "account_id", "date", "metrics", "created_at", "updated_at").
		From(insightsTable).
		Where(squirrel.Eq{"account_id": accountID, "date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var entry domain.InsightEntry
	var metricsJSON []byte
	err = r.conn.QueryRow(query, args...).Scan(
		&entry.ID,
		&entry.AccountID,
		&entry.Date,
		&metricsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear insight: %w", err)
	}

	if err := json.Unmarshal(metricsJSON, &entry.Metrics); err != nil {
		return nil, fmt.Errorf("erro ao decodificar métricas do cache: %w", err)
	}

	return &entry, nil
}

func (r *insightRepository) SaveOrUpdate(insight *domain.InsightEntry) error {
	metricsJSON, err := json.Marshal(insight.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas: %w", err)
	}

	query, args, err := squirrel.
		Insert(insightsTable).
		Columns("account_id", "date", "metrics").
		Values(insight.AccountID, insight.Date.Format(time.DateOnly), metricsJSON).
		Suffix("ON CONFLICT (account_id, date) DO UPDATE SET metrics = EXCLUDED.metrics, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar insight no cache: %w", err)
	}

	return nil
}

func (r *insightRepository) DeleteOlderThan(days int) (int64, error) {
	result, err := r.conn.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE date < NOW() - INTERVAL '%d days'", insightsTable, days),
	)
	if err != nil {
		return 0, fmt.Errorf("erro ao limpar cache de insights: %w", err)
	}

	return result.RowsAffected()
}
