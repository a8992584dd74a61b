package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const activityTable = "workspace_activity"

type ActivityRepository interface {
	Append(entry *domain.ActivityEntry) error
	ListByWorkspace(workspaceID string, limit, offset int) ([]*domain.ActivityEntry, error)
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (r *activityRepository) Append(entry *domain.ActivityEntry) error {
	query, args, err := squirrel.
		Insert(activityTable).
		Columns("workspace_id", "user_id", "action", "entity_type", "entity_id", "detail").
		Values(entry.WorkspaceID, entry.UserID, entry.Action, entry.EntityType, entry.EntityID, entry.Detail).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.conn.QueryRow(query, args...).Scan(&entry.ID)
	if err != nil {
		return errors.Wrap(err, "erro ao registrar atividade")
	}

	return nil
}

func (r *activityRepository) ListByWorkspace(workspaceID string, limit, offset int) ([]*domain.ActivityEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query, args, err := squirrel.
		Select("a.id", "a.workspace_id", "a.user_id", "COALESCE(u.name, '')", "a.action", "a.entity_type", "a.entity_id", "a.detail", "a.created_at").
		From(activityTable + " a").
		LeftJoin(usersTable + " u ON u.id = a.user_id").
		Where(squirrel.Eq{"a.workspace_id": workspaceID}).
		OrderBy("a.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar atividades")
	}
	defer rows.Close()

	var entries []*domain.ActivityEntry
	for rows.Next() {
		var entry domain.ActivityEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.WorkspaceID,
			&entry.UserID,
			&entry.UserName,
			&entry.Action,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Detail,
			&entry.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao processar resultado")
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return entries, nil
}
