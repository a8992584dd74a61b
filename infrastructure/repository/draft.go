package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const draftsTable = "campaign_drafts"

type DraftRepository interface {
	Save(draft *domain.CampaignDraft) error
	GetByID(draftID string) (*domain.CampaignDraft, error)
	ListByWorkspace(workspaceID string) ([]*domain.CampaignDraft, error)
	Delete(workspaceID, draftID string) error
}

type draftRepository struct {
	conn *postgres.Connection
}

func NewDraftRepository(conn *postgres.Connection) DraftRepository {
	return &draftRepository{
		conn: conn,
	}
}

func (r *draftRepository) Save(draft *domain.CampaignDraft) error {
	query, args, err := squirrel.
		Insert(draftsTable).
		Columns("id", "workspace_id", "name", "payload", "created_by").
		Values(draft.ID, draft.WorkspaceID, draft.Name, draft.Payload, draft.CreatedBy).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, payload = EXCLUDED.payload, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao salvar rascunho")
	}

	return nil
}

func (r *draftRepository) GetByID(draftID string) (*domain.CampaignDraft, error) {
	query, args, err := squirrel.
		Select("id", "workspace_id", "name", "payload", "created_by", "created_at", "updated_at").
		From(draftsTable).
		Where(squirrel.Eq{"id": draftID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var draft domain.CampaignDraft
	err = r.conn.QueryRow(query, args...).Scan(
		&draft.ID,
		&draft.WorkspaceID,
		&draft.Name,
		&draft.Payload,
		&draft.CreatedBy,
		&draft.CreatedAt,
		&draft.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &draft, nil
}

func (r *draftRepository) ListByWorkspace(workspaceID string) ([]*domain.CampaignDraft, error) {
	query, args, err := squirrel.
		Select("id", "workspace_id", "name", "payload", "created_by", "created_at", "updated_at").
		From(draftsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar rascunhos")
	}
	defer rows.Close()

	var drafts []*domain.CampaignDraft
	for rows.Next() {
		var draft domain.CampaignDraft
		if err := rows.Scan(
			&draft.ID,
			&draft.WorkspaceID,
			&draft.Name,
			&draft.Payload,
			&draft.CreatedBy,
			&draft.CreatedAt,
			&draft.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao processar resultado")
		}
		drafts = append(drafts, &draft)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return drafts, nil
}

func (r *draftRepository) Delete(workspaceID, draftID string) error {
	query, args, err := squirrel.
		Delete(draftsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID, "id": draftID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao excluir rascunho")
	}

	return nil
}
