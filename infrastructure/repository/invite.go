package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const invitesTable = "workspace_invites"

type InviteRepository interface {
	Create(invite *domain.Invite) error
	GetByToken(token string) (*domain.Invite, error)
	GetByID(inviteID string) (*domain.Invite, error)
	ListByWorkspace(workspaceID string) ([]*domain.Invite, error)
	UpdateStatus(inviteID string, status domain.InviteStatus, acceptedAt *time.Time) error
}

type inviteRepository struct {
	conn *postgres.Connection
}

func NewInviteRepository(conn *postgres.Connection) InviteRepository {
	return &inviteRepository{
		conn: conn,
	}
}

func (r *inviteRepository) Create(invite *domain.Invite) error {
	query, args, err := squirrel.
		Insert(invitesTable).
		Columns("id", "workspace_id", "email", "role_id", "token", "status", "invited_by", "expires_at").
		Values(
			invite.ID,
			invite.WorkspaceID,
			invite.Email,
			invite.RoleID,
			invite.Token,
			invite.Status,
			invite.InvitedBy,
			invite.ExpiresAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao criar convite")
	}

	return nil
}

func (r *inviteRepository) GetByToken(token string) (*domain.Invite, error) {
	return r.getByColumn("token", token)
}

func (r *inviteRepository) GetByID(inviteID string) (*domain.Invite, error) {
	return r.getByColumn("id", inviteID)
}

func (r *inviteRepository) getByColumn(column, value string) (*domain.Invite, error) {
	query, args, err := squirrel.
		Select("id", "workspace_id", "email", "role_id", "token", "status", "invited_by", "expires_at", "created_at", "accepted_at").
		From(invitesTable).
		Where(squirrel.Eq{column: value}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var invite domain.Invite
	err = r.conn.QueryRow(query, args...).Scan(
		&invite.ID,
		&invite.WorkspaceID,
		&invite.Email,
		&invite.RoleID,
		&invite.Token,
		&invite.Status,
		&invite.InvitedBy,
		&invite.ExpiresAt,
		&invite.CreatedAt,
		&invite.AcceptedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &invite, nil
}

func (r *inviteRepository) ListByWorkspace(workspaceID string) ([]*domain.Invite, error) {
	query, args, err := squirrel.
		Select("id", "workspace_id", "email", "role_id", "token", "status", "invited_by", "expires_at", "created_at", "accepted_at").
		From(invitesTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar convites")
	}
	defer rows.Close()

	var invites []*domain.Invite
	for rows.Next() {
		var invite domain.Invite
		if err := rows.Scan(
			&invite.ID,
			&invite.WorkspaceID,
			&invite.Email,
			&invite.RoleID,
			&invite.Token,
			&invite.Status,
			&invite.InvitedBy,
			&invite.ExpiresAt,
			&invite.CreatedAt,
			&invite.AcceptedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao processar resultado")
		}
		invites = append(invites, &invite)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return invites, nil
}

func (r *inviteRepository) UpdateStatus(inviteID string, status domain.InviteStatus, acceptedAt *time.Time) error {
	queryBuilder := squirrel.
		Update(invitesTable).
		Set("status", status).
		Where(squirrel.Eq{"id": inviteID})

	if acceptedAt != nil {
		queryBuilder = queryBuilder.Set("accepted_at", acceptedAt)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar convite")
	}

	return nil
}
