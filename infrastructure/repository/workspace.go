package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const workspacesTable = "workspaces"

type WorkspaceRepository interface {
	Create(workspace *domain.Workspace) error
	GetByID(workspaceID string) (*domain.Workspace, error)
	Update(workspace *domain.Workspace) error
	ListActive() ([]*domain.Workspace, error)
	ListMembers(workspaceID string) ([]*domain.Member, error)
	RemoveMember(workspaceID string, userID int) error
}

type workspaceRepository struct {
	conn *postgres.Connection
}

func NewWorkspaceRepository(conn *postgres.Connection) WorkspaceRepository {
	return &workspaceRepository{
		conn: conn,
	}
}

func (r *workspaceRepository) Create(workspace *domain.Workspace) error {
	query, args, err := squirrel.
		Insert(workspacesTable).
		Columns("id", "name", "status", "active_business_id", "ad_account_id", "pixel_id", "page_id", "app_id").
		Values(
			workspace.ID,
			workspace.Name,
			workspace.Status,
			workspace.ActiveBusinessID,
			workspace.AdAccountID,
			workspace.PixelID,
			workspace.PageID,
			workspace.AppID,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao criar workspace")
	}

	return nil
}

func (r *workspaceRepository) GetByID(workspaceID string) (*domain.Workspace, error) {
	var workspace domain.Workspace
	err := r.conn.QueryRow(
		"SELECT id, name, status, active_business_id, ad_account_id, pixel_id, page_id, app_id, created_at, updated_at FROM workspaces WHERE id = $1",
		workspaceID,
	).Scan(
		&workspace.ID,
		&workspace.Name,
		&workspace.Status,
		&workspace.ActiveBusinessID,
		&workspace.AdAccountID,
		&workspace.PixelID,
		&workspace.PageID,
		&workspace.AppID,
		&workspace.CreatedAt,
		&workspace.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &workspace, nil
}

func (r *workspaceRepository) ListActive() ([]*domain.Workspace, error) {
	query, args, err := squirrel.
		Select("id", "name", "status", "active_business_id", "ad_account_id", "pixel_id", "page_id", "app_id", "created_at", "updated_at").
		From(workspacesTable).
		Where(squirrel.Eq{"status": domain.WorkspaceStatusActive}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar workspaces ativos")
	}
	defer rows.Close()

	var workspaces []*domain.Workspace
	for rows.Next() {
		var workspace domain.Workspace
		err := rows.Scan(
			&workspace.ID,
			&workspace.Name,
			&workspace.Status,
			&workspace.ActiveBusinessID,
			&workspace.AdAccountID,
			&workspace.PixelID,
			&workspace.PageID,
			&workspace.AppID,
			&workspace.CreatedAt,
			&workspace.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		workspaces = append(workspaces, &workspace)
	}

	return workspaces, rows.Err()
}

func (r *workspaceRepository) Update(workspace *domain.Workspace) error {
	queryBuilder := squirrel.
		Update(workspacesTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": workspace.ID})

	if workspace.Name != "" {
		queryBuilder = queryBuilder.Set("name", workspace.Name)
	}

	if workspace.Status != "" {
		queryBuilder = queryBuilder.Set("status", workspace.Status)
	}

	if workspace.ActiveBusinessID != nil {
		queryBuilder = queryBuilder.Set("active_business_id", workspace.ActiveBusinessID)
	}

	if workspace.AdAccountID != nil {
		queryBuilder = queryBuilder.Set("ad_account_id", workspace.AdAccountID)
	}

	if workspace.PixelID != nil {
		queryBuilder = queryBuilder.Set("pixel_id", workspace.PixelID)
	}

	if workspace.PageID != nil {
		queryBuilder = queryBuilder.Set("page_id", workspace.PageID)
	}

	if workspace.AppID != nil {
		queryBuilder = queryBuilder.Set("app_id", workspace.AppID)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar workspace")
	}

	return nil
}

func (r *workspaceRepository) ListMembers(workspaceID string) ([]*domain.Member, error) {
	query, args, err := squirrel.
		Select("id", "name", "lastname", "email", "role_id", "active", "avatar_url", "created_at").
		From(usersTable).
		Where(squirrel.Eq{"deleted": false, "workspace_id": workspaceID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar membros")
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		var member domain.Member
		if err := rows.Scan(
			&member.UserID,
			&member.Name,
			&member.Lastname,
			&member.Email,
			&member.RoleID,
			&member.Active,
			&member.AvatarURL,
			&member.JoinedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao processar resultado")
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return members, nil
}

func (r *workspaceRepository) RemoveMember(workspaceID string, userID int) error {
	query, args, err := squirrel.
		Update(usersTable).
		Set("deleted", true).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"workspace_id": workspaceID, "id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao remover membro")
	}

	return nil
}
