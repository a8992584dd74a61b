package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const connectionsTable = "meta_connections"

type ConnectionRepository interface {
	SaveStatus(status *domain.ConnectionStatus) error
	GetStatus(workspaceID string) (*domain.ConnectionStatus, error)
	SaveAccessToken(token string, expiresAt time.Time) error
}

type connectionRepository struct {
	conn *postgres.Connection
}

func NewConnectionRepository(conn *postgres.Connection) ConnectionRepository {
	return &connectionRepository{
		conn: conn,
	}
}

func (r *connectionRepository) SaveStatus(status *domain.ConnectionStatus) error {
	query, args, err := squirrel.
		Insert(connectionsTable).
		Columns("workspace_id", "state", "token_expires_at", "scopes", "app_id", "last_checked_at").
		Values(
			status.WorkspaceID,
			status.State,
			status.TokenExpires,
			pq.Array(status.Scopes),
			status.AppID,
			status.LastCheckedAt,
		).
		Suffix("ON CONFLICT (workspace_id) DO UPDATE SET state = EXCLUDED.state, token_expires_at = EXCLUDED.token_expires_at, scopes = EXCLUDED.scopes, app_id = EXCLUDED.app_id, last_checked_at = EXCLUDED.last_checked_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao salvar status da conexão")
	}

	return nil
}

func (r *connectionRepository) GetStatus(workspaceID string) (*domain.ConnectionStatus, error) {
	query, args, err := squirrel.
		Select("workspace_id", "state", "token_expires_at", "scopes", "app_id", "last_checked_at").
		From(connectionsTable).
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var status domain.ConnectionStatus
	err = r.conn.QueryRow(query, args...).Scan(
		&status.WorkspaceID,
		&status.State,
		&status.TokenExpires,
		pq.Array(&status.Scopes),
		&status.AppID,
		&status.LastCheckedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &status, nil
}

// SaveAccessToken persiste o token renovado pelo gerenciador de tokens.
// Tabela de linha única: o serviço opera com um app Meta por instalação.
func (r *connectionRepository) SaveAccessToken(token string, expiresAt time.Time) error {
	_, err := r.conn.Exec(
		`INSERT INTO meta_tokens (id, access_token, expires_at, updated_at)
		 VALUES (1, $1, $2, NOW())
		 ON CONFLICT (id) DO UPDATE SET access_token = EXCLUDED.access_token, expires_at = EXCLUDED.expires_at, updated_at = NOW()`,
		token,
		expiresAt,
	)
	if err != nil {
		return errors.Wrap(err, "erro ao persistir token de acesso")
	}

	return nil
}
