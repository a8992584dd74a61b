package domain

import "time"

type ConnectionState string

const (
	ConnectionStateActive       ConnectionState = "ACTIVE"
	ConnectionStateExpired      ConnectionState = "EXPIRED"
	ConnectionStateDisconnected ConnectionState = "DISCONNECTED"
)

// ConnectionStatus resume o estado do vínculo de um workspace com o Meta
type ConnectionStatus struct {
	WorkspaceID   string          `json:"workspace_id"`
	State         ConnectionState `json:"state"`
	TokenExpires  *time.Time      `json:"token_expires_at"`
	Scopes        []string        `json:"scopes,omitempty"`
	AppID         string          `json:"app_id,omitempty"`
	LastCheckedAt time.Time       `json:"last_checked_at"`
}

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
