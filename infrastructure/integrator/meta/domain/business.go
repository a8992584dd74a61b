package metadomain

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DebugTokenData é o payload de /debug_token usado para derivar o status
// da conexão
type DebugTokenData struct {
	AppID     string   `json:"app_id"`
	IsValid   bool     `json:"is_valid"`
	ExpiresAt int64    `json:"expires_at"`
	Scopes    []string `json:"scopes"`
	UserID    string   `json:"user_id,omitempty"`
}

type DebugTokenResponse struct {
	Data DebugTokenData `json:"data"`
}
