package domain

import "time"

// Status possíveis para campanhas, conjuntos e anúncios no Meta
const (
	EntityStatusActive   = "ACTIVE"
	EntityStatusPaused   = "PAUSED"
	EntityStatusDeleted  = "DELETED"
	EntityStatusArchived = "ARCHIVED"
)

type Campaign struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Status            string   `json:"status"`
	EffectiveStatus   string   `json:"effective_status,omitempty"`
	Objective         string   `json:"objective,omitempty"`
	DailyBudget       string   `json:"daily_budget,omitempty"`
	LifetimeBudget    string   `json:"lifetime_budget,omitempty"`
	SpecialAdCategory []string `json:"special_ad_categories,omitempty"`
	CreatedTime       string   `json:"created_time,omitempty"`
}

type CreateCampaignRequest struct {
	Name              string   `json:"name"`
	Objective         string   `json:"objective"`
	DailyBudget       *int64   `json:"daily_budget"`
	LifetimeBudget    *int64   `json:"lifetime_budget"`
	BidStrategy       string   `json:"bid_strategy"`
	SpecialAdCategory []string `json:"special_ad_categories"`
	StartPaused       bool     `json:"start_paused"`
}

type AdSet struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	EffectiveStatus  string `json:"effective_status,omitempty"`
	CampaignID       string `json:"campaign_id"`
	OptimizationGoal string `json:"optimization_goal,omitempty"`
	BillingEvent     string `json:"billing_event,omitempty"`
	DailyBudget      string `json:"daily_budget,omitempty"`
	StartTime        string `json:"start_time,omitempty"`
	EndTime          string `json:"end_time,omitempty"`
}

type CreateAdSetRequest struct {
	Name              string   `json:"name"`
	CampaignID        string   `json:"campaign_id"`
	OptimizationGoal  string   `json:"optimization_goal"`
	BillingEvent      string   `json:"billing_event"`
	DailyBudget       *int64   `json:"daily_budget"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	Countries         []string `json:"countries"`
	AgeMin            int      `json:"age_min"`
	AgeMax            int      `json:"age_max"`
	CustomAudienceIDs []string `json:"custom_audience_ids"`
	PixelID           string   `json:"pixel_id"`
	PageID            string   `json:"page_id"`
}

type Ad struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status,omitempty"`
	AdSetID         string `json:"adset_id"`
	CreativeID      string `json:"creative_id,omitempty"`
}

type CreateAdRequest struct {
	Name       string `json:"name"`
	AdSetID    string `json:"adset_id"`
	CreativeID string `json:"creative_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CampaignOverview agrega as leituras independentes feitas em paralelo
// ao abrir o painel de campanhas
type CampaignOverview struct {
	Campaigns []Campaign       `json:"campaigns"`
	Audiences []CustomAudience `json:"audiences"`
}

type CampaignDraft struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Payload     string    `json:"payload"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
