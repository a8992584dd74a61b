package domain

import "time"

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Preset    string
}

// AccountMetrics é o resumo exibido nos cartões de analytics
type AccountMetrics struct {
	AccountID   string  `json:"account_id"`
	AccountName string  `json:"account_name"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Reach       int     `json:"reach"`
	Clicks      int     `json:"clicks"`
	Frequency   float64 `json:"frequency"`
	CPC         float64 `json:"cpc"`
	CTR         float64 `json:"ctr"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}

type CampaignMetrics struct {
	CampaignID    string  `json:"campaign_id"`
	CampaignName  string  `json:"campaign_name"`
	Objective     string  `json:"objective"`
	Spend         float64 `json:"spend"`
	Impressions   int     `json:"impressions"`
	Reach         int     `json:"reach"`
	Clicks        int     `json:"clicks"`
	Results       int     `json:"results"`
	CostPerResult float64 `json:"cost_per_result"`
}

// InsightEntry é a linha persistida no cache local de insights
type InsightEntry struct {
	ID        int64           `json:"id"`
	AccountID string          `json:"account_id"`
	Date      time.Time       `json:"date"`
	Metrics   *AccountMetrics `json:"metrics"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
