package metadomain

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

type Ad struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	EffectiveStatus string     `json:"effective_status,omitempty"`
	AdSetID         string     `json:"adset_id"`
	Creative        *AdBinding `json:"creative,omitempty"`
}

type AdBinding struct {
	CreativeID string `json:"creative_id"`
	ID         string `json:"id,omitempty"`
}

// Targeting é o subconjunto da spec de targeting usado pelos ad sets criados
// por este serviço
type Targeting struct {
	GeoLocations    *GeoLocations `json:"geo_locations,omitempty"`
	AgeMin          int           `json:"age_min,omitempty"`
	AgeMax          int           `json:"age_max,omitempty"`
	CustomAudiences []AudienceRef `json:"custom_audiences,omitempty"`
}

type GeoLocations struct {
	Countries []string `json:"countries,omitempty"`
}

type AudienceRef struct {
	ID string `json:"id"`
}

// CreatedObject é a resposta padrão do Graph para criações (só o id)
type CreatedObject struct {
	ID      string `json:"id"`
	Success bool   `json:"success,omitempty"`
}
