package metadomain

type CustomAudience struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Subtype          string         `json:"subtype"`
	Description      string         `json:"description,omitempty"`
	ApproximateCount int64          `json:"approximate_count_lower_bound,omitempty"`
	DeliveryStatus   *StatusWrapper `json:"delivery_status,omitempty"`
	OperationStatus  *StatusWrapper `json:"operation_status,omitempty"`
	RetentionDays    int            `json:"retention_days,omitempty"`
	TimeCreated      int64          `json:"time_created,omitempty"`
	LookalikeSpec    *LookalikeSpec `json:"lookalike_spec,omitempty"`
}

type StatusWrapper struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// CreateAudienceParams é o corpo enviado ao Graph na criação de audiências.
// Subtype usa omitempty porque o Graph rejeita o campo para os subtipos
// de engajamento e lead ad.
type CreateAudienceParams struct {
	Name               string `json:"name"`
	Subtype            string `json:"subtype,omitempty"`
	Description        string `json:"description,omitempty"`
	CustomerFileSource string `json:"customer_file_source,omitempty"`
	Rule               string `json:"rule,omitempty"`
}

// AudienceRule é a regra de inclusão serializada no campo `rule`
type AudienceRule struct {
	Inclusions RuleSet `json:"inclusions"`
}

type RuleSet struct {
	Operator string      `json:"operator"`
	Rules    []RuleEntry `json:"rules"`
}

type RuleEntry struct {
	EventSources     []EventSource `json:"event_sources"`
	RetentionSeconds int64         `json:"retention_seconds,omitempty"`
	Filter           *RuleFilter   `json:"filter,omitempty"`
}

type EventSource struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type RuleFilter struct {
	Operator string       `json:"operator"`
	Filters  []RuleClause `json:"filters"`
}

type RuleClause struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// LookalikeSpec descreve a origem e o alcance de uma audiência lookalike
type LookalikeSpec struct {
	Type    string   `json:"type"`
	Ratio   float64  `json:"ratio"`
	Country string   `json:"country,omitempty"`
	Origin  []Origin `json:"origin,omitempty"`
}

type Origin struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

// AudienceUsersPayload é o lote de membros hasheados enviado em /users
type AudienceUsersPayload struct {
	Schema []string   `json:"schema"`
	Data   [][]string `json:"data"`
}

type AudienceUsersResult struct {
	AudienceID  string `json:"audience_id"`
	SessionID   string `json:"session_id,omitempty"`
	NumReceived int    `json:"num_received"`
	NumInvalid  int    `json:"num_invalid_entries"`
}
