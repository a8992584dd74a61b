package domain

// Subtipos de audiência suportados pelo construtor de regras
type AudienceSubtype string

const (
	AudienceSubtypeWebsite    AudienceSubtype = "WEBSITE"
	AudienceSubtypeEngagement AudienceSubtype = "ENGAGEMENT"
	AudienceSubtypeLeadAd     AudienceSubtype = "LEAD_AD"
	AudienceSubtypeVideo      AudienceSubtype = "VIDEO"
	AudienceSubtypeApp        AudienceSubtype = "APP"
	AudienceSubtypeCustom     AudienceSubtype = "CUSTOM"
)

type CustomAudience struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Subtype           string `json:"subtype"`
	Description       string `json:"description,omitempty"`
	ApproximateCount  int64  `json:"approximate_count_lower_bound,omitempty"`
	DeliveryStatus    string `json:"delivery_status,omitempty"`
	OperationStatus   string `json:"operation_status,omitempty"`
	RetentionDays     int    `json:"retention_days,omitempty"`
	TimeCreated       int64  `json:"time_created,omitempty"`
	LookalikeOriginID string `json:"lookalike_origin_id,omitempty"`
}

// AudienceForm é o estado do formulário de criação de audiência.
// O payload enviado ao Meta é derivado dele por uma função pura.
type AudienceForm struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Subtype       AudienceSubtype `json:"subtype"`
	PixelID       string          `json:"pixel_id"`
	PageID        string          `json:"page_id"`
	AppID         string          `json:"app_id"`
	RetentionDays int             `json:"retention_days"`
}

type CreateLookalikeRequest struct {
	Name             string  `json:"name"`
	OriginAudienceID string  `json:"origin_audience_id"`
	Country          string  `json:"country"`
	Ratio            float64 `json:"ratio"`
}

// AudienceImportRequest descreve um upload CSV de membros de audiência.
// ColumnMapping associa o índice da coluna ao schema aceito pelo Meta
// (EMAIL, PHONE, FN, LN, ...).
type AudienceImportRequest struct {
	AudienceID    string         `json:"audience_id"`
	ColumnMapping map[int]string `json:"column_mapping"`
	HasHeader     bool           `json:"has_header"`
	CSV           string         `json:"csv"`
}

type AudienceImportResult struct {
	AudienceID   string `json:"audience_id"`
	RowsRead     int    `json:"rows_read"`
	RowsImported int    `json:"rows_imported"`
	RowsSkipped  int    `json:"rows_skipped"`
	Batches      int    `json:"batches"`
}
