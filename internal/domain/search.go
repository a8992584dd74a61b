package domain

// TargetingOption é um resultado normalizado da busca de segmentação
type TargetingOption struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type,omitempty"`
	CountryCode  string   `json:"country_code,omitempty"`
	CountryName  string   `json:"country_name,omitempty"`
	Region       string   `json:"region,omitempty"`
	AudienceSize int64    `json:"audience_size,omitempty"`
	Path         []string `json:"path,omitempty"`
}

// ArchivedAd é um anúncio público devolvido pela Ad Library
type ArchivedAd struct {
	ID                 string   `json:"id"`
	PageID             string   `json:"page_id"`
	PageName           string   `json:"page_name"`
	CreativeBodies     []string `json:"creative_bodies,omitempty"`
	CreativeTitles     []string `json:"creative_titles,omitempty"`
	DeliveryStart      string   `json:"delivery_start,omitempty"`
	DeliveryStop       string   `json:"delivery_stop,omitempty"`
	SnapshotURL        string   `json:"snapshot_url,omitempty"`
	PublisherPlatforms []string `json:"publisher_platforms,omitempty"`
}
