package metadomain

// TargetingOption é um resultado da busca de segmentação (/search):
// geolocalizações e interesses compartilham o mesmo formato
type TargetingOption struct {
	Key          string   `json:"key,omitempty"`
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Type         string   `json:"type,omitempty"`
	CountryCode  string   `json:"country_code,omitempty"`
	CountryName  string   `json:"country_name,omitempty"`
	Region       string   `json:"region,omitempty"`
	AudienceSize int64    `json:"audience_size_lower_bound,omitempty"`
	Path         []string `json:"path,omitempty"`
}

// ArchivedAd é um anúncio devolvido pela Ad Library (/ads_archive)
type ArchivedAd struct {
	ID                 string   `json:"id"`
	PageID             string   `json:"page_id"`
	PageName           string   `json:"page_name"`
	CreativeBodies     []string `json:"ad_creative_bodies,omitempty"`
	CreativeTitles     []string `json:"ad_creative_link_titles,omitempty"`
	DeliveryStart      string   `json:"ad_delivery_start_time,omitempty"`
	DeliveryStop       string   `json:"ad_delivery_stop_time,omitempty"`
	SnapshotURL        string   `json:"ad_snapshot_url,omitempty"`
	PublisherPlatforms []string `json:"publisher_platforms,omitempty"`
}
