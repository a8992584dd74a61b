package domain

type AdImage struct {
	Hash string `json:"hash"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type AdCreative struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title,omitempty"`
	Body         string `json:"body,omitempty"`
	ImageHash    string `json:"image_hash,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Status       string `json:"status,omitempty"`
}

type UploadImageResponse struct {
	Hash string `json:"hash"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}
