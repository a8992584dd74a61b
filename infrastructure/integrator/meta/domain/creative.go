package metadomain

// UploadImageResponse mapeia a resposta de /adimages, que devolve as imagens
// indexadas pelo nome do arquivo enviado
type UploadImageResponse struct {
	Images map[string]UploadedImage `json:"images"`
}

type UploadedImage struct {
	Hash string `json:"hash"`
	URL  string `json:"url,omitempty"`
	Name string `json:"name,omitempty"`
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
