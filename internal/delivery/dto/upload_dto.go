package dto

type ImageUploadResponse struct {
	Reference   string `json:"reference"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
