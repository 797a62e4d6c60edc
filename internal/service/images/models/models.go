package models

// UploadImageResponse ответ с data URL изображения
type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}
