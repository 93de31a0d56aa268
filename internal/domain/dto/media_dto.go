package dto

import "media-downloader/internal/domain/entities"

type InfoRequestDTO struct {
	URL string `json:"url" form:"url"`
}

type InfoResponse struct {
	Title           string                `json:"title"`
	Thumbnail       string                `json:"thumbnail"`
	Duration        string                `json:"duration"`
	DurationSeconds float64               `json:"duration_seconds"`
	VideoID         string                `json:"video_id"`
	OriginalURL     string                `json:"original_url"`
	Formats         []entities.MediaOffer `json:"formats"`
}

type DownloadRequestDTO struct {
	URL      string `json:"url" form:"url"`
	FormatID string `json:"format_id" form:"format_id"`
	Type     string `json:"type" form:"type"` // "video" veya "audio"
	Title    string `json:"title" form:"title"`
}

type DownloadResponse struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"download_url"`
	Filename    string `json:"filename"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
