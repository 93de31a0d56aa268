package repositories

import (
	"context"

	"media-downloader/internal/domain/entities"
)

// MediaExtractor fetches metadata and files from a media page URL.
type MediaExtractor interface {
	FetchMetadata(ctx context.Context, url string) (*entities.MediaInfo, error)
	FetchFile(ctx context.Context, req entities.FetchRequest) error
}
