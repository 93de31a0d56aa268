package ytdlp

import (
	"math"
	"sort"

	"media-downloader/internal/domain/entities"
)

type rawInfo struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Thumbnail      string      `json:"thumbnail"`
	Duration       *float64    `json:"duration"`
	DurationString string      `json:"duration_string"`
	Formats        []rawFormat `json:"formats"`
}

// yt-dlp reports sizes and heights as ints or floats depending on the extractor.
type rawFormat struct {
	FormatID       string   `json:"format_id"`
	Ext            string   `json:"ext"`
	Height         *float64 `json:"height"`
	VCodec         *string  `json:"vcodec"`
	ACodec         *string  `json:"acodec"`
	FileSize       *float64 `json:"filesize"`
	FileSizeApprox *float64 `json:"filesize_approx"`
	TBR            *float64 `json:"tbr"`
}

func (r rawInfo) toEntity() *entities.MediaInfo {
	info := &entities.MediaInfo{
		ID:             r.ID,
		Title:          r.Title,
		Thumbnail:      r.Thumbnail,
		DurationString: r.DurationString,
		Formats:        make([]entities.FormatCandidate, 0, len(r.Formats)),
	}
	if r.Duration != nil && *r.Duration > 0 {
		info.DurationSeconds = *r.Duration
	}
	for _, f := range r.Formats {
		info.Formats = append(info.Formats, entities.FormatCandidate{
			FormatID:         f.FormatID,
			Extension:        f.Ext,
			Height:           heightPtr(f.Height),
			VideoCodec:       f.VCodec,
			AudioCodec:       f.ACodec,
			FileSizeExact:    toInt64Ptr(f.FileSize),
			FileSizeApprox:   toInt64Ptr(f.FileSizeApprox),
			TotalBitrateKbps: f.TBR,
		})
	}
	return info
}

// heightPtr treats a missing or non-positive height as unknown.
func heightPtr(v *float64) *int {
	if v == nil {
		return nil
	}
	i := int(math.Round(*v))
	if i <= 0 {
		return nil
	}
	return &i
}

func toInt64Ptr(v *float64) *int64 {
	if v == nil {
		return nil
	}
	i := int64(math.Round(*v))
	return &i
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
