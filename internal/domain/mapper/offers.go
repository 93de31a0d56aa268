package mapper

import (
	"fmt"
	"sort"

	"media-downloader/internal/domain/entities"
	consts "media-downloader/pkg/constants"
	"media-downloader/pkg/size"
)

// ReduceFormats turns raw extractor formats into the offers shown to the user:
// one video offer per distinct height (highest bitrate wins, first seen on
// ties), ordered by height descending, followed by a single MP3 audio offer.
// Only candidates carrying both audio and video with a known positive height are offered.
func ReduceFormats(candidates []entities.FormatCandidate, durationSeconds float64) []entities.MediaOffer {
	best := make(map[int]entities.FormatCandidate)
	for _, f := range candidates {
		if !f.HasVideo() || !f.HasAudio() || f.Height == nil || *f.Height <= 0 {
			continue
		}
		h := *f.Height
		if kept, ok := best[h]; !ok || f.Bitrate() > kept.Bitrate() {
			best[h] = f
		}
	}

	heights := make([]int, 0, len(best))
	for h := range best {
		heights = append(heights, h)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(heights)))

	offers := make([]entities.MediaOffer, 0, len(heights)+1)
	for _, h := range heights {
		offers = append(offers, videoOffer(best[h], h, durationSeconds))
	}
	return append(offers, audioOffer(durationSeconds))
}

func videoOffer(f entities.FormatCandidate, height int, durationSeconds float64) entities.MediaOffer {
	sizeDisplay, ok := size.HumanPtr(resolveSize(f, height, durationSeconds))
	if !ok {
		sizeDisplay = fmt.Sprintf("~%dp", height)
	}

	ext := f.Extension
	if ext == "" {
		ext = consts.DefaultVideoExtension
	}

	h := height
	return entities.MediaOffer{
		Kind:        entities.OfferVideo,
		Label:       fmt.Sprintf("%dp", height),
		Extension:   ext,
		SizeDisplay: sizeDisplay,
		FormatID:    f.FormatID,
		Height:      &h,
	}
}

// resolveSize prefers sizes reported by the source and only estimates when
// there is a duration to estimate from.
func resolveSize(f entities.FormatCandidate, height int, durationSeconds float64) *int64 {
	if reported := f.ReportedSize(); reported != nil {
		return reported
	}
	if est, ok := size.Estimate(durationSeconds, float64(height), f.Bitrate()); ok {
		return &est
	}
	return nil
}

func audioOffer(durationSeconds float64) entities.MediaOffer {
	sizeDisplay := consts.NoEstimate
	if durationSeconds > 0 {
		if s, ok := size.Human(size.FromBitrate(consts.AudioBitrateKbps, durationSeconds)); ok {
			sizeDisplay = s
		}
	}
	return entities.MediaOffer{
		Kind:        entities.OfferAudio,
		Label:       consts.AudioLabel,
		Extension:   consts.AudioExtension,
		SizeDisplay: sizeDisplay,
		FormatID:    consts.AudioFormatID,
	}
}
