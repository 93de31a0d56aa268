package entities

// FormatCandidate is one raw format descriptor reported by the extractor.
// Optional fields are nil when the source did not report them.
type FormatCandidate struct {
	FormatID         string
	Extension        string
	Height           *int
	VideoCodec       *string
	AudioCodec       *string
	FileSizeExact    *int64
	FileSizeApprox   *int64
	TotalBitrateKbps *float64
}

// HasVideo reports whether the candidate carries a video track.
func (f FormatCandidate) HasVideo() bool { return codecPresent(f.VideoCodec) }

// HasAudio reports whether the candidate carries an audio track.
func (f FormatCandidate) HasAudio() bool { return codecPresent(f.AudioCodec) }

// Bitrate returns the total bitrate, 0 when missing.
func (f FormatCandidate) Bitrate() float64 {
	if f.TotalBitrateKbps == nil || *f.TotalBitrateKbps < 0 {
		return 0
	}
	return *f.TotalBitrateKbps
}

// ReportedSize returns the exact size if reported, else the approximate one.
func (f FormatCandidate) ReportedSize() *int64 {
	if f.FileSizeExact != nil && *f.FileSizeExact > 0 {
		return f.FileSizeExact
	}
	if f.FileSizeApprox != nil && *f.FileSizeApprox > 0 {
		return f.FileSizeApprox
	}
	return nil
}

func codecPresent(codec *string) bool {
	return codec != nil && *codec != "" && *codec != "none"
}

// MediaInfo is the metadata-only result of an extraction.
type MediaInfo struct {
	ID              string
	Title           string
	Thumbnail       string
	DurationString  string
	DurationSeconds float64
	Formats         []FormatCandidate
}

// AudioConversion asks the extractor to transcode the fetched stream.
type AudioConversion struct {
	Codec       string
	QualityKbps int
}

// FetchRequest describes one file fetch.
type FetchRequest struct {
	URL            string
	FormatSelector string
	OutputTemplate string
	ExtractAudio   *AudioConversion
}
