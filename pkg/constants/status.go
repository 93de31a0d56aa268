package constants

const (
	StatusOK = "ok"

	TypeVideo = "video"
	TypeAudio = "audio"

	AudioFormatID    = "bestaudio"
	AudioSelector    = "bestaudio/best"
	AudioLabel       = "MP3 Audio"
	AudioExtension   = "mp3"
	AudioBitrateKbps = 192

	DefaultVideoExtension = "mp4"
	DefaultVideoSelector  = "best"
	DefaultTitle          = "download"
	NoEstimate            = "High Quality"
	UnknownDuration       = "N/A"

	ServeFilePrefix = "/serve-file/"
)
