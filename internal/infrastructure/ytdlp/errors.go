package ytdlp

import (
	"fmt"
	"strings"
)

// ExtractionError is returned when yt-dlp exits unsuccessfully.
type ExtractionError struct {
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	return e.Message
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func newExtractionError(stderr []byte, err error) *ExtractionError {
	return &ExtractionError{Message: errorMessage(stderr, err), Err: err}
}

// errorMessage prefers the last "ERROR:" line yt-dlp printed.
func errorMessage(stderr []byte, err error) string {
	text := strings.TrimSpace(string(stderr))
	if text != "" {
		lines := strings.Split(text, "\n")
		for i := len(lines) - 1; i >= 0; i-- {
			line := strings.TrimSpace(lines[i])
			if strings.HasPrefix(line, "ERROR:") {
				return line
			}
		}
		return text
	}
	if err != nil {
		return fmt.Sprintf("yt-dlp failed: %v", err)
	}
	return "yt-dlp failed"
}
