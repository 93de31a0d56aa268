package errors

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	CodeMissingURL       = "missing_url"
	CodeInvalidBody      = "invalid_body"
	CodeNotFound         = "not_found"
	CodeExtraction       = "extraction_failed"
	CodeBotCheck         = "bot_check"
	CodeConversionFailed = "conversion_failed"
	CodeDownloadFailed   = "download_failed"
	CodeInternal         = "internal_error"
)

type MediaError struct {
	Code    string
	Message string
	Err     error
}

func (e *MediaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *MediaError) Unwrap() error { return e.Err }

var (
	ErrMissingURL = func() *MediaError {
		return &MediaError{Code: CodeMissingURL, Message: "No URL provided"}
	}
	ErrInvalidBody = func(err error) *MediaError {
		return &MediaError{Code: CodeInvalidBody, Message: "Invalid request body", Err: err}
	}
	ErrNotFound = func(err error) *MediaError {
		return &MediaError{Code: CodeNotFound, Message: "File not found", Err: err}
	}
	ErrConversionFailed = func(err error) *MediaError {
		return &MediaError{Code: CodeConversionFailed, Message: "MP3 conversion failed", Err: err}
	}
	ErrDownloadFailed = func(err error) *MediaError {
		return &MediaError{Code: CodeDownloadFailed, Message: "Download failed", Err: err}
	}
	ErrBotCheck = func(err error) *MediaError {
		return &MediaError{
			Code:    CodeBotCheck,
			Message: "The media host is asking to confirm this request is not from a bot. Please wait a few minutes and try again, or try another link.",
			Err:     err,
		}
	}
	ErrInternal = func(err error) *MediaError {
		return &MediaError{Code: CodeInternal, Message: "Internal server error", Err: err}
	}
)

// ErrExtraction keeps the extractor's own message; it is what the user sees.
func ErrExtraction(err error) *MediaError {
	return &MediaError{Code: CodeExtraction, Message: err.Error(), Err: err}
}

// ClassifyExtraction maps an extractor failure to the error shown to the user.
// Anti-bot challenges get a fixed message instead of the raw extractor text.
func ClassifyExtraction(err error) *MediaError {
	if err == nil {
		return nil
	}
	if IsBotCheck(err.Error()) {
		return ErrBotCheck(err)
	}
	return ErrExtraction(err)
}

// IsBotCheck matches "Sign in to confirm" or "bot" as a whole word, so
// "robotics" or "bottle" in a URL does not count.
func IsBotCheck(msg string) bool {
	if strings.Contains(msg, "Sign in to confirm") {
		return true
	}
	words := strings.FieldsFunc(strings.ToLower(msg), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if w == "bot" || w == "bots" {
			return true
		}
	}
	return false
}
