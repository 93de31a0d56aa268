package file

import (
	"strings"

	"media-downloader/pkg/constants"
)

const maxTitleRunes = 100

var forbiddenTitleChars = `<>:"/\|?*`

// SanitizeTitle strips characters that are unsafe in file names and
// truncates the result to 100 characters. Empty titles become "download".
func SanitizeTitle(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenTitleChars, r) {
			return -1
		}
		return r
	}, title)

	runes := []rune(cleaned)
	if len(runes) > maxTitleRunes {
		cleaned = string(runes[:maxTitleRunes])
	}
	if cleaned == "" {
		return constants.DefaultTitle
	}
	return cleaned
}
