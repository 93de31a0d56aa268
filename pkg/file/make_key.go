package file

import "path/filepath"

// MakeDownloadName builds the client-facing file name from a sanitized title
// and the stored file's extension.
func MakeDownloadName(title, storedName string) string {
	return title + filepath.Ext(storedName)
}
