package repositories

import (
	"io"
	"os"
)

type FileStore interface {
	// Dosya adlandırma
	NewFileID() string
	OutputTemplate(fileID string) string

	// Arama / okuma
	FindByID(fileID string) (string, bool)
	Exists(name string) bool
	Open(name string) (io.ReadCloser, os.FileInfo, error)

	// Temizlik
	List() ([]os.FileInfo, error)
	Delete(name string) error
	InUse(name string) bool
	Dir() string
}
