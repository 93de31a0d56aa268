package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultServeGrace = 30 * time.Second

// LocalStorage keeps downloaded files in a single flat directory. Files being
// served are tracked so the janitor does not remove them mid-stream.
type LocalStorage struct {
	BasePath string
	Grace    time.Duration

	activeOps  map[string]int
	lastServed map[string]time.Time
	opsMutex   sync.Mutex
	now        func() time.Time
}

func NewLocalStorage(basePath string, grace time.Duration) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("klasör oluşturulamadı: %w", err)
	}
	if grace < 0 {
		grace = 0
	}
	return &LocalStorage{
		BasePath:   basePath,
		Grace:      grace,
		activeOps:  make(map[string]int),
		lastServed: make(map[string]time.Time),
		now:        time.Now,
	}, nil
}

func (l *LocalStorage) Dir() string {
	return l.BasePath
}

func (l *LocalStorage) NewFileID() string {
	return uuid.NewString()[:8]
}

// OutputTemplate returns the yt-dlp output template for fileID.
func (l *LocalStorage) OutputTemplate(fileID string) string {
	return filepath.Join(l.BasePath, fileID+".%(ext)s")
}

// FindByID returns the name of the first regular file whose name starts with fileID.
func (l *LocalStorage) FindByID(fileID string) (string, bool) {
	if fileID == "" || !validName(fileID) {
		return "", false
	}
	entries, err := os.ReadDir(l.BasePath)
	if err != nil {
		return "", false
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.HasPrefix(entry.Name(), fileID) {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return names[0], true
}

func (l *LocalStorage) Exists(name string) bool {
	path, ok := l.path(name)
	if !ok {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Open returns a reader for name. The file counts as in use until the reader is closed.
func (l *LocalStorage) Open(name string) (io.ReadCloser, os.FileInfo, error) {
	path, ok := l.path(name)
	if !ok {
		return nil, nil, os.ErrNotExist
	}

	l.incrementActiveOps(name)
	f, err := os.Open(path)
	if err != nil {
		l.decrementActiveOps(name)
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		f.Close()
		l.decrementActiveOps(name)
		if err == nil {
			err = os.ErrNotExist
		}
		return nil, nil, err
	}

	return &trackedFile{File: f, release: func() { l.decrementActiveOps(name) }}, info, nil
}

// List returns the regular files in the directory.
func (l *LocalStorage) List() ([]os.FileInfo, error) {
	entries, err := os.ReadDir(l.BasePath)
	if err != nil {
		return nil, err
	}
	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue // dosya bu arada silinmiş olabilir
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (l *LocalStorage) Delete(name string) error {
	path, ok := l.path(name)
	if !ok {
		return os.ErrNotExist
	}
	return os.Remove(path)
}

// InUse reports whether name is being served or was served within the grace window.
func (l *LocalStorage) InUse(name string) bool {
	l.opsMutex.Lock()
	defer l.opsMutex.Unlock()
	if l.activeOps[name] > 0 {
		return true
	}
	last, ok := l.lastServed[name]
	if !ok {
		return false
	}
	if l.now().Sub(last) < l.Grace {
		return true
	}
	delete(l.lastServed, name)
	return false
}

func (l *LocalStorage) incrementActiveOps(name string) {
	l.opsMutex.Lock()
	defer l.opsMutex.Unlock()
	l.activeOps[name]++
	l.lastServed[name] = l.now()
}

func (l *LocalStorage) decrementActiveOps(name string) {
	l.opsMutex.Lock()
	defer l.opsMutex.Unlock()
	l.activeOps[name]--
	if l.activeOps[name] <= 0 {
		delete(l.activeOps, name)
	}
	l.lastServed[name] = l.now()
}

func (l *LocalStorage) path(name string) (string, bool) {
	if !validName(name) {
		return "", false
	}
	return filepath.Join(l.BasePath, name), true
}

// validName accepts plain base names only.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return filepath.Base(name) == name
}

type trackedFile struct {
	*os.File
	once    sync.Once
	release func()
}

func (t *trackedFile) Close() error {
	err := t.File.Close()
	t.once.Do(t.release)
	return err
}
