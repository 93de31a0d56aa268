package i18n

import (
	"embed" //derleme zamanında dosyayı gömülü olarak ekler, çalışma zamanında aramasına gerek kalmaz
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed *.json
var i18nFiles embed.FS

var (
	mu       sync.RWMutex
	messages map[string]string
)

// Load replaces the active message table with the embedded <locale>.json.
func Load(locale string) error {
	filename := locale + ".json"

	data, err := i18nFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read embedded i18n file %s: %w", filename, err)
	}

	loaded := make(map[string]string)
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse i18n file %s: %w", filename, err)
	}

	mu.Lock()
	messages = loaded
	mu.Unlock()
	return nil
}

// Lookup returns the localized message for code, if one is loaded.
func Lookup(code string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	msg, ok := messages[code]
	return msg, ok
}
