package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Storage StorageConfig
	YTDLP   YTDLPConfig
}

type AppConfig struct {
	Env      string
	LogLevel string
	Locale   string
}

type ServerConfig struct {
	Port        string
	Host        string
	StaticDir   string
	MaxBodySize int // bytes
}

type StorageConfig struct {
	DownloadDir     string
	FileRetention   time.Duration
	CleanupInterval time.Duration
	ServeGrace      time.Duration
}

type YTDLPConfig struct {
	Binary        string
	UserAgent     string
	Headers       string // "Key:Value,Key2:Value2"
	CookiesFile   string
	ExtractorArgs string
	Proxy         string
	SocketTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	config := &Config{
		App: AppConfig{
			Env:      getEnv("APP_ENV", "production"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
			Locale:   getEnv("APP_LOCALE", "en"),
		},
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "5000"),
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			StaticDir:   getEnv("STATIC_DIR", "static"),
			MaxBodySize: int(getEnvAsInt64("MAX_BODY_SIZE", 1024*1024)), // 1MB
		},
		Storage: StorageConfig{
			DownloadDir:     getEnv("DOWNLOAD_DIR", ""),
			FileRetention:   getEnvAsDuration("FILE_RETENTION", 10*time.Minute),
			CleanupInterval: getEnvAsDuration("CLEANUP_INTERVAL", 5*time.Minute),
			ServeGrace:      getEnvAsDuration("SERVE_GRACE", 30*time.Second),
		},
		YTDLP: YTDLPConfig{
			Binary:        getEnv("YTDLP_BINARY", "yt-dlp"),
			UserAgent:     getEnv("YTDLP_USER_AGENT", ""),
			Headers:       getEnv("YTDLP_HEADERS", ""),
			CookiesFile:   getEnv("YTDLP_COOKIES", ""),
			ExtractorArgs: getEnv("YTDLP_EXTRACTOR_ARGS", ""),
			Proxy:         getEnv("YTDLP_PROXY", ""),
			SocketTimeout: time.Duration(getEnvAsInt64("YTDLP_SOCKET_TIMEOUT", 0)) * time.Second,
		},
	}

	if config.Storage.CleanupInterval <= 0 {
		return nil, fmt.Errorf("CLEANUP_INTERVAL must be positive, got %s", config.Storage.CleanupInterval)
	}
	if config.Storage.FileRetention <= 0 {
		return nil, fmt.Errorf("FILE_RETENTION must be positive, got %s", config.Storage.FileRetention)
	}

	// İndirme klasörü verilmediyse süreç başına geçici klasör
	if config.Storage.DownloadDir == "" {
		dir, err := os.MkdirTemp("", "media-downloads-")
		if err != nil {
			return nil, fmt.Errorf("geçici klasör oluşturulamadı: %w", err)
		}
		config.Storage.DownloadDir = dir
	} else if err := os.MkdirAll(config.Storage.DownloadDir, 0755); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Env, "development")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("90s", "10m") or plain seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
