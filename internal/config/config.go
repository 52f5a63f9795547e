package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Filestore connection
	FilestoreURL    string
	FilestoreAPIKey string

	// Auth
	DoclinkAPIKey string

	// Reference lookup
	DefaultLang     string
	FetchTimeout    time.Duration
	PreviewMaxBytes int

	// File search
	SearchLimit int

	// Upload limits
	MaxUploadBytes int64

	// Session state
	SessionTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		FilestoreURL:    envOr("FILESTORE_URL", "http://localhost:8080"),
		FilestoreAPIKey: os.Getenv("FILESTORE_API_KEY"),

		DoclinkAPIKey: os.Getenv("DOCLINK_API_KEY"),

		DefaultLang:     envOr("DEFAULT_LANG", "en"),
		FetchTimeout:    envDuration("FETCH_TIMEOUT", 30*time.Second),
		PreviewMaxBytes: envInt("PREVIEW_MAX_BYTES", 262144), // 256KB

		SearchLimit: envInt("SEARCH_LIMIT", 20),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		SessionTTL: envDuration("SESSION_TTL", 2*time.Hour),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.DefaultLang == "" {
		cfg.DefaultLang = "en"
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cfg.PreviewMaxBytes < 0 {
		cfg.PreviewMaxBytes = 0
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 20
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 2 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DoclinkAPIKey == "" {
		return fmt.Errorf("DOCLINK_API_KEY is required")
	}
	if c.FilestoreAPIKey == "" {
		return fmt.Errorf("FILESTORE_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
