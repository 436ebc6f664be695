// Package config loads the CLI's environment configuration. A .env file
// in the working directory is honored when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	OutDir       string
	FontPath     string
	AssetBaseURL string
	QRURL        string
	CounterFile  string
	LogLevel     zerolog.Level
	// DisableBrowser skips headless Chrome entirely; exports then use the
	// direct canvas rendition.
	DisableBrowser bool
}

func Load() (Config, error) {
	// Best effort: no .env is fine.
	_ = godotenv.Load()

	c := Config{
		OutDir:         envOr("FORTUNE_OUT_DIR", "."),
		FontPath:       os.Getenv("FORTUNE_FONT_PATH"),
		AssetBaseURL:   os.Getenv("FORTUNE_ASSET_BASE_URL"),
		QRURL:          os.Getenv("FORTUNE_QR_URL"),
		CounterFile:    envOr("FORTUNE_COUNTER_FILE", defaultCounterPath()),
		DisableBrowser: os.Getenv("FORTUNE_DISABLE_BROWSER") != "",
	}

	level, err := zerolog.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	c.LogLevel = level

	return c, nil
}

func defaultCounterPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".fortunecard-count"
	}
	return filepath.Join(dir, "fortunecard", "count")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
