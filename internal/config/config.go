package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	APIBaseURL     string
	DataDir        string
	AssetUploadURL string
	AssetS3Bucket  string
	AWSRegion      string
	Port           string
	Env            string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by user) > default.
func Load() Config {
	cfg := Config{}
	cfg.APIBaseURL = getEnv("API_BASE_URL", "https://api.mueblescotiza.mx")
	cfg.DataDir = getEnv("DATA_DIR", defaultDataDir())
	cfg.AssetUploadURL = getEnv("ASSET_UPLOAD_URL", "")
	cfg.AssetS3Bucket = getEnv("ASSET_S3_BUCKET", "")
	cfg.AWSRegion = getEnv("AWS_REGION", "us-east-1")
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("APP_ENV", "development")
	return cfg
}

// DatabasePath is the sqlite file backing the durable local store.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "cotizador.db")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cotizador"
	}
	return filepath.Join(home, ".cotizador")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
