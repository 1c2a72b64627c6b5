package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPPort    int
	DataDir     string
	CatalogPath string

	DigestSize int
	NoticeTTL  time.Duration
}

func Load() *Config {
	return &Config{
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		DataDir:     getEnv("DATA_DIR", "./data"),
		CatalogPath: getEnv("CATALOG_PATH", "./catalog.yaml"),
		DigestSize:  getEnvInt("DIGEST_SIZE", 10),
		NoticeTTL:   time.Duration(getEnvInt("NOTICE_TTL_SECONDS", 3)) * time.Second,
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
