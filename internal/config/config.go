package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL  = "http://localhost:5000"
	defaultChatPath = "/chat"
)

type Config struct {
	BaseURL     string
	ContextPath string
	ChatPath    string
	Locale      string
	LogLevel    string
	LogFormat   string
	MetricsAddr string
}

// New reads configuration from the environment, loading a .env file from the
// working directory first when one exists.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		BaseURL:     getEnvOrDefault("BASEURL", defaultBaseURL),
		ContextPath: os.Getenv("APP_ROOT_CONTEXT"),
		ChatPath:    getEnvOrDefault("CHATPATH", defaultChatPath),
		Locale:      getEnvOrDefault("LOCALE", "en"),
		LogLevel:    getEnvOrDefault("LOGLEVEL", "info"),
		LogFormat:   os.Getenv("LOGFORMAT"),
		MetricsAddr: os.Getenv("METRICSADDR"),
	}
}

// Endpoint joins base URL, context path and chat path. With an empty base
// URL the result is relative to the page, as a browser fetch expects.
func (c *Config) Endpoint() string {
	base := strings.TrimRight(c.BaseURL, "/")
	return base + normalizePath(c.ContextPath) + normalizePath(c.ChatPath)
}

func normalizePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
