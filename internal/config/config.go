package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Backend BackendConfig
	Session SessionConfig
	Stub    StubConfig
}

// BackendConfig points the client at the HR backend.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds the location of the persisted session file.
type SessionConfig struct {
	FilePath string
}

// StubConfig configures the local stub backend (cmd/stubd).
type StubConfig struct {
	Port            int
	JWTSecret       string
	TokenExpiration string
}

func Load() (*Config, error) {
	// Optional here: the console runs fine on exported env vars alone.
	_ = godotenv.Load()

	config := &Config{}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	config.Backend = BackendConfig{
		BaseURL: getEnv("HR_BACKEND_URL", "http://localhost:8080"),
		Timeout: timeout,
	}

	sessionFile := getEnv("HR_SESSION_FILE", "")
	if sessionFile == "" {
		sessionFile, err = defaultSessionFile()
		if err != nil {
			return nil, fmt.Errorf("resolving session file location: %w", err)
		}
	}
	config.Session = SessionConfig{FilePath: sessionFile}

	stubPort, err := strconv.Atoi(getEnv("STUB_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid STUB_PORT: %w", err)
	}

	config.Stub = StubConfig{
		Port:            stubPort,
		JWTSecret:       getEnv("STUB_JWT_SECRET", "stub-dev-secret"),
		TokenExpiration: getEnv("STUB_TOKEN_EXPIRATION", "24h"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("HR_BACKEND_URL is required")
	}
	if c.Session.FilePath == "" {
		return fmt.Errorf("HR_SESSION_FILE is required")
	}
	if c.Stub.JWTSecret == "" {
		return fmt.Errorf("STUB_JWT_SECRET is required")
	}
	return nil
}

func defaultSessionFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hrsuite", "session.json"), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
