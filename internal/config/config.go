// Package config loads server and client settings from the environment.
// Values from .env files are applied first and never override variables
// that are already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// MinJWTSecretLen минимальная длина секрета для HS256
const MinJWTSecretLen = 32

// Server holds lumina-server settings
type Server struct {
	Addr             string        `env:"LUMINA_SERVER_ADDR" envDefault:":8080"`
	DBPath           string        `env:"LUMINA_SERVER_DB" envDefault:"lumina-server.db"`
	JWTSecret        string        `env:"LUMINA_JWT_SECRET,unset"`
	TokenCleanupCron string        `env:"LUMINA_TOKEN_CLEANUP_CRON" envDefault:"@every 1h"`
	LogLevel         string        `env:"LUMINA_LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LUMINA_LOG_FORMAT" envDefault:"text"`
	AccessTokenTTL   time.Duration `env:"LUMINA_ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTokenTTL  time.Duration `env:"LUMINA_REFRESH_TOKEN_TTL" envDefault:"720h"`
	RateLimitWindow  time.Duration `env:"LUMINA_RATE_LIMIT_WINDOW" envDefault:"1m"`
	RateLimit        int           `env:"LUMINA_RATE_LIMIT" envDefault:"100"`
}

// Validate проверяет обязательные параметры сервера
func (c *Server) Validate() error {
	if len(c.JWTSecret) < MinJWTSecretLen {
		return fmt.Errorf("LUMINA_JWT_SECRET must be at least %d characters", MinJWTSecretLen)
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return errors.New("token TTLs must be positive")
	}
	if c.RateLimit <= 0 || c.RateLimitWindow <= 0 {
		return errors.New("rate limit and window must be positive")
	}
	return nil
}

// Client holds lumina CLI settings
type Client struct {
	DBPath          string        `env:"LUMINA_DB" envDefault:"lumina.db"`
	ServerURL       string        `env:"LUMINA_SERVER_URL" envDefault:"http://localhost:8080"`
	GeminiAPIKey    string        `env:"GEMINI_API_KEY,unset"`
	ImageModel      string        `env:"LUMINA_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
	PlannerModel    string        `env:"LUMINA_PLANNER_MODEL" envDefault:"gemini-3-flash-preview"`
	MasterPassword  string        `env:"LUMINA_MASTER_PASSWORD,unset"`
	LogLevel        string        `env:"LUMINA_LOG_LEVEL" envDefault:"warn"`
	GenerateTimeout time.Duration `env:"LUMINA_GENERATE_TIMEOUT" envDefault:"60s"`
}

// LoadServer reads server settings from .env files and the environment
func LoadServer(envFiles ...string) (*Server, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Server{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return cfg, nil
}

// LoadClient reads client settings from .env files and the environment
func LoadClient(envFiles ...string) (*Client, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Client{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse client config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv загружает существующие .env файлы, отсутствующие пропускает
func loadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}
