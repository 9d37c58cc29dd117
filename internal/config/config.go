package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path, applies defaults and environment
// overrides and returns the normalized result. A missing file is not an
// error, the defaults plus environment carry a development setup.
func Load(path string) (*AppConfig, error) {
	// .env is optional and only fills process env vars that are unset.
	_ = godotenv.Load()

	cfg := AppConfig{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	normalize(&cfg)

	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("config: session secret is required (session.secret or SESSION_SECRET)")
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := envStr("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := envStr("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := envStr("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := envStr("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := envStr("SESSION_SECRET"); v != "" {
		cfg.Session.Secret = v
	}
	if v := envStr("SESSION_TOKEN_ALPHABET"); v != "" {
		cfg.Session.TokenAlphabet = v
	}
	if v := envStr("SESSION_TOKEN_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.TokenLength = n
		}
	}
	if v := envStr("TICKETMASTER_API_KEY"); v != "" {
		cfg.Importer.APIKey = v
	}
	if v := envStr("ROOT_ADMIN_EMAIL"); v != "" {
		cfg.RootAdmin.Email = v
	}
	if v := envStr("ROOT_ADMIN_PASSWORD"); v != "" {
		cfg.RootAdmin.Password = v
	}
}

func envStr(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// IsProduction reports whether the app runs with production settings.
func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
