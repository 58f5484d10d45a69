package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CookieSecret signs every cookie the gateway issues. Required: an
	// unsigned cookie surface is not an option.
	CookieSecret string `env:"COOKIE_SECRET, required"`

	// SiteHost is the externally visible origin, used for absolute links
	// in rendered pages.
	SiteHost string `env:"SITE_HOST, default=http://localhost:8000"`

	API   APIConfig
	Redis RedisConfig
}

type APIConfig struct {
	// Host is the backend origin reached from inside the deployment.
	Host string `env:"API_HOST, default=http://localhost:8080"`
	// PublicHost is the backend origin reachable from browsers, for
	// pages that talk to the backend directly (map tiles).
	PublicHost string `env:"PUBLIC_API_HOST, default=http://localhost:8080"`
	// GraphQLEndpoint is the path of the GraphQL endpoint on Host.
	GraphQLEndpoint string `env:"API_GRAPHQL_ENDPOINT, default=/graphql"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// GraphQLURL returns the full server-side GraphQL endpoint URL.
func (c *Config) GraphQLURL() string {
	return strings.TrimSuffix(c.API.Host, "/") + c.API.GraphQLEndpoint
}

// IsProduction reports whether the gateway runs with production hardening
// (secure cookies, JSON logs).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
