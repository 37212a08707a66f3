// Package config loads configuration from the environment using go-envconfig,
// with an optional .env preload via godotenv.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Client holds the configuration for the CLI front-end.
type Client struct {
	// APIBaseURL selects the backend; the one environment-driven behaviour
	// of the client core.
	APIBaseURL string `env:"MEETPOINT_API_URL, default=http://localhost:3000/api"`
	// TokenPath is where the bearer token is persisted. When empty, a
	// per-user default under the OS config directory is used.
	TokenPath string `env:"MEETPOINT_TOKEN_PATH"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`
}

// Server holds the configuration for the development server.
type Server struct {
	Port      string `env:"PORT,       default=3000"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=meetpoint-dev-secret"`
	BasePath  string `env:"API_BASE_PATH, default=/api"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
}

// LoadClient reads the client configuration from the environment.
func LoadClient() *Client {
	loadDotenv()

	var cfg Client
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = defaultTokenPath()
	}
	return &cfg
}

// LoadServer reads the dev server configuration from the environment.
func LoadServer() *Server {
	loadDotenv()

	var cfg Server
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// loadDotenv loads a .env file if present (ok if missing in prod).
func loadDotenv() {
	_ = godotenv.Load()
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "meetpoint", "auth_token")
}
