package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Notion NotionConfig
	ZAPI   ZAPIConfig
	Notify NotifyConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Port            string   `envconfig:"PORT" default:"8080"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// NotionConfig holds credentials for the Notion API
type NotionConfig struct {
	Token      string `envconfig:"NOTION_TOKEN" required:"true"`
	DatabaseID string `envconfig:"NOTION_DATABASE_ID" required:"true"`
	BaseURL    string `envconfig:"NOTION_BASE_URL" default:"https://api.notion.com"`
}

// ZAPIConfig holds credentials for the Z-API WhatsApp gateway
type ZAPIConfig struct {
	Instance    string `envconfig:"ZAPI_INSTANCE" required:"true"`
	Token       string `envconfig:"ZAPI_TOKEN" required:"true"`
	ClientToken string `envconfig:"ZAPI_CLIENT_TOKEN" required:"true"`
	BaseURL     string `envconfig:"ZAPI_BASE_URL" default:"https://api.z-api.io"`
}

// NotifyConfig holds notification fan-out settings
type NotifyConfig struct {
	AdminPhones []string `envconfig:"ADMIN_PHONES"`
	Timezone    string   `envconfig:"TZ" default:"America/Sao_Paulo"`

	// Location is resolved from Timezone during Load.
	Location *time.Location `ignored:"true"`
}

// Load loads configuration from environment variables.
// A missing required value is a startup failure, never a per-request error.
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	cfg.Notify.AdminPhones = cleanPhones(cfg.Notify.AdminPhones)

	loc, err := time.LoadLocation(cfg.Notify.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ %q: %w", cfg.Notify.Timezone, err)
	}
	cfg.Notify.Location = loc

	return &cfg, nil
}

// Addr returns the server listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// cleanPhones trims whitespace and drops empty entries from the
// comma-separated ADMIN_PHONES list.
func cleanPhones(phones []string) []string {
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
