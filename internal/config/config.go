package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment-driven setting. It is loaded once at
// startup and passed explicitly into the router and handlers.
type Config struct {
	ImagesDir        string   `envconfig:"IMAGES_DIR" required:"true"`
	Workers          int      `envconfig:"WEB_SERVER_WORKERS" required:"true"`
	StartPort        int      `envconfig:"WEB_SERVER_START_PORT" required:"true"`
	LogDir           string   `envconfig:"LOG_DIR" default:"./logs"`
	MaxFileSize      int64    `envconfig:"MAX_SIZE" default:"5242880"` // 5 MiB
	SupportedFormats []string `envconfig:"SUPPORTED_FORMATS" default:".jpg,.png,.gif"`
}

// Load reads an optional .env file and then the environment. Values already
// present in the environment win over the file. Missing required keys and
// unparseable integers fail startup.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	// Tolerate whitespace and stray commas in the formats list. Empty
	// entries are dropped so an extensionless name never counts as
	// supported.
	cleaned := cfg.SupportedFormats[:0]
	for _, f := range cfg.SupportedFormats {
		if f = strings.TrimSpace(f); f != "" {
			cleaned = append(cleaned, f)
		}
	}
	cfg.SupportedFormats = cleaned

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the cross-field constraints typed parsing cannot express.
// The CLI re-runs it after applying flag overrides.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("WEB_SERVER_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.StartPort < 1 || c.StartPort > 65535 {
		return fmt.Errorf("WEB_SERVER_START_PORT must be a valid port, got %d", c.StartPort)
	}
	if last := c.StartPort + c.Workers - 1; last > 65535 {
		return fmt.Errorf("worker ports %d..%d exceed the valid port range", c.StartPort, last)
	}
	if c.MaxFileSize < 1 {
		return fmt.Errorf("MAX_SIZE must be positive, got %d", c.MaxFileSize)
	}
	if len(c.SupportedFormats) == 0 {
		return fmt.Errorf("SUPPORTED_FORMATS must list at least one extension")
	}
	return nil
}

// IsSupportedFormat reports whether ext (including the leading dot) is in
// the configured format set. Matching is case-insensitive.
func (c *Config) IsSupportedFormat(ext string) bool {
	for _, f := range c.SupportedFormats {
		if strings.EqualFold(f, ext) {
			return true
		}
	}
	return false
}
