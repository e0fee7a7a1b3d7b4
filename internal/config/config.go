// Package config loads service configuration from defaults, an optional YAML
// file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Server ServerConfig `yaml:"server"`
	OpenAI OpenAIConfig `yaml:"openai"`
	Mail   MailConfig   `yaml:"mail"`
	Log    LogConfig    `yaml:"log"`

	// RequestTimeout bounds every call to the completion provider and the mail relay.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port           int           `yaml:"port"            env:"PORT"`
	BindAddress    string        `yaml:"bind_address"    env:"BIND_ADDRESS"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" envSeparator:","`
	ReadTimeout    time.Duration `yaml:"read_timeout"    env:"READ_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout"   env:"WRITE_TIMEOUT"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"    env:"IDLE_TIMEOUT"`
	ServeUI        bool          `yaml:"serve_ui"        env:"SERVE_UI"`
}

// OpenAIConfig configures the chat-completion provider.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"  env:"OPENAI_API_KEY"`
	Model   string `yaml:"model"    env:"OPENAI_MODEL"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
}

// MailConfig configures the SMTP relay and the sender identity.
type MailConfig struct {
	Host      string `yaml:"host"      env:"SMTP_HOST"`
	Port      int    `yaml:"port"      env:"SMTP_PORT"`
	TLSPolicy string `yaml:"tls"       env:"SMTP_TLS"`
	Username  string `yaml:"username"  env:"EMAIL_USER"`
	Password  string `yaml:"password"  env:"EMAIL_PASSWORD"`
	FromName  string `yaml:"from_name" env:"EMAIL_FROM_NAME"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// TLS policies understood by the mail sender.
const (
	TLSMandatory     = "mandatory"
	TLSOpportunistic = "opportunistic"
	TLSNone          = "none"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           5000,
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   120 * time.Second,
			IdleTimeout:    120 * time.Second,
			ServeUI:        true,
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Mail: MailConfig{
			Host:      "smtp.gmail.com",
			Port:      587,
			TLSPolicy: TLSMandatory,
			FromName:  "Meeting Notes Summarizer",
		},
		Log: LogConfig{
			Level: "info",
		},
		RequestTimeout: 60 * time.Second,
	}
}

// LoadConfig builds the configuration. configPath may be empty, in which case
// only defaults and the environment are used.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Unset variables leave the current value alone.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	origins := c.Server.AllowedOrigins[:0]
	for _, o := range c.Server.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.Server.AllowedOrigins = origins

	c.OpenAI.APIKey = strings.TrimSpace(c.OpenAI.APIKey)
	c.Mail.Username = strings.TrimSpace(c.Mail.Username)
	c.Mail.TLSPolicy = strings.ToLower(strings.TrimSpace(c.Mail.TLSPolicy))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// Validate checks structural settings only. Missing provider or relay
// credentials are not an error here; those calls fail when they are made.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
		errs = append(errs, fmt.Errorf("mail.port out of range: %d", c.Mail.Port))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request_timeout must be positive"))
	}
	if c.OpenAI.Model == "" {
		errs = append(errs, errors.New("openai.model is required"))
	}
	switch c.Mail.TLSPolicy {
	case TLSMandatory, TLSOpportunistic, TLSNone:
	default:
		errs = append(errs, fmt.Errorf("mail.tls must be one of %s, %s, %s: got %q",
			TLSMandatory, TLSOpportunistic, TLSNone, c.Mail.TLSPolicy))
	}

	return errors.Join(errs...)
}

// GetServerAddr returns the server bind address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// HasOpenAIKey reports whether a completion provider key is configured.
func (c *Config) HasOpenAIKey() bool {
	return c.OpenAI.APIKey != ""
}

// HasMailCredentials reports whether a relay identity is configured.
func (c *Config) HasMailCredentials() bool {
	return c.Mail.Username != "" && c.Mail.Password != ""
}
