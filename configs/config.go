package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/adtech-tools/yandex-mcp/internal/domain"
)

// FileConfig defines the structure loaded from the optional YAML
// configuration file. Everything here can also come from the environment,
// which wins on conflict.
type FileConfig struct {
	DirectToken  string `yaml:"direct_token,omitempty"`
	MetrikaToken string `yaml:"metrika_token,omitempty"`
	Token        string `yaml:"token,omitempty"`
	ClientLogin  string `yaml:"client_login,omitempty"`
	UseSandbox   bool   `yaml:"use_sandbox,omitempty"`
	ListenAddr   string `yaml:"listen_addr,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
}

// Config holds the final application configuration, merged from file and
// environment variables. Environment variables use the prefix "YANDEX_".
type Config struct {
	// Config File Path (loaded first from env)
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// Credentials. Token is the shared fallback when the API-specific
	// tokens are unset.
	DirectToken  string `envconfig:"DIRECT_TOKEN"`
	MetrikaToken string `envconfig:"METRIKA_TOKEN"`
	Token        string `envconfig:"TOKEN"`
	ClientLogin  string `envconfig:"CLIENT_LOGIN"`
	UseSandbox   bool   `envconfig:"USE_SANDBOX" default:"false"`

	ListenAddr               string        `envconfig:"LISTEN_ADDR" default:":8080"`
	HTTPClientTimeout        time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ReportTimeout            time.Duration `envconfig:"REPORT_TIMEOUT" default:"120s"`
	ShutdownTimeout          time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	OtelExporterOtlpEndpoint string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool          `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	LogLevel                 string        `envconfig:"LOG_LEVEL" default:"info"`
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Credentials maps the configured tokens onto the domain credential set.
func (c *Config) Credentials() domain.Credentials {
	return domain.Credentials{
		Direct:      c.DirectToken,
		Metrika:     c.MetrikaToken,
		Unified:     c.Token,
		ClientLogin: c.ClientLogin,
		UseSandbox:  c.UseSandbox,
	}
}

// Load loads configuration from environment variables, then fills in anything
// the environment left unset from the optional YAML file. The merge is
// explicit: a second envconfig pass would re-apply default tags over the file
// values whenever the env var is absent.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("yandex", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.ConfigFilePath == "" {
		return &cfg, nil
	}

	yamlFile, err := os.ReadFile(cfg.ConfigFilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file '%s' not found: %w", cfg.ConfigFilePath, err)
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", cfg.ConfigFilePath, err)
	}
	fileCfg := FileConfig{}
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", cfg.ConfigFilePath, err)
	}

	applyFileConfig(&cfg, fileCfg)
	return &cfg, nil
}

// applyFileConfig copies file values into fields the environment did not set.
// Defaulted fields are checked against the environment directly: after
// envconfig they already hold their default, which must not shadow the file.
func applyFileConfig(cfg *Config, file FileConfig) {
	if cfg.DirectToken == "" {
		cfg.DirectToken = file.DirectToken
	}
	if cfg.MetrikaToken == "" {
		cfg.MetrikaToken = file.MetrikaToken
	}
	if cfg.Token == "" {
		cfg.Token = file.Token
	}
	if cfg.ClientLogin == "" {
		cfg.ClientLogin = file.ClientLogin
	}
	if !envSet("YANDEX_USE_SANDBOX") {
		cfg.UseSandbox = file.UseSandbox
	}
	if file.ListenAddr != "" && !envSet("YANDEX_LISTEN_ADDR") {
		cfg.ListenAddr = file.ListenAddr
	}
	if file.LogLevel != "" && !envSet("YANDEX_LOG_LEVEL") {
		cfg.LogLevel = file.LogLevel
	}
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}
