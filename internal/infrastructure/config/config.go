package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the daemon
type Config struct {
	Environment string            `mapstructure:"environment"`
	App         AppConfig         `mapstructure:"app"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Overrides   OverridesConfig   `mapstructure:"overrides"`
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics"`
	Server      ServerConfig      `mapstructure:"server"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`

	// Warnings collects non-fatal problems met while loading, to be logged
	// once logging is up
	Warnings []string `mapstructure:"-"`

	v *viper.Viper
}

// AppConfig contains the application tag the façade is initialized with
type AppConfig struct {
	Tag          string `mapstructure:"tag"`
	ForceVerbose bool   `mapstructure:"forceVerbose"`
}

// LoggerConfig contains host sink settings
type LoggerConfig struct {
	Format             string `mapstructure:"format"`   // console or json
	Output             string `mapstructure:"output"`   // stdout, stderr, none or comma separated paths
	Colorize           string `mapstructure:"colorize"` // auto, always or never
	TimeKey            bool   `mapstructure:"timeKey"`
	ObfuscateByDefault bool   `mapstructure:"obfuscateByDefault"`
	Obfuscator         string `mapstructure:"obfuscator"` // none or numbers
}

// OverridesConfig contains the level override sources
type OverridesConfig struct {
	File     string         `mapstructure:"file"`
	Watch    bool           `mapstructure:"watch"`
	Database DatabaseConfig `mapstructure:"database"`
}

// DatabaseConfig contains the persistent override store settings
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslMode"`
	LogLevel        string        `mapstructure:"logLevel"`
	RefreshInterval time.Duration `mapstructure:"refreshInterval"`
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`
}

// DiagnosticsConfig selects the memory reporter
type DiagnosticsConfig struct {
	MemorySource string `mapstructure:"memorySource"` // auto, proc or runtime
}

// ServerConfig contains admin HTTP server settings
type ServerConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// MetricsConfig contains the line counter exporter settings
type MetricsConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ExportInterval time.Duration `mapstructure:"exportInterval"`
}

// Viper returns the instance the config was read from. It also serves
// log.tag.<tag> overrides.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// Address returns the admin server listen address
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate ensures all required configuration values are present and sane
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.App.Tag) == "" {
		problems = append(problems, "app.tag")
	}

	switch c.Logger.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logger.format (%q)", c.Logger.Format))
	}
	switch c.Logger.Colorize {
	case "auto", "always", "never":
	default:
		problems = append(problems, fmt.Sprintf("logger.colorize (%q)", c.Logger.Colorize))
	}
	switch c.Logger.Obfuscator {
	case "none", "numbers":
	default:
		problems = append(problems, fmt.Sprintf("logger.obfuscator (%q)", c.Logger.Obfuscator))
	}
	if c.Logger.Output == "" {
		problems = append(problems, "logger.output")
	}

	switch c.Diagnostics.MemorySource {
	case "", "auto", "proc", "runtime":
	default:
		problems = append(problems, fmt.Sprintf("diagnostics.memorySource (%q)", c.Diagnostics.MemorySource))
	}

	if db := c.Overrides.Database; db.Enabled {
		if db.Host == "" {
			problems = append(problems, "overrides.database.host (or LOGCAT_OVERRIDES_DATABASE_HOST)")
		}
		if db.Username == "" {
			problems = append(problems, "overrides.database.username")
		}
		if db.Name == "" {
			problems = append(problems, "overrides.database.name")
		}
		if db.RefreshInterval <= 0 {
			problems = append(problems, "overrides.database.refreshInterval")
		}
		if db.QueryTimeout <= 0 {
			problems = append(problems, "overrides.database.queryTimeout")
		}
	}

	if c.Server.Enabled {
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, "server.port")
		}
		if c.Server.ShutdownTimeout <= 0 {
			problems = append(problems, "server.shutdownTimeout")
		}
	}

	if c.Metrics.Enabled && c.Metrics.ExportInterval <= 0 {
		problems = append(problems, "metrics.exportInterval")
	}

	if len(problems) > 0 {
		return fmt.Errorf("missing or invalid configuration: %s", strings.Join(problems, ", "))
	}
	return nil
}
