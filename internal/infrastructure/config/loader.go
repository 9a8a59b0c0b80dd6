package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable the loader reads
const EnvPrefix = "LOGCAT"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
}

// LoadConfig loads configs/<env>.yaml, with LOGCAT_* environment variables
// taking precedence. A missing config file leaves the defaults in place.
func LoadConfig() (*Config, error) {
	var warnings []string
	if err := loadDotEnvFile(); err != nil {
		warnings = append(warnings, fmt.Sprintf("Could not load .env file: %v", err))
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		warnings = append(warnings, fmt.Sprintf("No %s.yaml config file found, using defaults", env))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	config.Warnings = warnings
	config.v = v

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. Variables already set in
// the environment are not overwritten.
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
	return nil
}

// setDefaults sets a default for every key, which also lets AutomaticEnv
// see keys the config file does not mention
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.tag", "logcatd")
	v.SetDefault("app.forceVerbose", false)

	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.colorize", "auto")
	v.SetDefault("logger.timeKey", true)
	v.SetDefault("logger.obfuscateByDefault", false)
	v.SetDefault("logger.obfuscator", "none")

	v.SetDefault("overrides.file", "")
	v.SetDefault("overrides.watch", true)
	v.SetDefault("overrides.database.enabled", false)
	v.SetDefault("overrides.database.host", "")
	v.SetDefault("overrides.database.port", 5432)
	v.SetDefault("overrides.database.username", "")
	v.SetDefault("overrides.database.password", "")
	v.SetDefault("overrides.database.name", "")
	v.SetDefault("overrides.database.sslMode", "disable")
	v.SetDefault("overrides.database.logLevel", "warn")
	v.SetDefault("overrides.database.refreshInterval", "30s")
	v.SetDefault("overrides.database.queryTimeout", "5s")
	v.SetDefault("overrides.database.retryAttempts", 3)
	v.SetDefault("overrides.database.retryDelay", "1s")

	v.SetDefault("diagnostics.memorySource", "auto")

	v.SetDefault("server.enabled", true)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.shutdownTimeout", "10s")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.exportInterval", "1m")
}

// getEnvironment determines the environment from LOGCAT_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}
