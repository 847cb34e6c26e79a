package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment variable the service reads
const EnvPrefix = "PA"

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
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFor(getEnvironment(), ConfigPaths...)
}

// LoadConfigFor loads the named environment's YAML file from the given paths,
// then applies environment overrides
func LoadConfigFor(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	// A missing file falls back to defaults and environment variables
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Set environment variables to override config
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Process environment variable overrides for sensitive values
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.database", "payments.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.tokenTTL", 15) // minutes
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment to use based on PA_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"PA_DB_DRIVER":          "database.driver",
		"PA_DB_HOST":            "database.host",
		"PA_DB_PORT":            "database.port",
		"PA_DB_USERNAME":        "database.username",
		"PA_DB_PASSWORD":        "database.password",
		"PA_DB_NAME":            "database.database",
		"PA_DB_SSL_MODE":        "database.sslMode",
		"PA_SERVER_HOST":        "server.host",
		"PA_SERVER_PORT":        "server.port",
		"PA_LOGGER_LEVEL":       "logger.level",
		"PA_AUTH_SECRET_KEY":    "auth.secretKey",
		"PA_ADMIN_USERNAME":     "bootstrap.adminUsername",
		"PA_ADMIN_PASSWORD":     "bootstrap.adminPassword",
		"PA_METRICS_PATH":       "metrics.path",
		"PA_METRICS_ENABLED":    "metrics.enabled",
		"PA_SERVER_CORS_ORIGIN": "server.allowedOrigins",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			if key == "server.allowedOrigins" {
				v.Set(key, strings.Split(value, ","))
				continue
			}
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"PA_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"PA_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"PA_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"PA_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"PA_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"PA_DB_RETRY_ATTEMPTS":             "database.retryAttempts",
		"PA_DB_RETRY_DELAY_SECONDS":        "database.retryDelay",
		"PA_AUTH_TOKEN_TTL_MINUTES":        "auth.tokenTTL",
		"PA_AUTH_BCRYPT_COST":              "auth.bcryptCost",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, -1); value >= 0 {
			v.Set(key, value)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Convert seconds to time.Duration
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	// Convert minutes to time.Duration
	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Auth.TokenTTL = config.Auth.TokenTTL * time.Minute

	// Convert seconds to time.Duration
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
}
