package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/leoandrade/payment-api/internal/infrastructure/adapter/security"
	"github.com/leoandrade/payment-api/internal/infrastructure/config"
	"golang.org/x/crypto/bcrypt"
)

// minSecretKeyLength is the shortest signing secret accepted in production
const minSecretKeyLength = 32

// validateConfig ensures all required configuration values are present.
// It returns non-fatal production warnings alongside any blocking error.
func validateConfig(cfg *config.Config) ([]string, error) {
	var missingConfigs []string

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return nil, fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	switch strings.ToLower(cfg.Database.Driver) {
	case "postgres":
		required := []struct {
			value string
			key   string
			env   string
		}{
			{cfg.Database.Host, "database.host", "PA_DB_HOST"},
			{cfg.Database.Port, "database.port", "PA_DB_PORT"},
			{cfg.Database.Username, "database.username", "PA_DB_USERNAME"},
			{cfg.Database.Password, "database.password", "PA_DB_PASSWORD"},
			{cfg.Database.Database, "database.database", "PA_DB_NAME"},
		}
		for _, r := range required {
			if r.value == "" && os.Getenv(r.env) == "" {
				missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.key, r.env))
			}
		}
	case "sqlite":
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database")
		}
	default:
		return nil, fmt.Errorf("invalid database driver: %q, must be postgres or sqlite", cfg.Database.Driver)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Auth configuration
	if cfg.Auth.SecretKey == "" {
		missingConfigs = append(missingConfigs, "auth.secretKey (or PA_AUTH_SECRET_KEY environment variable)")
	}
	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	} else if cfg.Auth.TokenTTL < 0 || cfg.Auth.TokenTTL > security.DefaultTokenTTL {
		return nil, fmt.Errorf("invalid auth.tokenTTL %s, must be positive and at most %s",
			cfg.Auth.TokenTTL, security.DefaultTokenTTL)
	}
	if cfg.Auth.BcryptCost != 0 && (cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost) {
		return nil, fmt.Errorf("invalid auth.bcryptCost %d, must be between %d and %d",
			cfg.Auth.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return nil, fmt.Errorf("invalid metrics.path %q, must start with /", cfg.Metrics.Path)
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return nil, fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	var warnings []string
	if cfg.Bootstrap.AdminPassword != "" && cfg.Bootstrap.AdminPassword == cfg.Bootstrap.AdminUsername {
		warnings = append(warnings, "bootstrap.adminPassword equals the admin username")
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		if strings.EqualFold(cfg.Database.Driver, "postgres") {
			sslMode := strings.ToLower(cfg.Database.SSLMode)
			if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		} else {
			warnings = append(warnings, "database.driver sqlite is not meant for production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
		if len(cfg.Auth.SecretKey) < minSecretKeyLength {
			warnings = append(warnings, fmt.Sprintf("auth.secretKey should be at least %d characters in production", minSecretKeyLength))
		}
		for _, origin := range cfg.Server.AllowedOrigins {
			if origin == "*" {
				warnings = append(warnings, "server.allowedOrigins allows every origin in production")
				break
			}
		}
	}

	return warnings, nil
}
