package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable in the
// current environment. Production refuses to start without real secrets;
// development and test fill in safe defaults instead.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.RecipesCollection == "" {
		errors = append(errors, "recipes collection identifier must not be empty")
	}
	if cfg.ProfilesCollection == "" {
		errors = append(errors, "profiles collection identifier must not be empty")
	}
	if cfg.RecipesCollection != "" && cfg.RecipesCollection == cfg.ProfilesCollection {
		errors = append(errors, "recipes and profiles collections must differ")
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			errors = append(errors, "JWT_SECRET is required in production")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "DB_SSL_MODE must not be disable in production")
		}
	} else if (IsDevelopment() || IsTest()) && cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-jwt-secret"
	}

	if len(errors) > 0 {
		return ValidationError{Field: "config", Message: strings.Join(errors, "; ")}
	}
	return nil
}
