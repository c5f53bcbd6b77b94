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

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

var (
	// Settings every environment needs.
	baseRequirements = []string{"jwt_secret", "gemini_api_key"}

	// Environment-specific requirements when talking to postgres.
	postgresRequirements = map[Environment][]string{
		Development: {"db_host", "db_user", "db_name"},
		Test:        {"db_host", "db_user", "db_name"},
		CI:          {"db_host", "db_user", "db_password", "db_name"},
		Production:  {"db_host", "db_user", "db_password", "db_name"},
	}
)

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := cfg.Environment
	if env == "" {
		env = GetEnvironment()
	}

	required := append([]string{}, baseRequirements...)
	switch cfg.DBDriver {
	case DriverPostgres:
		required = append(required, postgresRequirements[env]...)
	case DriverSQLite:
		required = append(required, "db_name")
	}

	var errs ValidationErrors
	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		errs = append(errs, ValidationError{
			Field:   "db_driver",
			Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver),
		})
	}
	for _, field := range required {
		if fieldValue(cfg, field) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}
	if env == Production && len(cfg.JWTSecret) > 0 && len(cfg.JWTSecret) < 32 {
		errs = append(errs, ValidationError{Field: "jwt_secret", Message: "must be at least 32 characters in production"})
	}
	if cfg.BodyLimit <= 0 {
		errs = append(errs, ValidationError{Field: "body_limit_mb", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func fieldValue(cfg *Config, field string) string {
	switch field {
	case "jwt_secret":
		return cfg.JWTSecret
	case "gemini_api_key":
		return cfg.GeminiAPIKey
	case "db_host":
		return cfg.DBHost
	case "db_user":
		return cfg.DBUser
	case "db_password":
		return cfg.DBPassword
	case "db_name":
		return cfg.DBName
	default:
		return ""
	}
}
