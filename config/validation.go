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

var supportedDrivers = map[string]bool{
	"postgres": true,
	"sqlite":   true,
}

// ValidateConfig checks that the settings needed to serve requests are present.
// Database and redis settings are optional; the server degrades without them.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, ValidationError{"JWT_SECRET", "is required (env or jwt_secret secret)"}.Error())
	}
	if cfg.LLM.APIKey == "" {
		errors = append(errors, ValidationError{"LLM_API_KEY", "is required (env, CEREBRAS_API_KEY or llm_api_key secret)"}.Error())
	}
	if cfg.LLM.MaxTokens <= 0 {
		errors = append(errors, ValidationError{"LLM_MAX_TOKENS", "must be positive"}.Error())
	}
	if cfg.ServerPort == "" {
		errors = append(errors, ValidationError{"SERVER_PORT", "is required"}.Error())
	}
	if !supportedDrivers[cfg.DBDriver] {
		errors = append(errors, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}
	if cfg.RecipesListLimit <= 0 {
		errors = append(errors, ValidationError{"RECIPES_LIST_LIMIT", "must be positive"}.Error())
	}
	if cfg.RateLimit.Enabled && (cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0) {
		errors = append(errors, ValidationError{"RATE_LIMIT", "requests and window must be positive when enabled"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
