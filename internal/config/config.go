// Package config loads and validates application configuration.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	// JWTSecret signs login-issued tokens.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=16"`

	// TokenLifetimeMinutes is the issued-token expiry in minutes.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// AdminToken is the fixed shared secret checked by the bearer gate on
	// privileged routes. It is intentionally separate from the JWT flow.
	AdminToken string `mapstructure:"admin_token" validate:"required"`
}
