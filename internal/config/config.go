package config

// Config holds all application configuration.
// It is constructed once at process start and passed explicitly to the
// components that need it; there is no package-level configuration state.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// CORSOrigins lists the origins allowed to call the API from a browser.
	// "*" is accepted as a temporary wildcard allowance.
	CORSOrigins []string `mapstructure:"cors_origins" validate:"required,min=1"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and session settings.
type AuthConfig struct {
	// JWTSecret keys the HMAC signature on issued tokens. Never logged.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the absolute lifetime of an access token,
	// measured from issuance.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
