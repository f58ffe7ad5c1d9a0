package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Session    SessionConfig    `yaml:"session"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Speech     SpeechConfig     `yaml:"speech"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"  env:"SERVER_RATE_PER_MINUTE"  env-default:"300"`
}

// SessionConfig holds browsing-session settings: the signed cookie and the
// in-memory session store behind it.
type SessionConfig struct {
	TokenSecret     string        `yaml:"token_secret"     env:"SESSION_TOKEN_SECRET"     env-required:"true"`
	TokenIssuer     string        `yaml:"token_issuer"     env:"SESSION_TOKEN_ISSUER"     env-default:"numee"`
	TokenTTL        time.Duration `yaml:"token_ttl"        env:"SESSION_TOKEN_TTL"        env-default:"12h"`
	CookieName      string        `yaml:"cookie_name"      env:"SESSION_COOKIE_NAME"      env-default:"numee_session"`
	CookieSecure    bool          `yaml:"cookie_secure"    env:"SESSION_COOKIE_SECURE"    env-default:"false"`
	MaxSessions     int           `yaml:"max_sessions"     env:"SESSION_MAX_SESSIONS"     env-default:"10000"`
	IdleTTL         time.Duration `yaml:"idle_ttl"         env:"SESSION_IDLE_TTL"         env-default:"30m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"SESSION_CLEANUP_INTERVAL" env-default:"5m"`
}

// DictionaryConfig holds dictionary settings.
type DictionaryConfig struct {
	// DataPath overrides the embedded dataset when set.
	DataPath   string `yaml:"data_path"   env:"DICT_DATA_PATH"   env-default:""`
	MaxResults int    `yaml:"max_results" env:"DICT_MAX_RESULTS" env-default:"500"`
}

// SpeechConfig holds pronunciation playback settings.
type SpeechConfig struct {
	Enabled  bool    `yaml:"enabled"  env:"SPEECH_ENABLED"  env-default:"false"`
	Language string  `yaml:"language" env:"SPEECH_LANGUAGE" env-default:"fr-FR"`
	Rate     float64 `yaml:"rate"     env:"SPEECH_RATE"     env-default:"0.8"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
