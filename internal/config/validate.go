package config

import (
	"errors"
	"fmt"
)

// Validate checks invariants cleanenv tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if len(c.Session.TokenSecret) < 32 {
		errs = append(errs, errors.New("session.token_secret must be at least 32 characters"))
	}
	if c.Session.TokenTTL <= 0 {
		errs = append(errs, errors.New("session.token_ttl must be positive"))
	}
	if c.Session.MaxSessions < 1 {
		errs = append(errs, errors.New("session.max_sessions must be at least 1"))
	}
	if c.Session.IdleTTL <= 0 || c.Session.CleanupInterval <= 0 {
		errs = append(errs, errors.New("session.idle_ttl and session.cleanup_interval must be positive"))
	}
	if c.Dictionary.MaxResults < 1 {
		errs = append(errs, errors.New("dictionary.max_results must be at least 1"))
	}
	if c.Speech.Rate <= 0 || c.Speech.Rate > 4 {
		errs = append(errs, fmt.Errorf("speech.rate %v out of range (0, 4]", c.Speech.Rate))
	}
	if c.Server.RatePerMinute < 1 {
		errs = append(errs, errors.New("server.rate_per_minute must be at least 1"))
	}

	return errors.Join(errs...)
}
