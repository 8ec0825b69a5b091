package module

import (
	"time"

	"issuehound/internal/platform/config"
)

// Options holds configuration settings for the search module
type Options struct {
	RefreshEvery time.Duration
	SessionTTL   time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("SEARCH_")
	return Options{
		RefreshEvery: sf.MayDuration("REFRESH_EVERY", 60*time.Second),
		SessionTTL:   sf.MayDuration("SESSION_TTL", 10*time.Minute),
	}
}
