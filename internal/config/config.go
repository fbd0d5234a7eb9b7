package config

import (
	"fmt"
	"time"
)

// Config is the runtime configuration of the portfolio server.
type Config struct {
	Port           string        `mapstructure:"port"`
	Mode           string        `mapstructure:"mode"`
	ContentFile    string        `mapstructure:"contentFile"`
	TriggerLine    float64       `mapstructure:"triggerLine"`
	CollapseOffset float64       `mapstructure:"collapseOffset"`
	SubmitDelay    time.Duration `mapstructure:"submitDelay"`
	ResetDelay     time.Duration `mapstructure:"resetDelay"`
	SessionTTL     time.Duration `mapstructure:"sessionTTL"`
	HashSalt       string        `mapstructure:"hashSalt"`
}

// Defaults are applied before the config file and environment.
func Defaults() map[string]any {
	return map[string]any{
		"port":           "8080",
		"mode":           "release",
		"contentFile":    "",
		"triggerLine":    100.0,
		"collapseOffset": 50.0,
		"submitDelay":    2 * time.Second,
		"resetDelay":     3 * time.Second,
		"sessionTTL":     30 * time.Minute,
		"hashSalt":       "",
	}
}

// Validate checks the values that would otherwise fail at runtime.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.TriggerLine < 0 {
		return fmt.Errorf("triggerLine must be non-negative")
	}
	if c.CollapseOffset < 0 {
		return fmt.Errorf("collapseOffset must be non-negative")
	}
	if c.SubmitDelay < 0 || c.ResetDelay < 0 {
		return fmt.Errorf("submitDelay and resetDelay must be non-negative")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("sessionTTL must be positive")
	}
	return nil
}
