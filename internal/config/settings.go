package config

import "time"

// Settings is the static, process-lifetime configuration blob: embed palette,
// default thresholds and feature toggles. Values absent from the environment
// fall back to the defaults below.
type Settings struct {
	Colors   Palette
	Cooldown CooldownSettings
	Welcome  WelcomeSettings
}

// Palette holds the embed colors used across command replies.
type Palette struct {
	Primary int
	Success int
	Error   int
	Warning int
	Info    int
	Default int
}

type CooldownSettings struct {
	// Default applies to commands that request a cooldown without a duration.
	Default time.Duration
	// SweepInterval is how often expired cooldown windows are purged.
	SweepInterval time.Duration
}

type WelcomeSettings struct {
	Enabled   bool
	ChannelID string
	Message   string
}

// DefaultSettings returns the built-in settings, with the welcome channel
// taken from the environment config when set.
func DefaultSettings(cfg *Config) *Settings {
	s := &Settings{
		Colors: Palette{
			Primary: 0x0099ff,
			Success: 0x00ff00,
			Error:   0xff0000,
			Warning: 0xffff00,
			Info:    0x00ffff,
			Default: 0x2f3136,
		},
		Cooldown: CooldownSettings{
			Default:       3 * time.Second,
			SweepInterval: time.Minute,
		},
		Welcome: WelcomeSettings{
			Message: "Welcome {user} to {server}!",
		},
	}
	if cfg != nil && cfg.WelcomeChannelID != "" {
		s.Welcome.Enabled = true
		s.Welcome.ChannelID = cfg.WelcomeChannelID
	}
	return s
}
