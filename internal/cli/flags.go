package cli

import (
	"codeberg.org/snonux/sdprompt/internal/session"
	"codeberg.org/snonux/sdprompt/internal/settings"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	SettingsFile string
	WorkFile     string

	// Headless mode
	FixedText    string
	KeywordsFile string

	// Translation
	Provider   string
	ListModels bool

	// Logging
	LogLevel string
	LogFile  string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		SettingsFile: settings.DefaultFile,
		WorkFile:     session.DefaultFile,
		LogLevel:     "info",
	}
}
