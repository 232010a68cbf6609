package configloader

import (
	"os"

	"github.com/mohamedeliwa/minigrep/pkg/config"
)

// Environment variables recognized by minigrep.
const (
	// EnvIgnoreCase enables case-insensitive matching. Its presence
	// alone enables the mode; the value is ignored, so even
	// MINIGREP_IGNORE_CASE=0 turns it on.
	EnvIgnoreCase = "MINIGREP_IGNORE_CASE"

	// EnvColor sets the color mode: auto, always, or never.
	EnvColor = "MINIGREP_COLOR"
)

// applyEnv applies environment variable overrides to the configuration.
func applyEnv(cfg *config.Config) {
	if _, ok := os.LookupEnv(EnvIgnoreCase); ok {
		cfg.IgnoreCase = true
	}
	if value := os.Getenv(EnvColor); value != "" {
		cfg.Color = config.ColorMode(value)
	}
}

// ListEnvVars returns the supported environment variables with their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		EnvIgnoreCase: "Enable case-insensitive matching (presence alone enables it)",
		EnvColor:      "Color mode for stderr output: auto, always, or never",
	}
}
