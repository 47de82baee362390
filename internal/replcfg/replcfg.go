// Package replcfg loads the small set of environment-variable knobs the
// interactive REPL honors (prompt text and history file location), using a
// struct-tag style config loader rather than hand-rolled os.Getenv calls.
package replcfg

import "github.com/caarlos0/env/v6"

// Config holds the REPL's environment-configurable behavior. Unset variables
// take the envDefault values below, so a REPL running with no environment
// set up still behaves correctly.
type Config struct {
	// Prompt is printed before each line of input.
	Prompt string `env:"LOX_PROMPT" envDefault:"> "`
	// HistoryFile, if non-empty, is where line history is persisted between
	// REPL sessions.
	HistoryFile string `env:"LOX_HISTORY_FILE" envDefault:""`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
