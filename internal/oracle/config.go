package oracle

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds analysis engine configuration.
type Config struct {
	// Path is the engine binary to launch, or "mock" for the test engine.
	Path string

	// Options are UCI options set after the handshake
	// (e.g. "Hash" → "128", "Threads" → "1").
	Options map[string]string

	// Depth caps search depth for classification queries. Zero lets the
	// time budget govern.
	Depth int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path: "stockfish",
		Options: map[string]string{
			"Threads": "1",
		},
		Depth: 18,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
//
//	PAWNFORGE_ENGINE         — engine binary path, or "mock"
//	PAWNFORGE_ENGINE_DEPTH   — search depth cap
//	PAWNFORGE_ENGINE_OPTIONS — comma-separated "Name=Value" UCI options
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("PAWNFORGE_ENGINE"); p != "" {
		cfg.Path = p
	}
	if d := os.Getenv("PAWNFORGE_ENGINE_DEPTH"); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n > 0 {
			cfg.Depth = n
		}
	}
	if opts := os.Getenv("PAWNFORGE_ENGINE_OPTIONS"); opts != "" {
		for _, pair := range strings.Split(opts, ",") {
			name, value, ok := strings.Cut(pair, "=")
			if !ok {
				continue
			}
			cfg.Options[strings.TrimSpace(name)] = strings.TrimSpace(value)
		}
	}

	return cfg
}

// EngineBudgets groups the time budgets the pipeline hands to the engine.
// The classification and first extension queries get the deep budget; the
// stepwise extension queries get the step budget.
type EngineBudgets struct {
	Classify time.Duration
	FirstPV  time.Duration
	Step     time.Duration
}

// DefaultBudgets returns the standard time budgets.
func DefaultBudgets() EngineBudgets {
	return EngineBudgets{
		Classify: 1500 * time.Millisecond,
		FirstPV:  3000 * time.Millisecond,
		Step:     800 * time.Millisecond,
	}
}
