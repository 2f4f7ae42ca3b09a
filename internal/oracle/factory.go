package oracle

import "github.com/abhisek/pawnforge/internal/store"

// NewEngine creates an Engine from configuration, wrapped with event
// logging when an event repo is supplied. "mock" yields a bare MockEngine
// for tests and dry runs.
func NewEngine(cfg Config, eventRepo store.EventRepo) (Engine, error) {
	if cfg.Path == "mock" {
		return NewMockEngine(), nil
	}

	base, err := NewUCIEngine(cfg)
	if err != nil {
		return nil, err
	}

	if eventRepo == nil {
		return base, nil
	}
	return WithLogging(base, eventRepo), nil
}
