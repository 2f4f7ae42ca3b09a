package oracle

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/pawnforge/internal/rules"
	"github.com/abhisek/pawnforge/internal/store"
)

// LoggingEngine is a decorator that records every analysis call as an event.
type LoggingEngine struct {
	inner     Engine
	eventRepo store.EventRepo
}

// WithLogging wraps an Engine with event logging.
func WithLogging(e Engine, repo store.EventRepo) Engine {
	return &LoggingEngine{inner: e, eventRepo: repo}
}

func (l *LoggingEngine) Analyze(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	res, err := l.inner.Analyze(ctx, req)

	data := store.EngineRequestEventData{
		Engine:       l.inner.Name(),
		Depth:        req.Depth,
		TimeBudgetMs: req.TimeBudget.Milliseconds(),
		LatencyMs:    time.Since(start).Milliseconds(),
		Success:      err == nil,
	}

	if res != nil {
		data.BestMove = rules.UCI(res.BestMove)
		data.ReachedDepth = res.Depth
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the analysis if logging fails.
	if logErr := l.eventRepo.AppendEngineRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log engine request event: %v\n", logErr)
	}

	return res, err
}

func (l *LoggingEngine) Name() string { return l.inner.Name() }

func (l *LoggingEngine) Close() error { return l.inner.Close() }
