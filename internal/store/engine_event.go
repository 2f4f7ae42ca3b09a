package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pawnforge/ent"
	"github.com/abhisek/pawnforge/ent/enginerequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendEngineRequest(ctx context.Context, data EngineRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.EngineRequestEvent.Create().
		SetSequence(seqNum).
		SetEngine(data.Engine).
		SetDepth(data.Depth).
		SetTimeBudgetMs(data.TimeBudgetMs).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetBestMove(data.BestMove).
		SetReachedDepth(data.ReachedDepth).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save engine request event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GenerationEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetCategory(data.Category).
		SetDifficulty(data.Difficulty).
		SetPuzzleCount(data.PuzzleCount).
		SetFallback(data.Fallback).
		SetDurationMs(data.DurationMs).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}

	return nil
}

func (r *eventRepo) EngineUsage(ctx context.Context) (*EngineStats, error) {
	events, err := r.client.EngineRequestEvent.Query().
		Select(enginerequestevent.FieldSuccess, enginerequestevent.FieldLatencyMs).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query engine events: %w", err)
	}

	stats := &EngineStats{}
	for _, ev := range events {
		stats.Calls++
		if !ev.Success {
			stats.Failures++
		}
		stats.TotalTimeMs += ev.LatencyMs
	}
	return stats, nil
}
