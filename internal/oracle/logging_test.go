package oracle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/pawnforge/internal/store"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEventRepo struct {
	events  []store.EngineRequestEventData
	failLog bool
}

func (r *recordingEventRepo) AppendEngineRequest(_ context.Context, data store.EngineRequestEventData) error {
	if r.failLog {
		return errors.New("db locked")
	}
	r.events = append(r.events, data)
	return nil
}

func (r *recordingEventRepo) AppendGeneration(context.Context, store.GenerationEventData) error {
	return nil
}

func (r *recordingEventRepo) EngineUsage(context.Context) (*store.EngineStats, error) {
	return &store.EngineStats{}, nil
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	pos := chess.NewGame().Position()
	mock := NewMockEngine(MockResponse{Result: &Result{
		BestMove: bestMove(t, pos, "e2e4"),
		Eval:     Evaluation{Type: EvalCentipawn, Value: 30},
		Depth:    18,
	}})
	repo := &recordingEventRepo{}
	engine := WithLogging(mock, repo)

	res, err := engine.Analyze(context.Background(), Request{
		Position:   pos,
		Depth:      18,
		TimeBudget: 1500 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, "mock", ev.Engine)
	assert.Equal(t, "e2e4", ev.BestMove)
	assert.Equal(t, 18, ev.ReachedDepth)
	assert.Equal(t, int64(1500), ev.TimeBudgetMs)
	assert.True(t, ev.Success)
	assert.Empty(t, ev.ErrorMessage)
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	mock := NewMockEngine(MockResponse{Err: &ErrSearchFailed{Err: errors.New("bestmove timeout")}})
	repo := &recordingEventRepo{}
	engine := WithLogging(mock, repo)

	_, err := engine.Analyze(context.Background(), Request{TimeBudget: time.Second})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Contains(t, repo.events[0].ErrorMessage, "bestmove timeout")
}

func TestWithLogging_LogFailureDoesNotFailAnalysis(t *testing.T) {
	pos := chess.NewGame().Position()
	mock := NewMockEngine(MockResponse{Result: &Result{
		BestMove: bestMove(t, pos, "d2d4"),
		Eval:     Evaluation{Type: EvalCentipawn, Value: 20},
	}})
	engine := WithLogging(mock, &recordingEventRepo{failLog: true})

	res, err := engine.Analyze(context.Background(), Request{Position: pos, TimeBudget: time.Second})
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestWithLogging_PassesThroughNameAndClose(t *testing.T) {
	engine := WithLogging(NewMockEngine(), &recordingEventRepo{})
	assert.Equal(t, "mock", engine.Name())
	assert.NoError(t, engine.Close())
}
