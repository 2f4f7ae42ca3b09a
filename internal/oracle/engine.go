// Package oracle abstracts the analysis engine behind a narrow interface so
// the pipeline can run against a real UCI engine in production and a
// deterministic mock in tests.
package oracle

import (
	"context"
	"time"

	"github.com/notnil/chess"
)

// Engine is the core abstraction for position analysis.
// Implementations serialize calls internally: a single engine session does
// not support concurrent queries, so Analyze must not be invoked again until
// the previous call returns. Independent sessions may run in parallel.
type Engine interface {
	// Analyze searches the position within the request's budget and returns
	// the best move, an evaluation, and (when the engine provides one) a
	// principal variation. A nil BestMove never occurs: implementations
	// return ErrEmptyResult instead.
	Analyze(ctx context.Context, req Request) (*Result, error)

	// Name returns a short identifier for the engine ("stockfish", "mock").
	Name() string

	// Close releases the engine session.
	Close() error
}

// Request describes a single analysis query.
type Request struct {
	// Position is the board state to analyze.
	Position *chess.Position

	// Depth limits the search depth in plies. Zero means no depth limit
	// (the time budget governs).
	Depth int

	// TimeBudget is the wall-clock search budget. The engine uses the full
	// budget; callers amortize cost by shrinking it on follow-up queries.
	TimeBudget time.Duration
}

// EvalType distinguishes centipawn scores from forced-mate announcements.
type EvalType string

const (
	// EvalCentipawn is a positional score in hundredths of a pawn,
	// from the perspective of the side to move.
	EvalCentipawn EvalType = "cp"

	// EvalMate is a forced mate in Value moves. Positive means the side
	// to move mates; negative means it is being mated.
	EvalMate EvalType = "mate"
)

// Evaluation is the engine's assessment of a position.
type Evaluation struct {
	Type  EvalType
	Value int
}

// ScoredMove pairs a candidate move with its evaluation. Populated only by
// engines that report multiple candidate lines; most report just the best.
type ScoredMove struct {
	Move *chess.Move
	Eval Evaluation
}

// Result holds the outcome of one analysis query. Produced fresh per call;
// never mutated afterwards.
type Result struct {
	// BestMove is the engine's preferred move. Always non-nil.
	BestMove *chess.Move

	// Eval is the evaluation of the position assuming best play.
	Eval Evaluation

	// PV is the principal variation starting with BestMove. May be short
	// or contain only BestMove when the search was shallow.
	PV []*chess.Move

	// Alternatives lists evaluations of non-best candidate moves when the
	// engine reports them. Often empty.
	Alternatives []ScoredMove

	// Depth is the search depth actually reached.
	Depth int
}
