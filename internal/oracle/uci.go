package oracle

import (
	"context"
	"sync"

	"github.com/notnil/chess/uci"
)

// UCIEngine drives a UCI engine subprocess (Stockfish or compatible).
// Safe for use from multiple goroutines: calls are serialized because a UCI
// session handles one search at a time.
type UCIEngine struct {
	mu   sync.Mutex
	eng  *uci.Engine
	name string
}

// NewUCIEngine launches the engine binary and performs the UCI handshake.
func NewUCIEngine(cfg Config) (*UCIEngine, error) {
	eng, err := uci.New(cfg.Path)
	if err != nil {
		return nil, &ErrEngineUnavailable{Err: err}
	}

	if err := eng.Run(uci.CmdUCI, uci.CmdIsReady, uci.CmdUCINewGame); err != nil {
		eng.Close()
		return nil, &ErrEngineUnavailable{Err: err}
	}

	for name, value := range cfg.Options {
		if err := eng.Run(uci.CmdSetOption{Name: name, Value: value}); err != nil {
			eng.Close()
			return nil, &ErrEngineUnavailable{Err: err}
		}
	}

	return &UCIEngine{eng: eng, name: cfg.Path}, nil
}

func (e *UCIEngine) Analyze(ctx context.Context, req Request) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmdGo := uci.CmdGo{MoveTime: req.TimeBudget}
	if req.Depth > 0 {
		cmdGo.Depth = req.Depth
	}

	if err := e.eng.Run(uci.CmdPosition{Position: req.Position}, cmdGo); err != nil {
		return nil, &ErrSearchFailed{Err: err}
	}

	sr := e.eng.SearchResults()
	if sr.BestMove == nil {
		return nil, &ErrEmptyResult{Budget: req.TimeBudget}
	}

	res := &Result{
		BestMove: sr.BestMove,
		PV:       sr.Info.PV,
		Depth:    sr.Info.Depth,
	}

	if sr.Info.Score.Mate != 0 {
		res.Eval = Evaluation{Type: EvalMate, Value: sr.Info.Score.Mate}
	} else {
		res.Eval = Evaluation{Type: EvalCentipawn, Value: sr.Info.Score.CP}
	}

	return res, nil
}

func (e *UCIEngine) Name() string { return e.name }

func (e *UCIEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.eng.Close()
}
