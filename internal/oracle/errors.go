package oracle

import (
	"fmt"
	"time"
)

// ErrEngineUnavailable indicates the engine process is missing, crashed,
// or failed the UCI handshake.
type ErrEngineUnavailable struct {
	Err error
}

func (e *ErrEngineUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis engine unavailable: %v", e.Err)
	}
	return "analysis engine unavailable"
}

func (e *ErrEngineUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResult indicates the search finished without producing a usable
// best move. Callers treat this as "skip the position", not a crash.
type ErrEmptyResult struct {
	Budget time.Duration
}

func (e *ErrEmptyResult) Error() string {
	return fmt.Sprintf("analysis returned no best move (budget %s)", e.Budget)
}

// ErrSearchFailed indicates the engine rejected or aborted the search
// command itself.
type ErrSearchFailed struct {
	Err error
}

func (e *ErrSearchFailed) Error() string {
	return fmt.Sprintf("analysis search failed: %v", e.Err)
}

func (e *ErrSearchFailed) Unwrap() error { return e.Err }
