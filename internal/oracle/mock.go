package oracle

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockEngine.
type MockResponse struct {
	Result *Result
	Err    error
}

// MockEngine is a deterministic Engine for testing.
// It returns canned responses in FIFO order and records all requests.
type MockEngine struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockEngine creates a MockEngine with the given canned responses.
func NewMockEngine(responses ...MockResponse) *MockEngine {
	return &MockEngine{responses: responses}
}

// Analyze returns the next canned response or ErrEngineUnavailable if the
// queue is empty.
func (m *MockEngine) Analyze(_ context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrEngineUnavailable{}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Result, nil
}

// Name returns "mock".
func (m *MockEngine) Name() string { return "mock" }

// Close is a no-op.
func (m *MockEngine) Close() error { return nil }

// AddResponse appends a canned response to the queue.
func (m *MockEngine) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Analyze calls made.
func (m *MockEngine) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
