package backend

import (
	"context"
	"sync"
)

// MockResult is a canned outcome for the MockEngine. A non-nil LoadErr
// fails the next Load; a non-nil GenErr fails the next Generate;
// otherwise Raw is returned.
type MockResult struct {
	Raw     string
	LoadErr error
	GenErr  error
}

// MockEngine is a deterministic Engine for tests. It consumes canned
// results in FIFO order and records every prompt it was asked to
// generate for.
type MockEngine struct {
	mu      sync.Mutex
	name    string
	results []MockResult

	// Loads counts Load calls. Prompts records Generate inputs in order.
	Loads   int
	Prompts []string
}

// NewMockEngine creates a MockEngine named "mock".
func NewMockEngine(results ...MockResult) *MockEngine {
	return NewNamedMockEngine("mock", results...)
}

// NewNamedMockEngine creates a MockEngine with an explicit name, for
// tests that configure several mocks side by side.
func NewNamedMockEngine(name string, results ...MockResult) *MockEngine {
	return &MockEngine{name: name, results: results}
}

func (m *MockEngine) Name() string { return m.name }

// Load fails with *ErrUnavailable when the next result carries a LoadErr
// or the queue is empty; otherwise it returns a handle over the engine.
func (m *MockEngine) Load(_ context.Context) (Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Loads++
	if len(m.results) == 0 {
		return nil, &ErrUnavailable{Engine: m.name}
	}
	if m.results[0].LoadErr != nil {
		err := m.results[0].LoadErr
		m.results = m.results[1:]
		return nil, &ErrUnavailable{Engine: m.name, Err: err}
	}
	return &mockHandle{engine: m}, nil
}

// AddResult appends a canned result to the queue.
func (m *MockEngine) AddResult(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

type mockHandle struct {
	engine *MockEngine
}

func (h *mockHandle) Generate(_ context.Context, prompt string, _ GenerateOptions) (string, error) {
	m := h.engine
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)
	if len(m.results) == 0 {
		return "", &ErrGeneration{Engine: m.name}
	}

	r := m.results[0]
	m.results = m.results[1:]
	if r.GenErr != nil {
		return "", &ErrGeneration{Engine: m.name, Err: r.GenErr}
	}
	return r.Raw, nil
}
