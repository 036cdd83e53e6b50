// Package backend integrates local text-generation engines behind a
// single capability contract: load a model once, then turn prompts into
// raw text.
package backend

import "context"

// Engine is one configured local text-generation integration. Load is
// expected to be expensive (model initialization); callers memoize the
// returned Handle through a HandleCache.
type Engine interface {
	// Name identifies the engine in logs, events and the handle cache.
	Name() string

	// Load initializes the engine and returns a Handle for generation.
	// Returns *ErrUnavailable when the model artifact is missing,
	// unreadable, or the engine fails to initialize.
	Load(ctx context.Context) (Handle, error)
}

// Handle is a loaded engine ready to generate. Implementations must be
// safe for concurrent use.
type Handle interface {
	// Generate blocks for the duration of inference and returns the raw
	// model output. Returns *ErrGeneration on engine failure. Engines
	// that produce several candidate completions return the first.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// GenerateOptions bounds a single generation call.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float64
}
