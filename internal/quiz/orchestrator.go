package quiz

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asengupta/notequiz/internal/backend"
)

// AttemptStatus tags the outcome of one backend attempt.
type AttemptStatus string

const (
	AttemptSucceeded   AttemptStatus = "succeeded"
	AttemptUnavailable AttemptStatus = "unavailable"
	AttemptFailed      AttemptStatus = "failed"
)

// Attempt describes one backend attempt inside a generation request.
// Attempts belonging to the same request share a RequestID.
type Attempt struct {
	RequestID   string
	Engine      string
	Status      AttemptStatus
	Latency     time.Duration
	Err         error
	PromptChars int
	OutputChars int
}

// EventSink receives backend attempt records for observability.
// Recording failures must never interrupt generation.
type EventSink interface {
	Record(ctx context.Context, a Attempt) error
}

// Orchestrator drives the ordered fallback chain: each configured engine
// is tried once, in order, and the first successful raw output is parsed
// and returned. When no engine produces output, the heuristic generator
// answers instead. Generate never returns an error.
//
// Each attempt blocks for the duration of model inference. There is no
// orchestrator-level timeout: a hung backend holds up the chain, so
// callers who need a bound pass a context with a deadline.
type Orchestrator struct {
	engines []backend.Engine
	handles *backend.HandleCache
	config  Config
	logger  *slog.Logger
	sink    EventSink
}

// NewOrchestrator creates an Orchestrator. Engines are tried in the given
// order; sink may be nil to disable event recording.
func NewOrchestrator(engines []backend.Engine, cfg Config, logger *slog.Logger, sink EventSink) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		engines: engines,
		handles: backend.NewHandleCache(),
		config:  cfg,
		logger:  logger,
		sink:    sink,
	}
}

// Generate produces QA records for the request. A successful engine call
// consumes the chain even when its output cannot be parsed: the result is
// then empty rather than heuristic. Only load and generation failures
// fall through to the next engine.
func (o *Orchestrator) Generate(ctx context.Context, req Request) []QARecord {
	n := req.NumQuestions
	if n <= 0 {
		n = o.config.DefaultNumQuestions
	}

	requestID := uuid.NewString()
	prompt := BuildPrompt(req.Notes, n)

	for _, eng := range o.engines {
		raw, ok := o.attempt(ctx, requestID, eng, prompt)
		if !ok {
			continue
		}

		recs, parsed := Parse(raw)
		if !parsed {
			o.logger.Warn("could not parse backend output, returning empty set",
				"request_id", requestID,
				"engine", eng.Name())
		}
		if recs == nil {
			recs = []QARecord{}
		}
		return recs
	}

	o.logger.Info("no backend produced output, using heuristic generator",
		"request_id", requestID)
	return HeuristicGenerate(req.Notes, n)
}

// attempt runs one load-then-generate pass against a single engine and
// reports the tagged outcome.
func (o *Orchestrator) attempt(ctx context.Context, requestID string, eng backend.Engine, prompt string) (string, bool) {
	start := time.Now()

	handle, err := o.handles.Get(ctx, eng)
	if err != nil {
		o.report(ctx, Attempt{
			RequestID:   requestID,
			Engine:      eng.Name(),
			Status:      AttemptUnavailable,
			Latency:     time.Since(start),
			Err:         err,
			PromptChars: len(prompt),
		})
		return "", false
	}

	raw, err := handle.Generate(ctx, prompt, backend.GenerateOptions{
		MaxTokens:   o.config.MaxTokens,
		Temperature: o.config.Temperature,
	})
	if err != nil {
		status := AttemptFailed
		var unavail *backend.ErrUnavailable
		if errors.As(err, &unavail) {
			status = AttemptUnavailable
		}
		o.report(ctx, Attempt{
			RequestID:   requestID,
			Engine:      eng.Name(),
			Status:      status,
			Latency:     time.Since(start),
			Err:         err,
			PromptChars: len(prompt),
		})
		return "", false
	}

	o.report(ctx, Attempt{
		RequestID:   requestID,
		Engine:      eng.Name(),
		Status:      AttemptSucceeded,
		Latency:     time.Since(start),
		PromptChars: len(prompt),
		OutputChars: len(raw),
	})
	return raw, true
}

// report logs the attempt and forwards it to the event sink.
func (o *Orchestrator) report(ctx context.Context, a Attempt) {
	switch a.Status {
	case AttemptSucceeded:
		o.logger.Info("backend generation succeeded",
			"request_id", a.RequestID,
			"engine", a.Engine,
			"latency_ms", a.Latency.Milliseconds(),
			"output_chars", a.OutputChars)
	case AttemptUnavailable:
		o.logger.Warn("backend unavailable, falling through",
			"request_id", a.RequestID,
			"engine", a.Engine,
			"error", a.Err)
	case AttemptFailed:
		o.logger.Warn("backend generation failed, falling through",
			"request_id", a.RequestID,
			"engine", a.Engine,
			"latency_ms", a.Latency.Milliseconds(),
			"error", a.Err)
	}

	if o.sink == nil {
		return
	}
	if err := o.sink.Record(ctx, a); err != nil {
		o.logger.Warn("failed to record attempt event",
			"request_id", a.RequestID,
			"error", err)
	}
}
