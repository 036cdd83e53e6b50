package backend

import "fmt"

// Kind selects an engine integration.
type Kind string

const (
	KindLlamaCpp Kind = "llamacpp"
	KindGPT4All  Kind = "gpt4all"
	KindMock     Kind = "mock"
)

// Descriptor configures one engine. Descriptors are evaluated in the
// order they are configured; that order is the fallback priority.
type Descriptor struct {
	Kind Kind

	// Model is the model artifact: a .gguf file path for llamacpp, a
	// served model identifier for gpt4all.
	Model string

	// Binary is the llama.cpp CLI binary, as a name resolved on PATH or
	// an absolute path. Ignored by other kinds.
	Binary string

	// BaseURL is the gpt4all server's OpenAI-compatible endpoint.
	// Ignored by other kinds.
	BaseURL string
}

// New creates an Engine from a descriptor.
func New(d Descriptor) (Engine, error) {
	switch d.Kind {
	case KindLlamaCpp:
		return NewLlamaCppEngine(d.Binary, d.Model), nil
	case KindGPT4All:
		return NewGPT4AllEngine(d.BaseURL, d.Model), nil
	case KindMock:
		return NewMockEngine(), nil
	default:
		return nil, fmt.Errorf("unknown backend kind: %q", d.Kind)
	}
}
