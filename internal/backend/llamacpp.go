package backend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

const defaultLlamaBinary = "llama-cli"

// LlamaCppEngine runs a local llama.cpp CLI binary against a .gguf model
// file on disk.
type LlamaCppEngine struct {
	binary    string
	modelPath string
}

// NewLlamaCppEngine creates a llama.cpp engine. An empty binary falls
// back to "llama-cli" resolved on PATH.
func NewLlamaCppEngine(binary, modelPath string) *LlamaCppEngine {
	if binary == "" {
		binary = defaultLlamaBinary
	}
	return &LlamaCppEngine{binary: binary, modelPath: modelPath}
}

func (e *LlamaCppEngine) Name() string { return "llamacpp" }

// Load verifies the model artifact and the binary before any generation
// is attempted. llama.cpp reloads the weights on every invocation; the
// Handle only captures the verified locations.
func (e *LlamaCppEngine) Load(ctx context.Context) (Handle, error) {
	if e.modelPath == "" {
		return nil, &ErrUnavailable{Engine: e.Name(), Err: fmt.Errorf("no model path configured")}
	}
	if _, err := os.Stat(e.modelPath); err != nil {
		return nil, &ErrUnavailable{Engine: e.Name(), Err: fmt.Errorf("model file: %w", err)}
	}
	bin, err := exec.LookPath(e.binary)
	if err != nil {
		return nil, &ErrUnavailable{Engine: e.Name(), Err: fmt.Errorf("binary %q: %w", e.binary, err)}
	}
	return &llamaCppHandle{binary: bin, modelPath: e.modelPath, engine: e.Name()}, nil
}

type llamaCppHandle struct {
	binary    string
	modelPath string
	engine    string
}

func (h *llamaCppHandle) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	args := []string{
		"-m", h.modelPath,
		"-p", prompt,
		"--n-predict", strconv.Itoa(opts.MaxTokens),
		"--temp", strconv.FormatFloat(opts.Temperature, 'f', -1, 64),
		"--no-display-prompt",
		"--simple-io",
	}

	cmd := exec.CommandContext(ctx, h.binary, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			err = fmt.Errorf("%w: %s", err, firstLine(string(exitErr.Stderr)))
		}
		return "", &ErrGeneration{Engine: h.engine, Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
