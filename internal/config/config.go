// Package config assembles runtime configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/asengupta/notequiz/internal/backend"
	"github.com/asengupta/notequiz/internal/quiz"
)

// Config is the full runtime configuration.
type Config struct {
	ServerAddr string

	// LlamaBinary and LlamaModelPath configure the llama.cpp backend.
	// An empty model path disables it.
	LlamaBinary    string
	LlamaModelPath string

	// GPT4AllBaseURL and GPT4AllModel configure the GPT4All server
	// backend. An empty model disables it.
	GPT4AllBaseURL string
	GPT4AllModel   string

	// EventDBPath enables the SQLite attempt log when set.
	EventDBPath string

	Generation quiz.Config
}

// Load reads configuration from NOTEQUIZ_* environment variables,
// falling back to defaults for unset values.
func Load() Config {
	gen := quiz.DefaultConfig()
	gen.MaxTokens = getint("NOTEQUIZ_MAX_TOKENS", gen.MaxTokens)
	gen.Temperature = getfloat("NOTEQUIZ_TEMPERATURE", gen.Temperature)
	gen.DefaultNumQuestions = getint("NOTEQUIZ_NUM_QUESTIONS", gen.DefaultNumQuestions)

	return Config{
		ServerAddr:     getenv("NOTEQUIZ_SERVER_ADDR", ":8080"),
		LlamaBinary:    getenv("NOTEQUIZ_LLAMA_BINARY", "llama-cli"),
		LlamaModelPath: os.Getenv("NOTEQUIZ_LLAMA_MODEL"),
		GPT4AllBaseURL: getenv("NOTEQUIZ_GPT4ALL_BASE_URL", "http://localhost:4891/v1"),
		GPT4AllModel:   os.Getenv("NOTEQUIZ_GPT4ALL_MODEL"),
		EventDBPath:    os.Getenv("NOTEQUIZ_EVENT_DB"),
		Generation:     gen,
	}
}

// Backends returns the configured engine descriptors in fallback
// priority order: llama.cpp first, then the GPT4All server. Backends
// without a model configured are omitted.
func (c Config) Backends() []backend.Descriptor {
	var ds []backend.Descriptor
	if c.LlamaModelPath != "" {
		ds = append(ds, backend.Descriptor{
			Kind:   backend.KindLlamaCpp,
			Model:  c.LlamaModelPath,
			Binary: c.LlamaBinary,
		})
	}
	if c.GPT4AllModel != "" {
		ds = append(ds, backend.Descriptor{
			Kind:    backend.KindGPT4All,
			Model:   c.GPT4AllModel,
			BaseURL: c.GPT4AllBaseURL,
		})
	}
	return ds
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
