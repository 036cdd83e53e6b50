package backend

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultGPT4AllBaseURL = "http://localhost:4891/v1"

// GPT4AllEngine talks to a GPT4All API server, or any other
// OpenAI-compatible local model server, over HTTP.
type GPT4AllEngine struct {
	client *openai.Client
	model  string
}

// NewGPT4AllEngine creates a GPT4All engine. An empty baseURL falls back
// to the GPT4All server default.
func NewGPT4AllEngine(baseURL, model string) *GPT4AllEngine {
	if baseURL == "" {
		baseURL = defaultGPT4AllBaseURL
	}
	cfg := openai.DefaultConfig("not-needed")
	cfg.BaseURL = baseURL
	return &GPT4AllEngine{client: openai.NewClientWithConfig(cfg), model: model}
}

func (e *GPT4AllEngine) Name() string { return "gpt4all" }

// Load checks that the server is reachable and the configured model is
// actually served.
func (e *GPT4AllEngine) Load(ctx context.Context) (Handle, error) {
	if e.model == "" {
		return nil, &ErrUnavailable{Engine: e.Name(), Err: fmt.Errorf("no model configured")}
	}

	resp, err := e.client.ListModels(ctx)
	if err != nil {
		return nil, &ErrUnavailable{Engine: e.Name(), Err: err}
	}
	for _, m := range resp.Models {
		if m.ID == e.model {
			return &gpt4allHandle{client: e.client, model: e.model, engine: e.Name()}, nil
		}
	}
	return nil, &ErrUnavailable{Engine: e.Name(), Err: fmt.Errorf("model %q not served", e.model)}
}

type gpt4allHandle struct {
	client *openai.Client
	model  string
	engine string
}

func (h *gpt4allHandle) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	resp, err := h.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       h.model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		MaxTokens:   opts.MaxTokens,
		Temperature: float32(opts.Temperature),
	})
	if err != nil {
		return "", &ErrGeneration{Engine: h.engine, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ErrGeneration{Engine: h.engine, Err: fmt.Errorf("no choices in response")}
	}
	// Servers may return several candidates; the first one wins.
	return resp.Choices[0].Message.Content, nil
}
