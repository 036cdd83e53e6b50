package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asengupta/notequiz/internal/backend"
	"github.com/asengupta/notequiz/internal/quiz"
)

func testApp(engines ...backend.Engine) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	orch := quiz.NewOrchestrator(engines, quiz.DefaultConfig(), logger, nil)

	app := fiber.New()
	RegisterRoutes(app, orch, engines, logger)
	return app
}

func TestGenerate_BackendSuccess(t *testing.T) {
	eng := backend.NewNamedMockEngine("primary",
		backend.MockResult{Raw: `[{"question":"What is X?","answer":"X is Y.","text":"X is Y because Z."}]`})
	app := testApp(eng)

	body := bytes.NewBufferString(`{"notes":"X is Y because Z.","numQuestions":1}`)
	req := httptest.NewRequest("POST", "/generate", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var recs []quiz.QARecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "What is X?", recs[0].Question)
	assert.Equal(t, "X is Y.", recs[0].Answer)
}

func TestGenerate_HeuristicFallback(t *testing.T) {
	// No engines configured: the endpoint still answers with records.
	app := testApp()

	body := bytes.NewBufferString(`{"notes":"A. B. C.","numQuestions":5}`)
	req := httptest.NewRequest("POST", "/generate", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var recs []quiz.QARecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recs))
	assert.Len(t, recs, 5)
}

func TestGenerate_UnparsableOutputYieldsEmptyArray(t *testing.T) {
	eng := backend.NewNamedMockEngine("primary", backend.MockResult{Raw: "not json"})
	app := testApp(eng)

	body := bytes.NewBufferString(`{"notes":"A. B.","numQuestions":2}`)
	req := httptest.NewRequest("POST", "/generate", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestGenerate_InvalidBody(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/generate", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBackends_ListsConfiguredEngines(t *testing.T) {
	app := testApp(
		backend.NewNamedMockEngine("llamacpp"),
		backend.NewNamedMockEngine("gpt4all"),
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/backends", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Backends []string `json:"backends"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"llamacpp", "gpt4all"}, body.Backends)
}

func TestCORSPreflight(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("OPTIONS", "/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
