package eventlog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/asengupta/notequiz/internal/quiz"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_RecordAndRecent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	attempts := []quiz.Attempt{
		{
			RequestID:   "req-1",
			Engine:      "llamacpp",
			Status:      quiz.AttemptUnavailable,
			Latency:     5 * time.Millisecond,
			Err:         errors.New("model file missing"),
			PromptChars: 240,
		},
		{
			RequestID:   "req-1",
			Engine:      "gpt4all",
			Status:      quiz.AttemptSucceeded,
			Latency:     1200 * time.Millisecond,
			PromptChars: 240,
			OutputChars: 512,
		},
	}
	for _, a := range attempts {
		if err := s.Record(ctx, a); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	entries, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Newest first.
	if entries[0].Engine != "gpt4all" || entries[0].Status != "succeeded" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].LatencyMs != 1200 {
		t.Errorf("expected latency 1200ms, got %d", entries[0].LatencyMs)
	}
	if entries[1].Error != "model file missing" {
		t.Errorf("expected error message, got %q", entries[1].Error)
	}
	if entries[0].RequestID != "req-1" || entries[1].RequestID != "req-1" {
		t.Error("request IDs should round-trip")
	}
	if entries[0].Timestamp.IsZero() {
		t.Error("timestamp should round-trip")
	}
}

func TestStore_RecentLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.Record(ctx, quiz.Attempt{RequestID: "r", Engine: "mock", Status: quiz.AttemptFailed}); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestStore_EmptyLog(t *testing.T) {
	s := testStore(t)

	entries, err := s.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestOpen_Reopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Record(context.Background(), quiz.Attempt{RequestID: "r", Engine: "mock", Status: quiz.AttemptSucceeded}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	entries, err := s2.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected the recorded entry to persist, got %d", len(entries))
	}
}
