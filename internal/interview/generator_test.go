package interview

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
)

// stubGenerator replays a fixed sequence of responses, cycling when
// exhausted.
type stubGenerator struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return "", s.err
	}
	response := s.responses[s.calls%len(s.responses)]
	s.calls++
	return response, nil
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestGenerator(stub *stubGenerator) (*QuestionGenerator, *SessionStore) {
	store := NewSessionStore(0)
	return NewQuestionGenerator(stub, store, zap.NewNop()), store
}

func TestGenerateDeduplicatesWithinSession(t *testing.T) {
	stub := &stubGenerator{responses: []string{"q1", "q2", "q3", "q4", "q5"}}
	gen, _ := newTestGenerator(stub)

	req := QuestionRequest{
		Skills:    []string{"python"},
		Level:     "beginner",
		User:      "student",
		Interview: "technical_interview",
	}

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		question, err := gen.Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error on call %d: %v", i, err)
		}
		if seen[question] {
			t.Fatalf("duplicate question returned: %q", question)
		}
		seen[question] = true
	}
}

func TestGenerateGivesUpOnPersistentDuplicate(t *testing.T) {
	stub := &stubGenerator{responses: []string{"the only question"}}
	gen, store := newTestGenerator(stub)

	req := QuestionRequest{Skills: []string{"docker"}}

	first, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != "the only question" {
		t.Fatalf("unexpected question: %q", first)
	}

	second, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != "the only question" {
		t.Fatalf("expected duplicate to be accepted after retries, got %q", second)
	}

	// 1 call for the first request, 5 attempts for the second.
	if got := stub.callCount(); got != 6 {
		t.Fatalf("expected 6 completion calls, got %d", got)
	}

	if history := store.History(DefaultSessionKey); len(history) != 2 {
		t.Fatalf("expected 2 recorded questions, got %d", len(history))
	}
}

func TestGenerateCompletionFailureIsTerminal(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	gen, store := newTestGenerator(stub)

	_, err := gen.Generate(context.Background(), QuestionRequest{Skills: []string{"sql"}})
	if err == nil {
		t.Fatal("expected error from failing completion service")
	}

	if history := store.History(DefaultSessionKey); len(history) != 0 {
		t.Fatalf("failed generation must not be recorded, history has %d entries", len(history))
	}
}

func TestGenerateRequiresSkills(t *testing.T) {
	gen, _ := newTestGenerator(&stubGenerator{responses: []string{"q"}})

	_, err := gen.Generate(context.Background(), QuestionRequest{})
	if !errors.Is(err, ErrNoSkills) {
		t.Fatalf("expected ErrNoSkills, got %v", err)
	}
}

func TestGenerateTrimsWhitespace(t *testing.T) {
	stub := &stubGenerator{responses: []string{"  What is a goroutine?  \n"}}
	gen, _ := newTestGenerator(stub)

	question, err := gen.Generate(context.Background(), QuestionRequest{Skills: []string{"git"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if question != "What is a goroutine?" {
		t.Fatalf("expected trimmed question, got %q", question)
	}
}

func TestGenerateSessionsAreIsolated(t *testing.T) {
	stub := &stubGenerator{responses: []string{"same question"}}
	gen, store := newTestGenerator(stub)

	for _, sessionID := range []string{"alice", "bob"} {
		_, err := gen.Generate(context.Background(), QuestionRequest{
			Skills:    []string{"react"},
			SessionID: sessionID,
		})
		if err != nil {
			t.Fatalf("unexpected error for session %s: %v", sessionID, err)
		}
	}

	// Each session sees the question for the first time, so no retries.
	if got := stub.callCount(); got != 2 {
		t.Fatalf("expected 2 completion calls, got %d", got)
	}

	if len(store.History("alice")) != 1 || len(store.History("bob")) != 1 {
		t.Fatal("expected one question per session")
	}
}
