package interview

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"go.uber.org/zap"
)

func TestSessionStoreLazyCreation(t *testing.T) {
	store := NewSessionStore(0)

	first := store.get("k")
	second := store.get("k")
	if first != second {
		t.Fatal("expected the same session instance for one key")
	}
}

func TestSessionHistoryIsBounded(t *testing.T) {
	store := NewSessionStore(3)
	sess := store.get("k")

	sess.mu.Lock()
	for i := 0; i < 5; i++ {
		sess.record(fmt.Sprintf("q%d", i), store.maxHistory)
	}
	sess.mu.Unlock()

	history := store.History("k")
	if len(history) != 3 {
		t.Fatalf("expected history capped at 3, got %d", len(history))
	}
	if history[0] != "q2" || history[2] != "q4" {
		t.Fatalf("expected oldest entries evicted, got %v", history)
	}
}

func TestHistoryReturnsSnapshot(t *testing.T) {
	store := NewSessionStore(0)
	sess := store.get("k")

	sess.mu.Lock()
	sess.record("q1", store.maxHistory)
	sess.mu.Unlock()

	snapshot := store.History("k")
	snapshot[0] = "mutated"

	if store.History("k")[0] != "q1" {
		t.Fatal("History must return an independent copy")
	}
}

func TestConcurrentGenerationDoesNotLoseUpdates(t *testing.T) {
	stub := &stubGenerator{responses: func() []string {
		responses := make([]string, 50)
		for i := range responses {
			responses[i] = fmt.Sprintf("question %d", i)
		}
		return responses
	}()}

	store := NewSessionStore(0)
	gen := NewQuestionGenerator(stub, store, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gen.Generate(context.Background(), QuestionRequest{Skills: []string{"nlp"}})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if history := store.History(DefaultSessionKey); len(history) != 20 {
		t.Fatalf("expected 20 recorded questions, got %d", len(history))
	}
}
