package ner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRecognizeParsesEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Text != "Python developer" {
			t.Errorf("unexpected text: %q", req.Text)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"entities": []map[string]string{
				{"text": "Python", "label": "PROGRAMMING_LANGUAGE"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	entities, err := client.Recognize(context.Background(), "Python developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(entities))
	}
	if entities[0].Text != "Python" || entities[0].Label != "PROGRAMMING_LANGUAGE" {
		t.Fatalf("unexpected entity: %+v", entities[0])
	}
}

func TestRecognizeReportsServiceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	if _, err := client.Recognize(context.Background(), "text"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestRecognizeUnreachableService(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond)

	if _, err := client.Recognize(context.Background(), "text"); err == nil {
		t.Fatal("expected error for unreachable service")
	}
}
