package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Entity is one labeled span returned by the NER model.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer abstracts the external named-entity recognition service.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// Client talks to an NER sidecar over HTTP: POST {"text": ...} to the
// configured endpoint, expecting {"entities": [{"text","label"}]}.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Recognize(ctx context.Context, text string) ([]Entity, error) {
	reqBody, _ := json.Marshal(map[string]string{"text": text})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ner request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ner service error: %d", resp.StatusCode)
	}

	var result struct {
		Entities []Entity `json:"entities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode ner response: %w", err)
	}

	return result.Entities, nil
}
