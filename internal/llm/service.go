package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGroq   Provider = "groq"
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
)

const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
	groqEndpoint   = "https://api.groq.com/openai/v1/chat/completions"
	ollamaEndpoint = "http://localhost:11434/api/generate"

	// Questions and evaluations are short; a tight cap keeps responses
	// to a single question or a small JSON object.
	maxCompletionTokens = 120

	requestTimeout = 60 * time.Second
)

// Service sends prompts to a configured completion provider. All failures
// are returned as errors; there is no nil-result sentinel.
type Service struct {
	provider   Provider
	apiKey     string
	model      string
	httpClient *http.Client
	gemini     *genai.Client
	logger     *zap.Logger
}

func NewService(ctx context.Context, provider, apiKey, model string, logger *zap.Logger) (*Service, error) {
	s := &Service{
		provider:   Provider(provider),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}

	switch s.provider {
	case ProviderOpenAI, ProviderGroq:
		if apiKey == "" {
			return nil, fmt.Errorf("%s provider requires an API key", provider)
		}
	case ProviderOllama:
		// Local daemon, no key.
	case ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create genai client: %w", err)
		}
		s.gemini = client
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}

	return s, nil
}

// Generate sends the prompt to the configured provider and returns the
// first completion's text.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	var response string
	var err error

	switch s.provider {
	case ProviderOpenAI:
		response, err = s.callChatCompletions(ctx, openAIEndpoint, prompt)
	case ProviderGroq:
		response, err = s.callChatCompletions(ctx, groqEndpoint, prompt)
	case ProviderOllama:
		response, err = s.callOllama(ctx, prompt)
	case ProviderGemini:
		response, err = s.callGemini(ctx, prompt)
	default:
		return "", fmt.Errorf("unknown provider: %s", s.provider)
	}

	if err != nil {
		s.logger.Warn("completion request failed",
			zap.String("provider", string(s.provider)),
			zap.String("model", s.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", err
	}

	s.logger.Debug("completion received",
		zap.String("provider", string(s.provider)),
		zap.Int("response_length", len(response)),
		zap.Duration("elapsed", time.Since(start)))

	return response, nil
}

func (s *Service) Model() string {
	return s.model
}

// callChatCompletions talks to any OpenAI-compatible chat endpoint
// (OpenAI itself and Groq share the wire format).
func (s *Service) callChatCompletions(ctx context.Context, endpoint, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"max_tokens": maxCompletionTokens,
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API error: %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("completion error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return result.Choices[0].Message.Content, nil
}

func (s *Service) callOllama(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":  s.model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"num_predict": maxCompletionTokens,
		},
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ollamaEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama connection failed (is ollama running?): %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error != "" {
		return "", fmt.Errorf("ollama error: %s", result.Error)
	}

	return result.Response, nil
}

func (s *Service) callGemini(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: maxCompletionTokens,
	}

	resp, err := s.gemini.Models.GenerateContent(ctx, s.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			return part.Text, nil
		}
	}

	return "", fmt.Errorf("gemini returned empty response")
}
