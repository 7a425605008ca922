package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"interview-coach/internal/config"
	"interview-coach/internal/interview"
	"interview-coach/internal/llm"
	"interview-coach/internal/ner"
	"interview-coach/internal/resume"
	"interview-coach/internal/skills"
)

const nerTimeout = 15 * time.Second

type API struct {
	parser    *resume.Parser
	extractor *skills.Extractor
	questions *interview.QuestionGenerator
	evaluator *interview.AnswerEvaluator
	logger    *zap.Logger
}

func NewAPI(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*API, error) {
	llmService, err := llm.NewService(ctx, cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel, logger)
	if err != nil {
		return nil, err
	}

	var recognizer ner.Recognizer
	if cfg.NERServiceURL != "" {
		recognizer = ner.NewClient(cfg.NERServiceURL, nerTimeout)
	} else {
		logger.Info("NER_SERVICE_URL not set, skill extraction uses keyword matching only")
	}

	sessions := interview.NewSessionStore(0)

	return &API{
		parser:    resume.NewParser(),
		extractor: skills.NewExtractor(recognizer, logger),
		questions: interview.NewQuestionGenerator(llmService, sessions, logger),
		evaluator: interview.NewAnswerEvaluator(llmService, logger),
		logger:    logger,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
