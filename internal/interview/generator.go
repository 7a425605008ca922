package interview

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

// maxGenerateAttempts caps the deduplication loop. After exhausting the
// attempts the final candidate is accepted even if it is a duplicate.
const maxGenerateAttempts = 5

var ErrNoSkills = errors.New("at least one skill is required")

// TextGenerator is the completion-service boundary consumed by the
// interview components.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// QuestionRequest carries the parameters of one question-generation call.
// One skill is chosen at random from Skills per call.
type QuestionRequest struct {
	Skills    []string
	Level     string
	User      string
	Interview string
	SessionID string
}

type QuestionGenerator struct {
	llm      TextGenerator
	sessions *SessionStore
	logger   *zap.Logger
}

func NewQuestionGenerator(llm TextGenerator, sessions *SessionStore, logger *zap.Logger) *QuestionGenerator {
	return &QuestionGenerator{
		llm:      llm,
		sessions: sessions,
		logger:   logger,
	}
}

// Generate produces one interview question, avoiding questions already
// issued to the same session. A completion failure is terminal for the
// request.
func (g *QuestionGenerator) Generate(ctx context.Context, req QuestionRequest) (string, error) {
	if len(req.Skills) == 0 {
		return "", ErrNoSkills
	}

	skill := req.Skills[rand.Intn(len(req.Skills))]
	prompt := buildQuestionPrompt(skill, req.Level, req.User, req.Interview)

	sessionKey := req.SessionID
	if sessionKey == "" {
		sessionKey = DefaultSessionKey
	}

	sess := g.sessions.get(sessionKey)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	var question string
	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {
		candidate, err := g.llm.Generate(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("generate question: %w", err)
		}

		question = candidate
		if !sess.contains(question) {
			break
		}

		g.logger.Debug("duplicate question, regenerating",
			zap.String("session", sessionKey),
			zap.Int("attempt", attempt))
	}

	sess.record(question, g.sessions.maxHistory)

	g.logger.Info("question generated",
		zap.String("session", sessionKey),
		zap.String("skill", skill),
		zap.String("level", req.Level),
		zap.String("interview", req.Interview))

	return strings.TrimSpace(question), nil
}
