package interview

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
)

const evaluationFailedMessage = "Evaluation failed."

// Evaluation is the scored result of one question/answer pair. Accuracy is
// whatever number the model returned; it is not clamped to 0-100.
type Evaluation struct {
	Accuracy float64 `json:"accuracy"`
	Feedback string  `json:"feedback"`
}

type AnswerEvaluator struct {
	llm    TextGenerator
	logger *zap.Logger
}

func NewAnswerEvaluator(llm TextGenerator, logger *zap.Logger) *AnswerEvaluator {
	return &AnswerEvaluator{
		llm:    llm,
		logger: logger,
	}
}

// Evaluate scores an answer through the completion service. Parsing is
// best-effort: any failure collapses into a zero-score result carrying the
// raw response as feedback when one exists.
func (e *AnswerEvaluator) Evaluate(ctx context.Context, question, answer string) Evaluation {
	prompt := buildEvaluationPrompt(question, answer)

	raw, err := e.llm.Generate(ctx, prompt)
	if err != nil {
		e.logger.Warn("evaluation request failed", zap.Error(err))
		return Evaluation{Accuracy: 0, Feedback: evaluationFailedMessage}
	}

	return parseEvaluation(raw)
}

// parseEvaluation runs a two-stage parse: the whole (fence-stripped)
// response first, then the first balanced {...} span inside it.
func parseEvaluation(raw string) Evaluation {
	clean := stripMarkdownFences(raw)

	var result Evaluation
	if err := json.Unmarshal([]byte(clean), &result); err == nil {
		return result
	}

	if span, ok := firstJSONObject(clean); ok {
		if err := json.Unmarshal([]byte(span), &result); err == nil {
			return result
		}
	}

	feedback := strings.TrimSpace(raw)
	if feedback == "" {
		feedback = evaluationFailedMessage
	}
	return Evaluation{Accuracy: 0, Feedback: feedback}
}

// firstJSONObject returns the first balanced top-level {...} span. Brace
// counting ignores braces inside string literals.
func firstJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

// stripMarkdownFences removes a surrounding ```json ... ``` block, which
// some models add despite instructions.
func stripMarkdownFences(s string) string {
	clean := strings.TrimSpace(s)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
