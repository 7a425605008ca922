package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestEvaluateRecoversEmbeddedJSON(t *testing.T) {
	stub := &stubGenerator{responses: []string{
		`Here is the result: {"accuracy": 82, "feedback": "Good answer"}`,
	}}
	evaluator := NewAnswerEvaluator(stub, zap.NewNop())

	result := evaluator.Evaluate(context.Background(), "What is SQL?", "A query language.")

	assert.Equal(t, float64(82), result.Accuracy)
	assert.Equal(t, "Good answer", result.Feedback)
}

func TestEvaluateParsesBareJSON(t *testing.T) {
	stub := &stubGenerator{responses: []string{
		`{"accuracy": 100, "feedback": "Perfect"}`,
	}}
	evaluator := NewAnswerEvaluator(stub, zap.NewNop())

	result := evaluator.Evaluate(context.Background(), "q", "a")

	assert.Equal(t, float64(100), result.Accuracy)
	assert.Equal(t, "Perfect", result.Feedback)
}

func TestEvaluateStripsMarkdownFences(t *testing.T) {
	stub := &stubGenerator{responses: []string{
		"```json\n{\"accuracy\": 55, \"feedback\": \"Partially correct\"}\n```",
	}}
	evaluator := NewAnswerEvaluator(stub, zap.NewNop())

	result := evaluator.Evaluate(context.Background(), "q", "a")

	assert.Equal(t, float64(55), result.Accuracy)
	assert.Equal(t, "Partially correct", result.Feedback)
}

func TestEvaluateFallsBackToRawResponse(t *testing.T) {
	stub := &stubGenerator{responses: []string{"I cannot evaluate this."}}
	evaluator := NewAnswerEvaluator(stub, zap.NewNop())

	result := evaluator.Evaluate(context.Background(), "q", "a")

	assert.Equal(t, float64(0), result.Accuracy)
	assert.Equal(t, "I cannot evaluate this.", result.Feedback)
}

func TestEvaluateGatewayFailure(t *testing.T) {
	stub := &stubGenerator{err: errors.New("timeout")}
	evaluator := NewAnswerEvaluator(stub, zap.NewNop())

	result := evaluator.Evaluate(context.Background(), "q", "a")

	assert.Equal(t, float64(0), result.Accuracy)
	assert.Equal(t, "Evaluation failed.", result.Feedback)
}

func TestFirstJSONObjectBalancesBraces(t *testing.T) {
	span, ok := firstJSONObject(`prefix {"feedback": "mind the {braces}", "accuracy": 7} {"other": 1}`)

	assert.True(t, ok)
	assert.Equal(t, `{"feedback": "mind the {braces}", "accuracy": 7}`, span)
}

func TestFirstJSONObjectMissing(t *testing.T) {
	_, ok := firstJSONObject("no object here")
	assert.False(t, ok)
}

func TestParseEvaluationMalformedJSON(t *testing.T) {
	result := parseEvaluation(`{"accuracy": not-a-number}`)

	assert.Equal(t, float64(0), result.Accuracy)
	assert.Equal(t, `{"accuracy": not-a-number}`, result.Feedback)
}
