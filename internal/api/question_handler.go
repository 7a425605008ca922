package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"interview-coach/internal/interview"
)

type generateQuestionsRequest struct {
	Skills    []string `json:"skills"`
	Level     string   `json:"level"`
	User      string   `json:"user"`
	Interview string   `json:"interview"`
	SessionID string   `json:"session_id"`
}

type generateQuestionsResponse struct {
	Question string `json:"question"`
}

type evaluateAnswerRequest struct {
	Skills   []string `json:"skills"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
}

// GenerateQuestionsHandler generates one interview question
// @Summary Generate an interview question
// @Description Generate one question for a random skill from the supplied list, deduplicated per session
// @Tags interview
// @Accept json
// @Produce json
// @Param request body generateQuestionsRequest true "Generation parameters"
// @Success 200 {object} generateQuestionsResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /generate_questions [post]
func (a *API) GenerateQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req generateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if req.Level == "" {
		req.Level = interview.DefaultLevel
	}
	if req.User == "" {
		req.User = interview.DefaultUser
	}
	if req.Interview == "" {
		req.Interview = interview.DefaultInterview
	}

	question, err := a.questions.Generate(r.Context(), interview.QuestionRequest{
		Skills:    req.Skills,
		Level:     req.Level,
		User:      req.User,
		Interview: req.Interview,
		SessionID: req.SessionID,
	})
	if errors.Is(err, interview.ErrNoSkills) {
		writeError(w, http.StatusBadRequest, "skills must not be empty")
		return
	}
	if err != nil {
		a.logger.Error("question generation failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "question generation failed")
		return
	}

	writeJSON(w, http.StatusOK, generateQuestionsResponse{Question: question})
}

// EvaluateAnswerHandler scores a candidate answer
// @Summary Evaluate an answer
// @Description Score a free-text answer to an interview question
// @Tags interview
// @Accept json
// @Produce json
// @Param request body evaluateAnswerRequest true "Question and answer"
// @Success 200 {object} interview.Evaluation
// @Failure 400 {object} map[string]string
// @Router /evaluate_answer [post]
func (a *API) EvaluateAnswerHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req evaluateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	result := a.evaluator.Evaluate(r.Context(), req.Question, req.Answer)

	writeJSON(w, http.StatusOK, result)
}
