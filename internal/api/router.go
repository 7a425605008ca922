package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"interview-coach/internal/config"
)

func NewRouter(a *API, cfg *config.Config, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler())

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Single-page front end plus its assets
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, cfg.IndexFile)
	})

	// API endpoints
	mux.HandleFunc("/extract_skills", a.ExtractSkillsHandler)
	mux.HandleFunc("/generate_questions", a.GenerateQuestionsHandler)
	mux.HandleFunc("/evaluate_answer", a.EvaluateAnswerHandler)

	return withCORS(withRequestLogging(logger, mux))
}
