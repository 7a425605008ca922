package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "interview-coach/docs" // Swagger docs
	"interview-coach/internal/api"
	"interview-coach/internal/config"
	"interview-coach/internal/logger"
)

// @title Interview Coach API
// @version 1.0
// @description Resume skill extraction, interview question generation and answer evaluation

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatal("logger init:", err)
	}
	defer zlog.Sync()

	apiSrv, err := api.NewAPI(context.Background(), cfg, zlog)
	if err != nil {
		zlog.Fatal("api init failed", zap.Error(err))
	}
	router := api.NewRouter(apiSrv, cfg, zlog)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,  // file uploads
		WriteTimeout: 120 * time.Second, // completion calls
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			zlog.Warn("server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	zlog.Info("API server listening",
		zap.String("port", cfg.Port),
		zap.String("llm_provider", cfg.LLMProvider),
		zap.String("llm_model", cfg.LLMModel))

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal("server failed", zap.Error(err))
	}

	<-idleConnsClosed
}
