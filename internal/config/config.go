package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// LLM Configuration
	LLMProvider string // "openai", "groq", "ollama", "gemini"
	LLMModel    string
	LLMAPIKey   string

	// NER sidecar endpoint; empty disables NER and extraction
	// falls back to keyword matching only.
	NERServiceURL string

	// Static front end
	StaticDir string
	IndexFile string

	// Logging
	LogJSON  bool
	LogDebug bool
}

func Load() *Config {
	// Missing .env is fine, plain environment variables still apply.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "groq"
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	apiKey := ""
	switch provider {
	case "groq":
		apiKey = os.Getenv("GROQ_API_KEY")
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/static"
	}

	indexFile := os.Getenv("INDEX_FILE")
	if indexFile == "" {
		indexFile = "./web/index.html"
	}

	return &Config{
		Port:          port,
		LLMProvider:   provider,
		LLMModel:      model,
		LLMAPIKey:     apiKey,
		NERServiceURL: os.Getenv("NER_SERVICE_URL"),
		StaticDir:     staticDir,
		IndexFile:     indexFile,
		LogJSON:       os.Getenv("LOG_JSON") == "true",
		LogDebug:      os.Getenv("LOG_DEBUG") == "true",
	}
}
