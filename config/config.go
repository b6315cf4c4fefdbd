package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	DBPath        string
	UploadDir     string
	MaxUploadMB   int
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	IngestDomains string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	maxMB, err := strconv.Atoi(get("MAX_UPLOAD_MB", "50"))
	if err != nil || maxMB <= 0 {
		maxMB = 50
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		DBPath:        get("DB_PATH", "assistant.db"),
		UploadDir:     get("UPLOAD_DIR", "uploads"),
		MaxUploadMB:   maxMB,
		OpenAIAPIKey:  get("OPENAI_API_KEY", ""),
		OpenAIBaseURL: get("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   get("OPENAI_MODEL", "gpt-3.5-turbo"),
		IngestDomains: get("INGEST_ALLOWED_DOMAINS", ""),
	}
	log.Printf("[cfg] port=%s db=%s uploads=%s model=%s remote=%v",
		cfg.Port, cfg.DBPath, cfg.UploadDir, cfg.OpenAIModel, cfg.OpenAIAPIKey != "")
	return cfg
}
