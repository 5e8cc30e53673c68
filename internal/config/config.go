package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Summarization backends.
const (
	BackendHuggingFace = "hf"
	BackendOpenAI      = "openai"
)

type Config struct {
	// Summarization backend
	Backend      string
	HFAPIKey     string
	HFModel      string
	OpenAIAPIKey string
	OpenAIModel  string

	// Input splitting
	SplitThresholdWords int
	ChunkWords          int
	BudgetRatio         float64

	// Run behavior
	Display  bool
	Save     bool
	SavePath string
	Slides   string // e.g. "2,5"; empty means the whole deck
	PerSlide bool

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	// A .env next to the binary is picked up if present.
	_ = godotenv.Load()

	cfg := Config{
		Backend:      envOr("DECKBRIEF_BACKEND", BackendHuggingFace),
		HFAPIKey:     os.Getenv("HF_API_KEY"),
		HFModel:      envOr("HF_MODEL", "sshleifer/distilbart-cnn-12-6"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  envOr("OPENAI_MODEL", "gpt-4o-mini"),

		SplitThresholdWords: envInt("SPLIT_THRESHOLD_WORDS", 1024),
		ChunkWords:          envInt("CHUNK_WORDS", 200),
		BudgetRatio:         envFloat("BUDGET_RATIO", 1.5),

		Display:  envBool("DISPLAY_REPORT", true),
		Save:     envBool("SAVE_REPORT", false),
		SavePath: envOr("SAVE_PATH", "deckbrief-report.txt"),
		Slides:   os.Getenv("DECKBRIEF_SLIDES"),
		PerSlide: envBool("PER_SLIDE", false),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.SplitThresholdWords <= 0 {
		cfg.SplitThresholdWords = 1024
	}
	if cfg.ChunkWords <= 0 {
		cfg.ChunkWords = 200
	}
	if cfg.BudgetRatio <= 1 {
		cfg.BudgetRatio = 1.5
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendHuggingFace:
		if c.HFAPIKey == "" {
			return fmt.Errorf("HF_API_KEY is required for the %s backend", BackendHuggingFace)
		}
	case BackendOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the %s backend", BackendOpenAI)
		}
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
