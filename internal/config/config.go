package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Auth. Empty disables API key checks.
	APIKey string

	// HTTP
	CORSOrigins []string
	FrontendDir string

	// Uploads
	UploadDir      string
	KeepUploads    bool
	MaxUploadBytes int64
	MinTextChars   int

	// Summarization
	Summarizer       SummarizerConfig
	ChunkMaxChars    int
	SummarizeTimeout time.Duration
	StatsWindow      time.Duration

	// Mindmap vocabulary
	VocabularyFile string
	Keywords       []string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int
	JobTTL       time.Duration

	// Logging
	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
}

// SummarizerConfig selects and configures the summarization backend.
type SummarizerConfig struct {
	Backend   string
	Model     string
	APIKey    string
	BaseURL   string
	MaxLength int
	MinLength int
}

// Load reads configuration from the environment, after loading .env if present.
func Load() Config {
	_ = godotenv.Load()

	backend := strings.ToLower(envOr("SUMMARIZER", "huggingface"))
	cfg := Config{
		Port: envOr("PORT", "5000"),

		APIKey: os.Getenv("DOCMAP_API_KEY"),

		CORSOrigins: envList("CORS_ORIGINS", []string{"*"}),
		FrontendDir: envOr("FRONTEND_DIR", "../frontend"),

		UploadDir:      envOr("UPLOAD_DIR", "uploads"),
		KeepUploads:    envBool("KEEP_UPLOADS", true),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 16*1024*1024),
		MinTextChars:   envInt("MIN_TEXT_CHARS", 50),

		Summarizer: SummarizerConfig{
			Backend:   backend,
			Model:     os.Getenv("SUMMARIZER_MODEL"),
			APIKey:    envOr("SUMMARIZER_API_KEY", backendAPIKey(backend)),
			BaseURL:   os.Getenv("SUMMARIZER_URL"),
			MaxLength: envInt("SUMMARY_MAX_LENGTH", 150),
			MinLength: envInt("SUMMARY_MIN_LENGTH", 30),
		},
		ChunkMaxChars:    envInt("CHUNK_MAX_CHARS", 1024),
		SummarizeTimeout: envDuration("SUMMARIZE_TIMEOUT", 5*time.Minute),
		StatsWindow:      envDuration("STATS_WINDOW", time.Hour),

		VocabularyFile: os.Getenv("VOCABULARY_FILE"),
		Keywords:       envList("KEYWORDS", nil),

		WorkerCount:  envInt("WORKER_COUNT", 2),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 50),
		JobTTL:       envDuration("JOB_TTL", time.Hour),

		LogLevel:      envOr("LOG_LEVEL", "info"),
		LogFile:       os.Getenv("LOG_FILE"),
		LogMaxSizeMB:  envInt("LOG_MAX_SIZE_MB", 15),
		LogMaxBackups: envInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: envInt("LOG_MAX_AGE_DAYS", 28),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = time.Hour
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = time.Hour
	}

	return cfg
}

func backendAPIKey(backend string) string {
	switch backend {
	case "claude":
		return os.Getenv("ANTHROPIC_API_KEY")
	case "huggingface":
		return os.Getenv("HF_API_TOKEN")
	}
	return ""
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

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
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

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// envList splits a comma-separated variable, dropping blank entries.
func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
