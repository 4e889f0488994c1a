package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Parser     ParserConfig
	LLM        LLMConfig
	Pipeline   PipelineConfig
	Budget     BudgetConfig
	Checkpoint CheckpointConfig
	Notifier   NotifierConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ParserConfig holds document-parser configuration
type ParserConfig struct {
	PdfToText   string
	Tesseract   string
	Pandoc      string
	TessdataDir string
	UploadDir   string
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	PrimaryModel  string
	FallbackModel string
	APIKey        string
	BaseURL       string
	Temperature   float32
	Timeout       time.Duration
}

// PipelineConfig holds orchestration behavior knobs.
type PipelineConfig struct {
	Workers            int
	QueueSize          int
	MaxExternalCalls   int
	StageTimeout       time.Duration
	ReviewRescore      bool
	AcceptThresholds   StageThresholds
	RejectThresholds   StageThresholds
	TransientAttempts  int
	TransientDelay     time.Duration
	RateLimitAttempts  int
	RateLimitBaseDelay time.Duration
	RateLimitMaxDelay  time.Duration
}

// StageThresholds carries one confidence bound per stage kind.
type StageThresholds struct {
	Ingestion  float32
	Analysis   float32
	Generation float32
	QA         float32
}

// BudgetConfig holds per-user daily consumption caps.
type BudgetConfig struct {
	DailyTokenLimit int64
	DailySpendLimit float64 // dollar-equivalent
}

// CheckpointConfig holds checkpoint store configuration.
type CheckpointConfig struct {
	Path        string
	TTL         time.Duration
	AuditRetain bool
}

// NotifierConfig holds operator-alert configuration.
type NotifierConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Parser: ParserConfig{
			PdfToText:   getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Tesseract:   getEnv("TESSERACT_BIN", "tesseract"),
			Pandoc:      getEnv("PANDOC_BIN", "pandoc"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
		},
		LLM: LLMConfig{
			PrimaryModel:  getEnv("LLM_PRIMARY_MODEL", "gpt-4o"),
			FallbackModel: getEnv("LLM_FALLBACK_MODEL", "gpt-4o-mini"),
			APIKey:        getEnv("OPENAI_API_KEY", ""),
			BaseURL:       getEnv("OPENAI_BASE_URL", ""),
			Temperature:   getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:       getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Pipeline: PipelineConfig{
			Workers:          getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:        getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			MaxExternalCalls: getEnvAsInt("PIPELINE_MAX_EXTERNAL_CALLS", 5),
			StageTimeout:     getEnvAsDuration("PIPELINE_STAGE_TIMEOUT", 5*time.Minute),
			ReviewRescore:    getEnvAsBool("REVIEW_RESCORE_ENABLED", false),
			AcceptThresholds: StageThresholds{
				Ingestion:  getEnvAsFloat32("ACCEPT_THRESHOLD_INGESTION", 0.80),
				Analysis:   getEnvAsFloat32("ACCEPT_THRESHOLD_ANALYSIS", 0.80),
				Generation: getEnvAsFloat32("ACCEPT_THRESHOLD_GENERATION", 0.80),
				QA:         getEnvAsFloat32("ACCEPT_THRESHOLD_QA", 0.80),
			},
			RejectThresholds: StageThresholds{
				Ingestion:  getEnvAsFloat32("REJECT_THRESHOLD_INGESTION", 0.60),
				Analysis:   getEnvAsFloat32("REJECT_THRESHOLD_ANALYSIS", 0.60),
				Generation: getEnvAsFloat32("REJECT_THRESHOLD_GENERATION", 0.60),
				QA:         getEnvAsFloat32("REJECT_THRESHOLD_QA", 0.60),
			},
			TransientAttempts:  getEnvAsInt("RETRY_TRANSIENT_ATTEMPTS", 3),
			TransientDelay:     getEnvAsDuration("RETRY_TRANSIENT_DELAY", 500*time.Millisecond),
			RateLimitAttempts:  getEnvAsInt("RETRY_RATELIMIT_ATTEMPTS", 5),
			RateLimitBaseDelay: getEnvAsDuration("RETRY_RATELIMIT_BASE_DELAY", time.Second),
			RateLimitMaxDelay:  getEnvAsDuration("RETRY_RATELIMIT_MAX_DELAY", time.Minute),
		},
		Budget: BudgetConfig{
			DailyTokenLimit: getEnvAsInt64("BUDGET_DAILY_TOKENS", 500_000),
			DailySpendLimit: getEnvAsFloat64("BUDGET_DAILY_SPEND_USD", 10.0),
		},
		Checkpoint: CheckpointConfig{
			Path:        getEnv("CHECKPOINT_DB_PATH", "./checkpoints.db"),
			TTL:         getEnvAsDuration("CHECKPOINT_TTL", time.Hour),
			AuditRetain: getEnvAsBool("CHECKPOINT_AUDIT_RETAIN", false),
		},
		Notifier: NotifierConfig{
			WebhookURL: getEnv("ALERT_WEBHOOK_URL", ""),
			Timeout:    getEnvAsDuration("ALERT_WEBHOOK_TIMEOUT", 10*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.MaxExternalCalls <= 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_MAX_EXTERNAL_CALLS must be positive", ErrInvalidInput)
	}
	return nil
}
