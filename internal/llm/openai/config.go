package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gagni555/course-content-to-study-material-generator/internal/async"
)

// Config for the OpenAI-compatible chat client.
type Config struct {
	APIKey      string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string        // default https://api.openai.com/v1
	Model       string        // default model when the request does not pick one
	Temperature float32       // 0..2; analysis runs at 0 for determinism
	Timeout     time.Duration // http client timeout
	Gate        *async.Gate   // optional bound on in-flight provider calls
}

type Client struct {
	cfg    Config
	http   *http.Client
	gate   *async.Gate
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		gate:   cfg.Gate,
		logger: logger,
	}
}

// costPer1KTokens is a coarse blended price table for ledger reconciliation.
var costPer1KTokens = map[string]float64{
	"gpt-4o":      0.0100,
	"gpt-4o-mini": 0.0006,
}

func modelCostUSD(model string, tokens int64) float64 {
	price, ok := costPer1KTokens[model]
	if !ok {
		price = 0.0100
	}
	return price * float64(tokens) / 1000.0
}
