package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/internal/entity"
	"github.com/gagni555/course-content-to-study-material-generator/internal/llm"
	"github.com/gagni555/course-content-to-study-material-generator/internal/retry"
)

// ExtractConcepts implements llm.ConceptExtractor using chat/completions with
// a JSON-schema constrained response. Temperature is pinned to 0 so identical
// input and model version yield identical output.
func (c *Client) ExtractConcepts(ctx context.Context, req llm.AnalyzeRequest) (entity.AnalysisResult, entity.Usage, error) {
	rid := uuid.New().String()
	start := time.Now()
	model := c.modelFor(req.Model)

	c.logger.Info("llm.analyze.start",
		"req_id", rid,
		"model", model,
		"text_len", len(req.DocumentText),
		"topic", req.Topic,
	)

	schema := llm.BuildAnalysisJSONSchema()
	body := map[string]any{
		"model":           model,
		"temperature":     0,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildAnalysisSystemPrompt(req)},
			{"role": "user", "content": req.DocumentText + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	content, usage, err := c.chat(ctx, rid, model, body)
	if err != nil {
		return entity.AnalysisResult{}, usage, err
	}

	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.logger.Error("llm.analyze.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.AnalysisResult{}, usage, fmt.Errorf("schema validation failed: %w", err)
	}

	var out entity.AnalysisResult
	if err := json.Unmarshal(content, &out); err != nil {
		return entity.AnalysisResult{}, usage, fmt.Errorf("unmarshal analysis: %w", err)
	}

	c.logger.Info("llm.analyze.ok",
		"req_id", rid,
		"concepts", len(out.Concepts),
		"relationships", len(out.Relationships),
		"tokens", usage.TotalTokens(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, usage, nil
}

// GenerateGuide implements llm.GuideGenerator.
func (c *Client) GenerateGuide(ctx context.Context, req llm.GenerateRequest) (entity.StudyGuideContent, entity.Usage, error) {
	rid := uuid.New().String()
	start := time.Now()
	model := c.modelFor(req.Model)

	c.logger.Info("llm.generate.start",
		"req_id", rid,
		"model", model,
		"text_len", len(req.DocumentText),
		"concepts", len(req.Analysis.Concepts),
		"detail_level", req.Preferences.DetailLevel,
	)

	schema := llm.BuildStudyGuideJSONSchema()
	body := map[string]any{
		"model":           model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildGenerationSystemPrompt(req)},
			{"role": "user", "content": llm.BuildGenerationUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	content, usage, err := c.chat(ctx, rid, model, body)
	if err != nil {
		return entity.StudyGuideContent{}, usage, err
	}

	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.logger.Error("llm.generate.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.StudyGuideContent{}, usage, fmt.Errorf("schema validation failed: %w", err)
	}

	var out entity.StudyGuideContent
	if err := json.Unmarshal(content, &out); err != nil {
		return entity.StudyGuideContent{}, usage, fmt.Errorf("unmarshal guide: %w", err)
	}

	c.logger.Info("llm.generate.ok",
		"req_id", rid,
		"summary_sections", len(out.SummarySections),
		"questions", len(out.Questions),
		"concepts", len(out.Concepts),
		"tokens", usage.TotalTokens(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, usage, nil
}

// chat posts a chat/completions request and returns the first choice's
// content plus reconciled usage. HTTP failures come back classified.
func (c *Client) chat(ctx context.Context, rid, model string, body map[string]any) ([]byte, entity.Usage, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("llm.chat.http_error", "req_id", rid, "model", model, "error", err)
		return nil, entity.Usage{}, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int64 `json:"prompt_tokens"`
			CompletionTokens int64 `json:"completion_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, entity.Usage{}, fmt.Errorf("decode response: %w", err)
	}
	usage := entity.Usage{
		PromptTokens:     cc.Usage.PromptTokens,
		CompletionTokens: cc.Usage.CompletionTokens,
		Model:            model,
	}
	usage.CostUSD = modelCostUSD(model, usage.TotalTokens())

	if len(cc.Choices) == 0 {
		return nil, usage, retry.NewClassified(retry.Transient, fmt.Errorf("no choices in response"))
	}
	return []byte(strings.TrimSpace(cc.Choices[0].Message.Content)), usage, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	if err := c.gate.Acquire(ctx); err != nil {
		return nil, retry.NewClassified(retry.Transient, fmt.Errorf("waiting for call slot: %w", err))
	}
	defer c.gate.Release()

	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, retry.NewClassified(retry.Transient, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, retry.NewClassified(retry.Transient, fmt.Errorf("read response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return raw, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, retry.NewClassified(retry.RateLimited,
			fmt.Errorf("status 429: %s", truncate(string(raw), 512)))
	case resp.StatusCode >= 500:
		return nil, retry.NewClassified(retry.Transient,
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(raw), 512)))
	default:
		return nil, retry.NewClassified(retry.Permanent,
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(raw), 512)))
	}
}

func (c *Client) modelFor(override string) string {
	if override != "" {
		return override
	}
	return c.cfg.Model
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
