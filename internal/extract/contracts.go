package extract

import (
	"context"
	"time"
)

// TextExtractor is the ingestion capability: document file -> normalized text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	WordCount  int
	SourceType string // "PDF" | "DOCX" | "IMAGE" | "TXT" | "MD"
	Method     string // "pdf-text" | "docx-convert" | "image-ocr" | "plain-read"
	Language   string
	Confidence float32
	Duration   time.Duration
	Warnings   []string
}
