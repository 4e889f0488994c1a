package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
)

// Parser implements TextExtractor over external conversion binaries.
// pdftotext for PDFs, tesseract for images, pandoc for DOCX; plain files are
// read directly.
type Parser struct {
	cfg    common.ParserConfig
	runner Runner
	logger *slog.Logger
}

func NewParser(cfg common.ParserConfig, runner Runner, logger *slog.Logger) *Parser {
	if runner == nil {
		runner = NewExecRunner()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.PdfToText == "" {
		cfg.PdfToText = "pdftotext"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pandoc == "" {
		cfg.Pandoc = "pandoc"
	}
	return &Parser{cfg: cfg, runner: runner, logger: logger}
}

// Extract parses the document at path into normalized text. The format is
// inferred from the extension; disallowed formats fail with a validation
// error before any external tool runs.
func (p *Parser) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()

	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		return TextExtractionResult{}, common.NewValidationError(
			fmt.Sprintf("unsupported format: %s", filepath.Ext(path)))
	}

	var (
		res TextExtractionResult
		err error
	)
	switch format {
	case "PDF":
		res, err = p.extractPDF(ctx, path)
	case "IMAGE":
		res, err = p.extractImage(ctx, path)
	case "DOCX":
		res, err = p.extractDocx(ctx, path)
	default: // TXT, MD
		res, err = p.extractPlain(path)
	}
	if err != nil {
		return res, err
	}

	res.SourceType = format
	res.WordCount = len(strings.Fields(res.Text))
	res.Duration = time.Since(start)
	if res.Text == "" {
		res.Warnings = append(res.Warnings, "no text extracted")
		res.Confidence = 0
	}
	p.logger.Info("extract.ok",
		"path", path,
		"format", format,
		"method", res.Method,
		"pages", res.Pages,
		"words", res.WordCount,
		"confidence", res.Confidence,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func (p *Parser) extractPDF(ctx context.Context, path string) (TextExtractionResult, error) {
	out, _, err := p.runner.Run(ctx, p.cfg.PdfToText, "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("pdftotext: %w", err)
	}
	text := string(out)
	return TextExtractionResult{
		Text:       text,
		Pages:      strings.Count(text, "\f") + 1,
		Method:     "pdf-text",
		Confidence: 0.95, // digital text layer, not OCR
	}, nil
}

func (p *Parser) extractImage(ctx context.Context, path string) (TextExtractionResult, error) {
	args := []string{path, "stdout", "-l", "eng"}
	if p.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", p.cfg.TessdataDir)
	}
	out, _, err := p.runner.Run(ctx, p.cfg.Tesseract, args...)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("tesseract: %w", err)
	}
	return TextExtractionResult{
		Text:       string(out),
		Pages:      1,
		Method:     "image-ocr",
		Language:   "eng",
		Confidence: 0.70, // OCR output needs downstream scrutiny
	}, nil
}

func (p *Parser) extractDocx(ctx context.Context, path string) (TextExtractionResult, error) {
	out, _, err := p.runner.Run(ctx, p.cfg.Pandoc, "-f", "docx", "-t", "plain", path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("pandoc: %w", err)
	}
	return TextExtractionResult{
		Text:       string(out),
		Pages:      1,
		Method:     "docx-convert",
		Confidence: 0.95,
	}, nil
}

func (p *Parser) extractPlain(path string) (TextExtractionResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("read file: %w", err)
	}
	return TextExtractionResult{
		Text:       string(b),
		Pages:      1,
		Method:     "plain-read",
		Confidence: 1.0,
	}, nil
}
