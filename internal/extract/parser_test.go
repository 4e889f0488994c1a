package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagni555/course-content-to-study-material-generator/internal/common"
)

type stubRunner struct {
	lastName string
	lastArgs []string
	stdout   string
	err      error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.lastName = name
	s.lastArgs = args
	return []byte(s.stdout), nil, s.err
}

func TestExtract_RejectsUnsupportedFormatBeforeAnyToolRuns(t *testing.T) {
	r := &stubRunner{stdout: "never"}
	p := NewParser(common.ParserConfig{}, r, nil)

	_, err := p.Extract(context.Background(), "/tmp/file.xlsx")
	if !common.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if r.lastName != "" {
		t.Fatalf("no external tool should run for a rejected format, ran %s", r.lastName)
	}
}

func TestExtract_PDFUsesPdftotextAndCountsPages(t *testing.T) {
	r := &stubRunner{stdout: "page one text\fpage two text"}
	p := NewParser(common.ParserConfig{PdfToText: "pdftotext"}, r, nil)

	res, err := p.Extract(context.Background(), "/tmp/lecture.pdf")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if r.lastName != "pdftotext" {
		t.Fatalf("expected pdftotext, ran %s", r.lastName)
	}
	if res.Pages != 2 {
		t.Fatalf("expected 2 pages, got %d", res.Pages)
	}
	if res.SourceType != "PDF" || res.Method != "pdf-text" {
		t.Fatalf("unexpected result meta: %+v", res)
	}
	if res.Text != "page one text\fpage two text" {
		t.Fatalf("source text was altered: %q", res.Text)
	}
	if res.WordCount != 6 {
		t.Fatalf("expected 6 words, got %d", res.WordCount)
	}
}

func TestExtract_ImageUsesTesseract(t *testing.T) {
	r := &stubRunner{stdout: "ocr text"}
	p := NewParser(common.ParserConfig{Tesseract: "tesseract", TessdataDir: "/usr/share/tessdata"}, r, nil)

	res, err := p.Extract(context.Background(), "/tmp/slide.png")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if r.lastName != "tesseract" {
		t.Fatalf("expected tesseract, ran %s", r.lastName)
	}
	found := false
	for _, a := range r.lastArgs {
		if a == "--tessdata-dir" {
			found = true
		}
	}
	if !found {
		t.Fatalf("tessdata dir not passed: %v", r.lastArgs)
	}
	if res.Confidence >= 0.95 {
		t.Fatalf("OCR output should carry reduced confidence, got %.2f", res.Confidence)
	}
}

func TestExtract_PlainTextReadDirectly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("verbatim source text"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := &stubRunner{}
	p := NewParser(common.ParserConfig{}, r, nil)
	res, err := p.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if r.lastName != "" {
		t.Fatalf("plain text must not call external tools")
	}
	if res.Text != "verbatim source text" {
		t.Fatalf("source text lost: %q", res.Text)
	}
	if res.Confidence != 1.0 {
		t.Fatalf("plain read should be fully confident, got %.2f", res.Confidence)
	}
}
