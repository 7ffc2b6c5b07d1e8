package services

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractTextPlainText(t *testing.T) {
	svc := NewFileExtractService(logger.NewNop())

	text, err := svc.ExtractText("lesson.txt", "text/plain", []byte("Photosynthesis basics"))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "Photosynthesis basics" {
		t.Fatalf("text: %q", text)
	}
}

func TestExtractTextMarkdownByExtension(t *testing.T) {
	svc := NewFileExtractService(logger.NewNop())

	text, err := svc.ExtractText("lesson.md", "application/octet-stream", []byte("# Fractions"))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if text != "# Fractions" {
		t.Fatalf("text: %q", text)
	}
}

func TestExtractTextDocx(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>The water cycle</w:t></w:r></w:p>
    <w:p><w:r><w:t>has </w:t></w:r><w:r><w:t>three stages.</w:t></w:r></w:p>
  </w:body>
</w:document>`
	svc := NewFileExtractService(logger.NewNop())

	text, err := svc.ExtractText("lesson.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", buildDocx(t, docXML))
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	want := "The water cycle\nhas three stages."
	if text != want {
		t.Fatalf("text: %q, want %q", text, want)
	}
}

func TestExtractTextDocxWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("word/styles.xml"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	svc := NewFileExtractService(logger.NewNop())
	_, err := svc.ExtractText("lesson.docx", "", buf.Bytes())
	if err == nil || !strings.Contains(err.Error(), "word/document.xml") {
		t.Fatalf("expected missing document.xml error, got %v", err)
	}
}

func TestExtractTextPDFRejected(t *testing.T) {
	svc := NewFileExtractService(logger.NewNop())

	_, err := svc.ExtractText("lesson.pdf", "application/pdf", []byte("%PDF-1.7"))
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(vErr.Message, "PDF processing temporarily disabled") {
		t.Fatalf("message: %q", vErr.Message)
	}
}

func TestExtractTextUnsupportedType(t *testing.T) {
	svc := NewFileExtractService(logger.NewNop())

	_, err := svc.ExtractText("deck.pptx", "application/vnd.ms-powerpoint", nil)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(vErr.Message, "Unsupported file type") {
		t.Fatalf("message: %q", vErr.Message)
	}
}
