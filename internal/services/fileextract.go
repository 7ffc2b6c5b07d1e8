package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type FileExtractService interface {
	ExtractText(fileName, contentType string, data []byte) (string, error)
}

type fileExtractService struct {
	log *logger.Logger
}

func NewFileExtractService(log *logger.Logger) FileExtractService {
	return &fileExtractService{log: log.With("service", "FileExtractService")}
}

// ExtractText pulls plain text out of an uploaded lesson-plan file. DOCX is
// unpacked locally; plain text and markdown pass through. PDF stays rejected
// until a deployable extractor is picked.
func (fs *fileExtractService) ExtractText(fileName, contentType string, data []byte) (string, error) {
	lowerName := strings.ToLower(fileName)

	switch {
	case contentType == "application/pdf" || strings.HasSuffix(lowerName, ".pdf"):
		return "", newValidationError("PDF processing temporarily disabled for deployment compatibility. Please use DOCX or TXT files.")
	case strings.Contains(contentType, "word") || strings.HasSuffix(lowerName, ".docx"):
		return extractDocxText(data)
	case strings.HasPrefix(contentType, "text/") ||
		strings.HasSuffix(lowerName, ".txt") ||
		strings.HasSuffix(lowerName, ".md"):
		return string(data), nil
	default:
		return "", newValidationError("Unsupported file type. Currently supports DOCX and TXT files only.")
	}
}

// DOCX is a zip archive; the document body lives in word/document.xml with
// text in w:t elements and paragraph boundaries at w:p elements.
func extractDocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("open document.xml: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("docx archive has no word/document.xml")
	}
	defer docXML.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(docXML)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode document.xml: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
