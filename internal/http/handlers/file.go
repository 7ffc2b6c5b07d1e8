package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/focusbridge/focusbridge-backend/internal/http/response"
	"github.com/focusbridge/focusbridge-backend/internal/services"
)

// Uploaded lesson-plan files are capped well below gin's default body limit.
const maxUploadBytes = 10 << 20

type FileHandler struct {
	fileExtractService services.FileExtractService
}

func NewFileHandler(fileExtractService services.FileExtractService) *FileHandler {
	return &FileHandler{fileExtractService: fileExtractService}
}

// ProcessFile extracts plain text from an uploaded DOCX or TXT file so the
// client can feed it into lesson creation.
func (fh *FileHandler) ProcessFile(c *gin.Context) {
	rd := requireTeacher(c)
	if rd == nil {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("missing file upload"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.RespondError(c, http.StatusBadRequest, "file_too_large", errors.New("file exceeds 10MB limit"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	text, err := fh.fileExtractService.ExtractText(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"text":   text,
		"length": len(text),
	})
}
