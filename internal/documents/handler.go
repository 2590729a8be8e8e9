package documents

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobfit-backend/internal/llm"
	"jobfit-backend/internal/shared/server/respond"
	"jobfit-backend/internal/shared/telemetry"
	"jobfit-backend/internal/shared/util"
)

// TextExtractor acquires plain text from an uploaded file.
type TextExtractor interface {
	ExtractText(ctx context.Context, fileName, mimeType string, sizeBytes int64, data []byte) (Extraction, error)
}

// Handler wires the parse-resume route to a text extractor.
type Handler struct {
	Extractor TextExtractor
	Env       string
}

// NewHandler constructs a Handler.
func NewHandler(extractor TextExtractor, env string) *Handler {
	return &Handler{Extractor: extractor, Env: env}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse-resume", h.parseResume)
}

func (h *Handler) parseResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "No file provided", nil)
		return
	}

	fileName := fileHeader.Filename
	if sanitized, err := util.SanitizeFileName(fileName); err == nil {
		fileName = sanitized
	}
	mimeType := fileHeader.Header.Get("Content-Type")

	// Type and size are rejected up front, before the body is even read.
	if err := ValidateUpload(mimeType, fileHeader.Size); err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Only PDF files are supported", nil)
		default:
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "File size must be less than 10MB", nil)
		}
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
		return
	}

	extraction, err := h.Extractor.ExtractText(c.Request.Context(), fileName, mimeType, fileHeader.Size, data)
	if err != nil {
		h.respondExtractError(c, err)
		return
	}

	if extraction.Partial {
		// Success status on purpose: the caller decides whether the
		// recovered text is usable.
		respond.JSON(c, http.StatusOK, gin.H{
			"error":               extraction.PartialReason,
			"extractedText":       extraction.Text,
			"isPartialExtraction": true,
		})
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"text":             extraction.Text,
		"fileName":         extraction.FileName,
		"fileSize":         extraction.FileSize,
		"extractionMethod": extraction.Method,
		"success":          true,
	})
}

func (h *Handler) respondExtractError(c *gin.Context, err error) {
	telemetry.Error("documents.extract.error", map[string]any{
		"err":  err.Error(),
		"path": c.Request.URL.Path,
	})

	switch {
	case errors.Is(err, ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "Only PDF files are supported", nil)
	case errors.Is(err, ErrTooLarge):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "File size must be less than 10MB", nil)
	case errors.Is(err, llm.ErrQuotaExceeded):
		respond.Error(c, http.StatusTooManyRequests, ErrorCodeQuota,
			"OpenAI API quota exceeded. Please try again later or contact support.", nil)
	case errors.Is(err, llm.ErrRejectedInput):
		respond.Error(c, http.StatusBadRequest, ErrorCodeBadInput,
			"The PDF format is not supported or the file is corrupted. Please try a different PDF or paste your resume text manually.", nil)
	default:
		var debug interface{}
		if h.Env != "production" {
			debug = err.Error()
		}
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal,
			"Failed to extract text using AI. Please try pasting your resume content manually.", debug)
	}
}
