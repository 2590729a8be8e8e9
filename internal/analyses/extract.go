package analyses

import (
	"context"
	"fmt"
	"strings"

	"jobfit-backend/internal/llm"
)

// DocumentKind selects the extraction prompt for a document.
type DocumentKind string

const (
	KindJobDescription DocumentKind = "job_description"
	KindResume         DocumentKind = "resume"
)

const extractTemperature float32 = 0

// Extractor turns raw document text into StructuredContent via the LLM.
type Extractor struct {
	LLM llm.Client
}

// Extract parses rawText into a validated StructuredContent record.
// Empty or whitespace-only input is a caller error and fails before any
// network call.
func (e *Extractor) Extract(ctx context.Context, kind DocumentKind, rawText string) (StructuredContent, error) {
	if strings.TrimSpace(rawText) == "" {
		return StructuredContent{}, fmt.Errorf("%s text is empty: %w", kind, ErrMissingInput)
	}

	messages := []llm.Message{
		{Role: "system", Content: extractSystemPrompt(kind)},
		{Role: "user", Content: extractUserPrompt(kind, rawText)},
	}

	raw, err := e.LLM.CompleteJSON(ctx, messages, extractTemperature)
	if err != nil {
		return StructuredContent{}, fmt.Errorf("extract %s: %w", kind, err)
	}

	parsed, err := validateStructured(raw)
	if err != nil {
		return StructuredContent{}, fmt.Errorf("extract %s: %w", kind, err)
	}
	return parsed, nil
}

func extractSystemPrompt(kind DocumentKind) string {
	if kind == KindResume {
		return resumeSystemPrompt
	}
	return jobDescriptionSystemPrompt
}

func extractUserPrompt(kind DocumentKind, rawText string) string {
	if kind == KindResume {
		return fmt.Sprintf("Please parse the following resume content:\n\n%s", rawText)
	}
	return fmt.Sprintf("Please parse the following job description:\n\n%s", rawText)
}
