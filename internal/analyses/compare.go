package analyses

import (
	"context"
	"encoding/json"
	"fmt"

	"jobfit-backend/internal/llm"
)

const compareTemperature float32 = 0.2

// Comparator scores a resume against a job description using both the
// structured extractions and the original texts.
type Comparator struct {
	LLM llm.Client
}

// Compare produces a validated ComparisonResult. Rule compliance (for
// example that every matched skill traces back to the job description) is
// a prompt-level contract with the model; only structure is checked here.
func (c *Comparator) Compare(ctx context.Context, jobStructured, resumeStructured StructuredContent, jobRawText, resumeRawText string) (ComparisonResult, error) {
	userPrompt, err := compareUserPrompt(jobStructured, resumeStructured, jobRawText, resumeRawText)
	if err != nil {
		return ComparisonResult{}, fmt.Errorf("compare: %w", err)
	}

	messages := []llm.Message{
		{Role: "system", Content: comparisonSystemPrompt},
		{Role: "user", Content: userPrompt},
	}

	raw, err := c.LLM.CompleteJSON(ctx, messages, compareTemperature)
	if err != nil {
		return ComparisonResult{}, fmt.Errorf("compare: %w", err)
	}

	parsed, err := validateComparison(raw)
	if err != nil {
		return ComparisonResult{}, fmt.Errorf("compare: %w", err)
	}
	return parsed, nil
}

func compareUserPrompt(jobStructured, resumeStructured StructuredContent, jobRawText, resumeRawText string) (string, error) {
	jobJSON, err := json.MarshalIndent(jobStructured, "", "  ")
	if err != nil {
		return "", err
	}
	resumeJSON, err := json.MarshalIndent(resumeStructured, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Here are the parsed requirements from the Job Description and the parsed capabilities from the User's Resume. Also, the original full texts are provided for context.

Job Description Requirements (Parsed JSON):
%s

User Resume Capabilities (Parsed JSON):
%s

---
Original Job Description (for context):
%s
---
Original Resume Content (for context):
%s
---
`, jobJSON, resumeJSON, jobRawText, resumeRawText), nil
}
