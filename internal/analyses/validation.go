package analyses

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Structural contracts for the model's JSON output. Every list must be an
// array of strings; the six extraction keys are always required, resume-only
// keys are optional. matchScore is deliberately unbounded here: the range is
// a prompt-level contract and out-of-range values pass through unchanged.
const structuredContentSchema = `{
  "type": "object",
  "required": ["hardSkills", "softSkills", "tools", "certifications", "education", "jobTitles"],
  "properties": {
    "hardSkills":     {"type": "array", "items": {"type": "string"}},
    "softSkills":     {"type": "array", "items": {"type": "string"}},
    "tools":          {"type": "array", "items": {"type": "string"}},
    "certifications": {"type": "array", "items": {"type": "string"}},
    "education":      {"type": "array", "items": {"type": "string"}},
    "jobTitles":      {"type": "array", "items": {"type": "string"}},
    "workExperience": {"type": "array", "items": {"type": "string"}},
    "projects":       {"type": "array", "items": {"type": "string"}},
    "achievements":   {"type": "array", "items": {"type": "string"}}
  }
}`

const comparisonResultSchema = `{
  "type": "object",
  "required": ["matchScore", "matchedSkills", "missingSkills", "suggestions", "analysisSummary"],
  "properties": {
    "matchScore": {"type": "number"},
    "matchedSkills": {
      "type": "object",
      "required": ["technical", "soft"],
      "properties": {
        "technical": {"type": "array", "items": {"type": "string"}},
        "soft":      {"type": "array", "items": {"type": "string"}}
      }
    },
    "missingSkills": {
      "type": "object",
      "required": ["technical", "soft"],
      "properties": {
        "technical": {"type": "array", "items": {"type": "string"}},
        "soft":      {"type": "array", "items": {"type": "string"}}
      }
    },
    "suggestions":     {"type": "array", "items": {"type": "string"}},
    "analysisSummary": {"type": "string"}
  }
}`

func validateStructured(raw json.RawMessage) (StructuredContent, error) {
	if err := validateAgainst(structuredContentSchema, raw); err != nil {
		return StructuredContent{}, err
	}
	var parsed StructuredContent
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return StructuredContent{}, fmt.Errorf("unmarshal structured content: %v: %w", err, ErrSchemaMismatch)
	}
	return parsed, nil
}

func validateComparison(raw json.RawMessage) (ComparisonResult, error) {
	if err := validateAgainst(comparisonResultSchema, raw); err != nil {
		return ComparisonResult{}, err
	}
	var parsed ComparisonResult
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ComparisonResult{}, fmt.Errorf("unmarshal comparison result: %v: %w", err, ErrSchemaMismatch)
	}
	return parsed, nil
}

func validateAgainst(schema string, raw json.RawMessage) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// Validate fails outright when the document is not valid JSON.
		return fmt.Errorf("invalid JSON from model: %v: %w", err, ErrSchemaMismatch)
	}
	if result.Valid() {
		return nil
	}
	var fields []string
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		fields = append(fields, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return fmt.Errorf("%s: %w", strings.Join(fields, "; "), ErrSchemaMismatch)
}
