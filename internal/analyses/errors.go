package analyses

import "errors"

var (
	// ErrMissingInput means the caller supplied an empty job description or resume.
	ErrMissingInput = errors.New("missing job description or resume content")
	// ErrSchemaMismatch means the model returned JSON that does not satisfy
	// the expected structure.
	ErrSchemaMismatch = errors.New("model output does not match schema")
)

const (
	ErrorCodeValidation        = "VALIDATION_ERROR"
	ErrorCodeLLMSchemaMismatch = "LLM_SCHEMA_MISMATCH"
	ErrorCodeInternal          = "INTERNAL_ERROR"
)
