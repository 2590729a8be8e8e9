package documents

import "errors"

var (
	// ErrUnsupportedType means the upload is not a PDF.
	ErrUnsupportedType = errors.New("only PDF files are supported")
	// ErrTooLarge means the upload exceeds the size limit.
	ErrTooLarge = errors.New("file size exceeds limit")
	// ErrExtractionFailed means the remote processing run reported failure.
	ErrExtractionFailed = errors.New("extraction run failed")
	// ErrExtractionTimeout means the run did not reach a terminal state
	// within the bounded poll window.
	ErrExtractionTimeout = errors.New("extraction run timed out")
)

const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeQuota      = "PROVIDER_QUOTA_EXCEEDED"
	ErrorCodeBadInput   = "PROVIDER_REJECTED_INPUT"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)
