package documents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobfit-backend/internal/llm"
	"jobfit-backend/internal/shared/metrics"
	"jobfit-backend/internal/shared/telemetry"
)

const (
	mimePDF      = "application/pdf"
	maxFileBytes = 10 << 20

	pollInterval    = 1 * time.Second
	maxPollAttempts = 30
	minTextLength   = 50

	methodAssistants = "openai-assistants"

	extractPrompt = "Please extract all the text content from this PDF resume. " +
		"Return only the extracted text in a clean, readable format. " +
		"Preserve the structure with proper line breaks and spacing. " +
		"Do not add any commentary, explanations, or formatting instructions - just return the raw text content."

	assistantName         = "Resume Text Extractor"
	assistantInstructions = "You are a text extraction specialist. " +
		"Your job is to extract all text from PDF documents cleanly and accurately. " +
		"Return only the extracted text content without any additional commentary, formatting instructions, or explanations. " +
		"Preserve the original structure and spacing of the document."
)

// Service acquires plain text from an uploaded PDF through an external
// assistant-backed processing run.
type Service struct {
	Processor llm.DocumentProcessor
	Model     string

	// interval overrides the poll cadence in tests; zero means pollInterval.
	interval time.Duration
}

// ValidateUpload checks the caller-supplied type and size. It is pure:
// rejection happens before any remote call.
func ValidateUpload(mimeType string, sizeBytes int64) error {
	if strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0])) != mimePDF {
		return ErrUnsupportedType
	}
	if sizeBytes > maxFileBytes {
		return ErrTooLarge
	}
	return nil
}

// ExtractText uploads the file, runs the extraction assistant, polls the
// run to completion and returns normalized text. Cleaned text below the
// confidence threshold is returned as a partial extraction, not an error.
func (s *Service) ExtractText(ctx context.Context, fileName, mimeType string, sizeBytes int64, data []byte) (Extraction, error) {
	if err := ValidateUpload(mimeType, sizeBytes); err != nil {
		return Extraction{}, err
	}

	metrics.IncExtractionStarted()
	start := time.Now()
	jobID := uuid.NewString()
	telemetry.Info("documents.extract.start", map[string]any{
		"job_id":     jobID,
		"file_name":  fileName,
		"size_bytes": sizeBytes,
	})

	fileID, err := s.Processor.UploadFile(ctx, fileName, data)
	if err != nil {
		metrics.IncExtractionFailed()
		return Extraction{}, err
	}

	threadID, err := s.Processor.CreateThread(ctx)
	if err != nil {
		metrics.IncExtractionFailed()
		return Extraction{}, err
	}

	if err := s.Processor.AddFileMessage(ctx, threadID, fileID, extractPrompt); err != nil {
		metrics.IncExtractionFailed()
		return Extraction{}, err
	}

	assistantID, err := s.Processor.CreateAssistant(ctx, assistantName, assistantInstructions, s.Model)
	if err != nil {
		metrics.IncExtractionFailed()
		return Extraction{}, err
	}

	runID, err := s.Processor.StartRun(ctx, threadID, assistantID)
	if err != nil {
		metrics.IncExtractionFailed()
		return Extraction{}, err
	}

	run, err := s.pollRun(ctx, jobID, threadID, runID)
	if err != nil {
		metrics.IncExtractionFailed()
		return Extraction{}, err
	}

	switch run.Status {
	case "completed":
	case "failed":
		metrics.IncExtractionFailed()
		reason := run.LastError
		if reason == "" {
			reason = "unknown error"
		}
		return Extraction{}, fmt.Errorf("%w: %s", ErrExtractionFailed, reason)
	default:
		metrics.IncExtractionFailed()
		return Extraction{}, fmt.Errorf("%w: status %s", ErrExtractionTimeout, run.Status)
	}

	text, err := s.Processor.FirstAssistantMessage(ctx, threadID)
	if err != nil {
		metrics.IncExtractionFailed()
		return Extraction{}, err
	}

	cleaned := CleanExtractedText(text)
	if len(cleaned) < minTextLength {
		// Soft failure: likely an image-based or malformed PDF. The
		// uploaded file and assistant are knowingly leaked on this path.
		metrics.IncExtractionPartial()
		telemetry.Info("documents.extract.partial", map[string]any{
			"job_id": jobID,
			"chars":  len(cleaned),
		})
		return Extraction{
			Text:          cleaned,
			FileName:      fileName,
			FileSize:      sizeBytes,
			Method:        methodAssistants,
			Partial:       true,
			PartialReason: fmt.Sprintf("Only %d characters were extracted. The PDF might be image-based or have formatting issues.", len(cleaned)),
		}, nil
	}

	s.cleanup(ctx, jobID, fileID, assistantID)

	metrics.IncExtractionCompleted()
	metrics.ObserveExtractionDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("documents.extract.complete", map[string]any{
		"job_id":      jobID,
		"chars":       len(cleaned),
		"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})

	return Extraction{
		Text:     cleaned,
		FileName: fileName,
		FileSize: sizeBytes,
		Method:   methodAssistants,
	}, nil
}

// pollRun reads the run status once, then waits out the 1 Hz cadence for
// up to maxPollAttempts further reads while the run is still pending. The
// wait is cancellable so a dropped request does not leak the poll.
func (s *Service) pollRun(ctx context.Context, jobID, threadID, runID string) (llm.Run, error) {
	run, err := s.Processor.GetRun(ctx, threadID, runID)
	if err != nil {
		return llm.Run{}, err
	}

	attempts := 0
	for (run.Status == "in_progress" || run.Status == "queued") && attempts < maxPollAttempts {
		select {
		case <-ctx.Done():
			return llm.Run{}, ctx.Err()
		case <-time.After(s.pollEvery()):
		}
		run, err = s.Processor.GetRun(ctx, threadID, runID)
		if err != nil {
			return llm.Run{}, err
		}
		attempts++
		telemetry.Info("documents.extract.poll", map[string]any{
			"job_id":  jobID,
			"status":  run.Status,
			"attempt": attempts,
		})
	}
	return run, nil
}

// cleanup releases the remote file and assistant persona. Failures are
// logged and swallowed: the extraction already succeeded.
func (s *Service) cleanup(ctx context.Context, jobID, fileID, assistantID string) {
	if err := s.Processor.DeleteFile(ctx, fileID); err != nil {
		telemetry.Warn("documents.cleanup.file", map[string]any{
			"job_id":  jobID,
			"file_id": fileID,
			"err":     err.Error(),
		})
	}
	if err := s.Processor.DeleteAssistant(ctx, assistantID); err != nil {
		telemetry.Warn("documents.cleanup.assistant", map[string]any{
			"job_id":       jobID,
			"assistant_id": assistantID,
			"err":          err.Error(),
		})
	}
}

func (s *Service) pollEvery() time.Duration {
	if s.interval > 0 {
		return s.interval
	}
	return pollInterval
}
