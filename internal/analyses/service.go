package analyses

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jobfit-backend/internal/llm"
	"jobfit-backend/internal/shared/metrics"
	"jobfit-backend/internal/shared/telemetry"
)

// Service sequences the extract-extract-compare pipeline.
type Service struct {
	Extractor  *Extractor
	Comparator *Comparator
}

// NewService wires the pipeline components onto a single LLM client.
func NewService(client llm.Client) *Service {
	return &Service{
		Extractor:  &Extractor{LLM: client},
		Comparator: &Comparator{LLM: client},
	}
}

// Analyze runs the full pipeline: both documents are extracted
// concurrently, then compared. The two extractions are independent, so a
// failure in either cancels the other.
func (s *Service) Analyze(ctx context.Context, jobDescription, resumeContent string) (ComparisonResult, error) {
	if strings.TrimSpace(jobDescription) == "" || strings.TrimSpace(resumeContent) == "" {
		return ComparisonResult{}, ErrMissingInput
	}

	metrics.IncAnalysisStarted()
	start := time.Now()

	var jobStructured, resumeStructured StructuredContent
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		parsed, err := s.Extractor.Extract(gCtx, KindJobDescription, jobDescription)
		if err != nil {
			return err
		}
		jobStructured = parsed
		return nil
	})
	g.Go(func() error {
		parsed, err := s.Extractor.Extract(gCtx, KindResume, resumeContent)
		if err != nil {
			return err
		}
		resumeStructured = parsed
		return nil
	})
	if err := g.Wait(); err != nil {
		metrics.IncAnalysisFailed()
		return ComparisonResult{}, err
	}

	result, err := s.Comparator.Compare(ctx, jobStructured, resumeStructured, jobDescription, resumeContent)
	if err != nil {
		metrics.IncAnalysisFailed()
		return ComparisonResult{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("analysis.complete", map[string]any{
		"match_score":       result.MatchScore,
		"matched_technical": len(result.MatchedSkills.Technical),
		"matched_soft":      len(result.MatchedSkills.Soft),
		"missing_technical": len(result.MissingSkills.Technical),
		"missing_soft":      len(result.MissingSkills.Soft),
		"duration_ms":       float64(time.Since(start).Microseconds()) / 1000.0,
	})
	return result, nil
}
