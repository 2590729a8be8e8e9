package analyses

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateStructuredAcceptsCompleteDocument(t *testing.T) {
	raw := json.RawMessage(`{
		"hardSkills": ["Python", "Go"],
		"softSkills": ["Communication"],
		"tools": ["Docker"],
		"certifications": [],
		"education": ["BSc Computer Science"],
		"jobTitles": ["Software Engineer"],
		"workExperience": ["Built APIs"],
		"projects": [],
		"achievements": []
	}`)

	parsed, err := validateStructured(raw)
	if err != nil {
		t.Fatalf("expected valid document, got error: %v", err)
	}
	if len(parsed.HardSkills) != 2 || parsed.HardSkills[0] != "Python" {
		t.Fatalf("unexpected hardSkills: %v", parsed.HardSkills)
	}
	if len(parsed.Certifications) != 0 {
		t.Fatalf("expected empty certifications, got %v", parsed.Certifications)
	}
}

func TestValidateStructuredRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing softSkills key",
			raw: `{
				"hardSkills": [], "tools": [], "certifications": [],
				"education": [], "jobTitles": []
			}`,
		},
		{
			name: "scalar instead of array",
			raw: `{
				"hardSkills": "Python", "softSkills": [], "tools": [],
				"certifications": [], "education": [], "jobTitles": []
			}`,
		},
		{
			name: "nested object in array",
			raw: `{
				"hardSkills": [{"name": "Python"}], "softSkills": [], "tools": [],
				"certifications": [], "education": [], "jobTitles": []
			}`,
		},
		{
			name: "not JSON at all",
			raw:  `I could not parse the document, sorry!`,
		},
		{
			name: "JSON null",
			raw:  `null`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateStructured(json.RawMessage(tt.raw))
			if !errors.Is(err, ErrSchemaMismatch) {
				t.Fatalf("expected ErrSchemaMismatch, got %v", err)
			}
		})
	}
}

func TestValidateComparisonAcceptsResult(t *testing.T) {
	raw := json.RawMessage(`{
		"matchScore": 72.5,
		"matchedSkills": {"technical": ["Python"], "soft": ["Communication"]},
		"missingSkills": {"technical": ["AWS"], "soft": []},
		"suggestions": ["Developed scalable pipelines using AWS Lambda."],
		"analysisSummary": "Solid technical overlap with a cloud gap."
	}`)

	parsed, err := validateComparison(raw)
	if err != nil {
		t.Fatalf("expected valid result, got error: %v", err)
	}
	if parsed.MatchScore != 72.5 {
		t.Fatalf("expected matchScore 72.5, got %v", parsed.MatchScore)
	}
	if len(parsed.MissingSkills.Technical) != 1 || parsed.MissingSkills.Technical[0] != "AWS" {
		t.Fatalf("unexpected missingSkills: %v", parsed.MissingSkills)
	}
}

// Score range and duplicates are prompt-level contracts: values outside
// 0-100 and repeated skills pass through unchanged.
func TestValidateComparisonDoesNotClampOrDeduplicate(t *testing.T) {
	raw := json.RawMessage(`{
		"matchScore": 150,
		"matchedSkills": {"technical": ["Python", "Python"], "soft": []},
		"missingSkills": {"technical": [], "soft": []},
		"suggestions": [],
		"analysisSummary": "ok"
	}`)

	parsed, err := validateComparison(raw)
	if err != nil {
		t.Fatalf("expected pass-through, got error: %v", err)
	}
	if parsed.MatchScore != 150 {
		t.Fatalf("expected unclamped score 150, got %v", parsed.MatchScore)
	}
	if len(parsed.MatchedSkills.Technical) != 2 {
		t.Fatalf("expected duplicates preserved, got %v", parsed.MatchedSkills.Technical)
	}
}

func TestValidateComparisonRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing analysisSummary",
			raw: `{
				"matchScore": 50,
				"matchedSkills": {"technical": [], "soft": []},
				"missingSkills": {"technical": [], "soft": []},
				"suggestions": []
			}`,
		},
		{
			name: "non-string array element",
			raw: `{
				"matchScore": 50,
				"matchedSkills": {"technical": [42], "soft": []},
				"missingSkills": {"technical": [], "soft": []},
				"suggestions": [],
				"analysisSummary": "ok"
			}`,
		},
		{
			name: "null category instead of empty array",
			raw: `{
				"matchScore": 50,
				"matchedSkills": {"technical": null, "soft": []},
				"missingSkills": {"technical": [], "soft": []},
				"suggestions": [],
				"analysisSummary": "ok"
			}`,
		},
		{
			name: "matchScore as string",
			raw: `{
				"matchScore": "85",
				"matchedSkills": {"technical": [], "soft": []},
				"missingSkills": {"technical": [], "soft": []},
				"suggestions": [],
				"analysisSummary": "ok"
			}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateComparison(json.RawMessage(tt.raw))
			if !errors.Is(err, ErrSchemaMismatch) {
				t.Fatalf("expected ErrSchemaMismatch, got %v", err)
			}
		})
	}
}
