package documents

import (
	"regexp"
	"strings"
)

var (
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	controlChars    = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")
	carriageReturns = regexp.MustCompile(`\r\n?`)
	excessNewlines  = regexp.MustCompile(`\n{3,}`)
)

// CleanExtractedText normalizes raw model output: whitespace runs collapse
// to single spaces, control characters other than newline and tab are
// stripped, line endings become LF, and 3+ consecutive newlines collapse
// to 2. The pass order is part of the output contract; callers see
// single-line text because the whitespace collapse runs first.
func CleanExtractedText(text string) string {
	out := whitespaceRuns.ReplaceAllString(text, " ")
	out = controlChars.ReplaceAllString(out, "")
	out = carriageReturns.ReplaceAllString(out, "\n")
	out = excessNewlines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
