package documents

// Extraction is the outcome of a text-acquisition attempt. Partial marks a
// soft failure: some text was recovered but below the confidence threshold,
// and the caller decides whether to accept it.
type Extraction struct {
	Text          string
	FileName      string
	FileSize      int64
	Method        string
	Partial       bool
	PartialReason string
}
