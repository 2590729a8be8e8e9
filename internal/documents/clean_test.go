package documents

import "testing"

func TestCleanExtractedText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses whitespace runs",
			in:   "John  Doe\tSoftware   Engineer",
			want: "John Doe Software Engineer",
		},
		{
			name: "newlines collapse into the run pass",
			in:   "Line one\n\n\n\nLine two",
			want: "Line one Line two",
		},
		{
			name: "windows line endings",
			in:   "Line one\r\nLine two",
			want: "Line one Line two",
		},
		{
			name: "strips leading and trailing space",
			in:   "   padded   ",
			want: "padded",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   " \n\t ",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanExtractedText(tt.in); got != tt.want {
				t.Fatalf("CleanExtractedText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanExtractedTextProducesSingleLine(t *testing.T) {
	in := "Name\nTitle\r\nSkills:\n\n\n- Go\n- Python"
	got := CleanExtractedText(in)
	for _, r := range got {
		if r == '\n' || r == '\r' {
			t.Fatalf("expected single-line output, got %q", got)
		}
	}
}
