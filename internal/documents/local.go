package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

const methodLocalPDF = "local-pdf"

// LocalExtractor extracts PDF text in-process, selected with
// EXTRACTION_METHOD=local. It applies the same validation, cleaning and
// partial-extraction policy as the assistant-backed service.
type LocalExtractor struct{}

// ExtractText parses the PDF bytes and returns normalized text.
func (LocalExtractor) ExtractText(ctx context.Context, fileName, mimeType string, sizeBytes int64, data []byte) (Extraction, error) {
	if err := ValidateUpload(mimeType, sizeBytes); err != nil {
		return Extraction{}, err
	}
	if err := ctx.Err(); err != nil {
		return Extraction{}, err
	}

	text, err := extractPDF(data)
	if err != nil {
		return Extraction{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	cleaned := CleanExtractedText(text)
	if len(cleaned) < minTextLength {
		return Extraction{
			Text:          cleaned,
			FileName:      fileName,
			FileSize:      sizeBytes,
			Method:        methodLocalPDF,
			Partial:       true,
			PartialReason: fmt.Sprintf("Only %d characters were extracted. The PDF might be image-based or have formatting issues.", len(cleaned)),
		}, nil
	}

	return Extraction{
		Text:     cleaned,
		FileName: fileName,
		FileSize: sizeBytes,
		Method:   methodLocalPDF,
	}, nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
