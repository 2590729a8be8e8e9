package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Message is a role-tagged chat message sent to the model.
type Message struct {
	Role    string
	Content string
}

// Client abstracts a chat-completion provider forced into JSON-only
// output mode.
type Client interface {
	CompleteJSON(ctx context.Context, messages []Message, temperature float32) (json.RawMessage, error)
}

// Run reports the state of an asynchronous document-processing run.
type Run struct {
	Status    string
	LastError string
}

// DocumentProcessor abstracts the file/assistant operations used for
// content-aware document processing.
type DocumentProcessor interface {
	UploadFile(ctx context.Context, fileName string, data []byte) (string, error)
	CreateThread(ctx context.Context) (string, error)
	AddFileMessage(ctx context.Context, threadID, fileID, prompt string) error
	CreateAssistant(ctx context.Context, name, instructions, model string) (string, error)
	StartRun(ctx context.Context, threadID, assistantID string) (string, error)
	GetRun(ctx context.Context, threadID, runID string) (Run, error)
	FirstAssistantMessage(ctx context.Context, threadID string) (string, error)
	DeleteFile(ctx context.Context, fileID string) error
	DeleteAssistant(ctx context.Context, assistantID string) error
}

var (
	// ErrEmptyResponse means the model returned no content at all.
	ErrEmptyResponse = errors.New("empty response from model")
	// ErrQuotaExceeded is a rate-limit or quota signal from the provider.
	ErrQuotaExceeded = errors.New("provider quota exceeded")
	// ErrRejectedInput means the provider reported the input itself as invalid.
	ErrRejectedInput = errors.New("provider rejected input")
)
