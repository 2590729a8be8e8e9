package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"jobfit-backend/internal/llm"
)

const assistantsBetaHeader = "assistants=v2"

// AssistantsClient implements llm.DocumentProcessor using the OpenAI
// Files and Assistants APIs.
type AssistantsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewAssistantsClient constructs a client for the assistants flow.
func NewAssistantsClient(apiKey string) (*AssistantsClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	return &AssistantsClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

type objectRef struct {
	ID     string    `json:"id"`
	Status string    `json:"status,omitempty"`
	Error  *apiError `json:"error,omitempty"`
}

type runObject struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	LastError *apiError `json:"last_error,omitempty"`
	Error     *apiError `json:"error,omitempty"`
}

type messageList struct {
	Data []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text struct {
				Value string `json:"value"`
			} `json:"text"`
		} `json:"content"`
	} `json:"data"`
	Error *apiError `json:"error,omitempty"`
}

// UploadFile uploads a binary with purpose "assistants" and returns the file ID.
func (c *AssistantsClient) UploadFile(ctx context.Context, fileName string, data []byte) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("purpose", "assistants"); err != nil {
		return "", err
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var ref objectRef
	if err := c.do(req, &ref, refError(&ref)); err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}
	return ref.ID, nil
}

// CreateThread creates an empty conversational thread.
func (c *AssistantsClient) CreateThread(ctx context.Context) (string, error) {
	var ref objectRef
	if err := c.doJSON(ctx, http.MethodPost, "/threads", map[string]any{}, &ref, refError(&ref)); err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}
	return ref.ID, nil
}

// AddFileMessage attaches the uploaded file to a user message on the thread.
func (c *AssistantsClient) AddFileMessage(ctx context.Context, threadID, fileID, prompt string) error {
	body := map[string]any{
		"role":    "user",
		"content": prompt,
		"attachments": []map[string]any{
			{
				"file_id": fileID,
				"tools":   []map[string]string{{"type": "file_search"}},
			},
		},
	}
	var ref objectRef
	if err := c.doJSON(ctx, http.MethodPost, "/threads/"+threadID+"/messages", body, &ref, refError(&ref)); err != nil {
		return fmt.Errorf("add file message: %w", err)
	}
	return nil
}

// CreateAssistant creates an assistant persona with the file_search tool.
func (c *AssistantsClient) CreateAssistant(ctx context.Context, name, instructions, model string) (string, error) {
	body := map[string]any{
		"name":         name,
		"instructions": instructions,
		"model":        model,
		"tools":        []map[string]string{{"type": "file_search"}},
	}
	var ref objectRef
	if err := c.doJSON(ctx, http.MethodPost, "/assistants", body, &ref, refError(&ref)); err != nil {
		return "", fmt.Errorf("create assistant: %w", err)
	}
	return ref.ID, nil
}

// StartRun starts an asynchronous run of the assistant on the thread.
func (c *AssistantsClient) StartRun(ctx context.Context, threadID, assistantID string) (string, error) {
	body := map[string]any{"assistant_id": assistantID}
	var run runObject
	if err := c.doJSON(ctx, http.MethodPost, "/threads/"+threadID+"/runs", body, &run, runError(&run)); err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}
	return run.ID, nil
}

// GetRun fetches the current run status.
func (c *AssistantsClient) GetRun(ctx context.Context, threadID, runID string) (llm.Run, error) {
	var run runObject
	if err := c.doJSON(ctx, http.MethodGet, "/threads/"+threadID+"/runs/"+runID, nil, &run, runError(&run)); err != nil {
		return llm.Run{}, fmt.Errorf("get run: %w", err)
	}
	out := llm.Run{Status: run.Status}
	if run.LastError != nil {
		out.LastError = run.LastError.Message
	}
	return out, nil
}

// FirstAssistantMessage returns the text payload of the first
// assistant-authored message on the thread.
func (c *AssistantsClient) FirstAssistantMessage(ctx context.Context, threadID string) (string, error) {
	var list messageList
	if err := c.doJSON(ctx, http.MethodGet, "/threads/"+threadID+"/messages", nil, &list, func() *apiError { return list.Error }); err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}
	for _, msg := range list.Data {
		if msg.Role != "assistant" {
			continue
		}
		for _, part := range msg.Content {
			if part.Type == "text" {
				return part.Text.Value, nil
			}
		}
	}
	return "", fmt.Errorf("no assistant message on thread %s", threadID)
}

// DeleteFile removes an uploaded file.
func (c *AssistantsClient) DeleteFile(ctx context.Context, fileID string) error {
	var ref objectRef
	if err := c.doJSON(ctx, http.MethodDelete, "/files/"+fileID, nil, &ref, refError(&ref)); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// DeleteAssistant removes an assistant persona.
func (c *AssistantsClient) DeleteAssistant(ctx context.Context, assistantID string) error {
	var ref objectRef
	if err := c.doJSON(ctx, http.MethodDelete, "/assistants/"+assistantID, nil, &ref, refError(&ref)); err != nil {
		return fmt.Errorf("delete assistant: %w", err)
	}
	return nil
}

func (c *AssistantsClient) doJSON(ctx context.Context, method, path string, body any, out any, errOf func() *apiError) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("OpenAI-Beta", assistantsBetaHeader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out, errOf)
}

func (c *AssistantsClient) do(req *http.Request, out any, errOf func() *apiError) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("openai response parse: %w", err)
		}
	}
	return classifyAPIError(resp.StatusCode, errOf())
}

func refError(ref *objectRef) func() *apiError {
	return func() *apiError { return ref.Error }
}

func runError(run *runObject) func() *apiError {
	return func() *apiError { return run.Error }
}

var _ llm.DocumentProcessor = (*AssistantsClient)(nil)
