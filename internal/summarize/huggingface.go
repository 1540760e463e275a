package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultHFBaseURL = "https://api-inference.huggingface.co/models"
	defaultHFModel   = "sshleifer/distilbart-cnn-12-6"
)

// HuggingFaceClient calls a hosted summarization pipeline on the Hugging Face
// Inference API.
type HuggingFaceClient struct {
	apiKey     string
	model      string
	baseURL    string
	maxLength  int
	minLength  int
	httpClient *http.Client
}

func NewHuggingFaceClient(opts Options) *HuggingFaceClient {
	c := &HuggingFaceClient{
		apiKey:    opts.APIKey,
		model:     opts.Model,
		baseURL:   strings.TrimSuffix(opts.BaseURL, "/"),
		maxLength: opts.MaxLength,
		minLength: opts.MinLength,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
	if c.model == "" {
		c.model = defaultHFModel
	}
	if c.baseURL == "" {
		c.baseURL = defaultHFBaseURL
	}
	if c.maxLength <= 0 {
		c.maxLength = 150
	}
	if c.minLength <= 0 || c.minLength > c.maxLength {
		c.minLength = min(30, c.maxLength)
	}
	return c
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

// Summarize runs the model over one chunk.
func (c *HuggingFaceClient) Summarize(ctx context.Context, chunk string) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs: chunk,
		Parameters: hfParameters{
			MaxLength: c.maxLength,
			MinLength: c.minLength,
			DoSample:  false,
		},
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+c.model, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("huggingface api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	// 503 is returned while the model is still loading.
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", &RetryableError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("huggingface api status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var out []hfSummary
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decode response: %w (raw: %s)", err, truncate(string(respBody), 200))
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty response from huggingface")
	}
	return strings.TrimSpace(out[0].SummaryText), nil
}

// Model returns the model identifier in use.
func (c *HuggingFaceClient) Model() string {
	return c.model
}

// Close releases idle connections.
func (c *HuggingFaceClient) Close() {
	c.httpClient.CloseIdleConnections()
}
