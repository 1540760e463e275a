package summarize

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
)

const defaultOllamaModel = "llama3.2"

// OllamaClient summarizes with a model served by a local Ollama daemon.
type OllamaClient struct {
	client    *ollama.Client
	model     string
	maxTokens int
}

// NewOllamaClient connects to opts.BaseURL, or to OLLAMA_HOST when unset.
func NewOllamaClient(opts Options) (*OllamaClient, error) {
	var (
		client *ollama.Client
		err    error
	)
	if opts.BaseURL != "" {
		base, perr := url.Parse(opts.BaseURL)
		if perr != nil {
			return nil, fmt.Errorf("parse ollama url: %w", perr)
		}
		client = ollama.NewClient(base, &http.Client{Timeout: 5 * time.Minute})
	} else {
		client, err = ollama.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("could not create ollama client: %w", err)
		}
	}

	c := &OllamaClient{
		client:    client,
		model:     strings.TrimPrefix(opts.Model, "ollama:"),
		maxTokens: opts.MaxLength,
	}
	if c.model == "" {
		c.model = defaultOllamaModel
	}
	if c.maxTokens <= 0 {
		c.maxTokens = 150
	}
	return c, nil
}

// Summarize generates a summary for one chunk, collecting the streamed reply.
func (c *OllamaClient) Summarize(ctx context.Context, chunk string) (string, error) {
	stream := false
	req := &ollama.GenerateRequest{
		Model:  c.model,
		Prompt: BuildPrompt(chunk, wordsForTokens(c.maxTokens)),
		Stream: &stream,
		Options: map[string]any{
			"temperature": 0,
			"num_predict": c.maxTokens * 2,
		},
	}

	var sb strings.Builder
	err := c.client.Generate(ctx, req, func(resp ollama.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		var statusErr ollama.StatusError
		if errors.As(err, &statusErr) && (statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= 500) {
			return "", &RetryableError{StatusCode: statusErr.StatusCode, Message: statusErr.ErrorMessage}
		}
		return "", fmt.Errorf("ollama generate failed: %w", err)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty response from ollama")
	}
	return text, nil
}

// Model returns the model identifier in use.
func (c *OllamaClient) Model() string {
	return c.model
}
