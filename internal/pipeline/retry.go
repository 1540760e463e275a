package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dgallion1/docmap/internal/doctree"
	"github.com/dgallion1/docmap/internal/summarize"
)

const MaxRetries = 3

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var retryErr *summarize.RetryableError
	return errors.As(err, &retryErr)
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := min(time.Duration(1<<uint(attempt))*time.Second, 30*time.Second)
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}

// backoff is swapped out by tests.
var backoff = Backoff

// SummarizeChunks summarizes each non-blank chunk in order and joins the
// results with a single space. Transient backend errors are retried.
func SummarizeChunks(ctx context.Context, s summarize.Summarizer, chunks []doctree.Chunk, onDone func(int), log *slog.Logger) (string, error) {
	summaries := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		out, err := summarizeWithRetry(ctx, s, c, log)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d: %w", c.Index, err)
		}
		summaries = append(summaries, out)
		if onDone != nil {
			onDone(c.Index)
		}
	}
	return strings.Join(summaries, " "), nil
}

func summarizeWithRetry(ctx context.Context, s summarize.Summarizer, c doctree.Chunk, log *slog.Logger) (string, error) {
	var lastErr error
	for attempt := range MaxRetries {
		out, err := s.Summarize(ctx, c.Text)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !IsRetryable(err) || attempt == MaxRetries-1 {
			break
		}
		log.Warn("retryable summarization error", "chunk", c.Index, "attempt", attempt, "error", err)
		select {
		case <-time.After(backoff(attempt)):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", lastErr
}
