package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var backends = []any{"huggingface", "claude", "ollama", "passthrough"}

var logLevels = []any{"debug", "info", "warn", "error"}

// Validate checks the configuration for values the service cannot start with.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.UploadDir, validation.Required),
		validation.Field(&c.MaxUploadBytes, validation.Required, validation.Min(int64(1))),
		validation.Field(&c.MinTextChars, validation.Min(0)),
		validation.Field(&c.ChunkMaxChars, validation.Required, validation.Min(1)),
		validation.Field(&c.LogLevel, validation.In(logLevels...)),
	); err != nil {
		return err
	}
	if err := c.Summarizer.Validate(); err != nil {
		return fmt.Errorf("summarizer: %w", err)
	}
	return nil
}

func (s SummarizerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Backend, validation.Required, validation.In(backends...)),
		validation.Field(&s.APIKey, validation.When(s.Backend == "claude", validation.Required.Error("ANTHROPIC_API_KEY is required for the claude backend"))),
		validation.Field(&s.BaseURL, is.URL),
		validation.Field(&s.MaxLength, validation.Required, validation.Min(1)),
		validation.Field(&s.MinLength, validation.Min(0), validation.Max(s.MaxLength)),
	)
}
