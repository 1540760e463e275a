package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgallion1/docmap/internal/mindmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // keep a stray .env out of the test
	for _, k := range []string{"PORT", "SUMMARIZER", "MAX_UPLOAD_BYTES", "KEYWORDS", "CORS_ORIGINS", "WORKER_COUNT", "KEEP_UPLOADS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "huggingface", cfg.Summarizer.Backend)
	assert.Equal(t, int64(16*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, 50, cfg.MinTextChars)
	assert.Equal(t, 1024, cfg.ChunkMaxChars)
	assert.Equal(t, 150, cfg.Summarizer.MaxLength)
	assert.Equal(t, 30, cfg.Summarizer.MinLength)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Nil(t, cfg.Keywords)
	assert.Equal(t, time.Hour, cfg.JobTTL)
	assert.True(t, cfg.KeepUploads, "uploads are kept unless KEEP_UPLOADS=false")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9001")
	t.Setenv("SUMMARIZER", "Claude")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("KEYWORDS", "tumor, , Biopsy")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("WORKER_COUNT", "-1")
	t.Setenv("JOB_TTL", "10m")

	cfg := Load()
	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, "claude", cfg.Summarizer.Backend)
	assert.Equal(t, "sk-test", cfg.Summarizer.APIKey)
	assert.Equal(t, []string{"tumor", "Biopsy"}, cfg.Keywords)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 2, cfg.WorkerCount)
	assert.Equal(t, 10*time.Minute, cfg.JobTTL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CHUNK_MAX_CHARS=512\n"), 0o644))
	t.Chdir(dir)
	t.Setenv("CHUNK_MAX_CHARS", "")
	os.Unsetenv("CHUNK_MAX_CHARS")

	assert.Equal(t, 512, Load().ChunkMaxChars)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:           "5000",
			UploadDir:      "uploads",
			MaxUploadBytes: 1024,
			MinTextChars:   50,
			ChunkMaxChars:  1024,
			LogLevel:       "info",
			Summarizer: SummarizerConfig{
				Backend:   "passthrough",
				MaxLength: 150,
				MinLength: 30,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"bad port", func(c *Config) { c.Port = "http" }, true},
		{"unknown backend", func(c *Config) { c.Summarizer.Backend = "gpt" }, true},
		{"claude without key", func(c *Config) { c.Summarizer.Backend = "claude" }, true},
		{"claude with key", func(c *Config) { c.Summarizer.Backend = "claude"; c.Summarizer.APIKey = "k" }, false},
		{"min above max", func(c *Config) { c.Summarizer.MinLength = 200 }, true},
		{"bad url", func(c *Config) { c.Summarizer.BaseURL = "::not a url" }, true},
		{"zero chunk", func(c *Config) { c.ChunkMaxChars = 0 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMindmapConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
root_text: Cardiology Overview
max_subtopics: 2
keywords:
  - heart
  - valve
`), 0o644))

	cfg := Config{VocabularyFile: path}
	mc, err := cfg.MindmapConfig()
	require.NoError(t, err)
	assert.Equal(t, "Cardiology Overview", mc.RootText)
	assert.Equal(t, mindmap.DefaultOtherText, mc.OtherText)
	assert.Equal(t, 2, mc.MaxSubtopics)
	assert.Equal(t, mindmap.DefaultFallbackTopics, mc.FallbackTopics)
	assert.Equal(t, []string{"heart", "valve"}, mc.Keywords)

	cfg.Keywords = []string{"aorta"}
	mc, err = cfg.MindmapConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"aorta"}, mc.Keywords)
}

func TestMindmapConfig_Defaults(t *testing.T) {
	mc, err := Config{}.MindmapConfig()
	require.NoError(t, err)
	assert.Equal(t, mindmap.DefaultConfig(), mc)
}

func TestMindmapConfig_MissingFile(t *testing.T) {
	_, err := Config{VocabularyFile: filepath.Join(t.TempDir(), "nope.yaml")}.MindmapConfig()
	assert.Error(t, err)
}
