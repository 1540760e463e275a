// Package cli implements the docmap command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/dgallion1/docmap/internal/config"
	"github.com/spf13/cobra"
)

var (
	outputFormat   string
	keywordsFlag   []string
	vocabularyFlag string
)

var rootCmd = &cobra.Command{
	Use:   "docmap",
	Short: "Summarize documents and outline them as a topic mindmap",
	Long: `docmap summarizes a text document with an abstractive summarization model
and arranges the summary into a two-level mindmap: keyword sentences become
topics and the remaining sentences are distributed beneath them.

Configuration is read from the environment and from a .env file in the
working directory, the same way the server reads it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch outputFormat {
		case formatJSON, formatTree:
			return nil
		default:
			return fmt.Errorf("unknown format %q (want %s or %s)", outputFormat, formatJSON, formatTree)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatTree, "Output format: json or tree")
	rootCmd.PersistentFlags().StringSliceVarP(&keywordsFlag, "keywords", "k", nil, "Topic keywords, overriding KEYWORDS")
	rootCmd.PersistentFlags().StringVar(&vocabularyFlag, "vocabulary", "", "YAML vocabulary file, overriding VOCABULARY_FILE")
}

// loadConfig reads the environment and applies command line overrides.
func loadConfig() config.Config {
	cfg := config.Load()
	if vocabularyFlag != "" {
		cfg.VocabularyFile = vocabularyFlag
	}
	if len(keywordsFlag) > 0 {
		cfg.Keywords = keywordsFlag
	}
	return cfg
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
