package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgallion1/docmap/internal/bootstrap"
	"github.com/dgallion1/docmap/internal/logging"
	"github.com/dgallion1/docmap/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	generateSummarizer  string
	generateShowSummary bool
	generateVerbose     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate FILE",
	Short: "Summarize a document and print its mindmap",
	Long: `Run the full pipeline on a local document: extract its text, summarize it
chunk by chunk with the configured backend, and build the mindmap.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if generateSummarizer != "" {
			cfg.Summarizer.Backend = generateSummarizer
		}
		if err := cfg.Summarizer.Validate(); err != nil {
			return fmt.Errorf("summarizer config: %w", err)
		}

		level := "warn"
		if generateVerbose {
			level = "debug"
		}
		log, closer := logging.New(logging.Options{Level: level}, cmd.ErrOrStderr())
		defer closer.Close()

		rt, err := bootstrap.New(cfg, log)
		if err != nil {
			return err
		}
		defer rt.Close()

		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		text, err := rt.Generator.Extract(filepath.Base(path), data)
		if err != nil {
			return err
		}

		var total int
		res, err := rt.Generator.FromText(cmd.Context(), text, pipeline.Hooks{
			OnChunks: func(n int) { total = n },
			OnChunkDone: func(i int) {
				if generateVerbose {
					fmt.Fprintf(cmd.ErrOrStderr(), "summarized chunk %d/%d\n", i+1, total)
				}
			},
		})
		if err != nil {
			return err
		}

		if generateShowSummary {
			fmt.Fprintln(cmd.ErrOrStderr(), res.Summary)
			fmt.Fprintln(cmd.ErrOrStderr())
		}
		return render(cmd.OutOrStdout(), outputFormat, res.Mindmap)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateSummarizer, "summarizer", "s", "", "Summarizer backend: huggingface, claude, ollama or passthrough")
	generateCmd.Flags().BoolVar(&generateShowSummary, "show-summary", false, "Print the joined summary to stderr")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.AddCommand(generateCmd)
}
