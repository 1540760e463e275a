package cli

import (
	"io"
	"os"

	"github.com/dgallion1/docmap/internal/mindmap"
	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:   "outline [FILE|-]",
	Short: "Build a mindmap from summary text without summarizing",
	Long: `Read summary text from FILE, or from stdin when FILE is "-" or omitted, and
print the mindmap built from it. No summarization backend is contacted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if len(args) == 0 || args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return err
		}

		mmCfg, err := loadConfig().MindmapConfig()
		if err != nil {
			return err
		}
		root := mindmap.NewBuilder(mmCfg).Build(string(data))
		return render(cmd.OutOrStdout(), outputFormat, root)
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}
