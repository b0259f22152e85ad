package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/versecheck/internal/domain"
	m "github.com/mouse-blink/versecheck/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [root]",
		Short: "List discovered books and chapter files",
		Long: `List the canonical book folders found under root (default ".") in
canonical order, with the chapter files each one holds. Nothing is fetched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, wf, flush, err := prepare(cmd, args)
			if err != nil {
				return err
			}
			defer flush()

			return wf.List(domain.ListArgs{Root: m.Path(cfg.Corpus.Root)})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
