package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/versecheck/internal/domain"
	m "github.com/mouse-blink/versecheck/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [report]",
		Short: "Show a previously written mismatch report",
		Long: `Render a mismatch report as a table. Without an argument the report
location comes from --report and the corpus root configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, wf, flush, err := prepare(cmd, nil)
			if err != nil {
				return err
			}
			defer flush()

			report := cfg.ReportPath()
			if len(args) > 0 {
				report = args[0]
			}

			return wf.View(domain.ViewArgs{Report: m.Path(report)})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
