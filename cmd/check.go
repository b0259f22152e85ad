package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/versecheck/internal/domain"
	m "github.com/mouse-blink/versecheck/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [root]",
		Short: "Scan the corpus and report mismatched chapters",
		Long: `Scan every chapter of every canonical book under root (default "."),
compare it with the reference text and write the first differing verse
of each mismatched chapter to the report. The report is only written
when at least one chapter differs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, wf, flush, err := prepare(cmd, args)
	if err != nil {
		return err
	}
	defer flush()

	return wf.Check(cmd.Context(), domain.CheckArgs{
		Root:   m.Path(cfg.Corpus.Root),
		Report: m.Path(cfg.ReportPath()),
	})
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
