package controller

import (
	"bytes"
	"fmt"
	"strconv"

	m "github.com/mouse-blink/versecheck/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayBooksFound prints how many book folders were discovered.
func (s *SimpleUI) DisplayBooksFound(count int) {
	s.printf("Found %d books\n", count)
}

// DisplayBookHeader prints the header shown before a book's chapters.
func (s *SimpleUI) DisplayBookHeader(book m.Book, chapters int) {
	s.printf("\n== %s (%d chapters) ==\n", book, chapters)
}

// DisplayEmptyBook notes a book folder without chapter files.
func (s *SimpleUI) DisplayEmptyBook(book m.Book) {
	s.printf("\n== %s: no chapter files ==\n", book)
}

// DisplayChapterResult prints one status line per chapter.
func (s *SimpleUI) DisplayChapterResult(result m.ChapterResult, position, total int) {
	s.printf("  [%d/%d] %-10s %s\n", position, total, simpleLabel(result.Status), describeResult(result))
}

// DisplaySummary prints the final counters and where the report went.
func (s *SimpleUI) DisplaySummary(summary m.Summary, report m.Path) {
	s.printf("\nScanned: %d\n", summary.Total)
	s.printf("Matched: %d\n", summary.Matched)
	s.printf("Mismatched: %d\n", summary.Mismatched)
	s.printf("Missing: %d\n", summary.Missing)
	s.printf("Errors: %d\n", summary.Errors)

	if report != "" {
		s.printf("Report written to %s\n", report)
	} else if summary.Mismatched == 0 {
		s.printf("No mismatches, report not written\n")
	}
}

// DisplayListing prints the discovered books as a table.
func (s *SimpleUI) DisplayListing(books []m.BookListing) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Book", "Chapters", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, b := range books {
		table.Append([]string{string(b.Book), formatChapterRanges(b.Chapters), strconv.Itoa(len(b.Chapters))})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Books %d", len(books)),
		"",
		strconv.Itoa(countChapters(books)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayMismatches prints report rows as a table.
func (s *SimpleUI) DisplayMismatches(records []m.Mismatch) error {
	if len(records) == 0 {
		s.printf("No mismatches recorded\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Chapter", "Verse", "Counts", "Local", "Reference"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, r := range records {
		table.Append([]string{
			r.Ref().String(),
			strconv.Itoa(r.FirstDiffVerse),
			fmt.Sprintf("%d/%d", r.LocalVerseCount, r.RefVerseCount),
			r.LocalSnippet,
			r.RefSnippet,
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(records)), "", "", "", ""})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func simpleLabel(status m.Status) string {
	switch status {
	case m.StatusMatched:
		return "[ok]"
	case m.StatusMismatched:
		return "[mismatch]"
	case m.StatusMissing:
		return "[missing]"
	default:
		return "[error]"
	}
}
