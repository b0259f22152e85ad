package controller

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	m "github.com/mouse-blink/versecheck/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the scan view. Calling it twice is a no-op.
func (t *TUI) Start() error {
	return t.startWithModel(newScanModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	// Input is nil, so SIGINT must keep its default action and stop the scan.
	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	t.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		_, _ = p.Run()

		// Once the view is gone, later output falls back to direct printing.
		t.mu.Lock()
		if t.program == p {
			t.program = nil
		}
		t.mu.Unlock()

		close(done)
	}(t.program, t.done)

	return nil
}

// Close asks the scan view to render its final frame and waits for it.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(closeMsg{})
	<-done
}

// send forwards msg to the running program; without one the fallback prints directly.
func (t *TUI) send(msg tea.Msg, fallback func()) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		if fallback != nil {
			fallback()
		}

		return
	}

	program.Send(msg)
}

// DisplayBooksFound records how many books will be scanned.
func (t *TUI) DisplayBooksFound(count int) {
	t.send(booksFoundMsg{count: count}, func() {
		t.printf("Found %d books\n", count)
	})
}

// DisplayBookHeader switches the progress bar to a new book.
func (t *TUI) DisplayBookHeader(book m.Book, chapters int) {
	t.send(bookHeaderMsg{book: book, chapters: chapters}, func() {
		t.printf("%s\n", accentStyle.Render(fmt.Sprintf("%s (%d chapters)", book, chapters)))
	})
}

// DisplayEmptyBook notes a book folder without chapter files.
func (t *TUI) DisplayEmptyBook(book m.Book) {
	t.send(emptyBookMsg{book: book}, func() {
		t.printf("%s\n", dimStyle.Render(string(book)+": no chapter files"))
	})
}

// DisplayChapterResult advances the progress bar and appends a status line.
func (t *TUI) DisplayChapterResult(result m.ChapterResult, position, total int) {
	t.send(chapterResultMsg{result: result, position: position, total: total}, func() {
		t.printf("%s\n", renderResultLine(result))
	})
}

// DisplaySummary replaces the progress view with the final counters.
func (t *TUI) DisplaySummary(summary m.Summary, report m.Path) {
	t.send(summaryMsg{summary: summary, report: report}, func() {
		model := newScanModel()
		model.counts = summary
		model.report = report
		t.printf("%s\n", model.viewSummary())
	})
}

// DisplayListing renders the discovered books as a styled table.
func (t *TUI) DisplayListing(books []m.BookListing) error {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{string(b.Book), formatChapterRanges(b.Chapters), strconv.Itoa(len(b.Chapters))})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("6"))).
		Headers("Book", "Chapters", "Files").
		Rows(rows...).
		StyleFunc(headerStyleFunc)

	t.printf("%s\n%s\n", tbl.Render(),
		dimStyle.Render(fmt.Sprintf("%d books, %d chapter files", len(books), countChapters(books))))

	return nil
}

// DisplayMismatches renders report rows as a styled table.
func (t *TUI) DisplayMismatches(records []m.Mismatch) error {
	if len(records) == 0 {
		t.printf("%s\n", statusStyle(m.StatusMatched).Render("No mismatches recorded"))
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Ref().String(),
			strconv.Itoa(r.FirstDiffVerse),
			fmt.Sprintf("%d/%d", r.LocalVerseCount, r.RefVerseCount),
			r.LocalSnippet,
			r.RefSnippet,
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("6"))).
		Headers("Chapter", "Verse", "Counts", "Local", "Reference").
		Rows(rows...).
		StyleFunc(headerStyleFunc)

	t.printf("%s\n%s\n", tbl.Render(),
		dimStyle.Render(fmt.Sprintf("%d mismatched chapters", len(records))))

	return nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

func headerStyleFunc(row, _ int) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if row == table.HeaderRow {
		return style.Bold(true).Foreground(lipgloss.Color("205"))
	}

	return style
}
