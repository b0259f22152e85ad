package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/versecheck/internal/model"
)

const recentResultLines = 8

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusColorMap = map[m.Status]lipgloss.Color{
		m.StatusMatched:    lipgloss.Color("2"), // Green
		m.StatusMismatched: lipgloss.Color("1"), // Red
		m.StatusMissing:    lipgloss.Color("3"), // Yellow
		m.StatusError:      lipgloss.Color("1"),
	}
)

type scanModel struct {
	progressBar progress.Model
	books       int
	booksDone   int
	book        m.Book
	position    int
	total       int
	counts      m.Summary
	recent      []string
	report      m.Path
	finished    bool
	width       int
}

func newScanModel() scanModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return scanModel{progressBar: prog, width: 80}
}

func (s scanModel) Init() tea.Cmd {
	return nil
}

func (s scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.progressBar.Width = max(10, min(60, msg.Width-4))
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return s, tea.Quit
		}
	case booksFoundMsg:
		s.books = msg.count
	case bookHeaderMsg:
		if s.book != "" {
			s.booksDone++
		}

		s.book = msg.book
		s.position = 0
		s.total = msg.chapters
	case emptyBookMsg:
		s.booksDone++
		s.pushRecent(dimStyle.Render(fmt.Sprintf("○ %s: no chapter files", msg.book)))
	case chapterResultMsg:
		s.position = msg.position
		s.total = msg.total
		s.counts.Record(msg.result.Status)
		s.pushRecent(renderResultLine(msg.result))
	case summaryMsg:
		s.counts = msg.summary
		s.report = msg.report
		s.finished = true
	case closeMsg:
		return s, tea.Quit
	}

	return s, nil
}

func (s *scanModel) pushRecent(line string) {
	s.recent = append(s.recent, line)
	if len(s.recent) > recentResultLines {
		s.recent = s.recent[len(s.recent)-recentResultLines:]
	}
}

func (s scanModel) percent() float64 {
	if s.total == 0 {
		return 0
	}

	return float64(s.position) / float64(s.total)
}

func (s scanModel) View() string {
	title := titleStyle.Render("📖 Verse Check")

	if s.finished {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.viewSummary())
	}

	header := summaryLineStyle.Render(fmt.Sprintf(
		"Book: %s  •  Chapter: %s / %s  •  Books: %s / %s",
		accentStyle.Render(string(s.book)),
		accentStyle.Render(fmt.Sprintf("%d", s.position)),
		accentStyle.Render(fmt.Sprintf("%d", s.total)),
		accentStyle.Render(fmt.Sprintf("%d", s.booksDone)),
		accentStyle.Render(fmt.Sprintf("%d", s.books)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(s.progressBar.ViewAs(s.percent()))

	recent := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 0, 0).
		Render(strings.Join(append([]string{"Recent"}, s.recent...), "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, title, header, progressView, recent)
}

func (s scanModel) viewSummary() string {
	lines := []string{
		fmt.Sprintf("Scanned:    %s", accentStyle.Render(fmt.Sprintf("%d", s.counts.Total))),
		fmt.Sprintf("Matched:    %s", statusStyle(m.StatusMatched).Render(fmt.Sprintf("%d", s.counts.Matched))),
		fmt.Sprintf("Mismatched: %s", statusStyle(m.StatusMismatched).Render(fmt.Sprintf("%d", s.counts.Mismatched))),
		fmt.Sprintf("Missing:    %s", statusStyle(m.StatusMissing).Render(fmt.Sprintf("%d", s.counts.Missing))),
		fmt.Sprintf("Errors:     %s", statusStyle(m.StatusError).Render(fmt.Sprintf("%d", s.counts.Errors))),
	}

	if s.report != "" {
		lines = append(lines, "", "Report: "+string(s.report))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 0, 1, 2).
		Render(strings.Join(lines, "\n"))
}

func statusStyle(status m.Status) lipgloss.Style {
	color, ok := statusColorMap[status]
	if !ok {
		color = lipgloss.Color("8")
	}

	return lipgloss.NewStyle().Foreground(color)
}

func statusIcon(status m.Status) string {
	switch status {
	case m.StatusMatched:
		return "✓"
	case m.StatusMismatched:
		return "✗"
	case m.StatusMissing:
		return "?"
	default:
		return "!"
	}
}

func renderResultLine(result m.ChapterResult) string {
	return statusStyle(result.Status).Render(statusIcon(result.Status)+" "+result.Status.String()) +
		" " + describeResult(result)
}
