package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/versecheck/internal/model"
	"github.com/spf13/cobra"
)

func newSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContainsAll(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_StartClose(t *testing.T) {
	ui, buf := newSimpleUI()

	if err := ui.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	ui.Close()

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestSimpleUI_ScanLines(t *testing.T) {
	ui, buf := newSimpleUI()

	gen := func(n int) m.ChapterRef { return m.ChapterRef{Book: "Genesis", Number: n} }

	ui.DisplayBooksFound(3)
	ui.DisplayBookHeader("Genesis", 4)
	ui.DisplayChapterResult(m.ChapterResult{Ref: gen(1), Status: m.StatusMatched}, 1, 4)
	ui.DisplayChapterResult(m.ChapterResult{
		Ref:      gen(2),
		Status:   m.StatusMismatched,
		Mismatch: &m.Mismatch{Book: "Genesis", Chapter: 2, FirstDiffVerse: 7},
	}, 2, 4)
	ui.DisplayChapterResult(m.ChapterResult{
		Ref:      gen(3),
		Status:   m.StatusMismatched,
		Mismatch: &m.Mismatch{FirstDiffVerse: 31, LengthMismatch: true, LocalVerseCount: 31, RefVerseCount: 30},
	}, 3, 4)
	ui.DisplayChapterResult(m.ChapterResult{Ref: gen(5), Status: m.StatusMissing, Err: m.ErrChapterNotFound}, 4, 4)
	ui.DisplayEmptyBook("Exodus")
	ui.DisplayChapterResult(m.ChapterResult{
		Ref:    m.ChapterRef{Book: "Ruth", Number: 1},
		Status: m.StatusError,
		Err:    errors.New("unexpected status 503"),
	}, 1, 1)

	assertContainsAll(t, buf.String(),
		"Found 3 books",
		"== Genesis (4 chapters) ==",
		"[1/4] [ok]",
		"Genesis 2: first diff at verse 7",
		"Genesis 3: first diff at verse 31 (verse count 31 vs 30)",
		"[missing]",
		"Genesis 5: chapter file not found",
		"Exodus: no chapter files",
		"Ruth 1: unexpected status 503",
	)
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	t.Run("with report", func(t *testing.T) {
		ui, buf := newSimpleUI()

		ui.DisplaySummary(m.Summary{Total: 5, Matched: 2, Mismatched: 1, Missing: 1, Errors: 1}, "/tmp/r.csv")

		assertContainsAll(t, buf.String(),
			"Scanned: 5", "Matched: 2", "Mismatched: 1", "Missing: 1", "Errors: 1",
			"Report written to /tmp/r.csv",
		)
	})

	t.Run("without mismatches", func(t *testing.T) {
		ui, buf := newSimpleUI()

		ui.DisplaySummary(m.Summary{Total: 2, Matched: 2}, "")

		assertContainsAll(t, buf.String(), "Scanned: 2", "No mismatches, report not written")
	})
}

func TestSimpleUI_DisplayListing_PrintsTable(t *testing.T) {
	ui, buf := newSimpleUI()

	err := ui.DisplayListing([]m.BookListing{
		{Book: "Genesis", Chapters: []int{1, 2, 3, 5}},
		{Book: "Jude"},
	})
	if err != nil {
		t.Fatalf("DisplayListing() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"Genesis", "1-3, 5", "Jude", "-",
		"TOTAL BOOKS 2",
		"4",
	)
}

func TestSimpleUI_DisplayMismatches(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		ui, buf := newSimpleUI()

		err := ui.DisplayMismatches([]m.Mismatch{{
			Book: "Exodus", Chapter: 1, FirstDiffVerse: 1,
			LocalSnippet: "Now these are the names", RefSnippet: "Now these be the names",
			LocalVerseCount: 22, RefVerseCount: 22,
		}})
		if err != nil {
			t.Fatalf("DisplayMismatches() error = %v", err)
		}

		assertContainsAll(t, buf.String(), "Exodus 1", "22/22", "Now these are the names", "Now these be the names", "TOTAL 1")
	})

	t.Run("empty", func(t *testing.T) {
		ui, buf := newSimpleUI()

		if err := ui.DisplayMismatches(nil); err != nil {
			t.Fatalf("DisplayMismatches() error = %v", err)
		}

		assertContainsAll(t, buf.String(), "No mismatches recorded")
	})
}

func TestFormatChapterRanges(t *testing.T) {
	tests := []struct {
		in   []int
		want string
	}{
		{nil, "-"},
		{[]int{4}, "4"},
		{[]int{1, 2, 3}, "1-3"},
		{[]int{1, 3, 4, 5, 9}, "1, 3-5, 9"},
		{[]int{1, 2, 50}, "1-2, 50"},
	}

	for _, tt := range tests {
		if got := formatChapterRanges(tt.in); got != tt.want {
			t.Errorf("formatChapterRanges(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
