package model

import (
	"fmt"
	"unicode/utf8"
)

// SnippetLimit is the maximum number of runes kept in a reported snippet.
const SnippetLimit = 200

// LengthSnippets describes a verse count mismatch in place of verse text.
func LengthSnippets(localCount, refCount int) (string, string) {
	return fmt.Sprintf("[local length=%d]", localCount), fmt.Sprintf("[ref length=%d]", refCount)
}

// Diff is the outcome of comparing two verse lists when they differ.
// A nil *Diff means the lists match.
type Diff struct {
	Verse          int    // 1-based verse of the first difference
	Local          string // local text at Verse, or a length description
	Ref            string // reference text at Verse, or a length description
	LengthMismatch bool   // lists agree on their common prefix but differ in length
}

// Mismatch is one row of the mismatch report.
type Mismatch struct {
	Book            Book
	Chapter         int
	FirstDiffVerse  int
	LengthMismatch  bool
	LocalSnippet    string
	RefSnippet      string
	LocalVerseCount int
	RefVerseCount   int
}

// NewMismatch builds a report row from a diff, truncating snippets.
func NewMismatch(ref ChapterRef, diff Diff, localCount, refCount int) Mismatch {
	return Mismatch{
		Book:            ref.Book,
		Chapter:         ref.Number,
		FirstDiffVerse:  diff.Verse,
		LengthMismatch:  diff.LengthMismatch,
		LocalSnippet:    Truncate(diff.Local, SnippetLimit),
		RefSnippet:      Truncate(diff.Ref, SnippetLimit),
		LocalVerseCount: localCount,
		RefVerseCount:   refCount,
	}
}

// Ref returns the chapter the mismatch belongs to.
func (m Mismatch) Ref() ChapterRef {
	return ChapterRef{Book: m.Book, Number: m.Chapter}
}

// Truncate cuts s to at most limit runes.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)

	return string(runes[:limit])
}

// Status is the outcome of checking one chapter.
type Status int

// Chapter outcomes.
const (
	StatusMatched Status = iota
	StatusMismatched
	StatusMissing
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusMismatched:
		return "mismatched"
	case StatusMissing:
		return "missing"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ChapterResult is what the workflow reports to the UI for each chapter.
type ChapterResult struct {
	Ref      ChapterRef
	Status   Status
	Mismatch *Mismatch // set when Status is StatusMismatched
	Err      error     // set when Status is StatusMissing or StatusError
}

// Summary counts chapter outcomes over a run.
type Summary struct {
	Total      int
	Matched    int
	Mismatched int
	Missing    int
	Errors     int
}

// Record adds one chapter outcome to the counters.
func (s *Summary) Record(status Status) {
	s.Total++

	switch status {
	case StatusMatched:
		s.Matched++
	case StatusMismatched:
		s.Mismatched++
	case StatusMissing:
		s.Missing++
	case StatusError:
		s.Errors++
	}
}

// BookListing describes one discovered book for the list command.
type BookListing struct {
	Book     Book
	Chapters []int
}
