// Package controller provides output adapters for displaying validation progress and reports.
package controller

import (
	m "github.com/mouse-blink/versecheck/internal/model"
)

// UI defines the interface for displaying scan progress and reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start() error
	Close() // Close flushes pending output and waits for the UI to finish.
	DisplayBooksFound(count int)
	DisplayBookHeader(book m.Book, chapters int)
	DisplayEmptyBook(book m.Book)
	DisplayChapterResult(result m.ChapterResult, position, total int)
	DisplaySummary(summary m.Summary, report m.Path)
	DisplayListing(books []m.BookListing) error
	DisplayMismatches(records []m.Mismatch) error
}
