package controller

import (
	m "github.com/mouse-blink/versecheck/internal/model"
)

// Message types.
type booksFoundMsg struct {
	count int
}

type bookHeaderMsg struct {
	book     m.Book
	chapters int
}

type emptyBookMsg struct {
	book m.Book
}

type chapterResultMsg struct {
	result   m.ChapterResult
	position int
	total    int
}

type summaryMsg struct {
	summary m.Summary
	report  m.Path
}

type closeMsg struct{}
