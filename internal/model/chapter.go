// Package model defines the data structures for corpus validation.
package model

import "fmt"

// Path represents a file system path.
type Path string

// ChapterRef identifies one unit of comparison. Number is 1-based.
type ChapterRef struct {
	Book   Book
	Number int
}

func (r ChapterRef) String() string {
	return fmt.Sprintf("%s %d", r.Book, r.Number)
}

// VerseList holds the texts of a chapter in verse order: index i is verse i+1.
type VerseList []string
