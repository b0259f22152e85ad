package model

import (
	"errors"
	"fmt"
)

var (
	// ErrChapterNotFound indicates neither the padded nor the unpadded chapter file exists.
	ErrChapterNotFound = errors.New("chapter file not found")
	// ErrFetchExhausted indicates every attempt to fetch a reference chapter failed.
	ErrFetchExhausted = errors.New("reference fetch exhausted")
	// ErrRateLimited is the last error of an attempt rejected with HTTP 429.
	ErrRateLimited = errors.New("rate limited")
)

// ChapterNotFoundError names the files that were looked for.
type ChapterNotFoundError struct {
	Ref        ChapterRef
	Candidates []Path
}

func (e *ChapterNotFoundError) Error() string {
	return fmt.Sprintf("missing file for %s: tried %v", e.Ref, e.Candidates)
}

func (e *ChapterNotFoundError) Unwrap() error {
	return ErrChapterNotFound
}

// ChapterReadError is a local chapter file that exists but cannot be read or parsed.
type ChapterReadError struct {
	Ref  ChapterRef
	Path Path
	Err  error
}

func (e *ChapterReadError) Error() string {
	return fmt.Sprintf("failed to read %s at %s: %v", e.Ref, e.Path, e.Err)
}

func (e *ChapterReadError) Unwrap() error {
	return e.Err
}

// FetchExhaustedError carries the last failure after the retry budget ran out.
type FetchExhaustedError struct {
	Ref      ChapterRef
	Attempts int
	Last     error
}

func (e *FetchExhaustedError) Error() string {
	return fmt.Sprintf("failed to fetch %s after %d attempts: %v", e.Ref, e.Attempts, e.Last)
}

// Unwrap exposes both the sentinel and the last underlying error.
func (e *FetchExhaustedError) Unwrap() []error {
	if e.Last == nil {
		return []error{ErrFetchExhausted}
	}

	return []error{ErrFetchExhausted, e.Last}
}
