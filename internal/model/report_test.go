package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 200))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "", Truncate("abc", 0))
	// counts runes, not bytes
	assert.Equal(t, "Solomon’", Truncate("Solomon’s", 8))
}

func TestNewMismatch_TruncatesSnippets(t *testing.T) {
	long := strings.Repeat("x", 250)
	ref := ChapterRef{Book: "Psalms", Number: 119}

	rec := NewMismatch(ref, Diff{Verse: 4, Local: long, Ref: "short"}, 176, 176)

	assert.Equal(t, Book("Psalms"), rec.Book)
	assert.Equal(t, 119, rec.Chapter)
	assert.Equal(t, 4, rec.FirstDiffVerse)
	assert.Len(t, rec.LocalSnippet, SnippetLimit)
	assert.Equal(t, "short", rec.RefSnippet)
	assert.Equal(t, 176, rec.LocalVerseCount)
	assert.Equal(t, ref, rec.Ref())
}

func TestLengthSnippets(t *testing.T) {
	local, ref := LengthSnippets(31, 30)

	assert.Equal(t, "[local length=31]", local)
	assert.Equal(t, "[ref length=30]", ref)
}

func TestSummary_Record(t *testing.T) {
	var s Summary

	for _, st := range []Status{StatusMatched, StatusMatched, StatusMismatched, StatusMissing, StatusError, StatusError} {
		s.Record(st)
	}

	assert.Equal(t, Summary{Total: 6, Matched: 2, Mismatched: 1, Missing: 1, Errors: 2}, s)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "matched", StatusMatched.String())
	assert.Equal(t, "mismatched", StatusMismatched.String())
	assert.Equal(t, "missing", StatusMissing.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "status(9)", Status(9).String())
}

func TestChapterRef_String(t *testing.T) {
	assert.Equal(t, "Song of Solomon 2", ChapterRef{Book: "Song of Solomon", Number: 2}.String())
}
