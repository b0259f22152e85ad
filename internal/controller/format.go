package controller

import (
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/versecheck/internal/model"
)

// describeResult renders the detail part of a chapter status line.
func describeResult(result m.ChapterResult) string {
	switch result.Status {
	case m.StatusMatched:
		return result.Ref.String()
	case m.StatusMismatched:
		if result.Mismatch == nil {
			return result.Ref.String()
		}

		if result.Mismatch.LengthMismatch {
			return fmt.Sprintf("%s: first diff at verse %d (verse count %d vs %d)", result.Ref,
				result.Mismatch.FirstDiffVerse, result.Mismatch.LocalVerseCount, result.Mismatch.RefVerseCount)
		}

		return fmt.Sprintf("%s: first diff at verse %d", result.Ref, result.Mismatch.FirstDiffVerse)
	default:
		if result.Err != nil {
			return fmt.Sprintf("%s: %v", result.Ref, result.Err)
		}

		return result.Ref.String()
	}
}

// formatChapterRanges collapses sorted chapter numbers into "1-3, 5".
func formatChapterRanges(chapters []int) string {
	if len(chapters) == 0 {
		return "-"
	}

	var parts []string

	start, prev := chapters[0], chapters[0]

	flush := func() {
		if start == prev {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
		}
	}

	for _, n := range chapters[1:] {
		if n == prev+1 {
			prev = n
			continue
		}

		flush()

		start, prev = n, n
	}

	flush()

	return strings.Join(parts, ", ")
}

func countChapters(books []m.BookListing) int {
	total := 0
	for _, b := range books {
		total += len(b.Chapters)
	}

	return total
}
