package domain

import (
	m "github.com/mouse-blink/versecheck/internal/model"
	"github.com/mouse-blink/versecheck/internal/textnorm"
)

// FirstDiff locates the first verse at which local and ref disagree under
// strict normalization. It returns nil when both lists match.
//
// A wording difference inside the common prefix wins over a difference
// in length. When the prefix matches but the lengths differ, the diff
// points at min(len)+1 and its snippets describe the two lengths.
func FirstDiff(local, ref m.VerseList) *m.Diff {
	n := min(len(local), len(ref))

	for i := 0; i < n; i++ {
		if !textnorm.Equal(local[i], ref[i]) {
			return &m.Diff{
				Verse: i + 1,
				Local: textnorm.Loose(local[i]),
				Ref:   textnorm.Loose(ref[i]),
			}
		}
	}

	if len(local) != len(ref) {
		localDesc, refDesc := m.LengthSnippets(len(local), len(ref))

		return &m.Diff{
			Verse:          n + 1,
			Local:          localDesc,
			Ref:            refDesc,
			LengthMismatch: true,
		}
	}

	return nil
}
