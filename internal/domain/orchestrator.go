package domain

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mouse-blink/versecheck/internal/adapter"
	m "github.com/mouse-blink/versecheck/internal/model"
)

// Orchestrator checks a single chapter: it reads the local copy, fetches
// the reference and compares the two.
type Orchestrator interface {
	CheckChapter(ctx context.Context, root m.Path, ref m.ChapterRef) m.ChapterResult
}

type orchestrator struct {
	corpus    adapter.CorpusFSAdapter
	reference adapter.ReferenceFetcher
	log       *slog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// corpus and reference adapters.
func NewOrchestrator(corpus adapter.CorpusFSAdapter, reference adapter.ReferenceFetcher, logger *slog.Logger) Orchestrator {
	return &orchestrator{
		corpus:    corpus,
		reference: reference,
		log:       logger,
	}
}

func (o *orchestrator) CheckChapter(ctx context.Context, root m.Path, ref m.ChapterRef) m.ChapterResult {
	local, err := o.corpus.ReadChapter(root, ref)
	if err != nil {
		return o.resultForReadError(ctx, ref, err)
	}

	// The reference is only fetched for chapters that exist locally.
	remote, err := o.reference.FetchChapter(ctx, ref)
	if err != nil {
		return m.ChapterResult{Ref: ref, Status: m.StatusError, Err: err}
	}

	diff := FirstDiff(local, remote)
	if diff == nil {
		return m.ChapterResult{Ref: ref, Status: m.StatusMatched}
	}

	record := m.NewMismatch(ref, *diff, len(local), len(remote))

	o.log.InfoContext(ctx, "chapter mismatch",
		slog.String("chapter", ref.String()),
		slog.Int("verse", record.FirstDiffVerse),
		slog.Bool("length_mismatch", record.LengthMismatch),
	)

	return m.ChapterResult{Ref: ref, Status: m.StatusMismatched, Mismatch: &record}
}

func (o *orchestrator) resultForReadError(ctx context.Context, ref m.ChapterRef, err error) m.ChapterResult {
	if errors.Is(err, m.ErrChapterNotFound) {
		return m.ChapterResult{Ref: ref, Status: m.StatusMissing, Err: err}
	}

	o.log.WarnContext(ctx, "local chapter unreadable",
		slog.String("chapter", ref.String()),
		slog.String("error", err.Error()),
	)

	return m.ChapterResult{Ref: ref, Status: m.StatusError, Err: err}
}
