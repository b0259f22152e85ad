// Package domain holds the validation workflow: corpus discovery, the
// per-chapter comparison and the diff engine.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/versecheck/internal/adapter"
	"github.com/mouse-blink/versecheck/internal/controller"
	m "github.com/mouse-blink/versecheck/internal/model"
)

// CheckArgs configures a validation run.
type CheckArgs struct {
	Root   m.Path
	Report m.Path
}

// ListArgs configures listing the corpus.
type ListArgs struct {
	Root m.Path
}

// ViewArgs configures viewing a previously written report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	corpus  adapter.CorpusFSAdapter
	reports adapter.ReportStore
	ui      controller.UI
	orch    Orchestrator
	log     *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	corpus adapter.CorpusFSAdapter,
	reports adapter.ReportStore,
	ui controller.UI,
	orch Orchestrator,
	logger *slog.Logger,
) Workflow {
	return &workflow{
		corpus:  corpus,
		reports: reports,
		ui:      ui,
		orch:    orch,
		log:     logger,
	}
}

// Check scans every discovered chapter sequentially, then writes the
// mismatch report (only when something differs) and prints the summary.
// Per-chapter failures are counted and never stop the scan; only an empty
// corpus root or a failed report write produce an error.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	books, err := w.discoverBooks(args.Root)
	if err != nil {
		return err
	}

	if err := w.ui.Start(); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayBooksFound(len(books))
	w.log.InfoContext(ctx, "scan started", slog.String("root", string(args.Root)), slog.Int("books", len(books)))

	var (
		summary    m.Summary
		mismatches []m.Mismatch
	)

	for _, book := range books {
		chapters, err := w.corpus.Chapters(args.Root, book)
		if err != nil {
			w.log.WarnContext(ctx, "cannot list chapters", slog.String("book", string(book)), slog.String("error", err.Error()))
		}

		if len(chapters) == 0 {
			w.ui.DisplayEmptyBook(book)
			continue
		}

		w.ui.DisplayBookHeader(book, len(chapters))

		for i, number := range chapters {
			result := w.orch.CheckChapter(ctx, args.Root, m.ChapterRef{Book: book, Number: number})

			summary.Record(result.Status)

			if result.Mismatch != nil {
				mismatches = append(mismatches, *result.Mismatch)
			}

			w.ui.DisplayChapterResult(result, i+1, len(chapters))
		}
	}

	var (
		written m.Path
		saveErr error
	)

	if len(mismatches) > 0 {
		saveErr = w.reports.SaveMismatches(args.Report, mismatches)
		if saveErr == nil {
			written = args.Report
		}
	}

	w.log.InfoContext(ctx, "scan finished",
		slog.Int("total", summary.Total),
		slog.Int("matched", summary.Matched),
		slog.Int("mismatched", summary.Mismatched),
		slog.Int("missing", summary.Missing),
		slog.Int("errors", summary.Errors),
	)

	w.ui.DisplaySummary(summary, written)

	if saveErr != nil {
		return fmt.Errorf("failed to write report: %w", saveErr)
	}

	return nil
}

// List shows the discovered books and their chapters without fetching anything.
func (w *workflow) List(args ListArgs) error {
	books, err := w.discoverBooks(args.Root)
	if err != nil {
		return err
	}

	listings := make([]m.BookListing, 0, len(books))

	for _, book := range books {
		chapters, err := w.corpus.Chapters(args.Root, book)
		if err != nil {
			return fmt.Errorf("list chapters of %s: %w", book, err)
		}

		listings = append(listings, m.BookListing{Book: book, Chapters: chapters})
	}

	return w.ui.DisplayListing(listings)
}

// View renders a previously written mismatch report.
func (w *workflow) View(args ViewArgs) error {
	records, err := w.reports.LoadMismatches(args.Report)
	if err != nil {
		return err
	}

	return w.ui.DisplayMismatches(records)
}

func (w *workflow) discoverBooks(root m.Path) ([]m.Book, error) {
	books, err := w.corpus.Books(root)
	if err != nil {
		return nil, fmt.Errorf("discover books: %w", err)
	}

	if len(books) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoBooks, root)
	}

	return books, nil
}
