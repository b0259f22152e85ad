// Package adapter contains the filesystem, network and report adapters
// the validation workflow relies on.
package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	m "github.com/mouse-blink/versecheck/internal/model"
)

const chapterExt = ".json"

// CorpusFSAdapter abstracts the on-disk corpus layout
// (<root>/<Book>/<NN>.json) so the workflow can be tested without
// touching the disk.
type CorpusFSAdapter interface {
	// Books returns the canonical books that have a directory under root,
	// in canonical order.
	Books(root m.Path) ([]m.Book, error)

	// Chapters returns the chapter numbers found in a book directory,
	// ascending and without duplicates.
	Chapters(root m.Path, book m.Book) ([]int, error)

	// ReadChapter loads the verse texts of one chapter. A chapter without
	// a file yields an error matching m.ErrChapterNotFound.
	ReadChapter(root m.Path, ref m.ChapterRef) (m.VerseList, error)
}

// LocalCorpusFSAdapter reads the corpus from the local filesystem.
type LocalCorpusFSAdapter struct{}

// NewLocalCorpusFSAdapter constructs a LocalCorpusFSAdapter instance ready to
// be wired into the workflow.
func NewLocalCorpusFSAdapter() *LocalCorpusFSAdapter {
	return &LocalCorpusFSAdapter{}
}

// Books scans root for directories named exactly like canonical books.
func (a *LocalCorpusFSAdapter) Books(root m.Path) ([]m.Book, error) {
	entries, err := os.ReadDir(string(root))
	if err != nil {
		return nil, fmt.Errorf("read corpus root: %w", err)
	}

	var books []m.Book

	for _, entry := range entries {
		if !m.IsCanonical(entry.Name()) {
			continue
		}

		// Stat rather than entry.IsDir so symlinked book folders count.
		info, err := os.Stat(filepath.Join(string(root), entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}

		books = append(books, m.Book(entry.Name()))
	}

	slices.SortFunc(books, func(a, b m.Book) int {
		ai, _ := m.BookIndex(string(a))
		bi, _ := m.BookIndex(string(b))

		return ai - bi
	})

	return books, nil
}

// Chapters lists <n>.json files of a book directory. Names whose stem is
// not a positive integer are skipped.
func (a *LocalCorpusFSAdapter) Chapters(root m.Path, book m.Book) ([]int, error) {
	entries, err := os.ReadDir(filepath.Join(string(root), string(book)))
	if err != nil {
		return nil, fmt.Errorf("read book directory %s: %w", book, err)
	}

	seen := make(map[int]struct{})

	var chapters []int

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		n, ok := parseChapterName(entry.Name())
		if !ok {
			continue
		}

		// 3.json and 03.json name the same chapter.
		if _, dup := seen[n]; dup {
			continue
		}

		seen[n] = struct{}{}
		chapters = append(chapters, n)
	}

	slices.Sort(chapters)

	return chapters, nil
}

// ReadChapter reads <NN>.json, falling back to the unpadded <N>.json.
func (a *LocalCorpusFSAdapter) ReadChapter(root m.Path, ref m.ChapterRef) (m.VerseList, error) {
	candidates := ChapterFileCandidates(root, ref)

	for _, path := range candidates {
		info, err := os.Stat(string(path))
		if os.IsNotExist(err) {
			continue
		}

		if err != nil {
			return nil, &m.ChapterReadError{Ref: ref, Path: path, Err: err}
		}

		if info.IsDir() {
			return nil, &m.ChapterReadError{Ref: ref, Path: path, Err: fmt.Errorf("is a directory")}
		}

		return a.readChapterFile(ref, path)
	}

	return nil, &m.ChapterNotFoundError{Ref: ref, Candidates: candidates}
}

// ChapterFileCandidates returns the padded and unpadded file paths of a
// chapter, in lookup order.
func ChapterFileCandidates(root m.Path, ref m.ChapterRef) []m.Path {
	dir := filepath.Join(string(root), string(ref.Book))
	padded := m.Path(filepath.Join(dir, fmt.Sprintf("%02d%s", ref.Number, chapterExt)))
	plain := m.Path(filepath.Join(dir, fmt.Sprintf("%d%s", ref.Number, chapterExt)))

	if padded == plain {
		return []m.Path{padded}
	}

	return []m.Path{padded, plain}
}

func (a *LocalCorpusFSAdapter) readChapterFile(ref m.ChapterRef, path m.Path) (m.VerseList, error) {
	// #nosec G304 - path is built from the configured corpus root
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, &m.ChapterReadError{Ref: ref, Path: path, Err: err}
	}

	var file chapterFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &m.ChapterReadError{Ref: ref, Path: path, Err: err}
	}

	return m.VerseList(file.Verses), nil
}

func parseChapterName(name string) (int, bool) {
	stem, ok := strings.CutSuffix(name, chapterExt)
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(stem)
	if err != nil || n < 1 {
		return 0, false
	}

	return n, true
}
