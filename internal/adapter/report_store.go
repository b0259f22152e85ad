package adapter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	m "github.com/mouse-blink/versecheck/internal/model"
)

// ReportHeader is the fixed column order of the mismatch report.
var ReportHeader = []string{
	"book", "chapter", "first_diff_verse",
	"local_verse_count", "ref_verse_count",
	"local_snippet", "ref_snippet",
}

const lengthSnippetPrefix = "[local length="

// ReportStore persists and retrieves mismatch reports.
type ReportStore interface {
	SaveMismatches(path m.Path, records []m.Mismatch) error
	LoadMismatches(path m.Path) ([]m.Mismatch, error)
}

// LocalReportStore writes reports as CSV files on the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveMismatches writes records to path, replacing any previous report.
func (rs *LocalReportStore) SaveMismatches(path m.Path, records []m.Mismatch) error {
	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	// #nosec G304 - path is the configured report location
	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	if err := writeMismatches(f, records); err != nil {
		_ = f.Close()
		return fmt.Errorf("write report %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", path, err)
	}

	return nil
}

// LoadMismatches reads a report written by SaveMismatches.
func (rs *LocalReportStore) LoadMismatches(path m.Path) ([]m.Mismatch, error) {
	// #nosec G304 - path is supplied by the user on purpose
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}

	defer func() { _ = f.Close() }()

	records, err := readMismatches(f)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	return records, nil
}

func writeMismatches(w io.Writer, records []m.Mismatch) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ReportHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			string(r.Book),
			strconv.Itoa(r.Chapter),
			strconv.Itoa(r.FirstDiffVerse),
			strconv.Itoa(r.LocalVerseCount),
			strconv.Itoa(r.RefVerseCount),
			r.LocalSnippet,
			r.RefSnippet,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func readMismatches(r io.Reader) ([]m.Mismatch, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(ReportHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty report")
	}

	if err != nil {
		return nil, err
	}

	if !slices.Equal(header, ReportHeader) {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	var records []m.Mismatch

	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}

		if err != nil {
			return nil, err
		}

		rec, err := parseMismatchRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, rec)
	}
}

func parseMismatchRow(row []string) (m.Mismatch, error) {
	ints := make([]int, 4)

	for i, col := range []int{1, 2, 3, 4} {
		n, err := strconv.Atoi(row[col])
		if err != nil {
			return m.Mismatch{}, fmt.Errorf("%s: %w", ReportHeader[col], err)
		}

		ints[i] = n
	}

	return m.Mismatch{
		Book:            m.Book(row[0]),
		Chapter:         ints[0],
		FirstDiffVerse:  ints[1],
		LocalVerseCount: ints[2],
		RefVerseCount:   ints[3],
		LocalSnippet:    row[5],
		RefSnippet:      row[6],
		LengthMismatch:  strings.HasPrefix(row[5], lengthSnippetPrefix),
	}, nil
}
