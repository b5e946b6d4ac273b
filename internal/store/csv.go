// Package store reads and writes the tabular form of a subtitle file: one
// row per block with its timecode range, source text, and translation.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dimchansky/utfbom"
)

// Column names are kept exactly as the historical CSV corpus uses them, so
// files produced by older runs stay readable.
const (
	colTimecode    = "Timecode"
	colContent     = "Content"
	colTranslation = "Content_zh"
)

// ErrMissingColumn reports a CSV whose header lacks a required column. The
// file is skipped; the batch continues.
var ErrMissingColumn = errors.New("missing required column")

// Record is one subtitle row: the SRT timecode range as text, the source
// text, and the (possibly empty) translation.
type Record struct {
	Timecode    string
	Content     string
	Translation string
}

// Read parses CSV rows. The header must contain Timecode and Content; the
// returned bool reports whether a Content_zh column was present. A UTF-8
// BOM is tolerated.
func Read(r io.Reader) ([]Record, bool, error) {
	cr := csv.NewReader(utfbom.SkipOnly(r))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	tcCol, ok := cols[colTimecode]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrMissingColumn, colTimecode)
	}
	contentCol, ok := cols[colContent]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrMissingColumn, colContent)
	}
	zhCol, hasTranslation := cols[colTranslation]

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, hasTranslation, fmt.Errorf("reading csv row: %w", err)
		}
		rec := Record{Timecode: field(row, tcCol), Content: field(row, contentCol)}
		if hasTranslation {
			rec.Translation = field(row, zhCol)
		}
		records = append(records, rec)
	}
	return records, hasTranslation, nil
}

// Write emits the header and rows. The Content_zh column is included only
// when withTranslation is set.
func Write(w io.Writer, records []Record, withTranslation bool) error {
	cw := csv.NewWriter(w)
	header := []string{colTimecode, colContent}
	if withTranslation {
		header = append(header, colTranslation)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.Timecode, rec.Content}
		if withTranslation {
			row = append(row, rec.Translation)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadFile reads records from a CSV file on disk.
func ReadFile(path string) ([]Record, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes records to a CSV file on disk.
func WriteFile(path string, records []Record, withTranslation bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, records, withTranslation); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
