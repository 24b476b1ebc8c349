// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name written by WriteXLSX.
const DefaultSheet = "destinations"

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .json and .xlsx.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrMissingColumn is returned when a spreadsheet lacks the name column.
	ErrMissingColumn = errors.New("missing required column")
)

// Row is one parsed input row. Number is 1-based in the source: the array
// index for JSON, the sheet row for spreadsheets. Err is set when the row
// could not be parsed; Record is then incomplete.
type Row struct {
	Number int
	Record Record
	Err    error
}

// ReadFile reads a catalog from a .json or .xlsx file.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(f)
	case ".xlsx":
		return ReadXLSX(f, "")
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadJSON decodes an array of records. Unknown fields are rejected so a
// misspelled column is not silently dropped.
func ReadJSON(r io.Reader) ([]Row, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog JSON: %w", err)
	}
	rows := make([]Row, len(records))
	for i := range records {
		rows[i] = Row{Number: i + 1, Record: records[i]}
	}
	return rows, nil
}

// ReadXLSX reads records from sheet, or from the first sheet when sheet is
// empty. The first row holds the headers; header matching ignores case and
// treats spaces as underscores. Unknown headers are ignored and blank rows
// are skipped.
func ReadXLSX(r io.Reader, sheet string) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, errors.New("spreadsheet has no sheets")
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(cells) == 0 {
		return []Row{}, nil
	}

	header, err := mapHeader(cells[0])
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(cells)-1)
	for i := 1; i < len(cells); i++ {
		if isBlank(cells[i]) {
			continue
		}
		row := Row{Number: i + 1}
		for colIdx, col := range header {
			if col == nil || colIdx >= len(cells[i]) {
				continue
			}
			if err := col.set(&row.Record, strings.TrimSpace(cells[i][colIdx])); err != nil {
				row.Err = fmt.Errorf("column %s: %w", col.name, err)
				break
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// mapHeader resolves each header cell to its column, nil for unknown ones.
func mapHeader(cells []string) ([]*column, error) {
	byName := make(map[string]*column, len(columns))
	for i := range columns {
		byName[columns[i].name] = &columns[i]
	}

	out := make([]*column, len(cells))
	hasName := false
	for i, h := range cells {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
		out[i] = byName[key]
		if key == "name" {
			hasName = true
		}
	}
	if !hasName {
		return nil, fmt.Errorf("%w: name", ErrMissingColumn)
	}
	return out, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteXLSX writes records to w as a single-sheet workbook in Columns order.
func WriteXLSX(w io.Writer, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), DefaultSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	headers := Columns()
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(DefaultSheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := records[i].values()
		if err := f.SetSheetRow(DefaultSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(DefaultSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode spreadsheet: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
