// Copyright 2026 The Watermap Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// decodeRecords turns raw file contents into a header row followed by data
// rows. The format is chosen from the file extension.
func decodeRecords(path string, data []byte) ([][]string, error) {
	var (
		records [][]string
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		records, err = decodeCSV(data)
	case ".xlsx":
		records, err = decodeXLSX(data)
	case ".json":
		records, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (use .csv, .xlsx, or .json)", ext)
	}
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows")
	}
	return rectangular(records), nil
}

func decodeCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return records, nil
}

// decodeXLSX reads the first sheet of a workbook.
func decodeXLSX(data []byte) ([][]string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer wb.Close() //nolint:errcheck // read-only workbook

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// decodeJSON reads an array of flat objects. Columns are the sorted union of
// keys; null and absent fields become empty cells.
func decodeJSON(data []byte) ([][]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var objs []map[string]any
	if err := dec.Decode(&objs); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	keys := make(map[string]bool)
	for _, o := range objs {
		for k := range o {
			keys[k] = true
		}
	}
	header := make([]string, 0, len(keys))
	for k := range keys {
		header = append(header, k)
	}
	sort.Strings(header)

	records := make([][]string, 0, len(objs)+1)
	records = append(records, header)
	for _, o := range objs {
		row := make([]string, len(header))
		for i, k := range header {
			row[i] = jsonCell(o[k])
		}
		records = append(records, row)
	}
	return records, nil
}

func jsonCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// rectangular pads or truncates every row to the header width.
func rectangular(records [][]string) [][]string {
	width := len(records[0])
	for i, row := range records {
		switch {
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			records[i] = padded
		case len(row) > width:
			records[i] = row[:width]
		}
	}
	return records
}
