// Package pairfile reads batches of string pairs to compare, dispatching
// on filename extension the same way the reconciliation service's
// internal/fileio.ReadAnyMaps dispatches CSV/XLS/XLSX parsing.
//
// The tab-separated format is the one the CLI's file input contract
// requires: exactly two columns per line, no header row. CSV and
// spreadsheet formats are accepted as a superset for convenience; a CSV or
// XLSX row with fewer than two columns, and an XLS row whose first two
// cells are both empty, is skipped rather than treated as an error, since
// those formats routinely carry blank trailing lines.
package pairfile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Pair is one line of input: two strings to compare.
type Pair struct {
	A, B string
}

// ReadAny reads r as filename's format and returns the pairs it contains.
// For the tab-separated format (.tsv, .txt, or no extension) a line with a
// column count other than two is a hard error, per the CLI's file-input
// contract; other formats silently skip short or empty rows.
func ReadAny(r io.Reader, filename string) ([]Pair, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".tsv", ".txt", "":
		return readTabSeparated(r)
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	default:
		return nil, fmt.Errorf("pairfile: unsupported file extension %q", ext)
	}
}

// firstTwo extracts a Pair from the first two columns of rec, as is, or
// reports ok=false if rec has fewer than two.
func firstTwo(rec []string) (Pair, bool) {
	if len(rec) < 2 {
		return Pair{}, false
	}
	return Pair{A: rec[0], B: rec[1]}, true
}
