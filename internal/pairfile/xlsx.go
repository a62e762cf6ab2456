package pairfile

import (
	"bytes"
	"io"

	excelize "github.com/xuri/excelize/v2"
)

// readXLSX reads the first sheet of an XLSX workbook, taking the first two
// columns of every row that has them.
func readXLSX(r io.Reader) ([]Pair, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	for _, rec := range rows {
		if p, ok := firstTwo(rec); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs, nil
}
