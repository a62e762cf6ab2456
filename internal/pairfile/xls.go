package pairfile

import (
	"bytes"
	"errors"
	"io"

	xls "github.com/extrame/xls"
)

// readXLS reads the first sheet of a legacy XLS workbook, trying the
// charsets legacy exports most commonly use, in the same order as the
// reconciliation service's reader. Rows whose first two cells are both
// empty are skipped; a row with only its first cell set yields a Pair with
// an empty B.
func readXLS(r io.Reader) ([]Pair, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wb *xls.WorkBook
	var lastErr error
	for _, ch := range []string{"utf-8", "windows-1251", "koi8-r"} {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("pairfile: failed to open xls workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	var pairs []Pair
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		a, b := row.Col(0), row.Col(1)
		if a == "" && b == "" {
			continue
		}
		pairs = append(pairs, Pair{A: a, B: b})
	}
	return pairs, nil
}
