package pairfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readTabSeparated reads exactly-two-column, tab-separated lines,
// auto-detecting Windows-1251 the way the reconciliation service's CSV
// reader does; every other detected charset is treated as UTF-8. A line
// with a column count other than two is a fatal input error, matching the
// CLI's file-input contract.
func readTabSeparated(r io.Reader) ([]Pair, error) {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	var dec io.Reader = br
	switch cs {
	case "windows-1251", "cp1251":
		dec = transform.NewReader(br, charmap.Windows1251.NewDecoder())
	}

	var pairs []Pair
	scanner := bufio.NewScanner(dec)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("pairfile: line %d: want 2 tab-separated columns, got %d", lineNo, len(fields))
		}
		pairs = append(pairs, Pair{A: fields[0], B: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
