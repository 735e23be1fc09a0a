package parser

import (
	"fmt"
	"strings"
)

// utf8BOM is stripped from the first header cell of CSV exports.
const utf8BOM = "\uFEFF"

// maxHeaderScan bounds how many leading rows are searched for the header.
const maxHeaderScan = 20

// findHeader locates the header row containing every required column.
// LIMS exports may start with title or filter rows, so the first rows are scanned.
// Returns the header row index and the column index of each required name.
func findHeader(rows [][]string, required []string) (int, map[string]int, error) {
	limit := len(rows)
	if limit > maxHeaderScan {
		limit = maxHeaderScan
	}

	bestRow, bestHits := -1, 0
	var bestMissing []string
	for rowIdx := 0; rowIdx < limit; rowIdx++ {
		index := indexHeader(rows[rowIdx])
		cols := make(map[string]int, len(required))
		var missing []string
		for _, name := range required {
			if colIdx, ok := index[normalizeHeader(name)]; ok {
				cols[name] = colIdx
			} else {
				missing = append(missing, name)
			}
		}
		if len(missing) == 0 {
			return rowIdx, cols, nil
		}
		if hits := len(required) - len(missing); hits > bestHits {
			bestRow, bestHits, bestMissing = rowIdx, hits, missing
		}
	}

	if bestRow < 0 {
		return -1, nil, fmt.Errorf("%w: no header row with %s", ErrMissingColumn, strings.Join(quoteAll(required), ", "))
	}
	return -1, nil, fmt.Errorf("%w: %s (header row %d)", ErrMissingColumn, strings.Join(quoteAll(bestMissing), ", "), bestRow+1)
}

// indexHeader maps each normalized header cell to its first column index.
func indexHeader(row []string) map[string]int {
	index := make(map[string]int, len(row))
	for colIdx, cell := range row {
		key := normalizeHeader(cell)
		if key == "" {
			continue
		}
		if _, dup := index[key]; !dup {
			index[key] = colIdx
		}
	}
	return index
}

func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, utf8BOM)
	return strings.ToLower(strings.TrimSpace(s))
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}
