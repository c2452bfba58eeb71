package ingest

import "strings"

// Header keywords recognized in either language. A candidate row counts one
// hit per keyword found anywhere in its lowercased cells.
var headerKeywords = []string{
	"name", "menu", "item", "category", "price",
	"ชื่อ", "รายการ", "หมวด", "ราคา",
}

const (
	headerScanWindow = 10
	headerHitMinimum = 2
)

// DetectHeaderRow finds the column-header row within the first ten rows.
// Sheet authors commonly prepend titles, notes, or blank rows, so the first
// row with at least two keyword hits wins. If nothing qualifies the sheet is
// assumed to start with its header at row 0.
func DetectHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > headerScanWindow {
		limit = headerScanWindow
	}

	for i := 0; i < limit; i++ {
		joined := strings.ToLower(strings.Join(rows[i], " "))
		hits := 0
		for _, kw := range headerKeywords {
			if strings.Contains(joined, kw) {
				hits++
			}
		}
		if hits >= headerHitMinimum {
			return i
		}
	}

	return 0
}
