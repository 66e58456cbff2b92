package scoring

import (
	"sort"
	"strconv"
	"strings"
)

// ParseItemCell parses a spreadsheet cell into the set of distinct item
// numbers within [min, max]. The cell may hold whitespace or comma
// separated integers; non-numeric and out-of-range tokens are dropped.
// An empty cell yields an empty set, not an error.
//
// Legacy fallback: some rows still use the old "count only" convention
// where the cell holds a single total, e.g. "7" meaning items 1..7. If
// strict parsing yields nothing but the cell holds one positive integer,
// it expands to the sequence 1..min(n, max).
func ParseItemCell(cell string, min, max int) []int {
	out := parseItemTokens(cell, min, max)
	if len(out) > 0 {
		return out
	}

	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return out
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return out
	}
	if n > max {
		n = max
	}
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}
	return out
}

func parseItemTokens(cell string, min, max int) []int {
	out := []int{}
	seen := map[int]bool{}
	for _, token := range strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		n, err := strconv.Atoi(token)
		if err != nil || n < min || n > max || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// NormalizeItems deduplicates a client-supplied item list and drops
// entries outside [min, max]. Input order is preserved.
func NormalizeItems(items []int, min, max int) []int {
	out := []int{}
	seen := map[int]bool{}
	for _, n := range items {
		if n < min || n > max || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// FormatItemCell renders an item set the way it is persisted: ascending,
// comma separated. An empty set renders as an empty cell.
func FormatItemCell(items []int) string {
	if len(items) == 0 {
		return ""
	}
	sorted := make([]int, len(items))
	copy(sorted, items)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
