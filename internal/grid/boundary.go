package grid

import "sort"

// SortedUnique returns the values sorted ascending with duplicates removed.
// The result is never nil.
func SortedUnique(values []int) []int {
	out := make([]int, 0, len(values))
	if len(values) == 0 {
		return out
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Clip keeps only the values inside [0, extent], preserving order.
func Clip(values []int, extent int) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if v >= 0 && v <= extent {
			out = append(out, v)
		}
	}
	return out
}

// Clean sorts and deduplicates values, then greedily keeps a value only if it
// lies at least minDistance from the previously kept one.
//
// The first (smallest) value is always kept. A minDistance of zero or less
// reduces Clean to SortedUnique.
func Clean(values []int, minDistance int) []int {
	sorted := SortedUnique(values)
	if len(sorted) == 0 {
		return sorted
	}
	cleaned := []int{sorted[0]}
	for _, v := range sorted[1:] {
		if v-cleaned[len(cleaned)-1] >= minDistance {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}

// Complete returns the sorted union of {0, extent} and the internal values.
func Complete(internal []int, extent int) []int {
	all := make([]int, 0, len(internal)+2)
	all = append(all, 0)
	all = append(all, internal...)
	all = append(all, extent)
	return SortedUnique(all)
}

// Internal strips both edges from a boundary set.
func Internal(complete []int, extent int) []int {
	out := make([]int, 0, len(complete))
	for _, v := range complete {
		if v != 0 && v != extent {
			out = append(out, v)
		}
	}
	return out
}

// Spans returns the adjacent (start, end) pairs of a boundary set. A set with
// fewer than two values has no spans.
func Spans(boundaries []int) [][2]int {
	if len(boundaries) < 2 {
		return nil
	}
	spans := make([][2]int, 0, len(boundaries)-1)
	for i := 0; i < len(boundaries)-1; i++ {
		spans = append(spans, [2]int{boundaries[i], boundaries[i+1]})
	}
	return spans
}
