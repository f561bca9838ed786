package catalog

import (
	"fmt"
	"sort"
)

// SortKey selects the field used to order films.
type SortKey string

const (
	SortNone  SortKey = ""      // source order
	SortYear  SortKey = "year"  // release year, ascending
	SortTitle SortKey = "title" // title, byte-wise ascending
)

// ParseSortKey validates a sort key. The empty string maps to SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortNone, SortYear, SortTitle:
		return k, nil
	default:
		return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}

// Order returns a permutation of film indices ordered by key.
// The sort is stable, so ties keep source order.
func Order(films []Film, key SortKey) []int {
	order := make([]int, len(films))
	for i := range order {
		order[i] = i
	}

	var less func(a, b Film) bool
	switch key {
	case SortYear:
		less = func(a, b Film) bool { return a.Year < b.Year }
	case SortTitle:
		less = func(a, b Film) bool { return a.Title < b.Title }
	default:
		return order
	}

	sort.SliceStable(order, func(i, j int) bool {
		return less(films[order[i]], films[order[j]])
	})
	return order
}
