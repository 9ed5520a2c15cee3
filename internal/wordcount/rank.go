package wordcount

import (
	"cmp"
	"slices"
)

// RankEntries drains it and returns its entries by descending count, ties
// broken by ascending word. n > 0 keeps only the first n entries.
func RankEntries(it Iterator, n int) []Entry {
	var entries []Entry
	for it.Next() {
		entries = append(entries, Entry{Word: it.Word(), Count: it.Count()})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Collect drains it and returns its entries in iteration order.
func Collect(it Iterator) []Entry {
	var entries []Entry
	for it.Next() {
		entries = append(entries, Entry{Word: it.Word(), Count: it.Count()})
	}
	return entries
}
