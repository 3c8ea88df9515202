package query

import (
	"github.com/hgreenberg/sift/dictionary"
	"github.com/hgreenberg/sift/priorityqueue"
)

// SortedWords returns words in ascending lexicographic order. Query results
// come back in arbitrary IndexSet iteration order; a front end that wants
// stable, reproducible output runs them through this before printing.
func SortedWords(words []dictionary.Word) []dictionary.Word {
	heap := priorityqueue.NewBinaryHeapWithComparator(func(a, b dictionary.Word) bool {
		return a < b
	})
	for _, w := range words {
		heap.Add(w)
	}
	return heap.Sort()
}
