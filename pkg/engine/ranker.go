package engine

import (
	"cmp"
	"invsearch/pkg/indexer"

	pq "github.com/emirpasic/gods/v2/queues/priorityqueue"
)

type RankedWord struct {
	Word  string
	Files int
	Total int
}

// TopWords returns the n words with the most occurrences across all files.
// Ties go to the word that sorts first.
func TopWords(t *indexer.Table, n int) []RankedWord {
	comparator := func(a, b RankedWord) int {
		if r := cmp.Compare(b.Total, a.Total); r != 0 {
			return r
		}
		return cmp.Compare(a.Word, b.Word)
	}

	queue := pq.NewWith[RankedWord](comparator)
	for _, view := range t.All() {
		queue.Enqueue(RankedWord{
			Word:  view.Word,
			Files: view.FileCount,
			Total: view.Total(),
		})
	}

	ranked := []RankedWord{}
	for len(ranked) < n {
		item, ok := queue.Dequeue()
		if !ok {
			break
		}
		ranked = append(ranked, item)
	}
	return ranked
}
