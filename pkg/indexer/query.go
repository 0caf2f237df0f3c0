package indexer

import "errors"

var ErrNotFound = errors.New("word not found")

func (t *Table) Search(word string) (WordView, error) {
	if word == "" {
		return WordView{}, ErrNotFound
	}
	entry := t.lookup(BucketOf(word[0]), word)
	if entry == nil {
		return WordView{}, ErrNotFound
	}
	return entry.View(), nil
}

// FileIndexed reports whether any word has an occurrence from fileName. It
// walks the whole table.
func (t *Table) FileIndexed(fileName string) bool {
	for _, bucket := range t.buckets {
		for _, entry := range bucket {
			for _, o := range entry.occurrences {
				if o.FileName == fileName {
					return true
				}
			}
		}
	}
	return false
}
