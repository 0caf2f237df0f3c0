package indexer

import "iter"

const (
	BucketCount = 27
	// OtherBucket holds words starting with anything but an ASCII letter.
	OtherBucket = 26

	MaxWordLength = 100
)

// Table is the inverted index: 27 buckets keyed by a word's first character,
// each holding its word entries in discovery order.
type Table struct {
	buckets [BucketCount][]*WordEntry
}

func NewTable() *Table {
	return &Table{}
}

// Reset empties every bucket. The table can be reused afterwards.
func (t *Table) Reset() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
}

func BucketOf(c byte) int {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c >= 'a' && c <= 'z' {
		return int(c - 'a')
	}
	return OtherBucket
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	n := 0
	for _, bucket := range t.buckets {
		n += len(bucket)
	}
	return n
}

func (t *Table) Empty() bool {
	return t.Len() == 0
}

// All yields every word in bucket order, then chain order, with its bucket index.
func (t *Table) All() iter.Seq2[int, WordView] {
	return func(yield func(int, WordView) bool) {
		for i, bucket := range t.buckets {
			for _, entry := range bucket {
				if !yield(i, entry.View()) {
					return
				}
			}
		}
	}
}

// BucketLen returns how many words bucket i holds.
func (t *Table) BucketLen(i int) int {
	if i < 0 || i >= BucketCount {
		return 0
	}
	return len(t.buckets[i])
}
