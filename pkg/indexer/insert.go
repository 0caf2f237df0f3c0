package indexer

import "errors"

var (
	ErrEmptyWord     = errors.New("empty word")
	ErrEmptyFileName = errors.New("empty file name")
)

// Insert records one occurrence of word in fileName. Calling it N times for the
// same pair leaves that pair's count at N.
func (t *Table) Insert(word, fileName string) error {
	if word == "" {
		return ErrEmptyWord
	}
	if fileName == "" {
		return ErrEmptyFileName
	}

	i := BucketOf(word[0])
	entry := t.lookup(i, word)
	if entry == nil {
		t.buckets[i] = append(t.buckets[i], newWordEntry(word, fileName))
		return nil
	}

	for j := range entry.occurrences {
		if entry.occurrences[j].FileName == fileName {
			entry.occurrences[j].Count++
			return nil
		}
	}
	entry.occurrences = append(entry.occurrences, Occurrence{FileName: fileName, Count: 1})
	return nil
}

func (t *Table) lookup(bucket int, word string) *WordEntry {
	for _, entry := range t.buckets[bucket] {
		if entry.Word == word {
			return entry
		}
	}
	return nil
}
