package indexer

type Occurrence struct {
	FileName string
	Count    int
}

// WordEntry is one distinct word and the files it occurs in, in the order the
// files were first seen.
type WordEntry struct {
	Word        string
	occurrences []Occurrence
}

func newWordEntry(word, fileName string) *WordEntry {
	return &WordEntry{
		Word:        word,
		occurrences: []Occurrence{{FileName: fileName, Count: 1}},
	}
}

// FileCount is the number of distinct files holding the word.
func (e *WordEntry) FileCount() int {
	return len(e.occurrences)
}

func (e *WordEntry) View() WordView {
	return WordView{
		Word:        e.Word,
		FileCount:   len(e.occurrences),
		Occurrences: append([]Occurrence(nil), e.occurrences...),
	}
}

// Clone returns a view that shares nothing with v.
func (v WordView) Clone() WordView {
	v.Occurrences = append([]Occurrence(nil), v.Occurrences...)
	return v
}

// WordView is a read-only copy of a WordEntry.
type WordView struct {
	Word        string
	FileCount   int
	Occurrences []Occurrence
}

func (v WordView) Total() int {
	total := 0
	for _, o := range v.Occurrences {
		total += o.Count
	}
	return total
}
