package indexer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBucketOf(t *testing.T) {
	require.Equal(t, 0, BucketOf('A'))
	require.Equal(t, 0, BucketOf('a'))
	require.Equal(t, 25, BucketOf('Z'))
	require.Equal(t, 25, BucketOf('z'))
	require.Equal(t, 5, BucketOf('f'))
	require.Equal(t, OtherBucket, BucketOf('7'))
	require.Equal(t, OtherBucket, BucketOf('#'))
	require.Equal(t, OtherBucket, BucketOf('['))
	require.Equal(t, OtherBucket, BucketOf(0xC3))
}

func TestInsertAndSearch(t *testing.T) {
	table := NewTable()
	for range 3 {
		require.NoError(t, table.Insert("file", "report.txt"))
	}
	require.NoError(t, table.Insert("file", "notes.txt"))

	view, err := table.Search("file")
	require.NoError(t, err)
	require.Equal(t, "file", view.Word)
	require.Equal(t, 2, view.FileCount)
	require.Equal(t, []Occurrence{
		{FileName: "report.txt", Count: 3},
		{FileName: "notes.txt", Count: 1},
	}, view.Occurrences)
	require.Equal(t, 4, view.Total())

	_, err = table.Search("files")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = table.Search("File")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = table.Search("")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInsertIncrement(t *testing.T) {
	table := NewTable()
	n := 17
	for range n {
		require.NoError(t, table.Insert("go", "a.txt"))
	}

	view, err := table.Search("go")
	require.NoError(t, err)
	require.Len(t, view.Occurrences, 1)
	require.Equal(t, n, view.Occurrences[0].Count)
}

func TestInsertCaseSensitive(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Insert("Go", "a.txt"))
	require.NoError(t, table.Insert("go", "a.txt"))

	require.Equal(t, 2, table.Len())
	require.Equal(t, 2, table.BucketLen(BucketOf('g')))

	upper, err := table.Search("Go")
	require.NoError(t, err)
	require.Equal(t, 1, upper.Occurrences[0].Count)
}

func TestInsertRejectsEmpty(t *testing.T) {
	table := NewTable()
	require.ErrorIs(t, table.Insert("", "a.txt"), ErrEmptyWord)
	require.ErrorIs(t, table.Insert("word", ""), ErrEmptyFileName)
	require.True(t, table.Empty())
}

func TestInsertKeepsDiscoveryOrder(t *testing.T) {
	table := NewTable()
	words := []string{"beta", "alpha", "bravo", "apple", "42", "#tag", "Bee"}
	for _, w := range words {
		require.NoError(t, table.Insert(w, "a.txt"))
	}

	got := []string{}
	buckets := []int{}
	for i, view := range table.All() {
		got = append(got, view.Word)
		buckets = append(buckets, i)
	}
	require.Equal(t, []string{"alpha", "apple", "beta", "bravo", "Bee", "42", "#tag"}, got)
	require.Equal(t, []int{0, 0, 1, 1, 1, 26, 26}, buckets)
}

func TestTableInvariants(t *testing.T) {
	table := NewTable()
	files := []string{"a.txt", "b.txt", "c.txt"}
	for i := range 500 {
		word := fmt.Sprintf("w%d", i%37)
		if i%3 == 0 {
			word = fmt.Sprintf("%d", i%11)
		}
		require.NoError(t, table.Insert(word, files[i%len(files)]))
	}

	for i := range BucketCount {
		seen := map[string]bool{}
		for _, entry := range table.buckets[i] {
			require.False(t, seen[entry.Word], "duplicate word %s in bucket %d", entry.Word, i)
			seen[entry.Word] = true
			require.Equal(t, i, BucketOf(entry.Word[0]))

			require.Equal(t, len(entry.occurrences), entry.FileCount())
			require.GreaterOrEqual(t, entry.FileCount(), 1)
			names := map[string]bool{}
			for _, o := range entry.occurrences {
				require.False(t, names[o.FileName])
				names[o.FileName] = true
				require.GreaterOrEqual(t, o.Count, 1)
			}
		}
	}

	stats := table.Stats()
	require.Equal(t, 500, stats.OccurrenceCount)
	require.Equal(t, 3, stats.FileCount)
	require.Equal(t, table.Len(), stats.WordCount)
}

func TestFileIndexed(t *testing.T) {
	table := NewTable()
	require.False(t, table.FileIndexed("a.txt"))

	require.NoError(t, table.Insert("zebra", "a.txt"))
	require.NoError(t, table.Insert("alpha", "b.txt"))
	require.NoError(t, table.Insert("zebra", "c.txt"))

	require.True(t, table.FileIndexed("a.txt"))
	require.True(t, table.FileIndexed("b.txt"))
	require.True(t, table.FileIndexed("c.txt"))
	require.False(t, table.FileIndexed("d.txt"))
	require.False(t, table.FileIndexed("A.txt"))
}

func TestReset(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Insert("word", "a.txt"))
	table.Reset()
	require.True(t, table.Empty())
	require.False(t, table.FileIndexed("a.txt"))
	table.Reset()
	require.True(t, table.Empty())

	require.NoError(t, table.Insert("word", "a.txt"))
	require.Equal(t, 1, table.Len())
}

func TestSearchReturnsCopy(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Insert("copy", "a.txt"))

	view, err := table.Search("copy")
	require.NoError(t, err)
	view.Occurrences[0].Count = 100

	view, err = table.Search("copy")
	require.NoError(t, err)
	require.Equal(t, 1, view.Occurrences[0].Count)
}

func TestStats(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Insert("apple", "a.txt"))
	require.NoError(t, table.Insert("apple", "b.txt"))
	require.NoError(t, table.Insert("apple", "b.txt"))
	require.NoError(t, table.Insert("7up", "a.txt"))

	stats := table.Stats()
	require.Equal(t, 2, stats.WordCount)
	require.Equal(t, 2, stats.FileCount)
	require.Equal(t, 3, stats.RecordCount)
	require.Equal(t, 4, stats.OccurrenceCount)
	require.Equal(t, 2, stats.UsedBuckets())
	require.Equal(t, 1, stats.BucketWords[0])
	require.Equal(t, 1, stats.BucketWords[OtherBucket])
	require.InDelta(t, 1.5, stats.AvgFilesPerWord(), 1e-9)

	require.Zero(t, NewTable().Stats().AvgFilesPerWord())
}
