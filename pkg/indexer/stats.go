package indexer

type IndexStats struct {
	WordCount       int
	FileCount       int
	RecordCount     int
	OccurrenceCount int
	BucketWords     [BucketCount]int
}

func (t *Table) Stats() IndexStats {
	var stats IndexStats
	files := map[string]struct{}{}
	for i, bucket := range t.buckets {
		stats.BucketWords[i] = len(bucket)
		stats.WordCount += len(bucket)
		for _, entry := range bucket {
			stats.RecordCount += len(entry.occurrences)
			for _, o := range entry.occurrences {
				files[o.FileName] = struct{}{}
				stats.OccurrenceCount += o.Count
			}
		}
	}
	stats.FileCount = len(files)
	return stats
}

// UsedBuckets counts the buckets holding at least one word.
func (stats IndexStats) UsedBuckets() int {
	used := 0
	for _, n := range stats.BucketWords {
		if n > 0 {
			used++
		}
	}
	return used
}

func (stats IndexStats) AvgFilesPerWord() float64 {
	if stats.WordCount == 0 {
		return 0
	}
	return float64(stats.RecordCount) / float64(stats.WordCount)
}
