package engine

import (
	"fmt"
	"invsearch/pkg/indexer"
	"io"
	"strings"
)

const (
	wideRule   = "======================================================================"
	narrowRule = "============================================================"
	tableRule  = "|-----|-----------------|----------|----------------------|----------|"
)

func DisplayTable(w io.Writer, t *indexer.Table) {
	fmt.Fprintf(w, "\n%s\n INVERTED SEARCH DATABASE\n%s\n", wideRule, wideRule)
	fmt.Fprintf(w, "| %-3s | %-15s | %-8s | %-20s | %-8s |\n", "Idx", "Word", "Files", "File Name", "Count")
	fmt.Fprintln(w, tableRule)

	empty := true
	for i, view := range t.All() {
		empty = false
		for j, o := range view.Occurrences {
			if j == 0 {
				fmt.Fprintf(w, "| %-3d | %-15s | %-8d | %-20s | %-8d |\n",
					i, view.Word, view.FileCount, o.FileName, o.Count)
				continue
			}
			fmt.Fprintf(w, "| %-3s | %-15s | %-8s | %-20s | %-8d |\n", "", "", "", o.FileName, o.Count)
		}
		fmt.Fprintln(w)
	}

	if empty {
		fmt.Fprintf(w, "| %-68s |\n", "Database is empty. Nothing to display.")
	}
	fmt.Fprintln(w, tableRule)
	fmt.Fprintf(w, "%s\n\n", wideRule)
}

func DisplaySearch(w io.Writer, view indexer.WordView) {
	fmt.Fprintf(w, "\n%s\n", narrowRule)
	fmt.Fprintf(w, " Word: %-20s | Found in %d file%s\n", view.Word, view.FileCount, plural(view.FileCount))
	fmt.Fprintln(w, strings.Repeat("-", len(narrowRule)))
	for i, o := range view.Occurrences {
		fmt.Fprintf(w, " [%02d] %-25s -> %3d occurrence%s\n", i+1, o.FileName, o.Count, plural(o.Count))
	}
	fmt.Fprintf(w, "%s\n\n", narrowRule)
}

func DisplayTop(w io.Writer, ranked []RankedWord) {
	if len(ranked) == 0 {
		fmt.Fprintln(w, "Database is empty.")
		return
	}
	for i, r := range ranked {
		fmt.Fprintf(w, " %3d) %-20s %6d occurrence%s in %d file%s\n",
			i+1, r.Word, r.Total, plural(r.Total), r.Files, plural(r.Files))
	}
}

func DisplayStats(w io.Writer, stats indexer.IndexStats) {
	fmt.Fprintf(w, "Words: %d. Files: %d. Occurrences: %d. Buckets used: %d/%d. Files per word: %.2f.\n",
		stats.WordCount, stats.FileCount, stats.OccurrenceCount,
		stats.UsedBuckets(), indexer.BucketCount, stats.AvgFilesPerWord())
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
