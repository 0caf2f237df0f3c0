package indexer

import (
	"fmt"
	"invsearch/pkg/utils/stream"
	"log"
)

// Source is one input file: its name and the tokens read from it. Err, when
// set, reports a read error that ended Tokens early.
type Source struct {
	Name   string
	Tokens stream.Producer[string]
	Err    func() error
}

type BuildReport struct {
	Indexed []string
	Skipped []string
	Tokens  int
}

// Build inserts every token of every source, file by file. A source whose
// name already appears in t is skipped so its words are not counted twice.
func Build(t *Table, sources []Source) (BuildReport, error) {
	var report BuildReport

	for _, src := range sources {
		if t.FileIndexed(src.Name) {
			log.Printf("'%s' already present in database. Skipping...\n", src.Name)
			report.Skipped = append(report.Skipped, src.Name)
			continue
		}

		n, err := stream.Drain(src.Tokens, func(token string) error {
			return t.Insert(token, src.Name)
		})
		report.Tokens += n
		if err == nil && src.Err != nil {
			err = src.Err()
		}
		if err != nil {
			return report, fmt.Errorf("failed to index %s: %w", src.Name, err)
		}
		report.Indexed = append(report.Indexed, src.Name)
	}

	return report, nil
}
