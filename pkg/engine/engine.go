package engine

import (
	"errors"
	"fmt"
	"invsearch/pkg/config"
	"invsearch/pkg/indexer"
	"invsearch/pkg/parser"
	"invsearch/pkg/utils/sys"
	"log"
)

var (
	ErrAlreadyCreated = errors.New("database already exists")
	ErrAlreadyLoaded  = errors.New("database already created or loaded")
	ErrNoDatabase     = errors.New("no database, create or load one first")
	ErrNothingToSave  = errors.New("database is empty, nothing to save")
)

// Engine is one session over a table: the files given on the command line,
// the table built from them or loaded from a save file, and a search cache.
type Engine struct {
	cfg     *config.Config
	table   *indexer.Table
	cache   *SearchCache
	files   parser.FileList
	created bool
	loaded  bool
}

func NewEngine(cfg *config.Config, files parser.FileList) (*Engine, error) {
	table := indexer.NewTable()
	cache, err := NewSearchCache(cfg.CacheSize, table)
	if err != nil {
		return nil, fmt.Errorf("failed to create search cache: %w", err)
	}

	return &Engine{
		cfg:   cfg,
		table: table,
		cache: cache,
		files: files,
	}, nil
}

func (eg *Engine) Table() *indexer.Table {
	return eg.table
}

func (eg *Engine) Files() parser.FileList {
	return eg.files
}

// HasDatabase reports whether the table was created or loaded this session.
func (eg *Engine) HasDatabase() bool {
	return eg.created || eg.loaded
}

// Create indexes the session files. It runs once per session; after an
// Update it adds only the files the loaded database does not know.
func (eg *Engine) Create() (indexer.BuildReport, error) {
	if eg.created {
		return indexer.BuildReport{}, ErrAlreadyCreated
	}

	sources := make([]indexer.Source, 0, len(eg.files))
	for _, file := range eg.files {
		p := parser.NewTokenProducer(file.Name, file.Reader(), eg.cfg.MaxWordLength)
		sources = append(sources, indexer.Source{Name: file.Name, Tokens: p, Err: p.Err})
	}

	report, err := indexer.Build(eg.table, sources)
	eg.created = true
	eg.cache.Reset(eg.table)
	if err != nil {
		return report, err
	}

	log.Printf("Indexed %d files, skipped %d. Tokens: %d. Words: %d.\n",
		len(report.Indexed), len(report.Skipped), report.Tokens, eg.table.Len())
	sys.LogMemoryUsage()

	return report, nil
}

func (eg *Engine) Search(word string) (indexer.WordView, error) {
	return eg.cache.Get(word)
}

// Save writes the table to name, or to the configured save file when name is
// empty. A name given explicitly gets the configured extension forced onto it.
func (eg *Engine) Save(name string, mode SaveMode) (string, int, error) {
	if !eg.HasDatabase() {
		return "", 0, ErrNoDatabase
	}
	if eg.table.Empty() {
		return "", 0, ErrNothingToSave
	}

	path := eg.cfg.SaveFile
	if name != "" {
		fixed, changed := WithExt(name, eg.cfg.Extension)
		if changed {
			log.Printf("Extension fixed, saving to '%s'\n", fixed)
		}
		path = fixed
	}

	records, err := SaveFile(path, eg.table, mode)
	return path, records, err
}

// Update replaces the table with the content of a save file, the configured
// one when name is empty. It is refused once a database exists.
func (eg *Engine) Update(name string) (indexer.LoadReport, error) {
	if eg.HasDatabase() {
		return indexer.LoadReport{}, ErrAlreadyLoaded
	}
	if name == "" {
		name = eg.cfg.SaveFile
	}

	table, report, err := LoadFile(name)
	if err != nil {
		return report, err
	}

	eg.table = table
	eg.loaded = true
	eg.cache.Reset(table)
	return report, nil
}

func (eg *Engine) Top(n int) []RankedWord {
	if n <= 0 {
		n = eg.cfg.TopWords
	}
	return TopWords(eg.table, n)
}

func (eg *Engine) Close() error {
	return eg.files.Close()
}
