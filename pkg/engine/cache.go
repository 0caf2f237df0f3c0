package engine

import (
	"invsearch/pkg/indexer"

	lru "github.com/hashicorp/golang-lru/v2"
)

// SearchCache keeps recent search results in front of the table. It must be
// reset whenever the table changes.
type SearchCache struct {
	cache *lru.Cache[string, indexer.WordView]
	src   *indexer.Table
}

func NewSearchCache(size int, src *indexer.Table) (*SearchCache, error) {
	cache, err := lru.New[string, indexer.WordView](size)
	if err != nil {
		return nil, err
	}
	return &SearchCache{
		cache: cache,
		src:   src,
	}, nil
}

// Get returns a copy of the cached view of word, searching the table on a
// miss. Words that are not found are not cached.
func (sc *SearchCache) Get(word string) (indexer.WordView, error) {
	if view, ok := sc.cache.Get(word); ok {
		return view.Clone(), nil
	}

	view, err := sc.src.Search(word)
	if err != nil {
		return view, err
	}
	sc.cache.Add(word, view)
	return view.Clone(), nil
}

// Reset drops every cached result and reads from src from now on.
func (sc *SearchCache) Reset(src *indexer.Table) {
	sc.cache.Purge()
	sc.src = src
}

func (sc *SearchCache) Len() int {
	return sc.cache.Len()
}
