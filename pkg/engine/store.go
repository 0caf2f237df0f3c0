package engine

import (
	"errors"
	"fmt"
	"invsearch/pkg/indexer"
	"invsearch/pkg/utils/sys"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrSaveFileExists  = errors.New("save file already exists")
	ErrUnknownSaveMode = errors.New("unknown save mode")
)

type SaveMode int

const (
	// SaveCreate refuses to touch an existing file.
	SaveCreate SaveMode = iota
	SaveOverwrite
	// SaveAppend adds records after the existing ones; words saved twice are
	// merged again on load.
	SaveAppend
)

func (m SaveMode) String() string {
	switch m {
	case SaveCreate:
		return "create"
	case SaveOverwrite:
		return "overwrite"
	case SaveAppend:
		return "append"
	}
	return fmt.Sprintf("SaveMode(%d)", int(m))
}

func ParseSaveMode(s string) (SaveMode, error) {
	switch strings.ToLower(s) {
	case "", "create":
		return SaveCreate, nil
	case "overwrite":
		return SaveOverwrite, nil
	case "append":
		return SaveAppend, nil
	}
	return SaveCreate, fmt.Errorf("%w: %q", ErrUnknownSaveMode, s)
}

// WithExt forces ext onto name, appending it when name has no extension and
// replacing a different one. It reports whether name changed.
func WithExt(name, ext string) (string, bool) {
	cur := filepath.Ext(name)
	if cur == ext {
		return name, false
	}
	return strings.TrimSuffix(name, cur) + ext, true
}

// SaveFile writes t to path and returns the number of records written.
func SaveFile(path string, t *indexer.Table, mode SaveMode) (int, error) {
	if mode == SaveCreate && sys.FileExists(path) {
		return 0, fmt.Errorf("%w: %s", ErrSaveFileExists, path)
	}

	f, err := sys.OpenForSave(path, mode == SaveAppend)
	if err != nil {
		return 0, fmt.Errorf("failed to open save file: %w", err)
	}
	bw := sys.NewBufferedWriteCloser(f)

	records, err := indexer.Dump(bw, t)
	if err != nil {
		bw.Close()
		return records, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := bw.Close(); err != nil {
		return records, fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Printf("Saved %d records (%d bytes, %s) to %s\n", records, bw.Total(), mode, path)
	return records, nil
}

func LoadFile(path string) (*indexer.Table, indexer.LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, indexer.LoadReport{}, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	t, report, err := indexer.Decode(f)
	if err != nil {
		return nil, report, fmt.Errorf("could not load %s: %w", path, err)
	}
	log.Printf("Loaded %d records from %s. Malformed: %d.\n", report.Records, path, report.Malformed)
	return t, report, nil
}
