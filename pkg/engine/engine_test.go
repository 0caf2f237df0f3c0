package engine

import (
	"os"
	"path/filepath"
	"testing"

	"invsearch/pkg/config"
	"invsearch/pkg/indexer"
	"invsearch/pkg/parser"

	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, contents map[string]string) []string {
	t.Helper()
	names := []string{}
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		content, ok := contents[name]
		if !ok {
			continue
		}
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		names = append(names, path)
	}
	return names
}

func newTestEngine(t *testing.T, dir string, contents map[string]string) *Engine {
	t.Helper()
	cfg := config.Default()
	cfg.SaveFile = filepath.Join(dir, "db.txt")

	files, rejected := parser.ValidateFiles(writeFiles(t, dir, contents), parser.ValidateOptions{Extension: cfg.Extension})
	require.Empty(t, rejected)

	eg, err := NewEngine(cfg, files)
	require.NoError(t, err)
	t.Cleanup(func() {
		eg.Close()
	})
	return eg
}

func TestEngineCreateAndSearch(t *testing.T) {
	dir := t.TempDir()
	eg := newTestEngine(t, dir, map[string]string{
		"a.txt": "file report file\nfile",
		"b.txt": "notes about the file",
	})
	a, b := filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")

	require.False(t, eg.HasDatabase())
	report, err := eg.Create()
	require.NoError(t, err)
	require.Equal(t, []string{a, b}, report.Indexed)
	require.Equal(t, 8, report.Tokens)
	require.True(t, eg.HasDatabase())

	view, err := eg.Search("file")
	require.NoError(t, err)
	require.Equal(t, 2, view.FileCount)
	require.Equal(t, []indexer.Occurrence{
		{FileName: a, Count: 3},
		{FileName: b, Count: 1},
	}, view.Occurrences)

	_, err = eg.Search("missing")
	require.ErrorIs(t, err, indexer.ErrNotFound)

	_, err = eg.Create()
	require.ErrorIs(t, err, ErrAlreadyCreated)
}

func TestEngineSaveAndUpdate(t *testing.T) {
	dir := t.TempDir()
	contents := map[string]string{
		"a.txt": "alpha beta beta 42",
		"b.txt": "beta gamma",
	}
	eg := newTestEngine(t, dir, contents)
	_, err := eg.Create()
	require.NoError(t, err)

	path, records, err := eg.Save("", SaveCreate)
	require.NoError(t, err)
	require.Equal(t, eg.cfg.SaveFile, path)
	require.Equal(t, 4, records)

	_, _, err = eg.Save("", SaveCreate)
	require.ErrorIs(t, err, ErrSaveFileExists)

	loaded := newTestEngine(t, dir, contents)
	report, err := loaded.Update("")
	require.NoError(t, err)
	require.Equal(t, 4, report.Records)
	require.True(t, loaded.HasDatabase())
	require.Equal(t, eg.Table().Stats(), loaded.Table().Stats())

	_, err = loaded.Update("")
	require.ErrorIs(t, err, ErrAlreadyLoaded)

	// every input file is already in the loaded database
	build, err := loaded.Create()
	require.NoError(t, err)
	require.Len(t, build.Skipped, 2)
	require.Empty(t, build.Indexed)

	beta, err := loaded.Search("beta")
	require.NoError(t, err)
	require.Equal(t, 3, beta.Total())
}

func TestEngineUpdateMergesNewFiles(t *testing.T) {
	dir := t.TempDir()
	first := newTestEngine(t, dir, map[string]string{"a.txt": "one two"})
	_, err := first.Create()
	require.NoError(t, err)
	_, _, err = first.Save("", SaveCreate)
	require.NoError(t, err)

	second := newTestEngine(t, dir, map[string]string{"a.txt": "one two", "b.txt": "two three"})
	_, err = second.Update("")
	require.NoError(t, err)
	report, err := second.Create()
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.txt")}, report.Skipped)
	require.Equal(t, []string{filepath.Join(dir, "b.txt")}, report.Indexed)

	two, err := second.Search("two")
	require.NoError(t, err)
	require.Equal(t, 2, two.FileCount)
}

func TestEngineGuards(t *testing.T) {
	dir := t.TempDir()
	eg := newTestEngine(t, dir, map[string]string{"a.txt": "word"})

	_, _, err := eg.Save("", SaveCreate)
	require.ErrorIs(t, err, ErrNoDatabase)

	_, err = eg.Update(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.False(t, eg.HasDatabase())

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = eg.Update(empty)
	require.ErrorIs(t, err, indexer.ErrEmptyInput)
	require.False(t, eg.HasDatabase())

	_, err = eg.Create()
	require.NoError(t, err)
	_, err = eg.Update("")
	require.ErrorIs(t, err, ErrAlreadyLoaded)
}

func TestEngineNothingToSave(t *testing.T) {
	dir := t.TempDir()
	eg := newTestEngine(t, dir, map[string]string{"a.txt": " \n\t "})
	_, err := eg.Create()
	require.NoError(t, err)

	_, _, err = eg.Save("", SaveCreate)
	require.ErrorIs(t, err, ErrNothingToSave)
	_, err = os.Stat(eg.cfg.SaveFile)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngineSaveModes(t *testing.T) {
	dir := t.TempDir()
	eg := newTestEngine(t, dir, map[string]string{"a.txt": "x x y"})
	_, err := eg.Create()
	require.NoError(t, err)

	_, _, err = eg.Save("", SaveCreate)
	require.NoError(t, err)
	_, _, err = eg.Save("", SaveOverwrite)
	require.NoError(t, err)
	table, _, err := LoadFile(eg.cfg.SaveFile)
	require.NoError(t, err)
	x, err := table.Search("x")
	require.NoError(t, err)
	require.Equal(t, 2, x.Total())

	_, _, err = eg.Save("", SaveAppend)
	require.NoError(t, err)
	table, _, err = LoadFile(eg.cfg.SaveFile)
	require.NoError(t, err)
	x, err = table.Search("x")
	require.NoError(t, err)
	require.Equal(t, 4, x.Total())

	path, records, err := eg.Save(filepath.Join(dir, "other.dat"), SaveOverwrite)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "other.txt"), path)
	require.Equal(t, 2, records)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestEngineTop(t *testing.T) {
	dir := t.TempDir()
	eg := newTestEngine(t, dir, map[string]string{
		"a.txt": "b a c a b a",
		"b.txt": "c d b",
	})
	_, err := eg.Create()
	require.NoError(t, err)

	require.Equal(t, []RankedWord{
		{Word: "a", Files: 1, Total: 3},
		{Word: "b", Files: 2, Total: 3},
	}, eg.Top(2))

	all := eg.Top(0)
	require.Len(t, all, 4)
	require.Equal(t, "d", all[3].Word)
}
