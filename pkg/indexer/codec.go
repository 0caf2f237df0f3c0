package indexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Save file layout, one record per word:
//
//	#<bucket>; <word>; <files>; <file1>; <count1>; ... #
//
// Fields are not escaped: a word or file name holding ';' or '#' cannot be
// read back.

var (
	ErrEmptyInput      = errors.New("no data to load")
	ErrUnreadable      = errors.New("no readable record")
	ErrMalformedRecord = errors.New("malformed record")
)

const maxRecordSize = 16 * 1024 * 1024

// Dump writes every word of t to w, which callers buffer, and returns the
// number of records written. An empty table writes nothing.
func Dump(w io.Writer, t *Table) (int, error) {
	records := 0
	for i, view := range t.All() {
		if err := writeRecord(w, i, view); err != nil {
			return records, err
		}
		records++
	}
	return records, nil
}

func writeRecord(w io.Writer, bucket int, view WordView) error {
	if _, err := fmt.Fprintf(w, "#%d; %s; %d;", bucket, view.Word, view.FileCount); err != nil {
		return err
	}
	for _, o := range view.Occurrences {
		if _, err := fmt.Fprintf(w, " %s; %d;", o.FileName, o.Count); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, " #\n")
	return err
}

type LoadReport struct {
	Records   int
	Malformed int
	// Rebucketed counts records whose bucket index did not match their word.
	Rebucketed int
	Errors     []error
}

func (r *LoadReport) malformed(line int, format string, args ...any) {
	r.Malformed++
	err := fmt.Errorf("line %d: %w: %s", line, ErrMalformedRecord, fmt.Sprintf(format, args...))
	r.Errors = append(r.Errors, err)
	log.Println(err)
}

func Load(r io.Reader) (*Table, error) {
	t, _, err := Decode(r)
	return t, err
}

// Decode builds a fresh table from a save file. Parsing stops at the first
// line without a readable header. A record with a bad file/count pair keeps
// the pairs before it and parsing resumes at the next line. Counts are
// replayed through Insert.
func Decode(r io.Reader) (*Table, LoadReport, error) {
	t := NewTable()
	var report LoadReport

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxRecordSize)

	lineNo := 0
	sawData := false
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sawData = true

		fields := strings.Split(line, ";")
		bucket, word, fileCount, ok := parseHeader(fields)
		if !ok {
			log.Printf("line %d: unreadable record header, ignoring the rest of the input\n", lineNo)
			break
		}
		if want := BucketOf(word[0]); bucket != want {
			log.Printf("line %d: word %q filed under bucket %d, moved to %d\n", lineNo, word, bucket, want)
			report.Rebucketed++
		}
		if fileCount < 1 {
			report.malformed(lineNo, "file count %d for word %q", fileCount, word)
			continue
		}

		if loadPairs(t, &report, lineNo, word, fileCount, fields[3:]) {
			report.Records++
		}
	}
	if err := scanner.Err(); err != nil {
		sawData = true
		log.Printf("line %d: failed to read save file: %v\n", lineNo+1, err)
	}

	if report.Records == 0 {
		if !sawData {
			return t, report, ErrEmptyInput
		}
		return t, report, ErrUnreadable
	}
	return t, report, nil
}

func parseHeader(fields []string) (int, string, int, bool) {
	if len(fields) < 4 || !strings.HasPrefix(fields[0], "#") {
		return 0, "", 0, false
	}
	bucket, err := strconv.Atoi(strings.TrimSpace(fields[0][1:]))
	if err != nil {
		return 0, "", 0, false
	}
	word := strings.TrimSpace(fields[1])
	if word == "" {
		return 0, "", 0, false
	}
	fileCount, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return 0, "", 0, false
	}
	return bucket, word, fileCount, true
}

// loadPairs replays the file/count pairs in rest, which ends with the field
// holding the record terminator. It reports whether any pair was inserted.
func loadPairs(t *Table, report *LoadReport, lineNo int, word string, fileCount int, rest []string) bool {
	pairs := rest[:len(rest)-1]
	inserted := false
	for i := 0; i < fileCount; i++ {
		if 2*i+1 >= len(pairs) {
			report.malformed(lineNo, "word %q: expected %d files, found %d", word, fileCount, i)
			return inserted
		}
		fileName := strings.TrimSpace(pairs[2*i])
		count, err := strconv.Atoi(strings.TrimSpace(pairs[2*i+1]))
		if fileName == "" || fileName == "#" || err != nil || count < 1 {
			report.malformed(lineNo, "word %q: bad file entry %q; %q", word, pairs[2*i], pairs[2*i+1])
			return inserted
		}
		for range count {
			if err := t.Insert(word, fileName); err != nil {
				report.malformed(lineNo, "word %q: %v", word, err)
				return inserted
			}
		}
		inserted = true
	}

	if len(pairs) != 2*fileCount || strings.TrimSpace(rest[len(rest)-1]) != "#" {
		report.malformed(lineNo, "word %q: missing record terminator", word)
	}
	return inserted
}
