package parser

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfonda/simhash"
)

var (
	ErrWrongExtension = errors.New("wrong extension")
	ErrNotAvailable   = errors.New("file not available")
	ErrEmptyFile      = errors.New("empty file")
	ErrDuplicateFile  = errors.New("duplicate file")
)

// File is a validated input file, open and positioned at its start.
// Fingerprint is zero when the file could not be hashed.
type File struct {
	Name        string
	Fingerprint uint64
	hashed      bool
	f           *os.File
}

func (f *File) Reader() io.Reader {
	return f.f
}

type Rejection struct {
	Name string
	Err  error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("%s: %v", r.Name, r.Err)
}

func (r Rejection) Unwrap() error {
	return r.Err
}

type ValidateOptions struct {
	Extension string
	// Files whose simhash fingerprints differ in at most this many bits are
	// reported as near duplicates. They are still accepted.
	NearDuplicateDistance uint8
}

// FileList keeps the accepted files in argument order.
type FileList []*File

// ValidateFiles opens every name that has the wanted extension, exists, is
// not empty and was not given before. Accepted files stay open until Close.
func ValidateFiles(names []string, opts ValidateOptions) (FileList, []Rejection) {
	var list FileList
	var rejected []Rejection

	for _, name := range names {
		file, err := validateFile(name, opts.Extension, list)
		if err != nil {
			log.Printf("%s rejected: %v\n", name, err)
			rejected = append(rejected, Rejection{Name: name, Err: err})
			continue
		}

		for _, other := range list {
			if !file.hashed || !other.hashed {
				continue
			}
			if simhash.Compare(file.Fingerprint, other.Fingerprint) <= opts.NearDuplicateDistance {
				log.Printf("%s looks like a near duplicate of %s\n", file.Name, other.Name)
			}
		}
		list = append(list, file)
		log.Printf("%s added to list\n", name)
	}

	return list, rejected
}

func validateFile(name, ext string, list FileList) (*File, error) {
	if filepath.Ext(name) != ext {
		return nil, ErrWrongExtension
	}
	if list.Contains(name) {
		return nil, ErrDuplicateFile
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, ErrNotAvailable
	}
	if info.Size() == 0 {
		f.Close()
		return nil, ErrEmptyFile
	}

	file := &File{Name: name, f: f}
	tokens, err := ParseTokens(f, 0)
	if err != nil {
		log.Printf("%s: no fingerprint, near duplicate check skipped: %v\n", name, err)
	} else {
		file.Fingerprint = simhash.Simhash(simhash.NewWordFeatureSet([]byte(strings.Join(tokens, " "))))
		file.hashed = true
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrNotAvailable, err)
	}

	return file, nil
}

func (l FileList) Contains(name string) bool {
	for _, file := range l {
		if file.Name == name {
			return true
		}
	}
	return false
}

func (l FileList) Names() []string {
	names := make([]string, 0, len(l))
	for _, file := range l {
		names = append(names, file.Name)
	}
	return names
}

func (l FileList) Close() error {
	var errs []error
	for _, file := range l {
		if err := file.f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %s: %w", file.Name, err))
		}
	}
	return errors.Join(errs...)
}
