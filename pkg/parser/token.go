package parser

import (
	"bufio"
	"io"
	"log"
	"unicode"
	"unicode/utf8"
)

const maxTokenSize = 1024 * 1024

// TokenProducer yields the whitespace-separated words of a reader.
type TokenProducer struct {
	scanner  *bufio.Scanner
	limit    int
	name     string
	skipping bool
	err      error
}

// NewTokenProducer cuts words longer than maxLen bytes and drops the rest of
// them. maxLen <= 0 cuts at 1 MiB only.
func NewTokenProducer(name string, r io.Reader, maxLen int) *TokenProducer {
	limit := maxLen
	if limit <= 0 || limit > maxTokenSize {
		limit = maxTokenSize
	}
	p := &TokenProducer{
		limit: limit,
		name:  name,
	}
	p.scanner = bufio.NewScanner(r)
	p.scanner.Buffer(make([]byte, 4096), maxTokenSize+utf8.UTFMax)
	p.scanner.Split(p.splitWords)
	return p
}

// splitWords works like bufio.ScanWords but never asks for more than limit
// bytes of one word: a longer word is returned cut, and its remaining bytes
// are skipped up to the next space.
func (p *TokenProducer) splitWords(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	if p.skipping {
		for start < len(data) {
			r, width := utf8.DecodeRune(data[start:])
			if unicode.IsSpace(r) {
				p.skipping = false
				break
			}
			start += width
		}
		if p.skipping {
			return len(data), nil, nil
		}
	}

	for start < len(data) {
		r, width := utf8.DecodeRune(data[start:])
		if !unicode.IsSpace(r) {
			break
		}
		start += width
	}

	for i := start; i < len(data); {
		r, width := utf8.DecodeRune(data[i:])
		if unicode.IsSpace(r) {
			return i + width, data[start:i], nil
		}
		if i-start >= p.limit {
			log.Printf("%s: word longer than %d bytes truncated\n", p.name, p.limit)
			p.skipping = true
			return start + p.limit, []byte(Truncate(string(data[start:i+1]), p.limit)), nil
		}
		i += width
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func (p *TokenProducer) Produce() (string, bool) {
	if p.err != nil || !p.scanner.Scan() {
		if p.err == nil {
			p.err = p.scanner.Err()
		}
		return "", false
	}
	return p.scanner.Text(), true
}

// Err returns the first read error, if any.
func (p *TokenProducer) Err() error {
	return p.err
}

// Truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		return s[:n]
	}
	return s[:cut]
}

func ParseTokens(r io.Reader, maxLen int) ([]string, error) {
	p := NewTokenProducer("", r, maxLen)
	tokens := []string{}
	for {
		token, ok := p.Produce()
		if !ok {
			break
		}
		tokens = append(tokens, token)
	}
	return tokens, p.Err()
}
