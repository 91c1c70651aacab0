// Package wordlist reads plain-text dictionaries, one word per line.
// Pure function: file path in, domain structs out. No database dependencies.
package wordlist

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/heartmarshall/wordfinder/internal/config"
	"github.com/heartmarshall/wordfinder/internal/domain"
)

// maxLineSize bounds a single dictionary line.
const maxLineSize = 1024 * 1024

// Result holds the parsed dictionary and parser statistics.
type Result struct {
	Words domain.Dictionary
	Stats Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	Bytes      int64
	Lines      int
	EmptyLines int
}

// Load reads the dictionary at path using the given split mode
// (config.SplitCRLF or config.SplitLines). A missing file yields an error
// wrapping domain.ErrNotFound.
func Load(path, split string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("dictionary %s: %w", path, domain.ErrNotFound)
		}
		return Result{}, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	res, err := Parse(f, split)
	if err != nil {
		return Result{}, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	return res, nil
}

// Parse reads words from r.
//
// SplitCRLF splits on the exact "\r\n" sequence and keeps every field,
// including a trailing empty one. SplitLines accepts "\n", "\r\n" and "\r"
// terminators; a final terminator does not produce an extra empty word.
func Parse(r io.Reader, split string) (Result, error) {
	switch split {
	case config.SplitCRLF:
		return parseCRLF(r)
	case config.SplitLines, "":
		return parseLines(r)
	default:
		return Result{}, fmt.Errorf("unknown split mode %q: %w", split, domain.ErrValidation)
	}
}

func parseCRLF(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read: %w", err)
	}

	words := strings.Split(string(data), "\r\n")
	res := Result{
		Words: words,
		Stats: Stats{Bytes: int64(len(data)), Lines: len(words)},
	}
	for _, w := range words {
		if w == "" {
			res.Stats.EmptyLines++
		}
	}
	return res, nil
}

func parseLines(r io.Reader) (Result, error) {
	cr := &countingReader{r: r}
	scanner := bufio.NewScanner(cr)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanAnyLines)

	res := Result{Words: make(domain.Dictionary, 0, 1024)}
	for scanner.Scan() {
		w := scanner.Text()
		res.Stats.Lines++
		if w == "" {
			res.Stats.EmptyLines++
		}
		res.Words = append(res.Words, w)
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("scan: %w", err)
	}

	res.Stats.Bytes = cr.n
	return res, nil
}

// scanAnyLines is a bufio.SplitFunc like bufio.ScanLines that also treats a
// lone "\r" as a line terminator.
func scanAnyLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// "\r": need one more byte to tell "\r\n" from a lone "\r".
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// FileSource loads a dictionary from a text file.
type FileSource struct {
	Path  string
	Split string

	stats Stats
}

// NewFileSource creates a FileSource.
func NewFileSource(path, split string) *FileSource {
	return &FileSource{Path: path, Split: split}
}

// Words implements the dictionary source contract used by the app.
func (s *FileSource) Words(_ context.Context) (domain.Dictionary, error) {
	res, err := Load(s.Path, s.Split)
	if err != nil {
		return nil, err
	}
	s.stats = res.Stats
	return res.Words, nil
}

// Stats reports parser statistics of the last successful load.
func (s *FileSource) Stats() Stats {
	return s.stats
}

// String describes the source for startup messages.
func (s *FileSource) String() string {
	return s.Path
}
