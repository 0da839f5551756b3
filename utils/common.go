// Common package contains commonly used functions that benefit multiple tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize caps a single FASTA line. Unwrapped proteomes can carry very long lines.
const maxLineSize = 16 * 1024 * 1024

// FastaHandler receives one complete record. The header is the text after '>'
// and the sequence is upper-cased with all whitespace removed.
type FastaHandler func(header string, seq string) error

// FastaStats counts what the reader saw, including the records it skipped.
type FastaStats struct {
	Records         int // records handed to the handler
	MissingSequence int // headers followed by no sequence lines
	Orphaned        int // sequence lines found before the first header
}

// Skipped returns the number of malformed records that were dropped.
func (s FastaStats) Skipped() int {
	if s.Orphaned > 0 {
		return s.MissingSequence + 1
	}
	return s.MissingSequence
}

// OpenFasta opens a plain or gzip-compressed FASTA file. Compression is detected
// from the gzip magic bytes, not the file extension. "-" reads standard input.
func OpenFasta(path string) (io.ReadCloser, error) {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
	}

	var closers []io.Closer
	if f != os.Stdin {
		closers = append(closers, f)
	}

	br := bufio.NewReader(f)
	magic, _ := br.Peek(2)
	if len(magic) == 2 && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return readCloser{Reader: gr, closers: append([]io.Closer{gr}, closers...)}, nil
	}
	return readCloser{Reader: br, closers: closers}, nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// StreamFasta streams every record of the file at path through handler.
func StreamFasta(path string, handler FastaHandler) (FastaStats, error) {
	rc, err := OpenFasta(path)
	if err != nil {
		return FastaStats{}, err
	}
	defer rc.Close()
	return StreamFastaReader(rc, handler)
}

// StreamFastaReader is StreamFasta over an already opened reader.
//
// Malformed records never stop the stream: a header with no sequence and
// sequence lines with no header are counted in the returned stats and dropped.
// Blank lines and ';' comment lines are ignored.
func StreamFastaReader(r io.Reader, handler FastaHandler) (FastaStats, error) {
	var stats FastaStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		header   string
		inRecord bool
		buffer   []byte
	)

	flush := func() error {
		if !inRecord {
			return nil
		}
		if len(buffer) == 0 {
			stats.MissingSequence++
			return nil
		}
		stats.Records++
		if err := handler(header, string(buffer)); err != nil {
			return fmt.Errorf("handler error (%s): %w", header, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return stats, err
			}
			header = strings.TrimSpace(line[1:])
			inRecord = true
			buffer = buffer[:0] // reset buffer
			continue
		}
		if !inRecord {
			stats.Orphaned++
			continue
		}
		for _, field := range strings.Fields(line) {
			buffer = append(buffer, strings.ToUpper(field)...)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("scanner error: %w", err)
	}
	if err := flush(); err != nil {
		return stats, err
	}
	return stats, nil
}
