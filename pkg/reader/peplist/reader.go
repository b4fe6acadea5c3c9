// Package peplist reads annotated peptide sequences from plain lists and
// delimited text files.
package peplist

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Options selects the column sequences are read from. With a zero Comma
// every non-empty line is one sequence.
type Options struct {
	Comma rune
	// Column names the header column holding the sequences. Empty means
	// the first column, with no header row.
	Column string
}

// OptionsForPath picks the delimiter from the file extension: .csv is
// comma separated, .tsv and .tab are tab separated, anything else is a
// plain list.
func OptionsForPath(path, column string) Options {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return Options{Comma: ',', Column: column}
	case ".tsv", ".tab":
		return Options{Comma: '\t', Column: column}
	}
	return Options{}
}

// Reader streams sequences. Lines starting with '#' are comments.
type Reader struct {
	lines   *bufio.Scanner
	records *csv.Reader
	column  string
	index   int
	lineNum int
	seq     string
	err     error
}

// NewReader creates a reader over r.
func NewReader(r io.Reader, opts Options) *Reader {
	rd := &Reader{column: opts.Column}
	if opts.Comma == 0 {
		rd.lines = bufio.NewScanner(r)
		return rd
	}
	rd.records = csv.NewReader(r)
	rd.records.Comma = opts.Comma
	rd.records.Comment = '#'
	rd.records.FieldsPerRecord = -1
	rd.records.TrimLeadingSpace = true
	rd.records.ReuseRecord = true
	rd.records.LazyQuotes = true
	rd.index = -1
	if opts.Column == "" {
		rd.index = 0
	}
	return rd
}

// Next advances to the next sequence.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	if r.lines != nil {
		return r.nextLine()
	}
	return r.nextRecord()
}

func (r *Reader) nextLine() bool {
	for r.lines.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r.seq = line
		return true
	}
	r.err = r.lines.Err()
	return false
}

func (r *Reader) nextRecord() bool {
	for {
		record, err := r.records.Read()
		if errors.Is(err, io.EOF) {
			if r.index < 0 {
				r.err = fmt.Errorf("no header row with column '%s'", r.column)
			}
			return false
		}
		if err != nil {
			r.err = fmt.Errorf("reading sequences: %w", err)
			return false
		}
		r.lineNum, _ = r.records.FieldPos(0)

		if r.index < 0 {
			for i, name := range record {
				if strings.EqualFold(strings.TrimSpace(name), r.column) {
					r.index = i
					break
				}
			}
			if r.index < 0 {
				r.err = fmt.Errorf("line %d: no column '%s' in header", r.lineNum, r.column)
				return false
			}
			continue
		}

		if r.index >= len(record) {
			r.err = fmt.Errorf("line %d: missing column %d", r.lineNum, r.index+1)
			return false
		}
		seq := strings.TrimSpace(record[r.index])
		if seq == "" {
			continue
		}
		r.seq = seq
		return true
	}
}

// Sequence returns the current sequence.
func (r *Reader) Sequence() string {
	return r.seq
}

// Line returns the line the current sequence was read from.
func (r *Reader) Line() int {
	return r.lineNum
}

// Err returns any error encountered during reading.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll collects every sequence of r.
func ReadAll(r io.Reader, opts Options) ([]string, error) {
	rd := NewReader(r, opts)
	var seqs []string
	for rd.Next() {
		seqs = append(seqs, rd.Sequence())
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return seqs, nil
}
