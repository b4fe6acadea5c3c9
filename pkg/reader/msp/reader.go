// Package msp provides streaming readers that pull annotated peptide
// sequences out of MSP (Prosit) and SPTXT (SpectraST) spectral libraries.
package msp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is the peptide identity of one library spectrum.
type Entry struct {
	Sequence    string // annotated sequence as written in the Name field
	Charge      int
	PrecursorMZ float64
	Line        int // line of the Name field
}

// Reader provides streaming access to the entries of a library. Peak lists
// are skipped.
type Reader struct {
	scanner *bufio.Scanner
	lineNum int
	current *Entry
	err     error
}

// NewReader creates a new library reader
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: sc}
}

// Next advances to the next entry. Returns false when no more entries or error.
func (r *Reader) Next() bool {
	r.current = nil

	entry, err := r.readEntry()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}

	r.current = entry
	return true
}

// Entry returns the current entry
func (r *Reader) Entry() *Entry {
	return r.current
}

// Err returns any error encountered during reading
func (r *Reader) Err() error {
	return r.err
}

// readEntry reads one entry, header fields through the last peak.
func (r *Reader) readEntry() (*Entry, error) {
	var entry *Entry
	numPeaks := 0
	inPeaks := false
	peaksRead := 0

	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			if inPeaks && entry != nil {
				// a blank line ends a short peak list
				return entry, nil
			}
			continue
		}

		if inPeaks {
			peaksRead++
			if peaksRead >= numPeaks {
				return entry, nil
			}
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: unexpected line '%s'", r.lineNum, line)
		}
		value = strings.TrimSpace(value)

		switch key {
		case "Name":
			e, err := parseName(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", r.lineNum, err)
			}
			e.Line = r.lineNum
			entry = e
		case "PrecursorMZ":
			if entry == nil {
				return nil, fmt.Errorf("line %d: %s before Name", r.lineNum, key)
			}
			if mz, err := strconv.ParseFloat(value, 64); err == nil {
				entry.PrecursorMZ = mz
			}
		case "Comment":
			if entry == nil {
				return nil, fmt.Errorf("line %d: %s before Name", r.lineNum, key)
			}
			parseComment(entry, value)
		case "Num peaks", "NumPeaks":
			if entry == nil {
				return nil, fmt.Errorf("line %d: %s before Name", r.lineNum, key)
			}
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: invalid num peaks '%s'", r.lineNum, value)
			}
			if n == 0 {
				return entry, nil
			}
			numPeaks = n
			inPeaks = true
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}

	// A truncated last entry still names a sequence
	if entry != nil {
		return entry, nil
	}

	return nil, io.EOF
}

// parseName splits a Name field of the form "SEQUENCE/CHARGE".
func parseName(name string) (*Entry, error) {
	i := strings.LastIndexByte(name, '/')
	if i <= 0 {
		return nil, fmt.Errorf("invalid name format '%s', expected 'SEQUENCE/CHARGE'", name)
	}

	charge, err := strconv.Atoi(strings.TrimSpace(name[i+1:]))
	if err != nil {
		return nil, fmt.Errorf("invalid charge in name '%s': %w", name, err)
	}

	return &Entry{Sequence: name[:i], Charge: charge}, nil
}

// parseComment picks the precursor m/z out of key=value comment fields.
// Example: Parent=414.71 Collision_energy=35 iRT=61.01
func parseComment(entry *Entry, comment string) {
	for _, field := range strings.Fields(comment) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key != "Parent" || entry.PrecursorMZ != 0 {
			continue
		}
		if mz, err := strconv.ParseFloat(value, 64); err == nil {
			entry.PrecursorMZ = mz
		}
	}
}
