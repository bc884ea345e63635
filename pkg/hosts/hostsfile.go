package hosts

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// DefaultPath is the standard location of the system hosts file.
const DefaultPath = "/etc/hosts"

// HostsFile adapts a byte source into lazy sequences of lines, records and
// (alias, address) pairs. All sequences are single-pass; restart by
// constructing a fresh HostsFile over the same source.
type HostsFile struct {
	r io.Reader
	c io.Closer
}

// Load opens the system hosts file.
func Load() (*HostsFile, error) {
	return Open(DefaultPath)
}

// Open opens the hosts file at path. The handle is owned by the HostsFile
// and released by Close.
func Open(path string) (*HostsFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &HostsFile{r: f, c: f}, nil
}

// New reads hosts data from an arbitrary reader.
func New(r io.Reader) *HostsFile {
	return &HostsFile{r: r}
}

// Close releases the underlying handle, if the HostsFile owns one.
func (h *HostsFile) Close() error {
	if h.c == nil {
		return nil
	}
	return h.c.Close()
}

// Lines iterates over every line in the file.
func (h *HostsFile) Lines() *LineIter {
	return &LineIter{br: bufio.NewReader(h.r)}
}

// Records iterates over the lines in the file carrying a record.
func (h *HostsFile) Records() *RecordIter {
	return &RecordIter{lines: h.Lines()}
}

// Pairs iterates over every (alias, address) pair in the file.
func (h *HostsFile) Pairs() *PairIter {
	return &PairIter{records: h.Records()}
}

// LineIter is a single-pass iterator over the lines of a hosts file.
type LineIter struct {
	br   *bufio.Reader
	line Line
	err  error
	pos  int
	done bool
}

// Scan advances to the next physical line, returning false only when the
// input is exhausted. The cursor advances even when the current line fails
// to parse, so a caller may keep scanning past bad lines; check Err after
// every Scan. An I/O-level read failure is surfaced once and ends the scan.
func (it *LineIter) Scan() bool {
	if it.done {
		return false
	}
	raw, err := it.br.ReadString('\n')
	switch {
	case err == nil:
	case err == io.EOF:
		if raw == "" {
			it.done = true
			return false
		}
		// Final line without a terminator.
		it.done = true
	default:
		it.pos++
		it.line, it.err = Line{}, &ReadError{Err: err}
		it.done = true
		return true
	}
	it.pos++
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	it.line, it.err = ParseLine(raw)
	return true
}

// Line returns the current line; valid only when Err is nil.
func (it *LineIter) Line() Line { return it.line }

// Err returns the error for the current line, nil if it parsed.
func (it *LineIter) Err() error { return it.err }

// Pos returns the 1-based number of the current physical line.
func (it *LineIter) Pos() int { return it.pos }

// RecordIter is a single-pass iterator over the records of a hosts file,
// skipping blank and comment-only lines.
type RecordIter struct {
	lines *LineIter
	rec   Record
	err   error
}

// Scan advances to the next line carrying a record. Lines that fail to read
// or parse still surface through Err, one per Scan, without ending the
// iteration.
func (it *RecordIter) Scan() bool {
	for it.lines.Scan() {
		if err := it.lines.Err(); err != nil {
			it.rec, it.err = Record{}, err
			return true
		}
		rec, ok := it.lines.Line().Record()
		if !ok {
			continue
		}
		it.rec, it.err = rec, nil
		return true
	}
	return false
}

// Record returns the current record; valid only when Err is nil.
func (it *RecordIter) Record() Record { return it.rec }

// Err returns the error for the current position, nil if a record parsed.
func (it *RecordIter) Err() error { return it.err }

// Pos returns the 1-based physical line number of the current record.
func (it *RecordIter) Pos() int { return it.lines.Pos() }

// PairIter lazily flattens a hosts file into (alias, address) pairs: the
// current record's remaining aliases are drained one at a time before the
// next record is pulled, so the record list is never materialized.
type PairIter struct {
	records *RecordIter
	pending *RecordPairs
	pair    Pair
	err     error
}

// Scan advances to the next pair, refilling from the record sequence when
// the current record runs dry. Bad lines surface through Err, one per Scan.
func (it *PairIter) Scan() bool {
	it.err = nil
	for {
		if it.pending != nil {
			if pair, ok := it.pending.Next(); ok {
				it.pair = pair
				return true
			}
			it.pending = nil
		}
		if !it.records.Scan() {
			return false
		}
		if err := it.records.Err(); err != nil {
			it.pair, it.err = Pair{}, err
			return true
		}
		it.pending = it.records.Record().Pairs()
	}
}

// Pair returns the current pair; valid only when Err is nil.
func (it *PairIter) Pair() Pair { return it.pair }

// Err returns the error for the current position.
func (it *PairIter) Err() error { return it.err }

// Pos returns the 1-based physical line number of the current pair.
func (it *PairIter) Pos() int { return it.records.Pos() }
