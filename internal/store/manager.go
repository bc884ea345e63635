package store

import (
	"bytes"
	"fmt"
	"io"
	"net/netip"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"

	"hostfmt/pkg/hosts"
)

// Manager handles an editable in-memory snapshot of one hosts file
type Manager struct {
	filename string
	lines    []hosts.Line
	mu       sync.RWMutex
}

// NewManager creates a new hosts file manager
func NewManager(filename string) *Manager {
	return &Manager{filename: filename}
}

// Load reads the whole file into memory. Every malformed line is collected
// into one aggregate error; the snapshot is replaced only on a clean load.
func (m *Manager) Load() error {
	src, err := hosts.Open(m.filename)
	if err != nil {
		return fmt.Errorf("failed to open hosts file: %w", err)
	}
	defer src.Close()

	var lines []hosts.Line
	var errs *multierror.Error
	iter := src.Lines()
	for iter.Scan() {
		if err := iter.Err(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", iter.Pos(), err))
			continue
		}
		lines = append(lines, iter.Line())
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	m.mu.Lock()
	m.lines = lines
	m.mu.Unlock()

	log.Debug().Int("lines", len(lines)).Str("file", m.filename).Msg("loaded hosts file")
	return nil
}

// Lines returns a copy of all lines in file order
func (m *Manager) Lines() []hosts.Line {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lines := make([]hosts.Line, len(m.lines))
	copy(lines, m.lines)
	return lines
}

// Records returns the records of all data lines in file order
func (m *Manager) Records() []hosts.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var records []hosts.Record
	for _, ln := range m.lines {
		if rec, ok := ln.Record(); ok {
			records = append(records, rec)
		}
	}
	return records
}

// Add merges a record into the line already holding its address, deduping
// aliases in first-seen order, or appends a new line for a new address.
func (m *Manager) Add(rec hosts.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, ln := range m.lines {
		addr, ok := ln.Addr()
		if !ok || addr != rec.Addr() {
			continue
		}

		merged := append(ln.Aliases(), rec.Aliases()...)
		seen := make(map[string]struct{}, len(merged))
		deduped := merged[:0]
		for _, alias := range merged {
			if _, dup := seen[alias]; dup {
				continue
			}
			seen[alias] = struct{}{}
			deduped = append(deduped, alias)
		}

		m.lines[i] = replaceRecord(ln, addr, deduped)
		return
	}

	m.lines = append(m.lines, hosts.RecordLine(rec))
}

// RemoveAddr drops the lines holding addr, reporting whether any did
func (m *Manager) RemoveAddr(addr netip.Addr) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.lines[:0]
	removed := false
	for _, ln := range m.lines {
		if a, ok := ln.Addr(); ok && a == addr {
			removed = true
			continue
		}
		kept = append(kept, ln)
	}
	m.lines = kept
	return removed
}

// RemoveAlias strips an alias from every record, dropping lines left with
// no aliases. It returns the number of records the alias was removed from.
func (m *Manager) RemoveAlias(alias string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.lines[:0]
	removed := 0
	for _, ln := range m.lines {
		addr, ok := ln.Addr()
		if !ok {
			kept = append(kept, ln)
			continue
		}

		aliases := ln.Aliases()
		remaining := aliases[:0]
		for _, a := range aliases {
			if a == alias {
				continue
			}
			remaining = append(remaining, a)
		}
		if len(remaining) == len(aliases) {
			kept = append(kept, ln)
			continue
		}

		removed++
		if len(remaining) == 0 {
			continue
		}
		kept = append(kept, replaceRecord(ln, addr, remaining))
	}
	m.lines = kept
	return removed
}

// Minify replaces all lines with the minified record set. Comments and
// blank lines are dropped; this is the minified rendition, not an edit.
func (m *Manager) Minify() {
	m.mu.Lock()
	defer m.mu.Unlock()

	var records []hosts.Record
	for _, ln := range m.lines {
		if rec, ok := ln.Record(); ok {
			records = append(records, rec)
		}
	}

	minified := hosts.Minify(records)
	lines := make([]hosts.Line, 0, len(minified))
	for _, rec := range minified {
		lines = append(lines, hosts.RecordLine(rec))
	}
	m.lines = lines
}

// WriteTo re-serializes the snapshot, one line per element
func (m *Manager) WriteTo(w io.Writer) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	for _, ln := range m.lines {
		n, err := fmt.Fprintln(w, ln)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Save writes the snapshot back to the managed file
func (m *Manager) Save() error {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return err
	}

	if err := os.WriteFile(m.filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to save hosts file: %w", err)
	}

	log.Debug().Str("file", m.filename).Msg("saved hosts file")
	return nil
}

// replaceRecord rebuilds a data line with new aliases, keeping its comment.
func replaceRecord(ln hosts.Line, addr netip.Addr, aliases []string) hosts.Line {
	rec, err := hosts.NewRecord(addr, aliases...)
	if err != nil {
		// Aliases came from already-validated records.
		panic(fmt.Sprintf("store: rebuilt record is invalid: %v", err))
	}
	if comment, ok := ln.Comment(); ok {
		return hosts.NewLine(rec, comment)
	}
	return hosts.RecordLine(rec)
}
