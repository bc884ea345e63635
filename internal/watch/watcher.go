package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"hostfmt/pkg/hosts"
)

// Watcher keeps an up-to-date record snapshot of one hosts file, reloading
// it whenever the file is written.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	mu      sync.RWMutex
	records []hosts.Record
	errs    []error

	stopCh chan struct{}
}

// New creates a watcher for the hosts file at path
func New(path string) *Watcher {
	return &Watcher{
		path:   path,
		stopCh: make(chan struct{}),
	}
}

// Start loads the file once and begins watching it for writes
func (w *Watcher) Start() error {
	var err error
	w.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := w.reload(); err != nil {
		log.Warn().Err(err).Str("file", w.path).Msg("initial load failed")
	}

	// Start draining events before adding the file
	go w.watchFile()

	if err := w.watcher.Add(w.path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	return nil
}

// Stop stops watching
func (w *Watcher) Stop() {
	close(w.stopCh)
	if w.watcher != nil {
		w.watcher.Close()
	}
}

// Records returns the latest record snapshot
func (w *Watcher) Records() []hosts.Record {
	w.mu.RLock()
	defer w.mu.RUnlock()

	records := make([]hosts.Record, len(w.records))
	copy(records, w.records)
	return records
}

// Errs returns the per-line errors from the latest load
func (w *Watcher) Errs() []error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	errs := make([]error, len(w.errs))
	copy(errs, w.errs)
	return errs
}

func (w *Watcher) watchFile() {
	absPath, _ := filepath.Abs(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write != fsnotify.Write {
				continue
			}
			absEventPath, _ := filepath.Abs(event.Name)
			if absEventPath != absPath {
				continue
			}
			log.Info().Str("file", event.Name).Msg("hosts file modified")
			if err := w.reload(); err != nil {
				log.Error().Err(err).Msg("failed to reload hosts file")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("file watcher error")

		case <-w.stopCh:
			return
		}
	}
}

// reload re-reads the file, keeping good records and collecting the bad
// lines instead of aborting on them.
func (w *Watcher) reload() error {
	src, err := hosts.Open(w.path)
	if err != nil {
		return fmt.Errorf("failed to open hosts file: %w", err)
	}
	defer src.Close()

	var records []hosts.Record
	var errs []error
	iter := src.Records()
	for iter.Scan() {
		if err := iter.Err(); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", iter.Pos(), err))
			continue
		}
		records = append(records, iter.Record())
	}

	w.mu.Lock()
	w.records = records
	w.errs = errs
	w.mu.Unlock()

	log.Info().
		Int("records", len(records)).
		Int("bad_lines", len(errs)).
		Str("file", w.path).
		Msg("hosts file loaded")
	return nil
}
