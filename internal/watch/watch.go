// Package watch reloads a project's Lift configuration whenever one of the
// candidate files appears, changes or disappears.
package watch

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/nvandessel/liftconf/internal/config"
)

// DefaultDebounce is how long the watcher waits for a burst of file events
// to settle before reloading.
const DefaultDebounce = 200 * time.Millisecond

// Event is the state of a project after a reload.
type Event struct {
	// Path is the active configuration, or "" when the project has none.
	Path   string
	Record *config.Record
	// Err is set when the active configuration could not be loaded.
	Err error
}

func (e Event) same(o Event) bool {
	if e.Err != nil || o.Err != nil {
		return false
	}
	return e.Path == o.Path && e.Record.Equal(o.Record)
}

// Watcher follows the configuration of one project root.
type Watcher struct {
	Debounce time.Duration

	root     string
	loader   config.Loader
	log      zerolog.Logger
	fs       *fsnotify.Watcher
	relevant []string
}

// New creates a watcher for root. The root must be an existing directory; a
// relative root is resolved against the working directory.
func New(root string, loader config.Loader, log zerolog.Logger) (*Watcher, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if _, err := loader.Locate(root); err != nil {
		return nil, err
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		Debounce: DefaultDebounce,
		root:     root,
		loader:   loader,
		log:      log,
		fs:       fs,
	}
	for _, candidate := range append(slices.Clone(config.CandidateFiles), config.DefaultIgnoresFile) {
		w.relevant = append(w.relevant, filepath.Join(root, filepath.FromSlash(candidate)))
	}
	w.relevant = append(w.relevant, w.dirs()...)

	if err := fs.Add(root); err != nil {
		fs.Close()
		return nil, err
	}
	for _, dir := range w.dirs() {
		w.addDir(dir)
	}
	return w, nil
}

// dirs are the subdirectories that may hold candidates.
func (w *Watcher) dirs() []string {
	return []string{filepath.Join(w.root, ".lift"), filepath.Join(w.root, ".muse")}
}

// addDir watches dir if it exists. Missing directories are picked up when
// they are created under the root.
func (w *Watcher) addDir(dir string) {
	if err := w.fs.Add(dir); err != nil {
		w.log.Debug().Str("dir", dir).Err(err).Msg("not watching directory")
	}
}

// Run sends the current state of the project, then a new Event each time it
// changes, until ctx is done. It closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context, events chan<- Event) error {
	defer w.fs.Close()

	last := w.load()
	if !send(ctx, events, last) {
		return nil
	}

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !slices.Contains(w.relevant, ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) && slices.Contains(w.dirs(), ev.Name) {
				w.addDir(ev.Name)
			}
			w.log.Debug().Str("path", ev.Name).Str("op", ev.Op.String()).Msg("configuration event")
			settle = time.After(w.Debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("file watch error")

		case <-settle:
			settle = nil
			next := w.load()
			if next.same(last) {
				continue
			}
			last = next
			if !send(ctx, events, next) {
				return nil
			}
		}
	}
}

func (w *Watcher) load() Event {
	rec, path, err := w.loader.LoadFromDirectory(w.root)
	return Event{Path: path, Record: rec, Err: err}
}

func send(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
