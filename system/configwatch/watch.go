// Package configwatch watches a TOML file on disk and keeps an
// in-memory, generation-numbered snapshot of its parsed contents,
// re-parsing on every write. Adapted from the teacher's system/logd
// server, which kept a monotonic sequence number over committed
// transactions (storage.SeqState) behind an equivalent watch loop; here
// the "transactions" are just successive parses of one file.
package configwatch

import (
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/tomlcore/tomlcore/ir"
	"github.com/tomlcore/tomlcore/parse"
)

// Watcher holds the latest successfully parsed snapshot of a TOML file,
// along with the generation number it was parsed at. A parse failure
// leaves the previous snapshot in place and is reported by Err.
type Watcher struct {
	path string
	fw   *fsnotify.Watcher
	gen  atomic.Uint64

	mu      sync.RWMutex
	current *ir.Table
	lastErr error

	onChange func(*ir.Table, uint64)
	done     chan struct{}
}

// New starts watching path, parsing it once before returning so Current
// is immediately usable. onChange, if non-nil, is called after each later
// successful re-parse; it is not called for the initial parse.
func New(path string, onChange func(*ir.Table, uint64)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		path: path,
		fw:   fw,
		done: make(chan struct{}),
	}
	if err := w.reload(); err != nil {
		fw.Close()
		return nil, err
	}
	w.onChange = onChange
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload()
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) reload() error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.setErr(err)
		return err
	}
	t, err := parse.Parse(data)
	if err != nil {
		w.setErr(err)
		return err
	}

	w.mu.Lock()
	w.current = t
	w.lastErr = nil
	gen := w.gen.Inc()
	w.mu.Unlock()

	if w.onChange != nil {
		w.onChange(t, gen)
	}
	return nil
}

func (w *Watcher) setErr(err error) {
	w.mu.Lock()
	w.lastErr = err
	w.mu.Unlock()
}

// Current returns the latest successfully parsed table and the
// generation number it was parsed at.
func (w *Watcher) Current() (*ir.Table, uint64) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current, w.gen.Load()
}

// Err returns the error from the most recent reload attempt, or nil if
// the most recent attempt succeeded.
func (w *Watcher) Err() error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastErr
}

// Close releases the underlying fsnotify watcher, waits for the watch
// loop to stop, and returns the watcher's close error passed through
// multierr.Append (the watch loop itself reports no error).
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return multierr.Append(err, nil)
}
