// Package configwatch reloads the calc options file when it changes on disk.
package configwatch

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pengelbrecht/calc/internal/config"
)

// ErrDirMissing is returned by Start when the directory holding the options
// file does not exist. Start never creates it.
var ErrDirMissing = errors.New("config directory does not exist")

// Reload carries the freshly loaded config, or the error that prevented it.
// A deleted options file reloads as the defaults.
type Reload struct {
	Config config.Config
	Err    error
}

// Watcher monitors a single options file.
type Watcher struct {
	path    string
	dir     string
	name    string
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	events  chan Reload

	debounceDelay time.Duration
	timer         *time.Timer
	timerMu       sync.Mutex

	// Lifecycle
	stopCh    chan struct{}
	stoppedCh chan struct{}
	running   bool
	closed    bool
	runningMu sync.Mutex
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long to wait for writes to settle before reloading.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounceDelay = d
	}
}

// WithLogger sets the logger for watch errors.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New creates a watcher for the options file at path.
func New(path string, opts ...Option) *Watcher {
	w := &Watcher{
		path:          path,
		dir:           filepath.Dir(path),
		name:          filepath.Base(path),
		logger:        slog.Default(),
		events:        make(chan Reload, 8),
		debounceDelay: 100 * time.Millisecond,
		stopCh:        make(chan struct{}),
		stoppedCh:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. The directory holding the file must exist; the file
// itself may appear later. Calling Start twice is a no-op.
func (w *Watcher) Start() error {
	w.runningMu.Lock()
	defer w.runningMu.Unlock()

	if w.running || w.closed {
		return nil
	}

	info, err := os.Stat(w.dir)
	if errors.Is(err, os.ErrNotExist) || (err == nil && !info.IsDir()) {
		return ErrDirMissing
	}
	if err != nil {
		return err
	}

	// Editors often replace files via rename, so watch the directory
	// rather than the file itself.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return err
	}
	w.watcher = watcher

	w.running = true
	go w.watchLoop()

	return nil
}

// Stop terminates the watcher and closes the events channel.
func (w *Watcher) Stop() {
	w.runningMu.Lock()
	if w.closed {
		w.runningMu.Unlock()
		return
	}
	wasRunning := w.running
	w.running = false
	w.closed = true
	w.runningMu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.stoppedCh
		w.watcher.Close()
	}

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.timerMu.Unlock()

	// Hold runningMu so an in-flight emit cannot race the close.
	w.runningMu.Lock()
	close(w.events)
	w.runningMu.Unlock()
}

// Events returns the channel of reloads.
func (w *Watcher) Events() <-chan Reload {
	return w.events
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) watchLoop() {
	defer close(w.stoppedCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.debounce()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) debounce() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	cfg, err := config.LoadOrDefault(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
	} else {
		w.logger.Debug("config reloaded", "path", w.path)
	}
	w.emit(Reload{Config: cfg, Err: err})
}

func (w *Watcher) emit(r Reload) {
	w.runningMu.Lock()
	defer w.runningMu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.events <- r:
	default:
		// Channel full, drop event
	}
}
