package generate

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/confgen/confgen/errors"
	"github.com/confgen/confgen/loader"
	"github.com/confgen/confgen/logger"
)

// Watcher watches a config directory and regenerates the declaration when
// an environment document changes. Editor save bursts are coalesced twice:
// a rate limiter drops event storms up front, and a debounce timer delays
// the actual regeneration until the directory has been quiet.
type Watcher struct {
	configDir      string
	watcher        *fsnotify.Watcher
	regenerate     func() error
	limiter        *rate.Limiter
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	done           chan struct{}
}

// NewWatcher creates a watcher over configDir. regenerate is called after
// each debounced batch of changes.
func NewWatcher(configDir string, debounce time.Duration, regenerate func() error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := fsw.Add(configDir); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch config directory %s", configDir)
	}

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{
		configDir:      configDir,
		watcher:        fsw,
		regenerate:     regenerate,
		limiter:        rate.NewLimiter(rate.Every(debounce), 1),
		debouncePeriod: debounce,
		done:           make(chan struct{}),
	}, nil
}

// Start begins watching for config file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// Only environment documents matter; ignore editors' swap
			// files, the emitted declaration, and anything deny-listed.
			if !loader.Eligible(filepath.Base(event.Name)) {
				continue
			}

			logger.Debugw("Config watcher detected change",
				logger.FieldFile, event.Name,
				logger.FieldOperation, event.Op.String())

			if !w.limiter.Allow() {
				// A regeneration is already pending for this burst.
				continue
			}
			w.scheduleRegenerate()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Config watcher error",
				logger.FieldError, err)

		case <-w.done:
			return
		}
	}
}

// scheduleRegenerate debounces rapid file changes and triggers regeneration
func (w *Watcher) scheduleRegenerate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.regenerate(); err != nil {
			logger.Errorw("Regeneration after config change failed",
				logger.FieldError, err)
		}
	})
}

// Stop stops watching for config changes
func (w *Watcher) Stop() error {
	close(w.done)
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
