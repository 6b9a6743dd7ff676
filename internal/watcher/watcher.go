// file: internal/watcher/watcher.go
// version: 2.1.0
// guid: c4e6a8b0-d2f4-4a6b-8c0d-e2f4a6b8c0d2

package watcher

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// corpusExtensions are the file extensions we care about.
var corpusExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// DefaultDebounce is the default debounce period.
const DefaultDebounce = time.Second

// Callback is invoked after the debounce period with the corpus file path.
type Callback func(path string)

// Watcher monitors a corpus file for changes and invokes a callback after
// a debounce period, so editors that write in several bursts trigger a
// single reload.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	callback  Callback
	stop      chan struct{}
	stopped   chan struct{}
	mu        sync.Mutex
	timer     *time.Timer
	running   bool
}

// New creates a Watcher. The callback is called with the corpus path after
// events settle for the debounce duration. Pass 0 for debounce to use
// DefaultDebounce.
func New(callback Callback, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		debounce: debounce,
		callback: callback,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start begins watching the corpus file at path. The parent directory is
// watched rather than the file itself so atomic rename-into-place saves
// keep working. It is safe to call only once.
func (w *Watcher) Start(path string) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsWatcher = fsw
	w.path = path

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return err
	}

	go w.eventLoop()
	return nil
}

// Stop gracefully shuts down the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stop)
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}
	<-w.stopped

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
}

func (w *Watcher) eventLoop() {
	defer close(w.stopped)

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ERROR] watcher: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	relevant := event.Op&(fsnotify.Create|fsnotify.Rename|fsnotify.Write) != 0
	if !relevant {
		return
	}
	if !IsCorpusFile(event.Name) {
		return
	}
	// Ignore sibling files in the watched directory.
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}

	w.scheduleReload()
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Reset(w.debounce)
		return
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		w.timer = nil
		w.mu.Unlock()

		log.Printf("[INFO] watcher: corpus changed, triggering reload for %s", w.path)
		if w.callback != nil {
			w.callback(w.path)
		}
	})
}

// IsCorpusFile reports whether name has a recognized corpus extension.
func IsCorpusFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return corpusExtensions[ext]
}
