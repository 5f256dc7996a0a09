package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/emmertex/riskyexpand/internal/logging"
)

// ReloadHandler is called when a watched config file changes.
type ReloadHandler func(path string)

// Watcher monitors the config directory and invokes a handler when the
// trigger or command file is written. Events are debounced because
// editors commonly produce several writes per save.
type Watcher struct {
	dir      string
	files    map[string]bool
	handler  ReloadHandler
	debounce time.Duration

	fw   *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup

	mu      sync.Mutex
	pending *time.Timer
}

// NewWatcher creates a watcher over the given config directory for the
// named files (base names).
func NewWatcher(dir string, files []string, handler ReloadHandler) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	watched := make(map[string]bool, len(files))
	for _, f := range files {
		watched[f] = true
	}

	return &Watcher{
		dir:      dir,
		files:    watched,
		handler:  handler,
		debounce: 200 * time.Millisecond,
		fw:       fw,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.loop()
}

// Stop stops watching and waits for the loop to exit.
func (w *Watcher) Stop() {
	close(w.done)
	w.fw.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	log := logging.GetLogger("config")

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(event.Name)
			if !w.files[name] {
				continue
			}
			log.Debug().Str("file", name).Msg("config file changed")
			w.schedule(event.Name)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("config watcher error")

		case <-w.done:
			return
		}
	}
}

// schedule arms the debounce timer for a changed file.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		w.handler(path)
	})
}
