package config

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"facetgrip/internal/eventbus"
)

// DefaultDebounce coalesces the burst of events an editor save produces
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads the config file when it changes on disk. A file that
// fails to parse is logged and the previous config stays in effect.
type Watcher struct {
	path     string
	service  ConfigService
	onReload func(*Config)
	bus      eventbus.EventBus
	debounce time.Duration

	fsWatcher *fsnotify.Watcher
	mu        sync.Mutex
	timer     *time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

// WatcherOption configures a Watcher
type WatcherOption func(*Watcher)

// WithBus publishes ConfigReloaded events on bus
func WithBus(bus eventbus.EventBus) WatcherOption {
	return func(w *Watcher) { w.bus = bus }
}

// WithDebounce sets the quiet period before a reload
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher watches path and calls onReload with every successfully parsed
// version. The parent directory is watched so editors that replace the
// file on save are still seen.
func NewWatcher(path string, onReload func(*Config), opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:      abs,
		service:   NewConfigServiceAt(abs),
		onReload:  onReload,
		debounce:  DefaultDebounce,
		fsWatcher: fw,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				w.schedule()
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("ConfigWatcher: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}
	cfg, err := w.service.LoadFromPath(w.path)
	if err != nil {
		log.Printf("ConfigWatcher: keeping previous config: %v", err)
		if w.bus != nil {
			w.bus.Publish(eventbus.ErrorEvent{Message: "config reload failed", Err: err})
		}
		return
	}
	log.Printf("ConfigWatcher: reloaded %s", w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
	if w.bus != nil {
		w.bus.Publish(eventbus.ConfigReloadedEvent{Path: w.path})
	}
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.fsWatcher.Close()
	})
	return err
}
