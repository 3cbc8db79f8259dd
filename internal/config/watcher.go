package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/slidekit/internal/logger"
)

const (
	defaultReloadCooldown = 500 * time.Millisecond
	defaultReloadSettle   = 50 * time.Millisecond
)

// Reload is delivered after the watched document changes on disk. Err is set
// when the new contents fail to parse or validate; the previous document stays
// in effect in that case.
type Reload struct {
	Config *Config
	Err    error
}

// WatchOptions tunes a Watcher. Zero values select the defaults.
type WatchOptions struct {
	Logger *logger.Logger
	// Cooldown drops write events that arrive this soon after the previous
	// reload. Many editors write a file twice.
	Cooldown time.Duration
	// Settle is the delay between the event and the read, giving the editor
	// time to flush.
	Settle time.Duration
}

// Watcher reloads a catalog document whenever it is written.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	log      *logger.Logger
	cooldown time.Duration
	settle   time.Duration

	reloads   chan Reload
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Watch starts watching path. The parent directory is watched so files
// replaced by rename are still seen.
func Watch(path string, opts WatchOptions) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		fs:       fsw,
		log:      opts.Logger.WithFields(map[string]any{"config": abs}),
		cooldown: opts.Cooldown,
		settle:   opts.Settle,
		reloads:  make(chan Reload, 1),
		done:     make(chan struct{}),
	}
	if w.cooldown <= 0 {
		w.cooldown = defaultReloadCooldown
	}
	if w.settle <= 0 {
		w.settle = defaultReloadSettle
	}

	w.wg.Add(1)
	go w.loop()

	w.log.Debug("watching config file")
	return w, nil
}

// Reloads delivers one Reload per accepted change. It is closed by Close.
func (w *Watcher) Reloads() <-chan Reload {
	return w.reloads
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for its goroutine. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
		close(w.reloads)
		w.log.Debug("stopped watching config file")
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var lastReload time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			now := time.Now()
			if !lastReload.IsZero() && now.Sub(lastReload) < w.cooldown {
				w.log.Debug("ignoring duplicate config event", "op", event.Op.String())
				continue
			}
			lastReload = now

			select {
			case <-time.After(w.settle):
			case <-w.done:
				return
			}

			w.deliver(w.reload())
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", "error", err.Error())
		}
	}
}

func (w *Watcher) reload() Reload {
	cfg, err := ParseConfig(w.path)
	if err != nil {
		w.log.Warn("failed to reload config file", "error", err.Error())
		return Reload{Err: err}
	}
	w.log.Info("reloaded config file", "sliders", len(cfg.Sliders))
	return Reload{Config: cfg}
}

// deliver replaces an unread reload so the consumer always sees the latest one.
func (w *Watcher) deliver(r Reload) {
	for {
		select {
		case w.reloads <- r:
			return
		case <-w.done:
			return
		default:
		}
		select {
		case <-w.reloads:
		default:
		}
	}
}
