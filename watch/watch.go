// Package watch regenerates schema files when they change on disk.
package watch

import (
	"context"
	"math"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/expandgen/config"
	"github.com/teranos/expandgen/errors"
	"github.com/teranos/expandgen/logger"
)

// Handler is called with the schema files that changed since the last call.
type Handler func(ctx context.Context, paths []string) error

// Watcher watches a set of schema files. Their directories are watched
// rather than the files, so editors that replace files on save are seen.
type Watcher struct {
	files    map[string]string // absolute path -> path as given
	dirs     []string
	debounce time.Duration
	limiter  *rate.Limiter
	handler  Handler
	logger   *zap.SugaredLogger
	ready    chan struct{}
}

// New creates a watcher for paths. Changes are batched for cfg.DebounceMS
// and handled at most cfg.MaxPerMinute times a minute (0 means no limit).
func New(paths []string, cfg config.WatchConfig, h Handler) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("nothing to watch")
	}

	w := &Watcher{
		files:    make(map[string]string),
		debounce: time.Duration(cfg.DebounceMS) * time.Millisecond,
		limiter:  newLimiter(cfg.MaxPerMinute),
		handler:  h,
		logger:   logger.ComponentLogger("watch"),
		ready:    make(chan struct{}),
	}

	seen := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving %s", p)
		}
		w.files[abs] = p
		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	return w, nil
}

func newLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(float64(perMinute)/60), int(math.Max(1, float64(perMinute)/10)))
}

// Ready is closed once the watches are installed.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. Handler errors are logged and do not
// stop the watch.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	defer fw.Close()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	w.logger.Infow("Watching schema files", logger.FieldCount, len(w.files))
	close(w.ready)

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]bool)
	)
	arm := func(d time.Duration) {
		if timer == nil {
			timer = time.NewTimer(d)
		} else {
			timer.Reset(d)
		}
		fire = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			path, watched := w.files[filepath.Clean(event.Name)]
			if !watched || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			w.logger.Debugw("Schema changed", logger.FieldFile, path, "op", event.Op.String())
			pending[path] = true
			arm(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)

		case <-fire:
			fire = nil
			if len(pending) == 0 {
				continue
			}
			if !w.limiter.Allow() {
				w.logger.Warnw("Regeneration rate limit reached, deferring", logger.FieldCount, len(pending))
				arm(w.retryDelay())
				continue
			}

			batch := make([]string, 0, len(pending))
			for p := range pending {
				batch = append(batch, p)
			}
			sort.Strings(batch)
			clear(pending)

			if err := w.handler(ctx, batch); err != nil {
				w.logger.Errorw("Regeneration failed", logger.FieldError, err)
			}
		}
	}
}

func (w *Watcher) retryDelay() time.Duration {
	if w.limiter.Limit() == rate.Inf || w.limiter.Limit() == 0 {
		return w.debounce
	}
	return time.Duration(float64(time.Second) / float64(w.limiter.Limit()))
}
