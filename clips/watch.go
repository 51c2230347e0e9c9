package clips

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is the quiet period after the last change before the
// callback fires. Editors tend to emit several events per save.
const debounceDelay = 150 * time.Millisecond

// Watcher invokes a callback when clip library yaml or tengo hook files in a
// directory change, so tools can hot reload them. The callback runs on the
// watcher's own goroutine; hand the path off to your update loop rather
// than reloading in place.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func(path string)
	done     chan struct{}
	finished chan struct{}
	once     sync.Once
}

// Watch starts watching dir. Changes settle for debounceDelay before
// onChange fires, once per changed path in sorted order.
func Watch(dir string, onChange func(path string)) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("clips: watch %s: onChange is nil", dir)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("clips: watch: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("clips: watch %s: %w", dir, err)
	}
	w := &Watcher{
		fsw:      fsw,
		onChange: onChange,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and waits for the last callback to return. Safe
// to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		<-w.finished
	})
	return err
}

// run owns the debounce state and the Watcher's whole delivery lifecycle,
// so there is no channel for Close to race against.
func (w *Watcher) run() {
	defer close(w.finished)

	pending := make(map[string]bool)
	var timer *time.Timer
	var settle <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
				continue
			}
			if !isClipFile(ev.Name) {
				continue
			}
			pending[ev.Name] = true
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				settle = timer.C
			} else {
				timer.Reset(debounceDelay)
			}
		case <-settle:
			paths := make([]string, 0, len(pending))
			for path := range pending {
				paths = append(paths, path)
			}
			sort.Strings(paths)
			for _, path := range paths {
				w.onChange(path)
			}
			clear(pending)
			timer = nil
			settle = nil
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("clips: watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

// isClipFile reports whether a path is worth reloading for: library yaml or
// tengo event hooks.
func isClipFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
