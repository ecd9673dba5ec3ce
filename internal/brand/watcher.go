package brand

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"dailyverse/internal/localstate"
)

// Watcher reloads the persisted brand theme when another session writes it,
// so a second admin's edit shows up live. Updates arrive on C; Close stops
// the watch goroutine.
type Watcher struct {
	C chan Theme

	editor  *Editor
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts watching the state directory for brand theme writes.
func (e *Editor) Watch() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors and atomic writes replace
	// the file node and would silently detach a file-level watch.
	if err := fw.Add(e.store.Dir()); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		C:       make(chan Theme, 1),
		editor:  e,
		watcher: fw,
		done:    make(chan struct{}),
	}
	go w.run(e.store.Path(localstate.KeyBrandTheme))
	return w, nil
}

func (w *Watcher) run(themePath string) {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(themePath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.editor.reload()
			select {
			case w.C <- w.editor.Current():
			default:
				// A pending update is still unread; the latest state will be
				// read from Current anyway.
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the watcher and waits for the goroutine to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

// reload re-reads the persisted theme, keeping current values for fields
// the file does not set.
func (e *Editor) reload() {
	var saved Theme
	ok, err := e.store.Get(localstate.KeyBrandTheme, &saved)
	if err != nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !ok {
		e.current = Default()
		return
	}
	e.current = merge(e.current, saved)
}
