package anim

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 100 * time.Millisecond

// Watcher reloads a choreography file whenever it changes on disk. A file that
// fails to parse is logged and the previous table stays current.
type Watcher struct {
	watcher  *fsnotify.Watcher
	name     string
	onChange func(*Choreography)
	debounce func(func())

	mu      sync.Mutex
	current *Choreography

	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher loads name and starts watching it. onChange may be nil.
func NewWatcher(name string, onChange func(*Choreography)) (*Watcher, error) {
	c, err := LoadChoreography(name)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors replace files by rename, so watch the directory
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		name:     abs,
		onChange: onChange,
		debounce: debounce.New(reloadDelay),
		current:  c,
		closeCh:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Current() *Choreography {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.name {
				continue
			}
			w.debounce(w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.Println("watch error", err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	select {
	case <-w.closeCh:
		return
	default:
	}

	c, err := LoadChoreography(w.name)
	if err != nil {
		w.Println("reload rejected", err)
		return
	}
	w.mu.Lock()
	w.current = c
	w.mu.Unlock()

	w.Println("reloaded", w.name)
	if w.onChange != nil {
		w.onChange(c)
	}
}

func (w *Watcher) Println(i ...interface{}) {
	log.Println("choreography", i)
}
