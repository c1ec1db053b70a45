package anim

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWatcherReloads(t *testing.T) {
	src, err := ioutil.ReadFile(filepath.Join("testdata", "choreography.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "choreography.yaml")
	if err := ioutil.WriteFile(name, src, 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Choreography, 4)
	w, err := NewWatcher(name, func(c *Choreography) { changed <- c })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if w.Current().Lambda != 3 {
		t.Fatalf("initial lambda %v", w.Current().Lambda)
	}

	// a broken file keeps the last good table
	if err := ioutil.WriteFile(name, []byte("modes: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(4 * reloadDelay)
	if w.Current().Lambda != 3 {
		t.Fatalf("broken file replaced the table")
	}

	patched := strings.Replace(string(src), "lambda: 3", "lambda: 5", 1)
	if err := ioutil.WriteFile(name, []byte(patched), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changed:
		if c.Lambda != 5 {
			t.Fatalf("reloaded lambda %v", c.Lambda)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no reload observed")
	}
	if w.Current().Lambda != 5 {
		t.Fatalf("current lambda %v", w.Current().Lambda)
	}
}

func TestWatcherMissingFile(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}
