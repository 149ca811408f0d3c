package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
	ch     chan Event
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan Event, 16)}
}

func (r *recorder) handle(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	r.ch <- ev
}

func (r *recorder) wait(t *testing.T) Event {
	t.Helper()
	select {
	case ev := <-r.ch:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
		return Event{}
	}
}

func newTestWatcher(t *testing.T, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatchAndUnwatch(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t)

	a := filepath.Join(dir, "config.toml")
	b := filepath.Join(dir, "config.yaml")
	if err := w.Watch(a); err != nil {
		t.Fatalf("Watch(a) failed: %v", err)
	}
	if err := w.Watch(b); err != nil {
		t.Fatalf("Watch(b) failed: %v", err)
	}
	if err := w.Watch(a); err != nil {
		t.Fatalf("watching twice should be a no-op, got %v", err)
	}
	if n := len(w.WatchedFiles()); n != 2 {
		t.Errorf("WatchedFiles() = %d files, want 2", n)
	}

	if err := w.Unwatch(a); err != nil {
		t.Fatalf("Unwatch failed: %v", err)
	}
	if n := len(w.WatchedFiles()); n != 1 {
		t.Errorf("WatchedFiles() = %d files, want 1", n)
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	w := newTestWatcher(t)
	if err := w.Watch(filepath.Join(t.TempDir(), "nope", "config.toml")); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestWatchAfterClose(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Watch(t.TempDir()); err != ErrWatcherClosed {
		t.Errorf("expected ErrWatcherClosed, got %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}

func TestWriteIsReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[viewer]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t, WithDebounce(20*time.Millisecond))
	rec := newRecorder()
	w.OnChange(rec.handle)
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[viewer]\nrows = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := rec.wait(t)
	abs, _ := filepath.Abs(path)
	if ev.Path != abs {
		t.Errorf("Path = %q, want %q", ev.Path, abs)
	}
	if ev.Op != OpWrite {
		t.Errorf("Op = %v, want write", ev.Op)
	}
}

func TestAtomicSaveReadsAsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t, WithDebounce(50*time.Millisecond))
	rec := newRecorder()
	w.OnChange(rec.handle)
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	tmp := filepath.Join(dir, "config.toml.tmp")
	if err := os.WriteFile(tmp, []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	ev := rec.wait(t)
	if ev.Op == OpRemove {
		t.Errorf("atomic save should not read as remove, got %v", ev.Op)
	}
}

func TestQueueEventCoalescing(t *testing.T) {
	tests := []struct {
		first, second Operation
		want          Operation
	}{
		{OpWrite, OpWrite, OpWrite},
		{OpCreate, OpWrite, OpCreate},
		{OpWrite, OpRemove, OpRemove},
		{OpRemove, OpCreate, OpWrite},
		{OpRename, OpCreate, OpWrite},
	}

	for _, tt := range tests {
		w := &Watcher{pending: make(map[string]Event)}
		w.queueEvent(Event{Path: "/c", Op: tt.first})
		w.queueEvent(Event{Path: "/c", Op: tt.second})
		if got := w.pending["/c"].Op; got != tt.want {
			t.Errorf("%v then %v = %v, want %v", tt.first, tt.second, got, tt.want)
		}
	}
}

func TestConvertOp(t *testing.T) {
	tests := []struct {
		in   fsnotify.Op
		want Operation
		ok   bool
	}{
		{fsnotify.Write, OpWrite, true},
		{fsnotify.Create | fsnotify.Write, OpCreate, true},
		{fsnotify.Remove, OpRemove, true},
		{fsnotify.Rename, OpRename, true},
		{fsnotify.Chmod, 0, false},
	}

	for _, tt := range tests {
		got, ok := convertOp(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("convertOp(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
