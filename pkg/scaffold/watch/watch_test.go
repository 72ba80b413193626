package watch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	g8errors "mercator-hq/g8/pkg/g8/errors"
	"mercator-hq/g8/pkg/g8/props"
	"mercator-hq/g8/pkg/history"
	"mercator-hq/g8/pkg/scaffold"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	var last atomic.Int32
	for i := range 5 {
		d.Trigger(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
	if got := last.Load(); got != 4 {
		t.Errorf("last callback = %d, want 4", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()
	d.Trigger(func() { calls.Add(1) })

	time.Sleep(80 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("callback ran %d times after Stop, want 0", got)
	}
}

func TestRerender_ReplacesOutput(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(input, "hello.txt"), "Hello $name$\n")

	store := history.NewMemoryStore()
	r := scaffold.NewRenderer(scaffold.WithLogger(quietLogger()), scaffold.WithRecorder(store))
	ctx := context.Background()

	if _, err := r.Render(ctx, props.NewSet(props.NewPair("name", "one")), input, output); err != nil {
		t.Fatalf("initial Render() error = %v", err)
	}
	writeFile(t, filepath.Join(output, "stale.txt"), "left over")

	result, err := Rerender(ctx, r, props.NewSet(props.NewPair("name", "two")), input, output)
	if err != nil {
		t.Fatalf("Rerender() error = %v", err)
	}
	if result.Output != output {
		t.Errorf("result.Output = %q, want %q", result.Output, output)
	}
	runs, _ := store.ListRuns(ctx, 0)
	for _, run := range runs {
		if run.Output != output {
			t.Errorf("recorded output = %q, want %q", run.Output, output)
		}
	}
	if got := readFile(t, filepath.Join(output, "hello.txt")); got != "Hello two\n" {
		t.Errorf("hello.txt = %q", got)
	}
	if _, err := os.Stat(filepath.Join(output, "stale.txt")); !os.IsNotExist(err) {
		t.Errorf("stale file should be gone, stat error = %v", err)
	}

	entries, _ := os.ReadDir(filepath.Dir(output))
	if len(entries) != 1 {
		t.Errorf("staging directory left behind: %v", entries)
	}
}

func TestRerender_FailureKeepsOutput(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(input, "hello.txt"), "Hello $name$\n")

	r := scaffold.NewRenderer(scaffold.WithLogger(quietLogger()))
	ctx := context.Background()

	if _, err := r.Render(ctx, props.NewSet(props.NewPair("name", "one")), input, output); err != nil {
		t.Fatal(err)
	}

	_, err := Rerender(ctx, r, props.NewSet(), input, output)
	if !errors.Is(err, g8errors.ErrPropertyNotFound) {
		t.Fatalf("expected property-not-found, got %v", err)
	}
	if got := readFile(t, filepath.Join(output, "hello.txt")); got != "Hello one\n" {
		t.Errorf("previous output was modified: %q", got)
	}
}

func TestNewWatcher_RequiresInput(t *testing.T) {
	if _, err := NewWatcher(Config{}, nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestWatcher_IgnoresHiddenAndIgnored(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig(dir)
	cfg.Ignore = []string{filepath.Join(dir, "out")}

	w, err := NewWatcher(cfg, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(dir, "a.txt"), true},
		{filepath.Join(dir, ".swp"), false},
		{filepath.Join(dir, "out"), false},
		{filepath.Join(dir, "out", "a.txt"), false},
		{filepath.Join(dir, "outer.txt"), true},
	}
	for _, tt := range tests {
		if got := !w.hidden(tt.path) && !w.ignored(tt.path); got != tt.want {
			t.Errorf("process(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestRun_RerendersOnChange(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping watch test in short mode")
	}

	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "out")
	template := filepath.Join(input, "sub", "hello.txt")
	writeFile(t, template, "v1 $name$\n")

	cfg := DefaultConfig(input)
	cfg.Debounce = 30 * time.Millisecond
	w, err := NewWatcher(cfg, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	r := scaffold.NewRenderer(scaffold.WithLogger(quietLogger()))
	resolve := func() (*props.Set, error) {
		return props.NewSet(props.NewPair("name", "g8")), nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, w, r, resolve, input, output) }()

	target := filepath.Join(output, "sub", "hello.txt")
	waitFor(t, func() bool {
		data, err := os.ReadFile(target)
		return err == nil && string(data) == "v1 g8\n"
	})

	// Give the watcher time to register before changing the template.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, template, "v2 $name$\n")

	waitFor(t, func() bool {
		data, err := os.ReadFile(target)
		return err == nil && string(data) == "v2 g8\n"
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Run did not return after cancel")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}
