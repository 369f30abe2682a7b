package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func TestStartWatcherNoRoots(t *testing.T) {
	if _, _, err := StartWatcher(context.Background(), WatchConfig{}); err == nil {
		t.Fatal("expected an error for an empty root list")
	}
}

func TestStartWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "factura.pdf")
	if err := os.WriteFile(want, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nota.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	if err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-evCh:
		if got != want {
			t.Fatalf("initial scan emitted %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("initial scan emitted nothing")
	}
}

// A burst of dropped files must coalesce through the debounce without losing
// paths. Run under -race: the debounce timer and the event loop used to touch
// the pending set concurrently.
func TestStartWatcherDebouncedBurst(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, errCh, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}

	const n = 50
	want := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		p := filepath.Join(dir, "doc_"+strconv.Itoa(i)+".pdf")
		want[p] = struct{}{}
		if err := os.WriteFile(p, []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := make(map[string]struct{}, n)
	deadline := time.After(10 * time.Second)
	for len(got) < n {
		select {
		case p := <-evCh:
			if _, ok := want[p]; !ok {
				t.Fatalf("unexpected path %q", p)
			}
			got[p] = struct{}{}
		case err := <-errCh:
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatalf("received %d of %d paths before the deadline", len(got), n)
		}
	}
}
