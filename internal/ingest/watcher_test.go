package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("not really an image"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func waitForPath(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case got, ok := <-ch:
			if !ok {
				t.Fatalf("channel closed before %q arrived", want)
			}
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestStartWatcherInitialScan(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "card.jpg")
	writeFile(t, existing)
	writeFile(t, filepath.Join(root, "notes.txt")) // filtered out

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{root},
		InitialScan: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	waitForPath(t, paths, existing)
}

func TestStartWatcherPicksUpNewFiles(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}

	dropped := filepath.Join(root, "new-card.png")
	writeFile(t, dropped)
	waitForPath(t, paths, dropped)
}

// A sustained burst keeps re-arming the debounce while earlier flushes are
// due; every dropped file must still come out exactly once. Run with -race.
func TestStartWatcherDebounceBurst(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}

	const n = 50
	want := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		p := filepath.Join(root, fmt.Sprintf("burst-%02d.jpg", i))
		want[p] = true
		writeFile(t, p)
		time.Sleep(500 * time.Microsecond)
	}

	deadline := time.After(10 * time.Second)
	for len(want) > 0 {
		select {
		case got := <-paths:
			delete(want, got)
		case <-deadline:
			t.Fatalf("timed out with %d paths never delivered", len(want))
		}
	}
}

func TestStartWatcherNoRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	if err == nil {
		t.Fatal("expected error for empty roots")
	}
}
