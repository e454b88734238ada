package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, paths []string, fn func(context.Context) error) {
	t.Helper()
	w, err := New(paths, 100*time.Millisecond, fn)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestWatcher_DebouncesFileWrites(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "siteConfig.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("title: a\n"), 0o644))

	var calls atomic.Int32
	startWatcher(t, []string{cfg}, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	for _, title := range []string{"b", "c", "d"} {
		require.NoError(t, os.WriteFile(cfg, []byte("title: "+title+"\n"), 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "siteConfig.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("title: a\n"), 0o644))

	var calls atomic.Int32
	startWatcher(t, []string{cfg}, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(400 * time.Millisecond)
	require.Equal(t, int32(0), calls.Load())
}

func TestWatcher_DirectoryTreeAndErrors(t *testing.T) {
	docs := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "appendix"), 0o755))

	calls := make(chan struct{}, 10)
	startWatcher(t, []string{docs}, func(context.Context) error {
		calls <- struct{}{}
		return errors.New("invalid headerLinks[0].doc")
	})

	require.NoError(t, os.WriteFile(filepath.Join(docs, "appendix", "reader.md"), []byte("# Reader\n"), 0o644))
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("no reload for nested document")
	}

	require.NoError(t, os.WriteFile(filepath.Join(docs, "functions.md"), []byte("# Functions\n"), 0o644))
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher stopped after callback error")
	}
}

func TestNew_MissingPath(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "missing.yaml")}, 0, func(context.Context) error { return nil })
	require.Error(t, err)
}
