package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/snipcore/internal/config"
)

func TestWatcherDebouncesBurstIntoOneCallback(t *testing.T) {
	root := t.TempDir()

	calls := make(chan struct{}, 16)
	dcfg := config.DefaultDirectoryConfig()

	w, err := New(root, dcfg, 50*time.Millisecond, func() { calls <- struct{}{} })
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.go"), []byte("package main\n"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("expected at least one debounced callback")
	}

	select {
	case <-calls:
		t.Fatal("burst of writes should have collapsed into a single callback")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcherIgnoresDefaultPatternDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0o755))

	calls := make(chan struct{}, 16)
	dcfg := config.DefaultDirectoryConfig()

	w, err := New(root, dcfg, 30*time.Millisecond, func() { calls <- struct{}{} })
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "x.js"), []byte("x"), 0o644))

	select {
	case <-calls:
		t.Fatal("node_modules writes must not be watched under default ignore patterns")
	case <-time.After(200 * time.Millisecond):
	}
	assert.True(t, true)
}
