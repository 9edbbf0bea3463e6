package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/snipcore/internal/config"
)

func TestDiscoverOrdersDirectoriesBeforeFilesAndSortsNames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.go", "package main\n")
	writeFile(t, root, "a_dir/nested.go", "package main\n")
	writeFile(t, root, "a.go", "package main\n")

	cfg := config.DefaultDirectoryConfig()
	disc, err := discover(root, cfg)
	require.NoError(t, err)

	var paths []string
	for _, c := range disc.candidates {
		paths = append(paths, c.relPath)
	}
	assert.Equal(t, []string{"a_dir/nested.go", "a.go", "b.go"}, paths)
}

func TestDiscoverRespectsMaxDepth(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "top.go", "package main\n")
	writeFile(t, root, "one/two/three/deep.go", "package main\n")

	cfg := config.DefaultDirectoryConfig()
	cfg.MaxDepth = 1

	disc, err := discover(root, cfg)
	require.NoError(t, err)

	var sawDeep bool
	for _, c := range disc.candidates {
		if c.relPath == "one/two/three/deep.go" {
			sawDeep = true
		}
	}
	assert.False(t, sawDeep, "file beyond max_depth must be pruned")
}

func TestDiscoverMissingRootErrors(t *testing.T) {
	cfg := config.DefaultDirectoryConfig()
	_, err := discover(t.TempDir()+"/does-not-exist", cfg)
	assert.Error(t, err)
}
