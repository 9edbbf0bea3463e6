package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/snipcore/internal/config"
)

func TestMatchesIgnorePatternMatchesBareSegment(t *testing.T) {
	assert.True(t, matchesIgnorePattern("vendor/pkg/node_modules/foo.js", []string{"node_modules"}))
	assert.False(t, matchesIgnorePattern("src/main.go", []string{"node_modules"}))
}

func TestMatchesIgnorePatternMatchesGlob(t *testing.T) {
	assert.True(t, matchesIgnorePattern("build/output.bin", []string{"*.bin"}))
}

func TestMatchesOnlyExtensionsEmptyAdmitsEverything(t *testing.T) {
	assert.True(t, matchesOnlyExtensions("a.py", nil))
}

func TestMatchesOnlyExtensionsWhitelist(t *testing.T) {
	assert.True(t, matchesOnlyExtensions("a.py", []string{".py", ".go"}))
	assert.False(t, matchesOnlyExtensions("a.rb", []string{".py", ".go"}))
}

func TestSurviveFiltersCombinesBoth(t *testing.T) {
	cfg := config.DefaultDirectoryConfig()
	assert.False(t, surviveFilters(".git/HEAD", cfg))

	cfg.OnlyExtensions = []string{".go"}
	assert.True(t, surviveFilters("main.go", cfg))
	assert.False(t, surviveFilters("main.py", cfg))
}
