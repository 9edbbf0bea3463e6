package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/snipcore/internal/config"
	"github.com/standardbeagle/snipcore/internal/model"
)

func TestChunkSlidingWindow(t *testing.T) {
	dcfg := config.DefaultDirectoryConfig()
	dcfg.ChunkSize = 20
	dcfg.ChunkOverlap = 5
	dcfg.MinChunkSize = 5
	pcfg := config.DefaultParserConfig()

	text := strings.Repeat("abcde ", 10) // 60 chars
	snippets := Chunk("notes.md", text, model.KindDocumentation, dcfg, pcfg)

	require.NotEmpty(t, snippets)
	for i, s := range snippets {
		assert.Equal(t, model.KindDocumentation, s.Kind)
		assert.Equal(t, model.ChunkName("notes.md", i), s.Name)
		assert.GreaterOrEqual(t, s.LineStart, 1)
		assert.LessOrEqual(t, s.LineStart, s.LineEnd)
	}
}

func TestChunkMergesShortTrailingWindow(t *testing.T) {
	dcfg := config.DefaultDirectoryConfig()
	dcfg.ChunkSize = 10
	dcfg.ChunkOverlap = 0
	dcfg.MinChunkSize = 8
	pcfg := config.DefaultParserConfig()

	text := strings.Repeat("x", 22) // windows of 10,10,2 -> last merges
	snippets := Chunk("f.txt", text, model.KindTextChunk, dcfg, pcfg)

	require.Len(t, snippets, 2)
	assert.Equal(t, 12, len([]rune(snippets[1].Code)))
}

func TestChunkEmptyTextProducesNoSnippets(t *testing.T) {
	dcfg := config.DefaultDirectoryConfig()
	pcfg := config.DefaultParserConfig()
	assert.Empty(t, Chunk("empty.txt", "", model.KindTextChunk, dcfg, pcfg))
}
