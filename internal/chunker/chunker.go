// Package chunker implements the Text Chunker (spec.md §4.3): the
// fallback processor for non-code files, sliding a window over decoded
// text and emitting overlapping Snippet chunks.
package chunker

import (
	"crypto/md5"
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/standardbeagle/snipcore/internal/config"
	"github.com/standardbeagle/snipcore/internal/model"
)

var identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Chunk slides over text in windows of cfg.ChunkSize characters with
// cfg.ChunkOverlap characters of carry-over, merging any trailing chunk
// shorter than cfg.MinChunkSize into the previous one, per spec.md §4.3.
// kind is Documentation or ConfigFile per the caller's file classification.
func Chunk(path, text string, kind model.SnippetKind, cfg config.DirectoryConfig, pcfg config.ParserConfig) []model.Snippet {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	lineStarts := lineStartOffsets(runes)

	type window struct{ start, end int }
	var windows []window

	step := cfg.ChunkSize - cfg.ChunkOverlap
	if step <= 0 {
		step = cfg.ChunkSize
	}
	for start := 0; start < len(runes); start += step {
		end := start + cfg.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, window{start: start, end: end})
		if end == len(runes) {
			break
		}
	}

	// Merge a short trailing window into its predecessor.
	if len(windows) > 1 {
		last := windows[len(windows)-1]
		if last.end-last.start < cfg.MinChunkSize {
			windows = windows[:len(windows)-1]
			windows[len(windows)-1].end = last.end
		}
	}

	snippets := make([]model.Snippet, 0, len(windows))
	filename := filepath.Base(path)
	for i, win := range windows {
		chunkText := string(runes[win.start:win.end])
		lineStart := lineForOffset(lineStarts, win.start)
		lineEnd := lineForOffset(lineStarts, maxInt(win.start, win.end-1))

		sum := md5.Sum([]byte(chunkText))
		snippets = append(snippets, model.Snippet{
			Kind:        kind,
			Path:        path,
			Directory:   filepath.ToSlash(filepath.Dir(path)),
			Filename:    filename,
			Name:        model.ChunkName(filename, i),
			Code:        chunkText,
			ContentHash: hex.EncodeToString(sum[:]),
			LineStart:   lineStart,
			LineEnd:     lineEnd,
			Keywords:    harvestPlainKeywords(chunkText, filename, pcfg),
		})
	}
	return snippets
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// lineStartOffsets returns, for each line, the rune offset its first
// character occupies. lineStartOffsets[i] is line i+1's start offset.
func lineStartOffsets(runes []rune) []int {
	starts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineForOffset returns the 1-based line number containing offset.
func lineForOffset(starts []int, offset int) int {
	line := 1
	for i, s := range starts {
		if s <= offset {
			line = i + 1
		} else {
			break
		}
	}
	return line
}

// harvestPlainKeywords follows the extractor's keyword harvest (spec.md
// §4.2 step 9 applies to chunks too, per §4.3 "Keyword harvest applies")
// without depending on the extractor package, since chunks have no
// "comment" field to union in. Unlike the extractor it lowercases
// identifier tokens, adds no stems, and keeps first-seen order.
func harvestPlainKeywords(text, path string, cfg config.ParserConfig) string {
	seen := make(map[string]struct{})
	var ordered []string
	add := func(tok string) {
		if len(tok) < cfg.MinKeywordLength {
			return
		}
		if _, ok := seen[tok]; ok {
			return
		}
		seen[tok] = struct{}{}
		ordered = append(ordered, tok)
	}

	if cfg.ExtractEnglishKeywords {
		for _, tok := range identifierPattern.FindAllString(text, -1) {
			add(strings.ToLower(tok))
		}
	}
	if cfg.ExtractChineseKeywords {
		for _, run := range cjkRuns(text) {
			add(run)
		}
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem != "" {
		add(stem)
	}

	if len(ordered) > cfg.MaxKeywordsPerSnippet {
		ordered = ordered[:cfg.MaxKeywordsPerSnippet]
	}
	return strings.Join(ordered, " ")
}

// cjkRuns extracts maximal contiguous runs of CJK-range runes from s,
// duplicated from internal/extractor rather than imported from it: the
// extractor depends on grammar/tree-sitter machinery the chunker has no
// business pulling in for a five-line regex-adjacent helper.
func cjkRuns(s string) []string {
	var runs []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			runs = append(runs, string(current))
			current = nil
		}
	}
	for _, r := range s {
		if isCJK(r) {
			current = append(current, r)
		} else {
			flush()
		}
	}
	flush()
	return runs
}

func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF, r >= 0x3400 && r <= 0x4DBF,
		r >= 0x3040 && r <= 0x309F, r >= 0x30A0 && r <= 0x30FF,
		r >= 0xAC00 && r <= 0xD7A3:
		return true
	}
	return false
}
