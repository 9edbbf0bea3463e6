package extractor

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/surgebase/porter2"

	"github.com/standardbeagle/snipcore/internal/config"
)

var identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

func harvestKeywords(code, comment, path string, cfg config.ParserConfig) string {
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

	if cfg.ExtractChineseKeywords {
		for _, run := range cjkRuns(code + comment) {
			add(run)
		}
	}

	if cfg.ExtractEnglishKeywords {
		for _, tok := range identifierPattern.FindAllString(code, -1) {
			add(tok)
			if stem, ok := stemToken(tok, cfg); ok {
				add(stem)
			}
		}
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem != "" {
		add(stem)
	}

	sort.Strings(ordered) // deterministic join order, invariant #5 in spec §8 doesn't require it but aids test stability
	if len(ordered) > cfg.MaxKeywordsPerSnippet {
		ordered = ordered[:cfg.MaxKeywordsPerSnippet]
	}
	return strings.Join(ordered, " ")
}

// stemToken returns the Porter2 stem of tok alongside the raw token
// (never in place of it): stemming only widens the keyword bag with an
// extra variant, it never drops the raw identifier spec §8's seed cases
// match against verbatim.
func stemToken(tok string, cfg config.ParserConfig) (string, bool) {
	if !cfg.EnableKeywordStemming {
		return "", false
	}
	lower := strings.ToLower(tok)
	if !isAllASCIILetterOrDigit(lower) {
		return "", false
	}
	stem := porter2.Stem(lower)
	if stem == tok {
		return "", false
	}
	return stem, true
}

func isAllASCIILetterOrDigit(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

// cjkRuns extracts maximal contiguous runs of CJK-range runes from s.
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
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK Extension A
		return true
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // Katakana
		return true
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul Syllables
		return true
	}
	return false
}
