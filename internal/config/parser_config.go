// Package config holds the two typed configuration structs the core
// accepts from its caller (spec.md §6): ParserConfig for the Snippet
// Extractor and DirectoryConfig for the Directory Driver. Both follow
// the teacher's internal/config.Validator smart-default-plus-Validate()
// pattern; loading configuration from files, flags, or env is an
// explicit Non-goal left to an external collaborator.
package config

import (
	"runtime"
	"time"

	"github.com/standardbeagle/snipcore/internal/errs"
)

func errInvalid(msg string) error { return &invalidErr{msg} }

type invalidErr struct{ msg string }

func (e *invalidErr) Error() string { return e.msg }

// configErr wraps errs.Config so the Validate methods below stay terse.
func configErr(field string, value any, underlying error) error {
	return errs.Config(field, value, underlying)
}

// ParserConfig governs the Snippet Extractor (spec.md §4.2, §6).
type ParserConfig struct {
	MaxFileSize int64

	EncodingConfidenceThreshold float64
	DefaultEncoding             string
	FallbackEncoding            string

	ExtractComments   bool
	ExtractDocstrings bool

	MinFunctionLines int
	MaxFunctionLines int

	IgnorePrivateMethods bool

	ExtractChineseKeywords bool
	ExtractEnglishKeywords bool
	MinKeywordLength       int
	MaxKeywordsPerSnippet  int

	MaxCacheSize int

	// PerFileTimeout bounds how long a single file's parse may run. Zero
	// means no timeout (spec.md §5 default).
	PerFileTimeout time.Duration

	// EnableKeywordStemming stems identifier-shaped keyword tokens with
	// Porter2 before the length/cap filters (SPEC_FULL §3 supplement).
	EnableKeywordStemming bool
}

// DefaultParserConfig returns the literal defaults from spec.md §6.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		MaxFileSize:                 10 * 1024 * 1024,
		EncodingConfidenceThreshold: 0.7,
		DefaultEncoding:             "utf-8",
		FallbackEncoding:            "gbk",
		ExtractComments:             true,
		ExtractDocstrings:           true,
		MinFunctionLines:            1,
		MaxFunctionLines:            1000,
		IgnorePrivateMethods:        false,
		ExtractChineseKeywords:      true,
		ExtractEnglishKeywords:      true,
		MinKeywordLength:            2,
		MaxKeywordsPerSnippet:       50,
		MaxCacheSize:                128,
		PerFileTimeout:              0,
		EnableKeywordStemming:       true,
	}
}

// Validate rejects configurations the extractor cannot safely run with,
// mirroring the teacher's per-field Validator checks.
func (c ParserConfig) Validate() error {
	switch {
	case c.MaxFileSize <= 0:
		return configErr("max_file_size", c.MaxFileSize, errInvalid("must be positive"))
	case c.EncodingConfidenceThreshold < 0 || c.EncodingConfidenceThreshold > 1:
		return configErr("encoding_confidence_threshold", c.EncodingConfidenceThreshold, errInvalid("must be within [0, 1]"))
	case c.MinFunctionLines < 0:
		return configErr("min_function_lines", c.MinFunctionLines, errInvalid("cannot be negative"))
	case c.MaxFunctionLines < c.MinFunctionLines:
		return configErr("max_function_lines", c.MaxFunctionLines, errInvalid("cannot be less than min_function_lines"))
	case c.MinKeywordLength < 0:
		return configErr("min_keyword_length", c.MinKeywordLength, errInvalid("cannot be negative"))
	case c.MaxKeywordsPerSnippet < 0:
		return configErr("max_keywords_per_snippet", c.MaxKeywordsPerSnippet, errInvalid("cannot be negative"))
	case c.MaxCacheSize <= 0:
		return configErr("max_cache_size", c.MaxCacheSize, errInvalid("must be positive"))
	case c.PerFileTimeout < 0:
		return configErr("per_file_timeout", c.PerFileTimeout, errInvalid("cannot be negative"))
	}
	return nil
}

// DirectoryConfig governs the Directory Driver (spec.md §4.3, §6).
type DirectoryConfig struct {
	ChunkSize    int
	ChunkOverlap int
	MinChunkSize int

	MaxDepth int
	MaxFiles int

	FollowSymlinks bool

	IgnorePatterns []string
	OnlyExtensions []string

	ExtractTextFiles     bool
	ExtractConfigFiles   bool
	ExtractDocumentation bool

	RecordBinaryFiles bool

	IncludeDirectoryStructure bool

	// Workers sizes the bounded worker pool (spec.md §5). Zero means
	// auto-detect (logical CPU count).
	Workers int

	// EnableNearDuplicateDetection populates
	// DirectoryParseResult.Metadata["near_duplicate_groups"]
	// (SPEC_FULL §3 supplement).
	EnableNearDuplicateDetection bool
}

// DefaultIgnorePatterns is the minimum baseline from spec.md §6.
func DefaultIgnorePatterns() []string {
	return []string{
		".git", ".hg", ".svn",
		"__pycache__", "node_modules", "target", "build", "dist", ".venv",
		".idea", ".vscode", ".DS_Store", "*.swp",
		"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.ico",
		"*.zip", "*.tar", "*.gz", "*.7z",
		"*.exe", "*.dll", "*.so", "*.dylib",
	}
}

// DefaultDirectoryConfig returns the literal defaults from spec.md §6.
func DefaultDirectoryConfig() DirectoryConfig {
	return DirectoryConfig{
		ChunkSize:                    512,
		ChunkOverlap:                 50,
		MinChunkSize:                 100,
		MaxDepth:                     10,
		MaxFiles:                     10000,
		FollowSymlinks:               false,
		IgnorePatterns:               DefaultIgnorePatterns(),
		OnlyExtensions:               nil,
		ExtractTextFiles:             true,
		ExtractConfigFiles:           true,
		ExtractDocumentation:         true,
		RecordBinaryFiles:            false,
		IncludeDirectoryStructure:    true,
		Workers:                      runtime.NumCPU(),
		EnableNearDuplicateDetection: true,
	}
}

// Validate rejects directory configurations the walker cannot safely
// execute.
func (c DirectoryConfig) Validate() error {
	switch {
	case c.ChunkSize <= 0:
		return configErr("chunk_size", c.ChunkSize, errInvalid("must be positive"))
	case c.ChunkOverlap < 0:
		return configErr("chunk_overlap", c.ChunkOverlap, errInvalid("cannot be negative"))
	case c.ChunkOverlap >= c.ChunkSize:
		return configErr("chunk_overlap", c.ChunkOverlap, errInvalid("must be less than chunk_size"))
	case c.MinChunkSize < 0:
		return configErr("min_chunk_size", c.MinChunkSize, errInvalid("cannot be negative"))
	case c.MaxDepth < 0:
		return configErr("max_depth", c.MaxDepth, errInvalid("cannot be negative"))
	case c.MaxFiles <= 0:
		return configErr("max_files", c.MaxFiles, errInvalid("must be positive"))
	case c.Workers < 0:
		return configErr("workers", c.Workers, errInvalid("cannot be negative"))
	}
	return nil
}
