package model

import "time"

// ParseResult is the per-file output of the Snippet Extractor (spec §3).
type ParseResult struct {
	Language Language
	Path     string
	Snippets []Snippet

	// Errors accumulates every error kind the extractor hit for this
	// file. A non-terminal error (e.g. ParseSyntaxError) does not clear
	// Snippets: partial results are preserved alongside it.
	Errors []error

	FileSize int64
	Encoding string

	ProcessingTime time.Duration
}

// IsSuccessful reports whether the file produced usable output: a
// language was detected and no error was recorded, per spec §3.
func (r *ParseResult) IsSuccessful() bool {
	return r.Language != LanguageNone && len(r.Errors) == 0
}

// DirectoryParseResult is the per-tree output of the Directory Driver
// (spec §3).
type DirectoryParseResult struct {
	Root            string
	TotalFilesSeen  int
	ProcessedFiles  int
	SkippedFiles    int
	Snippets        []Snippet
	Errors          map[string]string // path -> message
	PerLanguageCounts map[Language]int
	DirectoryTree   *DirNode

	// DeletedPaths records tombstones for incremental runs: paths present
	// in the prior snapshot but absent from the current walk. These are
	// not Snippets (spec §4.3 step 5).
	DeletedPaths []string

	// UnchangedPaths records paths an incremental run found unchanged
	// versus the prior snapshot; their previously emitted snippets are
	// the downstream snippet store's responsibility to retain (spec §9).
	UnchangedPaths []string

	// Metadata is an open bag for supplemental, non-required output such
	// as near-duplicate group identifiers (see SPEC_FULL §3).
	Metadata map[string]any

	Cancelled bool
	Elapsed   time.Duration
}

// DirNode is a minimal directory-tree summary populated when
// DirectoryConfig.IncludeDirectoryStructure is set.
type DirNode struct {
	Name     string
	IsDir    bool
	Children []*DirNode
}
