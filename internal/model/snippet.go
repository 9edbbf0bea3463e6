package model

import "strconv"

// SnippetKind classifies a Snippet. The extractor and the directory
// driver are each responsible for a subset of these kinds: the Snippet
// Extractor only ever emits CodeFunction, CodeMethod, and CodeClass; the
// Directory Driver's text chunker and binary/skip handling emit the rest.
type SnippetKind string

const (
	KindCodeFunction  SnippetKind = "code_function"
	KindCodeMethod    SnippetKind = "code_method"
	KindCodeClass     SnippetKind = "code_class"
	KindTextChunk     SnippetKind = "text_chunk"
	KindConfigFile    SnippetKind = "config_file"
	KindDocumentation SnippetKind = "documentation"
	KindBinaryFile    SnippetKind = "binary_file"
)

// Snippet is the atomic output record of the core, per spec §3. Once
// emitted by a ParseResult it is immutable; callers must not mutate a
// Snippet's slices in place.
type Snippet struct {
	Kind SnippetKind

	// Path is repository-relative, forward-slash separated.
	Path      string
	Directory string
	Filename  string

	// Name is the primary identifier: function/class/chunk name.
	Name string

	// Code is the verbatim byte-slice text of the snippet, decoded under
	// the same encoding as the rest of the file.
	Code string

	// ContentHash is MD5(Code), hex-encoded. Deterministic function of
	// Code alone (invariant #3 in spec §3/§8).
	ContentHash string

	// Callable/method-only fields. ClassName is empty for free functions.
	FuncName  string
	Args      string
	ClassName string

	// Comment is the immediately preceding attached comment/docstring,
	// or empty.
	Comment string

	// LineStart/LineEnd are 1-based inclusive.
	LineStart int
	LineEnd   int

	Language Language

	// Keywords is a space-joined, deduplicated, order-unspecified bag of
	// lexical-search-assist tokens (spec §4.2 step 9).
	Keywords string

	// Metadata is an open key/value bag for implementation-defined
	// extras (file size, encoding, MIME type for BinaryFile snippets,
	// near-duplicate group id, etc).
	Metadata map[string]string
}

// ChunkName formats the synthetic name the Text Chunker assigns to a
// window, per spec §4.3: "<filename>_chunk_{i}".
func ChunkName(filename string, index int) string {
	return filename + "_chunk_" + strconv.Itoa(index)
}
