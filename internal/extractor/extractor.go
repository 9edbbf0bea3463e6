package extractor

import (
	"context"
	"time"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/snipcore/internal/config"
	"github.com/standardbeagle/snipcore/internal/debug"
	"github.com/standardbeagle/snipcore/internal/errs"
	"github.com/standardbeagle/snipcore/internal/grammar"
	"github.com/standardbeagle/snipcore/internal/model"
)

// Extractor drives the Grammar Registry to turn one file's bytes into a
// ParseResult. A single Extractor is safe for concurrent use: each call
// acquires and releases its own pooled grammar handle.
type Extractor struct {
	registry *grammar.Registry
}

// New returns an Extractor backed by registry.
func New(registry *grammar.Registry) *Extractor {
	return &Extractor{registry: registry}
}

// Extract implements the pipeline of spec.md §4.2: size gate, decode,
// parse, walk.
func (e *Extractor) Extract(ctx context.Context, path string, raw []byte, lang model.Language, cfg config.ParserConfig) *model.ParseResult {
	started := time.Now()
	result := &model.ParseResult{
		Language: lang,
		Path:     path,
		FileSize: int64(len(raw)),
	}

	if err := ctx.Err(); err != nil {
		result.Errors = append(result.Errors, errs.Cancelled(path))
		return result
	}

	// Step 1: size gate.
	if int64(len(raw)) > cfg.MaxFileSize {
		result.Errors = append(result.Errors, errs.FileTooLarge(path, int64(len(raw)), cfg.MaxFileSize))
		result.ProcessingTime = time.Since(started)
		return result
	}

	// Step 2: decode.
	decoded, err := decode(raw, cfg)
	if err != nil {
		result.Errors = append(result.Errors, err)
		result.ProcessingTime = time.Since(started)
		return result
	}
	result.Encoding = decoded.encoding

	if lang == model.LanguageNone {
		result.ProcessingTime = time.Since(started)
		return result
	}

	vocab, ok := e.registry.NodeTypesFor(lang)
	if !ok {
		result.Errors = append(result.Errors, errs.LanguageUnavailable(path, nil))
		result.ProcessingTime = time.Since(started)
		return result
	}

	// Step 3: parse.
	handle, err := e.registry.Acquire(lang)
	if err != nil {
		result.Errors = append(result.Errors, errs.LanguageUnavailable(path, err))
		result.ProcessingTime = time.Since(started)
		return result
	}
	defer e.registry.Release(handle)

	tree, timedOut := parseWithTimeout(handle.Parser, []byte(decoded.text), cfg.PerFileTimeout, path)
	if timedOut {
		result.Errors = append(result.Errors, errs.ParseTimeout(path, cfg.PerFileTimeout))
		result.ProcessingTime = time.Since(started)
		return result
	}
	if tree == nil {
		result.Errors = append(result.Errors, errs.IORead(path, nil))
		result.ProcessingTime = time.Since(started)
		return result
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		// Non-terminal per spec.md §7: record the warning but keep
		// whatever snippets the walk salvages from the clean subtrees.
		result.Errors = append(result.Errors, errs.ParseSyntaxError(path))
		debug.LogParse("%s: syntax tree contains error nodes", path)
	}

	// Step 4-9: walk.
	w := newWalker(path, decoded.text, lang, vocab, cfg)
	result.Snippets = w.walk(root)

	result.ProcessingTime = time.Since(started)
	return result
}

// parseWithTimeout invokes the grammar parser, guarding against both a
// CGO-level panic and (advisory, since tree-sitter's parse call is not
// interruptible mid-parse, per spec.md §5) a wall-clock timeout. The
// content buffer is defensively copied before the call because the
// tree-sitter C library mutates its input, mirroring the teacher's
// copy-on-parse pattern in internal/parser/parser.go.
func parseWithTimeout(parser *tree_sitter.Parser, content []byte, timeout time.Duration, path string) (tree *tree_sitter.Tree, timedOut bool) {
	buf := make([]byte, len(content))
	copy(buf, content)

	parseOnce := func() *tree_sitter.Tree {
		defer func() {
			if r := recover(); r != nil {
				debug.LogParse("panic parsing %s: %v", path, r)
			}
		}()
		return parser.Parse(buf, nil)
	}

	if timeout <= 0 {
		return parseOnce(), false
	}

	done := make(chan *tree_sitter.Tree, 1)
	go func() { done <- parseOnce() }()

	select {
	case tree := <-done:
		return tree, false
	case <-time.After(timeout):
		return nil, true
	}
}
