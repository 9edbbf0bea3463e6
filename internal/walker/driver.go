// Package walker implements the Directory Driver (spec.md §4.3): it
// walks a root directory, filters and classifies each surviving file,
// and fans the work out to the Snippet Extractor or the Text Chunker
// through a bounded worker pool. The scheduling model mirrors the
// teacher's parallel-threads pipeline in internal/indexing: a producer
// enumerates paths, a bounded pool of goroutines consumes them, and a
// single mutex-guarded aggregator collects results, with the final
// snippet list sorted before return (spec.md §4.4).
package walker

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/snipcore/internal/config"
	"github.com/standardbeagle/snipcore/internal/debug"
	"github.com/standardbeagle/snipcore/internal/dedup"
	"github.com/standardbeagle/snipcore/internal/errs"
	"github.com/standardbeagle/snipcore/internal/extractor"
	"github.com/standardbeagle/snipcore/internal/grammar"
	"github.com/standardbeagle/snipcore/internal/model"
	"github.com/standardbeagle/snipcore/internal/snapshot"
)

var errNoSnapshotManager = errors.New("walker: RunIncremental requires a snapshot manager")

// Driver is the Directory Driver. A Driver is safe for concurrent use
// across independent Walk calls; the Extractor it wraps pools its own
// grammar handles per call.
type Driver struct {
	extractor *extractor.Extractor
	Snapshots *snapshot.Manager
}

// NewDriver returns a Driver backed by registry. snapshots may be nil if
// the caller never invokes RunIncremental.
func NewDriver(registry *grammar.Registry, snapshots *snapshot.Manager) *Driver {
	return &Driver{extractor: extractor.New(registry), Snapshots: snapshots}
}

// aggregator is the single-writer result collector the worker pool
// funnels into, guarded by one mutex per spec.md §4.4's "lock-guarded
// shared vector" option.
type aggregator struct {
	mu                sync.Mutex
	snippets          []model.Snippet
	errors            map[string][]error
	perLanguageCounts map[model.Language]int
	processedFiles    int
	skippedFiles      int
	fileHashes        map[string]uint64
}

func newAggregator() *aggregator {
	return &aggregator{
		errors:            make(map[string][]error),
		perLanguageCounts: make(map[model.Language]int),
		fileHashes:        make(map[string]uint64),
	}
}

// recordHash stores the content hash processOne computed from bytes it
// already had in memory, so a non-incremental walk never re-reads a file
// from disk solely to hash it for the next snapshot.
func (a *aggregator) recordHash(path string, hash uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fileHashes[path] = hash
}

// addResult records a file's snippets and every error it produced. Errors
// accumulate per path rather than overwrite; the caller joins each path's
// errors through *errs.MultiError into one message when building the
// final report.
func (a *aggregator) addResult(path string, lang model.Language, snippets []model.Snippet, errList []error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snippets = append(a.snippets, snippets...)
	a.processedFiles++
	if lang != model.LanguageNone {
		a.perLanguageCounts[lang]++
	}
	for _, e := range errList {
		if e != nil {
			a.errors[path] = append(a.errors[path], e)
		}
	}
}

func (a *aggregator) addSkip(path string, reason error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.skippedFiles++
	if reason != nil {
		a.errors[path] = append(a.errors[path], reason)
	}
}

// Walk implements the Directory Driver's contract: (root_path,
// directory_config, optional prior_snapshot) -> DirectoryParseResult.
// It does not itself persist a new snapshot; RunIncremental wraps this
// with Version Manager load/save for callers that want that wiring.
func (d *Driver) Walk(ctx context.Context, root string, pcfg config.ParserConfig, dcfg config.DirectoryConfig, priorSnapshot *model.Snapshot) (*model.DirectoryParseResult, error) {
	result, _, err := d.walk(ctx, root, pcfg, dcfg, priorSnapshot)
	return result, err
}

// RunIncremental loads the prior snapshot for (repositoryID, versionID),
// walks, and on a non-cancelled run persists a new snapshot under the
// same key, per spec.md §4.3's incremental-mode step 6.
func (d *Driver) RunIncremental(ctx context.Context, root, repositoryID, versionID string, pcfg config.ParserConfig, dcfg config.DirectoryConfig) (*model.DirectoryParseResult, error) {
	if d.Snapshots == nil {
		return nil, errs.Config("snapshots", nil, errNoSnapshotManager)
	}

	prior, err := d.Snapshots.Load(repositoryID, versionID)
	if err != nil {
		return nil, err
	}

	result, hashes, err := d.walk(ctx, root, pcfg, dcfg, prior)
	if err != nil {
		return nil, err
	}

	if !result.Cancelled {
		newSnap := model.NewSnapshot(repositoryID, versionID)
		newSnap.Files = hashes
		if err := d.Snapshots.Save(newSnap); err != nil {
			debug.LogWalk("failed to save snapshot for %s/%s: %v", repositoryID, versionID, err)
		}
	}

	return result, nil
}

func (d *Driver) walk(ctx context.Context, root string, pcfg config.ParserConfig, dcfg config.DirectoryConfig, priorSnapshot *model.Snapshot) (*model.DirectoryParseResult, map[string]uint64, error) {
	started := time.Now()

	disc, err := discover(root, dcfg)
	if err != nil {
		return nil, nil, err
	}

	result := &model.DirectoryParseResult{
		Root:          root,
		TotalFilesSeen: disc.totalFilesSeen,
		Errors:        make(map[string]string),
		DirectoryTree: disc.tree,
		Metadata:      make(map[string]any),
	}

	// Diffing against a prior snapshot needs every file's current hash
	// before it can know what to dispatch, so that path reads the whole
	// tree up front. Without a prior snapshot there is nothing to diff
	// against: every candidate is dispatched anyway, so hashing happens
	// inside processOne from the bytes it already read, and this
	// upfront pass is skipped entirely.
	var hashes map[string]uint64
	dispatchList := disc.candidates
	if priorSnapshot != nil {
		var hashErrors map[string]string
		hashes, hashErrors = hashCandidates(disc.candidates)
		for path, msg := range hashErrors {
			result.Errors[path] = msg
		}

		plan := model.Diff(priorSnapshot, hashes)
		for path := range plan.Deleted {
			result.DeletedPaths = append(result.DeletedPaths, path)
		}
		for path := range plan.Unchanged {
			result.UnchangedPaths = append(result.UnchangedPaths, path)
		}
		sort.Strings(result.DeletedPaths)
		sort.Strings(result.UnchangedPaths)

		dispatchList = dispatchList[:0]
		for _, c := range disc.candidates {
			_, added := plan.Added[c.relPath]
			_, modified := plan.Modified[c.relPath]
			if added || modified {
				dispatchList = append(dispatchList, c)
			}
		}
	}

	agg := newAggregator()
	ccfg := classifyConfig{
		extractDocumentation: dcfg.ExtractDocumentation,
		extractConfigFiles:   dcfg.ExtractConfigFiles,
		extractTextFiles:     dcfg.ExtractTextFiles,
	}

	workers := dcfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, c := range dispatchList {
		if gctx.Err() != nil {
			break
		}
		c := c
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			d.processOne(gctx, c, pcfg, dcfg, ccfg, agg)
			return nil
		})
	}
	_ = g.Wait()

	result.Snippets = agg.snippets
	result.ProcessedFiles = agg.processedFiles
	result.SkippedFiles = disc.skipped + agg.skippedFiles
	result.PerLanguageCounts = agg.perLanguageCounts
	for path, errList := range agg.errors {
		// The per-path map holds messages only: each path's errors are
		// joined into one string through MultiError.Error().
		result.Errors[path] = errs.NewMultiError(errList).Error()
	}

	result.Cancelled = ctx.Err() != nil
	if result.Cancelled {
		result.Errors["*"] = errs.Cancelled(root).Error()
	}

	// Non-incremental walks never ran hashCandidates; the hashes
	// processOne recorded while it already had each file's bytes in
	// hand are the only source for the snapshot RunIncremental persists.
	if hashes == nil {
		hashes = agg.fileHashes
	}

	sort.SliceStable(result.Snippets, func(i, j int) bool {
		a, b := result.Snippets[i], result.Snippets[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.LineStart != b.LineStart {
			return a.LineStart < b.LineStart
		}
		return a.LineEnd < b.LineEnd
	})

	if dcfg.EnableNearDuplicateDetection {
		result.Metadata["near_duplicate_groups"] = dedup.Group(result.Snippets, dedup.DefaultThreshold)
	}

	result.Elapsed = time.Since(started)
	return result, hashes, nil
}
