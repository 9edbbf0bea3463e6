package walker

import (
	"os"

	"github.com/standardbeagle/snipcore/internal/errs"
	"github.com/standardbeagle/snipcore/internal/snapshot"
)

// hashCandidates reads each surviving file once to compute its content
// hash, per spec.md §4.3 incremental-mode step 2. Diffing against a
// prior snapshot needs every file's current hash before it can decide
// what to dispatch, so this read is unavoidable whenever a prior
// snapshot is in play; without one (walk's non-incremental path),
// processOne hashes the bytes it already has in hand instead, via
// hashBytes below, and callers skip this function entirely.
func hashCandidates(candidates []candidate) (map[string]uint64, map[string]string) {
	hashes := make(map[string]uint64, len(candidates))
	failures := make(map[string]string)

	for _, c := range candidates {
		raw, err := os.ReadFile(c.absPath)
		if err != nil {
			failures[c.relPath] = errs.IORead(c.relPath, err).Error()
			continue
		}
		hashes[c.relPath] = hashBytes(raw)
	}

	return hashes, failures
}

// hashBytes is the single hash implementation processOne and
// hashCandidates both call, so a file already read into memory is never
// read from disk a second time just to hash it.
func hashBytes(raw []byte) uint64 {
	return snapshot.HashFile(raw)
}
