// Package snapshot implements the Version Manager (spec.md §4.4):
// per-(repository, version) content-hash snapshots, persisted as one
// JSON file each, and the set-diff that produces an UpdatePlan. File
// hashing uses xxhash64, the same fast non-cryptographic hash the
// teacher's internal/core.FileContentStore uses for its FastHash field.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/snipcore/internal/debug"
	"github.com/standardbeagle/snipcore/internal/errs"
	"github.com/standardbeagle/snipcore/internal/model"
)

// fileFormatVersion guards forward compatibility of the on-disk
// snapshot format (spec.md §4.4 storage note).
const fileFormatVersion = 1

// onDiskSnapshot is the JSON wire shape persisted per (repo, version).
type onDiskSnapshot struct {
	FormatVersion int               `json:"format_version"`
	RepositoryID  string            `json:"repository_id"`
	VersionID     string            `json:"version_id"`
	Files         map[string]uint64 `json:"files"`
	CreatedAt     string            `json:"created_at"`
}

// HashFile returns the xxhash64 content hash of file bytes, the
// per-file unit the Version Manager stores and diffs.
func HashFile(content []byte) uint64 {
	return xxhash.Sum64(content)
}

// Manager is a filesystem-backed Version Manager: one JSON file per
// (repository, version) under Dir, named "<repository_id>__<version_id>.json".
// Storage format is out of scope for the core per spec.md §4.4, but a
// local single-process implementation is provided so the Directory
// Driver's incremental mode has somewhere real to read/write.
type Manager struct {
	Dir string
}

// NewManager returns a Manager that persists snapshots under dir.
func NewManager(dir string) *Manager {
	return &Manager{Dir: dir}
}

func (m *Manager) pathFor(repositoryID, versionID string) string {
	return filepath.Join(m.Dir, fmt.Sprintf("%s__%s.json", repositoryID, versionID))
}

// Load implements the Version Manager's load(repository_id, version_id)
// contract. A missing file is not an error: it returns (nil, nil),
// matching spec.md's "Snapshot | None" return shape.
func (m *Manager) Load(repositoryID, versionID string) (*model.Snapshot, error) {
	path := m.pathFor(repositoryID, versionID)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.IORead(path, err)
	}

	var disk onDiskSnapshot
	if err := json.Unmarshal(raw, &disk); err != nil {
		return nil, errs.IORead(path, err)
	}

	snap := model.NewSnapshot(disk.RepositoryID, disk.VersionID)
	snap.Files = disk.Files
	if t, err := parseTimestamp(disk.CreatedAt); err == nil {
		snap.CreatedAt = t
	}
	return snap, nil
}

// Save implements the Version Manager's save(Snapshot) contract.
func (m *Manager) Save(snap *model.Snapshot) error {
	if err := os.MkdirAll(m.Dir, 0o755); err != nil {
		return errs.IORead(m.Dir, err)
	}

	disk := onDiskSnapshot{
		FormatVersion: fileFormatVersion,
		RepositoryID:  snap.RepositoryID,
		VersionID:     snap.VersionID,
		Files:         snap.Files,
		CreatedAt:     snap.CreatedAt.Format(timestampLayout),
	}
	raw, err := json.MarshalIndent(disk, "", "  ")
	if err != nil {
		return err
	}

	path := m.pathFor(snap.RepositoryID, snap.VersionID)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errs.IORead(path, err)
	}
	debug.LogSnapshot("saved %s", path)
	return nil
}

// Diff implements the Version Manager's diff contract, delegating to the
// pure set-arithmetic algorithm in internal/model.
func (m *Manager) Diff(prior *model.Snapshot, current map[string]uint64) *model.UpdatePlan {
	return model.Diff(prior, current)
}
