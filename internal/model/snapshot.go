package model

import "time"

// Snapshot records a content-hash per path for one (repository, version)
// pair, per spec §3/§4.4.
type Snapshot struct {
	RepositoryID string
	VersionID    string
	Files        map[string]uint64 // path -> xxhash64(file bytes)
	CreatedAt    time.Time
}

// NewSnapshot returns an empty Snapshot ready to have Files populated.
func NewSnapshot(repositoryID, versionID string) *Snapshot {
	return &Snapshot{
		RepositoryID: repositoryID,
		VersionID:    versionID,
		Files:        make(map[string]uint64),
		CreatedAt:    time.Now(),
	}
}

// UpdatePlan is the set-level diff between two snapshots (spec §3/§4.4).
type UpdatePlan struct {
	Added     map[string]struct{}
	Modified  map[string]struct{}
	Deleted   map[string]struct{}
	Unchanged map[string]struct{}
}

// NewUpdatePlan returns an UpdatePlan with all four sets initialized
// empty, so callers can range over them unconditionally.
func NewUpdatePlan() *UpdatePlan {
	return &UpdatePlan{
		Added:     make(map[string]struct{}),
		Modified:  make(map[string]struct{}),
		Deleted:   make(map[string]struct{}),
		Unchanged: make(map[string]struct{}),
	}
}

// Diff computes the set-level diff between prior and the current file
// hashes, per spec §4.4: straight set arithmetic over path keys, then a
// hash comparison on the intersection to split modified from unchanged.
// The result does not depend on map iteration order.
func Diff(prior *Snapshot, current map[string]uint64) *UpdatePlan {
	plan := NewUpdatePlan()
	if prior == nil {
		for path := range current {
			plan.Added[path] = struct{}{}
		}
		return plan
	}

	for path, hash := range current {
		priorHash, existed := prior.Files[path]
		switch {
		case !existed:
			plan.Added[path] = struct{}{}
		case priorHash != hash:
			plan.Modified[path] = struct{}{}
		default:
			plan.Unchanged[path] = struct{}{}
		}
	}

	for path := range prior.Files {
		if _, stillPresent := current[path]; !stillPresent {
			plan.Deleted[path] = struct{}{}
		}
	}

	return plan
}
