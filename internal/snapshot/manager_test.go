package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/snipcore/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewManager(t.TempDir())

	snap := model.NewSnapshot("repo1", "v1")
	snap.Files["a.py"] = HashFile([]byte("a"))
	snap.Files["b.js"] = HashFile([]byte("b"))

	require.NoError(t, m.Save(snap))

	loaded, err := m.Load("repo1", "v1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, snap.Files, loaded.Files)
}

func TestLoadMissingReturnsNilNil(t *testing.T) {
	m := NewManager(t.TempDir())
	snap, err := m.Load("nope", "v1")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

// S5: incremental diff across added/modified/deleted/unchanged.
func TestDiffSeedScenario(t *testing.T) {
	m := NewManager(t.TempDir())

	hA := HashFile([]byte("a v1"))
	hB := HashFile([]byte("b v1"))
	s1 := model.NewSnapshot("repo", "v1")
	s1.Files = map[string]uint64{"a.py": hA, "b.js": hB}

	hAModified := HashFile([]byte("a v2"))
	hC := HashFile([]byte("c v1"))
	current := map[string]uint64{"a.py": hAModified, "c.py": hC}

	plan := m.Diff(s1, current)

	assert.Contains(t, plan.Added, "c.py")
	assert.Contains(t, plan.Modified, "a.py")
	assert.Contains(t, plan.Deleted, "b.js")
	assert.Empty(t, plan.Unchanged)
}

// Universal invariant #7: diffing a snapshot against its own file hashes
// yields everything unchanged.
func TestDiffAgainstSelfIsAllUnchanged(t *testing.T) {
	m := NewManager(t.TempDir())
	s := model.NewSnapshot("repo", "v1")
	s.Files = map[string]uint64{"a.py": 1, "b.js": 2}

	plan := m.Diff(s, s.Files)

	assert.Empty(t, plan.Added)
	assert.Empty(t, plan.Modified)
	assert.Empty(t, plan.Deleted)
	assert.Len(t, plan.Unchanged, 2)
}
