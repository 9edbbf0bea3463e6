// Package dedup groups near-duplicate snippets that survive exact
// content-hash deduplication, an additive supplement beyond spec.md's
// required content_hash equality (SPEC_FULL §3). It reuses the same
// Jaro-Winkler similarity library the teacher's
// internal/semantic.FuzzyMatcher applies to query matching, here turned
// on code bodies instead.
package dedup

import (
	"github.com/hbollon/go-edlib"

	"github.com/standardbeagle/snipcore/internal/model"
)

// DefaultThreshold is the similarity score (0-1) at or above which two
// same-kind snippets are grouped as near-duplicates.
const DefaultThreshold = 0.92

// Group partitions snippets into near-duplicate groups using
// Jaro-Winkler similarity over Code, restricted to pairs that share a
// Kind (comparing a CodeClass to a TextChunk is meaningless). It returns
// a map from group id to the snippet indices (positions in snippets)
// that belong to it; singleton groups (no duplicate found) are omitted.
//
// This is O(n^2) in the number of snippets per kind, which is
// acceptable for the typical per-directory-walk batch sizes this runs
// over; very large repositories should call it per-file rather than
// across the whole aggregated result.
func Group(snippets []model.Snippet, threshold float64) map[string][]int {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	byKind := make(map[model.SnippetKind][]int)
	for i, s := range snippets {
		byKind[s.Kind] = append(byKind[s.Kind], i)
	}

	groups := make(map[string][]int)
	groupOf := make(map[int]string)

	for _, indices := range byKind {
		for a := 0; a < len(indices); a++ {
			i := indices[a]
			if _, grouped := groupOf[i]; grouped {
				continue
			}
			for b := a + 1; b < len(indices); b++ {
				j := indices[b]
				if _, grouped := groupOf[j]; grouped {
					continue
				}
				if similarity(snippets[i].Code, snippets[j].Code) >= threshold {
					id := groupOf[i]
					if id == "" {
						id = snippets[i].ContentHash
						groupOf[i] = id
						groups[id] = append(groups[id], i)
					}
					groupOf[j] = id
					groups[id] = append(groups[id], j)
				}
			}
		}
	}

	return groups
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	score, err := edlib.StringsSimilarity(a, b, edlib.JaroWinkler)
	if err != nil {
		return 0.0
	}
	return float64(score)
}
