package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/snipcore/internal/model"
)

func TestGroupFindsNearDuplicateGetters(t *testing.T) {
	snippets := []model.Snippet{
		{Kind: model.KindCodeMethod, Code: "func (u *User) GetName() string { return u.name }", ContentHash: "h1"},
		{Kind: model.KindCodeMethod, Code: "func (u *User) GetEmail() string { return u.email }", ContentHash: "h2"},
		{Kind: model.KindCodeFunction, Code: "func Add(a, b int) int { return a + b }", ContentHash: "h3"},
	}

	groups := Group(snippets, 0.85)
	assert.NotEmpty(t, groups)
}

func TestGroupNeverCrossesKinds(t *testing.T) {
	snippets := []model.Snippet{
		{Kind: model.KindCodeFunction, Code: "same text", ContentHash: "h1"},
		{Kind: model.KindTextChunk, Code: "same text", ContentHash: "h2"},
	}
	groups := Group(snippets, 0.5)
	for _, indices := range groups {
		kind := snippets[indices[0]].Kind
		for _, i := range indices {
			assert.Equal(t, kind, snippets[i].Kind)
		}
	}
}
