package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/snipcore/internal/model"
)

func TestRegistrySupportsFullLanguageEnumeration(t *testing.T) {
	r := NewRegistry()
	for _, lang := range []model.Language{
		model.LanguagePython, model.LanguageJavaScript, model.LanguageTypeScript,
		model.LanguageJava, model.LanguageGo, model.LanguageC, model.LanguageCPP,
		model.LanguageKotlin, model.LanguageLua,
	} {
		assert.True(t, r.SupportsLanguage(lang), "expected grammar registered for %s", lang)
	}
}

func TestAcquireReleaseRoundTrip(t *testing.T) {
	r := NewRegistry()

	h, err := r.Acquire(model.LanguageGo)
	require.NoError(t, err)
	require.NotNil(t, h.Parser)

	r.Release(h)

	h2, err := r.Acquire(model.LanguageGo)
	require.NoError(t, err)
	assert.Equal(t, model.LanguageGo, h2.Language)
}

func TestAcquireUnknownLanguageFails(t *testing.T) {
	r := NewRegistry()
	_, err := r.Acquire(model.LanguageNone)
	assert.Error(t, err)
}

func TestNodeTypesForPythonClassifiesClassDecl(t *testing.T) {
	r := NewRegistry()
	vocab, ok := r.NodeTypesFor(model.LanguagePython)
	require.True(t, ok)
	assert.Contains(t, vocab.ClassDecl, "class_definition")
	assert.True(t, vocab.IsClassDecl("class_definition"))
	assert.False(t, vocab.IsClassDecl("function_definition"))
}
