package grammar

import (
	tree_sitter_kotlin "github.com/tree-sitter-grammars/tree-sitter-kotlin/bindings/go"
	tree_sitter_lua "github.com/tree-sitter-grammars/tree-sitter-lua/bindings/go"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/snipcore/internal/model"
)

// communityAdapter mirrors the teacher's CommunityParserAdapter
// (internal/parser/community_parser.go): a standardized wrapper for
// grammars that lack official go-tree-sitter bindings. The teacher uses
// this for Zig; here it fills the two languages spec.md's enumeration
// names that have no official binding at all: Kotlin and Lua.
type communityAdapter struct {
	language    model.Language
	getLanguage func() *tree_sitter.Language
}

func (a communityAdapter) languageSetup() languageSetup {
	return languageSetup{
		language: a.language,
		build: func() (*tree_sitter.Parser, error) {
			return build(a.getLanguage)
		},
	}
}

func communityAdapters() []communityAdapter {
	return []communityAdapter{
		{
			language:    model.LanguageKotlin,
			getLanguage: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_kotlin.Language()) },
		},
		{
			language:    model.LanguageLua,
			getLanguage: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_lua.Language()) },
		},
	}
}
