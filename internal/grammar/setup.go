package grammar

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
	tree_sitter_zig "github.com/tree-sitter-grammars/tree-sitter-zig/bindings/go"

	"github.com/standardbeagle/snipcore/internal/model"
)

// build wraps the teacher's per-language setupX() shape
// (parser_language_setup.go) into a function value the Registry's
// lazy-init can call repeatedly to produce additional pooled handles.
// Extraction walks the parsed tree directly against NodeVocabulary
// roles (walk.go), so a handle carries only the parser.
func build(languagePtr func() *tree_sitter.Language) (*tree_sitter.Parser, error) {
	parser := tree_sitter.NewParser()
	if err := parser.SetLanguage(languagePtr()); err != nil {
		return nil, err
	}
	return parser, nil
}

// nativeSetups enumerates the officially-bound grammars, carried over
// from the teacher's parser_language_setup.go.
func nativeSetups() []languageSetup {
	return []languageSetup{
		{
			language: model.LanguageGo,
			build: func() (*tree_sitter.Parser, error) {
				return build(func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_go.Language()) })
			},
		},
		{
			language: model.LanguagePython,
			build: func() (*tree_sitter.Parser, error) {
				return build(func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_python.Language()) })
			},
		},
		{
			language: model.LanguageJavaScript,
			build: func() (*tree_sitter.Parser, error) {
				return build(func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_javascript.Language()) })
			},
		},
		{
			language: model.LanguageTypeScript,
			build: func() (*tree_sitter.Parser, error) {
				return build(func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()) })
			},
		},
		{
			language: model.LanguageJava,
			build: func() (*tree_sitter.Parser, error) {
				return build(func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_java.Language()) })
			},
		},
		{
			language: model.LanguageC,
			build: func() (*tree_sitter.Parser, error) {
				return build(func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_c.Language()) })
			},
		},
		{
			language: model.LanguageCPP,
			build: func() (*tree_sitter.Parser, error) {
				return build(func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_cpp.Language()) })
			},
		},
		{
			language: model.LanguageCSharp,
			build: func() (*tree_sitter.Parser, error) {
				return build(func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_csharp.Language()) })
			},
		},
		{
			language: model.LanguageZig,
			build: func() (*tree_sitter.Parser, error) {
				return build(func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_zig.Language()) })
			},
		},
	}
}
