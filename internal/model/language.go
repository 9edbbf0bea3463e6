// Package model holds the data types shared across the snippet extraction
// core: languages, snippets, parse results, and incremental-indexing
// snapshots. It has no dependency on tree-sitter or the filesystem so that
// every other package can depend on it without pulling in CGO bindings.
package model

// Language is the closed enumeration of source languages the core
// understands natively. Unmapped extensions resolve to LanguageNone,
// which routes a file to the text/binary pipeline instead of structural
// extraction.
type Language string

const (
	LanguageNone       Language = ""
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageJava       Language = "java"
	LanguageGo         Language = "go"
	LanguageC          Language = "c"
	LanguageCPP        Language = "cpp"
	LanguageKotlin     Language = "kotlin"
	LanguageLua        Language = "lua"
	LanguageCSharp     Language = "csharp"
	LanguageZig        Language = "zig"
)

// extensionLanguage is the total mapping from file extension to Language.
// It is intentionally a flat table rather than a switch so the Grammar
// Registry can iterate it (e.g. to list known extensions) without
// duplicating the mapping.
var extensionLanguage = map[string]Language{
	".py":  LanguagePython,
	".pyi": LanguagePython,
	".js":  LanguageJavaScript,
	".jsx": LanguageJavaScript,
	".mjs": LanguageJavaScript,
	".cjs": LanguageJavaScript,
	".ts":  LanguageTypeScript,
	".tsx": LanguageTypeScript,
	".java": LanguageJava,
	".go":  LanguageGo,
	".c":   LanguageC,
	".h":   LanguageC,
	".cc":  LanguageCPP,
	".cpp": LanguageCPP,
	".cxx": LanguageCPP,
	".hpp": LanguageCPP,
	".hxx": LanguageCPP,
	".kt":  LanguageKotlin,
	".kts": LanguageKotlin,
	".lua": LanguageLua,
	".cs":  LanguageCSharp,
	".zig": LanguageZig,
}

// LanguageForExtension maps a file extension (including the leading dot,
// as returned by filepath.Ext) to a Language. Unmapped extensions return
// LanguageNone.
func LanguageForExtension(ext string) Language {
	if lang, ok := extensionLanguage[ext]; ok {
		return lang
	}
	return LanguageNone
}

// KnownExtensions returns every file extension the Language enumeration
// recognizes. Order is unspecified.
func KnownExtensions() []string {
	exts := make([]string, 0, len(extensionLanguage))
	for ext := range extensionLanguage {
		exts = append(exts, ext)
	}
	return exts
}
