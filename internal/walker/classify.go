package walker

import (
	"path/filepath"
	"strings"

	"github.com/standardbeagle/snipcore/internal/model"
)

var documentationExtensions = map[string]bool{".md": true, ".rst": true, ".txt": true}
var configExtensions = map[string]bool{".json": true, ".yaml": true, ".yml": true, ".toml": true, ".ini": true}

// fileClass is the Directory Driver's dispatch classification for one
// surviving path (spec.md §4.3 "Dispatch").
type fileClass int

const (
	classCode fileClass = iota
	classDocumentation
	classConfig
	classText
	classBinary
	classUnrecognized
)

// classify implements spec.md §4.3's dispatch rules, ahead of reading
// the file's content (extension-only; binary detection needs content
// and is applied separately once bytes are in hand).
func classify(path string, cfg classifyConfig) (fileClass, model.Language) {
	if lang := model.LanguageForExtension(strings.ToLower(filepath.Ext(path))); lang != model.LanguageNone {
		return classCode, lang
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case documentationExtensions[ext] && cfg.extractDocumentation:
		return classDocumentation, model.LanguageNone
	case configExtensions[ext] && cfg.extractConfigFiles:
		return classConfig, model.LanguageNone
	case cfg.extractTextFiles:
		return classText, model.LanguageNone
	}
	return classUnrecognized, model.LanguageNone
}

type classifyConfig struct {
	extractDocumentation bool
	extractConfigFiles   bool
	extractTextFiles     bool
}
