package walker

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/standardbeagle/snipcore/internal/chunker"
	"github.com/standardbeagle/snipcore/internal/config"
	"github.com/standardbeagle/snipcore/internal/errs"
	"github.com/standardbeagle/snipcore/internal/extractor"
	"github.com/standardbeagle/snipcore/internal/model"
)

// processOne implements the per-file half of spec.md §4.3: binary
// detection, then dispatch to the Snippet Extractor or the Text
// Chunker, with every error isolated to this one path.
func (d *Driver) processOne(ctx context.Context, c candidate, pcfg config.ParserConfig, dcfg config.DirectoryConfig, ccfg classifyConfig, agg *aggregator) {
	raw, err := os.ReadFile(c.absPath)
	if err != nil {
		agg.addSkip(c.relPath, errs.IORead(c.relPath, err))
		return
	}
	agg.recordHash(c.relPath, hashBytes(raw))

	if isBinary(c.relPath, raw) {
		if dcfg.RecordBinaryFiles {
			agg.addResult(c.relPath, model.LanguageNone, []model.Snippet{binarySnippet(c.relPath, raw)}, nil)
		} else {
			agg.addSkip(c.relPath, nil)
		}
		return
	}

	class, lang := classify(c.relPath, ccfg)
	switch class {
	case classCode:
		pr := d.extractor.Extract(ctx, c.relPath, raw, lang, pcfg)
		agg.addResult(c.relPath, lang, pr.Snippets, pr.Errors)

	case classDocumentation, classConfig, classText:
		text, _, err := extractor.Decode(raw, pcfg)
		if err != nil {
			agg.addResult(c.relPath, model.LanguageNone, nil, []error{err})
			return
		}
		kind := chunkKindFor(class)
		snippets := chunker.Chunk(c.relPath, text, kind, dcfg, pcfg)
		agg.addResult(c.relPath, model.LanguageNone, snippets, nil)

	default:
		agg.addSkip(c.relPath, nil)
	}
}

func chunkKindFor(class fileClass) model.SnippetKind {
	switch class {
	case classDocumentation:
		return model.KindDocumentation
	case classConfig:
		return model.KindConfigFile
	default:
		return model.KindTextChunk
	}
}

func binarySnippet(relPath string, raw []byte) model.Snippet {
	return model.Snippet{
		Kind:      model.KindBinaryFile,
		Path:      relPath,
		Directory: filepath.ToSlash(filepath.Dir(relPath)),
		Filename:  filepath.Base(relPath),
		Metadata: map[string]string{
			"size_bytes": strconv.Itoa(len(raw)),
			"mime_type":  mimeGuess(relPath),
		},
	}
}

func mimeGuess(path string) string {
	switch filepath.Ext(path) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".zip":
		return "application/zip"
	default:
		return "application/octet-stream"
	}
}
