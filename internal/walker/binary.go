package walker

import (
	"bytes"
	"path/filepath"
	"strings"
)

// binaryExtensions is the known-binary extension table from spec.md §6
// ("extension in a known-binary set"), ported from the teacher's
// internal/indexing.BinaryDetector with the same explicit text-format
// overrides (svg, minified JS/CSS, source maps stay text).
var binaryExtensions = map[string]bool{
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true, ".eot": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".webp": true, ".svg": false, ".tiff": true, ".tif": true,
	".zip": true, ".tar": true, ".gz": true, ".bz2": true, ".xz": true,
	".7z": true, ".rar": true, ".jar": true, ".war": true, ".ear": true,
	".exe": true, ".dll": true, ".so": true, ".dylib": true, ".a": true,
	".o": true, ".obj": true, ".bin": true,
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true, ".wmv": true,
	".flv": true, ".wav": true, ".flac": true, ".ogg": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true,
	".db": true, ".sqlite": true, ".sqlite3": true,
	".min.js": false, ".min.css": false, ".map": false,
	".pyc": true, ".pyo": true, ".class": true, ".pickle": true, ".pkl": true,
}

// isBinaryExtension reports whether path's extension marks it as binary.
func isBinaryExtension(path string) bool {
	if strings.HasSuffix(path, ".min.js") || strings.HasSuffix(path, ".min.css") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	isBinary, known := binaryExtensions[ext]
	return known && isBinary
}

// isBinaryContent implements spec.md §4.3's heuristic: presence of a NUL
// byte in the first 8 KiB marks content as binary.
func isBinaryContent(content []byte) bool {
	sample := content
	if len(sample) > 8192 {
		sample = sample[:8192]
	}
	return bytes.IndexByte(sample, 0) >= 0
}

// isBinary combines both heuristics, per spec.md §4.3: "presence of NUL
// bytes in the first 8 KiB, or extension in a known-binary set."
func isBinary(path string, content []byte) bool {
	return isBinaryExtension(path) || isBinaryContent(content)
}
