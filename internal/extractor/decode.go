// Package extractor implements the Snippet Extractor (spec.md §4.2): it
// turns one file's bytes into an ordered sequence of Snippets by
// decoding, parsing with a grammar handle from the Grammar Registry, and
// walking the resulting syntax tree.
package extractor

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/standardbeagle/snipcore/internal/config"
	"github.com/standardbeagle/snipcore/internal/errs"
)

// fallbackEncodings maps the config.ParserConfig.FallbackEncoding names
// spec.md §6 allows to their golang.org/x/text decoder.
var fallbackEncodings = map[string]encoding.Encoding{
	"gbk":     simplifiedchinese.GBK,
	"gb18030": simplifiedchinese.GB18030,
	"big5":    traditionalchinese.Big5,
}

// decodeResult is the outcome of the decode pipeline step.
type decodeResult struct {
	text       string
	encoding   string
	confidence float64
}

// Decode exposes the same decode pipeline step the Snippet Extractor
// uses internally, for callers that need decoded text without a full
// Extract call (the Directory Driver's Text Chunker path).
func Decode(raw []byte, cfg config.ParserConfig) (text string, encoding string, err error) {
	r, err := decode(raw, cfg)
	if err != nil {
		return "", "", err
	}
	return r.text, r.encoding, nil
}

// decode implements spec.md §4.2 step 2: try UTF-8 first; on failure run
// a confidence-scored fallback detector and, if its confidence clears
// the configured threshold, decode with the fallback encoding.
//
// No chardet-equivalent library appears anywhere in the retrieved
// example pack, so the detector here is a minimal heuristic scorer
// rather than a statistical language model: bytes that are valid as
// cfg.FallbackEncoding (GBK) but not valid UTF-8 raise confidence that
// the fallback is correct, scaled by how much of the buffer decoded
// without hitting the replacement character.
func decode(raw []byte, cfg config.ParserConfig) (decodeResult, error) {
	if utf8.Valid(raw) {
		return decodeResult{text: string(raw), encoding: "utf-8", confidence: 1.0}, nil
	}

	text, confidence := decodeFallback(raw, cfg.FallbackEncoding)
	if confidence < cfg.EncodingConfidenceThreshold {
		return decodeResult{}, errs.EncodingUnresolved("", confidence, cfg.EncodingConfidenceThreshold)
	}
	return decodeResult{text: text, encoding: cfg.FallbackEncoding, confidence: confidence}, nil
}

// decodeFallback decodes with whichever encoding cfg.FallbackEncoding
// names and scores confidence by the fraction of runes that decoded
// cleanly (no U+FFFD substitutions). An unrecognized encoding name
// reports zero confidence rather than silently guessing one.
func decodeFallback(raw []byte, name string) (string, float64) {
	enc, ok := fallbackEncodings[strings.ToLower(name)]
	if !ok {
		return "", 0
	}
	decoder := enc.NewDecoder()
	decoded, err := decoder.Bytes(raw)
	if err != nil || len(decoded) == 0 {
		return "", 0
	}

	total := 0
	bad := 0
	for _, r := range string(decoded) {
		total++
		if r == utf8.RuneError {
			bad++
		}
	}
	if total == 0 {
		return "", 0
	}
	confidence := 1.0 - float64(bad)/float64(total)
	return string(decoded), confidence
}
