package extractor

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/snipcore/internal/config"
	"github.com/standardbeagle/snipcore/internal/grammar"
	"github.com/standardbeagle/snipcore/internal/model"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(grammar.NewRegistry())
}

// S1: a Python file with one class, one method with a docstring, and a
// free function.
func TestExtractPythonCalculator(t *testing.T) {
	src := `class Calculator:
    def add(self, a, b):
        """Adds two numbers."""
        return a + b

def free_fn():
    return 1
`
	e := newExtractor(t)
	cfg := config.DefaultParserConfig()
	result := e.Extract(context.Background(), "calc.py", []byte(src), model.LanguagePython, cfg)

	require.Empty(t, result.Errors)
	require.Len(t, result.Snippets, 3)

	class := result.Snippets[0]
	assert.Equal(t, model.KindCodeClass, class.Kind)
	assert.Equal(t, "Calculator", class.Name)
	assert.Equal(t, 1, class.LineStart)
	assert.Equal(t, 4, class.LineEnd)

	method := result.Snippets[1]
	assert.Equal(t, model.KindCodeMethod, method.Kind)
	assert.Equal(t, "add", method.Name)
	assert.Equal(t, "Calculator", method.ClassName)
	assert.Equal(t, "(self, a, b)", method.Args)
	assert.Contains(t, method.Comment, "Adds two numbers")
	// Stemming must add to the keyword bag, never replace a raw token:
	// the identifiers exactly as written are still present.
	assert.Contains(t, method.Keywords, "Adds")
	assert.Contains(t, method.Keywords, "numbers")

	fn := result.Snippets[2]
	assert.Equal(t, model.KindCodeFunction, fn.Kind)
	assert.Equal(t, "free_fn", fn.Name)
	assert.Equal(t, "", fn.ClassName)
}

// S2: an oversize file is rejected by the size gate with no snippets.
func TestExtractFileTooLarge(t *testing.T) {
	e := newExtractor(t)
	cfg := config.DefaultParserConfig()
	cfg.MaxFileSize = 10

	result := e.Extract(context.Background(), "big.js", []byte("function f() { return 1; }"), model.LanguageJavaScript, cfg)

	require.Len(t, result.Errors, 1)
	assert.Empty(t, result.Snippets)
	assert.False(t, result.IsSuccessful())
}

// S3: a Go file with a struct (class-decl slot) and a function.
func TestExtractGoServer(t *testing.T) {
	src := `package main

type Server struct {
	addr string
}

func ServeHTTP(w ResponseWriter, r *Request) {
	return
}
`
	e := newExtractor(t)
	cfg := config.DefaultParserConfig()
	result := e.Extract(context.Background(), "server.go", []byte(src), model.LanguageGo, cfg)

	require.Empty(t, result.Errors)

	var class, fn *model.Snippet
	for i := range result.Snippets {
		switch result.Snippets[i].Kind {
		case model.KindCodeClass:
			class = &result.Snippets[i]
		case model.KindCodeFunction:
			fn = &result.Snippets[i]
		}
	}
	require.NotNil(t, class)
	require.NotNil(t, fn)
	assert.Equal(t, "Server", class.Name)
	assert.Equal(t, "ServeHTTP", fn.Name)
	assert.Equal(t, "(w ResponseWriter, r *Request)", fn.Args)
}

// A receiver method is a sibling of its struct's type_declaration in
// Go's grammar, not a descendant of it; it must still resolve to
// CodeMethod with the receiver's type as class_name.
func TestExtractGoReceiverMethodIsCodeMethod(t *testing.T) {
	src := `package main

type Server struct {
	addr string
}

func (s *Server) Addr() string {
	return s.addr
}
`
	e := newExtractor(t)
	cfg := config.DefaultParserConfig()
	result := e.Extract(context.Background(), "server.go", []byte(src), model.LanguageGo, cfg)

	require.Empty(t, result.Errors)

	var method *model.Snippet
	for i := range result.Snippets {
		if result.Snippets[i].Kind == model.KindCodeMethod {
			method = &result.Snippets[i]
		}
	}
	require.NotNil(t, method, "receiver method must be classified as CodeMethod")
	assert.Equal(t, "Addr", method.Name)
	assert.Equal(t, "Server", method.ClassName)
	assert.Equal(t, "()", method.Args)
}

// S6: nested classes attribute a method to its innermost enclosing class.
func TestExtractNestedClassInnermost(t *testing.T) {
	src := `class A:
    class B:
        def m(self):
            pass
`
	e := newExtractor(t)
	cfg := config.DefaultParserConfig()
	result := e.Extract(context.Background(), "nested.py", []byte(src), model.LanguagePython, cfg)

	require.Empty(t, result.Errors)

	var method *model.Snippet
	for i := range result.Snippets {
		if result.Snippets[i].Name == "m" {
			method = &result.Snippets[i]
		}
	}
	require.NotNil(t, method)
	assert.Equal(t, "B", method.ClassName)
}

// Universal invariant #2: content_hash = MD5(code).
func TestContentHashIsMD5OfCode(t *testing.T) {
	e := newExtractor(t)
	cfg := config.DefaultParserConfig()
	result := e.Extract(context.Background(), "free.py", []byte("def f():\n    return 1\n"), model.LanguagePython, cfg)
	require.Len(t, result.Snippets, 1)

	sum := md5.Sum([]byte(result.Snippets[0].Code))
	assert.Equal(t, hex.EncodeToString(sum[:]), result.Snippets[0].ContentHash)
}

// Determinism: running twice on byte-identical input yields byte-identical output.
func TestExtractIsDeterministic(t *testing.T) {
	e := newExtractor(t)
	cfg := config.DefaultParserConfig()
	src := []byte("def f(a, b):\n    return a + b\n")

	r1 := e.Extract(context.Background(), "f.py", src, model.LanguagePython, cfg)
	r2 := e.Extract(context.Background(), "f.py", src, model.LanguagePython, cfg)

	require.Len(t, r1.Snippets, 1)
	require.Len(t, r2.Snippets, 1)
	assert.Equal(t, r1.Snippets[0], r2.Snippets[0])
}

func TestAnonymousFunctionsAreSkipped(t *testing.T) {
	src := "const f = () => 1;\nconst cb = function() { return 2; };\n"
	e := newExtractor(t)
	cfg := config.DefaultParserConfig()
	result := e.Extract(context.Background(), "anon.js", []byte(src), model.LanguageJavaScript, cfg)

	for _, s := range result.Snippets {
		assert.NotEmpty(t, strings.TrimSpace(s.Name), "anonymous functions must not produce a snippet")
	}
}
