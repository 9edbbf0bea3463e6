package grammar

import (
	"fmt"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/snipcore/internal/errs"
	"github.com/standardbeagle/snipcore/internal/model"
)

// ParserHandle is an acquire/release pair around a tree-sitter parser
// scoped to one language. Handles are not safe for concurrent use; the
// Registry pools them so concurrent extraction calls each get an
// exclusive handle, mirroring the teacher's parserPools
// sync.Pool-per-language design (internal/parser/parser.go).
type ParserHandle struct {
	Language model.Language
	Parser   *tree_sitter.Parser
}

type languageSetup struct {
	language model.Language
	build    func() (*tree_sitter.Parser, error)
}

// Registry is the Grammar Registry (spec.md §4.1): parser_for and
// node_types_for, backed by lazily-initialized, pooled parser handles.
type Registry struct {
	mu sync.Mutex // guards pools map creation and setups lazy-init

	pools map[model.Language]*sync.Pool

	setupOnce map[model.Language]*sync.Once
	setupErr  map[model.Language]error
	setups    map[model.Language]languageSetup
}

// NewRegistry returns a Registry with every natively supported language
// registered for lazy initialization (official tree-sitter bindings plus
// Kotlin/Lua via the community-parser adapter, filling spec.md's full
// language enumeration).
func NewRegistry() *Registry {
	r := &Registry{
		pools:     make(map[model.Language]*sync.Pool),
		setupOnce: make(map[model.Language]*sync.Once),
		setupErr:  make(map[model.Language]error),
		setups:    make(map[model.Language]languageSetup),
	}
	for _, s := range nativeSetups() {
		r.register(s)
	}
	for _, a := range communityAdapters() {
		r.register(a.languageSetup())
	}
	return r
}

func (r *Registry) register(s languageSetup) {
	r.setups[s.language] = s
	r.setupOnce[s.language] = &sync.Once{}
}

// ensureInitialized builds the first handle for a language, serialized
// via sync.Once so concurrent first-use callers don't race to construct
// the grammar (spec.md §4.1 concurrency: "parser-handle creation is
// serialized").
func (r *Registry) ensureInitialized(lang model.Language) error {
	s, ok := r.setups[lang]
	if !ok {
		return errs.LanguageUnavailable("", fmt.Errorf("no grammar registered for language %q", lang))
	}

	once := r.setupOnce[lang]
	once.Do(func() {
		parser, err := s.build()
		if err != nil {
			r.setupErr[lang] = err
			return
		}
		pool := &sync.Pool{
			New: func() any {
				p, err := s.build()
				if err != nil {
					return nil
				}
				return &ParserHandle{Language: lang, Parser: p}
			},
		}
		pool.Put(&ParserHandle{Language: lang, Parser: parser})

		r.mu.Lock()
		r.pools[lang] = pool
		r.mu.Unlock()
	})
	return r.setupErr[lang]
}

// Acquire returns a pooled, exclusive ParserHandle for lang. Callers
// must Release it when done. Returns LanguageUnavailable if the grammar
// failed to initialize (spec.md §4.1 failure modes).
func (r *Registry) Acquire(lang model.Language) (*ParserHandle, error) {
	if lang == model.LanguageNone {
		return nil, errs.LanguageUnavailable("", fmt.Errorf("no language"))
	}
	if err := r.ensureInitialized(lang); err != nil {
		return nil, errs.LanguageUnavailable("", err)
	}

	r.mu.Lock()
	pool := r.pools[lang]
	r.mu.Unlock()
	if pool == nil {
		return nil, errs.LanguageUnavailable("", fmt.Errorf("grammar pool missing for %q", lang))
	}

	v := pool.Get()
	if v == nil {
		return nil, errs.LanguageUnavailable("", fmt.Errorf("failed to build parser handle for %q", lang))
	}
	return v.(*ParserHandle), nil
}

// Release returns a handle to its language pool for reuse.
func (r *Registry) Release(h *ParserHandle) {
	if h == nil {
		return
	}
	r.mu.Lock()
	pool := r.pools[h.Language]
	r.mu.Unlock()
	if pool != nil {
		pool.Put(h)
	}
}

// NodeTypesFor returns the node-type vocabulary for lang, per spec.md
// §4.1's node_types_for contract.
func (r *Registry) NodeTypesFor(lang model.Language) (NodeVocabulary, bool) {
	return VocabularyFor(lang)
}

// SupportsLanguage reports whether the registry has a grammar for lang.
func (r *Registry) SupportsLanguage(lang model.Language) bool {
	_, ok := r.setups[lang]
	return ok
}
