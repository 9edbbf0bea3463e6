package extractor

import (
	"crypto/md5"
	"encoding/hex"
	"path/filepath"
	"sort"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/snipcore/internal/config"
	"github.com/standardbeagle/snipcore/internal/grammar"
	"github.com/standardbeagle/snipcore/internal/model"
)

// classFrame is one entry of the traversal-local class stack (spec.md
// §4.2 step 4, GLOSSARY "Class stack").
type classFrame struct {
	name      string
	lineStart int
	lineEnd   int
}

// walker carries the state needed during one file's pre-order walk.
type walker struct {
	path     string
	text     string
	lang     model.Language
	vocab    grammar.NodeVocabulary
	cfg      config.ParserConfig
	comments []commentNode

	classStack []classFrame
	out        []model.Snippet
}

type commentNode struct {
	text    string
	endLine int
}

func newWalker(path, text string, lang model.Language, vocab grammar.NodeVocabulary, cfg config.ParserConfig) *walker {
	return &walker{
		path:  path,
		text:  text,
		lang:  lang,
		vocab: vocab,
		cfg:   cfg,
	}
}

// walk performs the pre-order traversal described by spec.md §4.2 steps
// 3-9 and returns the snippets sorted by (line_start, line_end) per
// spec.md §3 invariant 5. Pre-order already ascends by line_start; the
// stable sort reorders only snippets sharing a start line, where
// pre-order emits the enclosing node first.
func (w *walker) walk(root *tree_sitter.Node) []model.Snippet {
	w.collectComments(root)
	w.visit(root)
	sort.SliceStable(w.out, func(i, j int) bool {
		if w.out[i].LineStart != w.out[j].LineStart {
			return w.out[i].LineStart < w.out[j].LineStart
		}
		return w.out[i].LineEnd < w.out[j].LineEnd
	})
	return w.out
}

// collectComments walks the whole tree once up front to build a
// line-sorted index of comment nodes, per spec.md §9: "walk the file's
// comment nodes sorted by end_line."
func (w *walker) collectComments(node *tree_sitter.Node) {
	if w.vocab.IsComment(node.Kind()) {
		w.comments = append(w.comments, commentNode{
			text:    w.nodeText(node),
			endLine: int(node.EndPosition().Row) + 1,
		})
	}
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		if child := node.Child(i); child != nil {
			w.collectComments(child)
		}
	}
}

func (w *walker) visit(node *tree_sitter.Node) {
	kind := node.Kind()

	switch {
	case w.vocab.IsClassDecl(kind):
		w.visitClass(node)
		return
	case w.vocab.IsFunctionDecl(kind):
		w.visitFunction(node)
		// Functions can nest (closures); still descend into the body to
		// find nested functions/classes (spec.md §4.2 edge cases).
	}

	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		if child := node.Child(i); child != nil {
			w.visit(child)
		}
	}
}

func (w *walker) visitClass(node *tree_sitter.Node) {
	name, ok := w.identifierName(node)
	if !ok {
		// Anonymous classes are exceedingly rare and the spec only calls
		// out anonymous *functions*; still, without a name there is
		// nothing to push onto the class stack or to key methods to, so
		// skip structural extraction for this node but keep descending.
		w.descendChildren(node)
		return
	}

	lineStart := int(node.StartPosition().Row) + 1
	lineEnd := int(node.EndPosition().Row) + 1

	w.classStack = append(w.classStack, classFrame{name: name, lineStart: lineStart, lineEnd: lineEnd})
	defer func() { w.classStack = w.classStack[:len(w.classStack)-1] }()

	snippet := w.buildSnippet(model.KindCodeClass, node, name, lineStart, lineEnd, "", "")
	if snippet != nil {
		w.out = append(w.out, *snippet)
	}

	w.descendChildren(node)
}

func (w *walker) visitFunction(node *tree_sitter.Node) {
	name, ok := w.identifierName(node)
	if !ok {
		// "Anonymous means anonymous": skip rather than climb the parent
		// chain to infer a name (spec.md §4.2 step 5).
		w.descendChildren(node)
		return
	}

	lineStart := int(node.StartPosition().Row) + 1
	lineEnd := int(node.EndPosition().Row) + 1

	args := w.parametersText(node)

	kind := model.KindCodeFunction
	className := ""
	if len(w.classStack) > 0 {
		kind = model.KindCodeMethod
		className = w.classStack[len(w.classStack)-1].name
	} else if recv, ok := w.receiverClassName(node); ok {
		// Go's method_declaration is never a descendant of its struct's
		// type_declaration (they are siblings at file scope), so the
		// class stack is always empty here. Fall back to reading the
		// receiver's type name directly off the node's receiver field
		// (DESIGN.md §3: receiver-typed methods).
		kind = model.KindCodeMethod
		className = recv
	}

	if kind == model.KindCodeMethod && w.cfg.IgnorePrivateMethods && strings.HasPrefix(name, "_") {
		w.descendChildren(node)
		return
	}

	snippet := w.buildSnippet(kind, node, name, lineStart, lineEnd, className, args)
	if snippet != nil {
		w.out = append(w.out, *snippet)
	}

	w.descendChildren(node)
}

func (w *walker) descendChildren(node *tree_sitter.Node) {
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		if child := node.Child(i); child != nil {
			w.visit(child)
		}
	}
}

// identifierName returns the text of the first child whose node type is
// in the vocabulary's identifier role (spec.md §4.2 step 5). Some
// grammars wrap the declared name one level deeper than the decl node
// itself — Go's type_declaration holds its type_identifier inside a
// type_spec child rather than directly — so a declaration with no
// direct identifier child falls back to one extra level.
func (w *walker) identifierName(node *tree_sitter.Node) (string, bool) {
	if name, ok := w.directIdentifierChild(node); ok {
		return name, ok
	}
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if name, ok := w.directIdentifierChild(child); ok {
			return name, ok
		}
	}
	return "", false
}

func (w *walker) directIdentifierChild(node *tree_sitter.Node) (string, bool) {
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if w.vocab.IsIdentifier(child.Kind()) {
			return w.nodeText(child), true
		}
	}
	return "", false
}

// receiverClassName recognizes Go-style receiver methods: a
// function-decl node whose "receiver" field holds a parameters-role
// list. It returns the receiver's concrete type name so the method can
// be attributed to its struct's CodeClass even though the two
// declarations are siblings in the tree, not ancestor/descendant.
func (w *walker) receiverClassName(node *tree_sitter.Node) (string, bool) {
	recv := node.ChildByFieldName("receiver")
	if recv == nil || !w.vocab.IsParameters(recv.Kind()) {
		return "", false
	}
	return w.typeIdentifierIn(recv)
}

// typeIdentifierIn finds the first type_identifier node in a subtree,
// e.g. "User" inside a Go receiver's "(u *User)" parameter list. This is
// narrower than the vocabulary's identifier role on purpose: a receiver
// list also contains the receiver variable's plain identifier, and only
// the type name is useful as a class_name.
func (w *walker) typeIdentifierIn(node *tree_sitter.Node) (string, bool) {
	if node.Kind() == "type_identifier" {
		return w.nodeText(node), true
	}
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if name, ok := w.typeIdentifierIn(child); ok {
			return name, ok
		}
	}
	return "", false
}

// parametersText returns the verbatim text of the child matching the
// parameters role, including surrounding punctuation (spec.md §4.2 step
// 6). The node's "parameters" field is used when it holds a
// parameters-role node: Go declarations can carry further parameter_list
// children (a method's receiver list, a parenthesised result list), and
// the field picks out the argument list among them. Without such a
// field, the last parameters-role child is taken.
func (w *walker) parametersText(node *tree_sitter.Node) string {
	if params := node.ChildByFieldName("parameters"); params != nil && w.vocab.IsParameters(params.Kind()) {
		return w.nodeText(params)
	}
	text := ""
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if w.vocab.IsParameters(child.Kind()) {
			text = w.nodeText(child)
		}
	}
	return text
}

func (w *walker) nodeText(node *tree_sitter.Node) string {
	start, end := node.StartByte(), node.EndByte()
	if int(end) > len(w.text) || start > end {
		return ""
	}
	return w.text[start:end]
}

func (w *walker) buildSnippet(kind model.SnippetKind, node *tree_sitter.Node, name string, lineStart, lineEnd int, className, args string) *model.Snippet {
	// The size filter (spec.md §4.2 step 8) applies to callable kinds
	// only; filtering a class out here would orphan its already-emitted
	// methods and violate invariants #4/#6.
	if kind == model.KindCodeFunction || kind == model.KindCodeMethod {
		if span := lineEnd - lineStart + 1; span < w.cfg.MinFunctionLines || span > w.cfg.MaxFunctionLines {
			return nil
		}
	}

	code := w.nodeText(node)
	comment := ""
	if w.cfg.ExtractComments {
		comment = w.attachedComment(lineStart)
	}
	if comment == "" && w.cfg.ExtractDocstrings {
		comment = w.docstring(node)
	}

	sum := md5.Sum([]byte(code))
	hash := hex.EncodeToString(sum[:])

	funcName := ""
	if kind == model.KindCodeFunction || kind == model.KindCodeMethod {
		funcName = name
	}

	return &model.Snippet{
		Kind:        kind,
		Path:        w.path,
		Directory:   filepath.ToSlash(filepath.Dir(w.path)),
		Filename:    filepath.Base(w.path),
		Name:        name,
		Code:        code,
		ContentHash: hash,
		FuncName:    funcName,
		Args:        args,
		ClassName:   className,
		Comment:     comment,
		LineStart:   lineStart,
		LineEnd:     lineEnd,
		Language:    w.lang,
		Keywords:    harvestKeywords(code, comment, w.path, w.cfg),
	}
}

// attachedComment implements spec.md §9's precise comment-attachment
// algorithm: the maximal contiguous run of comment nodes ending at
// L-1, L-2, … with no gap, concatenated in source order and stripped of
// delimiters.
func (w *walker) attachedComment(lineStart int) string {
	// Index the collected comments by end line for the backward scan
	// (spec.md §9); the index is rebuilt on every call.
	byEnd := make(map[int]string, len(w.comments))
	for _, c := range w.comments {
		byEnd[c.endLine] = c.text
	}

	var block []string
	line := lineStart - 1
	for {
		text, ok := byEnd[line]
		if !ok {
			break
		}
		block = append([]string{text}, block...)
		line--
	}
	if len(block) == 0 {
		return ""
	}

	for i, c := range block {
		block[i] = stripCommentDelimiters(c, w.vocab.CommentPrefixes)
	}
	return strings.Join(block, "\n")
}

func stripCommentDelimiters(text string, prefixes []string) string {
	trimmed := strings.TrimSpace(text)
	for _, p := range prefixes {
		trimmed = strings.TrimPrefix(trimmed, p)
		trimmed = strings.TrimSuffix(trimmed, p)
	}
	return strings.TrimSpace(trimmed)
}

// docstring implements the Python-style fallback: the first
// expression-statement inside the body whose expression is a string
// literal (spec.md §4.1 vocabulary table, §9).
func (w *walker) docstring(node *tree_sitter.Node) string {
	body := w.bodyNode(node)
	if body == nil {
		return ""
	}
	count := body.ChildCount()
	for i := uint(0); i < count; i++ {
		child := body.Child(i)
		if child == nil {
			continue
		}
		if child.Kind() == "expression_statement" && child.ChildCount() > 0 {
			expr := child.Child(0)
			if expr != nil && expr.Kind() == "string" {
				return strings.Trim(w.nodeText(expr), "\"'")
			}
		}
		// Only the first statement counts as a docstring candidate.
		break
	}
	return ""
}

func (w *walker) bodyNode(node *tree_sitter.Node) *tree_sitter.Node {
	count := node.ChildCount()
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if w.vocab.HasRole(grammar.RoleBody, child.Kind()) {
			return child
		}
	}
	return nil
}
