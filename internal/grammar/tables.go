package grammar

import "github.com/standardbeagle/snipcore/internal/model"

// vocabularies is the externalized per-language node-type table (spec.md
// §4.1, §9). Node-type names are taken from each grammar's published
// node-types.json, mirroring the node types the teacher's per-language
// query strings in parser_language_setup.go already reference.
var vocabularies = map[model.Language]NodeVocabulary{
	model.LanguagePython: {
		ClassDecl:        []string{"class_definition"},
		FunctionDecl:     []string{"function_definition"},
		Identifier:       []string{"identifier"},
		Parameters:       []string{"parameters"},
		Body:              []string{"block"},
		Comment:          []string{"comment"},
		CommentPrefixes:  []string{"#"},
		ClassIsContainer: true,
	},
	model.LanguageJavaScript: {
		ClassDecl:        []string{"class_declaration"},
		FunctionDecl:     []string{"function_declaration", "generator_function_declaration", "arrow_function", "function_expression", "method_definition"},
		Identifier:       []string{"identifier", "property_identifier"},
		Parameters:       []string{"formal_parameters"},
		Body:             []string{"statement_block", "class_body"},
		Comment:          []string{"comment"},
		CommentPrefixes:  []string{"//", "/*", "*/"},
		ClassIsContainer: true,
	},
	model.LanguageTypeScript: {
		ClassDecl:        []string{"class_declaration"},
		FunctionDecl:     []string{"function_declaration", "generator_function_declaration", "arrow_function", "function_expression", "method_definition"},
		Identifier:       []string{"identifier", "property_identifier", "type_identifier"},
		Parameters:       []string{"formal_parameters"},
		Body:             []string{"statement_block", "class_body"},
		Comment:          []string{"comment"},
		CommentPrefixes:  []string{"//", "/*", "*/"},
		ClassIsContainer: true,
	},
	model.LanguageJava: {
		ClassDecl:        []string{"class_declaration", "record_declaration"},
		FunctionDecl:     []string{"method_declaration", "constructor_declaration"},
		Identifier:       []string{"identifier"},
		Parameters:       []string{"formal_parameters"},
		Body:             []string{"block", "class_body"},
		Comment:          []string{"line_comment", "block_comment"},
		CommentPrefixes:  []string{"//", "/*", "*/"},
		ClassIsContainer: true,
	},
	model.LanguageGo: {
		// Go has no class construct; type_declaration(struct) plays that
		// role for spec.md's CodeClass slot (S3 seed scenario).
		ClassDecl:        []string{"type_declaration"},
		FunctionDecl:     []string{"function_declaration", "method_declaration", "func_literal"},
		Identifier:       []string{"identifier", "field_identifier", "type_identifier"},
		Parameters:       []string{"parameter_list"},
		Body:             []string{"block"},
		Comment:          []string{"comment"},
		CommentPrefixes:  []string{"//", "/*", "*/"},
		ClassIsContainer: false,
	},
	model.LanguageC: {
		ClassDecl:        []string{"struct_specifier"},
		FunctionDecl:     []string{"function_definition"},
		Identifier:       []string{"identifier", "field_identifier", "type_identifier"},
		Parameters:       []string{"parameter_list"},
		Body:             []string{"compound_statement"},
		Comment:          []string{"comment"},
		CommentPrefixes:  []string{"//", "/*", "*/"},
		ClassIsContainer: false,
	},
	model.LanguageCPP: {
		ClassDecl:        []string{"class_specifier", "struct_specifier"},
		FunctionDecl:     []string{"function_definition"},
		Identifier:       []string{"identifier", "field_identifier", "type_identifier"},
		Parameters:       []string{"parameter_list"},
		Body:             []string{"compound_statement", "field_declaration_list"},
		Comment:          []string{"comment"},
		CommentPrefixes:  []string{"//", "/*", "*/"},
		ClassIsContainer: true,
	},
	model.LanguageCSharp: {
		ClassDecl:        []string{"class_declaration", "struct_declaration", "record_declaration"},
		FunctionDecl:     []string{"method_declaration", "constructor_declaration"},
		Identifier:       []string{"identifier"},
		Parameters:       []string{"parameter_list"},
		Body:             []string{"block", "declaration_list"},
		Comment:          []string{"comment"},
		CommentPrefixes:  []string{"//", "/*", "*/"},
		ClassIsContainer: true,
	},
	model.LanguageZig: {
		ClassDecl:        []string{"struct_declaration", "union_declaration"},
		FunctionDecl:     []string{"function_declaration"},
		Identifier:       []string{"identifier"},
		Parameters:       []string{"parameters"},
		Body:             []string{"block"},
		Comment:          []string{"comment"},
		CommentPrefixes:  []string{"//"},
		ClassIsContainer: false,
	},
	model.LanguageKotlin: {
		ClassDecl:        []string{"class_declaration", "object_declaration"},
		FunctionDecl:     []string{"function_declaration"},
		Identifier:       []string{"simple_identifier", "type_identifier"},
		Parameters:       []string{"function_value_parameters"},
		Body:             []string{"function_body", "class_body"},
		Comment:          []string{"line_comment", "multiline_comment"},
		CommentPrefixes:  []string{"//", "/*", "*/"},
		ClassIsContainer: true,
	},
	model.LanguageLua: {
		// Lua has no native class syntax; "table constructor assigned to
		// an identifier with method-like function fields" is the common
		// idiom, but detecting that pattern structurally is out of scope
		// (spec.md Non-goals: no semantic analysis beyond structural
		// decomposition). Lua therefore only ever emits CodeFunction.
		ClassDecl:        nil,
		FunctionDecl:     []string{"function_declaration", "local_function", "function_definition"},
		Identifier:       []string{"identifier"},
		Parameters:       []string{"parameters"},
		Body:             []string{"block"},
		Comment:          []string{"comment"},
		CommentPrefixes:  []string{"--[[", "]]", "--"},
		ClassIsContainer: false,
	},
}

// VocabularyFor returns the node-type vocabulary for language, and
// whether one is registered.
func VocabularyFor(lang model.Language) (NodeVocabulary, bool) {
	v, ok := vocabularies[lang]
	return v, ok
}
