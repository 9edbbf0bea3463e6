// Package errs defines the error taxonomy used across the snippet
// extraction core, modeled on the teacher's internal/errors package:
// one typed error per failure kind, each wrapping an underlying cause
// and exposing it via Unwrap so errors.Is/As keep working through a
// MultiError. The Directory Driver's per-path error map stores only each
// path's joined message, not the error values.
package errs

import (
	"fmt"
	"time"
)

// Kind identifies a row of spec §7's error taxonomy.
type Kind string

const (
	KindFileTooLarge       Kind = "file_too_large"
	KindEncodingUnresolved Kind = "encoding_unresolved"
	KindLanguageUnavailable Kind = "language_unavailable"
	KindParseSyntaxError   Kind = "parse_syntax_error"
	KindParseTimeout       Kind = "parse_timeout"
	KindIORead             Kind = "io_read"
	KindWalkFailure        Kind = "walk_failure"
	KindCancelled          Kind = "cancelled"
	KindConfig             Kind = "config"
)

// CoreError is the common shape of every error this package produces.
type CoreError struct {
	Kind       Kind
	Path       string
	Message    string
	Underlying error
	Timestamp  time.Time
}

func (e *CoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (%s): %v", e.Kind, e.Message, e.Path, e.Underlying)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Underlying)
}

func (e *CoreError) Unwrap() error { return e.Underlying }

func newErr(kind Kind, path, message string, underlying error) *CoreError {
	return &CoreError{Kind: kind, Path: path, Message: message, Underlying: underlying, Timestamp: time.Now()}
}

// FileTooLarge reports spec §7's FileTooLarge: the size gate rejected a
// file before any decoding or parsing happened.
func FileTooLarge(path string, size, limit int64) *CoreError {
	return newErr(KindFileTooLarge, path, fmt.Sprintf("file size %d exceeds limit %d", size, limit), nil)
}

// EncodingUnresolved reports spec §7's EncodingUnresolved: decoding
// failed and the detector's confidence never reached the configured
// threshold.
func EncodingUnresolved(path string, confidence, threshold float64) *CoreError {
	return newErr(KindEncodingUnresolved, path,
		fmt.Sprintf("encoding confidence %.2f below threshold %.2f", confidence, threshold), nil)
}

// LanguageUnavailable reports spec §7's LanguageUnavailable: the Grammar
// Registry has no parser handle for the language (e.g. its grammar
// failed to initialize).
func LanguageUnavailable(path string, underlying error) *CoreError {
	return newErr(KindLanguageUnavailable, path, "grammar parser unavailable", underlying)
}

// ParseSyntaxError reports spec §7's ParseSyntaxError: the grammar
// parser produced a tree rooted in an ERROR node. Non-terminal: callers
// still use whatever snippets were salvaged from the rest of the tree.
func ParseSyntaxError(path string) *CoreError {
	return newErr(KindParseSyntaxError, path, "syntax tree contains error nodes", nil)
}

// ParseTimeout reports spec §7's ParseTimeout: the per-file wall-clock
// deadline expired mid-parse.
func ParseTimeout(path string, after time.Duration) *CoreError {
	return newErr(KindParseTimeout, path, fmt.Sprintf("parse exceeded timeout of %s", after), nil)
}

// IORead reports spec §7's IORead: a filesystem error while reading a
// file's bytes.
func IORead(path string, underlying error) *CoreError {
	return newErr(KindIORead, path, "failed to read file", underlying)
}

// WalkFailure reports spec §7's WalkFailure: the root path itself could
// not be walked (missing, permission denied). Terminal for the whole
// Directory Driver invocation.
func WalkFailure(path string, underlying error) *CoreError {
	return newErr(KindWalkFailure, path, "walk failed", underlying)
}

// Cancelled reports spec §7's Cancelled: an external cancellation signal
// stopped the walk; partial results are still returned.
func Cancelled(path string) *CoreError {
	return newErr(KindCancelled, path, "operation cancelled", nil)
}

// Config reports a configuration validation failure detected at
// construction time (the one class of error that is Surfaced rather than
// locally recovered, alongside WalkFailure — spec §7).
func Config(field string, value any, underlying error) *CoreError {
	return newErr(KindConfig, "", fmt.Sprintf("field %s (value %v)", field, value), underlying)
}

// MultiError aggregates independent errors without losing their
// individual identity (errors.As still finds a *CoreError of a specific
// Kind buried inside), mirroring the teacher's internal/errors.MultiError.
type MultiError struct {
	Errors []error
}

// NewMultiError filters out nils and returns an aggregate. A MultiError
// with zero members is still valid and reports "no errors".
func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			filtered = append(filtered, e)
		}
	}
	return &MultiError{Errors: filtered}
}

func (e *MultiError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	default:
		return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
	}
}

func (e *MultiError) Unwrap() []error { return e.Errors }
