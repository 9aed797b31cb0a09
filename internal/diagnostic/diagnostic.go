// Package diagnostic implements the error taxonomy shared by the scanner
// and parser: every failure either package raises travels through this
// package so that callers can branch on a stable code instead of matching
// message text.
package diagnostic

import (
	"fmt"

	"gopkg.hlsltranslate.org/parser.go/internal/source"
)

// Code identifies the class of a diagnostic, independent of its message.
type Code string

const (
	CodeUnterminatedComment Code = "E-SCAN-UNTERMINATED-COMMENT"
	CodeUnterminatedString  Code = "E-SCAN-UNTERMINATED-STRING"
	CodeMalformedNumber     Code = "E-SCAN-MALFORMED-NUMBER"
	CodeStrayByte           Code = "E-SCAN-STRAY-BYTE"

	CodeUnexpected     Code = "E-PARSE-UNEXPECTED"
	CodeExpectedHint   Code = "E-PARSE-EXPECTED"
	CodeSpellingWrong  Code = "E-PARSE-SPELLING"
	CodeUnbalancedPair Code = "E-PARSE-UNBALANCED"
)

// Location pins a diagnostic to a source file and position within it.
type Location struct {
	URI string
	Pos source.SourcePos
}

func (l Location) String() string {
	if l.URI == "" {
		return l.Pos.String()
	}
	return fmt.Sprintf("%s:%s", l.URI, l.Pos.String())
}

// ScanError reports a lexical failure: an unrecognized byte, an
// unterminated comment or literal, or a numeric literal matching no
// well-formed pattern (spec.md §4.1).
type ScanError struct {
	Loc     Location
	Code    Code
	Message string
}

func NewScanError(loc Location, code Code, message string) *ScanError {
	return &ScanError{Loc: loc, Code: code, Message: message}
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Loc, e.Code, e.Message)
}

// ParseError is the parser's single diagnostic type (spec.md §7). The three
// taxonomy entries from spec.md §7 — Unexpected, UnexpectedWithHint, and
// SpellingMismatch — are constructors of this one type rather than three
// distinct types, so callers that want to catch "any parse error" only ever
// need to match one type with errors.As.
type ParseError struct {
	Loc      Location
	Code     Code
	Message  string
	Spelling string // the offending token's spelling
	Expected string // populated for UnexpectedWithHint / SpellingMismatch
}

// Unexpected reports an unexpected token with no further hint.
func Unexpected(loc Location, spelling string) *ParseError {
	return &ParseError{
		Loc:      loc,
		Code:     CodeUnexpected,
		Message:  fmt.Sprintf("unexpected token %q", spelling),
		Spelling: spelling,
	}
}

// UnexpectedWithHint reports an unexpected token along with what the parser
// expected to find instead.
func UnexpectedWithHint(loc Location, spelling, hint string) *ParseError {
	return &ParseError{
		Loc:      loc,
		Code:     CodeExpectedHint,
		Message:  fmt.Sprintf("unexpected token %q (%s)", spelling, hint),
		Spelling: spelling,
		Expected: hint,
	}
}

// SpellingMismatch reports a token of the right kind but the wrong exact
// spelling (e.g. an assignment operator that must be plain "=").
func SpellingMismatch(loc Location, actual, expected string) *ParseError {
	return &ParseError{
		Loc:      loc,
		Code:     CodeSpellingWrong,
		Message:  fmt.Sprintf("unexpected spelling %q (expected %q)", actual, expected),
		Spelling: actual,
		Expected: expected,
	}
}

// Unbalanced reports a delimiter that closes without a matching opener, or
// end-of-stream reached while one is still open (spec.md §8 P6).
func Unbalanced(loc Location, spelling string) *ParseError {
	return &ParseError{
		Loc:      loc,
		Code:     CodeUnbalancedPair,
		Message:  fmt.Sprintf("unbalanced delimiter %q", spelling),
		Spelling: spelling,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Loc, e.Message)
}

// Reporter accumulates diagnostics seen during a parse. The parser itself
// always reports at most one error before aborting (spec.md §7: "no
// recovery"), but Reporter is kept general so that downstream passes that
// are out of scope for this repo (a semantic analyzer, a linter) can share
// the same accumulation contract without the parser needing to know about
// them.
type Reporter interface {
	// Report records d. Implementations must not discard anything handed
	// to them — spec.md §7 is explicit that no diagnostic is ever
	// swallowed.
	Report(d error)
	// Diagnostics returns everything reported so far, in report order.
	Diagnostics() []error
}

// NewReporter returns a Reporter that simply accumulates, in the order
// Report was called. It is not safe for concurrent use — this repo's
// concurrency model (spec.md §5) is single-threaded throughout.
func NewReporter() Reporter {
	return &sliceReporter{}
}

type sliceReporter struct {
	reported []error
}

func (r *sliceReporter) Report(d error) {
	r.reported = append(r.reported, d)
}

func (r *sliceReporter) Diagnostics() []error {
	return r.reported
}
