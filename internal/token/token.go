package token

import (
	"fmt"

	"gopkg.hlsltranslate.org/parser.go/internal/source"
)

// Token is one scanned lexeme: its classification, its exact spelling, and
// the position its first character occupied in the source (spec.md §3.2).
// This is the Go analogue of the reference idl.Token{Span, Type, Value}
// shape, adapted to carry a source.SourcePos instead of a protobuf Span
// since this repo has no protobuf-backed location type.
type Token struct {
	Kind     Kind
	Spelling string
	Pos      source.SourcePos
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Spelling, t.Pos)
}

// Is reports whether the token has the given kind.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

// IsSpelled reports whether the token has the given kind and exact
// spelling. The parser uses this wherever a grammar production demands a
// specific punctuation or operator spelling rather than any token of that
// kind (e.g. a plain "=" versus "+=" both being AssignOp).
func (t Token) IsSpelled(k Kind, spelling string) bool {
	return t.Kind == k && t.Spelling == spelling
}
