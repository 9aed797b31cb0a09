package parser

import (
	"gopkg.hlsltranslate.org/parser.go/internal/diagnostic"
	"gopkg.hlsltranslate.org/parser.go/internal/lexer"
	"gopkg.hlsltranslate.org/parser.go/internal/token"
)

// tokenStream is the one-token-lookahead adapter spec.md §4.2 (C3)
// describes, holding the scanner's most recently fetched token as the
// "current token". It is a direct translation of the original parser's
// tkn_ field plus its Accept/AcceptIt/Is helpers — there is no n-token
// ring buffer here, unlike the teacher's iter.Lookahead, because nothing
// in this grammar ever needs to see past the current token.
type tokenStream struct {
	scan *lexer.Scanner
	uri  string
	cur  token.Token
}

// newTokenStream primes the stream with its first token.
func newTokenStream(scan *lexer.Scanner, uri string) (*tokenStream, error) {
	ts := &tokenStream{scan: scan, uri: uri}
	if err := ts.advance(); err != nil {
		return nil, err
	}
	return ts, nil
}

func (ts *tokenStream) advance() error {
	t, err := ts.scan.Next()
	if err != nil {
		return err
	}
	ts.cur = t
	return nil
}

func (ts *tokenStream) loc() diagnostic.Location {
	return diagnostic.Location{URI: ts.uri, Pos: ts.cur.Pos}
}

// peekKind returns the current token's kind without advancing.
func (ts *tokenStream) peekKind() token.Kind {
	return ts.cur.Kind
}

// is reports whether the current token has the given kind.
func (ts *tokenStream) is(k token.Kind) bool {
	return ts.cur.Is(k)
}

// isSpelled reports whether the current token has the given kind and
// exact spelling.
func (ts *tokenStream) isSpelled(k token.Kind, spelling string) bool {
	return ts.cur.IsSpelled(k, spelling)
}

// acceptAny returns the current token and advances, regardless of kind.
func (ts *tokenStream) acceptAny() (token.Token, error) {
	prev := ts.cur
	if err := ts.advance(); err != nil {
		return token.Token{}, err
	}
	return prev, nil
}

// accept requires the current token have kind k, else fails with
// Unexpected, then advances past it.
func (ts *tokenStream) accept(k token.Kind) (token.Token, error) {
	if !ts.is(k) {
		return token.Token{}, diagnostic.Unexpected(ts.loc(), ts.cur.Spelling)
	}
	return ts.acceptAny()
}

// acceptHint is accept, but raises UnexpectedWithHint carrying hint
// instead of a bare Unexpected when the kind doesn't match.
func (ts *tokenStream) acceptHint(k token.Kind, hint string) (token.Token, error) {
	if !ts.is(k) {
		return token.Token{}, diagnostic.UnexpectedWithHint(ts.loc(), ts.cur.Spelling, hint)
	}
	return ts.acceptAny()
}

// acceptSpelled requires the current token have kind k and exact spelling
// s, else fails with SpellingMismatch (if the kind matched) or Unexpected
// (if it didn't).
func (ts *tokenStream) acceptSpelled(k token.Kind, s string) (token.Token, error) {
	if !ts.is(k) {
		return token.Token{}, diagnostic.Unexpected(ts.loc(), ts.cur.Spelling)
	}
	if ts.cur.Spelling != s {
		return token.Token{}, diagnostic.SpellingMismatch(ts.loc(), ts.cur.Spelling, s)
	}
	return ts.acceptAny()
}
