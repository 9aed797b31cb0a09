// Package lexer implements the HLSL scanner (spec.md §4.1): it classifies
// the rune stream held by a source.SourceCode into a sequence of
// token.Token values, skipping whitespace and comments, and raising a
// *diagnostic.ScanError the moment it meets a byte or lexeme it cannot
// classify. The big switch-on-leading-rune shape below follows the
// teacher's lexer_microglot.go scanner, adapted to HLSL's token
// vocabulary — there is no Microglot-style n-token lookahead here, since
// nothing downstream of a single Token needs one.
package lexer

import (
	"strings"
	"unicode"

	"gopkg.hlsltranslate.org/parser.go/internal/diagnostic"
	"gopkg.hlsltranslate.org/parser.go/internal/source"
	"gopkg.hlsltranslate.org/parser.go/internal/token"
)

// Scanner pulls characters from a source.SourceCode and emits tokens one at
// a time. It holds no lookahead of its own; the token stream adapter in
// internal/parser is the one-token-lookahead layer spec.md §4.2 describes.
type Scanner struct {
	src *source.SourceCode
	uri string

	emittedEnd bool
}

// New returns a Scanner reading from src. uri is the logical name attached
// to any diagnostics it raises; callers typically pass src.Name().
func New(src *source.SourceCode, uri string) *Scanner {
	return &Scanner{src: src, uri: uri}
}

func (s *Scanner) errAt(pos source.SourcePos, code diagnostic.Code, message string) *diagnostic.ScanError {
	return diagnostic.NewScanError(diagnostic.Location{URI: s.uri, Pos: pos}, code, message)
}

// Next returns the next token in the stream. Once end-of-input is reached
// it returns an EndOfStream token forever after, matching spec.md §3.2's
// idempotence guarantee.
func (s *Scanner) Next() (token.Token, error) {
	if err := s.skipTrivia(); err != nil {
		return token.Token{}, err
	}

	pos := s.src.Pos()
	r, ok := s.src.Peek()
	if !ok {
		s.emittedEnd = true
		return token.Token{Kind: token.EndOfStream, Pos: pos}, nil
	}

	switch {
	case r == '#':
		return s.scanDirective(pos)
	case isIdentStart(r):
		return s.scanIdentOrKeyword(pos)
	case unicode.IsDigit(r) || (r == '.' && isDigitAt(s.src, 1)):
		return s.scanNumber(pos)
	default:
		return s.scanOperatorOrPunct(pos)
	}
}

// skipTrivia consumes whitespace and comments, leaving the cursor at the
// start of the next token (or at end of input). It fails only if a block
// comment never closes.
func (s *Scanner) skipTrivia() error {
	for {
		r, ok := s.src.Peek()
		if !ok {
			return nil
		}
		switch {
		case unicode.IsSpace(r):
			s.src.Advance()
		case r == '/' && peekIs(s.src, 1, '/'):
			for {
				r, ok := s.src.Peek()
				if !ok || r == '\n' {
					break
				}
				s.src.Advance()
			}
		case r == '/' && peekIs(s.src, 1, '*'):
			start := s.src.Pos()
			s.src.Advance()
			s.src.Advance()
			closed := false
			for {
				r, ok := s.src.Peek()
				if !ok {
					break
				}
				if r == '*' && peekIs(s.src, 1, '/') {
					s.src.Advance()
					s.src.Advance()
					closed = true
					break
				}
				s.src.Advance()
			}
			if !closed {
				return s.errAt(start, diagnostic.CodeUnterminatedComment, "unterminated block comment")
			}
		default:
			return nil
		}
	}
}

// scanDirective reads a '#' that opens the line (per spec.md §4.1 this is
// recognized wherever it appears, the logical-line rule is enforced by the
// producer of the source rather than column tracking here) through the end
// of its logical line, joining backslash-newline continuations.
func (s *Scanner) scanDirective(pos source.SourcePos) (token.Token, error) {
	var b strings.Builder
	s.src.Advance() // consume '#'
	b.WriteByte('#')
	for {
		r, ok := s.src.Peek()
		if !ok || r == '\n' {
			break
		}
		if r == '\\' && peekIs(s.src, 1, '\n') {
			s.src.Advance()
			s.src.Advance()
			b.WriteByte(' ')
			continue
		}
		s.src.Advance()
		b.WriteRune(r)
	}
	return token.Token{Kind: token.Directive, Spelling: b.String(), Pos: pos}, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentCont(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (s *Scanner) scanIdentOrKeyword(pos source.SourcePos) (token.Token, error) {
	var b strings.Builder
	for {
		r, ok := s.src.Peek()
		if !ok || !isIdentCont(r) {
			break
		}
		s.src.Advance()
		b.WriteRune(r)
	}
	spelling := b.String()
	kind, _ := token.Lookup(spelling)
	return token.Token{Kind: kind, Spelling: spelling, Pos: pos}, nil
}

func isDigitAt(src *source.SourceCode, n int) bool {
	r, ok := src.PeekAt(n)
	return ok && unicode.IsDigit(r)
}

func peekIs(src *source.SourceCode, n int, want rune) bool {
	r, ok := src.PeekAt(n)
	return ok && r == want
}

// scanNumber scans an IntLiteral or FloatLiteral (spec.md §4.1): decimal,
// hex (0x...), octal (0...) integers, and floats with an optional
// fractional part, optional exponent, and optional f/F/h/H suffix.
func (s *Scanner) scanNumber(pos source.SourcePos) (token.Token, error) {
	var b strings.Builder

	if r, _ := s.src.Peek(); r == '0' && (peekIs(s.src, 1, 'x') || peekIs(s.src, 1, 'X')) {
		b.WriteRune(s.mustAdvance())
		b.WriteRune(s.mustAdvance())
		start := b.Len()
		for isHexDigit(s.src) {
			b.WriteRune(s.mustAdvance())
		}
		if b.Len() == start {
			return token.Token{}, s.errAt(pos, diagnostic.CodeMalformedNumber, "malformed hexadecimal literal")
		}
		return token.Token{Kind: token.IntLiteral, Spelling: b.String(), Pos: pos}, nil
	}

	isFloat := false
	for isDigitRune(s.src) {
		b.WriteRune(s.mustAdvance())
	}
	if r, ok := s.src.Peek(); ok && r == '.' {
		isFloat = true
		b.WriteRune(s.mustAdvance())
		for isDigitRune(s.src) {
			b.WriteRune(s.mustAdvance())
		}
	}
	if r, ok := s.src.Peek(); ok && (r == 'e' || r == 'E') {
		la, ok2 := s.src.PeekAt(1)
		digitsAhead := ok2 && unicode.IsDigit(la)
		signAhead := ok2 && (la == '+' || la == '-') && isDigitAt(s.src, 2)
		if digitsAhead || signAhead {
			isFloat = true
			b.WriteRune(s.mustAdvance())
			if r, ok := s.src.Peek(); ok && (r == '+' || r == '-') {
				b.WriteRune(s.mustAdvance())
			}
			for isDigitRune(s.src) {
				b.WriteRune(s.mustAdvance())
			}
		}
	}
	if r, ok := s.src.Peek(); ok && strings.ContainsRune("fFhH", r) {
		isFloat = true
		b.WriteRune(s.mustAdvance())
	}

	kind := token.IntLiteral
	if isFloat {
		kind = token.FloatLiteral
	}
	return token.Token{Kind: kind, Spelling: b.String(), Pos: pos}, nil
}

func isDigitRune(src *source.SourceCode) bool {
	r, ok := src.Peek()
	return ok && unicode.IsDigit(r)
}

func isHexDigit(src *source.SourceCode) bool {
	r, ok := src.Peek()
	if !ok {
		return false
	}
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (s *Scanner) mustAdvance() rune {
	r, _ := s.src.Advance()
	return r
}

// twoCharOps maps two-character operator spellings to their kind. Anything
// not found here falls back to a one-character lookup or failure.
var twoCharOps = map[string]token.Kind{
	"+=": token.AssignOp, "-=": token.AssignOp, "*=": token.AssignOp,
	"/=": token.AssignOp, "%=": token.AssignOp, "&=": token.AssignOp,
	"|=": token.AssignOp, "^=": token.AssignOp,
	"==": token.BinaryOp, "!=": token.BinaryOp,
	"<=": token.BinaryOp, ">=": token.BinaryOp,
	"&&": token.BinaryOp, "||": token.BinaryOp,
	"<<": token.BinaryOp, ">>": token.BinaryOp,
	"++": token.UnaryOp, "--": token.UnaryOp,
}

var threeCharOps = map[string]token.Kind{
	"<<=": token.AssignOp, ">>=": token.AssignOp,
}

var oneCharOps = map[rune]token.Kind{
	'=': token.AssignOp,
	'+': token.BinaryOp, '-': token.BinaryOp, '*': token.BinaryOp,
	'/': token.BinaryOp, '%': token.BinaryOp,
	'<': token.BinaryOp, '>': token.BinaryOp,
	'&': token.BinaryOp, '|': token.BinaryOp, '^': token.BinaryOp,
	'!': token.UnaryOp, '~': token.UnaryOp,
	'?': token.TernaryOp,
}

var punct = map[rune]token.Kind{
	'(': token.LBracket, ')': token.RBracket,
	'{': token.LCurly, '}': token.RCurly,
	'[': token.LParen, ']': token.RParen,
	',': token.Comma, ';': token.Semicolon,
	':': token.Colon, '.': token.Dot,
}

// scanOperatorOrPunct scans exactly one operator or punctuation token,
// preferring the longest matching spelling (three characters, then two,
// then one) before falling back to single-character punctuation.
func (s *Scanner) scanOperatorOrPunct(pos source.SourcePos) (token.Token, error) {
	r0, _ := s.src.Peek()
	r1, hasR1 := s.src.PeekAt(1)
	r2, hasR2 := s.src.PeekAt(2)

	if hasR2 {
		three := string([]rune{r0, r1, r2})
		if kind, ok := threeCharOps[three]; ok {
			s.src.Advance()
			s.src.Advance()
			s.src.Advance()
			return token.Token{Kind: kind, Spelling: three, Pos: pos}, nil
		}
	}
	if hasR1 {
		two := string([]rune{r0, r1})
		if kind, ok := twoCharOps[two]; ok {
			s.src.Advance()
			s.src.Advance()
			return token.Token{Kind: kind, Spelling: two, Pos: pos}, nil
		}
	}
	if kind, ok := punct[r0]; ok {
		s.src.Advance()
		return token.Token{Kind: kind, Spelling: string(r0), Pos: pos}, nil
	}
	if kind, ok := oneCharOps[r0]; ok {
		s.src.Advance()
		return token.Token{Kind: kind, Spelling: string(r0), Pos: pos}, nil
	}
	s.src.Advance()
	return token.Token{}, s.errAt(pos, diagnostic.CodeStrayByte, "unrecognized character "+string(r0))
}
