package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.hlsltranslate.org/parser.go/internal/source"
	"gopkg.hlsltranslate.org/parser.go/internal/token"
)

// scanAll drains a Scanner into every token it produces up to and
// including the terminal EndOfStream, failing the test on the first
// scan error.
func scanAll(t *testing.T, text string) []token.Token {
	t.Helper()
	src := source.FromString("<test>", text)
	s := New(src, "<test>")
	var toks []token.Token
	for {
		tok, err := s.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EndOfStream {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func spellings(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Spelling
	}
	return out
}

func TestScanKeywordsAndTypes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"scalar type", "float x;", []token.Kind{token.ScalarType, token.Ident, token.Semicolon, token.EndOfStream}},
		{"vector type", "float3 v;", []token.Kind{token.VectorType, token.Ident, token.Semicolon, token.EndOfStream}},
		{"matrix type", "float4x4 m;", []token.Kind{token.MatrixType, token.Ident, token.Semicolon, token.EndOfStream}},
		{"struct keyword", "struct Foo {};", []token.Kind{token.Struct, token.Ident, token.LCurly, token.RCurly, token.Semicolon, token.EndOfStream}},
		{"bool literal", "true", []token.Kind{token.BoolLiteral, token.EndOfStream}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, kinds(scanAll(t, test.src)))
		})
	}
}

func TestScanOperators(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"three char assign", "x <<= 1;", []token.Kind{token.Ident, token.AssignOp, token.IntLiteral, token.Semicolon, token.EndOfStream}},
		{"two char assign", "x += 1;", []token.Kind{token.Ident, token.AssignOp, token.IntLiteral, token.Semicolon, token.EndOfStream}},
		{"two char compare", "x == y", []token.Kind{token.Ident, token.BinaryOp, token.Ident, token.EndOfStream}},
		{"increment", "x++", []token.Kind{token.Ident, token.UnaryOp, token.EndOfStream}},
		{"unary minus then binary minus", "-x - y", []token.Kind{token.BinaryOp, token.Ident, token.BinaryOp, token.Ident, token.EndOfStream}},
		{"ternary", "a ? b : c", []token.Kind{token.Ident, token.TernaryOp, token.Ident, token.Colon, token.Ident, token.EndOfStream}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, kinds(scanAll(t, test.src)))
		})
	}
}

func TestScanLongestMatchPreferred(t *testing.T) {
	// ">>=" must scan as one AssignOp token, not ">>" followed by "=".
	toks := scanAll(t, "x >>= 1")
	require.Equal(t, []token.Kind{token.Ident, token.AssignOp, token.IntLiteral, token.EndOfStream}, kinds(toks))
	require.Equal(t, ">>=", toks[1].Spelling)
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind token.Kind
	}{
		{"int", "42", token.IntLiteral},
		{"hex", "0x1A", token.IntLiteral},
		{"float with fraction", "3.14", token.FloatLiteral},
		{"float with exponent", "1e10", token.FloatLiteral},
		{"float with signed exponent", "1e-10", token.FloatLiteral},
		{"float suffix", "1.0f", token.FloatLiteral},
		{"half suffix", "1.0h", token.FloatLiteral},
		{"leading-dot float", ".5", token.FloatLiteral},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			toks := scanAll(t, test.src)
			require.Equal(t, test.kind, toks[0].Kind)
			require.Equal(t, test.src, toks[0].Spelling)
		})
	}
}

func TestScanDirective(t *testing.T) {
	toks := scanAll(t, "#define FOO 1\nfloat x;")
	require.Equal(t, token.Directive, toks[0].Kind)
	require.Equal(t, "#define FOO 1", toks[0].Spelling)
	require.Equal(t, []token.Kind{token.Directive, token.ScalarType, token.Ident, token.Semicolon, token.EndOfStream}, kinds(toks))
}

func TestScanDirectiveLineContinuation(t *testing.T) {
	toks := scanAll(t, "#define FOO \\\n1")
	require.Equal(t, token.Directive, toks[0].Kind)
	require.Equal(t, "#define FOO  1", toks[0].Spelling)
}

func TestSkipComments(t *testing.T) {
	toks := scanAll(t, "// line comment\nfloat /* block\ncomment */ x;")
	require.Equal(t, []token.Kind{token.ScalarType, token.Ident, token.Semicolon, token.EndOfStream}, kinds(toks))
}

func TestUnterminatedBlockCommentFails(t *testing.T) {
	src := source.FromString("<test>", "/* never closes")
	s := New(src, "<test>")
	_, err := s.Next()
	require.Error(t, err)
}

func TestUnrecognizedByteFails(t *testing.T) {
	src := source.FromString("<test>", "$")
	s := New(src, "<test>")
	_, err := s.Next()
	require.Error(t, err)
}

func TestEndOfStreamIsIdempotent(t *testing.T) {
	src := source.FromString("<test>", "")
	s := New(src, "<test>")
	for i := 0; i < 3; i++ {
		tok, err := s.Next()
		require.NoError(t, err)
		require.Equal(t, token.EndOfStream, tok.Kind)
	}
}

func TestPunctuationSwappedNaming(t *testing.T) {
	// "(" is LBracket and "[" is LParen — the scanner's intentionally
	// swapped punctuation naming, preserved from the original translator.
	toks := scanAll(t, "( [ { } ] )")
	require.Equal(t, []token.Kind{
		token.LBracket, token.LParen, token.LCurly,
		token.RCurly, token.RParen, token.RBracket,
		token.EndOfStream,
	}, kinds(toks))
}

func TestSpellingsPreserved(t *testing.T) {
	toks := scanAll(t, "foo_bar123")
	require.Equal(t, []string{"foo_bar123", ""}, spellings(toks))
}
