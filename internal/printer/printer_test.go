package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eaburns/pretty"
	"github.com/stretchr/testify/require"

	"gopkg.hlsltranslate.org/parser.go/internal/logger"
	"gopkg.hlsltranslate.org/parser.go/internal/parser"
	"gopkg.hlsltranslate.org/parser.go/internal/source"
)

func printLines(t *testing.T, text string) []string {
	t.Helper()
	src := source.FromString("<test>", text)
	prog, err := parser.New(logger.NullLogger{}).Parse(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	Print(prog, logger.NewStdLogger(&buf))
	out := strings.TrimRight(buf.String(), "\n")
	return strings.Split(out, "\n")
}

func TestPrintEmitsOneLinePerNode(t *testing.T) {
	lines := printLines(t, "float4 main() { return 0; }")
	require.Contains(t, lines[0], "Program")
	foundFn, foundReturn, foundLiteral := false, false, false
	for _, l := range lines {
		if strings.Contains(l, "FunctionDecl") {
			foundFn = true
		}
		if strings.Contains(l, "ReturnStmnt") {
			foundReturn = true
		}
		if strings.Contains(l, "LiteralExpr") {
			foundLiteral = true
		}
	}
	require.True(t, foundFn)
	require.True(t, foundReturn)
	require.True(t, foundLiteral)
}

func TestPrintIndentsChildren(t *testing.T) {
	lines := printLines(t, "float4 main() { return 0; }")
	var programLine, fnLine, returnLine string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Program"):
			programLine = l
		case strings.Contains(l, "FunctionDecl"):
			fnLine = l
		case strings.Contains(l, "ReturnStmnt"):
			returnLine = l
		}
	}
	require.True(t, strings.HasPrefix(programLine, "Program"))
	require.True(t, strings.HasPrefix(fnLine, "  "), "FunctionDecl should be indented one level: %q", fnLine)
	require.True(t, strings.HasPrefix(returnLine, "    "), "ReturnStmnt should be indented two levels: %q", returnLine)
}

func TestPrintCarriesInfoString(t *testing.T) {
	// A Program at the top level can't directly contain statements; wrap
	// in a function body instead.
	lines := printLines(t, "void main() { break; continue; }")
	foundBreak, foundContinue := false, false
	for _, l := range lines {
		if strings.Contains(l, "CtrlTransferStmnt") && strings.Contains(l, `"break"`) {
			foundBreak = true
		}
		if strings.Contains(l, "CtrlTransferStmnt") && strings.Contains(l, `"continue"`) {
			foundContinue = true
		}
	}
	require.True(t, foundBreak)
	require.True(t, foundContinue)
}

func TestPrintAssignStmntWalksVarIdentAndExpr(t *testing.T) {
	// Printer.VisitAssignStmnt deliberately walks both VarIdent and Expr
	// (and carries the op as its info string) rather than only the Expr
	// side — see DESIGN.md for why this departs from the narrowest
	// possible reading of the original ASTPrinter::VisitAssignStmnt.
	lines := printLines(t, "void main() { x = 1; }")
	foundAssign, foundVarIdent, foundLiteral := false, false, false
	for _, l := range lines {
		if strings.Contains(l, "AssignStmnt") && strings.Contains(l, `"="`) {
			foundAssign = true
		}
		if strings.Contains(l, "VarIdent") {
			foundVarIdent = true
		}
		if strings.Contains(l, "LiteralExpr") {
			foundLiteral = true
		}
	}
	require.True(t, foundAssign)
	require.True(t, foundVarIdent)
	require.True(t, foundLiteral)
}

func TestPrintNullLoggerDiscardsOutput(t *testing.T) {
	// Print must not panic when logger.Logger is the no-op default.
	src := source.FromString("<test>", "void main() {}")
	prog, err := parser.New(logger.NullLogger{}).Parse(src)
	require.NoError(t, err)
	require.NotPanics(t, func() {
		Print(prog, logger.NullLogger{})
	})
}

func TestPrettyDumpOfParsedTreeIsStable(t *testing.T) {
	// Snapshot-style check grounded on eaburns-pea_old's pretty.String(mod)
	// debug-dump idiom: rendering the same parsed tree twice must produce
	// byte-identical text, since a Printer/Walk traversal that mutated
	// anything (or that depended on map iteration order) would make the
	// dump unstable between runs.
	const text = `
		texture2d<float4> tex : register(t0);
		samplerstate samp : register(s0);

		float4 main(float2 uv : TEXCOORD0) : SV_TARGET {
			float4 color = tex.Sample(samp, uv);
			return color;
		}
	`
	src := source.FromString("<test>", text)
	prog, err := parser.New(logger.NullLogger{}).Parse(src)
	require.NoError(t, err)

	first := pretty.String(prog)
	second := pretty.String(prog)
	require.NotEmpty(t, first)
	require.Equal(t, first, second)
}

var _ Visitor = (*Printer)(nil)
