package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"gopkg.hlsltranslate.org/parser.go/internal/ast"
	"gopkg.hlsltranslate.org/parser.go/internal/logger"
	"gopkg.hlsltranslate.org/parser.go/internal/source"
	"gopkg.hlsltranslate.org/parser.go/internal/token"
)

// ignoreUnexported tells go-cmp to skip every node's embedded position
// field, following the eaburns-pea_old convention of listing every
// compared struct type up front rather than reaching for a blanket
// cmp.Exporter — every ast node type a test here might traverse needs an
// entry, since cmp.Diff panics on an unexported field it hasn't been told
// about.
var ignoreUnexported = cmpopts.IgnoreUnexported(
	ast.Program{}, ast.CodeBlock{},
	ast.FunctionDecl{}, ast.UniformBufferDecl{}, ast.TextureDecl{},
	ast.SamplerDecl{}, ast.StructDecl{}, ast.DirectiveDecl{}, ast.Structure{},
	ast.BufferDeclIdent{}, ast.FunctionCall{},
	ast.NullStmnt{}, ast.DirectiveStmnt{}, ast.CodeBlockStmnt{},
	ast.ForLoopStmnt{}, ast.WhileLoopStmnt{}, ast.DoWhileLoopStmnt{},
	ast.IfStmnt{}, ast.ElseStmnt{}, ast.SwitchStmnt{}, ast.SwitchCase{},
	ast.VarDeclStmnt{}, ast.AssignStmnt{}, ast.ExprStmnt{},
	ast.FunctionCallStmnt{}, ast.ReturnStmnt{}, ast.StructDeclStmnt{},
	ast.CtrlTransferStmnt{},
	ast.ListExpr{}, ast.LiteralExpr{}, ast.TypeNameExpr{}, ast.TernaryExpr{},
	ast.BinaryExpr{}, ast.UnaryExpr{}, ast.PostUnaryExpr{},
	ast.FunctionCallExpr{}, ast.BracketExpr{}, ast.CastExpr{},
	ast.VarAccessExpr{}, ast.InitializerExpr{},
	ast.VarType{}, ast.VarIdent{}, ast.VarDecl{}, ast.VarSemantic{},
	ast.PackOffset{},
)

func parseProgram(t *testing.T, text string) *ast.Program {
	t.Helper()
	src := source.FromString("<test>", text)
	prog, err := New(logger.NullLogger{}).Parse(src)
	require.NoError(t, err)
	return prog
}

func TestParseIsDeterministicAcrossRuns(t *testing.T) {
	const text = `
		cbuffer Globals : register(b0) {
			float4x4 viewProj;
			float3 lightDir;
		};
		texture2d<float4> diffuseTex : register(t0);
		samplerstate diffuseSampler : register(s0);

		float4 main(float3 normal : NORMAL, float2 uv : TEXCOORD0) : SV_TARGET {
			float4 color = diffuseTex.Sample(diffuseSampler, uv);
			if (color.a < 0.5) {
				discard;
			}
			return color * dot(normal, lightDir);
		}
	`
	first := parseProgram(t, text)
	second := parseProgram(t, text)

	if diff := cmp.Diff(first, second, ignoreUnexported); diff != "" {
		t.Errorf("parsing the same source twice produced different trees (-first +second):\n%s", diff)
	}
}

func TestParseMatchesHandBuiltTree(t *testing.T) {
	const text = "float4 main() { return 0; }"
	got := parseProgram(t, text)

	var zero source.SourcePos
	retType := ast.NewVarTypeBase(zero, "float4")
	body := ast.NewCodeBlock(zero, []ast.Stmnt{
		ast.NewReturnStmnt(zero, ast.NewLiteralExpr(zero, token.IntLiteral, "0")),
	})
	fn := ast.NewFunctionDecl(zero, nil, retType, "main", nil, "", body)
	want := ast.NewProgram(zero, []ast.GlobalDecl{fn})

	if diff := cmp.Diff(want, got, ignoreUnexported); diff != "" {
		t.Errorf("parsed tree did not match the hand-built expected tree (-want +got):\n%s", diff)
	}
}
