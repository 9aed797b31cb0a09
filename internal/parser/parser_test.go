package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.hlsltranslate.org/parser.go/internal/ast"
	"gopkg.hlsltranslate.org/parser.go/internal/logger"
	"gopkg.hlsltranslate.org/parser.go/internal/source"
)

func mustParse(t *testing.T, text string) *ast.Program {
	t.Helper()
	src := source.FromString("<test>", text)
	prog, err := New(logger.NullLogger{}).Parse(src)
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

func TestParseEmptyProgram(t *testing.T) {
	prog := mustParse(t, "")
	require.Empty(t, prog.Decls)
}

func TestParseFunctionPrototypeAndDefinition(t *testing.T) {
	prog := mustParse(t, `
		float4 main(float3 pos : POSITION) : SV_POSITION;
		float4 main(float3 pos : POSITION) : SV_POSITION { return pos; }
	`)
	require.Len(t, prog.Decls, 2)

	proto, ok := prog.Decls[0].(*ast.FunctionDecl)
	require.True(t, ok)
	require.True(t, proto.IsPrototype())
	require.Equal(t, "main", proto.Name)
	require.Len(t, proto.Params, 1)
	require.Equal(t, "POSITION", proto.Params[0].VarDecls[0].Semantics[0].Semantic)
	require.Equal(t, "SV_POSITION", proto.Semantic)

	def, ok := prog.Decls[1].(*ast.FunctionDecl)
	require.True(t, ok)
	require.False(t, def.IsPrototype())
	require.Len(t, def.Body.Stmnts, 1)
}

func TestParseUniformBufferDecl(t *testing.T) {
	prog := mustParse(t, `
		cbuffer Globals : register(b0) {
			float4x4 worldViewProj;
			float3 lightDir;
		}
	`)
	require.Len(t, prog.Decls, 1)
	buf, ok := prog.Decls[0].(*ast.UniformBufferDecl)
	require.True(t, ok)
	require.Equal(t, "cbuffer", buf.BufferType)
	require.Equal(t, "Globals", buf.Name)
	require.Equal(t, "b0", buf.Register)
	require.Len(t, buf.Members, 2)
}

func TestParseTextureAndSamplerDecl(t *testing.T) {
	// The keyword tables are lowercase (spec.md §4.1, case-sensitive), so
	// the recognized spellings are "texture2d"/"samplerstate" rather than
	// HLSL's conventional "Texture2D"/"SamplerState" capitalization.
	prog := mustParse(t, `
		texture2d diffuseTex : register(t0);
		samplerstate diffuseSampler : register(s0);
	`)
	require.Len(t, prog.Decls, 2)
	tex, ok := prog.Decls[0].(*ast.TextureDecl)
	require.True(t, ok)
	require.Equal(t, "texture2d", tex.TextureType)
	require.Len(t, tex.Idents, 1)
	require.Equal(t, "diffuseTex", tex.Idents[0].Ident)
	require.Equal(t, "t0", tex.Idents[0].Register)

	samp, ok := prog.Decls[1].(*ast.SamplerDecl)
	require.True(t, ok)
	require.Equal(t, "samplerstate", samp.SamplerType)
	require.Equal(t, "diffuseSampler", samp.Idents[0].Ident)
}

func TestParseTextureDeclWithGenericColorType(t *testing.T) {
	prog := mustParse(t, `texture2d tex;`)
	tex := prog.Decls[0].(*ast.TextureDecl)
	require.Equal(t, "", tex.ColorType)

	prog = mustParse(t, `texture2d<float4> tex;`)
	tex = prog.Decls[0].(*ast.TextureDecl)
	require.Equal(t, "float4", tex.ColorType)
}

func TestParseStructDecl(t *testing.T) {
	prog := mustParse(t, `
		struct VSOutput {
			float4 pos : SV_POSITION;
			float2 uv : TEXCOORD0;
		};
	`)
	decl, ok := prog.Decls[0].(*ast.StructDecl)
	require.True(t, ok)
	require.Equal(t, "VSOutput", decl.Struct.Name)
	require.Len(t, decl.Struct.Members, 2)
}

func TestParseDirectiveDecl(t *testing.T) {
	prog := mustParse(t, "#define MAX_LIGHTS 4\nfloat4 main() { return 0; }")
	require.Len(t, prog.Decls, 2)
	dir, ok := prog.Decls[0].(*ast.DirectiveDecl)
	require.True(t, ok)
	require.Equal(t, "#define MAX_LIGHTS 4", dir.Line)
}

// --- spec.md §4.3.1 grammar disambiguation cases ---

func parseFirstStmnt(t *testing.T, body string) ast.Stmnt {
	t.Helper()
	prog := mustParse(t, "void main() {"+body+"}")
	fn := prog.Decls[0].(*ast.FunctionDecl)
	require.NotEmpty(t, fn.Body.Stmnts)
	return fn.Body.Stmnts[0]
}

func TestDisambiguateIdentLedVarDecl(t *testing.T) {
	// "TypeName varName;" — a user type name followed by another
	// identifier is a var declaration.
	stmnt := parseFirstStmnt(t, "MyStruct s;")
	decl, ok := stmnt.(*ast.VarDeclStmnt)
	require.True(t, ok)
	require.Equal(t, "MyStruct", decl.VarType.BaseType)
	require.Equal(t, "s", decl.VarDecls[0].Name)
}

func TestDisambiguateIdentLedFunctionCallStmnt(t *testing.T) {
	// "ident(...)" is a function-call statement.
	stmnt := parseFirstStmnt(t, "DoSomething(1, 2);")
	call, ok := stmnt.(*ast.FunctionCallStmnt)
	require.True(t, ok)
	require.Equal(t, "DoSomething", call.Call.Name.Ident)
	require.Len(t, call.Call.Args, 2)
}

func TestDisambiguateDottedMethodCallStmnt(t *testing.T) {
	// "tex.Sample(s, uv);" is a function-call statement whose callee is
	// the full dotted VarIdent chain, not just the leading "tex" — a
	// texture/sampler method intrinsic like this is unparseable unless
	// the full chain is parsed before branching on '('.
	stmnt := parseFirstStmnt(t, "tex.Sample(s, uv);")
	call, ok := stmnt.(*ast.FunctionCallStmnt)
	require.True(t, ok)
	require.Equal(t, "tex", call.Call.Name.Ident)
	require.True(t, call.Call.Name.HasNext())
	require.Equal(t, "Sample", call.Call.Name.Next.Ident)
	require.Len(t, call.Call.Args, 2)
}

func TestDisambiguateIndexedDottedMethodCallStmnt(t *testing.T) {
	stmnt := parseFirstStmnt(t, "arr[0].Load(1);")
	call, ok := stmnt.(*ast.FunctionCallStmnt)
	require.True(t, ok)
	require.Equal(t, "arr", call.Call.Name.Ident)
	require.Len(t, call.Call.Name.ArrayIndices, 1)
	require.True(t, call.Call.Name.HasNext())
	require.Equal(t, "Load", call.Call.Name.Next.Ident)
}

func TestDisambiguateDottedMethodCallExpr(t *testing.T) {
	// Same disambiguation, but reached through an expression position
	// (the assignment's right-hand side) rather than a bare statement.
	stmnt := parseFirstStmnt(t, "x = obj.Load(i);")
	assign, ok := stmnt.(*ast.AssignStmnt)
	require.True(t, ok)
	call, ok := assign.Expr.(*ast.FunctionCallExpr)
	require.True(t, ok)
	require.Equal(t, "obj", call.Call.Name.Ident)
	require.True(t, call.Call.Name.HasNext())
	require.Equal(t, "Load", call.Call.Name.Next.Ident)
	require.Len(t, call.Call.Args, 1)
}

func TestDisambiguateIdentLedAssignStmnt(t *testing.T) {
	stmnt := parseFirstStmnt(t, "x = 1;")
	assign, ok := stmnt.(*ast.AssignStmnt)
	require.True(t, ok)
	require.Equal(t, "x", assign.VarIdent.Ident)
	require.Equal(t, "=", assign.Op)
}

func TestDisambiguateIdentLedDottedAssignStmnt(t *testing.T) {
	stmnt := parseFirstStmnt(t, "output.color = x;")
	assign, ok := stmnt.(*ast.AssignStmnt)
	require.True(t, ok)
	require.Equal(t, "output", assign.VarIdent.Ident)
	require.True(t, assign.VarIdent.HasNext())
	require.Equal(t, "color", assign.VarIdent.Next.Ident)
}

func TestDisambiguateIdentLedIndexedAssignStmnt(t *testing.T) {
	stmnt := parseFirstStmnt(t, "arr[0] += 1;")
	assign, ok := stmnt.(*ast.AssignStmnt)
	require.True(t, ok)
	require.Equal(t, "arr", assign.VarIdent.Ident)
	require.Len(t, assign.VarIdent.ArrayIndices, 1)
	require.Equal(t, "+=", assign.Op)
}

func TestDisambiguateIdentLedPostfixIncrement(t *testing.T) {
	stmnt := parseFirstStmnt(t, "x++;")
	exprStmnt, ok := stmnt.(*ast.ExprStmnt)
	require.True(t, ok)
	post, ok := exprStmnt.Expr.(*ast.PostUnaryExpr)
	require.True(t, ok)
	require.Equal(t, "++", post.Op)
	access, ok := post.Expr.(*ast.VarAccessExpr)
	require.True(t, ok)
	require.Equal(t, "x", access.VarIdent.Ident)
}

func TestDisambiguateCastExpr(t *testing.T) {
	stmnt := parseFirstStmnt(t, "float y = (float)x;")
	decl := stmnt.(*ast.VarDeclStmnt)
	cast, ok := decl.VarDecls[0].Initializer.(*ast.CastExpr)
	require.True(t, ok)
	typeExpr, ok := cast.TypeExpr.(*ast.TypeNameExpr)
	require.True(t, ok)
	require.Equal(t, "float", typeExpr.TypeName)
}

func TestDisambiguateBracketExprNotCast(t *testing.T) {
	stmnt := parseFirstStmnt(t, "float y = (x + 1);")
	decl := stmnt.(*ast.VarDeclStmnt)
	_, ok := decl.VarDecls[0].Initializer.(*ast.BracketExpr)
	require.True(t, ok)
}

func TestDisambiguateCastOfUserTypeName(t *testing.T) {
	// "(ident)x" is a cast only when ident, standing alone in parens, looks
	// like a type form (a bare VarAccessExpr with no chained assignment)
	// AND what follows can start a primary expression.
	stmnt := parseFirstStmnt(t, "float y = (MyStruct)x;")
	decl := stmnt.(*ast.VarDeclStmnt)
	_, ok := decl.VarDecls[0].Initializer.(*ast.CastExpr)
	require.True(t, ok)
}

func TestDisambiguateStructDeclStmnt(t *testing.T) {
	stmnt := parseFirstStmnt(t, "struct Inner { float x; };")
	decl, ok := stmnt.(*ast.StructDeclStmnt)
	require.True(t, ok)
	require.Equal(t, "Inner", decl.Struct.Name)
}

func TestDisambiguateStructTypedVarDeclStmnt(t *testing.T) {
	// A statement-position struct always names itself (parseStructure
	// requires an Ident); the trailing-';' check is what decides whether
	// that name is a bare declaration or the type of a declarator list.
	stmnt := parseFirstStmnt(t, "struct Inner { float x; } s;")
	decl, ok := stmnt.(*ast.VarDeclStmnt)
	require.True(t, ok)
	require.Equal(t, "", decl.VarType.BaseType)
	require.NotNil(t, decl.VarType.StructType)
	require.Equal(t, "Inner", decl.VarType.StructType.Name)
	require.Equal(t, "s", decl.VarDecls[0].Name)
}

func TestDisambiguateConstructorCallExpr(t *testing.T) {
	stmnt := parseFirstStmnt(t, "float3 v = float3(1, 2, 3);")
	decl := stmnt.(*ast.VarDeclStmnt)
	call, ok := decl.VarDecls[0].Initializer.(*ast.FunctionCallExpr)
	require.True(t, ok)
	require.Equal(t, "float3", call.Call.Name.Ident)
	require.Len(t, call.Call.Args, 3)
}

func TestDisambiguateBareTypeNameExpr(t *testing.T) {
	// Not immediately followed by '(': a bare TypeNameExpr, e.g. as used by
	// some intrinsic-style calls that take a type as their first argument.
	stmnt := parseFirstStmnt(t, "x = float;")
	assign := stmnt.(*ast.AssignStmnt)
	typeExpr, ok := assign.Expr.(*ast.TypeNameExpr)
	require.True(t, ok)
	require.Equal(t, "float", typeExpr.TypeName)
}

// --- control-flow and expression shape ---

func TestParseForLoop(t *testing.T) {
	stmnt := parseFirstStmnt(t, "for (int i = 0; i < 10; i++) { x = i; }")
	loop, ok := stmnt.(*ast.ForLoopStmnt)
	require.True(t, ok)
	init, ok := loop.Init.(*ast.VarDeclStmnt)
	require.True(t, ok)
	require.Equal(t, "i", init.VarDecls[0].Name)
	require.NotNil(t, loop.Condition)
	require.NotNil(t, loop.Increment)
}

func TestParseIfElse(t *testing.T) {
	stmnt := parseFirstStmnt(t, "if (x > 0) { y = 1; } else { y = 0; }")
	ifStmnt, ok := stmnt.(*ast.IfStmnt)
	require.True(t, ok)
	require.NotNil(t, ifStmnt.Else)
}

func TestParseSwitch(t *testing.T) {
	stmnt := parseFirstStmnt(t, "switch (x) { case 1: y = 1; break; default: y = 0; break; }")
	sw, ok := stmnt.(*ast.SwitchStmnt)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
	require.Nil(t, sw.Cases[1].Expr)
}

func TestParseAttributedLoop(t *testing.T) {
	stmnt := parseFirstStmnt(t, "[unroll(4)] for (int i = 0; i < 4; i++) { x = i; }")
	loop, ok := stmnt.(*ast.ForLoopStmnt)
	require.True(t, ok)
	require.Len(t, loop.Attribs, 1)
	require.Equal(t, "unroll", loop.Attribs[0].Name.Ident)
	require.Len(t, loop.Attribs[0].Args, 1)
}

func TestParseBinaryExprIsFlatChain(t *testing.T) {
	// spec.md §4.3.1 "Expression chaining": no precedence climbing, so
	// "a + b * c" parses as a flat left-associative chain, not
	// "a + (b * c)".
	stmnt := parseFirstStmnt(t, "x = a + b * c;")
	assign := stmnt.(*ast.AssignStmnt)
	outer, ok := assign.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "*", outer.Op)
	inner, ok := outer.LHS.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", inner.Op)
}

func TestParseUnaryMinusVsBinaryMinus(t *testing.T) {
	stmnt := parseFirstStmnt(t, "x = -a - b;")
	assign := stmnt.(*ast.AssignStmnt)
	outer, ok := assign.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "-", outer.Op)
	neg, ok := outer.LHS.(*ast.UnaryExpr)
	require.True(t, ok)
	require.Equal(t, "-", neg.Op)
}

func TestParseTernaryExpr(t *testing.T) {
	stmnt := parseFirstStmnt(t, "x = a ? b : c;")
	assign := stmnt.(*ast.AssignStmnt)
	_, ok := assign.Expr.(*ast.TernaryExpr)
	require.True(t, ok)
}

func TestParseInitializerExpr(t *testing.T) {
	stmnt := parseFirstStmnt(t, "float3 v = {1, 2, 3};")
	decl := stmnt.(*ast.VarDeclStmnt)
	init, ok := decl.VarDecls[0].Initializer.(*ast.InitializerExpr)
	require.True(t, ok)
	require.Len(t, init.Exprs, 3)
}

func TestParseArrayDeclaration(t *testing.T) {
	stmnt := parseFirstStmnt(t, "float values[4];")
	decl := stmnt.(*ast.VarDeclStmnt)
	require.Len(t, decl.VarDecls[0].ArrayDims, 1)
}

func TestParseRegisterAndPackOffsetSemantics(t *testing.T) {
	prog := mustParse(t, `
		cbuffer Globals {
			float4 a : packoffset(c0);
			float4 b : packoffset(c1.x);
		}
	`)
	buf := prog.Decls[0].(*ast.UniformBufferDecl)
	po0 := buf.Members[0].VarDecls[0].Semantics[0].PackOffset
	require.Equal(t, "c0", po0.RegisterName)
	require.Equal(t, "", po0.VectorComponent)
	po1 := buf.Members[1].VarDecls[0].Semantics[0].PackOffset
	require.Equal(t, "c1", po1.RegisterName)
	require.Equal(t, "x", po1.VectorComponent)
}

// --- failure / no-recovery behavior (spec.md §7) ---

func TestParseAbortsOnFirstError(t *testing.T) {
	src := source.FromString("<test>", "float x = ;")
	prog, err := New(logger.NullLogger{}).Parse(src)
	require.Error(t, err)
	require.Nil(t, prog)
}

func TestParseUnterminatedStatementFails(t *testing.T) {
	src := source.FromString("<test>", "void main() { x = 1 }")
	_, err := New(logger.NullLogger{}).Parse(src)
	require.Error(t, err)
}
