package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.hlsltranslate.org/parser.go/internal/source"
)

func pos(line, col uint32) source.SourcePos {
	return source.SourcePos{Line: line, Column: col}
}

func TestKindStringMatchesTable(t *testing.T) {
	require.Equal(t, "Program", KindProgram.String())
	require.Equal(t, "VarDeclStmnt", KindVarDeclStmnt.String())
	require.Equal(t, "FunctionCall", KindFunctionCall.String())
}

func TestKindStringUnknownIsInvalid(t *testing.T) {
	require.Equal(t, "Invalid", Kind(0).String())
	require.Equal(t, "Invalid", Kind(9999).String())
}

func TestVarTypeSymbolRefBaseType(t *testing.T) {
	vt := NewVarTypeBase(pos(1, 1), "float3")
	require.Equal(t, "float3", vt.BaseType)
	require.Nil(t, vt.SymbolRef())
}

func TestVarTypeSymbolRefStructType(t *testing.T) {
	st := NewStructure(pos(1, 1), "Light", nil)
	vt := NewVarTypeStruct(pos(1, 1), st)
	require.Equal(t, "", vt.BaseType)
	require.Same(t, st, vt.SymbolRef())
}

func TestVarIdentHasNext(t *testing.T) {
	leaf := NewVarIdent(pos(1, 5), "y", nil, nil)
	require.False(t, leaf.HasNext())

	root := NewVarIdent(pos(1, 1), "x", nil, leaf)
	require.True(t, root.HasNext())
	require.Same(t, leaf, root.Next)
}

func TestNewVarDeclStmntWiresBackReference(t *testing.T) {
	a := NewVarDecl(pos(1, 1), "a", nil, nil, nil)
	b := NewVarDecl(pos(1, 4), "b", nil, nil, nil)

	vt := NewVarTypeBase(pos(1, 1), "float")
	stmnt := NewVarDeclStmnt(pos(1, 1), "", nil, nil, vt, []*VarDecl{a, b})

	require.Same(t, stmnt, a.DeclStmntRef)
	require.Same(t, stmnt, b.DeclStmntRef)
}

func TestVarDeclHasNoBackReferenceBeforeWiring(t *testing.T) {
	// A VarDecl built for use as a struct member (never wrapped in a
	// VarDeclStmnt) keeps a nil DeclStmntRef — invariant P2 says non-nil
	// "exactly when this VarDecl is a direct child of a VarDeclStmnt".
	d := NewVarDecl(pos(1, 1), "member", nil, nil, nil)
	require.Nil(t, d.DeclStmntRef)
}

func TestFunctionDeclIsPrototype(t *testing.T) {
	proto := NewFunctionDecl(pos(1, 1), nil, NewVarTypeBase(pos(1, 1), "void"), "f", nil, "", nil)
	require.True(t, proto.IsPrototype())

	withBody := NewFunctionDecl(pos(1, 1), nil, NewVarTypeBase(pos(1, 1), "void"), "f", nil, "", NewCodeBlock(pos(1, 10), nil))
	require.False(t, withBody.IsPrototype())
}

func TestEveryNodeCarriesItsOwnPosition(t *testing.T) {
	p := pos(4, 9)
	n := NewNullStmnt(p)
	require.Equal(t, p, n.Pos())
	require.True(t, n.Pos().IsValid())
}

func TestGlobalDeclMarkerAssertions(t *testing.T) {
	var decls []GlobalDecl
	decls = append(decls,
		NewFunctionDecl(pos(1, 1), nil, NewVarTypeBase(pos(1, 1), "void"), "f", nil, "", nil),
		NewUniformBufferDecl(pos(1, 1), "cbuffer", "Globals", "", nil),
		NewTextureDecl(pos(1, 1), "texture2d", "float4", nil),
		NewSamplerDecl(pos(1, 1), "samplerstate", nil),
		NewStructDecl(pos(1, 1), NewStructure(pos(1, 1), "S", nil)),
		NewDirectiveDecl(pos(1, 1), "#define FOO 1"),
	)
	require.Len(t, decls, 6)
	for _, d := range decls {
		require.True(t, d.Pos().IsValid())
	}
}

func TestStmntMarkerAssertions(t *testing.T) {
	var stmnts []Stmnt
	stmnts = append(stmnts,
		NewNullStmnt(pos(1, 1)),
		NewCtrlTransferStmnt(pos(1, 1), "break"),
		NewReturnStmnt(pos(1, 1), nil),
	)
	require.Len(t, stmnts, 3)
}

func TestExprMarkerAssertions(t *testing.T) {
	var exprs []Expr
	exprs = append(exprs,
		NewListExpr(pos(1, 1), nil),
		NewTypeNameExpr(pos(1, 1), "float3"),
	)
	require.Len(t, exprs, 2)
}

func TestProgramHoldsOrderedDecls(t *testing.T) {
	a := NewDirectiveDecl(pos(1, 1), "#define A 1")
	b := NewDirectiveDecl(pos(2, 1), "#define B 2")
	prog := NewProgram(pos(1, 1), []GlobalDecl{a, b})
	require.Equal(t, []GlobalDecl{a, b}, prog.Decls)
}
