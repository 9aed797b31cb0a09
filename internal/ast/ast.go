// Package ast defines the HLSL abstract syntax tree (spec.md §3.3). Every
// node family is a concrete struct embedding astNode for its position; the
// marker-interface-per-family pattern (Node, Stmnt, Expr, GlobalDecl, ...)
// mirrors the teacher's ast_microglot.go tagged hierarchy, adapted from a
// single flat `node` marker to one marker per family so the parser's
// return types stay narrow (a statement production returns Stmnt, not
// Node).
package ast

import "gopkg.hlsltranslate.org/parser.go/internal/source"

// Kind is the discriminant tag every node carries (spec.md §3.3, closed set
// enumerated in §6.3). It exists alongside Go's own type switch machinery
// because the printer (internal/printer) renders it directly into its
// "Kind (L:C)" output lines, and tests compare it without needing a type
// assertion.
type Kind uint16

const (
	KindInvalid Kind = iota

	KindProgram
	KindCodeBlock

	KindFunctionDecl
	KindUniformBufferDecl
	KindTextureDecl
	KindSamplerDecl
	KindStructDecl
	KindDirectiveDecl

	KindStructure

	KindNullStmnt
	KindDirectiveStmnt
	KindCodeBlockStmnt
	KindForLoopStmnt
	KindWhileLoopStmnt
	KindDoWhileLoopStmnt
	KindIfStmnt
	KindElseStmnt
	KindSwitchStmnt
	KindSwitchCase
	KindVarDeclStmnt
	KindAssignStmnt
	KindExprStmnt
	KindFunctionCallStmnt
	KindReturnStmnt
	KindStructDeclStmnt
	KindCtrlTransferStmnt

	KindListExpr
	KindLiteralExpr
	KindTypeNameExpr
	KindTernaryExpr
	KindBinaryExpr
	KindUnaryExpr
	KindPostUnaryExpr
	KindFunctionCallExpr
	KindBracketExpr
	KindCastExpr
	KindVarAccessExpr
	KindInitializerExpr

	KindVarType
	KindVarIdent
	KindVarDecl
	KindVarSemantic
	KindPackOffset
	KindBufferDeclIdent
	KindFunctionCall
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Invalid"
}

var kindNames = map[Kind]string{
	KindProgram:           "Program",
	KindCodeBlock:         "CodeBlock",
	KindFunctionDecl:      "FunctionDecl",
	KindUniformBufferDecl: "UniformBufferDecl",
	KindTextureDecl:       "TextureDecl",
	KindSamplerDecl:       "SamplerDecl",
	KindStructDecl:        "StructDecl",
	KindDirectiveDecl:     "DirectiveDecl",
	KindStructure:         "Structure",
	KindNullStmnt:         "NullStmnt",
	KindDirectiveStmnt:    "DirectiveStmnt",
	KindCodeBlockStmnt:    "CodeBlockStmnt",
	KindForLoopStmnt:      "ForLoopStmnt",
	KindWhileLoopStmnt:    "WhileLoopStmnt",
	KindDoWhileLoopStmnt:  "DoWhileLoopStmnt",
	KindIfStmnt:           "IfStmnt",
	KindElseStmnt:         "ElseStmnt",
	KindSwitchStmnt:       "SwitchStmnt",
	KindSwitchCase:        "SwitchCase",
	KindVarDeclStmnt:      "VarDeclStmnt",
	KindAssignStmnt:       "AssignStmnt",
	KindExprStmnt:         "ExprStmnt",
	KindFunctionCallStmnt: "FunctionCallStmnt",
	KindReturnStmnt:       "ReturnStmnt",
	KindStructDeclStmnt:   "StructDeclStmnt",
	KindCtrlTransferStmnt: "CtrlTransferStmnt",
	KindListExpr:          "ListExpr",
	KindLiteralExpr:       "LiteralExpr",
	KindTypeNameExpr:      "TypeNameExpr",
	KindTernaryExpr:       "TernaryExpr",
	KindBinaryExpr:        "BinaryExpr",
	KindUnaryExpr:         "UnaryExpr",
	KindPostUnaryExpr:     "PostUnaryExpr",
	KindFunctionCallExpr:  "FunctionCallExpr",
	KindBracketExpr:       "BracketExpr",
	KindCastExpr:          "CastExpr",
	KindVarAccessExpr:     "VarAccessExpr",
	KindInitializerExpr:   "InitializerExpr",
	KindVarType:           "VarType",
	KindVarIdent:          "VarIdent",
	KindVarDecl:           "VarDecl",
	KindVarSemantic:       "VarSemantic",
	KindPackOffset:        "PackOffset",
	KindBufferDeclIdent:   "BufferDeclIdent",
	KindFunctionCall:      "FunctionCall",
}

// astNode is embedded by every concrete node and carries the position
// every node must have fixed at creation (spec.md §3.3 invariant P1).
type astNode struct {
	pos source.SourcePos
}

func (n astNode) Pos() source.SourcePos { return n.pos }

// Node is the root marker every AST node satisfies.
type Node interface {
	Kind() Kind
	Pos() source.SourcePos
}

// GlobalDecl is a top-level declaration (spec.md §3.3 GlobalDecl variants).
type GlobalDecl interface {
	Node
	globalDecl()
}

// Stmnt is any statement node.
type Stmnt interface {
	Node
	stmnt()
}

// Expr is any expression node.
type Expr interface {
	Node
	expr()
}
