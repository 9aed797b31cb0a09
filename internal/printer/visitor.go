// Package printer implements the visitor contract spec.md §4.4/§4.5 (C6)
// describes — one dispatch method per AST kind, a default base visitor
// that recurses into every child, and a reference Printer that overrides
// every kind to log it — plus the Printer itself.
package printer

import "gopkg.hlsltranslate.org/parser.go/internal/ast"

// Visitor is the double-dispatch contract: Walk calls exactly one of these
// methods per node, chosen by the node's dynamic type. Concrete visitors
// that only care about a handful of kinds should embed BaseVisitor and
// override those; anything left un-overridden still recurses into its
// children so a partial visitor never silently stops a traversal short.
type Visitor interface {
	VisitProgram(n *ast.Program)
	VisitCodeBlock(n *ast.CodeBlock)
	VisitBufferDeclIdent(n *ast.BufferDeclIdent)
	VisitFunctionCall(n *ast.FunctionCall)
	VisitStructure(n *ast.Structure)
	VisitSwitchCase(n *ast.SwitchCase)

	VisitFunctionDecl(n *ast.FunctionDecl)
	VisitUniformBufferDecl(n *ast.UniformBufferDecl)
	VisitTextureDecl(n *ast.TextureDecl)
	VisitSamplerDecl(n *ast.SamplerDecl)
	VisitStructDecl(n *ast.StructDecl)
	VisitDirectiveDecl(n *ast.DirectiveDecl)

	VisitNullStmnt(n *ast.NullStmnt)
	VisitDirectiveStmnt(n *ast.DirectiveStmnt)
	VisitCodeBlockStmnt(n *ast.CodeBlockStmnt)
	VisitForLoopStmnt(n *ast.ForLoopStmnt)
	VisitWhileLoopStmnt(n *ast.WhileLoopStmnt)
	VisitDoWhileLoopStmnt(n *ast.DoWhileLoopStmnt)
	VisitIfStmnt(n *ast.IfStmnt)
	VisitElseStmnt(n *ast.ElseStmnt)
	VisitSwitchStmnt(n *ast.SwitchStmnt)
	VisitVarDeclStmnt(n *ast.VarDeclStmnt)
	VisitAssignStmnt(n *ast.AssignStmnt)
	VisitExprStmnt(n *ast.ExprStmnt)
	VisitFunctionCallStmnt(n *ast.FunctionCallStmnt)
	VisitReturnStmnt(n *ast.ReturnStmnt)
	VisitStructDeclStmnt(n *ast.StructDeclStmnt)
	VisitCtrlTransferStmnt(n *ast.CtrlTransferStmnt)

	VisitListExpr(n *ast.ListExpr)
	VisitLiteralExpr(n *ast.LiteralExpr)
	VisitTypeNameExpr(n *ast.TypeNameExpr)
	VisitTernaryExpr(n *ast.TernaryExpr)
	VisitBinaryExpr(n *ast.BinaryExpr)
	VisitUnaryExpr(n *ast.UnaryExpr)
	VisitPostUnaryExpr(n *ast.PostUnaryExpr)
	VisitFunctionCallExpr(n *ast.FunctionCallExpr)
	VisitBracketExpr(n *ast.BracketExpr)
	VisitCastExpr(n *ast.CastExpr)
	VisitVarAccessExpr(n *ast.VarAccessExpr)
	VisitInitializerExpr(n *ast.InitializerExpr)

	VisitPackOffset(n *ast.PackOffset)
	VisitVarSemantic(n *ast.VarSemantic)
	VisitVarType(n *ast.VarType)
	VisitVarIdent(n *ast.VarIdent)
	VisitVarDecl(n *ast.VarDecl)
}

// Walk dispatches n to the Visitor method matching its dynamic type. It is
// a no-op on a nil Node interface; callers passing an optional concrete
// pointer field (one not wrapped behind an interface-typed struct field)
// are responsible for nil-checking it first, since a nil *T boxed into the
// Node interface is not itself == nil.
func Walk(v Visitor, n ast.Node) {
	if n == nil {
		return
	}
	switch t := n.(type) {
	case *ast.Program:
		v.VisitProgram(t)
	case *ast.CodeBlock:
		v.VisitCodeBlock(t)
	case *ast.BufferDeclIdent:
		v.VisitBufferDeclIdent(t)
	case *ast.FunctionCall:
		v.VisitFunctionCall(t)
	case *ast.Structure:
		v.VisitStructure(t)
	case *ast.SwitchCase:
		v.VisitSwitchCase(t)

	case *ast.FunctionDecl:
		v.VisitFunctionDecl(t)
	case *ast.UniformBufferDecl:
		v.VisitUniformBufferDecl(t)
	case *ast.TextureDecl:
		v.VisitTextureDecl(t)
	case *ast.SamplerDecl:
		v.VisitSamplerDecl(t)
	case *ast.StructDecl:
		v.VisitStructDecl(t)
	case *ast.DirectiveDecl:
		v.VisitDirectiveDecl(t)

	case *ast.NullStmnt:
		v.VisitNullStmnt(t)
	case *ast.DirectiveStmnt:
		v.VisitDirectiveStmnt(t)
	case *ast.CodeBlockStmnt:
		v.VisitCodeBlockStmnt(t)
	case *ast.ForLoopStmnt:
		v.VisitForLoopStmnt(t)
	case *ast.WhileLoopStmnt:
		v.VisitWhileLoopStmnt(t)
	case *ast.DoWhileLoopStmnt:
		v.VisitDoWhileLoopStmnt(t)
	case *ast.IfStmnt:
		v.VisitIfStmnt(t)
	case *ast.ElseStmnt:
		v.VisitElseStmnt(t)
	case *ast.SwitchStmnt:
		v.VisitSwitchStmnt(t)
	case *ast.VarDeclStmnt:
		v.VisitVarDeclStmnt(t)
	case *ast.AssignStmnt:
		v.VisitAssignStmnt(t)
	case *ast.ExprStmnt:
		v.VisitExprStmnt(t)
	case *ast.FunctionCallStmnt:
		v.VisitFunctionCallStmnt(t)
	case *ast.ReturnStmnt:
		v.VisitReturnStmnt(t)
	case *ast.StructDeclStmnt:
		v.VisitStructDeclStmnt(t)
	case *ast.CtrlTransferStmnt:
		v.VisitCtrlTransferStmnt(t)

	case *ast.ListExpr:
		v.VisitListExpr(t)
	case *ast.LiteralExpr:
		v.VisitLiteralExpr(t)
	case *ast.TypeNameExpr:
		v.VisitTypeNameExpr(t)
	case *ast.TernaryExpr:
		v.VisitTernaryExpr(t)
	case *ast.BinaryExpr:
		v.VisitBinaryExpr(t)
	case *ast.UnaryExpr:
		v.VisitUnaryExpr(t)
	case *ast.PostUnaryExpr:
		v.VisitPostUnaryExpr(t)
	case *ast.FunctionCallExpr:
		v.VisitFunctionCallExpr(t)
	case *ast.BracketExpr:
		v.VisitBracketExpr(t)
	case *ast.CastExpr:
		v.VisitCastExpr(t)
	case *ast.VarAccessExpr:
		v.VisitVarAccessExpr(t)
	case *ast.InitializerExpr:
		v.VisitInitializerExpr(t)

	case *ast.PackOffset:
		v.VisitPackOffset(t)
	case *ast.VarSemantic:
		v.VisitVarSemantic(t)
	case *ast.VarType:
		v.VisitVarType(t)
	case *ast.VarIdent:
		v.VisitVarIdent(t)
	case *ast.VarDecl:
		v.VisitVarDecl(t)
	}
}
