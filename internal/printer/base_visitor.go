package printer

import "gopkg.hlsltranslate.org/parser.go/internal/ast"

// BaseVisitor recurses into the children of every kind, in source order
// (spec.md §4.4: "every compound node delegates iteration over its
// children to the visitor (pre-order)"). The one exception is the
// attribute lists (Attribs) of for, while, do-while, if, and switch
// statements, which it does not walk; a FunctionDecl's Attribs are
// walked. Embed it and
// override only the methods a concrete visitor cares about; Self must be
// set to the outer embedding value so overridden methods are still
// reached when BaseVisitor recurses into a child — Go has no implicit
// "virtual call to self" across an embedded type, so this repo threads it
// explicitly, the same trick the original's Visit(ast) dispatcher gets for
// free from C++ virtual dispatch.
type BaseVisitor struct {
	Self Visitor
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) VisitProgram(n *ast.Program) {
	for _, d := range n.Decls {
		Walk(b.self(), d)
	}
}

func (b *BaseVisitor) VisitCodeBlock(n *ast.CodeBlock) {
	for _, s := range n.Stmnts {
		Walk(b.self(), s)
	}
}

func (b *BaseVisitor) VisitBufferDeclIdent(n *ast.BufferDeclIdent) {}

func (b *BaseVisitor) VisitFunctionCall(n *ast.FunctionCall) {
	Walk(b.self(), n.Name)
	for _, a := range n.Args {
		Walk(b.self(), a)
	}
}

func (b *BaseVisitor) VisitStructure(n *ast.Structure) {
	for _, m := range n.Members {
		Walk(b.self(), m)
	}
}

func (b *BaseVisitor) VisitSwitchCase(n *ast.SwitchCase) {
	Walk(b.self(), n.Expr)
	for _, s := range n.Stmnts {
		Walk(b.self(), s)
	}
}

func (b *BaseVisitor) VisitFunctionDecl(n *ast.FunctionDecl) {
	for _, a := range n.Attribs {
		Walk(b.self(), a)
	}
	Walk(b.self(), n.ReturnType)
	for _, p := range n.Params {
		Walk(b.self(), p)
	}
	if n.Body != nil {
		Walk(b.self(), n.Body)
	}
}

func (b *BaseVisitor) VisitUniformBufferDecl(n *ast.UniformBufferDecl) {
	for _, m := range n.Members {
		Walk(b.self(), m)
	}
}

func (b *BaseVisitor) VisitTextureDecl(n *ast.TextureDecl) {
	for _, id := range n.Idents {
		Walk(b.self(), id)
	}
}

func (b *BaseVisitor) VisitSamplerDecl(n *ast.SamplerDecl) {
	for _, id := range n.Idents {
		Walk(b.self(), id)
	}
}

func (b *BaseVisitor) VisitStructDecl(n *ast.StructDecl) {
	Walk(b.self(), n.Struct)
}

func (b *BaseVisitor) VisitDirectiveDecl(n *ast.DirectiveDecl) {}

func (b *BaseVisitor) VisitNullStmnt(n *ast.NullStmnt) {}

func (b *BaseVisitor) VisitDirectiveStmnt(n *ast.DirectiveStmnt) {}

func (b *BaseVisitor) VisitCodeBlockStmnt(n *ast.CodeBlockStmnt) {
	Walk(b.self(), n.Block)
}

func (b *BaseVisitor) VisitForLoopStmnt(n *ast.ForLoopStmnt) {
	Walk(b.self(), n.Init)
	Walk(b.self(), n.Condition)
	Walk(b.self(), n.Increment)
	Walk(b.self(), n.Body)
}

func (b *BaseVisitor) VisitWhileLoopStmnt(n *ast.WhileLoopStmnt) {
	Walk(b.self(), n.Condition)
	Walk(b.self(), n.Body)
}

func (b *BaseVisitor) VisitDoWhileLoopStmnt(n *ast.DoWhileLoopStmnt) {
	Walk(b.self(), n.Body)
	Walk(b.self(), n.Condition)
}

func (b *BaseVisitor) VisitIfStmnt(n *ast.IfStmnt) {
	Walk(b.self(), n.Condition)
	Walk(b.self(), n.BodyThen)
	if n.Else != nil {
		Walk(b.self(), n.Else)
	}
}

func (b *BaseVisitor) VisitElseStmnt(n *ast.ElseStmnt) {
	Walk(b.self(), n.Body)
}

func (b *BaseVisitor) VisitSwitchStmnt(n *ast.SwitchStmnt) {
	Walk(b.self(), n.Selector)
	for _, c := range n.Cases {
		Walk(b.self(), c)
	}
}

func (b *BaseVisitor) VisitVarDeclStmnt(n *ast.VarDeclStmnt) {
	Walk(b.self(), n.VarType)
	for _, d := range n.VarDecls {
		Walk(b.self(), d)
	}
}

func (b *BaseVisitor) VisitAssignStmnt(n *ast.AssignStmnt) {
	Walk(b.self(), n.VarIdent)
	Walk(b.self(), n.Expr)
}

func (b *BaseVisitor) VisitExprStmnt(n *ast.ExprStmnt) {
	Walk(b.self(), n.Expr)
}

func (b *BaseVisitor) VisitFunctionCallStmnt(n *ast.FunctionCallStmnt) {
	Walk(b.self(), n.Call)
}

func (b *BaseVisitor) VisitReturnStmnt(n *ast.ReturnStmnt) {
	Walk(b.self(), n.Expr)
}

func (b *BaseVisitor) VisitStructDeclStmnt(n *ast.StructDeclStmnt) {
	Walk(b.self(), n.Struct)
}

func (b *BaseVisitor) VisitCtrlTransferStmnt(n *ast.CtrlTransferStmnt) {}

func (b *BaseVisitor) VisitListExpr(n *ast.ListExpr) {
	for _, e := range n.Exprs {
		Walk(b.self(), e)
	}
}

func (b *BaseVisitor) VisitLiteralExpr(n *ast.LiteralExpr) {}

func (b *BaseVisitor) VisitTypeNameExpr(n *ast.TypeNameExpr) {}

func (b *BaseVisitor) VisitTernaryExpr(n *ast.TernaryExpr) {
	Walk(b.self(), n.Condition)
	Walk(b.self(), n.ThenExpr)
	Walk(b.self(), n.ElseExpr)
}

func (b *BaseVisitor) VisitBinaryExpr(n *ast.BinaryExpr) {
	Walk(b.self(), n.LHS)
	Walk(b.self(), n.RHS)
}

func (b *BaseVisitor) VisitUnaryExpr(n *ast.UnaryExpr) {
	Walk(b.self(), n.Expr)
}

func (b *BaseVisitor) VisitPostUnaryExpr(n *ast.PostUnaryExpr) {
	Walk(b.self(), n.Expr)
}

func (b *BaseVisitor) VisitFunctionCallExpr(n *ast.FunctionCallExpr) {
	Walk(b.self(), n.Call)
}

func (b *BaseVisitor) VisitBracketExpr(n *ast.BracketExpr) {
	Walk(b.self(), n.Expr)
}

func (b *BaseVisitor) VisitCastExpr(n *ast.CastExpr) {
	Walk(b.self(), n.TypeExpr)
	Walk(b.self(), n.Expr)
}

func (b *BaseVisitor) VisitVarAccessExpr(n *ast.VarAccessExpr) {
	Walk(b.self(), n.VarIdent)
	Walk(b.self(), n.AssignExpr)
}

func (b *BaseVisitor) VisitInitializerExpr(n *ast.InitializerExpr) {
	for _, e := range n.Exprs {
		Walk(b.self(), e)
	}
}

func (b *BaseVisitor) VisitPackOffset(n *ast.PackOffset) {}

func (b *BaseVisitor) VisitVarSemantic(n *ast.VarSemantic) {
	if n.PackOffset != nil {
		Walk(b.self(), n.PackOffset)
	}
}

func (b *BaseVisitor) VisitVarType(n *ast.VarType) {
	if n.StructType != nil {
		Walk(b.self(), n.StructType)
	}
}

func (b *BaseVisitor) VisitVarIdent(n *ast.VarIdent) {
	for _, idx := range n.ArrayIndices {
		Walk(b.self(), idx)
	}
	if n.Next != nil {
		Walk(b.self(), n.Next)
	}
}

func (b *BaseVisitor) VisitVarDecl(n *ast.VarDecl) {
	for _, dim := range n.ArrayDims {
		Walk(b.self(), dim)
	}
	for _, sem := range n.Semantics {
		Walk(b.self(), sem)
	}
	Walk(b.self(), n.Initializer)
}
