package printer

import "gopkg.hlsltranslate.org/parser.go/internal/ast"

func (p *Printer) VisitNullStmnt(n *ast.NullStmnt) {
	p.emit(n, "")
}

func (p *Printer) VisitDirectiveStmnt(n *ast.DirectiveStmnt) {
	p.emit(n, n.Line)
}

func (p *Printer) VisitCodeBlockStmnt(n *ast.CodeBlockStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Block)
	})
}

func (p *Printer) VisitForLoopStmnt(n *ast.ForLoopStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Init)
		Walk(p, n.Condition)
		Walk(p, n.Increment)
		Walk(p, n.Body)
	})
}

func (p *Printer) VisitWhileLoopStmnt(n *ast.WhileLoopStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Condition)
		Walk(p, n.Body)
	})
}

func (p *Printer) VisitDoWhileLoopStmnt(n *ast.DoWhileLoopStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Body)
		Walk(p, n.Condition)
	})
}

func (p *Printer) VisitIfStmnt(n *ast.IfStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Condition)
		Walk(p, n.BodyThen)
		if n.Else != nil {
			Walk(p, n.Else)
		}
	})
}

func (p *Printer) VisitElseStmnt(n *ast.ElseStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Body)
	})
}

func (p *Printer) VisitSwitchStmnt(n *ast.SwitchStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Selector)
		for _, c := range n.Cases {
			Walk(p, c)
		}
	})
}

func (p *Printer) VisitVarDeclStmnt(n *ast.VarDeclStmnt) {
	p.emit(n, "")
	p.indented(func() {
		for _, d := range n.VarDecls {
			Walk(p, d)
		}
	})
}

func (p *Printer) VisitAssignStmnt(n *ast.AssignStmnt) {
	p.emit(n, n.Op)
	p.indented(func() {
		Walk(p, n.VarIdent)
		Walk(p, n.Expr)
	})
}

func (p *Printer) VisitExprStmnt(n *ast.ExprStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Expr)
	})
}

func (p *Printer) VisitFunctionCallStmnt(n *ast.FunctionCallStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Call)
	})
}

func (p *Printer) VisitReturnStmnt(n *ast.ReturnStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Expr)
	})
}

func (p *Printer) VisitStructDeclStmnt(n *ast.StructDeclStmnt) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Struct)
	})
}

func (p *Printer) VisitCtrlTransferStmnt(n *ast.CtrlTransferStmnt) {
	p.emit(n, n.Keyword)
}
