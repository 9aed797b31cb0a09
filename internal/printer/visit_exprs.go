package printer

import "gopkg.hlsltranslate.org/parser.go/internal/ast"

func (p *Printer) VisitListExpr(n *ast.ListExpr) {
	p.emit(n, "")
	p.indented(func() {
		for _, e := range n.Exprs {
			Walk(p, e)
		}
	})
}

func (p *Printer) VisitLiteralExpr(n *ast.LiteralExpr) {
	p.emit(n, n.Value)
}

func (p *Printer) VisitTypeNameExpr(n *ast.TypeNameExpr) {
	p.emit(n, n.TypeName)
}

func (p *Printer) VisitTernaryExpr(n *ast.TernaryExpr) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Condition)
		Walk(p, n.ThenExpr)
		Walk(p, n.ElseExpr)
	})
}

func (p *Printer) VisitBinaryExpr(n *ast.BinaryExpr) {
	p.emit(n, n.Op)
	p.indented(func() {
		Walk(p, n.LHS)
		Walk(p, n.RHS)
	})
}

func (p *Printer) VisitUnaryExpr(n *ast.UnaryExpr) {
	p.emit(n, n.Op)
	p.indented(func() {
		Walk(p, n.Expr)
	})
}

func (p *Printer) VisitPostUnaryExpr(n *ast.PostUnaryExpr) {
	p.emit(n, n.Op)
	p.indented(func() {
		Walk(p, n.Expr)
	})
}

func (p *Printer) VisitFunctionCallExpr(n *ast.FunctionCallExpr) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Call)
	})
}

func (p *Printer) VisitBracketExpr(n *ast.BracketExpr) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Expr)
	})
}

func (p *Printer) VisitCastExpr(n *ast.CastExpr) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.TypeExpr)
		Walk(p, n.Expr)
	})
}

func (p *Printer) VisitVarAccessExpr(n *ast.VarAccessExpr) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.VarIdent)
		Walk(p, n.AssignExpr)
	})
}

func (p *Printer) VisitInitializerExpr(n *ast.InitializerExpr) {
	p.emit(n, "")
	p.indented(func() {
		for _, e := range n.Exprs {
			Walk(p, e)
		}
	})
}
