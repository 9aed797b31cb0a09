package printer

import "gopkg.hlsltranslate.org/parser.go/internal/ast"

func (p *Printer) VisitPackOffset(n *ast.PackOffset) {
	info := n.RegisterName
	if n.VectorComponent != "" {
		info += " (" + n.VectorComponent + ")"
	}
	p.emit(n, info)
}

func (p *Printer) VisitVarSemantic(n *ast.VarSemantic) {
	info := n.Semantic
	if n.Register != "" {
		info += " (" + n.Register + ")"
	}
	p.emit(n, info)
	p.indented(func() {
		if n.PackOffset != nil {
			Walk(p, n.PackOffset)
		}
	})
}

func (p *Printer) VisitVarType(n *ast.VarType) {
	p.emit(n, n.BaseType)
	p.indented(func() {
		if n.StructType != nil {
			Walk(p, n.StructType)
		}
	})
}

func (p *Printer) VisitVarIdent(n *ast.VarIdent) {
	p.emit(n, n.Ident)
	p.indented(func() {
		for _, idx := range n.ArrayIndices {
			Walk(p, idx)
		}
		if n.Next != nil {
			Walk(p, n.Next)
		}
	})
}

func (p *Printer) VisitVarDecl(n *ast.VarDecl) {
	p.emit(n, n.Name)
	p.indented(func() {
		for _, dim := range n.ArrayDims {
			Walk(p, dim)
		}
		for _, sem := range n.Semantics {
			Walk(p, sem)
		}
		Walk(p, n.Initializer)
	})
}
