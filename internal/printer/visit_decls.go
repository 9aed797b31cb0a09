package printer

import "gopkg.hlsltranslate.org/parser.go/internal/ast"

func (p *Printer) VisitProgram(n *ast.Program) {
	p.emit(n, "")
	p.indented(func() {
		for _, d := range n.Decls {
			Walk(p, d)
		}
	})
}

func (p *Printer) VisitCodeBlock(n *ast.CodeBlock) {
	p.emit(n, "")
	p.indented(func() {
		for _, s := range n.Stmnts {
			Walk(p, s)
		}
	})
}

func (p *Printer) VisitBufferDeclIdent(n *ast.BufferDeclIdent) {
	p.emit(n, n.Ident)
}

func (p *Printer) VisitFunctionCall(n *ast.FunctionCall) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Name)
		for _, a := range n.Args {
			Walk(p, a)
		}
	})
}

func (p *Printer) VisitStructure(n *ast.Structure) {
	p.emit(n, "")
	p.indented(func() {
		for _, m := range n.Members {
			Walk(p, m)
		}
	})
}

func (p *Printer) VisitSwitchCase(n *ast.SwitchCase) {
	p.emit(n, "")
	p.indented(func() {
		for _, s := range n.Stmnts {
			Walk(p, s)
		}
	})
}

func (p *Printer) VisitFunctionDecl(n *ast.FunctionDecl) {
	p.emit(n, n.Name)
	p.indented(func() {
		for _, a := range n.Attribs {
			Walk(p, a)
		}
		if n.Body != nil {
			Walk(p, n.Body)
		}
	})
}

func (p *Printer) VisitUniformBufferDecl(n *ast.UniformBufferDecl) {
	p.emit(n, n.Name+" ("+n.BufferType+")")
	p.indented(func() {
		for _, m := range n.Members {
			Walk(p, m)
		}
	})
}

func (p *Printer) VisitTextureDecl(n *ast.TextureDecl) {
	p.emit(n, "")
	p.indented(func() {
		for _, id := range n.Idents {
			Walk(p, id)
		}
	})
}

func (p *Printer) VisitSamplerDecl(n *ast.SamplerDecl) {
	p.emit(n, "")
	p.indented(func() {
		for _, id := range n.Idents {
			Walk(p, id)
		}
	})
}

func (p *Printer) VisitStructDecl(n *ast.StructDecl) {
	p.emit(n, "")
	p.indented(func() {
		Walk(p, n.Struct)
	})
}

func (p *Printer) VisitDirectiveDecl(n *ast.DirectiveDecl) {
	p.emit(n, n.Line)
}
