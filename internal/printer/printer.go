package printer

import (
	"fmt"

	"gopkg.hlsltranslate.org/parser.go/internal/ast"
	"gopkg.hlsltranslate.org/parser.go/internal/logger"
)

// Printer is the reference visitor spec.md §4.5 describes: for every node
// it visits it emits one log line, `Kind (L:C)` optionally followed by
// `"info"`, and indents child emissions by one level. It mutates no node.
// It does not visit a FunctionDecl's return type or parameters, a
// VarDeclStmnt's VarType, a SwitchCase's label expression, or the
// attribute lists of loop, if, and switch statements, so those subtrees
// produce no lines. Every
// Visit<Kind> method below is a direct translation of the matching
// ASTPrinter::Visit<Kind> in the original translator, with ScopedIndent's
// constructor/destructor pair becoming a deferred IncIndent/DecIndent.
type Printer struct {
	BaseVisitor
	log logger.Logger
}

// Print walks program and writes one line per visited node to log, in
// pre-order (spec.md §8 P4).
func Print(program *ast.Program, log logger.Logger) {
	if log == nil {
		log = logger.NullLogger{}
	}
	p := &Printer{log: log}
	p.Self = p
	p.VisitProgram(program)
}

// emit writes "Kind (L:C)", and, if info is non-empty, a trailing
// `"info"` suffix — matching ASTPrinter::Print exactly.
func (p *Printer) emit(n ast.Node, info string) {
	msg := fmt.Sprintf("%s (%s)", n.Kind(), n.Pos())
	if info != "" {
		msg += fmt.Sprintf(" %q", info)
	}
	p.log.Info(msg)
}

// indented runs f with the logger's indent incremented for its duration,
// the Go stand-in for ASTPrinter's ScopedIndent RAII helper.
func (p *Printer) indented(f func()) {
	p.log.IncIndent()
	defer p.log.DecIndent()
	f()
}
