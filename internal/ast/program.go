package ast

import "gopkg.hlsltranslate.org/parser.go/internal/source"

// Program is the AST root: an ordered sequence of global declarations
// (spec.md §3.3). It is the sole owner of the whole tree; when a Program
// is released, every node it reaches goes with it.
type Program struct {
	astNode
	Decls []GlobalDecl
}

func NewProgram(pos source.SourcePos, decls []GlobalDecl) *Program {
	return &Program{astNode: astNode{pos}, Decls: decls}
}

func (*Program) Kind() Kind { return KindProgram }

// CodeBlock is an ordered sequence of statements: a function body or any
// braced statement block.
type CodeBlock struct {
	astNode
	Stmnts []Stmnt
}

func NewCodeBlock(pos source.SourcePos, stmnts []Stmnt) *CodeBlock {
	return &CodeBlock{astNode: astNode{pos}, Stmnts: stmnts}
}

func (*CodeBlock) Kind() Kind { return KindCodeBlock }
