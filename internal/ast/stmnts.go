package ast

import "gopkg.hlsltranslate.org/parser.go/internal/source"

func (*NullStmnt) stmnt()         {}
func (*DirectiveStmnt) stmnt()    {}
func (*CodeBlockStmnt) stmnt()    {}
func (*ForLoopStmnt) stmnt()      {}
func (*WhileLoopStmnt) stmnt()    {}
func (*DoWhileLoopStmnt) stmnt()  {}
func (*IfStmnt) stmnt()           {}
func (*ElseStmnt) stmnt()         {}
func (*SwitchStmnt) stmnt()       {}
func (*VarDeclStmnt) stmnt()      {}
func (*AssignStmnt) stmnt()       {}
func (*ExprStmnt) stmnt()         {}
func (*FunctionCallStmnt) stmnt() {}
func (*ReturnStmnt) stmnt()       {}
func (*StructDeclStmnt) stmnt()   {}
func (*CtrlTransferStmnt) stmnt() {}

// NullStmnt is a bare ';'.
type NullStmnt struct{ astNode }

func NewNullStmnt(pos source.SourcePos) *NullStmnt { return &NullStmnt{astNode{pos}} }
func (*NullStmnt) Kind() Kind                      { return KindNullStmnt }

// DirectiveStmnt is a preprocessor directive occurring inside a code block.
type DirectiveStmnt struct {
	astNode
	Line string
}

func NewDirectiveStmnt(pos source.SourcePos, line string) *DirectiveStmnt {
	return &DirectiveStmnt{astNode: astNode{pos}, Line: line}
}
func (*DirectiveStmnt) Kind() Kind { return KindDirectiveStmnt }

// CodeBlockStmnt is a braced statement block used as a statement in its
// own right (not a function body).
type CodeBlockStmnt struct {
	astNode
	Block *CodeBlock
}

func NewCodeBlockStmnt(pos source.SourcePos, block *CodeBlock) *CodeBlockStmnt {
	return &CodeBlockStmnt{astNode: astNode{pos}, Block: block}
}
func (*CodeBlockStmnt) Kind() Kind { return KindCodeBlockStmnt }

// ForLoopStmnt is a C-style for loop. Init may be a VarDeclStmnt, an
// AssignStmnt, a FunctionCallStmnt, or an ExprStmnt (or a NullStmnt if the
// initializer clause is empty); Condition
// and Increment are nil when their clause is empty.
type ForLoopStmnt struct {
	astNode
	Attribs   []*FunctionCall
	Init      Stmnt
	Condition Expr
	Increment Expr
	Body      Stmnt
}

func NewForLoopStmnt(pos source.SourcePos, attribs []*FunctionCall, init Stmnt, cond, incr Expr, body Stmnt) *ForLoopStmnt {
	return &ForLoopStmnt{astNode: astNode{pos}, Attribs: attribs, Init: init, Condition: cond, Increment: incr, Body: body}
}
func (*ForLoopStmnt) Kind() Kind { return KindForLoopStmnt }

// WhileLoopStmnt is a "while (cond) body" statement.
type WhileLoopStmnt struct {
	astNode
	Attribs   []*FunctionCall
	Condition Expr
	Body      Stmnt
}

func NewWhileLoopStmnt(pos source.SourcePos, attribs []*FunctionCall, cond Expr, body Stmnt) *WhileLoopStmnt {
	return &WhileLoopStmnt{astNode: astNode{pos}, Attribs: attribs, Condition: cond, Body: body}
}
func (*WhileLoopStmnt) Kind() Kind { return KindWhileLoopStmnt }

// DoWhileLoopStmnt is a "do body while (cond);" statement.
type DoWhileLoopStmnt struct {
	astNode
	Attribs   []*FunctionCall
	Body      Stmnt
	Condition Expr
}

func NewDoWhileLoopStmnt(pos source.SourcePos, attribs []*FunctionCall, body Stmnt, cond Expr) *DoWhileLoopStmnt {
	return &DoWhileLoopStmnt{astNode: astNode{pos}, Attribs: attribs, Body: body, Condition: cond}
}
func (*DoWhileLoopStmnt) Kind() Kind { return KindDoWhileLoopStmnt }

// IfStmnt is an "if (cond) then [else ...]" statement. Else is nil when
// there is no else clause.
type IfStmnt struct {
	astNode
	Attribs   []*FunctionCall
	Condition Expr
	BodyThen  Stmnt
	Else      *ElseStmnt
}

func NewIfStmnt(pos source.SourcePos, attribs []*FunctionCall, cond Expr, then Stmnt, els *ElseStmnt) *IfStmnt {
	return &IfStmnt{astNode: astNode{pos}, Attribs: attribs, Condition: cond, BodyThen: then, Else: els}
}
func (*IfStmnt) Kind() Kind { return KindIfStmnt }

// ElseStmnt wraps the body of an else clause.
type ElseStmnt struct {
	astNode
	Body Stmnt
}

func NewElseStmnt(pos source.SourcePos, body Stmnt) *ElseStmnt {
	return &ElseStmnt{astNode: astNode{pos}, Body: body}
}
func (*ElseStmnt) Kind() Kind { return KindElseStmnt }

// SwitchStmnt is a "switch (selector) { cases... }" statement.
type SwitchStmnt struct {
	astNode
	Attribs  []*FunctionCall
	Selector Expr
	Cases    []*SwitchCase
}

func NewSwitchStmnt(pos source.SourcePos, attribs []*FunctionCall, selector Expr, cases []*SwitchCase) *SwitchStmnt {
	return &SwitchStmnt{astNode: astNode{pos}, Attribs: attribs, Selector: selector, Cases: cases}
}
func (*SwitchStmnt) Kind() Kind { return KindSwitchStmnt }

// SwitchCase is one "case expr:" or "default:" arm. Expr is nil for the
// default arm. Stmnts may be empty, modeling fallthrough to the next case.
type SwitchCase struct {
	astNode
	Expr   Expr
	Stmnts []Stmnt
}

func NewSwitchCase(pos source.SourcePos, expr Expr, stmnts []Stmnt) *SwitchCase {
	return &SwitchCase{astNode: astNode{pos}, Expr: expr, Stmnts: stmnts}
}
func (*SwitchCase) Kind() Kind { return KindSwitchCase }

// VarDeclStmnt declares one or more variables sharing a set of modifiers
// and a base VarType (spec.md §3.3, §4.3.2). It is also used, unmodified,
// as a function parameter and as a struct member.
type VarDeclStmnt struct {
	astNode
	InputModifier   string   // "" if absent
	StorageModifiers []string
	TypeModifiers    []string
	VarType          *VarType
	VarDecls         []*VarDecl
}

func NewVarDeclStmnt(pos source.SourcePos, inputMod string, storageMods, typeMods []string, vt *VarType, decls []*VarDecl) *VarDeclStmnt {
	s := &VarDeclStmnt{astNode: astNode{pos}, InputModifier: inputMod, StorageModifiers: storageMods, TypeModifiers: typeMods, VarType: vt, VarDecls: decls}
	for _, d := range decls {
		d.DeclStmntRef = s
	}
	return s
}
func (*VarDeclStmnt) Kind() Kind { return KindVarDeclStmnt }

// AssignStmnt is "varIdent op= expr;" for any assignment operator spelling.
type AssignStmnt struct {
	astNode
	VarIdent *VarIdent
	Op       string
	Expr     Expr
}

func NewAssignStmnt(pos source.SourcePos, ident *VarIdent, op string, expr Expr) *AssignStmnt {
	return &AssignStmnt{astNode: astNode{pos}, VarIdent: ident, Op: op, Expr: expr}
}
func (*AssignStmnt) Kind() Kind { return KindAssignStmnt }

// ExprStmnt is a bare expression used as a statement (spec.md §4.3.1: the
// postfix-unary identifier-led case lands here).
type ExprStmnt struct {
	astNode
	Expr Expr
}

func NewExprStmnt(pos source.SourcePos, expr Expr) *ExprStmnt {
	return &ExprStmnt{astNode: astNode{pos}, Expr: expr}
}
func (*ExprStmnt) Kind() Kind { return KindExprStmnt }

// FunctionCallStmnt is "ident(args...);" used as a statement.
type FunctionCallStmnt struct {
	astNode
	Call *FunctionCall
}

func NewFunctionCallStmnt(pos source.SourcePos, call *FunctionCall) *FunctionCallStmnt {
	return &FunctionCallStmnt{astNode: astNode{pos}, Call: call}
}
func (*FunctionCallStmnt) Kind() Kind { return KindFunctionCallStmnt }

// ReturnStmnt is "return [expr];". Expr is nil for a bare return.
type ReturnStmnt struct {
	astNode
	Expr Expr
}

func NewReturnStmnt(pos source.SourcePos, expr Expr) *ReturnStmnt {
	return &ReturnStmnt{astNode: astNode{pos}, Expr: expr}
}
func (*ReturnStmnt) Kind() Kind { return KindReturnStmnt }

// StructDeclStmnt is a struct declared inline inside a code block,
// distinguished from a struct-typed VarDeclStmnt by the trailing ';' with
// no declarator (spec.md §4.3.1).
type StructDeclStmnt struct {
	astNode
	Struct *Structure
}

func NewStructDeclStmnt(pos source.SourcePos, structure *Structure) *StructDeclStmnt {
	return &StructDeclStmnt{astNode: astNode{pos}, Struct: structure}
}
func (*StructDeclStmnt) Kind() Kind { return KindStructDeclStmnt }

// CtrlTransferStmnt is "break;", "continue;", or "discard;".
type CtrlTransferStmnt struct {
	astNode
	Keyword string
}

func NewCtrlTransferStmnt(pos source.SourcePos, keyword string) *CtrlTransferStmnt {
	return &CtrlTransferStmnt{astNode: astNode{pos}, Keyword: keyword}
}
func (*CtrlTransferStmnt) Kind() Kind { return KindCtrlTransferStmnt }
