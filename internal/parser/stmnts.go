package parser

import (
	"gopkg.hlsltranslate.org/parser.go/internal/ast"
	"gopkg.hlsltranslate.org/parser.go/internal/token"
)

// parseStmnt mirrors HLSLParser::ParseStmnt, dispatching on the leading
// token to one of the sixteen Stmnt shapes (spec.md §3.3).
func (p *Parser) parseStmnt() (ast.Stmnt, error) {
	switch {
	case p.ts.is(token.Semicolon):
		return p.parseNullStmnt()
	case p.ts.is(token.Directive):
		return p.parseDirectiveStmnt()
	case p.ts.is(token.LCurly):
		return p.parseCodeBlockStmnt()
	case p.ts.is(token.LParen):
		attribs, err := p.parseAttributeList()
		if err != nil {
			return nil, err
		}
		return p.parseAttributedStmnt(attribs)
	case p.ts.is(token.For):
		return p.parseForLoopStmnt(nil)
	case p.ts.is(token.While):
		return p.parseWhileLoopStmnt(nil)
	case p.ts.is(token.Do):
		return p.parseDoWhileLoopStmnt(nil)
	case p.ts.is(token.If):
		return p.parseIfStmnt(nil)
	case p.ts.is(token.Switch):
		return p.parseSwitchStmnt(nil)
	case p.ts.is(token.Return):
		return p.parseReturnStmnt()
	case p.ts.is(token.CtrlTransfer):
		return p.parseCtrlTransferStmnt()
	case p.ts.is(token.Struct):
		return p.parseStructDeclOrVarDeclStmnt()
	case p.isDataType() || p.ts.is(token.InputModifier) || p.ts.is(token.TypeModifier) || p.ts.is(token.StorageModifier):
		return p.parseVarDeclStmnt()
	case p.ts.is(token.Ident):
		return p.parseVarDeclOrAssignOrFunctionCallStmnt()
	case p.isPrimaryExpr():
		return p.parseExprStmnt()
	default:
		return nil, p.errUnexpectedHint("expected a statement")
	}
}

// parseAttributedStmnt dispatches an attribute list (spec.md §4.3.1) to
// whichever of the loop/if/switch statements it precedes.
func (p *Parser) parseAttributedStmnt(attribs []*ast.FunctionCall) (ast.Stmnt, error) {
	switch {
	case p.ts.is(token.For):
		return p.parseForLoopStmnt(attribs)
	case p.ts.is(token.While):
		return p.parseWhileLoopStmnt(attribs)
	case p.ts.is(token.Do):
		return p.parseDoWhileLoopStmnt(attribs)
	case p.ts.is(token.If):
		return p.parseIfStmnt(attribs)
	case p.ts.is(token.Switch):
		return p.parseSwitchStmnt(attribs)
	default:
		return nil, p.errUnexpectedHint("expected a loop, if, or switch statement after an attribute")
	}
}

// parseNullStmnt mirrors HLSLParser::ParseNullStmnt.
func (p *Parser) parseNullStmnt() (*ast.NullStmnt, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewNullStmnt(pos), nil
}

// parseDirectiveStmnt mirrors HLSLParser::ParseDirectiveStmnt.
func (p *Parser) parseDirectiveStmnt() (*ast.DirectiveStmnt, error) {
	pos := p.pos()
	tok, err := p.ts.accept(token.Directive)
	if err != nil {
		return nil, err
	}
	return ast.NewDirectiveStmnt(pos, tok.Spelling), nil
}

// parseCodeBlockStmnt mirrors HLSLParser::ParseCodeBlockStmnt.
func (p *Parser) parseCodeBlockStmnt() (*ast.CodeBlockStmnt, error) {
	pos := p.pos()
	block, err := p.parseCodeBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewCodeBlockStmnt(pos, block), nil
}

// parseForInitStmnt parses a for-loop's initializer clause — a var
// declaration, an expression, or nothing — and consumes the ';' that
// terminates it (spec.md §4.3.2's for-loop production folds that ';' into
// the initializer clause rather than the loop header itself).
func (p *Parser) parseForInitStmnt() (ast.Stmnt, error) {
	pos := p.pos()
	switch {
	case p.ts.is(token.Semicolon):
		if _, err := p.ts.accept(token.Semicolon); err != nil {
			return nil, err
		}
		return ast.NewNullStmnt(pos), nil
	case p.isDataType() || p.ts.is(token.TypeModifier) || p.ts.is(token.StorageModifier):
		return p.parseVarDeclStmnt()
	case p.ts.is(token.Ident):
		return p.parseVarDeclOrAssignOrFunctionCallStmnt()
	default:
		e, err := p.parseExpr(true, nil)
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.accept(token.Semicolon); err != nil {
			return nil, err
		}
		return ast.NewExprStmnt(pos, e), nil
	}
}

// parseForLoopStmnt mirrors HLSLParser::ParseForLoopStmnt.
func (p *Parser) parseForLoopStmnt(attribs []*ast.FunctionCall) (*ast.ForLoopStmnt, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.For); err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.LBracket); err != nil {
		return nil, err
	}
	init, err := p.parseForInitStmnt()
	if err != nil {
		return nil, err
	}
	var cond ast.Expr
	if !p.ts.is(token.Semicolon) {
		cond, err = p.parseExpr(true, nil)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.ts.accept(token.Semicolon); err != nil {
		return nil, err
	}
	var incr ast.Expr
	if !p.ts.is(token.RBracket) {
		incr, err = p.parseExpr(true, nil)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.ts.accept(token.RBracket); err != nil {
		return nil, err
	}
	body, err := p.parseStmnt()
	if err != nil {
		return nil, err
	}
	return ast.NewForLoopStmnt(pos, attribs, init, cond, incr, body), nil
}

// parseWhileLoopStmnt mirrors HLSLParser::ParseWhileLoopStmnt.
func (p *Parser) parseWhileLoopStmnt(attribs []*ast.FunctionCall) (*ast.WhileLoopStmnt, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.While); err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.LBracket); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(true, nil)
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.RBracket); err != nil {
		return nil, err
	}
	body, err := p.parseStmnt()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileLoopStmnt(pos, attribs, cond, body), nil
}

// parseDoWhileLoopStmnt mirrors HLSLParser::ParseDoWhileLoopStmnt.
func (p *Parser) parseDoWhileLoopStmnt(attribs []*ast.FunctionCall) (*ast.DoWhileLoopStmnt, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.Do); err != nil {
		return nil, err
	}
	body, err := p.parseStmnt()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.While); err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.LBracket); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(true, nil)
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.RBracket); err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewDoWhileLoopStmnt(pos, attribs, body, cond), nil
}

// parseIfStmnt mirrors HLSLParser::ParseIfStmnt.
func (p *Parser) parseIfStmnt(attribs []*ast.FunctionCall) (*ast.IfStmnt, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.If); err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.LBracket); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(true, nil)
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.RBracket); err != nil {
		return nil, err
	}
	then, err := p.parseStmnt()
	if err != nil {
		return nil, err
	}
	var els *ast.ElseStmnt
	if p.ts.is(token.Else) {
		els, err = p.parseElseStmnt()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStmnt(pos, attribs, cond, then, els), nil
}

// parseElseStmnt mirrors HLSLParser::ParseElseStmnt.
func (p *Parser) parseElseStmnt() (*ast.ElseStmnt, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.Else); err != nil {
		return nil, err
	}
	body, err := p.parseStmnt()
	if err != nil {
		return nil, err
	}
	return ast.NewElseStmnt(pos, body), nil
}

// parseSwitchStmnt mirrors HLSLParser::ParseSwitchStmnt.
func (p *Parser) parseSwitchStmnt(attribs []*ast.FunctionCall) (*ast.SwitchStmnt, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.Switch); err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.LBracket); err != nil {
		return nil, err
	}
	selector, err := p.parseExpr(true, nil)
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.RBracket); err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.LCurly); err != nil {
		return nil, err
	}
	cases, err := p.parseSwitchCaseList()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.RCurly); err != nil {
		return nil, err
	}
	return ast.NewSwitchStmnt(pos, attribs, selector, cases), nil
}

// parseVarDeclStmnt mirrors HLSLParser::ParseVarDeclStmnt: modifiers, a
// VarType, one or more comma-separated declarators, and a terminating ';'.
// It is shared by code-block statements, struct members, uniform-buffer
// members, and (via parseParameter's own modifier handling for a single
// declarator) is not reused there, since a parameter never takes a
// terminating ';'.
func (p *Parser) parseVarDeclStmnt() (*ast.VarDeclStmnt, error) {
	pos := p.pos()
	inputMod := ""
	var typeMods, storageMods []string
	for p.ts.is(token.InputModifier) || p.ts.is(token.TypeModifier) || p.ts.is(token.StorageModifier) {
		switch {
		case p.ts.is(token.InputModifier):
			tok, err := p.ts.acceptAny()
			if err != nil {
				return nil, err
			}
			inputMod = tok.Spelling
		case p.ts.is(token.TypeModifier):
			tok, err := p.ts.acceptAny()
			if err != nil {
				return nil, err
			}
			typeMods = append(typeMods, tok.Spelling)
		case p.ts.is(token.StorageModifier):
			tok, err := p.ts.acceptAny()
			if err != nil {
				return nil, err
			}
			storageMods = append(storageMods, tok.Spelling)
		}
	}
	vt, err := p.parseVarType(false)
	if err != nil {
		return nil, err
	}
	decls, err := p.parseVarDeclList()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewVarDeclStmnt(pos, inputMod, storageMods, typeMods, vt, decls), nil
}

// parseStructDeclOrVarDeclStmnt implements the struct-decl-vs-struct-typed-
// variable disambiguation (spec.md §4.3.1): parse the struct body, then
// peek for a trailing ';' — present means a bare struct declaration,
// absent means the struct names the type of one or more declarators.
func (p *Parser) parseStructDeclOrVarDeclStmnt() (ast.Stmnt, error) {
	pos := p.pos()
	structure, err := p.parseStructure()
	if err != nil {
		return nil, err
	}
	if p.ts.is(token.Semicolon) {
		if _, err := p.ts.accept(token.Semicolon); err != nil {
			return nil, err
		}
		return ast.NewStructDeclStmnt(pos, structure), nil
	}
	vt := ast.NewVarTypeStruct(pos, structure)
	decls, err := p.parseVarDeclList()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewVarDeclStmnt(pos, "", nil, nil, vt, decls), nil
}

// parseVarDeclOrAssignOrFunctionCallStmnt implements the
// statement-starting-with-identifier disambiguation (spec.md §4.3.1): the
// leading identifier may be a user-defined type name (a var declaration),
// or the head of a full VarIdent chain — parsed in its entirety,
// including any dotted continuation, before anything branches on it —
// that is then either a callee (a function-call statement, e.g.
// "tex.Sample(s, uv);"), assigned to, or incremented/decremented as a
// bare expression statement (HLSLParser.cpp:806-823 parses the complete
// VarIdent first and only then tests Is(LBracket); checking for '(' on
// the bare leading identifier would leave a dotted method-style call
// unparseable). A dotted or indexed identifier that matches none of
// those continuations fails.
func (p *Parser) parseVarDeclOrAssignOrFunctionCallStmnt() (ast.Stmnt, error) {
	pos := p.pos()
	nameTok, err := p.ts.accept(token.Ident)
	if err != nil {
		return nil, err
	}

	if p.ts.is(token.Ident) {
		vt := ast.NewVarTypeBase(pos, nameTok.Spelling)
		decls, err := p.parseVarDeclList()
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.accept(token.Semicolon); err != nil {
			return nil, err
		}
		return ast.NewVarDeclStmnt(pos, "", nil, nil, vt, decls), nil
	}

	ident, err := p.parseVarIdentTail(nameTok)
	if err != nil {
		return nil, err
	}

	if p.ts.is(token.LBracket) {
		call, err := p.parseFunctionCall(ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.accept(token.Semicolon); err != nil {
			return nil, err
		}
		return ast.NewFunctionCallStmnt(pos, call), nil
	}

	switch {
	case p.ts.is(token.AssignOp):
		opTok, err := p.ts.acceptAny()
		if err != nil {
			return nil, err
		}
		expr, err := p.parseExpr(true, nil)
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.accept(token.Semicolon); err != nil {
			return nil, err
		}
		return ast.NewAssignStmnt(pos, ident, opTok.Spelling, expr), nil

	case p.ts.is(token.UnaryOp):
		opTok, err := p.ts.acceptAny()
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.accept(token.Semicolon); err != nil {
			return nil, err
		}
		access := ast.NewVarAccessExpr(pos, ident, "", nil)
		return ast.NewExprStmnt(pos, ast.NewPostUnaryExpr(pos, opTok.Spelling, access)), nil

	default:
		return nil, p.errUnexpectedHint("expected '=', an assignment operator, '++'/'--', or '(' after identifier")
	}
}

// parseReturnStmnt mirrors HLSLParser::ParseReturnStmnt.
func (p *Parser) parseReturnStmnt() (*ast.ReturnStmnt, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.Return); err != nil {
		return nil, err
	}
	var expr ast.Expr
	if !p.ts.is(token.Semicolon) {
		var err error
		expr, err = p.parseExpr(true, nil)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.ts.accept(token.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewReturnStmnt(pos, expr), nil
}

// parseExprStmnt mirrors HLSLParser::ParseExprStmnt: a bare expression used
// as a statement (e.g. a prefix-unary or literal expression with no other
// effect).
func (p *Parser) parseExprStmnt() (*ast.ExprStmnt, error) {
	pos := p.pos()
	e, err := p.parseExpr(true, nil)
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewExprStmnt(pos, e), nil
}

// parseCtrlTransferStmnt mirrors HLSLParser::ParseCtrlTransferStmnt:
// "break;", "continue;", or "discard;".
func (p *Parser) parseCtrlTransferStmnt() (*ast.CtrlTransferStmnt, error) {
	pos := p.pos()
	tok, err := p.ts.accept(token.CtrlTransfer)
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewCtrlTransferStmnt(pos, tok.Spelling), nil
}
