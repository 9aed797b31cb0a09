package parser

import (
	"gopkg.hlsltranslate.org/parser.go/internal/ast"
	"gopkg.hlsltranslate.org/parser.go/internal/token"
)

// parseVarDeclList mirrors HLSLParser::ParseVarDeclList: one or more
// comma-separated declarators sharing a VarDeclStmnt's type and modifiers.
func (p *Parser) parseVarDeclList() ([]*ast.VarDecl, error) {
	var decls []*ast.VarDecl
	for {
		d, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
		if !p.ts.is(token.Comma) {
			break
		}
		if _, err := p.ts.accept(token.Comma); err != nil {
			return nil, err
		}
	}
	return decls, nil
}

// parseVarDeclStmntList mirrors HLSLParser::ParseVarDeclStmntList: a
// brace-delimited block of member declarations, shared by struct bodies and
// uniform-buffer bodies.
func (p *Parser) parseVarDeclStmntList() ([]*ast.VarDeclStmnt, error) {
	if _, err := p.ts.accept(token.LCurly); err != nil {
		return nil, err
	}
	var members []*ast.VarDeclStmnt
	for !p.ts.is(token.RCurly) {
		m, err := p.parseVarDeclStmnt()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if _, err := p.ts.accept(token.RCurly); err != nil {
		return nil, err
	}
	return members, nil
}

// parseParameterList mirrors HLSLParser::ParseParameterList.
func (p *Parser) parseParameterList() ([]*ast.VarDeclStmnt, error) {
	if _, err := p.ts.accept(token.LBracket); err != nil {
		return nil, err
	}
	var params []*ast.VarDeclStmnt
	if !p.ts.is(token.RBracket) {
		for {
			param, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.ts.is(token.Comma) {
				break
			}
			if _, err := p.ts.accept(token.Comma); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.ts.accept(token.RBracket); err != nil {
		return nil, err
	}
	return params, nil
}

// parseStmntList mirrors HLSLParser::ParseStmntList: the body of a
// CodeBlock, already positioned past its opening '{'.
func (p *Parser) parseStmntList() ([]ast.Stmnt, error) {
	var stmnts []ast.Stmnt
	for !p.ts.is(token.RCurly) {
		s, err := p.parseStmnt()
		if err != nil {
			return nil, err
		}
		stmnts = append(stmnts, s)
	}
	return stmnts, nil
}

// parseExprList mirrors HLSLParser::ParseExprList(terminator,
// allowLastComma): comma-separated expressions up to (but not consuming)
// terminator. allowLastComma permits a trailing comma immediately before
// terminator; parseArgumentList passes false, so a function call's
// argument list rejects one.
func (p *Parser) parseExprList(terminator token.Kind, allowLastComma bool) ([]ast.Expr, error) {
	var exprs []ast.Expr
	if p.ts.is(terminator) {
		return exprs, nil
	}
	for {
		e, err := p.parseExpr(false, nil)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if !p.ts.is(token.Comma) {
			break
		}
		if _, err := p.ts.accept(token.Comma); err != nil {
			return nil, err
		}
		if allowLastComma && p.ts.is(terminator) {
			break
		}
	}
	return exprs, nil
}

// parseArrayDimensionList mirrors HLSLParser::ParseArrayDimensionList: zero
// or more "[dim]" suffixes.
func (p *Parser) parseArrayDimensionList() ([]ast.Expr, error) {
	var dims []ast.Expr
	for p.ts.is(token.LParen) {
		d, err := p.parseArrayDimension()
		if err != nil {
			return nil, err
		}
		dims = append(dims, d)
	}
	return dims, nil
}

// parseArgumentList mirrors HLSLParser::ParseArgumentList: a
// parenthesized, comma-separated expression list.
func (p *Parser) parseArgumentList() ([]ast.Expr, error) {
	if _, err := p.ts.accept(token.LBracket); err != nil {
		return nil, err
	}
	args, err := p.parseExprList(token.RBracket, false)
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.RBracket); err != nil {
		return nil, err
	}
	return args, nil
}

// parseInitializerList mirrors HLSLParser::ParseInitializerList: the
// comma-separated contents of a brace initializer, already positioned past
// its opening '{'.
func (p *Parser) parseInitializerList() ([]ast.Expr, error) {
	var exprs []ast.Expr
	if p.ts.is(token.RCurly) {
		return exprs, nil
	}
	for {
		e, err := p.parseInitializer()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if !p.ts.is(token.Comma) {
			break
		}
		if _, err := p.ts.accept(token.Comma); err != nil {
			return nil, err
		}
		if p.ts.is(token.RCurly) {
			break
		}
	}
	return exprs, nil
}

// parseVarSemanticList mirrors HLSLParser::ParseVarSemanticList: zero or
// more ':'-introduced semantic/register/packoffset slots chained on one
// declarator.
func (p *Parser) parseVarSemanticList() ([]*ast.VarSemantic, error) {
	var sems []*ast.VarSemantic
	for p.ts.is(token.Colon) {
		s, err := p.parseVarSemantic()
		if err != nil {
			return nil, err
		}
		sems = append(sems, s)
	}
	return sems, nil
}

// parseAttributeList mirrors HLSLParser::ParseAttributeList: zero or more
// "[attr, attr, ...]" groups preceding a function, loop, if, or switch.
func (p *Parser) parseAttributeList() ([]*ast.FunctionCall, error) {
	var attribs []*ast.FunctionCall
	for p.ts.is(token.LParen) {
		if _, err := p.ts.accept(token.LParen); err != nil {
			return nil, err
		}
		for {
			a, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}
			attribs = append(attribs, a)
			if !p.ts.is(token.Comma) {
				break
			}
			if _, err := p.ts.accept(token.Comma); err != nil {
				return nil, err
			}
		}
		if _, err := p.ts.accept(token.RParen); err != nil {
			return nil, err
		}
	}
	return attribs, nil
}

// parseSwitchCaseList mirrors HLSLParser::ParseSwitchCaseList.
func (p *Parser) parseSwitchCaseList() ([]*ast.SwitchCase, error) {
	var cases []*ast.SwitchCase
	for p.ts.is(token.Case) || p.ts.is(token.Default) {
		c, err := p.parseSwitchCase()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// parseBufferDeclIdentList mirrors HLSLParser::ParseBufferDeclIdentList.
func (p *Parser) parseBufferDeclIdentList() ([]*ast.BufferDeclIdent, error) {
	var idents []*ast.BufferDeclIdent
	for {
		id, err := p.parseBufferDeclIdent()
		if err != nil {
			return nil, err
		}
		idents = append(idents, id)
		if !p.ts.is(token.Comma) {
			break
		}
		if _, err := p.ts.accept(token.Comma); err != nil {
			return nil, err
		}
	}
	return idents, nil
}
