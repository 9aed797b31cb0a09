package parser

import (
	"gopkg.hlsltranslate.org/parser.go/internal/ast"
	"gopkg.hlsltranslate.org/parser.go/internal/token"
)

// parseExpr mirrors HLSLParser::ParseExpr(allowComma, initExpr). Most call
// sites pass allowComma=false (argument slots, ternary branches, list
// items); a handful — an assignment's right-hand side, a loop/if/switch
// condition, a return expression, and a bare expression statement — pass
// true, since a top-level comma there builds a ListExpr rather than ending
// the expression. initExpr lets a caller that has already parsed the
// expression's first operand splice it in instead of re-parsing it; no
// production in this grammar currently needs that, so every call site here
// passes nil, but the parameter is kept for fidelity with the original
// signature.
func (p *Parser) parseExpr(allowComma bool, initExpr ast.Expr) (ast.Expr, error) {
	pos := p.pos()
	first := initExpr
	var err error
	if first == nil {
		first, err = p.parseTernaryExpr()
		if err != nil {
			return nil, err
		}
	}
	if !allowComma || !p.ts.is(token.Comma) {
		return first, nil
	}
	exprs := []ast.Expr{first}
	for p.ts.is(token.Comma) {
		if _, err := p.ts.accept(token.Comma); err != nil {
			return nil, err
		}
		e, err := p.parseTernaryExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return ast.NewListExpr(pos, exprs), nil
}

// parseTernaryExpr parses a binary-operator chain followed by an optional
// "? then : else" (spec.md §4.3.1: ternary sits above the flat binary
// chain, below the comma list).
func (p *Parser) parseTernaryExpr() (ast.Expr, error) {
	pos := p.pos()
	cond, err := p.parseBinaryExpr()
	if err != nil {
		return nil, err
	}
	if !p.ts.is(token.TernaryOp) {
		return cond, nil
	}
	if _, err := p.ts.accept(token.TernaryOp); err != nil {
		return nil, err
	}
	then, err := p.parseTernaryExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.Colon); err != nil {
		return nil, err
	}
	els, err := p.parseTernaryExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewTernaryExpr(pos, cond, then, els), nil
}

// parseBinaryExpr builds a flat, left-associative chain of BinaryExpr nodes
// with no precedence applied (spec.md §4.3.1 "Expression chaining" — the
// parser never normalizes operator precedence; that is left entirely to
// whatever consumes this AST).
func (p *Parser) parseBinaryExpr() (ast.Expr, error) {
	pos := p.pos()
	lhs, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	for p.ts.is(token.BinaryOp) {
		opTok, err := p.ts.acceptAny()
		if err != nil {
			return nil, err
		}
		rhs, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		lhs = ast.NewBinaryExpr(pos, opTok.Spelling, lhs, rhs)
	}
	return lhs, nil
}

// parseUnaryExpr mirrors HLSLParser::ParseUnaryExpr: a prefix "!", "~",
// "++", "--", or unary "-" applied to another unary expression, bottoming
// out at a postfix expression.
func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	pos := p.pos()
	if p.ts.is(token.UnaryOp) || p.ts.isSpelled(token.BinaryOp, "-") {
		opTok, err := p.ts.acceptAny()
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(pos, opTok.Spelling, operand), nil
	}
	return p.parsePostfixExpr()
}

// parsePostfixExpr parses a primary expression and, if it's immediately
// followed by "++" or "--", wraps it as a PostUnaryExpr.
func (p *Parser) parsePostfixExpr() (ast.Expr, error) {
	pos := p.pos()
	e, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}
	if p.ts.is(token.UnaryOp) {
		opTok, err := p.ts.acceptAny()
		if err != nil {
			return nil, err
		}
		return ast.NewPostUnaryExpr(pos, opTok.Spelling, e), nil
	}
	return e, nil
}

// parsePrimaryExpr mirrors HLSLParser::IsPrimaryExpr's dispatch: a literal,
// a data-type name (possibly a constructor call), a parenthesized or cast
// expression, a brace initializer, or an identifier-led var access/call.
func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	switch {
	case p.isLiteral():
		return p.parseLiteralExpr()
	case p.isDataType():
		return p.parseTypeNameOrFunctionCallExpr()
	case p.ts.is(token.LBracket):
		return p.parseBracketOrCastExpr()
	case p.ts.is(token.LCurly):
		return p.parseInitializerExpr()
	case p.ts.is(token.Ident):
		return p.parseVarAccessOrFunctionCallExpr()
	default:
		return nil, p.errUnexpectedHint("expected an expression")
	}
}

// parseLiteralExpr mirrors HLSLParser::ParseLiteralExpr.
func (p *Parser) parseLiteralExpr() (*ast.LiteralExpr, error) {
	pos := p.pos()
	tok, err := p.ts.acceptAny()
	if err != nil {
		return nil, err
	}
	return ast.NewLiteralExpr(pos, tok.Kind, tok.Spelling), nil
}

// parseTypeNameOrFunctionCallExpr implements the type-name-vs-constructor-
// call disambiguation (spec.md §4.3.1): a data-type keyword is a
// TypeNameExpr unless immediately followed by '(', in which case it's a
// constructor call, e.g. "float3(1,2,3)".
func (p *Parser) parseTypeNameOrFunctionCallExpr() (ast.Expr, error) {
	pos := p.pos()
	tok, err := p.ts.acceptAny()
	if err != nil {
		return nil, err
	}
	if p.ts.is(token.LBracket) {
		ident := ast.NewVarIdent(tok.Pos, tok.Spelling, nil, nil)
		call, err := p.parseFunctionCall(ident)
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionCallExpr(pos, call), nil
	}
	return ast.NewTypeNameExpr(pos, tok.Spelling), nil
}

// parseBracketOrCastExpr implements the cast-vs-parenthesized-expression
// heuristic (spec.md §4.3.1): "(inner)operand" is a cast when inner is
// itself a syntactic type form — a TypeNameExpr, or a VarAccessExpr with no
// chained assignment — and operand can start a primary expression;
// otherwise it's a plain parenthesized expression.
func (p *Parser) parseBracketOrCastExpr() (ast.Expr, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.LBracket); err != nil {
		return nil, err
	}
	inner, err := p.parseExpr(false, nil)
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.RBracket); err != nil {
		return nil, err
	}

	isTypeForm := false
	switch v := inner.(type) {
	case *ast.TypeNameExpr:
		isTypeForm = true
	case *ast.VarAccessExpr:
		isTypeForm = v.AssignExpr == nil
	}
	if isTypeForm && p.isPrimaryExpr() {
		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewCastExpr(pos, inner, operand), nil
	}
	return ast.NewBracketExpr(pos, inner), nil
}

// parseVarAccessOrFunctionCallExpr mirrors
// HLSLParser::ParseVarAccessOrFunctionCallExpr (HLSLParser.cpp:1022-1028):
// parse the full VarIdent chain first — including any dotted
// continuation, e.g. "tex.Sample" — and only then test for a trailing
// '(' to decide between a function call and a (possibly dotted/indexed)
// variable access, optionally carrying a chained assignment as its own
// sub-expression (spec.md §3.3, §4.3.1). Checking for '(' against the
// bare leading identifier instead would leave a dotted method-style call
// such as "tex.Sample(s, uv)" unparseable.
func (p *Parser) parseVarAccessOrFunctionCallExpr() (ast.Expr, error) {
	pos := p.pos()
	nameTok, err := p.ts.accept(token.Ident)
	if err != nil {
		return nil, err
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
		return ast.NewFunctionCallExpr(pos, call), nil
	}
	return p.parseVarAccessExpr(nameTok, ident)
}

// parseVarAccessExpr mirrors HLSLParser::ParseVarAccessExpr, continuing
// from a VarIdent chain the caller already parsed in full.
func (p *Parser) parseVarAccessExpr(nameTok token.Token, ident *ast.VarIdent) (*ast.VarAccessExpr, error) {
	assignOp := ""
	var assignExpr ast.Expr
	if p.ts.is(token.AssignOp) {
		opTok, err := p.ts.acceptAny()
		if err != nil {
			return nil, err
		}
		assignOp = opTok.Spelling
		assignExpr, err = p.parseExpr(false, nil)
		if err != nil {
			return nil, err
		}
	}
	return ast.NewVarAccessExpr(nameTok.Pos, ident, assignOp, assignExpr), nil
}
