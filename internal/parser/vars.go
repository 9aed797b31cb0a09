package parser

import (
	"gopkg.hlsltranslate.org/parser.go/internal/ast"
	"gopkg.hlsltranslate.org/parser.go/internal/token"
)

// parseVarType mirrors HLSLParser::ParseVarType. allowVoid controls whether
// the bare "void" spelling is accepted (true for a function's return type,
// false everywhere else — spec.md §4.3.1).
func (p *Parser) parseVarType(allowVoid bool) (*ast.VarType, error) {
	pos := p.pos()
	switch {
	case p.ts.is(token.Struct):
		if _, err := p.ts.accept(token.Struct); err != nil {
			return nil, err
		}
		name := ""
		if p.ts.is(token.Ident) {
			tok, err := p.ts.acceptAny()
			if err != nil {
				return nil, err
			}
			name = tok.Spelling
		}
		members, err := p.parseVarDeclStmntList()
		if err != nil {
			return nil, err
		}
		structure := ast.NewStructure(pos, name, members)
		return ast.NewVarTypeStruct(pos, structure), nil

	case p.isDataType():
		if p.ts.cur.Spelling == "void" && !allowVoid {
			return nil, p.errUnexpectedHint("'void' is not a valid type here")
		}
		tok, err := p.ts.acceptAny()
		if err != nil {
			return nil, err
		}
		return ast.NewVarTypeBase(pos, tok.Spelling), nil

	case p.ts.is(token.Ident):
		// A user-defined (struct) type named by reference.
		tok, err := p.ts.acceptAny()
		if err != nil {
			return nil, err
		}
		return ast.NewVarTypeBase(pos, tok.Spelling), nil

	default:
		return nil, p.errUnexpectedHint("expected a type")
	}
}

// parseVarIdent mirrors HLSLParser::ParseVarIdent.
func (p *Parser) parseVarIdent() (*ast.VarIdent, error) {
	identTok, err := p.ts.accept(token.Ident)
	if err != nil {
		return nil, err
	}
	return p.parseVarIdentTail(identTok)
}

// parseVarIdentTail continues a VarIdent chain after its leading identifier
// token has already been consumed by the caller (spec.md §4.3.1: the
// identifier-led statement disambiguation needs to inspect that token
// before deciding whether it is building a VarIdent at all).
func (p *Parser) parseVarIdentTail(identTok token.Token) (*ast.VarIdent, error) {
	var indices []ast.Expr
	for p.ts.is(token.LParen) {
		if _, err := p.ts.accept(token.LParen); err != nil {
			return nil, err
		}
		idx, err := p.parseExpr(false, nil)
		if err != nil {
			return nil, err
		}
		if _, err := p.ts.accept(token.RParen); err != nil {
			return nil, err
		}
		indices = append(indices, idx)
	}
	var next *ast.VarIdent
	if p.ts.is(token.Dot) {
		if _, err := p.ts.accept(token.Dot); err != nil {
			return nil, err
		}
		n, err := p.parseVarIdent()
		if err != nil {
			return nil, err
		}
		next = n
	}
	return ast.NewVarIdent(identTok.Pos, identTok.Spelling, indices, next), nil
}

// parseVarDecl mirrors HLSLParser::ParseVarDecl: one declarator within a
// VarDeclStmnt or Structure member list.
func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	pos := p.pos()
	nameTok, err := p.ts.accept(token.Ident)
	if err != nil {
		return nil, err
	}
	dims, err := p.parseArrayDimensionList()
	if err != nil {
		return nil, err
	}
	sems, err := p.parseVarSemanticList()
	if err != nil {
		return nil, err
	}
	var initializer ast.Expr
	if p.ts.isSpelled(token.AssignOp, "=") {
		if _, err := p.ts.acceptAny(); err != nil {
			return nil, err
		}
		initializer, err = p.parseInitializer()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewVarDecl(pos, nameTok.Spelling, dims, sems, initializer), nil
}

// parseArrayDimension mirrors HLSLParser::ParseArrayDimension: a single
// "[expr]" or, for an unsized array dimension, a bare "[]".
func (p *Parser) parseArrayDimension() (ast.Expr, error) {
	if _, err := p.ts.accept(token.LParen); err != nil {
		return nil, err
	}
	if p.ts.is(token.RParen) {
		if _, err := p.ts.accept(token.RParen); err != nil {
			return nil, err
		}
		return nil, nil
	}
	dim, err := p.parseExpr(false, nil)
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.RParen); err != nil {
		return nil, err
	}
	return dim, nil
}

// parseInitializer mirrors HLSLParser::ParseInitializer: either a
// brace-delimited InitializerExpr or a plain expression.
func (p *Parser) parseInitializer() (ast.Expr, error) {
	if p.ts.is(token.LCurly) {
		return p.parseInitializerExpr()
	}
	return p.parseExpr(false, nil)
}

// parseInitializerExpr mirrors HLSLParser::ParseInitializerExpr.
func (p *Parser) parseInitializerExpr() (*ast.InitializerExpr, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.LCurly); err != nil {
		return nil, err
	}
	exprs, err := p.parseInitializerList()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.RCurly); err != nil {
		return nil, err
	}
	return ast.NewInitializerExpr(pos, exprs), nil
}

// parseVarSemantic mirrors HLSLParser::ParseVarSemantic: exactly one of a
// bare semantic name, a register binding, or a packoffset binding (spec.md
// §3.3).
func (p *Parser) parseVarSemantic() (*ast.VarSemantic, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.Colon); err != nil {
		return nil, err
	}
	switch {
	case p.ts.is(token.Register):
		reg, err := p.parseRegister(false)
		if err != nil {
			return nil, err
		}
		return ast.NewVarSemanticRegister(pos, reg), nil
	case p.ts.is(token.PackOffset):
		po, err := p.parsePackOffset()
		if err != nil {
			return nil, err
		}
		return ast.NewVarSemanticPackOffset(pos, po), nil
	default:
		identTok, err := p.ts.accept(token.Ident)
		if err != nil {
			return nil, err
		}
		return ast.NewVarSemanticName(pos, identTok.Spelling), nil
	}
}

// parsePackOffset mirrors HLSLParser::ParsePackOffset:
// "packoffset(registerName['.'vectorComponent])".
func (p *Parser) parsePackOffset() (*ast.PackOffset, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.PackOffset); err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.LBracket); err != nil {
		return nil, err
	}
	registerTok, err := p.ts.accept(token.Ident)
	if err != nil {
		return nil, err
	}
	component := ""
	if p.ts.is(token.Dot) {
		if _, err := p.ts.accept(token.Dot); err != nil {
			return nil, err
		}
		compTok, err := p.ts.accept(token.Ident)
		if err != nil {
			return nil, err
		}
		component = compTok.Spelling
	}
	if _, err := p.ts.accept(token.RBracket); err != nil {
		return nil, err
	}
	return ast.NewPackOffset(pos, registerTok.Spelling, component), nil
}

// parseRegister mirrors HLSLParser::ParseRegister. parseColon controls
// whether the leading ':' is consumed here (callers that already peeked at
// it via the Colon token pass true).
func (p *Parser) parseRegister(parseColon bool) (string, error) {
	if parseColon {
		if _, err := p.ts.accept(token.Colon); err != nil {
			return "", err
		}
	}
	if _, err := p.ts.accept(token.Register); err != nil {
		return "", err
	}
	if _, err := p.ts.accept(token.LBracket); err != nil {
		return "", err
	}
	identTok, err := p.ts.accept(token.Ident)
	if err != nil {
		return "", err
	}
	reg := identTok.Spelling
	if p.ts.is(token.Comma) {
		if _, err := p.ts.accept(token.Comma); err != nil {
			return "", err
		}
		spaceTok, err := p.ts.accept(token.Ident)
		if err != nil {
			return "", err
		}
		reg += "," + spaceTok.Spelling
	}
	if _, err := p.ts.accept(token.RBracket); err != nil {
		return "", err
	}
	return reg, nil
}

// parseSemantic mirrors HLSLParser::ParseSemantic: a function's own return
// semantic, e.g. "float4 main() : SV_TARGET".
func (p *Parser) parseSemantic(parseColon bool) (string, error) {
	if parseColon {
		if _, err := p.ts.accept(token.Colon); err != nil {
			return "", err
		}
	}
	identTok, err := p.ts.accept(token.Ident)
	if err != nil {
		return "", err
	}
	return identTok.Spelling, nil
}
