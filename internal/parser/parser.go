// Package parser implements the HLSL recursive-descent parser (spec.md
// §4.3, C5) over the token stream adapter in stream.go (C3) and the
// scanner in internal/lexer (C2), building the tree defined in
// internal/ast (C4). Every production is a direct translation of the
// matching Parse<Name> method in the original HLSL translator; the
// comment above each names which one.
package parser

import (
	"gopkg.hlsltranslate.org/parser.go/internal/ast"
	"gopkg.hlsltranslate.org/parser.go/internal/diagnostic"
	"gopkg.hlsltranslate.org/parser.go/internal/lexer"
	"gopkg.hlsltranslate.org/parser.go/internal/logger"
	"gopkg.hlsltranslate.org/parser.go/internal/source"
	"gopkg.hlsltranslate.org/parser.go/internal/token"
)

// Parser is a single-use recursive-descent parser (spec.md §5: the parser
// holds exclusive ownership of the partial AST until it returns; nothing
// here is safe to share across goroutines or reuse across parses).
type Parser struct {
	ts  *tokenStream
	log logger.Logger
}

// New returns a Parser that routes diagnostics to log in addition to
// returning them to the caller (spec.md §7). A nil log is replaced with
// logger.NullLogger.
func New(log logger.Logger) *Parser {
	if log == nil {
		log = logger.NullLogger{}
	}
	return &Parser{log: log}
}

// Parse scans and parses src into a Program, or fails with the first
// diagnostic encountered — either a *diagnostic.ScanError from the
// scanner or a *diagnostic.ParseError from a failed grammar predicate.
// There is no recovery (spec.md §1 Non-goals, §7): the first failure
// aborts the whole parse and no partial AST is returned.
func (p *Parser) Parse(src *source.SourceCode) (*ast.Program, error) {
	scan := lexer.New(src, src.Name())
	ts, err := newTokenStream(scan, src.Name())
	if err != nil {
		p.fail(err)
		return nil, err
	}
	p.ts = ts

	prog, err := p.parseProgram()
	if err != nil {
		p.fail(err)
		return nil, err
	}
	return prog, nil
}

func (p *Parser) fail(err error) {
	p.log.Error(err.Error())
}

func (p *Parser) pos() source.SourcePos {
	return p.ts.cur.Pos
}

func (p *Parser) errUnexpectedHint(hint string) error {
	return diagnostic.UnexpectedWithHint(p.ts.loc(), p.ts.cur.Spelling, hint)
}

// isDataType mirrors HLSLParser::IsDataType.
func (p *Parser) isDataType() bool {
	return p.ts.is(token.ScalarType) || p.ts.is(token.VectorType) || p.ts.is(token.MatrixType) ||
		p.ts.is(token.Texture) || p.ts.is(token.Sampler)
}

// isLiteral mirrors HLSLParser::IsLiteral.
func (p *Parser) isLiteral() bool {
	return p.ts.is(token.BoolLiteral) || p.ts.is(token.IntLiteral) || p.ts.is(token.FloatLiteral)
}

// isPrimaryExpr mirrors HLSLParser::IsPrimaryExpr.
func (p *Parser) isPrimaryExpr() bool {
	return p.isLiteral() || p.ts.is(token.Ident) || p.ts.is(token.UnaryOp) ||
		p.ts.isSpelled(token.BinaryOp, "-") || p.ts.is(token.LBracket)
}

// parseProgram mirrors HLSLParser::ParseProgram.
func (p *Parser) parseProgram() (*ast.Program, error) {
	pos := p.pos()
	var decls []ast.GlobalDecl
	for !p.ts.is(token.EndOfStream) {
		d, err := p.parseGlobalDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return ast.NewProgram(pos, decls), nil
}

// parseCodeBlock mirrors HLSLParser::ParseCodeBlock.
func (p *Parser) parseCodeBlock() (*ast.CodeBlock, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.LCurly); err != nil {
		return nil, err
	}
	stmnts, err := p.parseStmntList()
	if err != nil {
		return nil, err
	}
	if _, err := p.ts.accept(token.RCurly); err != nil {
		return nil, err
	}
	return ast.NewCodeBlock(pos, stmnts), nil
}

// parseBufferDeclIdent mirrors HLSLParser::ParseBufferDeclIdent.
func (p *Parser) parseBufferDeclIdent() (*ast.BufferDeclIdent, error) {
	pos := p.pos()
	identTok, err := p.ts.accept(token.Ident)
	if err != nil {
		return nil, err
	}
	register := ""
	if p.ts.is(token.Colon) {
		register, err = p.parseRegister(true)
		if err != nil {
			return nil, err
		}
	}
	return ast.NewBufferDeclIdent(pos, identTok.Spelling, register), nil
}

// parseFunctionCall mirrors HLSLParser::ParseFunctionCall. varIdent may be
// nil, in which case the callee name is parsed fresh (a data-type keyword
// or an ordinary identifier).
func (p *Parser) parseFunctionCall(varIdent *ast.VarIdent) (*ast.FunctionCall, error) {
	pos := p.pos()
	if varIdent == nil {
		if p.isDataType() {
			nameTok, err := p.ts.acceptAny()
			if err != nil {
				return nil, err
			}
			varIdent = ast.NewVarIdent(nameTok.Pos, nameTok.Spelling, nil, nil)
		} else {
			var err error
			varIdent, err = p.parseVarIdent()
			if err != nil {
				return nil, err
			}
		}
	}
	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionCall(pos, varIdent, args), nil
}

// parseStructure mirrors HLSLParser::ParseStructure.
func (p *Parser) parseStructure() (*ast.Structure, error) {
	pos := p.pos()
	if _, err := p.ts.accept(token.Struct); err != nil {
		return nil, err
	}
	nameTok, err := p.ts.accept(token.Ident)
	if err != nil {
		return nil, err
	}
	members, err := p.parseVarDeclStmntList()
	if err != nil {
		return nil, err
	}
	return ast.NewStructure(pos, nameTok.Spelling, members), nil
}

// parseParameter mirrors HLSLParser::ParseParameter.
func (p *Parser) parseParameter() (*ast.VarDeclStmnt, error) {
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
			// A later input modifier overwrites an earlier one; duplicates are not rejected.
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
	decl, err := p.parseVarDecl()
	if err != nil {
		return nil, err
	}
	return ast.NewVarDeclStmnt(pos, inputMod, storageMods, typeMods, vt, []*ast.VarDecl{decl}), nil
}

// parseSwitchCase mirrors HLSLParser::ParseSwitchCase.
func (p *Parser) parseSwitchCase() (*ast.SwitchCase, error) {
	pos := p.pos()
	var expr ast.Expr
	if p.ts.is(token.Case) {
		if _, err := p.ts.accept(token.Case); err != nil {
			return nil, err
		}
		e, err := p.parseExpr(false, nil)
		if err != nil {
			return nil, err
		}
		expr = e
	} else {
		if _, err := p.ts.accept(token.Default); err != nil {
			return nil, err
		}
	}
	if _, err := p.ts.accept(token.Colon); err != nil {
		return nil, err
	}
	var stmnts []ast.Stmnt
	for !p.ts.is(token.Case) && !p.ts.is(token.Default) && !p.ts.is(token.RCurly) {
		s, err := p.parseStmnt()
		if err != nil {
			return nil, err
		}
		stmnts = append(stmnts, s)
	}
	return ast.NewSwitchCase(pos, expr, stmnts), nil
}
