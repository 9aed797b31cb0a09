package ast

import "gopkg.hlsltranslate.org/parser.go/internal/source"

func (*FunctionDecl) globalDecl()      {}
func (*UniformBufferDecl) globalDecl() {}
func (*TextureDecl) globalDecl()       {}
func (*SamplerDecl) globalDecl()       {}
func (*StructDecl) globalDecl()        {}
func (*DirectiveDecl) globalDecl()     {}

// FunctionDecl is a function prototype or definition (spec.md §4.3.2:
// "Attribute* VarType(void-ok) Ident ParamList (':' Semantic)? (';' |
// CodeBlock)"). Body is nil for a prototype.
type FunctionDecl struct {
	astNode
	Attribs    []*FunctionCall
	ReturnType *VarType
	Name       string
	Params     []*VarDeclStmnt
	Semantic   string
	Body       *CodeBlock
}

func NewFunctionDecl(pos source.SourcePos, attribs []*FunctionCall, returnType *VarType, name string, params []*VarDeclStmnt, semantic string, body *CodeBlock) *FunctionDecl {
	return &FunctionDecl{astNode: astNode{pos}, Attribs: attribs, ReturnType: returnType, Name: name, Params: params, Semantic: semantic, Body: body}
}

func (*FunctionDecl) Kind() Kind { return KindFunctionDecl }

// IsPrototype reports whether this declaration has no body.
func (f *FunctionDecl) IsPrototype() bool { return f.Body == nil }

// UniformBufferDecl is a cbuffer/tbuffer block (spec.md §3.3).
type UniformBufferDecl struct {
	astNode
	BufferType string // the token.UniformBufferTypes spelling, e.g. "cbuffer"
	Name       string
	Register   string // optional, "" if absent
	Members    []*VarDeclStmnt
}

func NewUniformBufferDecl(pos source.SourcePos, bufferType, name, register string, members []*VarDeclStmnt) *UniformBufferDecl {
	return &UniformBufferDecl{astNode: astNode{pos}, BufferType: bufferType, Name: name, Register: register, Members: members}
}

func (*UniformBufferDecl) Kind() Kind { return KindUniformBufferDecl }

// TextureDecl declares one or more texture-typed resources sharing a
// texture type and optional generic color type (e.g. "Texture2D<float4>").
type TextureDecl struct {
	astNode
	TextureType string
	ColorType   string // optional, "" if absent
	Idents      []*BufferDeclIdent
}

func NewTextureDecl(pos source.SourcePos, textureType, colorType string, idents []*BufferDeclIdent) *TextureDecl {
	return &TextureDecl{astNode: astNode{pos}, TextureType: textureType, ColorType: colorType, Idents: idents}
}

func (*TextureDecl) Kind() Kind { return KindTextureDecl }

// SamplerDecl declares one or more sampler-typed resources.
type SamplerDecl struct {
	astNode
	SamplerType string
	Idents      []*BufferDeclIdent
}

func NewSamplerDecl(pos source.SourcePos, samplerType string, idents []*BufferDeclIdent) *SamplerDecl {
	return &SamplerDecl{astNode: astNode{pos}, SamplerType: samplerType, Idents: idents}
}

func (*SamplerDecl) Kind() Kind { return KindSamplerDecl }

// StructDecl wraps a top-level struct declaration statement (the struct is
// declared but not used inline as a variable type).
type StructDecl struct {
	astNode
	Struct *Structure
}

func NewStructDecl(pos source.SourcePos, structure *Structure) *StructDecl {
	return &StructDecl{astNode: astNode{pos}, Struct: structure}
}

func (*StructDecl) Kind() Kind { return KindStructDecl }

// DirectiveDecl is a top-level preprocessor directive kept verbatim
// (spec.md §1: "directives are kept verbatim as tokens").
type DirectiveDecl struct {
	astNode
	Line string
}

func NewDirectiveDecl(pos source.SourcePos, line string) *DirectiveDecl {
	return &DirectiveDecl{astNode: astNode{pos}, Line: line}
}

func (*DirectiveDecl) Kind() Kind { return KindDirectiveDecl }

// Structure is a struct body: a name (empty for an anonymous struct used
// inline in a VarType) and its member declarations.
type Structure struct {
	astNode
	Name    string
	Members []*VarDeclStmnt
}

func NewStructure(pos source.SourcePos, name string, members []*VarDeclStmnt) *Structure {
	return &Structure{astNode: astNode{pos}, Name: name, Members: members}
}

func (*Structure) Kind() Kind { return KindStructure }

// BufferDeclIdent is one identifier in a texture/sampler declaration list,
// with an optional register binding (spec.md §3.3).
type BufferDeclIdent struct {
	astNode
	Ident    string
	Register string // optional, "" if absent
}

func NewBufferDeclIdent(pos source.SourcePos, ident, register string) *BufferDeclIdent {
	return &BufferDeclIdent{astNode: astNode{pos}, Ident: ident, Register: register}
}

func (*BufferDeclIdent) Kind() Kind { return KindBufferDeclIdent }

// FunctionCall is the shared grammar artifact spec.md §3.3 calls out: not a
// node family of its own account, but embedded wherever a call shape
// occurs (FunctionCallExpr, FunctionCallStmnt, or an attribute).
type FunctionCall struct {
	astNode
	Name *VarIdent
	Args []Expr
}

func NewFunctionCall(pos source.SourcePos, name *VarIdent, args []Expr) *FunctionCall {
	return &FunctionCall{astNode: astNode{pos}, Name: name, Args: args}
}

func (*FunctionCall) Kind() Kind { return KindFunctionCall }
