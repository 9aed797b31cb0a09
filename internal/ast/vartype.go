package ast

import "gopkg.hlsltranslate.org/parser.go/internal/source"

// VarType is a declarator's type: either a bare base-type spelling or an
// inline struct definition, never both (spec.md §3.3 invariant P3). For
// the struct case, SymbolRef returns a borrow of StructType rather than a
// stored raw address (spec.md §9 design note: "store the structure as the
// owned child and expose symbolRef as a lazily computed accessor").
type VarType struct {
	astNode
	BaseType   string // "" if StructType is set
	StructType *Structure
}

func NewVarTypeBase(pos source.SourcePos, baseType string) *VarType {
	return &VarType{astNode: astNode{pos}, BaseType: baseType}
}

func NewVarTypeStruct(pos source.SourcePos, structType *Structure) *VarType {
	return &VarType{astNode: astNode{pos}, StructType: structType}
}

func (*VarType) Kind() Kind { return KindVarType }

// SymbolRef returns the non-owning reference spec.md §3.3 invariant P3
// requires: the same Structure as StructType, or nil if this VarType names
// a base type instead.
func (v *VarType) SymbolRef() *Structure {
	return v.StructType
}

// VarIdent is an identifier with optional array-index expressions and an
// optional dotted continuation (spec.md §3.3).
type VarIdent struct {
	astNode
	Ident        string
	ArrayIndices []Expr
	Next         *VarIdent // nil if this is the last segment
}

func NewVarIdent(pos source.SourcePos, ident string, arrayIndices []Expr, next *VarIdent) *VarIdent {
	return &VarIdent{astNode: astNode{pos}, Ident: ident, ArrayIndices: arrayIndices, Next: next}
}

func (*VarIdent) Kind() Kind { return KindVarIdent }

// HasNext reports whether this ident has a dotted continuation, the
// condition spec.md §4.3.1 calls out when disambiguating a var-decl
// statement from an expression statement.
func (v *VarIdent) HasNext() bool { return v.Next != nil }

// VarDecl is one declarator within a VarDeclStmnt or Structure member list
// (spec.md §3.3). DeclStmntRef is the back-reference invariant P2
// requires: non-nil exactly when this VarDecl is a direct child of a
// VarDeclStmnt. It is set by NewVarDeclStmnt, never by this constructor,
// since a VarDecl can be built before its owning statement exists.
type VarDecl struct {
	astNode
	Name         string
	ArrayDims    []Expr
	Semantics    []*VarSemantic
	Initializer  Expr
	DeclStmntRef *VarDeclStmnt
}

func NewVarDecl(pos source.SourcePos, name string, arrayDims []Expr, semantics []*VarSemantic, initializer Expr) *VarDecl {
	return &VarDecl{astNode: astNode{pos}, Name: name, ArrayDims: arrayDims, Semantics: semantics, Initializer: initializer}
}

func (*VarDecl) Kind() Kind { return KindVarDecl }

// VarSemantic is a single ':'-introduced slot on a declarator: exactly one
// of Semantic, Register, or PackOffset is populated (spec.md §3.3,
// §4.3.1 "Semantics and bindings").
type VarSemantic struct {
	astNode
	Semantic   string // bare semantic name, e.g. "SV_POSITION"
	Register   string // register(ident) spelling, without the "register()" wrapper
	PackOffset *PackOffset
}

func NewVarSemanticName(pos source.SourcePos, semantic string) *VarSemantic {
	return &VarSemantic{astNode: astNode{pos}, Semantic: semantic}
}

func NewVarSemanticRegister(pos source.SourcePos, register string) *VarSemantic {
	return &VarSemantic{astNode: astNode{pos}, Register: register}
}

func NewVarSemanticPackOffset(pos source.SourcePos, packOffset *PackOffset) *VarSemantic {
	return &VarSemantic{astNode: astNode{pos}, PackOffset: packOffset}
}

func (*VarSemantic) Kind() Kind { return KindVarSemantic }

// PackOffset is "packoffset(registerName[.vectorComponent])".
type PackOffset struct {
	astNode
	RegisterName    string
	VectorComponent string // optional, "" if absent
}

func NewPackOffset(pos source.SourcePos, registerName, vectorComponent string) *PackOffset {
	return &PackOffset{astNode: astNode{pos}, RegisterName: registerName, VectorComponent: vectorComponent}
}

func (*PackOffset) Kind() Kind { return KindPackOffset }
