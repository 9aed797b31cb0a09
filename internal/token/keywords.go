package token

// Keyword lookup tables (spec.md §6.1). The scanner passes every
// identifier lexeme through Lookup, so a spelling listed here is always
// emitted with its dedicated Kind and never as an Ident token. Go
// map literals stand in for the original translator's hand-rolled
// spelling-to-enum switch statements.

// ScalarTypes are the bare scalar type keywords.
var ScalarTypes = map[string]bool{
	"void": true, "bool": true, "int": true, "uint": true,
	"dword": true, "half": true, "float": true, "double": true,
	"min16float": true, "min10float": true, "min16int": true, "min12int": true,
	"min16uint": true,
}

// vectorDims are the arities HLSL allows after a scalar prefix;
// IsVectorTypeName and IsMatrixTypeName below recognize any scalar
// basename combined with them.
var vectorDims = []string{"1", "2", "3", "4"}

// IsVectorTypeName reports whether name has the shape "<scalar><N>", e.g.
// "float3", "int2", "bool4".
func IsVectorTypeName(name string) bool {
	for base := range ScalarTypes {
		for _, d := range vectorDims {
			if name == base+d {
				return true
			}
		}
	}
	return false
}

// IsMatrixTypeName reports whether name has the shape "<scalar><N>x<M>",
// e.g. "float4x4", "half3x2".
func IsMatrixTypeName(name string) bool {
	for base := range ScalarTypes {
		for _, r := range vectorDims {
			for _, c := range vectorDims {
				if name == base+r+"x"+c {
					return true
				}
			}
		}
	}
	return false
}

// TextureTypes are the bound-resource texture keywords.
var TextureTypes = map[string]bool{
	"texture": true, "texture1d": true, "texture1darray": true,
	"texture2d": true, "texture2darray": true, "texture2dms": true,
	"texture2dmsarray": true, "texture3d": true, "texturecube": true,
	"texturecubearray": true,
	"rwtexture1d":       true, "rwtexture1darray": true,
	"rwtexture2d": true, "rwtexture2darray": true, "rwtexture3d": true,
}

// SamplerTypes are the sampler-state keywords.
var SamplerTypes = map[string]bool{
	"sampler": true, "sampler1d": true, "sampler2d": true, "sampler3d": true,
	"samplercube": true, "samplerstate": true, "samplercomparisonstate": true,
}

// UniformBufferTypes are the uniform/structured-buffer block keywords.
var UniformBufferTypes = map[string]bool{
	"cbuffer": true, "tbuffer": true,
	"structuredbuffer": true, "rwstructuredbuffer": true,
	"appendstructuredbuffer": true, "consumestructuredbuffer": true,
	"bytevaddressbuffer": true, "rwbyteaddressbuffer": true,
	"buffer": true, "rwbuffer": true,
}

// InputModifiers are the parameter-direction keywords.
var InputModifiers = map[string]bool{
	"in": true, "out": true, "inout": true, "uniform": true,
}

// StorageModifiers are the variable storage-class keywords.
var StorageModifiers = map[string]bool{
	"extern": true, "nointerpolation": true, "precise": true,
	"shared": true, "groupshared": true, "static": true,
	"uniform": true, "volatile": true,
}

// TypeModifiers are the type-qualifier keywords that precede a VarType.
var TypeModifiers = map[string]bool{
	"const": true, "row_major": true, "column_major": true,
	"unorm": true, "snorm": true,
}

// CtrlTransferKeywords are the jump-statement keywords other than return.
var CtrlTransferKeywords = map[string]bool{
	"break": true, "continue": true, "discard": true,
}

// StatementKeywords are the remaining bare statement-introducing keywords,
// each mapped to its dedicated Kind.
var StatementKeywords = map[string]Kind{
	"if":       If,
	"else":     Else,
	"switch":   Switch,
	"case":     Case,
	"default":  Default,
	"for":      For,
	"while":    While,
	"do":       Do,
	"return":   Return,
	"struct":   Struct,
	"register": Register,
	"packoffset": PackOffset,
}

// BoolLiterals are the two spellings of the boolean literal.
var BoolLiterals = map[string]bool{
	"true": true, "false": true,
}

// Lookup classifies a bare identifier spelling into its keyword Kind, or
// returns (Ident, false) if it is an ordinary identifier. The scanner
// applies this to every maximal identifier lexeme (spec.md §4.1), so a
// spelling found in any of these tables never reaches the parser as an
// Ident and cannot be used where the grammar expects an identifier.
func Lookup(spelling string) (Kind, bool) {
	switch {
	case ScalarTypes[spelling]:
		return ScalarType, true
	case IsVectorTypeName(spelling):
		return VectorType, true
	case IsMatrixTypeName(spelling):
		return MatrixType, true
	case TextureTypes[spelling]:
		return Texture, true
	case SamplerTypes[spelling]:
		return Sampler, true
	case UniformBufferTypes[spelling]:
		return UniformBuffer, true
	case InputModifiers[spelling]:
		return InputModifier, true
	case StorageModifiers[spelling]:
		return StorageModifier, true
	case TypeModifiers[spelling]:
		return TypeModifier, true
	case CtrlTransferKeywords[spelling]:
		return CtrlTransfer, true
	case BoolLiterals[spelling]:
		return BoolLiteral, true
	}
	if k, ok := StatementKeywords[spelling]; ok {
		return k, true
	}
	return Ident, false
}
