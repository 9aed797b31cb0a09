package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		spelling string
		want     Kind
	}{
		{"scalar", "float", ScalarType},
		{"scalar void", "void", ScalarType},
		{"vector", "float3", VectorType},
		{"matrix", "float4x4", MatrixType},
		{"texture", "texture2d", Texture},
		{"sampler", "sampler2d", Sampler},
		{"uniform buffer", "cbuffer", UniformBuffer},
		{"input modifier", "inout", InputModifier},
		{"storage modifier", "static", StorageModifier},
		{"type modifier", "const", TypeModifier},
		{"ctrl transfer", "break", CtrlTransfer},
		{"bool literal", "true", BoolLiteral},
		{"statement keyword", "while", While},
		{"statement keyword struct", "struct", Struct},
		{"statement keyword register", "register", Register},
		{"ordinary identifier", "myVariable", Ident},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			kind, ok := Lookup(test.spelling)
			if test.want == Ident {
				require.False(t, ok)
			} else {
				require.True(t, ok)
			}
			require.Equal(t, test.want, kind)
		})
	}
}

func TestLookupTextureIsCaseSensitive(t *testing.T) {
	// The keyword tables are lowercase; "Texture2D" as written above isn't
	// actually in TextureTypes, so Lookup falls back to Ident. HLSL
	// identifiers and type names are case-sensitive, and this repo never
	// folds case before a table lookup (spec.md §4.1).
	kind, ok := Lookup("Texture2D")
	require.False(t, ok)
	require.Equal(t, Ident, kind)

	kind, ok = Lookup("texture2d")
	require.True(t, ok)
	require.Equal(t, Texture, kind)
}

func TestIsVectorTypeName(t *testing.T) {
	require.True(t, IsVectorTypeName("float3"))
	require.True(t, IsVectorTypeName("int2"))
	require.False(t, IsVectorTypeName("float5"))
	require.False(t, IsVectorTypeName("foo3"))
}

func TestIsMatrixTypeName(t *testing.T) {
	require.True(t, IsMatrixTypeName("float4x4"))
	require.True(t, IsMatrixTypeName("half3x2"))
	require.False(t, IsMatrixTypeName("float4"))
	require.False(t, IsMatrixTypeName("float5x5"))
}
