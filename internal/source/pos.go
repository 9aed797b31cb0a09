// Package source holds the input text a scan/parse runs over and the
// position bookkeeping every token and AST node carries (spec.md §3.1).
package source

import "fmt"

// SourcePos is a 1-based (line, column) pair. The zero value is invalid;
// every token and AST node stores one fixed at creation time and never
// mutates it afterward.
type SourcePos struct {
	Line   uint32
	Column uint32
}

// String renders the position as "L:C", matching the original HLSL
// translator's SourcePos::ToString used throughout its diagnostics.
func (p SourcePos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether both coordinates satisfy the 1-based invariant
// spec.md §8 P1 requires of every reachable AST node.
func (p SourcePos) IsValid() bool {
	return p.Line >= 1 && p.Column >= 1
}
