// Package primitive is the glyph table and inverse table: the closed
// catalog of built-in operators, their arities, their glyph/name/ASCII
// surface, and their inverses.
package primitive

import "github.com/loomlang/loom/internal/ioop"

// Kind enumerates every primitive tag except Io, which carries its own
// sub-enumeration (see Primitive.IoOp).
type Kind int

const (
	// Stack ops
	Dup Kind = iota
	Over
	Flip
	Pop
	Unpack

	// Monadic pervasive
	Sign
	Not
	Neg
	Abs
	Sqrt
	Sin
	Cos
	Asin
	Acos
	Floor
	Ceil
	Round

	// Dyadic pervasive
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Add
	Sub
	Mul
	Div
	Mod
	Pow
	Root
	Min
	Max
	Atan

	// Monadic array
	Len
	Rank
	Shape
	Range
	First
	Reverse
	Enclose
	Normalize
	Deshape
	Transpose
	Sort
	Grade
	Indices
	Classify
	Deduplicate

	// Dyadic array
	Match
	NoMatch
	Join
	Pair
	Couple
	Pick
	Select
	Take
	Drop
	Reshape
	Rotate
	Windows
	Replicate
	Member
	Group
	IndexOf

	// Triadic
	Put

	// Modifiers
	Reduce
	Fold
	Scan
	Each
	Cells
	Table
	Repeat
	Invert
	Under
	Try

	// Misc
	Assert
	Nop
	Call
	String
	Parse
	Use

	// Constants
	Pi
	Infinity

	// ioKind is a sentinel: Primitive values with this Kind additionally
	// carry an ioop.Op and forward to the external I/O backend instead of
	// being classified in the catalog table (catalog.go).
	ioKind
)

// Primitive is a primitive tag: one of the Kind constants above, or Io
// wrapping an I/O sub-operation handled by an external collaborator.
type Primitive struct {
	kind Kind
	io   ioop.Op
}

// Of wraps a plain Kind as a Primitive.
func Of(k Kind) Primitive { return Primitive{kind: k} }

// IoPrimitive wraps an I/O operation as the Io tag.
func IoPrimitive(op ioop.Op) Primitive { return Primitive{kind: ioKind, io: op} }

// Kind returns the underlying tag, or ioKind if this is an Io primitive.
func (p Primitive) Kind() Kind { return p.kind }

// IsIo reports whether this primitive is the Io tag.
func (p Primitive) IsIo() bool { return p.kind == ioKind }

// IoOp returns the wrapped I/O operation, if this is an Io primitive.
func (p Primitive) IoOp() (ioop.Op, bool) {
	if p.kind != ioKind {
		return 0, false
	}
	return p.io, true
}

func (p Primitive) Equals(other Primitive) bool {
	return p.kind == other.kind && (p.kind != ioKind || p.io == other.io)
}
