package primitive

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/loomlang/loom/internal/ioop"
	"github.com/loomlang/loom/internal/token"
)

// lowercaser does Unicode-aware case folding for primitive names, so a
// glyph-adjacent name like "Π" (rather than plain ASCII) still resolves
// the same way a lowercase spelling would.
var lowercaser = cases.Lower(language.Und)

// Name returns the primitive's canonical lowercase name.
func (p Primitive) Name() string {
	if op, ok := p.IoOp(); ok {
		return "io_" + op.Name()
	}
	return table[p.kind].name
}

// Ascii returns the primitive's ASCII token spelling, if it has one.
func (p Primitive) Ascii() (token.Simple, bool) {
	e := table[p.kind]
	return e.ascii, e.hasAscii
}

// Unicode returns the primitive's single-glyph spelling, if it has one.
func (p Primitive) Unicode() (rune, bool) {
	e := table[p.kind]
	return e.glyph, e.hasGlyph
}

// Args returns the primitive's argument count, if fixed. Call has no fixed
// arity: it invokes whatever function it pops.
func (p Primitive) Args() (int, bool) {
	if op, ok := p.IoOp(); ok {
		return op.Args(), true
	}
	e := table[p.kind]
	return e.args, e.hasArgs
}

// Outputs returns the primitive's result count, if fixed. Unpack's output
// count depends on the popped array's length, so it has none.
func (p Primitive) Outputs() (int, bool) {
	if op, ok := p.IoOp(); ok {
		return op.Outputs(), true
	}
	e := table[p.kind]
	return e.outputs, e.hasOutputs
}

// IsModifier reports whether this primitive takes function operands from
// the surrounding syntax rather than values from the stack.
func (p Primitive) IsModifier() bool {
	return !p.IsIo() && table[p.kind].isModifier
}

// ModifierArgs returns the number of function operands a modifier consumes
// (1 for all but Under and Try, which take 2).
func (p Primitive) ModifierArgs() int {
	return table[p.kind].modifierArgs
}

// All returns every non-Io primitive in catalog order.
func All() []Primitive {
	out := make([]Primitive, len(allKinds))
	for i, k := range allKinds {
		out[i] = Of(k)
	}
	return out
}

// FromSimple finds the primitive with the given ASCII token, if any.
func FromSimple(t token.Simple) (Primitive, bool) {
	for _, k := range allKinds {
		if e := table[k]; e.hasAscii && e.ascii == t {
			return Of(k), true
		}
	}
	return Primitive{}, false
}

// FromUnicode finds the primitive with the given glyph, if any.
func FromUnicode(r rune) (Primitive, bool) {
	for _, k := range allKinds {
		if e := table[k]; e.hasGlyph && e.glyph == r {
			return Of(k), true
		}
	}
	return Primitive{}, false
}

// FromName resolves a primitive by name: lowercase the input; check it
// against the I/O catalog first; special-case "pi" and "π" (Pi has a glyph
// spelling that collides with no name, so this keeps pi reachable by name
// too); reject names shorter than 3 characters as ambiguous; then accept an
// exact name match or the single name it is an unambiguous prefix of. Two
// or more candidate names make the prefix ambiguous and the lookup fails
// rather than guessing between near-miss spellings.
func FromName(name string) (Primitive, bool) {
	lower := lowercaser.String(name)

	if op, ok := ioop.FromName(lower); ok {
		return IoPrimitive(op), true
	}

	if lower == "pi" || lower == "π" {
		return Of(Pi), true
	}

	if len(lower) < 3 {
		return Primitive{}, false
	}

	var match Kind
	found := false
	ambiguous := false
	for _, k := range allKinds {
		n := table[k].name
		if n == lower {
			return Of(k), true
		}
		if strings.HasPrefix(n, lower) {
			if found {
				ambiguous = true
			}
			match = k
			found = true
		}
	}
	if found && !ambiguous {
		return Of(match), true
	}
	return Primitive{}, false
}
