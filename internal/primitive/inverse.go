package primitive

// selfInverse is the set of primitives that are their own inverse.
var selfInverse = map[Kind]bool{
	Flip:    true,
	Neg:     true,
	Not:     true,
	Reverse: true,
}

// pairedInverse maps a primitive to its distinct inverse partner. The map
// is built symmetric below, so callers never need to check both directions.
var pairedInverse = map[Kind]Kind{
	Sin:  Asin,
	Asin: Sin,
	Cos:  Acos,
	Acos: Cos,
	Add:  Sub,
	Sub:  Add,
	Mul:  Div,
	Div:  Mul,
	Pow:  Root,
	Root: Pow,
	Pick: Put,
	Put:  Pick,
}

// Inverse returns p's inverse primitive, if the catalog defines one.
// Inversion is a partial involution: Inverse(Inverse(p)) == p whenever
// Inverse(p) is defined.
func (p Primitive) Inverse() (Primitive, bool) {
	if p.IsIo() {
		return Primitive{}, false
	}
	if selfInverse[p.kind] {
		return p, true
	}
	if other, ok := pairedInverse[p.kind]; ok {
		return Of(other), true
	}
	return Primitive{}, false
}
