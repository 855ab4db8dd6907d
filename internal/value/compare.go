package value

// kindRank orders kinds for comparisons that mix types, lowest first: numbers,
// then characters, then functions, then arrays (compared recursively).
func kindRank(k Kind) int {
	switch k {
	case KindNumber:
		return 0
	case KindChar:
		return 1
	case KindFunction:
		return 2
	default:
		return 3
	}
}

// compareValues implements the total order Sort/Grade rely on: same-kind
// values compare naturally, mixed kinds compare by kindRank, and arrays
// compare lexicographically cell by cell, shorter-is-less on a common
// prefix.
func compareValues(a, b Value) int {
	if a.kind != b.kind {
		return kindRank(a.kind) - kindRank(b.kind)
	}
	switch a.kind {
	case KindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	case KindChar:
		return int(a.ch) - int(b.ch)
	case KindFunction:
		return 0
	default:
		ac, bc := a.arr.IntoValues(), b.arr.IntoValues()
		for i := 0; i < len(ac) && i < len(bc); i++ {
			if c := compareValues(ac[i], bc[i]); c != 0 {
				return c
			}
		}
		return len(ac) - len(bc)
	}
}
