package value

import (
	"fmt"
	"math"
)

// binaryFn is a scalar dyadic numeric kernel. By convention throughout this
// package a is the first-pushed (deeper) operand and b is the second-pushed
// (topmost) operand, so a stack program "x y Add" computes Add(x, y), the
// usual Forth-like reading order. Atan computes atan2(b, a), top over next.
type binaryFn func(a, b float64) (float64, error)

// ZipNumeric applies f pervasively over two operands: scalar-scalar calls f
// directly, scalar-array broadcasts the scalar against every cell, and
// array-array requires identical shapes (this function's only notion of
// "compatible" shapes; richer broadcasting belongs to the array kernel).
func ZipNumeric(a, b Value, f binaryFn) (Value, error) {
	aArr, aIsArr := a.Array()
	bArr, bIsArr := b.Array()

	switch {
	case !aIsArr && !bIsArr:
		an, err := requireNumber(a)
		if err != nil {
			return Value{}, err
		}
		bn, err := requireNumber(b)
		if err != nil {
			return Value{}, err
		}
		r, err := f(an, bn)
		if err != nil {
			return Value{}, err
		}
		return Num(r), nil

	case aIsArr && !bIsArr:
		out := make([]Value, len(aArr.data))
		for i, cell := range aArr.data {
			r, err := ZipNumeric(cell, b, f)
			if err != nil {
				return Value{}, err
			}
			out[i] = r
		}
		return Arr(NewArray(aArr.shape, out)), nil

	case !aIsArr && bIsArr:
		out := make([]Value, len(bArr.data))
		for i, cell := range bArr.data {
			r, err := ZipNumeric(a, cell, f)
			if err != nil {
				return Value{}, err
			}
			out[i] = r
		}
		return Arr(NewArray(bArr.shape, out)), nil

	default:
		if !intsEqual(aArr.shape, bArr.shape) {
			return Value{}, fmt.Errorf("shape mismatch: %v vs %v", aArr.shape, bArr.shape)
		}
		out := make([]Value, len(aArr.data))
		for i := range aArr.data {
			r, err := ZipNumeric(aArr.data[i], bArr.data[i], f)
			if err != nil {
				return Value{}, err
			}
			out[i] = r
		}
		return Arr(NewArray(aArr.shape, out)), nil
	}
}

func boolOf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func Eq(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return boolOf(a == b), nil }) }
func Ne(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return boolOf(a != b), nil }) }
func Lt(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return boolOf(a < b), nil }) }
func Le(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return boolOf(a <= b), nil }) }
func Gt(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return boolOf(a > b), nil }) }
func Ge(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return boolOf(a >= b), nil }) }

// Add is Sub's inverse partner.
func Add(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return a + b, nil }) }

// Sub is Add's inverse partner.
func Sub(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return a - b, nil }) }

// Mul is Div's inverse partner.
func Mul(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return a * b, nil }) }

// Div is Mul's inverse partner.
func Div(a, b Value) (Value, error) {
	return ZipNumeric(a, b, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	})
}

func Mod(a, b Value) (Value, error) {
	return ZipNumeric(a, b, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("modulo by zero")
		}
		return math.Mod(math.Mod(a, b)+b, b), nil
	})
}

// Pow is Root's inverse partner.
func Pow(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return math.Pow(a, b), nil }) }

// Root is Pow's inverse partner: a root(b) computes the b-th root of a.
func Root(a, b Value) (Value, error) {
	return ZipNumeric(a, b, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, fmt.Errorf("zeroth root")
		}
		return math.Pow(a, 1/b), nil
	})
}

func Min(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return math.Min(a, b), nil }) }
func Max(a, b Value) (Value, error) { return ZipNumeric(a, b, func(a, b float64) (float64, error) { return math.Max(a, b), nil }) }

// Atan computes atan2(b, a): top over next.
func Atan(a, b Value) (Value, error) {
	return ZipNumeric(a, b, func(a, b float64) (float64, error) { return math.Atan2(b, a), nil })
}

// Match implements whole-value structural equality.
func Match(a, b Value) (Value, error) { return Num(boolOf(a.Equals(b))), nil }

// NoMatch is Match's negation.
func NoMatch(a, b Value) (Value, error) { return Num(boolOf(!a.Equals(b))), nil }
