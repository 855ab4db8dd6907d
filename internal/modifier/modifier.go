// Package modifier implements the ten combinators: Reduce, Fold, Scan,
// Each, Cells, Table, Repeat, Invert, Under, and Try. Unlike the
// value-kernel primitives in internal/dispatch, a modifier's function
// operand(s) are themselves Values popped off the stack, so each
// combinator here re-enters the call environment via Function.Invoke the
// same way internal/env.CallEnv.Call does. Push order for each operand is
// deliberate and must be preserved exactly; Reduce and Fold in particular
// push their cell and accumulator in mirrored order and are not meant to
// share a helper.
package modifier

import (
	"github.com/loomlang/loom/internal/value"
)

func popFunction(e value.Env, tag value.Tag) (*value.Function, error) {
	v, err := e.Pop(tag)
	if err != nil {
		return nil, err
	}
	f, ok := v.Function()
	if !ok {
		return nil, e.Error("Only functions can be inverted")
	}
	return f, nil
}

// Reduce pops f then an array xs, folding xs's cells from the left with no
// seed. Each call sees the next cell below the accumulator, which is on top:
// f(cells[1], cells[0]), then f(cells[2], that), and so on. A non-array xs passes through unchanged; an empty array is an error,
// since there is no cell to seed the accumulator with.
func Reduce(e value.Env) error {
	f, err := popFunction(e, value.Pos(1))
	if err != nil {
		return err
	}
	xs, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	arr, ok := xs.Array()
	if !ok {
		e.Push(xs)
		return nil
	}
	cells := arr.IntoValues()
	if len(cells) == 0 {
		return e.Error("Cannot reduce empty array")
	}
	acc := cells[0]
	for _, cell := range cells[1:] {
		e.Push(cell)
		e.Push(acc)
		if err := f.Invoke(e); err != nil {
			return err
		}
		acc, err = e.Pop(value.Label("reduced function result"))
		if err != nil {
			return err
		}
	}
	e.Push(acc)
	return nil
}

// Fold pops f, a seed accumulator, then an array xs, folding left with an
// explicit seed: f(acc, cells[0]), then f(that, cells[1]), and so on. Its
// push order is acc-then-cell, the mirror image of Reduce's cell-then-acc.
func Fold(e value.Env) error {
	f, err := popFunction(e, value.Pos(1))
	if err != nil {
		return err
	}
	acc, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	xs, err := e.Pop(value.Pos(3))
	if err != nil {
		return err
	}
	arr, ok := xs.Array()
	if !ok {
		e.Push(acc)
		e.Push(xs)
		return f.Invoke(e)
	}
	for _, cell := range arr.IntoValues() {
		e.Push(acc)
		e.Push(cell)
		if err := f.Invoke(e); err != nil {
			return err
		}
		acc, err = e.Pop(value.Label("folded function result"))
		if err != nil {
			return err
		}
	}
	e.Push(acc)
	return nil
}

// Scan is Reduce that keeps every intermediate accumulator, producing an
// array the same length as its input (the first element is the seedless
// first cell itself).
func Scan(e value.Env) error {
	f, err := popFunction(e, value.Pos(1))
	if err != nil {
		return err
	}
	xs, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	arr, ok := xs.Array()
	if !ok {
		e.Push(xs)
		return nil
	}
	cells := arr.IntoValues()
	if len(cells) == 0 {
		e.Push(value.Arr(value.NewArray([]int{0}, nil)))
		return nil
	}
	acc := cells[0]
	scanned := make([]value.Value, 0, len(cells))
	scanned = append(scanned, acc)
	for _, cell := range cells[1:] {
		e.Push(cell)
		e.Push(acc)
		if err := f.Invoke(e); err != nil {
			return err
		}
		acc, err = e.Pop(value.Label("scanned function result"))
		if err != nil {
			return err
		}
		scanned = append(scanned, acc)
	}
	e.Push(value.Arr(value.NewBoxed(scanned).Normalized()))
	return nil
}

// Each applies f to every scalar element of xs, elementwise, preserving
// xs's shape. A non-array xs is passed straight to f as a monadic call.
func Each(e value.Env) error {
	f, err := popFunction(e, value.Pos(1))
	if err != nil {
		return err
	}
	xs, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	arr, ok := xs.Array()
	if !ok {
		e.Push(xs)
		return f.Invoke(e)
	}
	shape, values := arr.IntoShapeFlatValues()
	out := make([]value.Value, 0, len(values))
	for _, v := range values {
		e.Push(v)
		if err := f.Invoke(e); err != nil {
			return err
		}
		r, err := e.Pop(value.Label("each's function result"))
		if err != nil {
			return err
		}
		out = append(out, r)
	}
	e.Push(value.Arr(value.NewArray(shape, out).NormalizedType()))
	return nil
}

// Cells applies f to each leading-axis cell of xs (rather than each scalar
// element, as Each does), collecting the results as a new array.
func Cells(e value.Env) error {
	f, err := popFunction(e, value.Pos(1))
	if err != nil {
		return err
	}
	xs, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	arr, ok := xs.Array()
	if !ok {
		e.Push(xs)
		return f.Invoke(e)
	}
	cells := arr.IntoValues()
	out := make([]value.Value, 0, len(cells))
	for _, cell := range cells {
		e.Push(cell)
		if err := f.Invoke(e); err != nil {
			return err
		}
		r, err := e.Pop(value.Label("cells' function result"))
		if err != nil {
			return err
		}
		out = append(out, r)
	}
	e.Push(value.Arr(value.NewBoxed(out).Normalized()))
	return nil
}

// Table applies f to every pair drawn from xs's cells (outer) and ys's
// cells (inner). The result's first two axes are the leading-axis lengths of
// xs and ys; when every call of f returns a value of one shape, that shape
// follows as trailing axes (a scalar-returning f gives a rank-2 result). If
// neither operand is an array, f is applied once directly.
func Table(e value.Env) error {
	f, err := popFunction(e, value.Pos(1))
	if err != nil {
		return err
	}
	xs, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	ys, err := e.Pop(value.Pos(3))
	if err != nil {
		return err
	}
	_, xsIsArr := xs.Array()
	_, ysIsArr := ys.Array()
	if !xsIsArr && !ysIsArr {
		e.Push(ys)
		e.Push(xs)
		return f.Invoke(e)
	}
	a := xs.CoerceArray()
	b := ys.CoerceArray()
	aCells := a.IntoValues()
	bCells := b.IntoValues()
	table := make([]value.Value, 0, len(aCells))
	for _, aCell := range aCells {
		row := make([]value.Value, 0, len(bCells))
		for _, bCell := range bCells {
			e.Push(bCell)
			e.Push(aCell)
			if err := f.Invoke(e); err != nil {
				return err
			}
			r, err := e.Pop(value.Label("tabled function result"))
			if err != nil {
				return err
			}
			row = append(row, r)
		}
		table = append(table, value.Arr(value.NewBoxed(row).NormalizedType()))
	}
	e.Push(value.Arr(value.NewBoxed(table).Normalized()))
	return nil
}

// Repeat applies f to an accumulator n times in sequence, threading each
// call's result into the next.
func Repeat(e value.Env) error {
	f, err := popFunction(e, value.Pos(1))
	if err != nil {
		return err
	}
	acc, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	nVal, err := e.Pop(value.Pos(3))
	if err != nil {
		return err
	}
	n, ok := nVal.AsNat()
	if !ok {
		return e.Error("Repetitions must be a natural number")
	}
	for i := 0; i < n; i++ {
		e.Push(acc)
		if err := f.Invoke(e); err != nil {
			return err
		}
		acc, err = e.Pop(value.Label("repeated function result"))
		if err != nil {
			return err
		}
	}
	e.Push(acc)
	return nil
}

// Invert pops f and invokes f's inverse in f's place.
func Invert(e value.Env) error {
	f, err := popFunction(e, value.Pos(1))
	if err != nil {
		return err
	}
	inv, err := f.Inverse(e, false)
	if err != nil {
		return err
	}
	return inv.Invoke(e)
}

// Under pops f then g and runs g "through" f: f transforms the stack, g
// runs on the transformed state, then f's under-flavoured inverse is
// applied to restore the surrounding context. The under-inverse comes from
// f's own inverse rule (Function.Inverse) and is computed before f runs, so
// a function built without one fails before anything is invoked.
func Under(e value.Env) error {
	f, err := popFunction(e, value.Pos(1))
	if err != nil {
		return err
	}
	g, err := popFunction(e, value.Pos(2))
	if err != nil {
		return err
	}
	finv, err := f.Inverse(e, true)
	if err != nil {
		return err
	}
	if err := f.Invoke(e); err != nil {
		return err
	}
	if err := g.Invoke(e); err != nil {
		return err
	}
	return finv.Invoke(e)
}

// Try pops f then a handler, invokes f, and on error rolls the stack back
// to its pre-call depth and invokes handler with the error message pushed
// in f's place.
func Try(e value.Env) error {
	f, err := popFunction(e, value.Pos(1))
	if err != nil {
		return err
	}
	handler, err := popFunction(e, value.Pos(2))
	if err != nil {
		return err
	}
	size := e.StackSize()
	if callErr := f.Invoke(e); callErr != nil {
		e.Truncate(size)
		e.Push(value.Arr(value.NewCharArray(callErr.Error())))
		return handler.Invoke(e)
	}
	return nil
}
