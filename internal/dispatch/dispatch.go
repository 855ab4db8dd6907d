// Package dispatch is the evaluator's big switch: Run maps a
// primitive.Primitive to the value-kernel function, stack op, or modifier
// that implements it.
package dispatch

import (
	"fmt"
	"math"
	"strings"

	"github.com/loomlang/loom/internal/env"
	"github.com/loomlang/loom/internal/ioop"
	"github.com/loomlang/loom/internal/modifier"
	"github.com/loomlang/loom/internal/primitive"
	"github.com/loomlang/loom/internal/value"
)

// IoBackend executes the I/O operations a primitive.Io tag names. Real
// backends (terminal, filesystem) live outside this module; Run only needs
// somewhere to forward to.
type IoBackend interface {
	Run(op ioop.Op, e value.Env) error
}

// Run executes one primitive against e, dispatching to the value kernel,
// the stack-shuffling ops, the modifier combinators, or io, as appropriate.
func Run(p primitive.Primitive, e *env.CallEnv, io IoBackend) error {
	if op, ok := p.IoOp(); ok {
		if io == nil {
			return e.Error(fmt.Sprintf("no I/O backend configured for %s", p.Name()))
		}
		return io.Run(op, e)
	}

	switch p.Kind() {
	// Stack ops
	case primitive.Dup:
		v, err := e.Pop(value.Pos(1))
		if err != nil {
			return err
		}
		e.Push(v)
		e.Push(v.Clone())
		return nil
	case primitive.Over:
		b, err := e.Pop(value.Pos(1))
		if err != nil {
			return err
		}
		a, err := e.Pop(value.Pos(2))
		if err != nil {
			return err
		}
		e.Push(a)
		e.Push(b)
		e.Push(a.Clone())
		return nil
	case primitive.Flip:
		b, err := e.Pop(value.Pos(1))
		if err != nil {
			return err
		}
		a, err := e.Pop(value.Pos(2))
		if err != nil {
			return err
		}
		e.Push(b)
		e.Push(a)
		return nil
	case primitive.Pop:
		_, err := e.Pop(value.Pos(1))
		return err
	case primitive.Unpack:
		v, err := e.Pop(value.Pos(1))
		if err != nil {
			return err
		}
		arr, ok := v.Array()
		if !ok {
			return e.Error(fmt.Sprintf("unpack expects an array, got %s", v.Display()))
		}
		cells := arr.IntoValues()
		for i := len(cells) - 1; i >= 0; i-- {
			e.Push(cells[i])
		}
		return nil

	// Monadic pervasive
	case primitive.Sign:
		return e.Monadic(value.Sign)
	case primitive.Not:
		return e.Monadic(value.Not)
	case primitive.Neg:
		return e.Monadic(value.Neg)
	case primitive.Abs:
		return e.Monadic(value.Abs)
	case primitive.Sqrt:
		return e.Monadic(value.Sqrt)
	case primitive.Sin:
		return e.Monadic(value.Sin)
	case primitive.Cos:
		return e.Monadic(value.Cos)
	case primitive.Asin:
		return e.Monadic(value.Asin)
	case primitive.Acos:
		return e.Monadic(value.Acos)
	case primitive.Floor:
		return e.Monadic(value.Floor)
	case primitive.Ceil:
		return e.Monadic(value.Ceil)
	case primitive.Round:
		return e.Monadic(value.Round)

	// Dyadic pervasive
	case primitive.Eq:
		return e.Dyadic(value.Eq)
	case primitive.Ne:
		return e.Dyadic(value.Ne)
	case primitive.Lt:
		return e.Dyadic(value.Lt)
	case primitive.Le:
		return e.Dyadic(value.Le)
	case primitive.Gt:
		return e.Dyadic(value.Gt)
	case primitive.Ge:
		return e.Dyadic(value.Ge)
	case primitive.Add:
		return e.Dyadic(value.Add)
	case primitive.Sub:
		return e.Dyadic(value.Sub)
	case primitive.Mul:
		return e.Dyadic(value.Mul)
	case primitive.Div:
		return e.Dyadic(value.Div)
	case primitive.Mod:
		return e.Dyadic(value.Mod)
	case primitive.Pow:
		return e.Dyadic(value.Pow)
	case primitive.Root:
		return e.Dyadic(value.Root)
	case primitive.Min:
		return e.Dyadic(value.Min)
	case primitive.Max:
		return e.Dyadic(value.Max)
	case primitive.Atan:
		return e.Dyadic(value.Atan)
	case primitive.Match:
		return e.Dyadic(value.Match)
	case primitive.NoMatch:
		return e.Dyadic(value.NoMatch)

	// Monadic array
	case primitive.Len:
		return e.Monadic(value.Len)
	case primitive.Rank:
		return e.Monadic(value.Rank)
	case primitive.Shape:
		return e.Monadic(value.Shape)
	case primitive.Range:
		return e.MonadicMut(value.Range)
	case primitive.First:
		return e.MonadicMut(value.First)
	case primitive.Reverse:
		return e.MonadicMut(value.Reverse)
	case primitive.Enclose:
		return e.Monadic(value.Enclose)
	case primitive.Normalize:
		return e.Monadic(value.Normalize)
	case primitive.Deshape:
		return e.MonadicMut(value.Deshape)
	case primitive.Transpose:
		return e.MonadicMut(value.Transpose)
	case primitive.Sort:
		return e.MonadicMut(value.Sort)
	case primitive.Grade:
		return e.Monadic(value.Grade)
	case primitive.Indices:
		return e.Monadic(value.Indices)
	case primitive.Classify:
		return e.Monadic(value.Classify)
	case primitive.Deduplicate:
		return e.MonadicMut(value.Deduplicate)

	// Dyadic array
	case primitive.Join:
		return e.Dyadic(value.Join)
	case primitive.Pair:
		return e.Dyadic(value.Pair)
	case primitive.Couple:
		return e.Dyadic(value.Couple)
	case primitive.Pick:
		return e.Dyadic(value.Pick)
	case primitive.Select:
		return e.Dyadic(value.Select)
	case primitive.Take:
		return e.Dyadic(value.Take)
	case primitive.Drop:
		return e.Dyadic(value.Drop)
	case primitive.Reshape:
		return e.Dyadic(value.Reshape)
	case primitive.Rotate:
		return e.Dyadic(value.Rotate)
	case primitive.Windows:
		return e.Dyadic(value.Windows)
	case primitive.Replicate:
		return e.Dyadic(value.Replicate)
	case primitive.Member:
		return e.Dyadic(value.Member)
	case primitive.Group:
		return e.Dyadic(value.Group)
	case primitive.IndexOf:
		return e.Dyadic(value.IndexOf)

	// Triadic
	case primitive.Put:
		return runPut(e)

	// Modifiers
	case primitive.Reduce:
		return modifier.Reduce(e)
	case primitive.Fold:
		return modifier.Fold(e)
	case primitive.Scan:
		return modifier.Scan(e)
	case primitive.Each:
		return modifier.Each(e)
	case primitive.Cells:
		return modifier.Cells(e)
	case primitive.Table:
		return modifier.Table(e)
	case primitive.Repeat:
		return modifier.Repeat(e)
	case primitive.Invert:
		return modifier.Invert(e)
	case primitive.Under:
		return modifier.Under(e)
	case primitive.Try:
		return modifier.Try(e)

	// Misc
	case primitive.Assert:
		return runAssert(e)
	case primitive.Nop:
		return nil
	case primitive.Call:
		return e.Call()
	case primitive.String:
		return e.Monadic(value.String)
	case primitive.Parse:
		return e.Monadic(value.Parse)
	case primitive.Use:
		return runUse(e)

	// Constants
	case primitive.Pi:
		e.Push(value.Num(math.Pi))
		return nil
	case primitive.Infinity:
		e.Push(value.Num(math.Inf(1)))
		return nil
	}

	return e.Error(fmt.Sprintf("unimplemented primitive %s", p.Name()))
}

// runPut pops index, newValue, arr (in that order: index is topmost) and
// pushes Put(index, newValue, arr). Put takes its index from the top of the
// stack, whereas Pick (run through Dyadic) takes the index as the deeper
// operand and the array from the top.
func runPut(e *env.CallEnv) error {
	index, err := e.Pop(value.Pos(1))
	if err != nil {
		return err
	}
	newValue, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	arr, err := e.Pop(value.Pos(3))
	if err != nil {
		return err
	}
	r, err := value.Put(index, newValue, arr)
	if err != nil {
		return err
	}
	e.Push(r)
	return nil
}

// runAssert pops msg then cond, erroring with msg's display form unless
// cond is the number 1.
func runAssert(e *env.CallEnv) error {
	msg, err := e.Pop(value.Pos(1))
	if err != nil {
		return err
	}
	cond, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	n, ok := cond.Number()
	if !ok || math.Abs(n-1) > 1e-10 {
		return e.Error(msg.Display())
	}
	return nil
}

// runUse pops lib then name (name is the string spelling of a function to
// find inside lib) and pushes the matching named function.
func runUse(e *env.CallEnv) error {
	lib, err := e.Pop(value.Pos(1))
	if err != nil {
		return err
	}
	name, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	nameArr, ok := name.Array()
	if !ok {
		return e.Error("Use name must be a string")
	}
	s, ok := nameArr.AsString()
	if !ok {
		return e.Error("Use name must be a string")
	}
	target := strings.ToLower(s)

	arr := lib.CoerceArray()
	for _, cell := range arr.IntoValues() {
		f, ok := cell.Function()
		if !ok {
			continue
		}
		if n, ok := f.Id().Name(); ok && strings.ToLower(n) == target {
			e.Push(cell)
			return nil
		}
	}
	return e.Error(fmt.Sprintf("No function found for %q", s))
}
