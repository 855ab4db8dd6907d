package env

import "github.com/loomlang/loom/internal/value"

// This file is the adapter layer through which the dispatcher reaches the
// value kernel for its monadic and dyadic ops (the triadic Put calls
// value.Put directly). Eight small combinators parameterised by
// (requires-env?, mutates-in-place?), generic over any value-kernel
// function rather than switching on an opcode.

// Unary is a pure monadic kernel function: pop one operand, push its image.
type Unary func(value.Value) (value.Value, error)

// UnaryEnv is a monadic kernel function that may need the environment to
// build an error.
type UnaryEnv func(value.Env, value.Value) (value.Value, error)

// Monadic pops the top operand, applies f, and pushes the result.
func (e *CallEnv) Monadic(f Unary) error {
	v, err := e.Pop(value.Pos(1))
	if err != nil {
		return err
	}
	r, err := f(v)
	if err != nil {
		return err
	}
	e.Push(r)
	return nil
}

// MonadicEnv is Monadic, but f additionally receives the environment.
func (e *CallEnv) MonadicEnv(f UnaryEnv) error {
	v, err := e.Pop(value.Pos(1))
	if err != nil {
		return err
	}
	r, err := f(e, v)
	if err != nil {
		return err
	}
	e.Push(r)
	return nil
}

// MonadicMut is Monadic's in-place-mutating twin: f rewrites *top of stack
// directly rather than consuming and re-pushing it.
func (e *CallEnv) MonadicMut(f Unary) error {
	top, err := e.TopMut(1)
	if err != nil {
		return err
	}
	r, err := f(*top)
	if err != nil {
		return err
	}
	*top = r
	return nil
}

// MonadicMutEnv is MonadicMut with environment access.
func (e *CallEnv) MonadicMutEnv(f UnaryEnv) error {
	top, err := e.TopMut(1)
	if err != nil {
		return err
	}
	r, err := f(e, *top)
	if err != nil {
		return err
	}
	*top = r
	return nil
}

// Binary is a pure dyadic kernel function: a is the deeper (first-pushed)
// operand, b the topmost. Argument evaluation order is the reverse of push
// order.
type Binary func(a, b value.Value) (value.Value, error)

// BinaryEnv is a dyadic kernel function with environment access.
type BinaryEnv func(e value.Env, a, b value.Value) (value.Value, error)

// Dyadic pops b then a, applies f(a, b), and pushes the result.
func (e *CallEnv) Dyadic(f Binary) error {
	b, err := e.Pop(value.Pos(1))
	if err != nil {
		return err
	}
	a, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	r, err := f(a, b)
	if err != nil {
		return err
	}
	e.Push(r)
	return nil
}

// DyadicEnv is Dyadic with environment access.
func (e *CallEnv) DyadicEnv(f BinaryEnv) error {
	b, err := e.Pop(value.Pos(1))
	if err != nil {
		return err
	}
	a, err := e.Pop(value.Pos(2))
	if err != nil {
		return err
	}
	r, err := f(e, a, b)
	if err != nil {
		return err
	}
	e.Push(r)
	return nil
}

// DyadicMut pops b, mutates the (now top-of-stack) a in place via f, and
// leaves the result on the stack.
func (e *CallEnv) DyadicMut(f Binary) error {
	b, err := e.Pop(value.Pos(1))
	if err != nil {
		return err
	}
	top, err := e.TopMut(1)
	if err != nil {
		return err
	}
	r, err := f(*top, b)
	if err != nil {
		return err
	}
	*top = r
	return nil
}

// DyadicMutEnv is DyadicMut with environment access.
func (e *CallEnv) DyadicMutEnv(f BinaryEnv) error {
	b, err := e.Pop(value.Pos(1))
	if err != nil {
		return err
	}
	top, err := e.TopMut(1)
	if err != nil {
		return err
	}
	r, err := f(e, *top, b)
	if err != nil {
		return err
	}
	*top = r
	return nil
}
