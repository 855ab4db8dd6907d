// Package env implements CallEnv, the dispatcher's only view of the VM: a
// growable value stack plus the push/pop/call/error primitives and the
// monadic/dyadic adapter set, collapsed onto a single concrete stack type
// since this module has no bytecode boundary to cross.
package env

import (
	"fmt"

	"github.com/loomlang/loom/internal/value"
)

const initialStackSize = 256
const stackGrowthIncrement = 256

// Caller is the signature of a hook that invokes a value.Function against
// the stack. CallEnv does not take one: Call always uses Function.Invoke.
type Caller func(f *value.Function, e value.Env) error

// CallEnv is the concrete stack-and-error facade every primitive operates on.
type CallEnv struct {
	stack []value.Value
}

// New builds an empty CallEnv.
func New() *CallEnv {
	return &CallEnv{stack: make([]value.Value, 0, initialStackSize)}
}

// Push appends a value to the top of the stack.
func (e *CallEnv) Push(v value.Value) {
	e.stack = append(e.stack, v)
}

// Pop removes and returns the top of the stack, labelling the error (if the
// stack is empty) with tag.
func (e *CallEnv) Pop(tag value.Tag) (value.Value, error) {
	if len(e.stack) == 0 {
		return value.Value{}, e.Error(fmt.Sprintf("stack underflow popping %s", tag))
	}
	n := len(e.stack) - 1
	v := e.stack[n]
	e.stack = e.stack[:n]
	return v, nil
}

// TopMut returns a pointer to the i-th value from the top (1 = topmost),
// so a caller can mutate it in place without a pop/push round trip.
func (e *CallEnv) TopMut(i int) (*value.Value, error) {
	idx := len(e.stack) - i
	if idx < 0 || idx >= len(e.stack) {
		return nil, e.Error(fmt.Sprintf("stack underflow addressing argument %d", i))
	}
	return &e.stack[idx], nil
}

// StackSize returns the number of values currently on the stack.
func (e *CallEnv) StackSize() int { return len(e.stack) }

// Truncate discards everything above position n, the rollback mechanism
// Try uses to recover from a failed call.
func (e *CallEnv) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(e.stack) {
		n = len(e.stack)
	}
	e.stack = e.stack[:n]
}

// Stack returns a snapshot of the current stack, bottom to top, for
// embedding callers (pkg/loom) and tests.
func (e *CallEnv) Stack() []value.Value {
	return append([]value.Value(nil), e.stack...)
}

// Error constructs a runtime error value, the one place error messages are
// assembled so future callers (e.g. a richer diagnostic layer) have a
// single seam.
func (e *CallEnv) Error(msg string) error {
	return fmt.Errorf("%s", msg)
}

// Call pops the top-of-stack function value and invokes it, re-entering the
// VM synchronously.
func (e *CallEnv) Call() error {
	v, err := e.Pop(value.Pos(1))
	if err != nil {
		return err
	}
	f, ok := v.Function()
	if !ok {
		return e.Error(fmt.Sprintf("cannot call a non-function value: %s", v.Display()))
	}
	return f.Invoke(e)
}
