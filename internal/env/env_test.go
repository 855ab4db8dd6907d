package env

import (
	"testing"

	"github.com/loomlang/loom/internal/value"
)

func TestPushPopOrder(t *testing.T) {
	e := New()
	e.Push(value.Num(1))
	e.Push(value.Num(2))
	top, err := e.Pop(value.Pos(1))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := top.Number(); n != 2 {
		t.Fatalf("pop should return the most recently pushed value, got %v", n)
	}
}

func TestPopUnderflowErrors(t *testing.T) {
	e := New()
	if _, err := e.Pop(value.Pos(1)); err == nil {
		t.Fatal("popping an empty stack should error")
	}
}

func TestTruncateDiscardsAboveMark(t *testing.T) {
	e := New()
	e.Push(value.Num(1))
	mark := e.StackSize()
	e.Push(value.Num(2))
	e.Push(value.Num(3))
	e.Truncate(mark)
	if e.StackSize() != mark {
		t.Fatalf("truncate should restore the recorded depth, got %d want %d", e.StackSize(), mark)
	}
}

func TestCallInvokesFunction(t *testing.T) {
	e := New()
	f := value.NewFunction(value.Named("inc"), func(env value.Env) error {
		v, err := env.Pop(value.Pos(1))
		if err != nil {
			return err
		}
		n, _ := v.Number()
		env.Push(value.Num(n + 1))
		return nil
	})
	e.Push(value.Num(41))
	e.Push(value.Fn(f))
	if err := e.Call(); err != nil {
		t.Fatal(err)
	}
	v, err := e.Pop(value.Pos(1))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := v.Number(); n != 42 {
		t.Fatalf("calling inc on 41 should give 42, got %v", n)
	}
}

func TestCallOnNonFunctionErrors(t *testing.T) {
	e := New()
	e.Push(value.Num(1))
	if err := e.Call(); err == nil {
		t.Fatal("calling a non-function value should error")
	}
}
