package dispatch

import (
	"testing"

	"github.com/loomlang/loom/internal/env"
	"github.com/loomlang/loom/internal/primitive"
	"github.com/loomlang/loom/internal/value"
)

func run(t *testing.T, e *env.CallEnv, name string) {
	t.Helper()
	p, ok := primitive.FromName(name)
	if !ok {
		t.Fatalf("unknown primitive %q", name)
	}
	if err := Run(p, e, nil); err != nil {
		t.Fatalf("running %q: %v", name, err)
	}
}

func popNum(t *testing.T, e *env.CallEnv) float64 {
	t.Helper()
	v, err := e.Pop(value.Pos(1))
	if err != nil {
		t.Fatal(err)
	}
	n, ok := v.Number()
	if !ok {
		t.Fatalf("expected a number, got %s", v.Display())
	}
	return n
}

func TestArithmeticDispatch(t *testing.T) {
	e := env.New()
	e.Push(value.Num(3))
	e.Push(value.Num(4))
	run(t, e, "add")
	if got := popNum(t, e); got != 7 {
		t.Fatalf("3 add 4 should be 7, got %v", got)
	}
}

func TestDupOverFlip(t *testing.T) {
	e := env.New()
	e.Push(value.Num(1))
	e.Push(value.Num(2))
	run(t, e, "flip")
	if got := popNum(t, e); got != 1 {
		t.Fatalf("after flip, top should be 1, got %v", got)
	}
	if got := popNum(t, e); got != 2 {
		t.Fatalf("after flip, bottom should be 2, got %v", got)
	}

	e.Push(value.Num(1))
	e.Push(value.Num(2))
	run(t, e, "over")
	if e.StackSize() != 3 {
		t.Fatalf("over should leave three values on the stack, got %d", e.StackSize())
	}
	if got := popNum(t, e); got != 1 {
		t.Fatalf("over should copy the second value to the top, got %v", got)
	}
	e.Truncate(0)

	e.Push(value.Num(9))
	run(t, e, "dup")
	if e.StackSize() != 2 {
		t.Fatalf("dup should leave two values on the stack, got %d", e.StackSize())
	}
	a := popNum(t, e)
	b := popNum(t, e)
	if a != 9 || b != 9 {
		t.Fatalf("dup should duplicate the top value, got %v %v", a, b)
	}
}

func TestAssertPassesAndFails(t *testing.T) {
	e := env.New()
	e.Push(value.Num(1))
	e.Push(value.Arr(value.NewCharArray("should not fire")))
	if err := run2(e, "assert"); err != nil {
		t.Fatalf("assert with condition 1 should not error: %v", err)
	}

	e2 := env.New()
	e2.Push(value.Num(0))
	e2.Push(value.Arr(value.NewCharArray("boom")))
	if err := run2(e2, "assert"); err == nil {
		t.Fatal("assert with condition 0 should error")
	}
}

func run2(e *env.CallEnv, name string) error {
	p, _ := primitive.FromName(name)
	return Run(p, e, nil)
}

func TestConstants(t *testing.T) {
	e := env.New()
	run(t, e, "pi")
	if got := popNum(t, e); got < 3.14 || got > 3.15 {
		t.Fatalf("pi should be approximately 3.14159, got %v", got)
	}
}

func TestUnpackPushesCellsInOrder(t *testing.T) {
	e := env.New()
	data := []value.Value{value.Num(1), value.Num(2), value.Num(3)}
	e.Push(value.Arr(value.NewArray([]int{3}, data)))
	run(t, e, "unpack")
	if e.StackSize() != 3 {
		t.Fatalf("unpack of a length-3 array should push 3 values, got %d", e.StackSize())
	}
	if got := popNum(t, e); got != 1 {
		t.Fatalf("first element should be on top after unpack, got %v", got)
	}
}

func TestIoWithoutBackendErrors(t *testing.T) {
	e := env.New()
	p, ok := primitive.FromName("print")
	if !ok {
		t.Fatal("print should resolve via the io catalog")
	}
	if err := Run(p, e, nil); err == nil {
		t.Fatal("running an io primitive with no backend configured should error")
	}
}
