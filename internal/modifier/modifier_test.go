package modifier

import (
	"testing"

	"github.com/loomlang/loom/internal/env"
	"github.com/loomlang/loom/internal/value"
)

func addFn() *value.Function {
	return value.NewFunction(value.Named("add"), func(e value.Env) error {
		b, err := e.Pop(value.Pos(1))
		if err != nil {
			return err
		}
		a, err := e.Pop(value.Pos(2))
		if err != nil {
			return err
		}
		an, _ := a.Number()
		bn, _ := b.Number()
		e.Push(value.Num(an + bn))
		return nil
	})
}

func ints(xs ...int) value.Value {
	data := make([]value.Value, len(xs))
	for i, x := range xs {
		data[i] = value.Num(float64(x))
	}
	return value.Arr(value.NewArray([]int{len(xs)}, data))
}

func TestReduceSumsLeftToRight(t *testing.T) {
	e := env.New()
	e.Push(ints(1, 2, 3, 4))
	e.Push(value.Fn(addFn()))
	if err := Reduce(e); err != nil {
		t.Fatal(err)
	}
	top, err := e.Pop(value.Pos(1))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := top.Number(); n != 10 {
		t.Fatalf("reduce with add over [1,2,3,4] should be 10, got %v", n)
	}
}

func TestReduceEmptyArrayErrors(t *testing.T) {
	e := env.New()
	e.Push(value.Arr(value.NewArray([]int{0}, nil)))
	e.Push(value.Fn(addFn()))
	if err := Reduce(e); err == nil {
		t.Fatal("reducing an empty array should error")
	}
}

func TestFoldWithSeed(t *testing.T) {
	e := env.New()
	e.Push(ints(1, 2, 3))
	e.Push(value.Num(100))
	e.Push(value.Fn(addFn()))
	if err := Fold(e); err != nil {
		t.Fatal(err)
	}
	top, err := e.Pop(value.Pos(1))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := top.Number(); n != 106 {
		t.Fatalf("fold(100, add, [1,2,3]) should be 106, got %v", n)
	}
}

func TestScanProducesRunningTotals(t *testing.T) {
	e := env.New()
	e.Push(ints(1, 2, 3))
	e.Push(value.Fn(addFn()))
	if err := Scan(e); err != nil {
		t.Fatal(err)
	}
	top, err := e.Pop(value.Pos(1))
	if err != nil {
		t.Fatal(err)
	}
	if !top.Equals(ints(1, 3, 6)) {
		t.Fatalf("scan with add over [1,2,3] should be [1,3,6], got %s", top.Display())
	}
}

func negFn() *value.Function {
	return value.NewInvertibleFunction(value.Named("neg"), func(e value.Env) error {
		v, err := e.Pop(value.Pos(1))
		if err != nil {
			return err
		}
		r, err := value.Neg(v)
		if err != nil {
			return err
		}
		e.Push(r)
		return nil
	}, func(e value.Env, under bool) (*value.Function, error) {
		return negFn(), nil
	})
}

func TestInvertAppliesInverseFunction(t *testing.T) {
	e := env.New()
	e.Push(value.Num(5))
	e.Push(value.Fn(negFn()))
	if err := Invert(e); err != nil {
		t.Fatal(err)
	}
	top, err := e.Pop(value.Pos(1))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := top.Number(); n != -5 {
		t.Fatalf("inverting neg applied to 5 should give -5 (neg is self-inverse), got %v", n)
	}
}

func failingFn() *value.Function {
	return value.NewFunction(value.Named("boom"), func(e value.Env) error {
		return e.Error("boom")
	})
}

func echoHandler() *value.Function {
	return value.NewFunction(value.Named("echo"), func(e value.Env) error {
		return nil
	})
}

func TestTryRecoversFromError(t *testing.T) {
	e := env.New()
	e.Push(value.Num(1))
	e.Push(value.Fn(echoHandler()))
	e.Push(value.Fn(failingFn()))
	if err := Try(e); err != nil {
		t.Fatal(err)
	}
	if e.StackSize() != 2 {
		t.Fatalf("after recovery, stack should hold the original value plus the error message, got depth %d", e.StackSize())
	}
}

func doubleFn() *value.Function {
	return value.NewFunction(value.Named("double"), func(e value.Env) error {
		v, err := e.Pop(value.Pos(1))
		if err != nil {
			return err
		}
		n, _ := v.Number()
		e.Push(value.Num(n * 2))
		return nil
	})
}

func TestTryPassesThroughOnSuccess(t *testing.T) {
	e := env.New()
	e.Push(value.Num(3))
	e.Push(value.Fn(echoHandler()))
	e.Push(value.Fn(doubleFn()))
	if err := Try(e); err != nil {
		t.Fatal(err)
	}
	top, err := e.Pop(value.Pos(1))
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := top.Number(); n != 6 {
		t.Fatalf("successful try should leave f's result on the stack, got %v", top.Display())
	}
}
