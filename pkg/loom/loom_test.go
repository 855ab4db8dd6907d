package loom

import (
	"testing"

	"github.com/loomlang/loom/internal/value"
)

func TestPushRunPop(t *testing.T) {
	m := New()
	m.Push(value.Num(2))
	m.Push(value.Num(3))
	if err := m.Run("add"); err != nil {
		t.Fatal(err)
	}
	v, err := m.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := v.Number(); n != 5 {
		t.Fatalf("2 add 3 should be 5, got %v", n)
	}
}

func TestUnknownPrimitiveErrors(t *testing.T) {
	m := New()
	if err := m.Run("not_a_real_primitive"); err == nil {
		t.Fatal("running an unresolvable name should error")
	}
}

func TestStackSnapshotIsIndependent(t *testing.T) {
	m := New()
	m.Push(value.Num(1))
	snap := m.Stack()
	m.Push(value.Num(2))
	if len(snap) != 1 {
		t.Fatalf("Stack() should return a snapshot unaffected by later pushes, got %d", len(snap))
	}
}
