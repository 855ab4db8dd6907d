// Package loom is the public embedding facade: a thin seam so host code
// can drive the primitive dispatcher without importing internal packages
// directly.
package loom

import (
	"github.com/loomlang/loom/internal/dispatch"
	"github.com/loomlang/loom/internal/env"
	"github.com/loomlang/loom/internal/ioop"
	"github.com/loomlang/loom/internal/primitive"
	"github.com/loomlang/loom/internal/value"
)

// IoBackend lets a host supply real I/O behind the Io primitive tag; see
// internal/dispatch.IoBackend.
type IoBackend = dispatch.IoBackend

// Machine is a call environment plus an optional I/O backend: the unit a
// host program drives one primitive at a time, or many in sequence.
type Machine struct {
	env *env.CallEnv
	io  IoBackend
}

// New builds an empty Machine with no I/O backend configured; running an
// Io primitive on it errors until SetIoBackend is called.
func New() *Machine {
	return &Machine{env: env.New()}
}

// SetIoBackend installs the backend Io primitives are forwarded to.
func (m *Machine) SetIoBackend(io IoBackend) {
	m.io = io
}

// Run executes one primitive, resolved by name via primitive.FromName.
func (m *Machine) Run(name string) error {
	p, ok := primitive.FromName(name)
	if !ok {
		return m.env.Error("unknown primitive: " + name)
	}
	return m.RunPrimitive(p)
}

// RunPrimitive executes an already-resolved primitive.
func (m *Machine) RunPrimitive(p primitive.Primitive) error {
	return dispatch.Run(p, m.env, m.io)
}

// RunIo executes a named I/O operation directly, bypassing FromName's
// ambiguity rules (useful for hosts that already know exactly which
// operation they mean).
func (m *Machine) RunIo(op ioop.Op) error {
	return dispatch.Run(primitive.IoPrimitive(op), m.env, m.io)
}

// Push places a value on top of the stack.
func (m *Machine) Push(v value.Value) {
	m.env.Push(v)
}

// Pop removes and returns the top of the stack.
func (m *Machine) Pop() (value.Value, error) {
	return m.env.Pop(value.Label("loom.Pop"))
}

// Stack returns a bottom-to-top snapshot of the current stack.
func (m *Machine) Stack() []value.Value {
	return m.env.Stack()
}

// StackSize reports how many values are currently on the stack.
func (m *Machine) StackSize() int {
	return m.env.StackSize()
}
