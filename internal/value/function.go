package value

import (
	"fmt"

	"github.com/google/uuid"
)

// FunctionId identifies a function value. Named covers primitives and
// user/library definitions looked up by Use; Anonymous covers function
// values built on the fly, such as a modifier's operand when the caller
// supplies an inline body.
type FunctionId struct {
	named bool
	name  string
	anon  uuid.UUID
}

// Named builds the identity of a function known by name.
func Named(name string) FunctionId { return FunctionId{named: true, name: name} }

// Anonymous builds a fresh identity for a function with no name.
func Anonymous() FunctionId { return FunctionId{anon: uuid.New()} }

// Name returns the function's name, if it has one.
func (id FunctionId) Name() (string, bool) { return id.name, id.named }

// Equals compares two identities for equality.
func (id FunctionId) Equals(other FunctionId) bool {
	if id.named != other.named {
		return false
	}
	if id.named {
		return id.name == other.name
	}
	return id.anon == other.anon
}

func (id FunctionId) Display() string {
	if id.named {
		return id.name
	}
	return "fn-" + id.anon.String()[:8]
}

// InverseFn computes a function's inverse. under distinguishes Invert's
// request (under=false) from Under's (under=true): some functions invert
// differently depending on whether they're being run "through" another
// operation (see internal/modifier's Under combinator).
type InverseFn func(e Env, under bool) (*Function, error)

// Function is a callable handle: an identity plus a body.
type Function struct {
	id      FunctionId
	body    func(Env) error
	inverse InverseFn
}

// NewFunction builds a function with no known inverse.
func NewFunction(id FunctionId, body func(Env) error) *Function {
	return &Function{id: id, body: body}
}

// NewInvertibleFunction builds a function together with its inverse rule.
func NewInvertibleFunction(id FunctionId, body func(Env) error, inverse InverseFn) *Function {
	return &Function{id: id, body: body, inverse: inverse}
}

// Id returns the function's identity.
func (f *Function) Id() FunctionId { return f.id }

// Invoke runs the function body against env, re-entering the VM as a
// synchronous call that may arbitrarily mutate the stack and may error.
func (f *Function) Invoke(e Env) error { return f.body(e) }

// Inverse computes the function's inverse, used by the Invert and Under
// modifiers. Functions built without an inverse rule report themselves as
// non-invertible.
func (f *Function) Inverse(e Env, under bool) (*Function, error) {
	if f.inverse == nil {
		return nil, e.Error(fmt.Sprintf("%s has no inverse", f.Display()))
	}
	return f.inverse(e, under)
}

func (f *Function) Display() string { return f.id.Display() }
