// Package ioop holds the catalog of I/O operations forwarded by the
// Primitive.Io tag. Implementations of read_line/print/etc. belong to the
// VM outer loop and the I/O backend set, both out of scope for this module;
// the dispatcher only needs enough of the catalog to name and arity-check
// an operation before handing it off.
package ioop

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed ops.yaml
var manifest []byte

// Op identifies one I/O operation by position in the manifest.
type Op int

type opDef struct {
	Name    string `yaml:"name"`
	Args    int    `yaml:"args"`
	Outputs int    `yaml:"outputs"`
}

type catalogFile struct {
	Ops []opDef `yaml:"ops"`
}

var catalog []opDef
var byName map[string]Op

func init() {
	var parsed catalogFile
	if err := yaml.Unmarshal(manifest, &parsed); err != nil {
		panic(fmt.Sprintf("ioop: malformed embedded manifest: %v", err))
	}
	catalog = parsed.Ops
	byName = make(map[string]Op, len(catalog))
	for i, op := range catalog {
		byName[op.Name] = Op(i)
	}
}

// Name returns the canonical lowercase name of an I/O operation.
func (o Op) Name() string {
	if int(o) < 0 || int(o) >= len(catalog) {
		return ""
	}
	return catalog[o].Name
}

// Args returns the input arity of an I/O operation.
func (o Op) Args() int {
	if int(o) < 0 || int(o) >= len(catalog) {
		return 0
	}
	return catalog[o].Args
}

// Outputs returns the output arity of an I/O operation.
func (o Op) Outputs() int {
	if int(o) < 0 || int(o) >= len(catalog) {
		return 0
	}
	return catalog[o].Outputs
}

// FromName resolves a lowercase name to an I/O operation, used by
// Primitive.from_name step 2 before the closed-catalog prefix rule runs.
func FromName(lower string) (Op, bool) {
	op, ok := byName[strings.ToLower(lower)]
	return op, ok
}

// All returns every catalogued I/O operation, in manifest order.
func All() []Op {
	ops := make([]Op, len(catalog))
	for i := range catalog {
		ops[i] = Op(i)
	}
	return ops
}
