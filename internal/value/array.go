package value

import "strings"

// Array is a shape vector plus a flat value buffer. Cells are laid out in
// row-major order: the leading axis varies slowest.
type Array struct {
	shape []int
	data  []Value
}

// NewArray builds an array directly from a shape and a matching flat buffer.
// len(data) must equal the product of shape; callers that built it (Each,
// Cells, Scan, ...) already guarantee this.
func NewArray(shape []int, data []Value) *Array {
	return &Array{shape: append([]int(nil), shape...), data: data}
}

// NewBoxed builds a rank-1 array whose cells are exactly the given values,
// with no attempt to unify their shapes. Normalized() upgrades this to a
// regular multi-dimensional array when every cell turns out to share a shape.
func NewBoxed(values []Value) *Array {
	return &Array{shape: []int{len(values)}, data: append([]Value(nil), values...)}
}

// Len returns the size of the leading axis (1 for a coerced scalar).
func (a *Array) Len() int {
	if len(a.shape) == 0 {
		return 1
	}
	return a.shape[0]
}

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the shape vector.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

func cellSize(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// IntoValues splits the array into its leading-axis cells, in index order.
func (a *Array) IntoValues() []Value {
	if len(a.shape) == 0 {
		return append([]Value(nil), a.data...)
	}
	n := a.shape[0]
	cellShape := a.shape[1:]
	size := cellSize(cellShape)
	cells := make([]Value, n)
	for i := 0; i < n; i++ {
		chunk := a.data[i*size : (i+1)*size]
		if len(cellShape) == 0 {
			cells[i] = chunk[0]
		} else {
			cells[i] = Arr(NewArray(cellShape, append([]Value(nil), chunk...)))
		}
	}
	return cells
}

// IntoShapeFlatValues returns the raw shape and flat buffer, the
// representation Each iterates (flat value order rather than cell order).
func (a *Array) IntoShapeFlatValues() ([]int, []Value) {
	return a.Shape(), append([]Value(nil), a.data...)
}

// Normalized attempts to upgrade a boxed rank-1 array (built by NewBoxed)
// into a regular multi-dimensional array when every cell shares a shape and
// none of them is itself a function: shape becomes len(cells)++subshape and
// the cells' buffers are concatenated. Ragged or mixed-kind input is
// returned unchanged (still a valid, if boxed, array).
func (a *Array) Normalized() *Array {
	if len(a.data) == 0 {
		return a
	}
	var subShape []int
	uniform := true
	for i, v := range a.data {
		var s []int
		if v.IsArray() {
			s = v.arr.shape
		} else {
			s = nil
		}
		if i == 0 {
			subShape = s
		} else if !intsEqual(subShape, s) {
			uniform = false
			break
		}
	}
	if !uniform {
		return a
	}
	if subShape == nil {
		// Every cell is already a scalar: the boxed array is already regular.
		return a
	}
	flat := make([]Value, 0, len(a.data)*cellSize(subShape))
	for _, v := range a.data {
		flat = append(flat, v.arr.data...)
	}
	shape := append([]int{len(a.data)}, subShape...)
	return NewArray(shape, flat)
}

// NormalizedType is the same collapsing operation, applied after building an
// array from already-shape-consistent row results (Table's per-row arrays).
// Kept as a distinct name since it documents a different call site than
// Normalized, even though the logic is identical.
func (a *Array) NormalizedType() *Array { return a.Normalized() }

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (a *Array) shallowCopy() *Array {
	return &Array{shape: append([]int(nil), a.shape...), data: append([]Value(nil), a.data...)}
}

// Equals implements whole-array structural equality (same shape, same
// elements in order).
func (a *Array) Equals(other *Array) bool {
	if a == other {
		return true
	}
	if !intsEqual(a.shape, other.shape) {
		return false
	}
	if len(a.data) != len(other.data) {
		return false
	}
	for i := range a.data {
		if !a.data[i].Equals(other.data[i]) {
			return false
		}
	}
	return true
}

// Display renders a bracketed, nested listing reflecting shape.
func (a *Array) Display() string {
	if isCharArray(a) {
		var sb strings.Builder
		for _, v := range a.data {
			sb.WriteRune(v.ch)
		}
		return sb.String()
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, cell := range a.IntoValues() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(cell.Display())
	}
	sb.WriteByte(']')
	return sb.String()
}

func isCharArray(a *Array) bool {
	if len(a.shape) != 1 || len(a.data) == 0 {
		return false
	}
	for _, v := range a.data {
		if v.kind != KindChar {
			return false
		}
	}
	return true
}

// NewCharArray builds a rank-1 array of characters from a Go string, the
// representation the String primitive pushes and Parse consumes.
func NewCharArray(s string) *Array {
	runes := []rune(s)
	data := make([]Value, len(runes))
	for i, r := range runes {
		data[i] = Char(r)
	}
	return NewArray([]int{len(runes)}, data)
}

// AsString reinterprets a character array as a Go string. ok is false if
// the array contains any non-character element.
func (a *Array) AsString() (string, bool) {
	var sb strings.Builder
	for _, v := range a.data {
		if v.kind != KindChar {
			return "", false
		}
		sb.WriteRune(v.ch)
	}
	return sb.String(), true
}
