// This file is the array kernel: real shapes, real leading-axis semantics,
// backing every array op internal/dispatch forwards to it.
package value

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// atLeastRank1 coerces a value to an array with a well-defined leading axis:
// a non-array becomes a length-1 array, and a rank-0 array (itself a
// coercion artifact) is lifted the same way.
func atLeastRank1(v Value) *Array {
	arr := v.CoerceArray()
	if arr.Rank() == 0 {
		return NewArray([]int{1}, arr.data)
	}
	return arr
}

// cellOf returns a value's own shape and flat buffer: a scalar's shape is
// empty and its buffer is itself, an array's is its own.
func cellOf(v Value) ([]int, []Value) {
	if arr, ok := v.Array(); ok {
		return arr.shape, arr.data
	}
	return []int{}, []Value{v}
}

func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}
	return s
}

// iterateCoords visits every coordinate of shape in row-major order. The
// slice passed to visit is reused between calls; visit must not retain it.
func iterateCoords(shape []int, visit func([]int)) {
	if len(shape) == 0 {
		visit(nil)
		return
	}
	coord := make([]int, len(shape))
	total := cellSize(shape)
	for n := 0; n < total; n++ {
		visit(coord)
		for d := len(shape) - 1; d >= 0; d-- {
			coord[d]++
			if coord[d] < shape[d] {
				break
			}
			coord[d] = 0
		}
	}
}

func natsOf(v Value) ([]int, error) {
	if arr, ok := v.Array(); ok {
		cells := arr.IntoValues()
		nats := make([]int, len(cells))
		for i, c := range cells {
			n, ok := c.AsNat()
			if !ok {
				return nil, fmt.Errorf("expected a natural number, got %s", c.Display())
			}
			nats[i] = n
		}
		return nats, nil
	}
	n, ok := v.AsNat()
	if !ok {
		return nil, fmt.Errorf("expected a natural number, got %s", v.Display())
	}
	return []int{n}, nil
}

// --- Monadic array ops ---

// Len returns the size of the leading axis (1 for a scalar).
func Len(v Value) (Value, error) {
	arr := atLeastRank1(v)
	return Num(float64(arr.shape[0])), nil
}

// Rank returns the number of axes (0 for a scalar).
func Rank(v Value) (Value, error) {
	if arr, ok := v.Array(); ok {
		return Num(float64(arr.Rank())), nil
	}
	return Num(0), nil
}

// Shape returns the axis lengths as a rank-1 array (empty for a scalar).
func Shape(v Value) (Value, error) {
	shape, _ := cellOf(v)
	data := make([]Value, len(shape))
	for i, n := range shape {
		data[i] = Num(float64(n))
	}
	return Arr(NewArray([]int{len(shape)}, data)), nil
}

// Range builds the array [0, 1, ..., n-1] from a natural-number count.
func Range(v Value) (Value, error) {
	n, ok := v.AsNat()
	if !ok {
		return Value{}, fmt.Errorf("range length must be a natural number, got %s", v.Display())
	}
	data := make([]Value, n)
	for i := 0; i < n; i++ {
		data[i] = Num(float64(i))
	}
	return Arr(NewArray([]int{n}, data)), nil
}

// First returns the first leading-axis cell.
func First(v Value) (Value, error) {
	arr := atLeastRank1(v)
	cells := arr.IntoValues()
	if len(cells) == 0 {
		return Value{}, fmt.Errorf("first of an empty array")
	}
	return cells[0], nil
}

// Reverse is self-inverse: it reverses the leading axis.
func Reverse(v Value) (Value, error) {
	arr := atLeastRank1(v)
	n := arr.shape[0]
	size := cellSize(arr.shape[1:])
	out := make([]Value, len(arr.data))
	for i := 0; i < n; i++ {
		src := arr.data[i*size : (i+1)*size]
		copy(out[(n-1-i)*size:(n-i)*size], src)
	}
	return Arr(NewArray(arr.shape, out)), nil
}

// Enclose boxes any value as an opaque rank-0 cell, so a nested array can
// sit as a single element of an outer one.
func Enclose(v Value) (Value, error) {
	return Arr(&Array{shape: []int{}, data: []Value{v}}), nil
}

// Normalize attempts to upgrade a boxed array into a regular one (see
// Array.Normalized); applied to a scalar it is a no-op.
func Normalize(v Value) (Value, error) {
	if arr, ok := v.Array(); ok {
		return Arr(arr.Normalized()), nil
	}
	return v, nil
}

// Deshape flattens an array to rank 1, keeping its existing flat buffer.
func Deshape(v Value) (Value, error) {
	arr := v.CoerceArray()
	return Arr(NewArray([]int{len(arr.data)}, append([]Value(nil), arr.data...))), nil
}

// Transpose moves the leading axis to the last position. Rank < 2 arrays
// are unchanged.
func Transpose(v Value) (Value, error) {
	arr := v.CoerceArray()
	if arr.Rank() < 2 {
		return Arr(arr), nil
	}
	oldShape := arr.shape
	oldStrides := strides(oldShape)
	newShape := append(append([]int{}, oldShape[1:]...), oldShape[0])
	data := make([]Value, len(arr.data))
	i := 0
	iterateCoords(newShape, func(coord []int) {
		oldCoord := make([]int, len(coord))
		oldCoord[0] = coord[len(coord)-1]
		copy(oldCoord[1:], coord[:len(coord)-1])
		idx := 0
		for d := range oldCoord {
			idx += oldCoord[d] * oldStrides[d]
		}
		data[i] = arr.data[idx]
		i++
	})
	return Arr(NewArray(newShape, data)), nil
}

// Sort orders leading-axis cells ascending, by compareValues.
func Sort(v Value) (Value, error) {
	arr := atLeastRank1(v)
	cells := arr.IntoValues()
	slices.SortFunc(cells, func(a, b Value) int { return compareValues(a, b) })
	return Arr(NewBoxed(cells).Normalized()), nil
}

// Grade returns the permutation of indices that sorts the leading axis.
func Grade(v Value) (Value, error) {
	arr := atLeastRank1(v)
	cells := arr.IntoValues()
	idx := make([]int, len(cells))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int { return compareValues(cells[a], cells[b]) })
	data := make([]Value, len(idx))
	for i, n := range idx {
		data[i] = Num(float64(n))
	}
	return Arr(NewArray([]int{len(data)}, data)), nil
}

// Indices reads a rank-1 array of non-negative counts and produces each
// position repeated that many times, e.g. [2 0 1] -> [0 0 2].
func Indices(v Value) (Value, error) {
	counts, err := natsOf(v)
	if err != nil {
		return Value{}, err
	}
	var data []Value
	for i, c := range counts {
		for j := 0; j < c; j++ {
			data = append(data, Num(float64(i)))
		}
	}
	return Arr(NewArray([]int{len(data)}, data)), nil
}

// Classify assigns each distinct leading-axis cell an integer id in order
// of first appearance.
func Classify(v Value) (Value, error) {
	arr := atLeastRank1(v)
	cells := arr.IntoValues()
	var seen []Value
	data := make([]Value, len(cells))
	for i, c := range cells {
		id := -1
		for j, s := range seen {
			if s.Equals(c) {
				id = j
				break
			}
		}
		if id == -1 {
			id = len(seen)
			seen = append(seen, c)
		}
		data[i] = Num(float64(id))
	}
	return Arr(NewArray([]int{len(data)}, data)), nil
}

// Deduplicate keeps the first occurrence of each distinct leading-axis cell.
func Deduplicate(v Value) (Value, error) {
	arr := atLeastRank1(v)
	cells := arr.IntoValues()
	var kept []Value
	for _, c := range cells {
		dup := false
		for _, k := range kept {
			if k.Equals(c) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, c)
		}
	}
	return Arr(NewBoxed(kept).Normalized()), nil
}

// --- Dyadic array ops (a = first-pushed/below, b = second-pushed/top) ---

// Join concatenates two arrays along the leading axis; their cell shapes
// (everything but the leading axis) must match.
func Join(a, b Value) (Value, error) {
	aArr := atLeastRank1(a)
	bArr := atLeastRank1(b)
	if !intsEqual(aArr.shape[1:], bArr.shape[1:]) {
		return Value{}, fmt.Errorf("cannot join arrays of shape %v and %v", aArr.shape, bArr.shape)
	}
	shape := append([]int{aArr.shape[0] + bArr.shape[0]}, aArr.shape[1:]...)
	data := append(append([]Value{}, aArr.data...), bArr.data...)
	return Arr(NewArray(shape, data)), nil
}

// Pair loosely boxes two values as a 2-element array, upgrading to a
// regular array only if their shapes happen to match.
func Pair(a, b Value) (Value, error) {
	return Arr(NewBoxed([]Value{a, b}).Normalized()), nil
}

// Couple stacks two same-shape values as the two rows of a new array.
func Couple(a, b Value) (Value, error) {
	as, ad := cellOf(a)
	bs, bd := cellOf(b)
	if !intsEqual(as, bs) {
		return Value{}, fmt.Errorf("cannot couple values of shape %v and %v", as, bs)
	}
	shape := append([]int{2}, as...)
	data := append(append([]Value{}, ad...), bd...)
	return Arr(NewArray(shape, data)), nil
}

// Reshape rebuilds b's flat buffer under the shape named by a (a natural
// number or an array of them), cycling the source data to fill it.
func Reshape(a, b Value) (Value, error) {
	dims, err := natsOf(a)
	if err != nil {
		return Value{}, err
	}
	src := b.CoerceArray().data
	if len(src) == 0 {
		return Value{}, fmt.Errorf("cannot reshape an empty array")
	}
	total := cellSize(dims)
	data := make([]Value, total)
	for i := range data {
		data[i] = src[i%len(src)]
	}
	return Arr(NewArray(dims, data)), nil
}

// Take keeps the first n leading-axis cells (n >= 0) or the last |n| (n < 0).
func Take(a, b Value) (Value, error) {
	n, ok := a.AsNat()
	neg := false
	if !ok {
		if f, isNum := a.Number(); isNum && f < 0 {
			neg = true
			n = int(-f)
		} else {
			return Value{}, fmt.Errorf("take count must be an integer, got %s", a.Display())
		}
	}
	arr := atLeastRank1(b)
	size := cellSize(arr.shape[1:])
	if n > arr.shape[0] {
		return Value{}, fmt.Errorf("cannot take %d cells from an array of length %d", n, arr.shape[0])
	}
	var data []Value
	if neg {
		data = arr.data[(arr.shape[0]-n)*size:]
	} else {
		data = arr.data[:n*size]
	}
	shape := append([]int{n}, arr.shape[1:]...)
	return Arr(NewArray(shape, append([]Value(nil), data...))), nil
}

// Drop removes the first n leading-axis cells (n >= 0) or the last |n| (n < 0).
func Drop(a, b Value) (Value, error) {
	n, ok := a.AsNat()
	neg := false
	if !ok {
		if f, isNum := a.Number(); isNum && f < 0 {
			neg = true
			n = int(-f)
		} else {
			return Value{}, fmt.Errorf("drop count must be an integer, got %s", a.Display())
		}
	}
	arr := atLeastRank1(b)
	size := cellSize(arr.shape[1:])
	if n > arr.shape[0] {
		n = arr.shape[0]
	}
	var data []Value
	var newLen int
	if neg {
		data = arr.data[:(arr.shape[0]-n)*size]
		newLen = arr.shape[0] - n
	} else {
		data = arr.data[n*size:]
		newLen = arr.shape[0] - n
	}
	shape := append([]int{newLen}, arr.shape[1:]...)
	return Arr(NewArray(shape, append([]Value(nil), data...))), nil
}

// Rotate cyclically shifts the leading axis by a (positive: toward the
// front; negative: toward the back).
func Rotate(a, b Value) (Value, error) {
	n, ok := a.Number()
	if !ok {
		return Value{}, fmt.Errorf("rotate amount must be a number, got %s", a.Display())
	}
	arr := atLeastRank1(b)
	ln := arr.shape[0]
	if ln == 0 {
		return Arr(arr), nil
	}
	shift := ((int(n) % ln) + ln) % ln
	size := cellSize(arr.shape[1:])
	data := make([]Value, len(arr.data))
	copy(data, arr.data[shift*size:])
	copy(data[(ln-shift)*size:], arr.data[:shift*size])
	return Arr(NewArray(arr.shape, data)), nil
}

// Replicate repeats each leading-axis cell of b by the matching count in a
// (a scalar count applies uniformly to every cell).
func Replicate(a, b Value) (Value, error) {
	arr := atLeastRank1(b)
	cells := arr.IntoValues()
	counts, err := natsOf(a)
	if err != nil {
		return Value{}, err
	}
	if len(counts) == 1 && len(cells) != 1 {
		uniform := counts[0]
		counts = make([]int, len(cells))
		for i := range counts {
			counts[i] = uniform
		}
	}
	if len(counts) != len(cells) {
		return Value{}, fmt.Errorf("replicate counts length %d does not match array length %d", len(counts), len(cells))
	}
	var out []Value
	for i, c := range counts {
		for j := 0; j < c; j++ {
			out = append(out, cells[i])
		}
	}
	return Arr(NewBoxed(out).Normalized()), nil
}

// Windows collects overlapping length-n sliding windows along the leading axis.
func Windows(a, b Value) (Value, error) {
	n, ok := a.AsNat()
	if !ok {
		return Value{}, fmt.Errorf("window size must be a natural number, got %s", a.Display())
	}
	arr := atLeastRank1(b)
	ln := arr.shape[0]
	if n == 0 || n > ln {
		return Value{}, fmt.Errorf("window size %d is out of range for an array of length %d", n, ln)
	}
	size := cellSize(arr.shape[1:])
	windowCount := ln - n + 1
	shape := append([]int{windowCount, n}, arr.shape[1:]...)
	data := make([]Value, windowCount*n*size)
	for w := 0; w < windowCount; w++ {
		copy(data[w*n*size:(w+1)*n*size], arr.data[w*size:(w+n)*size])
	}
	return Arr(NewArray(shape, data)), nil
}

// Select gathers the leading-axis cells of b named by the indices in a.
func Select(a, b Value) (Value, error) {
	idxs, err := natsOf(a)
	if err != nil {
		return Value{}, err
	}
	arr := atLeastRank1(b)
	cells := arr.IntoValues()
	out := make([]Value, len(idxs))
	for i, idx := range idxs {
		if idx < 0 || idx >= len(cells) {
			return Value{}, fmt.Errorf("select index %d out of range for length %d", idx, len(cells))
		}
		out[i] = cells[idx]
	}
	return Arr(NewArray(append([]int{len(out)}, arr.shape[1:]...), out)), nil
}

// Member reports, for each leading-axis cell of a, whether it occurs among
// b's leading-axis cells. A scalar a gives a scalar result.
func Member(a, b Value) (Value, error) {
	aArr := atLeastRank1(a)
	bCells := atLeastRank1(b).IntoValues()
	aCells := aArr.IntoValues()
	data := make([]Value, len(aCells))
	for i, c := range aCells {
		found := false
		for _, o := range bCells {
			if o.Equals(c) {
				found = true
				break
			}
		}
		data[i] = Num(boolOf(found))
	}
	if !a.IsArray() {
		return data[0], nil
	}
	return Arr(NewArray([]int{len(data)}, data)), nil
}

// IndexOf finds, for each leading-axis cell of a, its first index among b's
// leading-axis cells, or len(b) if absent. A scalar a gives a scalar result.
func IndexOf(a, b Value) (Value, error) {
	aCells := atLeastRank1(a).IntoValues()
	bCells := atLeastRank1(b).IntoValues()
	data := make([]Value, len(aCells))
	for i, c := range aCells {
		idx := len(bCells)
		for j, o := range bCells {
			if o.Equals(c) {
				idx = j
				break
			}
		}
		data[i] = Num(float64(idx))
	}
	if !a.IsArray() {
		return data[0], nil
	}
	return Arr(NewArray([]int{len(data)}, data)), nil
}

// Group buckets b's leading-axis cells by the matching non-negative integer
// key in a; negative keys are excluded. Buckets are ordered by key.
func Group(a, b Value) (Value, error) {
	keys, err := natsOfAllowNegative(a)
	if err != nil {
		return Value{}, err
	}
	cells := atLeastRank1(b).IntoValues()
	if len(keys) != len(cells) {
		return Value{}, fmt.Errorf("group keys length %d does not match array length %d", len(keys), len(cells))
	}
	max := -1
	for _, k := range keys {
		if k > max {
			max = k
		}
	}
	buckets := make([][]Value, max+1)
	for i, k := range keys {
		if k < 0 {
			continue
		}
		buckets[k] = append(buckets[k], cells[i])
	}
	groups := make([]Value, len(buckets))
	for i, bucket := range buckets {
		groups[i] = Arr(NewBoxed(bucket).Normalized())
	}
	return Arr(NewBoxed(groups)), nil
}

func natsOfAllowNegative(v Value) ([]int, error) {
	arr, ok := v.Array()
	if !ok {
		n, ok := v.Number()
		if !ok {
			return nil, fmt.Errorf("expected an integer, got %s", v.Display())
		}
		return []int{int(n)}, nil
	}
	cells := arr.IntoValues()
	out := make([]int, len(cells))
	for i, c := range cells {
		n, ok := c.Number()
		if !ok {
			return nil, fmt.Errorf("expected an integer, got %s", c.Display())
		}
		out[i] = int(n)
	}
	return out, nil
}

// --- Triadic: Put, Pick's inverse partner ---

// Pick reads the element at a multi-axis index into b. index is either a
// scalar (selects a leading-axis cell) or an array of naturals, one per
// consumed axis; if fewer naturals than b's rank are given, the remaining
// trailing axes are returned as a sub-array.
func Pick(index, b Value) (Value, error) {
	coords, err := natsOf(index)
	if err != nil {
		return Value{}, err
	}
	arr := b.CoerceArray()
	return pickAt(arr, coords)
}

func pickAt(arr *Array, coords []int) (Value, error) {
	if len(coords) > arr.Rank() {
		return Value{}, fmt.Errorf("pick index has more axes (%d) than the array's rank (%d)", len(coords), arr.Rank())
	}
	st := strides(arr.shape)
	base := 0
	for i, c := range coords {
		if c < 0 || c >= arr.shape[i] {
			return Value{}, fmt.Errorf("pick index %d out of range for axis of length %d", c, arr.shape[i])
		}
		base += c * st[i]
	}
	remaining := arr.shape[len(coords):]
	size := cellSize(remaining)
	if len(remaining) == 0 {
		return arr.data[base], nil
	}
	return Arr(NewArray(remaining, append([]Value(nil), arr.data[base:base+size]...))), nil
}

// Put reconstructs arr with newValue set at the position named by index,
// the inverse partner of Pick: Put(i, v, arr) is arr with v at i, so
// Put(i, Pick(i, arr), arr) gives back arr.
func Put(index, newValue, arr Value) (Value, error) {
	coords, err := natsOf(index)
	if err != nil {
		return Value{}, err
	}
	a := arr.CoerceArray().shallowCopy()
	if len(coords) > a.Rank() {
		return Value{}, fmt.Errorf("put index has more axes (%d) than the array's rank (%d)", len(coords), a.Rank())
	}
	st := strides(a.shape)
	base := 0
	for i, c := range coords {
		if c < 0 || c >= a.shape[i] {
			return Value{}, fmt.Errorf("put index %d out of range for axis of length %d", c, a.shape[i])
		}
		base += c * st[i]
	}
	remaining := a.shape[len(coords):]
	size := cellSize(remaining)
	if len(remaining) == 0 {
		a.data[base] = newValue
	} else {
		_, data := cellOf(newValue)
		if len(data) != size {
			return Value{}, fmt.Errorf("put value has %d elements, expected %d", len(data), size)
		}
		copy(a.data[base:base+size], data)
	}
	return Arr(a), nil
}
