package value

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders any value as its display form, re-boxed as a character
// array.
func String(v Value) (Value, error) {
	return Arr(NewCharArray(v.Display())), nil
}

// Parse reads a character array as a number, the inverse direction of
// String for the numeric case.
func Parse(v Value) (Value, error) {
	arr, ok := v.Array()
	if !ok {
		return Value{}, fmt.Errorf("parse expects a string, got %s", v.Display())
	}
	s, ok := arr.AsString()
	if !ok {
		return Value{}, fmt.Errorf("parse expects a character array, got %s", v.Display())
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Value{}, fmt.Errorf("cannot parse %q as a number", s)
	}
	return Num(n), nil
}
