package value

import "testing"

func ints(xs ...int) Value {
	data := make([]Value, len(xs))
	for i, x := range xs {
		data[i] = Num(float64(x))
	}
	return Arr(NewArray([]int{len(xs)}, data))
}

func TestRangeReverse(t *testing.T) {
	r, err := Range(Num(5))
	if err != nil {
		t.Fatal(err)
	}
	rev, err := Reverse(r)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Reverse(rev)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equals(back) {
		t.Fatalf("reverse twice should be identity: got %s", back.Display())
	}
}

func TestTakeDropComplementJoin(t *testing.T) {
	xs := ints(1, 2, 3, 4, 5)
	head, err := Take(Num(2), xs)
	if err != nil {
		t.Fatal(err)
	}
	tail, err := Drop(Num(2), xs)
	if err != nil {
		t.Fatal(err)
	}
	joined, err := Join(head, tail)
	if err != nil {
		t.Fatal(err)
	}
	if !xs.Equals(joined) {
		t.Fatalf("take(n) ++ drop(n) should reconstruct the array: got %s", joined.Display())
	}
}

func TestTakeNegativeFromEnd(t *testing.T) {
	xs := ints(1, 2, 3, 4, 5)
	tail, err := Take(Num(-2), xs)
	if err != nil {
		t.Fatal(err)
	}
	if !tail.Equals(ints(4, 5)) {
		t.Fatalf("take(-2) should be the last two elements, got %s", tail.Display())
	}
}

func TestPickPutRoundTrip(t *testing.T) {
	xs := ints(10, 20, 30)
	picked, err := Pick(Num(1), xs)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := picked.Number(); n != 20 {
		t.Fatalf("pick(1) should be 20, got %v", picked.Display())
	}
	rebuilt, err := Put(Num(1), picked, xs)
	if err != nil {
		t.Fatal(err)
	}
	if !xs.Equals(rebuilt) {
		t.Fatalf("put(i, pick(i, arr), arr) should reconstruct arr, got %s", rebuilt.Display())
	}
}

func TestSortGradeAgree(t *testing.T) {
	xs := ints(3, 1, 2)
	sorted, err := Sort(xs)
	if err != nil {
		t.Fatal(err)
	}
	if !sorted.Equals(ints(1, 2, 3)) {
		t.Fatalf("sort should order ascending, got %s", sorted.Display())
	}
	grade, err := Grade(xs)
	if err != nil {
		t.Fatal(err)
	}
	if !grade.Equals(ints(1, 2, 0)) {
		t.Fatalf("grade should give the sorting permutation, got %s", grade.Display())
	}
}

func TestMemberIndexOf(t *testing.T) {
	haystack := ints(10, 20, 30)
	found, err := Member(Num(20), haystack)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := found.Number(); n != 1 {
		t.Fatalf("20 is a member of the array, expected 1, got %v", found.Display())
	}
	idx, err := IndexOf(Num(20), haystack)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := idx.Number(); n != 1 {
		t.Fatalf("index of 20 should be 1, got %v", idx.Display())
	}
	missingIdx, err := IndexOf(Num(99), haystack)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := missingIdx.Number(); n != 3 {
		t.Fatalf("index of a missing value should be the array's length (3), got %v", missingIdx.Display())
	}
}

func TestShapeLenRank(t *testing.T) {
	xs := ints(1, 2, 3)
	l, _ := Len(xs)
	if n, _ := l.Number(); n != 3 {
		t.Fatalf("len should be 3, got %v", n)
	}
	r, _ := Rank(xs)
	if n, _ := r.Number(); n != 1 {
		t.Fatalf("rank should be 1, got %v", n)
	}
	sh, _ := Shape(xs)
	if !sh.Equals(ints(3)) {
		t.Fatalf("shape should be [3], got %s", sh.Display())
	}
	scalarShape, _ := Shape(Num(5))
	arr, _ := scalarShape.Array()
	if arr.Len() != 0 {
		t.Fatalf("a scalar's shape should be empty, got %s", scalarShape.Display())
	}
}
