package enumerable

import (
	"errors"
	"math"
	"testing"
)

func Test_Select_Composition(t *testing.T) {
	f := func(v Value) Value { return Int(ToInteger(v) + 1) }
	g := func(v Value) Value { return Int(ToInteger(v) * 3) }

	chained := mustSlice(t, From([]int{1, 2, 3}).Select(f).Select(g))
	fused := mustSlice(t, From([]int{1, 2, 3}).Select(func(v Value) Value { return g(f(v)) }))

	if len(chained) != len(fused) {
		t.Fatalf("length mismatch: %d vs %d", len(chained), len(fused))
	}
	for i := range chained {
		wantValue(t, chained[i], fused[i])
	}
}

func Test_Select_NilSelectorIsIdentity(t *testing.T) {
	wantInts(t, From([]int{1, 2}).Select(nil), 1, 2)
}

func Test_SelectWithIndex(t *testing.T) {
	s := From([]string{"a", "b", "c"}).SelectWithIndex(func(_ Value, i int) Value {
		return Int(int64(i))
	})
	wantInts(t, s, 0, 1, 2)
}

func Test_SelectMany(t *testing.T) {
	s := From([]int{1, 2, 3}).SelectMany(func(v Value) Value {
		n := ToInteger(v)
		return Arr([]Value{Int(n), Int(n * 10)})
	})
	wantInts(t, s, 1, 10, 2, 20, 3, 30)
}

func Test_SelectMany_ScalarProjection(t *testing.T) {
	wantInts(t, From([]int{1, 2}).SelectMany(timesTen), 10, 20)
}

func Test_Pipe_TapsLazily(t *testing.T) {
	var seen []int64
	s := From([]int{1, 2, 3}).Pipe(func(v Value, _ int) {
		seen = append(seen, ToInteger(v))
	})
	if len(seen) != 0 {
		t.Fatalf("pipe ran eagerly")
	}
	wantInts(t, s, 1, 2, 3)
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Fatalf("pipe saw %v", seen)
	}
}

func Test_Flatten_OneLevel(t *testing.T) {
	src := []Value{
		Arr([]Value{Int(1), Int(2)}),
		Int(3),
		Arr([]Value{Int(4), Arr([]Value{Int(5)})}),
	}
	got := mustSlice(t, From(src).Flatten())
	if len(got) != 5 {
		t.Fatalf("want 5 elements, got %v", got)
	}
	// the nested [5] stays an array at one level
	if got[4].Tag != VTArray {
		t.Fatalf("inner array should survive one-level flatten, got %s", got[4])
	}
}

func Test_Flatten_Deep(t *testing.T) {
	src := []Value{
		Arr([]Value{Int(1), Arr([]Value{Int(2), Arr([]Value{Int(3)})})}),
		Int(4),
	}
	wantInts(t, From(src).Flatten(true), 1, 2, 3, 4)
}

func Test_Cast_Targets(t *testing.T) {
	got := mustSlice(t, From([]any{"12", 3.9, true}).Cast("int"))
	wantValue(t, got[0], Int(12))
	wantValue(t, got[1], Int(3))
	wantValue(t, got[2], Int(1))

	got = mustSlice(t, From([]any{1, "", "x", nil}).Cast("bool"))
	wantValue(t, got[0], Bool(true))
	wantValue(t, got[1], Bool(false))
	wantValue(t, got[2], Bool(true))
	wantValue(t, got[3], Bool(false))

	got = mustSlice(t, From([]any{1, "2.5"}).Cast("float"))
	wantValue(t, got[0], Num(1))
	wantValue(t, got[1], Num(2.5))

	got = mustSlice(t, From([]any{1, nil}).Cast("string"))
	wantValue(t, got[0], Str("1"))
	wantValue(t, got[1], Str("null"))

	got = mustSlice(t, From([]any{1, "x"}).Cast("null"))
	wantValue(t, got[0], Null)
	wantValue(t, got[1], Null)
}

func Test_Cast_ObjectParsesJSON(t *testing.T) {
	got := mustSlice(t, From([]any{`{"a": 1}`}).Cast("object"))
	if got[0].Tag != VTObject {
		t.Fatalf("want object, got %s", got[0])
	}
	m := got[0].Data.(map[string]Value)
	wantValue(t, m["a"], Num(1))
}

func Test_Cast_ObjectFailsOnMalformedJSON(t *testing.T) {
	_, err := From([]any{"not json"}).Cast("object").ToSlice()
	var ce *CastError
	if !errors.As(err, &ce) {
		t.Fatalf("want CastError, got %v", err)
	}
}

func Test_Cast_UnsupportedType(t *testing.T) {
	s := From([]int{1}).Cast("symbol") // construction must not fail
	_, err := s.ToSlice()
	var ue *UnsupportedOperationError
	if !errors.As(err, &ue) {
		t.Fatalf("want UnsupportedOperationError, got %v", err)
	}
	if s.Err() == nil {
		t.Fatalf("cursor should retain the failure")
	}
}

func Test_Cast_NonNumericToFloatIsNaN(t *testing.T) {
	got := mustSlice(t, From([]any{"abc"}).Cast("float"))
	if got[0].Tag != VTNum || !math.IsNaN(got[0].Data.(float64)) {
		t.Fatalf("want NaN, got %s", got[0])
	}
}
