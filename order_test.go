package enumerable

import "testing"

func rec(k int64, v string) Value {
	return Obj(map[string]Value{"k": Int(k), "v": Str(v)})
}

func keyK(v Value) Value { return v.Data.(map[string]Value)["k"] }
func keyV(v Value) Value { return v.Data.(map[string]Value)["v"] }

func labels(t *testing.T, s *Sequence) []string {
	t.Helper()
	var out []string
	for _, v := range mustSlice(t, s) {
		out = append(out, ToText(keyV(v)))
	}
	return out
}

func Test_OrderBy_Stable(t *testing.T) {
	src := []Value{rec(1, "a"), rec(1, "b")}
	got := labels(t, From(src).OrderBy(keyK).Sequence)
	if got[0] != "a" || got[1] != "b" {
		t.Fatalf("equal keys must keep original order, got %v", got)
	}
}

func Test_OrderBy_SortsByKey(t *testing.T) {
	src := []Value{rec(3, "c"), rec(1, "a"), rec(2, "b")}
	got := labels(t, From(src).OrderBy(keyK).Sequence)
	if got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("got %v", got)
	}
}

func Test_OrderByDescending(t *testing.T) {
	wantInts(t, From([]int{2, 3, 1}).OrderByDescending(nil).Sequence, 3, 2, 1)
}

func Test_ThenBy_TieBreak(t *testing.T) {
	src := []Value{rec(2, "x"), rec(1, "z"), rec(1, "a"), rec(2, "a")}
	got := labels(t, From(src).OrderBy(keyK).ThenBy(keyV).Sequence)
	want := []string{"a", "z", "a", "x"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func Test_ThenBy_DoesNotMutatePrevious(t *testing.T) {
	src := []Value{rec(1, "b"), rec(1, "a")}
	ordered := From(src).OrderBy(keyK)
	refined := ordered.ThenBy(keyV)

	// the refined ordering sorts ties ...
	got := labels(t, refined.Sequence)
	if got[0] != "a" || got[1] != "b" {
		t.Fatalf("refined: got %v", got)
	}
	// ... while the original ordering still yields original relative order
	got = labels(t, ordered.Sequence)
	if got[0] != "b" || got[1] != "a" {
		t.Fatalf("original ordering was mutated: got %v", got)
	}
}

func Test_ThenBy_MultiLevelStable(t *testing.T) {
	src := []Value{
		Obj(map[string]Value{"k": Int(1), "m": Int(1), "v": Str("p")}),
		Obj(map[string]Value{"k": Int(1), "m": Int(1), "v": Str("q")}),
		Obj(map[string]Value{"k": Int(1), "m": Int(0), "v": Str("r")}),
	}
	keyM := func(v Value) Value { return v.Data.(map[string]Value)["m"] }
	got := labels(t, From(src).OrderBy(keyK).ThenBy(keyM).ThenBy(nil, func(a, b Value) int { return 0 }).Sequence)
	// all-tie third level must not disturb the second level's stable result
	want := []string{"r", "p", "q"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func Test_ThenByDescending(t *testing.T) {
	src := []Value{rec(1, "a"), rec(1, "c"), rec(2, "b")}
	got := labels(t, From(src).OrderBy(keyK).ThenByDescending(keyV).Sequence)
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func Test_Reverse(t *testing.T) {
	wantInts(t, From([]int{1, 2, 3, 4}).Reverse(), 4, 3, 2, 1)
	wantInts(t, Empty().Reverse())
	wantInts(t, From([]int{7}).Reverse(), 7)
}

func Test_OrderBy_ResultIsResettable(t *testing.T) {
	s := From([]int{2, 1}).OrderBy(nil).Sequence
	wantInts(t, s, 1, 2)
	if err := s.Reset(); err != nil {
		t.Fatalf("ordered result should be resettable: %v", err)
	}
	wantInts(t, s, 1, 2)
}
