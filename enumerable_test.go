package enumerable

import "testing"

// --- small helpers ----------------------------------------------------------

func mustSlice(t *testing.T, s *Sequence) []Value {
	t.Helper()
	out, err := s.ToSlice()
	if err != nil {
		t.Fatalf("ToSlice error: %v", err)
	}
	return out
}

func wantInts(t *testing.T, s *Sequence, expect ...int64) {
	t.Helper()
	got := mustSlice(t, s)
	if len(got) != len(expect) {
		t.Fatalf("want %d elements, got %d (%v)", len(expect), len(got), got)
	}
	for i, v := range got {
		if v.Tag != VTInt || v.Data.(int64) != expect[i] {
			t.Fatalf("element %d: want %d, got %s", i, expect[i], v)
		}
	}
}

func wantStrs(t *testing.T, s *Sequence, expect ...string) {
	t.Helper()
	got := mustSlice(t, s)
	if len(got) != len(expect) {
		t.Fatalf("want %d elements, got %d (%v)", len(expect), len(got), got)
	}
	for i, v := range got {
		if v.Tag != VTStr || v.Data.(string) != expect[i] {
			t.Fatalf("element %d: want %q, got %s", i, expect[i], v)
		}
	}
}

func wantValue(t *testing.T, got Value, want Value) {
	t.Helper()
	if !DefaultEquality(got, want) {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func isEven(v Value) bool { return ToInteger(v)%2 == 0 }

func timesTen(v Value) Value { return Int(ToInteger(v) * 10) }
