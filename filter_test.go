package enumerable

import "testing"

func Test_Where_AlwaysTrueIsIdentity(t *testing.T) {
	src := []int{3, 1, 4, 1, 5}
	wantInts(t, From(src).Where(func(Value) bool { return true }), 3, 1, 4, 1, 5)
	wantInts(t, From(src).Where(nil), 3, 1, 4, 1, 5)
}

func Test_Where_PullsUntilMatch(t *testing.T) {
	wantInts(t, From([]int{1, 2, 3, 4, 5, 6}).Where(isEven), 2, 4, 6)
}

func Test_WhereWithIndex(t *testing.T) {
	s := From([]string{"a", "b", "c", "d"}).WhereWithIndex(func(_ Value, i int) bool {
		return i%2 == 0
	})
	wantStrs(t, s, "a", "c")
}

func Test_Distinct_FirstOccurrenceOrder(t *testing.T) {
	wantInts(t, From([]int{1, 2, 2, 3, 1}).Distinct(), 1, 2, 3)
}

func Test_Distinct_CustomEquality(t *testing.T) {
	// loose: 1 and "1" collapse
	got := mustSlice(t, From([]any{1, "1", 2}).Distinct(LooseEquality))
	if len(got) != 2 {
		t.Fatalf("want 2 distinct elements, got %v", got)
	}
	// default structural: they stay apart
	got = mustSlice(t, From([]any{1, "1", 2}).Distinct())
	if len(got) != 3 {
		t.Fatalf("want 3 distinct elements, got %v", got)
	}
}

func Test_DistinctBy(t *testing.T) {
	mod3 := func(v Value) Value { return Int(ToInteger(v) % 3) }
	wantInts(t, From([]int{1, 4, 2, 7, 3}).DistinctBy(mod3), 1, 2, 3)
}

func Test_Except(t *testing.T) {
	wantInts(t, From([]int{1, 2, 3, 4, 2}).Except([]int{2, 4, 4}), 1, 3)
}

func Test_Intersect_YieldsDistinctMatches(t *testing.T) {
	wantInts(t, From([]int{1, 2, 2, 3, 5}).Intersect([]int{2, 3, 4}), 2, 3)
}

func Test_Union(t *testing.T) {
	wantInts(t, From([]int{1, 2}).Union([]int{2, 3, 1, 4}), 1, 2, 3, 4)
}

func Test_TakeSkip_Partition(t *testing.T) {
	for n := 0; n <= 10; n++ {
		taken := mustSlice(t, Range(0, 10).Take(n))
		skipped := mustSlice(t, Range(0, 10).Skip(n))
		if len(taken) != n || len(taken)+len(skipped) != 10 {
			t.Fatalf("n=%d: take yielded %d, skip yielded %d", n, len(taken), len(skipped))
		}
		recombined := From(taken).Concat(skipped)
		eq, err := recombined.SequenceEqual(Range(0, 10))
		if err != nil || !eq {
			t.Fatalf("n=%d: partition does not reassemble (err %v)", n, err)
		}
	}
}

func Test_SkipWhile(t *testing.T) {
	below4 := func(v Value) bool { return ToInteger(v) < 4 }
	// once the predicate fails it is never consulted again
	wantInts(t, From([]int{1, 2, 5, 1, 6}).SkipWhile(below4), 5, 1, 6)
}

func Test_SkipLast(t *testing.T) {
	wantInts(t, From([]int{1, 2, 3, 4, 5}).SkipLast(2), 1, 2, 3)
	wantInts(t, From([]int{1, 2}).SkipLast(5))
	wantInts(t, From([]int{1, 2}).SkipLast(0), 1, 2)
}

func Test_TakeWhile(t *testing.T) {
	below4 := func(v Value) bool { return ToInteger(v) < 4 }
	wantInts(t, From([]int{1, 2, 5, 1}).TakeWhile(below4), 1, 2)
}

func Test_Take_DoesNotOverpull(t *testing.T) {
	pulls := 0
	gen := func() (Value, bool) {
		pulls++
		return Int(int64(pulls)), true
	}
	wantInts(t, From(gen).Take(3), 1, 2, 3)
	if pulls != 3 {
		t.Fatalf("take(3) pulled %d times", pulls)
	}
}
