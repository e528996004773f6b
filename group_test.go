package enumerable

import "testing"

func parity(v Value) Value { return Int(ToInteger(v) % 2) }

func Test_GroupBy_Parity(t *testing.T) {
	groups := mustSlice(t, From([]int{1, 2, 3, 4}).GroupBy(parity))
	if len(groups) != 2 {
		t.Fatalf("want 2 groups, got %d", len(groups))
	}

	odd, ok := groups[0].AsGrouping()
	if !ok {
		t.Fatalf("want grouping, got %s", groups[0])
	}
	// group order = first-key-occurrence order: 1 appears before 2
	wantValue(t, odd.Key(), Int(1))
	wantInts(t, odd.Values(), 1, 3)

	even, _ := groups[1].AsGrouping()
	wantValue(t, even.Key(), Int(0))
	wantInts(t, even.Values(), 2, 4)
}

func Test_GroupBy_ValuesAreRepeatable(t *testing.T) {
	groups := mustSlice(t, From([]int{1, 3}).GroupBy(parity))
	g, _ := groups[0].AsGrouping()
	wantInts(t, g.Values(), 1, 3)
	wantInts(t, g.Values(), 1, 3) // fresh cursor each call
	if g.Len() != 2 {
		t.Fatalf("want len 2, got %d", g.Len())
	}
}

func Test_GroupBy_IsLazyUntilFirstPull(t *testing.T) {
	pulls := 0
	i := int64(0)
	gen := func() (Value, bool) {
		if i >= 2 {
			return Null, false
		}
		pulls++
		i++
		return Int(i), true
	}
	s := From(gen).GroupBy(parity)
	if pulls != 0 {
		t.Fatalf("groupBy pulled at construction")
	}
	s.Next()
	if pulls != 2 {
		t.Fatalf("first pull should build the whole table, got %d pulls", pulls)
	}
}

func Test_Join(t *testing.T) {
	outer := []Value{
		Obj(map[string]Value{"id": Int(1), "name": Str("ann")}),
		Obj(map[string]Value{"id": Int(2), "name": Str("bob")}),
		Obj(map[string]Value{"id": Int(3), "name": Str("cat")}),
	}
	inner := []Value{
		Obj(map[string]Value{"owner": Int(1), "pet": Str("rex")}),
		Obj(map[string]Value{"owner": Int(1), "pet": Str("ada")}),
		Obj(map[string]Value{"owner": Int(2), "pet": Str("tom")}),
	}
	byID := func(v Value) Value { return v.Data.(map[string]Value)["id"] }
	byOwner := func(v Value) Value { return v.Data.(map[string]Value)["owner"] }
	result := func(o, i Value) Value {
		return Str(ToText(o.Data.(map[string]Value)["name"]) + ":" + ToText(i.Data.(map[string]Value)["pet"]))
	}

	s := From(outer).Join(inner, byID, byOwner, result)
	wantStrs(t, s, "ann:rex", "ann:ada", "bob:tom")
}

func Test_GroupJoin_EmptyGroupsIncluded(t *testing.T) {
	outer := []int{1, 2, 3}
	inner := []int{10, 12, 21}
	tens := func(v Value) Value { return Int(ToInteger(v) / 10) }
	result := func(o Value, g *Grouping) Value {
		return Int(ToInteger(o)*100 + int64(g.Len()))
	}
	s := From(outer).GroupJoin(inner, nil, tens, result)
	wantInts(t, s, 102, 201, 300)
}
