// group.go
//
// Grouping and join operators. All three build an eager key table for one
// or both inputs on the first pull — key membership uses the same linear
// equality scan as the set operators — and then yield results lazily.
// Group order follows first key occurrence.

package enumerable

// Grouping pairs an immutable key with the elements that share it. The key
// is assigned at creation and never changes.
type Grouping struct {
	key   Value
	items []Value
}

// Key returns the group's key.
func (g *Grouping) Key() Value { return g.key }

// Values returns a fresh resettable sequence over the group's elements.
func (g *Grouping) Values() *Sequence {
	items := make([]Value, len(g.items))
	copy(items, g.items)
	return fromSnapshot(items)
}

// Len returns the number of elements in the group.
func (g *Grouping) Len() int { return len(g.items) }

// keyTable accumulates (key, values) buckets in first-occurrence order.
type keyTable struct {
	groups []*Grouping
	equal  Equality
}

func (t *keyTable) add(key, v Value) {
	for _, g := range t.groups {
		if t.equal(g.key, key) {
			g.items = append(g.items, v)
			return
		}
	}
	t.groups = append(t.groups, &Grouping{key: key, items: []Value{v}})
}

func (t *keyTable) find(key Value) *Grouping {
	for _, g := range t.groups {
		if t.equal(g.key, key) {
			return g
		}
	}
	return nil
}

// buildTable drains src into a key table.
func buildTable(src *Sequence, keySel Selector, equal Equality) (*keyTable, error) {
	t := &keyTable{equal: equal}
	err := src.each(func(v Value, _ int) error {
		t.add(keySel(v), v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GroupBy yields one VTGroup value per distinct key, in first-occurrence
// order. The source is materialized into the key table on the first pull.
func (s *Sequence) GroupBy(keySel Selector, keyEq ...Equality) *Sequence {
	keySel = selectorOf(keySel)
	equal := equalityOf(keyEq)
	var table *keyTable
	pos := 0
	return derive(func() (Value, bool, error) {
		if table == nil {
			t, err := buildTable(s, keySel, equal)
			if err != nil {
				return Null, false, err
			}
			table = t
		}
		if pos >= len(table.groups) {
			return Null, false, nil
		}
		g := table.groups[pos]
		pos++
		return groupValue(g), true, nil
	})
}

// Join correlates the elements of s (outer) with inner on matching keys and
// yields result(outer, inner) for every matching pair, outer-major. The
// inner input is materialized into a key table on the first pull.
func (s *Sequence) Join(inner any, outerKey, innerKey Selector, result func(o, i Value) Value, keyEq ...Equality) *Sequence {
	outerKey = selectorOf(outerKey)
	innerKey = selectorOf(innerKey)
	equal := equalityOf(keyEq)
	var table *keyTable
	var cur Value
	var matches []Value
	mi := 0
	return derive(func() (Value, bool, error) {
		if table == nil {
			t, err := buildTable(From(inner), innerKey, equal)
			if err != nil {
				return Null, false, err
			}
			table = t
		}
		for {
			if mi < len(matches) {
				v := result(cur, matches[mi])
				mi++
				return v, true, nil
			}
			o, ok := s.Next()
			if !ok {
				return Null, false, s.err
			}
			cur = o
			matches = nil
			mi = 0
			if g := table.find(outerKey(o)); g != nil {
				matches = g.items
			}
		}
	})
}

// GroupJoin correlates each outer element with the full group of matching
// inner elements (possibly empty) and yields result(outer, group) once per
// outer element.
func (s *Sequence) GroupJoin(inner any, outerKey, innerKey Selector, result func(o Value, group *Grouping) Value, keyEq ...Equality) *Sequence {
	outerKey = selectorOf(outerKey)
	innerKey = selectorOf(innerKey)
	equal := equalityOf(keyEq)
	var table *keyTable
	return derive(func() (Value, bool, error) {
		if table == nil {
			t, err := buildTable(From(inner), innerKey, equal)
			if err != nil {
				return Null, false, err
			}
			table = t
		}
		o, ok := s.Next()
		if !ok {
			return Null, false, s.err
		}
		k := outerKey(o)
		g := table.find(k)
		if g == nil {
			g = &Grouping{key: k}
		}
		return result(o, g), true, nil
	})
}
