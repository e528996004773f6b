// filter.go
//
// Element-dropping operators. Where pulls upstream repeatedly, discarding
// non-matching elements, until a match or exhaustion. The set-style
// operators (Distinct, Except, Intersect, Union) deliberately use a linear
// scan over a seen-buffer instead of hashing: equality is a pluggable
// strategy, and arbitrary strategies cannot be hashed.

package enumerable

// Where yields only the elements for which pred returns true. A nil
// predicate passes everything.
func (s *Sequence) Where(pred Predicate) *Sequence {
	pred = predicateOf(pred)
	return derive(func() (Value, bool, error) {
		for {
			v, ok := s.Next()
			if !ok {
				return Null, false, s.err
			}
			if pred(v) {
				return v, true, nil
			}
		}
	})
}

// WhereWithIndex is Where with the element's zero-based position supplied
// to the predicate.
func (s *Sequence) WhereWithIndex(pred func(v Value, index int) bool) *Sequence {
	return derive(func() (Value, bool, error) {
		for {
			v, ok := s.Next()
			if !ok {
				return Null, false, s.err
			}
			if pred(v, s.index) {
				return v, true, nil
			}
		}
	})
}

// Distinct yields each element once, in first-occurrence order. Equality
// defaults to DefaultEquality; pass LooseEquality or StrictEquality (or any
// custom strategy) to change it.
func (s *Sequence) Distinct(eq ...Equality) *Sequence {
	return s.DistinctBy(nil, eq...)
}

// DistinctBy is Distinct keyed by sel. The seen-buffer of keys grows as the
// sequence is pulled; each new element is compared against every seen key.
func (s *Sequence) DistinctBy(sel Selector, eq ...Equality) *Sequence {
	sel = selectorOf(sel)
	equal := equalityOf(eq)
	var seen []Value
	return derive(func() (Value, bool, error) {
		for {
			v, ok := s.Next()
			if !ok {
				return Null, false, s.err
			}
			k := sel(v)
			if containsValue(seen, k, equal) {
				continue
			}
			seen = append(seen, k)
			return v, true, nil
		}
	})
}

// Except yields the elements of s that do not appear in other. The other
// sequence is materialized (deduplicated) on the first pull, then s is
// filtered lazily against it.
func (s *Sequence) Except(other any, eq ...Equality) *Sequence {
	equal := equalityOf(eq)
	var banned []Value
	loaded := false
	return derive(func() (Value, bool, error) {
		if !loaded {
			items, err := From(other).materialize()
			if err != nil {
				return Null, false, err
			}
			for _, v := range items {
				if !containsValue(banned, v, equal) {
					banned = append(banned, v)
				}
			}
			loaded = true
		}
		for {
			v, ok := s.Next()
			if !ok {
				return Null, false, s.err
			}
			if !containsValue(banned, v, equal) {
				return v, true, nil
			}
		}
	})
}

// Intersect yields the distinct elements of s that also appear in other.
// The other sequence is materialized on the first pull; each match is
// consumed from the buffer, so the result contains no duplicates.
func (s *Sequence) Intersect(other any, eq ...Equality) *Sequence {
	equal := equalityOf(eq)
	var remaining []Value
	loaded := false
	return derive(func() (Value, bool, error) {
		if !loaded {
			items, err := From(other).materialize()
			if err != nil {
				return Null, false, err
			}
			for _, v := range items {
				if !containsValue(remaining, v, equal) {
					remaining = append(remaining, v)
				}
			}
			loaded = true
		}
		for {
			v, ok := s.Next()
			if !ok {
				return Null, false, s.err
			}
			for i, r := range remaining {
				if equal(v, r) {
					remaining = append(remaining[:i], remaining[i+1:]...)
					return v, true, nil
				}
			}
		}
	})
}

// Union yields the distinct elements of s followed by the distinct unseen
// elements of other.
func (s *Sequence) Union(other any, eq ...Equality) *Sequence {
	return s.Concat(other).Distinct(eq...)
}

// Skip discards the first n elements.
func (s *Sequence) Skip(n int) *Sequence {
	skipped := 0
	return derive(func() (Value, bool, error) {
		for {
			v, ok := s.Next()
			if !ok {
				return Null, false, s.err
			}
			if skipped < n {
				skipped++
				continue
			}
			return v, true, nil
		}
	})
}

// SkipWhile discards elements while pred holds, then yields everything
// remaining (the predicate is not consulted again).
func (s *Sequence) SkipWhile(pred Predicate) *Sequence {
	pred = predicateOf(pred)
	skipping := true
	return derive(func() (Value, bool, error) {
		for {
			v, ok := s.Next()
			if !ok {
				return Null, false, s.err
			}
			if skipping && pred(v) {
				continue
			}
			skipping = false
			return v, true, nil
		}
	})
}

// SkipLast yields everything except the final n elements, delaying output
// through an n-slot ring so the source is still consumed in one pass.
func (s *Sequence) SkipLast(n int) *Sequence {
	if n <= 0 {
		return s.Skip(0)
	}
	ring := make([]Value, 0, n)
	pos := 0
	return derive(func() (Value, bool, error) {
		for {
			v, ok := s.Next()
			if !ok {
				return Null, false, s.err
			}
			if len(ring) < n {
				ring = append(ring, v)
				continue
			}
			out := ring[pos]
			ring[pos] = v
			pos = (pos + 1) % n
			return out, true, nil
		}
	})
}

// Take yields at most the first n elements, then stops pulling upstream.
func (s *Sequence) Take(n int) *Sequence {
	taken := 0
	return derive(func() (Value, bool, error) {
		if taken >= n {
			return Null, false, nil
		}
		v, ok := s.Next()
		if !ok {
			return Null, false, s.err
		}
		taken++
		return v, true, nil
	})
}

// TakeWhile yields elements while pred holds and stops at the first
// element that fails it (that element is consumed but not yielded).
func (s *Sequence) TakeWhile(pred Predicate) *Sequence {
	pred = predicateOf(pred)
	stopped := false
	return derive(func() (Value, bool, error) {
		if stopped {
			return Null, false, nil
		}
		v, ok := s.Next()
		if !ok {
			return Null, false, s.err
		}
		if !pred(v) {
			stopped = true
			return Null, false, nil
		}
		return v, true, nil
	})
}

// containsValue is the linear membership scan shared by the set operators.
func containsValue(buf []Value, v Value, equal Equality) bool {
	for _, b := range buf {
		if equal(b, v) {
			return true
		}
	}
	return false
}
