// order.go
//
// The ordering subsystem. Sorting requires full materialization, so OrderBy
// is the one deliberately eager operator: it snapshots the source at
// construction time. ThenBy never re-sorts already-sorted output — it
// re-derives a new composite ordering (primary key first, tie-break on the
// next level) over the ORIGINAL snapshot, which keeps the sort stable
// across arbitrarily many levels.

package enumerable

import "sort"

type orderLevel struct {
	key Selector
	cmp Comparer
}

// OrderedSequence is a sorted view over a snapshot of its source. It embeds
// the sorted lazy Sequence, so the full operator chain is available on it,
// and additionally supports ThenBy tie-breaking.
type OrderedSequence struct {
	*Sequence
	snapshot []Value
	snapErr  error
	levels   []orderLevel
}

// OrderBy sorts by keySel using cmp (DefaultComparer when omitted). The
// sort is stable: equal-key elements keep their original relative order.
func (s *Sequence) OrderBy(keySel Selector, cmp ...Comparer) *OrderedSequence {
	items, err := s.materialize()
	return orderedFrom(items, err, []orderLevel{{key: selectorOf(keySel), cmp: comparerOf(cmp)}})
}

// OrderByDescending is OrderBy with the comparer's arguments swapped.
func (s *Sequence) OrderByDescending(keySel Selector, cmp ...Comparer) *OrderedSequence {
	items, err := s.materialize()
	return orderedFrom(items, err, []orderLevel{{key: selectorOf(keySel), cmp: descending(comparerOf(cmp))}})
}

// ThenBy appends a tie-break level: elements whose previous keys all tie
// are ordered by keySel. Earlier orderings are not mutated; a new ordering
// is derived each time.
func (o *OrderedSequence) ThenBy(keySel Selector, cmp ...Comparer) *OrderedSequence {
	return o.thenBy(orderLevel{key: selectorOf(keySel), cmp: comparerOf(cmp)})
}

// ThenByDescending is ThenBy with the comparer's arguments swapped.
func (o *OrderedSequence) ThenByDescending(keySel Selector, cmp ...Comparer) *OrderedSequence {
	return o.thenBy(orderLevel{key: selectorOf(keySel), cmp: descending(comparerOf(cmp))})
}

func (o *OrderedSequence) thenBy(level orderLevel) *OrderedSequence {
	levels := make([]orderLevel, 0, len(o.levels)+1)
	levels = append(levels, o.levels...)
	levels = append(levels, level)
	return orderedFrom(o.snapshot, o.snapErr, levels)
}

// Reverse yields the elements in reverse order. It is a descending order
// over a strictly increasing synthetic counter, so no dedicated reverse
// routine is needed and relative order inverts exactly.
func (s *Sequence) Reverse() *Sequence {
	var counter int64
	return s.OrderByDescending(func(Value) Value {
		counter++
		return Int(counter)
	}).Sequence
}

// orderedFrom decorates the snapshot with each level's computed key, runs
// one stable sort with the composite comparer, and exposes the sorted
// values as a resettable lazy sequence.
func orderedFrom(snapshot []Value, snapErr error, levels []orderLevel) *OrderedSequence {
	o := &OrderedSequence{snapshot: snapshot, snapErr: snapErr, levels: levels}
	if snapErr != nil {
		o.Sequence = derive(func() (Value, bool, error) {
			return Null, false, snapErr
		})
		return o
	}

	type decorated struct {
		keys []Value
		v    Value
	}
	dec := make([]decorated, len(snapshot))
	for i, v := range snapshot {
		keys := make([]Value, len(levels))
		for j, l := range levels {
			keys[j] = l.key(v)
		}
		dec[i] = decorated{keys: keys, v: v}
	}

	sort.SliceStable(dec, func(i, j int) bool {
		for k, l := range levels {
			if c := l.cmp(dec[i].keys[k], dec[j].keys[k]); c != 0 {
				return c < 0
			}
		}
		return false
	})

	sorted := make([]Value, len(dec))
	for i, d := range dec {
		sorted[i] = d.v
	}
	o.Sequence = fromSnapshot(sorted)
	return o
}
