// combine.go
//
// Operators that merge, split or interleave sequences. Multi-input
// operators accept any From-able shape for their extra inputs.

package enumerable

// Concat yields the elements of s followed by the elements of each other
// input in order.
func (s *Sequence) Concat(others ...any) *Sequence {
	rest := make([]*Sequence, len(others))
	for i, o := range others {
		rest[i] = From(o)
	}
	cur := s
	idx := 0
	return derive(func() (Value, bool, error) {
		for {
			v, ok := cur.Next()
			if ok {
				return v, true, nil
			}
			if cur.err != nil {
				return Null, false, cur.err
			}
			if idx >= len(rest) {
				return Null, false, nil
			}
			cur = rest[idx]
			idx++
		}
	})
}

// Prepend yields the elements of the other inputs (in order) before the
// elements of s.
func (s *Sequence) Prepend(others ...any) *Sequence {
	if len(others) == 0 {
		return s.Concat()
	}
	first := From(others[0])
	tail := make([]any, 0, len(others))
	tail = append(tail, others[1:]...)
	tail = append(tail, s)
	return first.Concat(tail...)
}

// Intersperse yields sep between every two consecutive elements.
func (s *Sequence) Intersperse(sep Value) *Sequence {
	started := false
	var pending Value
	havePending := false
	return derive(func() (Value, bool, error) {
		if havePending {
			havePending = false
			return pending, true, nil
		}
		v, ok := s.Next()
		if !ok {
			return Null, false, s.err
		}
		if !started {
			started = true
			return v, true, nil
		}
		pending = v
		havePending = true
		return sep, true, nil
	})
}

// Chunk splits the sequence into consecutive resettable sub-sequences of up
// to size elements each, yielded as VTSeq values. A size below 1 is treated
// as 1.
func (s *Sequence) Chunk(size int) *Sequence {
	if size < 1 {
		size = 1
	}
	return derive(func() (Value, bool, error) {
		items := make([]Value, 0, size)
		for len(items) < size {
			v, ok := s.Next()
			if !ok {
				if s.err != nil {
					return Null, false, s.err
				}
				break
			}
			items = append(items, v)
		}
		if len(items) == 0 {
			return Null, false, nil
		}
		return Seq(fromSnapshot(items)), true, nil
	})
}

// Clone returns count independent sequences over the same elements. The
// source is materialized once, on the first pull of whichever clone is
// consumed first; every clone is resettable.
func (s *Sequence) Clone(count int) []*Sequence {
	if count < 0 {
		count = 0
	}
	shared := &sharedSnapshot{src: s}
	out := make([]*Sequence, count)
	for i := range out {
		out[i] = newSequence(&snapshotSource{shared: shared})
	}
	return out
}

// sharedSnapshot materializes the upstream exactly once for all clones.
type sharedSnapshot struct {
	src    *Sequence
	items  []Value
	err    error
	loaded bool
}

func (sh *sharedSnapshot) load() ([]Value, error) {
	if !sh.loaded {
		sh.items, sh.err = sh.src.materialize()
		sh.loaded = true
	}
	return sh.items, sh.err
}

type snapshotSource struct {
	shared *sharedSnapshot
	pos    int
}

func (ss *snapshotSource) next() (Value, bool, error) {
	items, err := ss.shared.load()
	if err != nil {
		return Null, false, err
	}
	if ss.pos >= len(items) {
		return Null, false, nil
	}
	v := items[ss.pos]
	ss.pos++
	return v, true, nil
}

func (ss *snapshotSource) reset() { ss.pos = 0 }

// Zip pulls s and other in lock-step, combining each pair through
// combiner (which receives the zero-based pair index), and stops as soon
// as either side is exhausted.
func (s *Sequence) Zip(other any, combiner func(a, b Value, index int) Value) *Sequence {
	o := From(other)
	i := 0
	return derive(func() (Value, bool, error) {
		a, ok := s.Next()
		if !ok {
			return Null, false, s.err
		}
		b, ok := o.Next()
		if !ok {
			return Null, false, o.err
		}
		v := combiner(a, b, i)
		i++
		return v, true, nil
	})
}
