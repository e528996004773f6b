// from.go
//
// Source factories. From accepts every supported source shape and wraps it
// into a Sequence; the dedicated constructors (Range, Repeat, FromValues)
// cover the common generated sources. Slice, array and string sources are
// snapshot-backed and therefore resettable; iterator-backed sources are
// single-pass.

package enumerable

import (
	"iter"
	"reflect"
)

// From wraps src into a Sequence. Supported shapes:
//
//   - nil                      → empty sequence
//   - *Sequence                → returned unchanged
//   - Enumerator               → single-pass adapter
//   - []Value, []any, any Go slice or array (via reflection)
//     → resettable snapshot, elements converted with FromGo
//   - string                   → resettable snapshot of one-rune strings
//   - iter.Seq[Value]          → single-pass pull adapter
//   - func() (Value, bool)     → single-pass generator
//
// Anything else becomes a one-element sequence holding FromGo(src).
func From(src any) *Sequence {
	switch t := src.(type) {
	case nil:
		return Empty()
	case *Sequence:
		return t
	case Enumerator:
		return newSequence(&enumeratorSource{e: t})
	case []Value:
		items := make([]Value, len(t))
		copy(items, t)
		return fromSnapshot(items)
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = FromGo(e)
		}
		return fromSnapshot(items)
	case string:
		items := make([]Value, 0, len(t))
		for _, r := range t {
			items = append(items, Str(string(r)))
		}
		return fromSnapshot(items)
	case iter.Seq[Value]:
		return fromSeq(t)
	case func() (Value, bool):
		return derive(func() (Value, bool, error) {
			v, ok := t()
			return v, ok, nil
		})
	}

	rv := reflect.ValueOf(src)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = FromGo(rv.Index(i).Interface())
		}
		return fromSnapshot(items)
	}
	return fromSnapshot([]Value{FromGo(src)})
}

// FromValues builds a resettable sequence over the given elements.
func FromValues(vs ...Value) *Sequence {
	items := make([]Value, len(vs))
	copy(items, vs)
	return fromSnapshot(items)
}

// Empty returns a sequence with no elements.
func Empty() *Sequence {
	return fromSnapshot(nil)
}

// Range yields count consecutive integers starting at start.
func Range(start, count int64) *Sequence {
	if count < 0 {
		count = 0
	}
	var i int64
	return derive(func() (Value, bool, error) {
		if i >= count {
			return Null, false, nil
		}
		v := Int(start + i)
		i++
		return v, true, nil
	})
}

// Repeat yields v count times. A negative count repeats forever.
func Repeat(v Value, count int64) *Sequence {
	var i int64
	return derive(func() (Value, bool, error) {
		if count >= 0 && i >= count {
			return Null, false, nil
		}
		i++
		return v, true, nil
	})
}

// fromSeq adapts a push-style iter.Seq through iter.Pull.
func fromSeq(seq iter.Seq[Value]) *Sequence {
	next, stop := iter.Pull(seq)
	return derive(func() (Value, bool, error) {
		v, ok := next()
		if !ok {
			stop()
			return Null, false, nil
		}
		return v, true, nil
	})
}

// Values exposes the remaining elements as an iter.Seq, so sequences plug
// into range-over-func loops and the slices/maps helpers. Consuming the
// returned Seq advances this cursor.
func (s *Sequence) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for {
			v, ok := s.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
