// terminal.go
//
// Eager operations that fully or partially consume a sequence. Strict
// lookups fail with NotFoundError (or AmbiguousMatchError for Single); the
// OrDefault variants fall back to a caller-supplied default, or to the
// NotFound sentinel when none was given. The numeric folds report an empty
// input with the IsEmpty sentinel instead of an error, except where a seed
// makes emptiness well-defined.

package enumerable

import (
	"errors"
	"fmt"
)

func defaultOf(def []Value) Value {
	if len(def) > 0 {
		return def[0]
	}
	return NotFound
}

// ToSlice drains the sequence into a []Value.
func (s *Sequence) ToSlice() ([]Value, error) {
	return s.materialize()
}

// ToGoSlice drains the sequence into plain Go values.
func (s *Sequence) ToGoSlice() ([]any, error) {
	var out []any
	err := s.each(func(v Value, _ int) error {
		out = append(out, v.ToGo())
		return nil
	})
	return out, err
}

// Count returns the number of (matching) elements.
func (s *Sequence) Count(pred ...Predicate) (int, error) {
	p := predicateOf(optionalPredicate(pred))
	n := 0
	err := s.each(func(v Value, _ int) error {
		if p(v) {
			n++
		}
		return nil
	})
	return n, err
}

// Any reports whether at least one (matching) element exists. It stops
// pulling at the first match.
func (s *Sequence) Any(pred ...Predicate) (bool, error) {
	p := predicateOf(optionalPredicate(pred))
	for {
		v, ok := s.Next()
		if !ok {
			return false, s.err
		}
		if p(v) {
			return true, nil
		}
	}
}

// All reports whether every element satisfies pred. It stops pulling at the
// first counterexample; an empty sequence is vacuously true.
func (s *Sequence) All(pred Predicate) (bool, error) {
	p := predicateOf(pred)
	for {
		v, ok := s.Next()
		if !ok {
			return true, s.err
		}
		if !p(v) {
			return false, nil
		}
	}
}

// Contains reports whether any element equals v under eq.
func (s *Sequence) Contains(v Value, eq ...Equality) (bool, error) {
	equal := equalityOf(eq)
	return s.Any(func(e Value) bool { return equal(e, v) })
}

// ElementAt returns the element at the zero-based index, pulling only as
// far as needed. Out-of-range indexes fail with NotFoundError.
func (s *Sequence) ElementAt(index int) (Value, error) {
	if index >= 0 {
		for {
			v, ok := s.Next()
			if !ok {
				break
			}
			if s.index == index {
				return v, nil
			}
		}
	}
	if s.err != nil {
		return Null, s.err
	}
	return Null, &NotFoundError{Op: "elementAt"}
}

// ElementAtOrDefault is ElementAt with a fallback instead of a failure.
func (s *Sequence) ElementAtOrDefault(index int, def ...Value) (Value, error) {
	v, err := s.ElementAt(index)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return defaultOf(def), nil
		}
		return Null, err
	}
	return v, nil
}

// First returns the first (matching) element, or NotFoundError.
func (s *Sequence) First(pred ...Predicate) (Value, error) {
	p := predicateOf(optionalPredicate(pred))
	for {
		v, ok := s.Next()
		if !ok {
			if s.err != nil {
				return Null, s.err
			}
			return Null, &NotFoundError{Op: "first"}
		}
		if p(v) {
			return v, nil
		}
	}
}

// FirstOrDefault is First with a fallback: the supplied default, or the
// NotFound sentinel, instead of a failure. A nil predicate matches
// everything.
func (s *Sequence) FirstOrDefault(pred Predicate, def ...Value) (Value, error) {
	v, err := s.First(pred)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return defaultOf(def), nil
		}
		return Null, err
	}
	return v, nil
}

// Last returns the last (matching) element, consuming the sequence fully.
func (s *Sequence) Last(pred ...Predicate) (Value, error) {
	p := predicateOf(optionalPredicate(pred))
	var found Value
	haveMatch := false
	err := s.each(func(v Value, _ int) error {
		if p(v) {
			found = v
			haveMatch = true
		}
		return nil
	})
	if err != nil {
		return Null, err
	}
	if !haveMatch {
		return Null, &NotFoundError{Op: "last"}
	}
	return found, nil
}

// LastOrDefault is Last with a fallback instead of a failure.
func (s *Sequence) LastOrDefault(pred Predicate, def ...Value) (Value, error) {
	v, err := s.Last(pred)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return defaultOf(def), nil
		}
		return Null, err
	}
	return v, nil
}

// Single returns the only (matching) element. No match fails with
// NotFoundError; more than one match fails with AmbiguousMatchError as
// soon as the second match is pulled.
func (s *Sequence) Single(pred ...Predicate) (Value, error) {
	p := predicateOf(optionalPredicate(pred))
	var found Value
	haveMatch := false
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		if !p(v) {
			continue
		}
		if haveMatch {
			return Null, &AmbiguousMatchError{Op: "single"}
		}
		found = v
		haveMatch = true
	}
	if s.err != nil {
		return Null, s.err
	}
	if !haveMatch {
		return Null, &NotFoundError{Op: "single"}
	}
	return found, nil
}

// SingleOrDefault is Single with a fallback for the no-match case only.
// More than one match still fails: the default answers "not found", not
// "ambiguous".
func (s *Sequence) SingleOrDefault(pred Predicate, def ...Value) (Value, error) {
	v, err := s.Single(pred)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return defaultOf(def), nil
		}
		return Null, err
	}
	return v, nil
}

// Aggregate left-folds the sequence: acc starts at seed and each element is
// folded in with fn, which receives the element's zero-based index. A nil
// fn accumulates additively (numeric addition, falling back to text
// concatenation). The final accumulator passes through resultSel (nil for
// identity). With a seed, an empty sequence is well-defined:
// resultSel(seed).
func (s *Sequence) Aggregate(fn Accumulator, seed Value, resultSel Selector) (Value, error) {
	if fn == nil {
		fn = func(acc, v Value, _ int) Value { return looseAdd(acc, v) }
	}
	resultSel = selectorOf(resultSel)
	acc := seed
	err := s.each(func(v Value, i int) error {
		acc = fn(acc, v, i)
		return nil
	})
	if err != nil {
		return Null, err
	}
	return resultSel(acc), nil
}

// Reduce is the seedless fold: the first element becomes the initial
// accumulator. An empty sequence yields the IsEmpty sentinel.
func (s *Sequence) Reduce(fn Accumulator) (Value, error) {
	if fn == nil {
		fn = func(acc, v Value, _ int) Value { return looseAdd(acc, v) }
	}
	acc, ok := s.Next()
	if !ok {
		if s.err != nil {
			return Null, s.err
		}
		return IsEmpty, nil
	}
	err := s.each(func(v Value, i int) error {
		acc = fn(acc, v, i)
		return nil
	})
	if err != nil {
		return Null, err
	}
	return acc, nil
}

// Sum adds all elements in one pass (numeric addition, text concatenation
// for non-numeric operands). Empty yields IsEmpty unless a seed was given.
func (s *Sequence) Sum(seed ...Value) (Value, error) {
	if len(seed) > 0 {
		return s.Aggregate(nil, seed[0], nil)
	}
	return s.Reduce(nil)
}

// Product multiplies all elements in one pass. Non-numeric elements poison
// the product to NaN rather than failing. Empty yields IsEmpty.
func (s *Sequence) Product() (Value, error) {
	return s.Reduce(func(acc, v Value, _ int) Value {
		if acc.Tag == VTInt && v.Tag == VTInt {
			return Int(acc.Data.(int64) * v.Data.(int64))
		}
		return Num(ToNumber(acc) * ToNumber(v))
	})
}

// Average returns the arithmetic mean as a float. Empty yields IsEmpty;
// non-numeric elements contribute NaN.
func (s *Sequence) Average() (Value, error) {
	sum := 0.0
	n := 0
	err := s.each(func(v Value, _ int) error {
		sum += ToNumber(v)
		n++
		return nil
	})
	if err != nil {
		return Null, err
	}
	if n == 0 {
		return IsEmpty, nil
	}
	return Num(sum / float64(n)), nil
}

// Min returns the smallest element under cmp in one pass. Empty yields
// IsEmpty. Ties keep the earliest element.
func (s *Sequence) Min(cmp ...Comparer) (Value, error) {
	c := comparerOf(cmp)
	return s.Reduce(func(acc, v Value, _ int) Value {
		if c(v, acc) < 0 {
			return v
		}
		return acc
	})
}

// Max returns the largest element under cmp in one pass. Empty yields
// IsEmpty. Ties keep the earliest element.
func (s *Sequence) Max(cmp ...Comparer) (Value, error) {
	c := comparerOf(cmp)
	return s.Reduce(func(acc, v Value, _ int) Value {
		if c(v, acc) > 0 {
			return v
		}
		return acc
	})
}

// SequenceEqual pulls both sequences in lock-step: true only if every pair
// satisfies eq and both sides exhaust simultaneously.
func (s *Sequence) SequenceEqual(other any, eq ...Equality) (bool, error) {
	equal := equalityOf(eq)
	o := From(other)
	for {
		a, aok := s.Next()
		b, bok := o.Next()
		if s.err != nil {
			return false, s.err
		}
		if o.err != nil {
			return false, o.err
		}
		if aok != bok {
			return false, nil
		}
		if !aok {
			return true, nil
		}
		if !equal(a, b) {
			return false, nil
		}
	}
}

// ForEach runs action for every element and propagates the first failure
// immediately, aborting the remaining traversal.
func (s *Sequence) ForEach(action func(v Value, index int) error) error {
	return s.each(action)
}

// ForAll runs action for every element, continuing past individual
// failures. Each failure is wrapped as an ActionError tagged with its
// zero-based index and the failing action; after full traversal all
// collected failures surface as one AggregateError.
func (s *Sequence) ForAll(action func(v Value, index int) error) error {
	var failures []*ActionError
	err := s.each(func(v Value, i int) error {
		if aerr := safeAction(action, v, i); aerr != nil {
			failures = append(failures, &ActionError{Index: i, Action: action, Err: aerr})
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(failures) > 0 {
		return &AggregateError{Errors: failures}
	}
	return nil
}

// Assert fails on the first element that does not satisfy pred,
// propagating an ActionError immediately.
func (s *Sequence) Assert(pred Predicate) error {
	p := predicateOf(pred)
	return s.each(func(v Value, i int) error {
		if !p(v) {
			return &ActionError{Index: i, Action: pred, Err: fmt.Errorf("assertion failed for %s", v)}
		}
		return nil
	})
}

// AssertAll checks every element, collecting one ActionError per failing
// element, and surfaces them together as an AggregateError after full
// traversal.
func (s *Sequence) AssertAll(pred Predicate) error {
	p := predicateOf(pred)
	return s.ForAll(func(v Value, _ int) error {
		if !p(v) {
			return fmt.Errorf("assertion failed for %s", v)
		}
		return nil
	})
}

// safeAction invokes action, converting a panic into an error so a single
// misbehaving action cannot abort a ForAll traversal.
func safeAction(action func(Value, int) error, v Value, i int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panic: %v", r)
		}
	}()
	return action(v, i)
}

func optionalPredicate(pred []Predicate) Predicate {
	if len(pred) > 0 {
		return pred[0]
	}
	return nil
}
