// sequence.go
//
// The pull protocol. A Sequence is a single-pass cursor: Next either yields
// the next element or signals completion, and completion is idempotent.
// Every operator wraps its upstream in a new Sequence; nothing is pulled
// until a consumer (a terminal operation or an external loop) asks.
//
// Errors travel through the cursor, not through panics: an operator that
// fails mid-stream marks the sequence done and parks the failure where
// Err() and the terminal operations can see it. Construction never fails.

package enumerable

// Enumerator is the capability contract every sequence source satisfies.
// Anything implementing it can feed From, so foreign iterators interoperate
// with the operator chain without adapters at every call site.
type Enumerator interface {
	// Next yields the next element, or (Null, false) once exhausted.
	Next() (Value, bool)
	// Err reports the failure that ended iteration early, if any.
	Err() error
}

// source is the internal producer behind a Sequence. next returns the next
// element, a continuation flag, and an error; an error implies done.
type source interface {
	next() (Value, bool, error)
}

// resetter is implemented by sources that can return to their initial
// state. Array- and snapshot-backed sources can; func-backed ones cannot.
type resetter interface {
	reset()
}

// Sequence is a lazily-evaluated pull cursor over Values.
//
// A Sequence is single-consumer: pulling the same instance from two call
// sites interleaves arbitrarily and is not supported. Callers that need
// repeatable iteration should materialize (ToSlice) or Clone.
type Sequence struct {
	src     source
	index   int // -1 before the first pull
	current Value
	started bool
	done    bool
	err     error
}

func newSequence(src source) *Sequence {
	return &Sequence{src: src, index: -1}
}

// Next pulls the next element. After exhaustion or failure it keeps
// returning (Null, false).
func (s *Sequence) Next() (Value, bool) {
	if s.done {
		return Null, false
	}
	v, ok, err := s.src.next()
	if err != nil {
		s.err = err
		s.done = true
		s.current = Null
		return Null, false
	}
	if !ok {
		s.done = true
		s.current = Null
		return Null, false
	}
	s.started = true
	s.index++
	s.current = v
	return v, true
}

// Err reports the failure that terminated iteration, if any.
func (s *Sequence) Err() error { return s.err }

// Index is the zero-based position of the current element, or -1 before
// the first successful pull.
func (s *Sequence) Index() int { return s.index }

// Current returns the most recently yielded element. The flag is false
// before the first pull and after exhaustion.
func (s *Sequence) Current() (Value, bool) {
	if !s.started || s.done {
		return Null, false
	}
	return s.current, true
}

// CanReset reports whether Reset will succeed.
func (s *Sequence) CanReset() bool {
	_, ok := s.src.(resetter)
	return ok
}

// Reset returns a resettable sequence to its initial state (index -1, no
// current element). Non-resettable sequences fail with an
// UnsupportedOperationError.
func (s *Sequence) Reset() error {
	r, ok := s.src.(resetter)
	if !ok {
		return &UnsupportedOperationError{Op: "reset", Reason: "sequence is not resettable"}
	}
	r.reset()
	s.index = -1
	s.current = Null
	s.started = false
	s.done = false
	s.err = nil
	return nil
}

// each pulls every remaining element, stopping on the first error from fn
// or from the upstream.
func (s *Sequence) each(fn func(v Value, index int) error) error {
	for {
		v, ok := s.Next()
		if !ok {
			return s.err
		}
		if err := fn(v, s.index); err != nil {
			return err
		}
	}
}

// materialize drains the remaining elements into a slice.
func (s *Sequence) materialize() ([]Value, error) {
	var out []Value
	err := s.each(func(v Value, _ int) error {
		out = append(out, v)
		return nil
	})
	return out, err
}

// --- concrete sources -----------------------------------------------------

// funcSource adapts a pull closure. Not resettable.
type funcSource struct {
	fn func() (Value, bool, error)
}

func (f *funcSource) next() (Value, bool, error) { return f.fn() }

// derive is the standard way operators wrap their upstream: a new lazy,
// non-resettable sequence driven by fn.
func derive(fn func() (Value, bool, error)) *Sequence {
	return newSequence(&funcSource{fn: fn})
}

// arraySource yields a snapshot slice. Resettable.
type arraySource struct {
	items []Value
	pos   int
}

func (a *arraySource) next() (Value, bool, error) {
	if a.pos >= len(a.items) {
		return Null, false, nil
	}
	v := a.items[a.pos]
	a.pos++
	return v, true, nil
}

func (a *arraySource) reset() { a.pos = 0 }

// fromSnapshot builds a resettable sequence over items. The slice is owned
// by the sequence after the call.
func fromSnapshot(items []Value) *Sequence {
	return newSequence(&arraySource{items: items})
}

// enumeratorSource adapts any foreign Enumerator.
type enumeratorSource struct {
	e Enumerator
}

func (es *enumeratorSource) next() (Value, bool, error) {
	v, ok := es.e.Next()
	if !ok {
		return Null, false, es.e.Err()
	}
	return v, true, nil
}
