/*
Package enumerable implements a lazily-evaluated, LINQ-style query chain
over arbitrary in-memory sources.

A Sequence is a pull-based cursor: wrapping a source costs nothing, every
operator (Where, Select, GroupBy, OrderBy, Zip, ...) returns a new Sequence
that defers its work, and nothing executes until a terminal operation
(ToSlice, Aggregate, First, ...) or an external loop pulls elements.

Elements are dynamically tagged Values, so one pipeline can carry mixed
kinds and the cast/coercion operators can convert between them without the
pipeline failing mid-stream: a value that does not read as a number flows
through the numeric operators as NaN.

	evens, err := enumerable.From([]int{1, 2, 3, 4, 5, 6}).
		Where(func(v enumerable.Value) bool { return enumerable.ToInteger(v)%2 == 0 }).
		Select(func(v enumerable.Value) enumerable.Value {
			return enumerable.Int(enumerable.ToInteger(v) * 10)
		}).
		ToSlice()

Sequences are single-pass, single-consumer cursors by default. Callers that
need repeatable iteration use a resettable source (slices, strings,
snapshots) or Clone.
*/
package enumerable
