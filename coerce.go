// coerce.go
//
// Defensive coercion and the pluggable comparison strategies. The coercion
// helpers never fail: a value that cannot be read as a number comes back as
// NaN and a value that cannot be read as text comes back as its debug form
// or the empty string. Operators rely on this so that mixed-kind sequences
// flow through numeric maps instead of aborting iteration.
//
// Equality is strategy-based. DefaultEquality is exact structural equality
// per tag; LooseEquality is the coercing cross-kind variant (the `==`
// analogue) and StrictEquality the identity variant (`===`). All three are
// plain funcs so callers can pass their own.

package enumerable

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Predicate decides whether an element passes a filter.
type Predicate func(v Value) bool

// Selector maps an element to another value (projection, key extraction).
type Selector func(v Value) Value

// Comparer is a three-way comparison: negative when a<b, zero on ties,
// positive when a>b.
type Comparer func(a, b Value) int

// Equality decides whether two elements are considered the same.
type Equality func(a, b Value) bool

// Accumulator folds an element into a running accumulator.
type Accumulator func(acc, v Value, index int) Value

// ToNumber coerces v to a float64. Bools map to 0/1, numeric strings parse,
// everything else (including malformed strings) becomes NaN. It never fails.
func ToNumber(v Value) float64 {
	switch v.Tag {
	case VTInt:
		return float64(v.Data.(int64))
	case VTNum:
		return v.Data.(float64)
	case VTBool:
		if v.Data.(bool) {
			return 1
		}
		return 0
	case VTStr:
		s := strings.TrimSpace(v.Data.(string))
		if s == "" {
			return math.NaN()
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return math.NaN()
}

// ToInteger coerces v to an int64, truncating toward zero. Values that do
// not read as a number yield 0.
func ToInteger(v Value) int64 {
	if v.Tag == VTInt {
		return v.Data.(int64)
	}
	f := ToNumber(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(f)
}

// ToText coerces v to a string. Strings pass through unquoted, scalars
// render in their decimal form, composites render as JSON. It never fails;
// unrepresentable values come back as their debug form.
func ToText(v Value) string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTStr:
		return v.Data.(string)
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTArray, VTObject:
		if b, err := json.Marshal(v.ToGo()); err == nil {
			return string(b)
		}
		return ""
	default:
		return v.String()
	}
}

// isNumeric reports whether v carries an int or float payload.
func isNumeric(v Value) bool {
	return v.Tag == VTInt || v.Tag == VTNum
}

// DefaultEquality is exact structural equality: tags must match and
// payloads must be structurally equal (arrays element-wise, objects
// key-wise). This is the default everywhere a comparer argument is omitted.
func DefaultEquality(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNull:
		return true
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTInt:
		return a.Data.(int64) == b.Data.(int64)
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTSentinel:
		return a.Data == b.Data
	case VTArray:
		xs, ys := a.Data.([]Value), b.Data.([]Value)
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !DefaultEquality(xs[i], ys[i]) {
				return false
			}
		}
		return true
	case VTObject:
		xm, ym := a.Data.(map[string]Value), b.Data.(map[string]Value)
		if len(xm) != len(ym) {
			return false
		}
		for k, xv := range xm {
			yv, ok := ym[k]
			if !ok || !DefaultEquality(xv, yv) {
				return false
			}
		}
		return true
	default:
		// Sequences, groupings and handles compare by identity.
		return sameIdentity(a.Data, b.Data)
	}
}

// StrictEquality matches tags exactly and compares scalar payloads by value
// and composite payloads by identity (the `===` analogue).
func StrictEquality(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTArray, VTObject:
		return sameIdentity(a.Data, b.Data)
	default:
		return DefaultEquality(a, b)
	}
}

// LooseEquality coerces across kinds before comparing (the `==` analogue):
// 1 equals "1" equals true, null only equals null. Composites fall back to
// structural equality. Opt-in; never a default.
func LooseEquality(a, b Value) bool {
	if a.Tag == b.Tag {
		return DefaultEquality(a, b)
	}
	if a.Tag == VTNull || b.Tag == VTNull {
		return false
	}
	an, bn := ToNumber(a), ToNumber(b)
	if !math.IsNaN(an) && !math.IsNaN(bn) {
		return an == bn
	}
	return ToText(a) == ToText(b)
}

// sameIdentity reports whether two composite payloads share the same
// backing storage.
func sameIdentity(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() != rb.Kind() {
		return false
	}
	switch ra.Kind() {
	case reflect.Slice:
		return ra.Len() == rb.Len() && (ra.Len() == 0 || ra.Index(0).Addr().UnsafePointer() == rb.Index(0).Addr().UnsafePointer())
	case reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan:
		return ra.UnsafePointer() == rb.UnsafePointer()
	default:
		return a == b
	}
}

// DefaultComparer is the natural three-way comparison: numbers by value
// (ints and floats compare cross-kind), strings lexicographically, bools
// false<true, null below everything. Mixed kinds compare by coerced number
// when both sides read as numbers, otherwise by coerced text.
func DefaultComparer(a, b Value) int {
	if a.Tag == VTNull || b.Tag == VTNull {
		switch {
		case a.Tag == b.Tag:
			return 0
		case a.Tag == VTNull:
			return -1
		default:
			return 1
		}
	}
	if isNumeric(a) && isNumeric(b) {
		return compareFloats(ToNumber(a), ToNumber(b))
	}
	if a.Tag == VTStr && b.Tag == VTStr {
		return strings.Compare(a.Data.(string), b.Data.(string))
	}
	if a.Tag == VTBool && b.Tag == VTBool {
		av, bv := a.Data.(bool), b.Data.(bool)
		switch {
		case av == bv:
			return 0
		case bv:
			return -1
		default:
			return 1
		}
	}
	an, bn := ToNumber(a), ToNumber(b)
	if !math.IsNaN(an) && !math.IsNaN(bn) {
		return compareFloats(an, bn)
	}
	return strings.Compare(ToText(a), ToText(b))
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// --- argument normalizers -----------------------------------------------
//
// Operators take optional predicates/comparers; these turn a missing or
// partial argument into a total function so the operator body never has to
// branch on nil.

func predicateOf(p Predicate) Predicate {
	if p == nil {
		return func(Value) bool { return true }
	}
	return p
}

func selectorOf(sel Selector) Selector {
	if sel == nil {
		return func(v Value) Value { return v }
	}
	return sel
}

func comparerOf(cmp []Comparer) Comparer {
	if len(cmp) > 0 && cmp[0] != nil {
		return cmp[0]
	}
	return DefaultComparer
}

func equalityOf(eq []Equality) Equality {
	if len(eq) > 0 && eq[0] != nil {
		return eq[0]
	}
	return DefaultEquality
}

// descending swaps the argument order of cmp.
func descending(cmp Comparer) Comparer {
	return func(a, b Value) int { return cmp(b, a) }
}

// looseAdd is the additive fold used by Sum and seedless Aggregate: ints
// stay ints, any float promotes, and a non-numeric operand switches to text
// concatenation.
func looseAdd(a, b Value) Value {
	if a.Tag == VTInt && b.Tag == VTInt {
		return Int(a.Data.(int64) + b.Data.(int64))
	}
	if isNumeric(a) && isNumeric(b) {
		return Num(ToNumber(a) + ToNumber(b))
	}
	return Str(ToText(a) + ToText(b))
}
