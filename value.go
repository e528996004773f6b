// value.go
//
// The universal element carrier for sequences. Every element that flows
// through an operator chain is a tagged Value, which is what lets a single
// pipeline hold mixed kinds (numbers next to strings next to nested
// sequences) and lets cast/coercion operators work uniformly.
//
// The tag determines which Go type Value.Data holds (see ValueTag). Values
// are immutable by convention: operators never modify an element in place,
// they produce new ones.

package enumerable

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// ValueTag enumerates all element kinds a Value may hold.
type ValueTag int

const (
	VTNull     ValueTag = iota // null (no payload)
	VTBool                     // bool
	VTInt                      // int64
	VTNum                      // float64
	VTStr                      // string
	VTArray                    // []Value
	VTObject                   // map[string]Value
	VTSeq                      // *Sequence (nested, e.g. produced by Chunk)
	VTGroup                    // *Grouping (produced by GroupBy)
	VTSentinel                 // distinguished marker (IsEmpty, NotFound)
	VTHandle                   // opaque host payload
)

// Value is the tagged element carrier.
//
// Invariants:
//   - When Tag==VTNull, Data is nil.
//   - When Tag==VTSentinel, Data is the sentinel's name; the only instances
//     are the package-level IsEmpty and NotFound values.
type Value struct {
	Tag  ValueTag
	Data any
}

// Null is the singleton null Value.
var Null = Value{Tag: VTNull}

// IsEmpty is the distinguished result of numeric terminals (Sum, Min, ...)
// over an empty sequence. It is a well-known immutable sentinel, never an
// element produced by a source.
var IsEmpty = Value{Tag: VTSentinel, Data: "IS_EMPTY"}

// NotFound is the distinguished default of the *OrDefault lookups when the
// caller did not supply one.
var NotFound = Value{Tag: VTSentinel, Data: "NOT_FOUND"}

// Primitive constructors.
func Bool(b bool) Value            { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value            { return Value{Tag: VTInt, Data: n} }
func Num(f float64) Value          { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value           { return Value{Tag: VTStr, Data: s} }
func Arr(xs []Value) Value         { return Value{Tag: VTArray, Data: xs} }
func Obj(m map[string]Value) Value { return Value{Tag: VTObject, Data: m} }
func Seq(s *Sequence) Value        { return Value{Tag: VTSeq, Data: s} }

// Handle boxes an arbitrary host payload that has no natural tag.
func Handle(kind string, v any) Value {
	return Value{Tag: VTHandle, Data: &handle{kind: kind, data: v}}
}

func groupValue(g *Grouping) Value { return Value{Tag: VTGroup, Data: g} }

type handle struct {
	kind string
	data any
}

// IsEmptySentinel reports whether v is the IsEmpty marker.
func (v Value) IsEmptySentinel() bool {
	return v.Tag == VTSentinel && v.Data == IsEmpty.Data
}

// IsNotFound reports whether v is the NotFound marker.
func (v Value) IsNotFound() bool {
	return v.Tag == VTSentinel && v.Data == NotFound.Data
}

// AsSequence returns the nested sequence payload of a VTSeq value.
func (v Value) AsSequence() (*Sequence, bool) {
	if v.Tag != VTSeq {
		return nil, false
	}
	return v.Data.(*Sequence), true
}

// AsGrouping returns the grouping payload of a VTGroup value.
func (v Value) AsGrouping() (*Grouping, bool) {
	if v.Tag != VTGroup {
		return nil, false
	}
	return v.Data.(*Grouping), true
}

// String renders a human-friendly debug representation.
func (v Value) String() string {
	switch v.Tag {
	case VTNull:
		return "null"
	case VTBool:
		return fmt.Sprintf("%v", v.Data.(bool))
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTNum:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTStr:
		return fmt.Sprintf("%q", v.Data.(string))
	case VTArray, VTObject:
		if b, err := json.Marshal(v.ToGo()); err == nil {
			return string(b)
		}
		return "<unprintable>"
	case VTSeq:
		return "<sequence>"
	case VTGroup:
		g := v.Data.(*Grouping)
		return fmt.Sprintf("<group key=%s>", g.Key())
	case VTSentinel:
		return fmt.Sprintf("<%s>", v.Data.(string))
	case VTHandle:
		h := v.Data.(*handle)
		return fmt.Sprintf("<handle %s>", h.kind)
	default:
		return "<unknown>"
	}
}

// FromGo converts an arbitrary Go value into a Value. Slices, arrays and
// string-keyed maps convert recursively; integer kinds normalize to int64
// and float kinds to float64; anything without a natural tag becomes an
// opaque handle.
func FromGo(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint:
		return Int(int64(t))
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint64:
		return Int(int64(t))
	case float32:
		return Num(float64(t))
	case float64:
		return Num(t)
	case string:
		return Str(t)
	case []Value:
		return Arr(t)
	case map[string]Value:
		return Obj(t)
	case *Sequence:
		return Seq(t)
	case *Grouping:
		return groupValue(t)
	case []any:
		xs := make([]Value, len(t))
		for i, e := range t {
			xs[i] = FromGo(e)
		}
		return Arr(xs)
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = FromGo(e)
		}
		return Obj(m)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		xs := make([]Value, rv.Len())
		for i := range xs {
			xs[i] = FromGo(rv.Index(i).Interface())
		}
		return Arr(xs)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			m := make(map[string]Value, rv.Len())
			it := rv.MapRange()
			for it.Next() {
				m[it.Key().String()] = FromGo(it.Value().Interface())
			}
			return Obj(m)
		}
	case reflect.Pointer:
		if rv.IsNil() {
			return Null
		}
	}
	return Handle(fmt.Sprintf("%T", x), x)
}

// ToGo converts a Value back to a plain Go representation: null→nil,
// arrays→[]any, objects→map[string]any. Nested sequences and groupings are
// returned as-is (converting them would consume their cursors); handles
// unbox to their payload.
func (v Value) ToGo() any {
	switch v.Tag {
	case VTNull:
		return nil
	case VTBool, VTInt, VTNum, VTStr:
		return v.Data
	case VTArray:
		xs := v.Data.([]Value)
		out := make([]any, len(xs))
		for i, e := range xs {
			out[i] = e.ToGo()
		}
		return out
	case VTObject:
		m := v.Data.(map[string]Value)
		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = e.ToGo()
		}
		return out
	case VTSentinel:
		return v
	case VTHandle:
		return v.Data.(*handle).data
	default:
		return v.Data
	}
}
