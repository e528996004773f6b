// transform.go
//
// Element-wise transformation operators. All of them defer: constructing
// the operator pulls nothing, and each pull of the result pulls upstream on
// demand.

package enumerable

import "encoding/json"

// Select projects each element through sel.
func (s *Sequence) Select(sel Selector) *Sequence {
	sel = selectorOf(sel)
	return derive(func() (Value, bool, error) {
		v, ok := s.Next()
		if !ok {
			return Null, false, s.err
		}
		return sel(v), true, nil
	})
}

// SelectWithIndex projects each element together with its zero-based
// position.
func (s *Sequence) SelectWithIndex(sel func(v Value, index int) Value) *Sequence {
	return derive(func() (Value, bool, error) {
		v, ok := s.Next()
		if !ok {
			return Null, false, s.err
		}
		return sel(v, s.index), true, nil
	})
}

// SelectMany projects each element to a collection (an array, a nested
// sequence, or any From-able value) and flattens the results one level.
func (s *Sequence) SelectMany(sel Selector) *Sequence {
	sel = selectorOf(sel)
	var inner *Sequence
	return derive(func() (Value, bool, error) {
		for {
			if inner != nil {
				v, ok := inner.Next()
				if ok {
					return v, true, nil
				}
				if inner.err != nil {
					return Null, false, inner.err
				}
				inner = nil
			}
			v, ok := s.Next()
			if !ok {
				return Null, false, s.err
			}
			inner = expand(sel(v))
		}
	})
}

// isCollection reports whether v spreads when flattened.
func isCollection(v Value) bool {
	return v.Tag == VTArray || v.Tag == VTSeq || v.Tag == VTGroup
}

// expand turns a projected value into a sequence of its elements. Arrays
// and nested sequences spread; anything else is a one-element sequence.
func expand(v Value) *Sequence {
	switch v.Tag {
	case VTArray:
		return From(v.Data.([]Value))
	case VTSeq:
		return v.Data.(*Sequence)
	case VTGroup:
		return v.Data.(*Grouping).Values()
	default:
		return fromSnapshot([]Value{v})
	}
}

// Pipe invokes action for each element as it flows past, yielding the
// element unchanged. The action runs lazily, at pull time.
func (s *Sequence) Pipe(action func(v Value, index int)) *Sequence {
	return derive(func() (Value, bool, error) {
		v, ok := s.Next()
		if !ok {
			return Null, false, s.err
		}
		if action != nil {
			action(v, s.index)
		}
		return v, true, nil
	})
}

// Flatten spreads array and nested-sequence elements into the output. With
// deep=true it recurses into nested collections; otherwise it flattens one
// level.
func (s *Sequence) Flatten(deep ...bool) *Sequence {
	recurse := len(deep) > 0 && deep[0]
	stack := []*Sequence{s}
	return derive(func() (Value, bool, error) {
		for {
			if len(stack) == 0 {
				return Null, false, nil
			}
			top := stack[len(stack)-1]
			v, ok := top.Next()
			if !ok {
				if top.err != nil {
					return Null, false, top.err
				}
				stack = stack[:len(stack)-1]
				continue
			}
			if isCollection(v) && (len(stack) == 1 || recurse) {
				stack = append(stack, expand(v))
				continue
			}
			return v, true, nil
		}
	})
}

// Cast converts each element to the named target kind. Recognized targets:
// "bool"/"boolean", "int"/"integer", "float"/"number", "string"/"str",
// "null", and "object" (JSON-parse of the element's text form). An
// unrecognized target surfaces an UnsupportedOperationError on the first
// pull; a recognized target that cannot represent an element surfaces a
// CastError at that element.
func (s *Sequence) Cast(typeName string) *Sequence {
	return derive(func() (Value, bool, error) {
		v, ok := s.Next()
		if !ok {
			return Null, false, s.err
		}
		out, err := castValue(v, typeName)
		if err != nil {
			return Null, false, err
		}
		return out, true, nil
	})
}

func castValue(v Value, typeName string) (Value, error) {
	switch typeName {
	case "bool", "boolean":
		return Bool(truthy(v)), nil
	case "int", "integer":
		return Int(ToInteger(v)), nil
	case "float", "number":
		return Num(ToNumber(v)), nil
	case "string", "str":
		return Str(ToText(v)), nil
	case "null":
		return Null, nil
	case "object":
		var parsed any
		if err := json.Unmarshal([]byte(ToText(v)), &parsed); err != nil {
			return Null, &CastError{Type: typeName, Value: v, Cause: err}
		}
		return FromGo(parsed), nil
	default:
		return Null, &UnsupportedOperationError{Op: "cast", Reason: "unsupported type " + typeName}
	}
}

// truthy is the boolean coercion used by Cast: null, false, zero, NaN and
// the empty string are false, everything else true.
func truthy(v Value) bool {
	switch v.Tag {
	case VTNull:
		return false
	case VTBool:
		return v.Data.(bool)
	case VTInt:
		return v.Data.(int64) != 0
	case VTNum:
		f := v.Data.(float64)
		return f != 0 && f == f
	case VTStr:
		return v.Data.(string) != ""
	case VTSentinel:
		return false
	default:
		return true
	}
}
