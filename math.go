// math.go
//
// Numeric element maps. Each operator coerces the element to a number
// first — as an integer when the optional flag is set, as a float
// otherwise — and applies the corresponding math function. Elements that do
// not read as numbers flow through as NaN; numeric operators never fail a
// sequence.

package enumerable

import "math"

// mapNumber is the shared shape of all unary numeric operators.
func (s *Sequence) mapNumber(f func(float64) float64, asInt bool) *Sequence {
	return s.Select(func(v Value) Value {
		n := ToNumber(v)
		if math.IsNaN(n) {
			return Num(n)
		}
		r := f(n)
		if asInt && !math.IsNaN(r) && !math.IsInf(r, 0) {
			return Int(int64(r))
		}
		return Num(r)
	})
}

func intFlag(asInt []bool) bool { return len(asInt) > 0 && asInt[0] }

// Abs maps each element to its absolute value.
func (s *Sequence) Abs(asInt ...bool) *Sequence { return s.mapNumber(math.Abs, intFlag(asInt)) }

// Ceil maps each element to the least integer value >= the element.
func (s *Sequence) Ceil(asInt ...bool) *Sequence { return s.mapNumber(math.Ceil, intFlag(asInt)) }

// Floor maps each element to the greatest integer value <= the element.
func (s *Sequence) Floor(asInt ...bool) *Sequence { return s.mapNumber(math.Floor, intFlag(asInt)) }

// Round maps each element to its nearest integer, halves away from zero.
func (s *Sequence) Round(asInt ...bool) *Sequence { return s.mapNumber(math.Round, intFlag(asInt)) }

// Sqrt maps each element to its square root.
func (s *Sequence) Sqrt(asInt ...bool) *Sequence { return s.mapNumber(math.Sqrt, intFlag(asInt)) }

// Exp maps each element x to e**x.
func (s *Sequence) Exp(asInt ...bool) *Sequence { return s.mapNumber(math.Exp, intFlag(asInt)) }

// Log maps each element to its logarithm: natural by default, or in the
// given base.
func (s *Sequence) Log(base ...float64) *Sequence {
	if len(base) == 0 {
		return s.mapNumber(math.Log, false)
	}
	div := math.Log(base[0])
	return s.mapNumber(func(x float64) float64 { return math.Log(x) / div }, false)
}

// Log2 maps each element to its base-2 logarithm.
func (s *Sequence) Log2(asInt ...bool) *Sequence { return s.mapNumber(math.Log2, intFlag(asInt)) }

// Log10 maps each element to its base-10 logarithm.
func (s *Sequence) Log10(asInt ...bool) *Sequence { return s.mapNumber(math.Log10, intFlag(asInt)) }

// Pow maps each element x to x**exp.
func (s *Sequence) Pow(exp float64, asInt ...bool) *Sequence {
	return s.mapNumber(func(x float64) float64 { return math.Pow(x, exp) }, intFlag(asInt))
}

// Root maps each element x to its n-th root.
func (s *Sequence) Root(n float64, asInt ...bool) *Sequence {
	return s.mapNumber(func(x float64) float64 { return math.Pow(x, 1/n) }, intFlag(asInt))
}

// Trigonometric family; angles are radians.
func (s *Sequence) Sin(asInt ...bool) *Sequence  { return s.mapNumber(math.Sin, intFlag(asInt)) }
func (s *Sequence) Cos(asInt ...bool) *Sequence  { return s.mapNumber(math.Cos, intFlag(asInt)) }
func (s *Sequence) Tan(asInt ...bool) *Sequence  { return s.mapNumber(math.Tan, intFlag(asInt)) }
func (s *Sequence) Asin(asInt ...bool) *Sequence { return s.mapNumber(math.Asin, intFlag(asInt)) }
func (s *Sequence) Acos(asInt ...bool) *Sequence { return s.mapNumber(math.Acos, intFlag(asInt)) }
func (s *Sequence) Atan(asInt ...bool) *Sequence { return s.mapNumber(math.Atan, intFlag(asInt)) }
func (s *Sequence) Sinh(asInt ...bool) *Sequence { return s.mapNumber(math.Sinh, intFlag(asInt)) }
func (s *Sequence) Cosh(asInt ...bool) *Sequence { return s.mapNumber(math.Cosh, intFlag(asInt)) }
func (s *Sequence) Tanh(asInt ...bool) *Sequence { return s.mapNumber(math.Tanh, intFlag(asInt)) }
