// SPDX-License-Identifier: EPL-2.0

package header

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the type of a header field value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindReal
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Value holds exactly one of an integer, a real or a string.
// The zero Value is invalid and is rejected by Info.Set.
type Value struct {
	kind  Kind
	i     int64
	r     float64
	s     string
	width int
}

// Int returns an integer value (-i).
func Int(v int64) Value { return Value{kind: KindInteger, i: v} }

// Real returns a floating point value (-r).
func Real(v float64) Value { return Value{kind: KindReal, r: v} }

// String returns a string value (-sN) whose declared width is len(v).
func String(v string) Value { return Value{kind: KindString, s: v, width: len(v)} }

// ValueOf converts a Go value of one of the supported kinds into a Value.
// Any other type fails with ErrInvalidValue.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		if x.kind == KindInvalid {
			return Value{}, ErrInvalidValue
		}
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d overflows int64", ErrInvalidValue, x)
		}
		return Int(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d overflows int64", ErrInvalidValue, x)
		}
		return Int(int64(x)), nil
	case float32:
		return Real(float64(x)), nil
	case float64:
		return Real(x), nil
	case string:
		return String(x), nil
	default:
		return Value{}, fmt.Errorf("%w (got %T)", ErrInvalidValue, v)
	}
}

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Int returns the integer payload and whether v is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInteger }

// Real returns the real payload and whether v is a real.
func (v Value) Real() (float64, bool) { return v.r, v.kind == KindReal }

// Text returns the string payload and whether v is a string.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindString }

// Width is the declared byte width of a string value as read from a
// header. Encoding always uses the current length instead.
func (v Value) Width() int { return v.width }

// Any returns the payload as int64, float64 or string.
func (v Value) Any() any {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindReal:
		return v.r
	case KindString:
		return v.s
	default:
		return nil
	}
}

// Equal compares kind and payload. The declared string width is ignored.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.i == o.i
	case KindReal:
		return v.r == o.r || (math.IsNaN(v.r) && math.IsNaN(o.r))
	case KindString:
		return v.s == o.s
	default:
		return true
	}
}

// String returns the value as it appears after the type tag.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return formatReal(v.r)
	case KindString:
		return v.s
	default:
		return "<invalid>"
	}
}

// formatReal writes the shortest decimal that round-trips, keeping a
// trailing ".0" on integral values and switching to exponent form
// outside 1e-4 <= |v| < 1e16.
func formatReal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}

	f := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(f, ".") {
		f += ".0"
	}
	return f
}
