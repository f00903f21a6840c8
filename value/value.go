// Package value implements the tagged value model consumed and produced by
// the expression evaluator: null, booleans, 64-bit ints and floats, text,
// and the two composite shapes, lists and dicts.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the payload carried by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the variants a cozo expression can produce.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	l    []Value
	d    *Dict
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps a signed 64-bit integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a 64-bit float.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text wraps a UTF-8 string.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// List wraps an ordered, heterogeneous sequence of values.
func List(items []Value) Value { return Value{kind: KindList, l: items} }

// DictVal wraps a dict built from a Go map, canonicalizing key order.
func DictVal(m map[string]Value) Value { return Value{kind: KindDict, d: NewDict(m)} }

// DictFromDict wraps an already-built Dict.
func DictFromDict(d *Dict) Value { return Value{kind: KindDict, d: d} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload and whether v is actually a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the int payload and whether v is actually an Int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float payload and whether v is actually a Float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsText returns the string payload and whether v is actually Text.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// AsList returns the backing slice and whether v is actually a List.
func (v Value) AsList() ([]Value, bool) { return v.l, v.kind == KindList }

// AsDict returns the backing Dict and whether v is actually a Dict.
func (v Value) AsDict() (*Dict, bool) { return v.d, v.kind == KindDict }

// Static deep-copies any backing slice/map so the returned Value does not
// alias v's storage. Every Value produced by this package already owns its
// storage, so this is a defensive copy rather than a borrow-to-owned
// conversion, kept as a named operation per the value model's "static form
// decoupled from any borrowed input" requirement.
func (v Value) Static() Value {
	switch v.kind {
	case KindList:
		out := make([]Value, len(v.l))
		for i, e := range v.l {
			out[i] = e.Static()
		}
		return List(out)
	case KindDict:
		return DictFromDict(v.d.static())
	default:
		return v
	}
}

// Equal is structural equality: both values must have the same kind, so
// Int(3) and Float(3) are not Equal; Null equals only Null, and structured
// values compare element/key-wise. The == operator does not use it: it
// compares through Compare, which promotes Int to Float.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindText:
		return v.s == other.s
	case KindList:
		if len(v.l) != len(other.l) {
			return false
		}
		for i := range v.l {
			if !v.l[i].Equal(other.l[i]) {
				return false
			}
		}
		return true
	case KindDict:
		return v.d.equal(other.d)
	default:
		return false
	}
}

// Compare gives a total order between two values of compatible kind. The
// second return is false when the two values cannot be ordered against
// each other (different, non-numeric kinds), which callers surface as
// OpTypeMismatch.
func (v Value) Compare(other Value) (int, bool) {
	if v.kind == KindInt && other.kind == KindFloat {
		return compareFloat(float64(v.i), other.f), true
	}
	if v.kind == KindFloat && other.kind == KindInt {
		return compareFloat(v.f, float64(other.i)), true
	}
	if v.kind != other.kind {
		return 0, false
	}
	switch v.kind {
	case KindBool:
		return compareBool(v.b, other.b), true
	case KindInt:
		return compareInt(v.i, other.i), true
	case KindFloat:
		return compareFloat(v.f, other.f), true
	case KindText:
		return strings.Compare(v.s, other.s), true
	case KindList:
		return compareLists(v.l, other.l)
	case KindDict:
		return v.d.compare(other.d)
	default:
		return 0, false
	}
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareLists(a, b []Value) (int, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		c, ok := a[i].Compare(b[i])
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}
	return compareInt(int64(len(a)), int64(len(b))), true
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.s)
	case KindList:
		parts := make([]string, len(v.l))
		for i, e := range v.l {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindDict:
		return v.d.String()
	default:
		return fmt.Sprintf("<invalid value kind %d>", v.kind)
	}
}
