package value

import (
	"fmt"

	"github.com/segmentio/encoding/json"
)

// MarshalJSON renders the JSON-compatible representation that the HTTP/CLI
// collaborators are responsible for producing; this package only owns the
// Value model, not a wire format, but implementing the standard marshaler
// interfaces lets any JSON encoder (including segmentio/encoding/json,
// which is a drop-in for encoding/json) serialize a Value without reaching
// into its unexported fields.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindText:
		return json.Marshal(v.s)
	case KindList:
		return json.Marshal(v.l)
	case KindDict:
		m := make(map[string]Value, v.d.Len())
		for _, k := range v.d.Keys() {
			m[k], _ = v.d.Get(k)
		}
		return json.Marshal(m)
	default:
		return nil, fmt.Errorf("value: invalid kind %d", v.kind)
	}
}

// UnmarshalJSON reconstructs a Value from its JSON-compatible form. A JSON
// number whose value is integral decodes as Int (so "123" is an Int, not a
// Float, and so are "123.0" and "1e3"); any other number decodes as Float.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = fromJSONAny(raw)
	return nil
}

func fromJSONAny(raw interface{}) Value {
	switch t := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case string:
		return Text(t)
	case float64:
		if float64(int64(t)) == t {
			return Int(int64(t))
		}
		return Float(t)
	case []interface{}:
		out := make([]Value, len(t))
		for i, e := range t {
			out[i] = fromJSONAny(e)
		}
		return List(out)
	case map[string]interface{}:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = fromJSONAny(e)
		}
		return DictVal(m)
	default:
		return Null()
	}
}
