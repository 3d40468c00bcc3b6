package value

import "strconv"

// Int returns an integer number value.
func Int(n int) Value {
	return Value{kind: KindNumber, text: strconv.Itoa(n), isInt: true}
}

// Number returns a number value from its literal form, e.g. "42" or "1.5e3".
// The literal is kept verbatim so rendering reproduces the source text.
func Number(literal string) Value {
	_, err := strconv.ParseInt(literal, 0, 64)
	return Value{kind: KindNumber, text: literal, isInt: err == nil}
}

// Interface converts v into plain Go values: map[string]any, []any, string,
// bool, int, float64, or nil. Key order is lost.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.text
	case KindNumber:
		if v.isInt {
			if n, err := strconv.ParseInt(v.text, 0, 64); err == nil {
				return int(n)
			}
		}
		f, err := strconv.ParseFloat(v.text, 64)
		if err != nil {
			return v.text
		}
		return f
	case KindSequence:
		out := make([]any, 0, len(v.seq))
		for _, item := range v.seq {
			out = append(out, item.Interface())
		}
		return out
	case KindMapping:
		out := make(map[string]any, v.m.Len())
		for _, e := range v.m.entries {
			out[e.Key] = e.Value.Interface()
		}
		return out
	default:
		return nil
	}
}
