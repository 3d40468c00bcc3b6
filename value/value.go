package value

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindAbsent is the zero Kind. It marks a missing key or index.
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

var kindNames = [...]string{
	KindAbsent:   "absent",
	KindNull:     "null",
	KindBool:     "bool",
	KindNumber:   "number",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an immutable node of a generic document tree.
// The zero Value is absent.
type Value struct {
	kind Kind
	b    bool
	// text holds a string value, or the source literal of a number.
	text string
	// isInt reports whether a number literal is an integer.
	isInt bool
	seq   []Value
	m     *Map
}

// Absent returns the absent marker. It is equal to the zero Value.
func Absent() Value { return Value{} }

// Null returns an explicit null.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Seq returns a sequence holding items.
func Seq(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, seq: items}
}

// Strings returns a sequence of string values.
func Strings(ss ...string) Value {
	items := make([]Value, 0, len(ss))
	for _, s := range ss {
		items = append(items, String(s))
	}
	return Value{kind: KindSequence, seq: items}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v marks a missing key or index.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsNull reports whether v is an explicit null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Exists reports whether v is present, including explicit null.
func (v Value) Exists() bool { return v.kind != KindAbsent }

// IsMapping reports whether v is a mapping.
func (v Value) IsMapping() bool { return v.kind == KindMapping }

// IsSequence reports whether v is a sequence.
func (v Value) IsSequence() bool { return v.kind == KindSequence }

// Get returns the value stored under key, or Absent if v is not a mapping or
// has no such key.
func (v Value) Get(key string) Value {
	val, _ := v.Lookup(key)
	return val
}

// Lookup is like Get but also reports whether the key was present.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMapping || v.m == nil {
		return Value{}, false
	}
	return v.m.Get(key)
}

// Path follows keys through nested mappings.
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, k := range keys {
		cur = cur.Get(k)
		if cur.IsAbsent() {
			return cur
		}
	}
	return cur
}

// At returns the i-th item of a sequence, or Absent.
func (v Value) At(i int) Value {
	if v.kind != KindSequence || i < 0 || i >= len(v.seq) {
		return Value{}
	}
	return v.seq[i]
}

// Len returns the number of mapping entries or sequence items, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindMapping:
		return v.m.Len()
	case KindSequence:
		return len(v.seq)
	default:
		return 0
	}
}

// Items returns the items of a sequence, or nil for any other kind.
// The returned slice must not be modified.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.seq
}

// Entries returns the entries of a mapping in document order, or nil for any
// other kind.
func (v Value) Entries() []Entry {
	if v.kind != KindMapping {
		return nil
	}
	return v.m.Entries()
}

// Keys returns the keys of a mapping in document order, or nil.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	return v.m.Keys()
}

// Map returns the underlying mapping, or nil if v is not a mapping.
func (v Value) Map() *Map {
	if v.kind != KindMapping {
		return nil
	}
	return v.m
}

// AsString returns the string held by v. Numbers and booleans are not converted.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// StringOr returns the string held by v, or def for any other kind.
func (v Value) StringOr(def string) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	return def
}

// Scalar returns the textual form of a scalar: the string itself, the number
// literal, "true"/"false", or "null". Collections and Absent yield "".
func (v Value) Scalar() string {
	switch v.kind {
	case KindString, KindNumber:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// Equal reports whether v and o are deeply equal. Mapping entries are compared
// in order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return strings.EqualFold(v.text, o.text)
	case KindString:
		return v.text == o.text
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		return v.m.equal(o.m)
	}
	return false
}
