// Package annotation holds the annotation-like facts that can be attached to an
// argument slot, and a small queryable view over them.
package annotation

import (
	"fmt"
	"strings"
)

// Annotation is a fact attached to a slot. Kind identifies what the fact is
// (for example "qualifier" or "named").
type Annotation interface {
	Kind() string
}

// Attr is a single key/value attribute of a Value.
type Attr struct {
	Key   string
	Value string
}

// Value is the default Annotation: a kind plus ordered string attributes.
// It is built ahead of time (usually by generated code) and never mutated.
type Value struct {
	kind  string
	attrs []Attr
}

// Of creates a Value. attrs is read as alternating key/value pairs; a trailing
// key without a value maps to the empty string.
func Of(kind string, attrs ...string) Value {
	v := Value{kind: kind}
	for i := 0; i < len(attrs); i += 2 {
		attr := Attr{Key: attrs[i]}
		if i+1 < len(attrs) {
			attr.Value = attrs[i+1]
		}
		v.attrs = append(v.attrs, attr)
	}
	return v
}

// Kind returns the annotation kind
func (v Value) Kind() string {
	return v.kind
}

// Get returns the attribute stored under key
func (v Value) Get(key string) (string, bool) {
	for _, attr := range v.attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Attrs returns a copy of the attributes in declaration order
func (v Value) Attrs() []Attr {
	if len(v.attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(v.attrs))
	copy(out, v.attrs)
	return out
}

// Equal reports whether both values have the same kind and attributes.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind || len(v.attrs) != len(other.attrs) {
		return false
	}
	for i := range v.attrs {
		if v.attrs[i] != other.attrs[i] {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	if len(v.attrs) == 0 {
		return "@" + v.kind
	}
	parts := make([]string, len(v.attrs))
	for i, attr := range v.attrs {
		parts[i] = fmt.Sprintf("%s=%q", attr.Key, attr.Value)
	}
	return fmt.Sprintf("@%s(%s)", v.kind, strings.Join(parts, ", "))
}
