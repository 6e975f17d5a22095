package argument

import "strings"

// Format renders the full shape of a in Go syntax, for example
// "map[string][]*repo.User". It is meant for diagnostics only.
func Format(a Argument) string {
	if a == nil {
		return "<nil>"
	}
	var b strings.Builder
	writeShape(&b, a)
	return b.String()
}

func writeShape(b *strings.Builder, a Argument) {
	tv := a.TypeVariables()
	switch a.Type() {
	case SliceType:
		b.WriteString("[]")
		writeVar(b, tv, ElemVar)
	case MapType:
		b.WriteString("map[")
		writeVar(b, tv, KeyVar)
		b.WriteString("]")
		writeVar(b, tv, ValueVar)
	case PointerType:
		b.WriteString("*")
		writeVar(b, tv, PointVar)
	case ChanType:
		b.WriteString("chan ")
		writeVar(b, tv, PointVar)
	default:
		t := a.Type()
		if pkg := t.Package(); pkg != "" {
			b.WriteString(pkg)
			b.WriteString(".")
		}
		b.WriteString(t.Name)
		if tv.IsEmpty() {
			return
		}
		b.WriteString("[")
		for i, v := range tv.Values() {
			if i > 0 {
				b.WriteString(", ")
			}
			writeShape(b, v)
		}
		b.WriteString("]")
	}
}

func writeVar(b *strings.Builder, tv TypeVariables, name string) {
	v, ok := tv.Get(name)
	if !ok {
		b.WriteString("any")
		return
	}
	writeShape(b, v)
}
