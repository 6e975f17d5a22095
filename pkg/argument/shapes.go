package argument

import "github.com/toyz/argon/pkg/annotation"

// Slice returns a []E argument named name.
func Slice(name string, elem Argument) Argument {
	return Of(SliceType, name, Rename(elem, ElemVar))
}

// Map returns a map[K]V argument named name.
func Map(name string, key, value Argument) Argument {
	return Of(MapType, name, Rename(key, KeyVar), Rename(value, ValueVar))
}

// Pointer returns a *T argument named name.
func Pointer(name string, elem Argument) Argument {
	return Of(PointerType, name, Rename(elem, PointVar))
}

// Chan returns a chan T argument named name.
func Chan(name string, elem Argument) Argument {
	return Of(ChanType, name, Rename(elem, PointVar))
}

// Rename returns a default Argument equal in shape to a, with the same
// qualifier and metadata, under a new name.
func Rename(a Argument, name string) Argument {
	if a == nil {
		panic(&ContractError{Field: "type parameter", Message: "cannot rename a nil argument to " + name})
	}
	var facts []annotation.Annotation
	for _, el := range a.AnnotatedElements() {
		facts = append(facts, el.DeclaredAnnotations()...)
	}
	return New(a.Type(), name, a.Qualifier(), facts, a.TypeVariables().Values()...)
}
