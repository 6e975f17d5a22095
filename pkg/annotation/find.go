package annotation

import "reflect"

// Find returns the first annotation of the given kind. Nil entries are skipped.
func Find(annotations []Annotation, kind string) (Annotation, bool) {
	for _, a := range annotations {
		if a != nil && a.Kind() == kind {
			return a, true
		}
	}
	return nil, false
}

// FindAs returns the first annotation whose dynamic type is T.
func FindAs[T Annotation](annotations []Annotation) (T, bool) {
	for _, a := range annotations {
		if typed, ok := a.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// Same reports whether two annotations carry the same fact. Values compare by
// kind and attributes. Other implementations use their Equal(Annotation)
// method when they have one, and interface equality otherwise. Annotations
// whose dynamic value is not comparable are never the same.
func Same(a, b Annotation) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if av, ok := a.(Value); ok {
		bv, ok := b.(Value)
		return ok && av.Equal(bv)
	}
	if eq, ok := a.(interface{ Equal(Annotation) bool }); ok {
		return eq.Equal(b)
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
