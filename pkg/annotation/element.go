package annotation

// Element is a queryable view over the annotations attached to something.
// In this model nothing is inherited, so DeclaredAnnotations and Annotations
// report the same facts.
type Element interface {
	// Annotation returns the first annotation of the given kind.
	Annotation(kind string) (Annotation, bool)
	Annotations() []Annotation
	DeclaredAnnotations() []Annotation
}

// Empty is the shared element with no annotations.
var Empty Element = element{}

type element struct {
	annotations []Annotation
}

// NewElement wraps annotations in an Element. The slice is copied and nil
// entries dropped; with nothing left the shared Empty element is returned.
func NewElement(annotations ...Annotation) Element {
	kept := make([]Annotation, 0, len(annotations))
	for _, a := range annotations {
		if a != nil {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		return Empty
	}
	return element{annotations: kept}
}

func (e element) Annotation(kind string) (Annotation, bool) {
	return Find(e.annotations, kind)
}

func (e element) Annotations() []Annotation {
	return e.copyOf()
}

func (e element) DeclaredAnnotations() []Annotation {
	return e.copyOf()
}

func (e element) copyOf() []Annotation {
	if len(e.annotations) == 0 {
		return nil
	}
	out := make([]Annotation, len(e.annotations))
	copy(out, e.annotations)
	return out
}

// Get looks up the first annotation of dynamic type T through an element.
func Get[T Annotation](el Element) (T, bool) {
	if el == nil {
		var zero T
		return zero, false
	}
	return FindAs[T](el.Annotations())
}
