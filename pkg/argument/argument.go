// Package argument describes typed slots (constructor and method parameters,
// generic type variables) for dependency resolution without runtime
// reflection. Every Argument is built once from explicit inputs, usually by
// generated code, and never changes afterwards.
package argument

import "github.com/toyz/argon/pkg/annotation"

// Argument describes a typed, named slot.
//
// Implementations must be immutable. Equal and Hash must agree: equal
// arguments produce equal hashes.
type Argument interface {
	// Type returns the raw type of the slot.
	Type() Type

	// Name returns the declared parameter or type variable name.
	Name() string

	// Qualifier returns the annotation that picks between candidate
	// implementations of Type, or nil when there is none.
	Qualifier() annotation.Annotation

	// AnnotatedElements exposes the metadata attached to the slot.
	AnnotatedElements() []annotation.Element

	// TypeVariables returns the generic parameters in declaration order.
	TypeVariables() TypeVariables

	// FirstTypeVariable returns the first generic parameter, if any.
	FirstTypeVariable() (Argument, bool)

	Equal(other Argument) bool
	Hash() uint64
	String() string
}

// Of creates an argument with no qualifier and no metadata.
func Of(typ Type, name string, typeParameters ...Argument) Argument {
	return New(typ, name, nil, nil, typeParameters...)
}

// Qualified creates an argument carrying a qualifier and no other metadata.
func Qualified(typ Type, name string, qualifier annotation.Annotation, typeParameters ...Argument) Argument {
	return New(typ, name, qualifier, nil, typeParameters...)
}
