package argument

import (
	"fmt"

	"github.com/toyz/argon/pkg/annotation"
)

type defaultArgument struct {
	typ            Type
	name           string
	qualifier      annotation.Annotation
	element        annotation.Element
	typeParameters TypeVariables
}

// New builds the default Argument.
//
// A nil qualifier means no qualifier and nil annotations mean no metadata.
// Each type parameter is keyed by its own Name; a later parameter with a
// repeated name replaces the earlier one. New panics with a *ContractError
// when typ is zero, name is empty or a type parameter is nil.
func New(typ Type, name string, qualifier annotation.Annotation, annotations []annotation.Annotation, typeParameters ...Argument) Argument {
	if typ.IsZero() {
		panic(&ContractError{Field: "type", Message: "type is required"})
	}
	if name == "" {
		panic(&ContractError{Field: "name", Message: "name is required for " + typ.String()})
	}
	for i, tp := range typeParameters {
		if tp == nil {
			panic(&ContractError{Field: "type parameter", Message: fmt.Sprintf("nil type parameter at position %d of %s %s", i, typ.Short(), name)})
		}
	}

	return &defaultArgument{
		typ:            typ,
		name:           name,
		qualifier:      qualifier,
		element:        annotation.NewElement(annotations...),
		typeParameters: newTypeVariables(typeParameters),
	}
}

func (a *defaultArgument) Type() Type {
	return a.typ
}

func (a *defaultArgument) Name() string {
	return a.name
}

func (a *defaultArgument) Qualifier() annotation.Annotation {
	return a.qualifier
}

func (a *defaultArgument) AnnotatedElements() []annotation.Element {
	return []annotation.Element{a.element}
}

func (a *defaultArgument) TypeVariables() TypeVariables {
	return a.typeParameters
}

func (a *defaultArgument) FirstTypeVariable() (Argument, bool) {
	return a.typeParameters.first()
}

func (a *defaultArgument) String() string {
	return a.typ.Short() + " " + a.name
}

// Equal compares raw type and the set of type parameter values. Parameter
// names, declaration order, qualifier and metadata do not take part.
func (a *defaultArgument) Equal(other Argument) bool {
	that, ok := other.(*defaultArgument)
	if !ok || that == nil {
		return false
	}
	if a == that {
		return true
	}
	if a.typ != that.typ {
		return false
	}
	if a.typeParameters.IsEmpty() && that.typeParameters.IsEmpty() {
		return true
	}
	return sameSet(distinct(a.typeParameters.values), distinct(that.typeParameters.values))
}

// Hash is 31*hash(type) plus the sum of the distinct type parameter hashes,
// or hash(type) alone when there are no type parameters.
func (a *defaultArgument) Hash() uint64 {
	result := a.typ.hash()
	if a.typeParameters.IsEmpty() {
		return result
	}
	var set uint64
	for _, v := range distinct(a.typeParameters.values) {
		set += v.Hash()
	}
	return 31*result + set
}

// distinct collapses equal arguments, keeping the first of each.
func distinct(args []Argument) []Argument {
	out := make([]Argument, 0, len(args))
	for _, arg := range args {
		if !contains(out, arg) {
			out = append(out, arg)
		}
	}
	return out
}

func contains(set []Argument, arg Argument) bool {
	for _, existing := range set {
		if existing.Equal(arg) {
			return true
		}
	}
	return false
}

// sameSet expects both inputs to be free of duplicates.
func sameSet(a, b []Argument) bool {
	if len(a) != len(b) {
		return false
	}
	for _, arg := range a {
		if !contains(b, arg) {
			return false
		}
	}
	return true
}
