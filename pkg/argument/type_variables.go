package argument

import "iter"

// TypeVariables is an insertion-ordered, read-only mapping from generic
// parameter name to Argument. The zero value is empty and ready to use.
type TypeVariables struct {
	names  []string
	values []Argument
	index  map[string]int
}

var noTypeVariables = TypeVariables{}

// newTypeVariables keys each argument by its own name. A repeated name
// replaces the earlier value in place.
func newTypeVariables(args []Argument) TypeVariables {
	if len(args) == 0 {
		return noTypeVariables
	}
	tv := TypeVariables{
		names:  make([]string, 0, len(args)),
		values: make([]Argument, 0, len(args)),
		index:  make(map[string]int, len(args)),
	}
	for _, arg := range args {
		name := arg.Name()
		if i, exists := tv.index[name]; exists {
			tv.values[i] = arg
			continue
		}
		tv.index[name] = len(tv.names)
		tv.names = append(tv.names, name)
		tv.values = append(tv.values, arg)
	}
	return tv
}

// Len returns the number of type variables
func (tv TypeVariables) Len() int {
	return len(tv.names)
}

// IsEmpty reports whether there are no type variables
func (tv TypeVariables) IsEmpty() bool {
	return len(tv.names) == 0
}

// Get returns the type variable with the given name
func (tv TypeVariables) Get(name string) (Argument, bool) {
	i, ok := tv.index[name]
	if !ok {
		return nil, false
	}
	return tv.values[i], true
}

// Names returns the variable names in declaration order
func (tv TypeVariables) Names() []string {
	if len(tv.names) == 0 {
		return nil
	}
	out := make([]string, len(tv.names))
	copy(out, tv.names)
	return out
}

// Values returns the variables in declaration order
func (tv TypeVariables) Values() []Argument {
	if len(tv.values) == 0 {
		return nil
	}
	out := make([]Argument, len(tv.values))
	copy(out, tv.values)
	return out
}

// All iterates name/argument pairs in declaration order.
func (tv TypeVariables) All() iter.Seq2[string, Argument] {
	return func(yield func(string, Argument) bool) {
		for i, name := range tv.names {
			if !yield(name, tv.values[i]) {
				return
			}
		}
	}
}

func (tv TypeVariables) first() (Argument, bool) {
	if len(tv.values) == 0 {
		return nil, false
	}
	return tv.values[0], true
}
