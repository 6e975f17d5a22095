package argument

import (
	"hash/fnv"
	"path"
)

// Type is the raw (erased) identity of an argument's type. Generic instances
// share the Type of their generic declaration; the instantiation lives in the
// argument's type variables.
type Type struct {
	PkgPath string // import path, empty for predeclared and builtin shapes
	Name    string
}

// Builtin composite shapes. Their element types are carried as type variables
// under the names listed next to each.
var (
	SliceType   = Type{Name: "[]"}   // E
	MapType     = Type{Name: "map"}  // K, V
	PointerType = Type{Name: "*"}    // T
	ChanType    = Type{Name: "chan"} // T
	FuncType    = Type{Name: "func"}
)

// Type variable names used by the builtin composite shapes.
const (
	ElemVar  = "E"
	KeyVar   = "K"
	ValueVar = "V"
	PointVar = "T"
)

// TypeOf returns the Type for a named type declared in pkgPath.
func TypeOf(pkgPath, name string) Type {
	return Type{PkgPath: pkgPath, Name: name}
}

// IsZero reports whether t has no name.
func (t Type) IsZero() bool {
	return t.Name == ""
}

// Short returns the unqualified type name.
func (t Type) Short() string {
	return t.Name
}

// Package returns the last element of the import path.
func (t Type) Package() string {
	if t.PkgPath == "" {
		return ""
	}
	return path.Base(t.PkgPath)
}

func (t Type) String() string {
	if t.PkgPath == "" {
		return t.Name
	}
	return t.PkgPath + "." + t.Name
}

func (t Type) hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(t.String()))
	return h.Sum64()
}
