package facet

import "fmt"

// A MethodError reports that resolution terminated without finding a method,
// cell, or applicable forward behavior.
type MethodError struct {
	// Name is the name as requested of the failing object, including any
	// remaining qualifiers.
	Name string
	// Obj is the object whose resolution failed.
	Obj *Object
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("%v does not respond to %q", e.Obj, e.Name)
}

// A PathError reports a qualified name whose leading segment names no parent.
type PathError struct {
	// Segment is the unmatched parent name.
	Segment string
	// Path is the qualified name as requested of the failing object.
	Path string
	// Obj is the object whose parent table was searched.
	Obj *Object
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v has no parent %q in %q", e.Obj, e.Segment, e.Path)
}

// Must panics if err is non-nil and otherwise returns v. It exists for
// examples and wiring code where a dispatch failure is a programming error.
func Must(v interface{}, err error) interface{} {
	if err != nil {
		panic(err)
	}
	return v
}
