package facet

import (
	"fmt"
	"sync/atomic"
)

// A Method is an entry in an object's method table: either a Behavior or a
// *Cell.
type Method interface {
	method()
}

// A Behavior is an invocable method. self is the object whose method table
// defines the behavior, which is what makes SUPER resolution inside the
// behavior anchor to the defining factory's parents rather than to whatever
// dispatcher the call arrived through.
type Behavior func(self *Object, args ...interface{}) (interface{}, error)

func (Behavior) method() {}

// Methods is an object's method table, mapping method names to behaviors and
// cells. New captures the table by reference, so a factory may keep adding
// definitions after constructing the dispatcher. Assigning a name twice
// replaces the earlier binding for that instance only.
type Methods map[string]Method

// Object is a dispatcher. It routes invocations by name to its own methods,
// to named parents, or to its forward behavior. See Invoke.
type Object struct {
	methods Methods
	parents *Parents
	root    bool

	// id is the object's unique ID.
	id uintptr
}

// objcounter is the global counter for object IDs. All accesses to this must
// be atomic.
var objcounter uintptr

// nextObject increments the object counter and returns its value as a unique
// ID for a new object.
func nextObject() uintptr {
	return atomic.AddUintptr(&objcounter, 1)
}

// New creates an object from a method table and a parent table. Both tables
// are captured by reference, not copied; nil tables are replaced by fresh
// empty ones. root marks the object as the outermost receiver of a delegation
// chain: only root objects consult their forward behavior when a bare name is
// not found. A factory building the object as someone's parent passes false.
//
// Construction cannot fail. Empty tables are fine; resolution failures
// surface at call time.
func New(methods Methods, parents *Parents, root bool) *Object {
	if methods == nil {
		methods = Methods{}
	}
	if parents == nil {
		parents = &Parents{}
	}
	return &Object{
		methods: methods,
		parents: parents,
		root:    root,
		id:      nextObject(),
	}
}

// Define sets a method table entry, replacing any earlier binding of the
// name. It writes through to the table captured by New, so it is equivalent
// to assigning in that table directly.
func (o *Object) Define(name string, m Method) {
	o.methods[name] = m
}

// Root reports whether the object was constructed as the outermost receiver
// of a delegation chain.
func (o *Object) Root() bool {
	return o.root
}

// UniqueID returns the object's unique ID.
func (o *Object) UniqueID() uintptr {
	return o.id
}

// String names the object for error texts and debugging. If the object
// defines a cell named type holding a string, that is used as the display
// name, in the manner of a type slot; otherwise the name is Object.
func (o *Object) String() string {
	if c, ok := o.methods["type"].(*Cell); ok {
		if s, ok := c.Value().(string); ok {
			return fmt.Sprintf("%s_%#x", s, o.id)
		}
	}
	return fmt.Sprintf("Object_%#x", o.id)
}
