package facet

import (
	"strings"

	"github.com/zephyrtronium/contains"
)

// PathSep separates parent names in a qualified method name.
const PathSep = "::"

// Super is the reserved leading qualifier that resolves against the parents
// of the object defining the behavior making the call.
const Super = "SUPER"

// Forward is the reserved method name invoked on a root object when a bare
// name is not found. The runtime calls it with the requested name as the
// first argument, followed by the original arguments. Only a Behavior can
// forward; a cell bound under this name is ignored.
const Forward = "forward"

// Invoke resolves name and executes what it finds.
//
// A bare name is looked up in the object's own method table only: a Behavior
// is invoked with the arguments, a Cell's current value is returned with the
// arguments ignored, and a miss falls through to the forward behavior if the
// object is a root, or to a MethodError otherwise.
//
// A name of the form p1::p2::…::m strips one parent name per level and
// recurses on the named parent. A leading segment matching no parent is a
// PathError.
//
// A leading SUPER searches this object's parents in registration order for
// the remainder of the name, which may itself begin with SUPER for deeper
// chains. Objects already visited during one SUPER search are not searched
// again, so parents sharing an ancestor try it once. Forward behaviors never
// satisfy a SUPER search.
//
// Errors returned by behaviors propagate unmodified. A failed call leaves
// the object's tables untouched; the dispatcher remains valid.
func (o *Object) Invoke(name string, args ...interface{}) (interface{}, error) {
	head, rest, qualified := splitPath(name)
	if !qualified {
		m, ok := o.methods[name]
		if !ok {
			return o.fallback(name, args)
		}
		return activate(o, m, args)
	}
	if head == Super {
		seen := contains.Set{}
		seen.Add(o.id)
		owner, m, ok := o.superLookup(rest, &seen)
		if !ok {
			return nil, &MethodError{Name: name, Obj: o}
		}
		return activate(owner, m, args)
	}
	parent, ok := o.parents.Get(head)
	if !ok {
		return nil, &PathError{Segment: head, Path: name, Obj: o}
	}
	return parent.Invoke(rest, args...)
}

// activate runs a resolved method against the object that owns it.
func activate(owner *Object, m Method, args []interface{}) (interface{}, error) {
	switch m := m.(type) {
	case Behavior:
		return m(owner, args...)
	case *Cell:
		return m.Value(), nil
	}
	panic("facet: invalid method table entry")
}

// fallback handles a bare-name miss. Only the root of a delegation chain may
// forward, so a miss on an intermediate parent propagates as an error and
// the decision is made exactly once, at the outermost object.
func (o *Object) fallback(name string, args []interface{}) (interface{}, error) {
	if o.root {
		if fw, ok := o.methods[Forward].(Behavior); ok {
			fwargs := make([]interface{}, 0, len(args)+1)
			fwargs = append(fwargs, name)
			fwargs = append(fwargs, args...)
			return fw(o, fwargs...)
		}
	}
	return nil, &MethodError{Name: name, Obj: o}
}

// superLookup resolves name against o's parents in registration order,
// skipping objects already seen during this search.
func (o *Object) superLookup(name string, seen *contains.Set) (owner *Object, m Method, ok bool) {
	for _, pname := range o.parents.Names() {
		parent, _ := o.parents.Get(pname)
		if !seen.Add(parent.id) {
			continue
		}
		if owner, m, ok := parent.lookup(name, seen); ok {
			return owner, m, true
		}
	}
	return nil, nil, false
}

// lookup resolves name to a concrete method without invoking anything and
// without consulting forward behaviors, returning the object whose table
// supplied it.
func (o *Object) lookup(name string, seen *contains.Set) (owner *Object, m Method, ok bool) {
	head, rest, qualified := splitPath(name)
	if !qualified {
		m, ok := o.methods[name]
		if !ok {
			return nil, nil, false
		}
		return o, m, true
	}
	if head == Super {
		return o.superLookup(rest, seen)
	}
	parent, ok := o.parents.Get(head)
	if !ok {
		return nil, nil, false
	}
	return parent.lookup(rest, seen)
}

// splitPath splits off the leading qualifier of a name. qualified is false
// when the name contains no separator.
func splitPath(name string) (head, rest string, qualified bool) {
	i := strings.Index(name, PathSep)
	if i < 0 {
		return "", name, false
	}
	return name[:i], name[i+len(PathSep):], true
}
