// Package testutils provides canned object factories for testing facet
// dispatch in Go.
//
// Each factory follows the runtime's construction convention: it takes an
// optional base object, and the object is a root exactly when no base is
// given. Passing a base is how one factory builds another's object as its
// parent.
package testutils

import (
	"fmt"

	"github.com/facet-run/facet"
)

// Counter builds an object with an inc behavior incrementing a private count
// and returning it, and the count exposed read-only as the value cell.
func Counter(base ...*facet.Object) *facet.Object {
	methods := facet.Methods{}
	obj := facet.New(methods, nil, len(base) == 0)
	value := facet.NewCell(0)
	methods["type"] = facet.NewCell("Counter")
	methods["value"] = value
	methods["inc"] = facet.Behavior(func(self *facet.Object, args ...interface{}) (interface{}, error) {
		n := value.Value().(int) + 1
		value.Set(n)
		return n, nil
	})
	return obj
}

// Multi builds an object composing two independent Counter parents under the
// names a and b, with a total behavior summing their values.
func Multi(base ...*facet.Object) *facet.Object {
	methods := facet.Methods{}
	parents := &facet.Parents{}
	obj := facet.New(methods, parents, len(base) == 0)
	parents.Set("a", Counter(obj))
	parents.Set("b", Counter(obj))
	methods["type"] = facet.NewCell("Multi")
	methods["total"] = facet.Behavior(func(self *facet.Object, args ...interface{}) (interface{}, error) {
		a, err := self.Invoke("a::value")
		if err != nil {
			return nil, err
		}
		b, err := self.Invoke("b::value")
		if err != nil {
			return nil, err
		}
		return a.(int) + b.(int), nil
	})
	return obj
}

// Greeter builds an object whose greet behavior returns the given greeting.
func Greeter(greeting string, base ...*facet.Object) *facet.Object {
	methods := facet.Methods{}
	obj := facet.New(methods, nil, len(base) == 0)
	methods["type"] = facet.NewCell("Greeter")
	methods["greet"] = facet.Behavior(func(self *facet.Object, args ...interface{}) (interface{}, error) {
		return greeting, nil
	})
	return obj
}

// Exclaimer builds an object with a Greeter parent whose exclaim behavior
// calls SUPER::greet and appends an exclamation mark. Because exclaim runs
// with self bound to the Exclaimer instance, its SUPER search is anchored to
// this parent table even when the object is reached through a composing
// object whose own parents differ.
func Exclaimer(base ...*facet.Object) *facet.Object {
	methods := facet.Methods{}
	parents := &facet.Parents{}
	obj := facet.New(methods, parents, len(base) == 0)
	parents.Set("greeter", Greeter("hello", obj))
	methods["type"] = facet.NewCell("Exclaimer")
	methods["exclaim"] = facet.Behavior(func(self *facet.Object, args ...interface{}) (interface{}, error) {
		g, err := self.Invoke("SUPER::greet")
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%v!", g), nil
	})
	return obj
}

// Announcer builds an object composing an Exclaimer under the name voice
// alongside its own, different greeter parent. Invoking voice::exclaim on it
// exercises SUPER anchoring: the exclaim behavior must see the Exclaimer's
// greeter, not the Announcer's.
func Announcer(base ...*facet.Object) *facet.Object {
	methods := facet.Methods{}
	parents := &facet.Parents{}
	obj := facet.New(methods, parents, len(base) == 0)
	parents.Set("greeter", Greeter("goodbye", obj))
	parents.Set("voice", Exclaimer(obj))
	methods["type"] = facet.NewCell("Announcer")
	return obj
}

// Echo builds a root object whose forward behavior reports the requested
// name and arguments it was invoked with.
func Echo(base ...*facet.Object) *facet.Object {
	methods := facet.Methods{}
	obj := facet.New(methods, nil, len(base) == 0)
	methods["type"] = facet.NewCell("Echo")
	methods[facet.Forward] = facet.Behavior(func(self *facet.Object, args ...interface{}) (interface{}, error) {
		return args, nil
	})
	return obj
}
