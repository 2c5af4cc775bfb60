/*
Package facet implements a small prototype-style object runtime.

An object in facet is nothing more than a dispatcher: a value that can be
invoked with a method name and routes the call to one of several behaviors.
There are no classes. A factory function builds a method table and a table of
named parents, hands both to New, and keeps populating them after New returns;
the tables are captured by reference, so definitions added in the factory body
are visible to the dispatcher immediately.

A method table entry is either a Behavior, a Go closure invoked with the
object that defines it, or a Cell, a piece of factory-private state exposed
read-only. Parents are themselves dispatchers, registered under names chosen
by the composing factory, and inheritance is reached explicitly through
qualified names:

	o.Invoke("inc")             // local method
	o.Invoke("value")           // local cell, read-only
	o.Invoke("engine::start")   // method start on the parent named engine
	o.Invoke("a::b::probe")     // two levels of delegation

The reserved qualifier SUPER searches the parents of the object whose table
defines the currently running behavior, in registration order. Because a
behavior is always invoked with self bound to its defining object, writing

	self.Invoke("SUPER::greet")

inside a behavior anchors to the factory that defined it no matter which
dispatcher the original call arrived through.

When a bare name is not found and the object was built as a root (the
outermost receiver of a delegation chain, rather than as someone's parent),
the runtime invokes the object's forward behavior if it has one, passing the
requested name as the first argument followed by the original arguments.
Non-root objects never forward; they fail with a MethodError so that the
decision to handle a miss is made exactly once, at the true root.

The runtime is synchronous and single-threaded. Behaviors validate their own
arguments, and any error a behavior returns propagates to the caller of
Invoke unmodified.
*/
package facet
