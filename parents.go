package facet

// Parents is a table of named parent dispatchers. Names are chosen by the
// composing factory, not by the parents themselves, and several names may
// wrap instances built by the same factory, each with its own state.
//
// The table remembers registration order, and SUPER searches parents in that
// order, so resolution is deterministic when more than one parent could
// supply a name. Re-registering a name replaces the parent but keeps the
// name's original position.
//
// The zero value is an empty table ready for use. A parent registered here is
// shared, not owned; its lifetime is governed by whoever else holds it.
type Parents struct {
	names []string
	m     map[string]*Object
}

// Set registers a parent under a name, replacing any parent already
// registered under it.
func (p *Parents) Set(name string, parent *Object) {
	if p.m == nil {
		p.m = map[string]*Object{}
	}
	if _, ok := p.m[name]; !ok {
		p.names = append(p.names, name)
	}
	p.m[name] = parent
}

// Get returns the parent registered under name.
func (p *Parents) Get(name string) (*Object, bool) {
	parent, ok := p.m[name]
	return parent, ok
}

// Names returns the parent names in registration order.
func (p *Parents) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Len returns the number of registered parents.
func (p *Parents) Len() int {
	return len(p.names)
}
