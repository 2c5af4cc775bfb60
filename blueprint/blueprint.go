// Package blueprint loads declarative descriptions of facet object graphs.
//
// A blueprint file is a YAML document whose top level maps definition names
// to definitions. A definition lists the cells an instance starts with, the
// parents it composes (by definition name), and the behaviors bound into its
// method table, referenced by key from a host-supplied Registry. The Go side
// supplies the behavior bodies; the YAML side supplies the composition:
//
//	counter:
//	  type: Counter
//	  cells:
//	    value: 0
//	  methods:
//	    inc: counter.inc
//	multi:
//	  type: Multi
//	  parents:
//	    a: counter
//	    b: counter
//
// Instantiating a definition builds fresh cells and fresh parent instances
// recursively, so every composed object gets independent state. The
// requested object is a root; everything built as a parent is not, per the
// runtime's construction convention. Parents are registered in lexical name
// order, which is therefore the SUPER search order for blueprint objects.
package blueprint

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"

	"gopkg.in/yaml.v2"

	"github.com/facet-run/facet"
)

// A Definition describes one object factory.
type Definition struct {
	// Type is an optional display name, stored as the instance's type cell.
	Type string `yaml:"type"`
	// Cells maps cell names to initial values.
	Cells map[string]interface{} `yaml:"cells"`
	// Parents maps parent names to definition names in the same set.
	Parents map[string]string `yaml:"parents"`
	// Methods maps method names to registry keys.
	Methods map[string]string `yaml:"methods"`
}

// A Constructor builds a behavior for one instance. self is the instance
// under construction and cells are its freshly created cells by name; the
// constructor closes over whichever it needs, taking the place of a factory
// body's lexical captures.
type Constructor func(self *facet.Object, cells map[string]*facet.Cell) facet.Behavior

// A Registry maps behavior keys referenced from blueprint files to their
// constructors.
type Registry map[string]Constructor

// A Set is a loaded group of definitions ready to instantiate.
type Set struct {
	defs map[string]Definition
	reg  Registry
}

// Load reads a blueprint document and checks it against the registry. Every
// parent reference must name a definition in the same document and every
// method must name a registered behavior key.
func Load(r io.Reader, reg Registry) (*Set, error) {
	src, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	defs := map[string]Definition{}
	if err := yaml.UnmarshalStrict(src, &defs); err != nil {
		return nil, err
	}
	for name, def := range defs {
		for pname, target := range def.Parents {
			if _, ok := defs[target]; !ok {
				return nil, fmt.Errorf("blueprint: %s: parent %s references unknown definition %q", name, pname, target)
			}
		}
		for mname, key := range def.Methods {
			if _, ok := reg[key]; !ok {
				return nil, fmt.Errorf("blueprint: %s: method %s references unknown behavior %q", name, mname, key)
			}
		}
	}
	return &Set{defs: defs, reg: reg}, nil
}

// LoadFile reads a blueprint document from a file.
func LoadFile(path string, reg Registry) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, reg)
}

// Names returns the definition names in the set, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New instantiates the named definition as a root object. Each call builds
// an entirely fresh instance, including fresh instances of every parent.
func (s *Set) New(name string) (*facet.Object, error) {
	return s.build(name, true, map[string]bool{})
}

// build instantiates one definition, tracking the definition names on the
// current path to reject cyclic composition.
func (s *Set) build(name string, root bool, path map[string]bool) (*facet.Object, error) {
	def, ok := s.defs[name]
	if !ok {
		return nil, fmt.Errorf("blueprint: unknown definition %q", name)
	}
	if path[name] {
		return nil, fmt.Errorf("blueprint: definition %q is its own ancestor", name)
	}
	path[name] = true
	defer delete(path, name)

	methods := facet.Methods{}
	parents := &facet.Parents{}
	obj := facet.New(methods, parents, root)
	cells := make(map[string]*facet.Cell, len(def.Cells))
	for cname, v := range def.Cells {
		c := facet.NewCell(v)
		cells[cname] = c
		methods[cname] = c
	}
	if def.Type != "" {
		methods["type"] = facet.NewCell(def.Type)
	}
	pnames := make([]string, 0, len(def.Parents))
	for pname := range def.Parents {
		pnames = append(pnames, pname)
	}
	sort.Strings(pnames)
	for _, pname := range pnames {
		child, err := s.build(def.Parents[pname], false, path)
		if err != nil {
			return nil, err
		}
		parents.Set(pname, child)
	}
	for mname, key := range def.Methods {
		methods[mname] = s.reg[key](obj, cells)
	}
	return obj, nil
}
