// Command facet is an interactive shell over a blueprint of objects. It
// loads the blueprint file given as its argument, instantiates every
// definition, and dispatches lines of the form
//
//	OBJECT METHOD [ARG ...]
//
// where METHOD may be qualified (a::value, SUPER::greet). Arguments that
// parse as integers are passed as ints, everything else as strings. The
// commands objects and exit list the loaded objects and quit the shell.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/facet-run/facet"
	"github.com/facet-run/facet/blueprint"
)

// registry is the behavior vocabulary available to blueprints run in the
// shell. The stateful behaviors work on the instance's value cell.
var registry = blueprint.Registry{
	"inc": func(self *facet.Object, cells map[string]*facet.Cell) facet.Behavior {
		value := cells["value"]
		return func(self *facet.Object, args ...interface{}) (interface{}, error) {
			n, ok := value.Value().(int)
			if !ok {
				return nil, fmt.Errorf("%v: value cell is not an int", self)
			}
			value.Set(n + 1)
			return n + 1, nil
		}
	},
	"add": func(self *facet.Object, cells map[string]*facet.Cell) facet.Behavior {
		value := cells["value"]
		return func(self *facet.Object, args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("add takes one argument")
			}
			d, ok := args[0].(int)
			if !ok {
				return nil, fmt.Errorf("add takes an int, not %T", args[0])
			}
			n, ok := value.Value().(int)
			if !ok {
				return nil, fmt.Errorf("%v: value cell is not an int", self)
			}
			value.Set(n + d)
			return n + d, nil
		}
	},
	"reset": func(self *facet.Object, cells map[string]*facet.Cell) facet.Behavior {
		value := cells["value"]
		return func(self *facet.Object, args ...interface{}) (interface{}, error) {
			value.Set(0)
			return 0, nil
		}
	},
	"say": func(self *facet.Object, cells map[string]*facet.Cell) facet.Behavior {
		return func(self *facet.Object, args ...interface{}) (interface{}, error) {
			words := make([]string, len(args))
			for i, a := range args {
				words[i] = fmt.Sprint(a)
			}
			return strings.Join(words, " "), nil
		}
	},
	"report": func(self *facet.Object, cells map[string]*facet.Cell) facet.Behavior {
		return func(self *facet.Object, args ...interface{}) (interface{}, error) {
			return fmt.Sprintf("%v has no method %v", self, args[0]), nil
		}
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s BLUEPRINT\n", os.Args[0])
		os.Exit(2)
	}
	set, err := blueprint.LoadFile(os.Args[1], registry)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	objects := map[string]*facet.Object{}
	for _, name := range set.Names() {
		obj, err := set.New(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		objects[name] = obj
	}

	stdin := bufio.NewScanner(os.Stdin)
	fmt.Print("facet> ")
	for stdin.Scan() {
		if !eval(set, objects, strings.Fields(stdin.Text())) {
			return
		}
		fmt.Print("facet> ")
	}
}

// eval handles one shell line, reporting whether the session continues.
func eval(set *blueprint.Set, objects map[string]*facet.Object, fields []string) bool {
	switch {
	case len(fields) == 0:
	case fields[0] == "exit":
		return false
	case fields[0] == "objects":
		fmt.Println(strings.Join(set.Names(), " "))
	case len(fields) < 2:
		fmt.Println("usage: OBJECT METHOD [ARG ...]")
	default:
		obj, ok := objects[fields[0]]
		if !ok {
			fmt.Printf("no object %q\n", fields[0])
			return true
		}
		args := make([]interface{}, len(fields)-2)
		for i, f := range fields[2:] {
			if n, err := strconv.Atoi(f); err == nil {
				args[i] = n
			} else {
				args[i] = f
			}
		}
		r, err := obj.Invoke(fields[1], args...)
		if err != nil {
			fmt.Println("Error:", err)
		} else {
			fmt.Println(r)
		}
	}
	return true
}
