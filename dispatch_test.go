package facet

import (
	"errors"
	"fmt"
	"testing"
)

// ret returns a behavior that returns v.
func ret(v interface{}) Behavior {
	return func(self *Object, args ...interface{}) (interface{}, error) {
		return v, nil
	}
}

// TestLocalDispatch tests that a bare name defined locally is invoked with
// the supplied arguments and is never routed through parents or forward.
func TestLocalDispatch(t *testing.T) {
	methods := Methods{}
	parents := &Parents{}
	o := New(methods, parents, true)
	parents.Set("p", New(Methods{"m": ret("parent")}, nil, false))
	methods["m"] = Behavior(func(self *Object, args ...interface{}) (interface{}, error) {
		if self != o {
			t.Errorf("wrong self: have %v, want %v", self, o)
		}
		return fmt.Sprint("local", args), nil
	})
	methods[Forward] = Behavior(func(self *Object, args ...interface{}) (interface{}, error) {
		t.Error("forward invoked for a defined method")
		return nil, nil
	})
	r, err := o.Invoke("m", 1, "two")
	if err != nil {
		t.Fatal(err)
	}
	if want := fmt.Sprint("local", []interface{}{1, "two"}); r != want {
		t.Errorf("wrong result: have %v, want %v", r, want)
	}
}

// TestCellDispatch tests that a name bound to a cell returns the current
// value regardless of arguments, and that reads are idempotent.
func TestCellDispatch(t *testing.T) {
	c := NewCell(37)
	o := New(Methods{"value": c}, nil, true)
	cases := map[string][]interface{}{
		"NoArgs":   nil,
		"Args":     {1, 2, 3},
		"Repeated": nil,
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := o.Invoke("value", args...)
			if err != nil {
				t.Fatal(err)
			}
			if r != 37 {
				t.Errorf("wrong cell value: have %v, want 37", r)
			}
		})
	}
	c.Set(38)
	if r, _ := o.Invoke("value"); r != 38 {
		t.Errorf("cell mutation not visible: have %v, want 38", r)
	}
}

// TestParentDelegation tests that a qualified name routes through the named
// parent, with multi-segment paths traversing a level per segment.
func TestParentDelegation(t *testing.T) {
	grand := New(Methods{"probe": ret("grand")}, nil, false)
	gp := &Parents{}
	gp.Set("deep", grand)
	parent := New(Methods{"probe": ret("parent")}, gp, false)
	op := &Parents{}
	op.Set("p", parent)
	o := New(Methods{"probe": ret("own")}, op, true)

	cases := map[string]struct {
		name string
		want interface{}
	}{
		"Own":      {"probe", "own"},
		"Parent":   {"p::probe", "parent"},
		"TwoLevel": {"p::deep::probe", "grand"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := o.Invoke(c.name)
			if err != nil {
				t.Fatal(err)
			}
			if r != c.want {
				t.Errorf("%q: have %v, want %v", c.name, r, c.want)
			}
		})
	}

	direct, err := parent.Invoke("probe")
	if err != nil {
		t.Fatal(err)
	}
	routed, err := o.Invoke("p::probe")
	if err != nil {
		t.Fatal(err)
	}
	if direct != routed {
		t.Errorf("delegated call differs from direct call: %v != %v", routed, direct)
	}
}

// TestUnknownPath tests that an unmatched leading segment fails with a
// PathError naming the segment, at whichever level it occurs.
func TestUnknownPath(t *testing.T) {
	parent := New(Methods{"m": ret(1)}, nil, false)
	op := &Parents{}
	op.Set("p", parent)
	o := New(nil, op, true)
	cases := map[string]struct {
		name    string
		segment string
		obj     *Object
	}{
		"Top":    {"unknownparent::m", "unknownparent", o},
		"Nested": {"p::nope::m", "nope", parent},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := o.Invoke(c.name)
			var pe *PathError
			if !errors.As(err, &pe) {
				t.Fatalf("wrong error type: %v", err)
			}
			if pe.Segment != c.segment {
				t.Errorf("wrong segment: have %q, want %q", pe.Segment, c.segment)
			}
			if pe.Obj != c.obj {
				t.Errorf("wrong object: have %v, want %v", pe.Obj, c.obj)
			}
		})
	}
}

// TestMethodNotFound tests that a bare-name miss fails with a MethodError
// naming the method when no forward applies.
func TestMethodNotFound(t *testing.T) {
	o := New(nil, nil, true)
	_, err := o.Invoke("missing")
	var me *MethodError
	if !errors.As(err, &me) {
		t.Fatalf("wrong error type: %v", err)
	}
	if me.Name != "missing" {
		t.Errorf("wrong name: have %q, want %q", me.Name, "missing")
	}
	if me.Obj != o {
		t.Errorf("wrong object: have %v, want %v", me.Obj, o)
	}
}

// TestForward tests the root/forward contract: a root object's forward
// behavior receives the requested name and the original arguments, while a
// non-root object with the same forward propagates MethodError instead.
func TestForward(t *testing.T) {
	var got []interface{}
	fw := Behavior(func(self *Object, args ...interface{}) (interface{}, error) {
		got = args
		return "forwarded", nil
	})
	t.Run("Root", func(t *testing.T) {
		o := New(Methods{Forward: fw}, nil, true)
		r, err := o.Invoke("missing", 4, 5)
		if err != nil {
			t.Fatal(err)
		}
		if r != "forwarded" {
			t.Errorf("wrong result: have %v", r)
		}
		if len(got) != 3 || got[0] != "missing" || got[1] != 4 || got[2] != 5 {
			t.Errorf("wrong forward args: %v", got)
		}
	})
	t.Run("NonRoot", func(t *testing.T) {
		got = nil
		o := New(Methods{Forward: fw}, nil, false)
		_, err := o.Invoke("missing")
		var me *MethodError
		if !errors.As(err, &me) {
			t.Fatalf("wrong error type: %v", err)
		}
		if got != nil {
			t.Error("non-root object forwarded")
		}
	})
	t.Run("ForwardCell", func(t *testing.T) {
		// A cell under the forward name cannot handle a miss.
		o := New(Methods{Forward: NewCell("nope")}, nil, true)
		_, err := o.Invoke("missing")
		var me *MethodError
		if !errors.As(err, &me) {
			t.Fatalf("wrong error type: %v", err)
		}
	})
}

// TestSuperAnchoring tests that SUPER inside a behavior resolves against the
// parents of the defining object, not the receiver the call arrived through.
func TestSuperAnchoring(t *testing.T) {
	mid := New(Methods{}, &Parents{}, false)
	mid.parents.Set("greeter", New(Methods{"greet": ret("hello")}, nil, false))
	mid.Define("exclaim", Behavior(func(self *Object, args ...interface{}) (interface{}, error) {
		g, err := self.Invoke("SUPER::greet")
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%v!", g), nil
	}))

	derived := New(nil, &Parents{}, true)
	derived.parents.Set("greeter", New(Methods{"greet": ret("goodbye")}, nil, false))
	derived.parents.Set("voice", mid)

	r, err := derived.Invoke("voice::exclaim")
	if err != nil {
		t.Fatal(err)
	}
	if r != "hello!" {
		t.Errorf("SUPER resolved against the receiver: have %v, want hello!", r)
	}
}

// TestSuperOrder tests that SUPER tries parents in registration order when
// more than one could supply the name.
func TestSuperOrder(t *testing.T) {
	o := New(nil, &Parents{}, true)
	o.parents.Set("first", New(Methods{"m": ret("first")}, nil, false))
	o.parents.Set("second", New(Methods{"m": ret("second")}, nil, false))
	r, err := o.Invoke("SUPER::m")
	if err != nil {
		t.Fatal(err)
	}
	if r != "first" {
		t.Errorf("wrong parent won: have %v, want first", r)
	}
}

// TestSuperChain tests SUPER::SUPER paths and SUPER reaching a cell.
func TestSuperChain(t *testing.T) {
	grand := New(Methods{"m": ret("grand"), "level": NewCell(2)}, nil, false)
	parent := New(nil, &Parents{}, false)
	parent.parents.Set("g", grand)
	o := New(nil, &Parents{}, true)
	o.parents.Set("p", parent)
	cases := map[string]struct {
		name string
		want interface{}
	}{
		"TwoDeep": {"SUPER::SUPER::m", "grand"},
		"Cell":    {"SUPER::SUPER::level", 2},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := o.Invoke(c.name)
			if err != nil {
				t.Fatal(err)
			}
			if r != c.want {
				t.Errorf("%q: have %v, want %v", c.name, r, c.want)
			}
		})
	}
}

// TestSuperDiamond tests that a grandparent shared by two parents is found
// through a SUPER chain and that the search terminates on cyclic graphs.
func TestSuperDiamond(t *testing.T) {
	grand := New(Methods{"m": ret("grand")}, nil, false)
	a := New(nil, &Parents{}, false)
	a.parents.Set("g", grand)
	b := New(nil, &Parents{}, false)
	b.parents.Set("g", grand)
	o := New(nil, &Parents{}, true)
	o.parents.Set("a", a)
	o.parents.Set("b", b)
	r, err := o.Invoke("SUPER::SUPER::m")
	if err != nil {
		t.Fatal(err)
	}
	if r != "grand" {
		t.Errorf("diamond lookup failed: have %v", r)
	}

	t.Run("Cycle", func(t *testing.T) {
		x := New(nil, &Parents{}, true)
		y := New(nil, &Parents{}, false)
		x.parents.Set("y", y)
		y.parents.Set("x", x)
		_, err := x.Invoke("SUPER::SUPER::missing")
		var me *MethodError
		if !errors.As(err, &me) {
			t.Fatalf("wrong error type: %v", err)
		}
	})
}

// TestSuperSkipsForward tests that a parent's forward behavior does not
// satisfy a SUPER search.
func TestSuperSkipsForward(t *testing.T) {
	parent := New(Methods{Forward: Behavior(func(self *Object, args ...interface{}) (interface{}, error) {
		t.Error("forward consulted during SUPER search")
		return nil, nil
	})}, nil, true)
	o := New(nil, &Parents{}, true)
	o.parents.Set("p", parent)
	_, err := o.Invoke("SUPER::missing")
	var me *MethodError
	if !errors.As(err, &me) {
		t.Fatalf("wrong error type: %v", err)
	}
}

// TestBehaviorErrors tests that an error returned by a behavior propagates
// unmodified through nested dispatch and leaves the dispatcher usable.
func TestBehaviorErrors(t *testing.T) {
	boom := errors.New("boom")
	parent := New(Methods{"explode": Behavior(func(self *Object, args ...interface{}) (interface{}, error) {
		return nil, boom
	})}, nil, false)
	o := New(Methods{"relay": Behavior(func(self *Object, args ...interface{}) (interface{}, error) {
		return self.Invoke("p::explode")
	})}, &Parents{}, true)
	o.parents.Set("p", parent)
	o.Define("ok", ret("ok"))

	if _, err := o.Invoke("relay"); err != boom {
		t.Errorf("behavior error was wrapped: have %v, want %v", err, boom)
	}
	// A failed call must not corrupt the object's tables.
	if r, err := o.Invoke("ok"); err != nil || r != "ok" {
		t.Errorf("dispatcher unusable after error: have %v, %v", r, err)
	}
	if _, err := o.Invoke("p::explode"); err != boom {
		t.Errorf("qualified behavior error was wrapped: have %v", err)
	}
}
