package facet

// A Cell is factory-private state exposed through an object's method table.
// Dispatch only ever reads a cell: invoking its name returns the current
// value and ignores any arguments, so outside callers can never write
// through it. The factory keeps the *Cell and mutates it with Set from
// inside its behaviors.
type Cell struct {
	v interface{}
}

func (*Cell) method() {}

// NewCell creates a cell holding v.
func NewCell(v interface{}) *Cell {
	return &Cell{v: v}
}

// Value returns the cell's current value.
func (c *Cell) Value() interface{} {
	return c.v
}

// Set replaces the cell's value. This is the factory's write handle; it is
// not reachable through dispatch.
func (c *Cell) Set(v interface{}) {
	c.v = v
}
