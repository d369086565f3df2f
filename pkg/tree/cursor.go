package tree

// Cursor is the path from the root of a tree to the value being visited.
// Cursors are created during a walk and are never stored in nodes.
type Cursor struct {
	parent   *Cursor
	value    any
	messages map[string]any
}

// RootValue is the value of the cursor that starts every walk.
const RootValue = "root"

// NewCursor returns a cursor for value below parent. A nil parent starts a
// new path.
func NewCursor(parent *Cursor, value any) *Cursor {
	return &Cursor{parent: parent, value: value}
}

// RootCursor returns the cursor every walk starts from.
func RootCursor() *Cursor {
	return NewCursor(nil, RootValue)
}

// Parent returns the enclosing cursor, or nil at the root.
func (c *Cursor) Parent() *Cursor {
	if c == nil {
		return nil
	}
	return c.parent
}

// Value returns the visited value.
func (c *Cursor) Value() any {
	if c == nil {
		return nil
	}
	return c.value
}

// Node returns the visited value as a node, or nil when it is not one.
func (c *Cursor) Node() Node {
	n, _ := c.Value().(Node)
	return n
}

// Depth returns the number of ancestors of this cursor.
func (c *Cursor) Depth() int {
	depth := 0
	for p := c.Parent(); p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Path returns the nodes from the root to this cursor, root first.
func (c *Cursor) Path() []Node {
	var path []Node
	for p := c; p != nil; p = p.parent {
		if n, ok := p.value.(Node); ok {
			path = append(path, n)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ParentNode returns the nearest ancestor value that is a node.
func (c *Cursor) ParentNode() Node {
	for p := c.Parent(); p != nil; p = p.parent {
		if n, ok := p.value.(Node); ok {
			return n
		}
	}
	return nil
}

// FirstEnclosingFunc returns the nearest node on the path, starting at this
// cursor, for which match returns true.
func (c *Cursor) FirstEnclosingFunc(match func(Node) bool) Node {
	for p := c; p != nil; p = p.parent {
		if n, ok := p.value.(Node); ok && match(n) {
			return n
		}
	}
	return nil
}

// FirstEnclosing returns the nearest value of type T on the path, starting
// at the cursor itself.
func FirstEnclosing[T any](c *Cursor) (T, bool) {
	for p := c; p != nil; p = p.parent {
		if v, ok := p.value.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// PutMessage stores a value on this cursor frame.
func (c *Cursor) PutMessage(key string, value any) {
	if c.messages == nil {
		c.messages = make(map[string]any)
	}
	c.messages[key] = value
}

// Message returns a value stored on this cursor frame.
func (c *Cursor) Message(key string) (any, bool) {
	if c == nil || c.messages == nil {
		return nil, false
	}
	v, ok := c.messages[key]
	return v, ok
}

// NearestMessage returns the value stored under key on the closest frame,
// starting at this cursor and moving toward the root.
func (c *Cursor) NearestMessage(key string) (any, bool) {
	for p := c; p != nil; p = p.parent {
		if v, ok := p.Message(key); ok {
			return v, true
		}
	}
	return nil, false
}
