package tree

// LeftPadded is an element preceded by a captured space, such as the space
// before "=" in an initializer or before a binary operator.
type LeftPadded[T any] struct {
	Before  Space
	Element T
	Markers Markers
}

// LeftPad wraps element with a preceding space.
func LeftPad[T any](before Space, element T) LeftPadded[T] {
	return LeftPadded[T]{Before: before, Element: element}
}

// WithBefore returns a copy with the preceding space replaced.
func (p LeftPadded[T]) WithBefore(before Space) LeftPadded[T] {
	p.Before = before
	return p
}

// WithElement returns a copy with the element replaced.
func (p LeftPadded[T]) WithElement(element T) LeftPadded[T] {
	p.Element = element
	return p
}

// WithMarkers returns a copy with the markers replaced.
func (p LeftPadded[T]) WithMarkers(markers Markers) LeftPadded[T] {
	p.Markers = markers
	return p
}

// RightPadded is an element followed by a captured space, such as the space
// before a comma or a statement terminator.
type RightPadded[T any] struct {
	Element T
	After   Space
	Markers Markers
}

// RightPad wraps element with a following space.
func RightPad[T any](element T, after Space) RightPadded[T] {
	return RightPadded[T]{Element: element, After: after}
}

// WithElement returns a copy with the element replaced.
func (p RightPadded[T]) WithElement(element T) RightPadded[T] {
	p.Element = element
	return p
}

// WithAfter returns a copy with the following space replaced.
func (p RightPadded[T]) WithAfter(after Space) RightPadded[T] {
	p.After = after
	return p
}

// WithMarkers returns a copy with the markers replaced.
func (p RightPadded[T]) WithMarkers(markers Markers) RightPadded[T] {
	p.Markers = markers
	return p
}

// Container is a delimited sequence of right-padded elements, such as an
// argument list. Before is the space before the opening delimiter.
type Container[T any] struct {
	Before   Space
	Elements []RightPadded[T]
	Markers  Markers
}

// ContainerOf builds a container from already padded elements.
func ContainerOf[T any](before Space, elements ...RightPadded[T]) Container[T] {
	return Container[T]{Before: before, Elements: elements}
}

// WithBefore returns a copy with the space before the opening delimiter
// replaced.
func (c Container[T]) WithBefore(before Space) Container[T] {
	c.Before = before
	return c
}

// WithElements returns a copy with the padded elements replaced.
func (c Container[T]) WithElements(elements []RightPadded[T]) Container[T] {
	c.Elements = elements
	return c
}

// WithMarkers returns a copy with the markers replaced.
func (c Container[T]) WithMarkers(markers Markers) Container[T] {
	c.Markers = markers
	return c
}

// Values returns the bare elements without their padding.
func (c Container[T]) Values() []T {
	out := make([]T, 0, len(c.Elements))
	for _, e := range c.Elements {
		out = append(out, e.Element)
	}
	return out
}

// Len returns the number of elements.
func (c Container[T]) Len() int {
	return len(c.Elements)
}

// Unpad returns the bare elements of a padded list.
func Unpad[T any](list []RightPadded[T]) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		out = append(out, e.Element)
	}
	return out
}
