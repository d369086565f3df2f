package style

import (
	"github.com/google/uuid"

	"github.com/yaklabco/golst/pkg/tree"
)

// Marker attaches a style bundle to a source file. It overrides the bundle
// passed to the formatter for that file.
type Marker struct {
	ID     uuid.UUID
	Bundle *Bundle
}

// NewMarker returns a style marker with a fresh id.
func NewMarker(b *Bundle) Marker {
	return Marker{ID: uuid.New(), Bundle: b}
}

// MarkerID implements tree.Marker.
func (m Marker) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m Marker) MarkerKind() string { return "Style" }

// Attach returns a copy of the source file carrying b, replacing any style
// marker it already had.
func Attach[T tree.SourceFile](file T, b *Bundle) T {
	markers := tree.Remove[Marker](file.Markers()).Add(NewMarker(b))
	return tree.WithMarkers(file, markers)
}

// Of returns the bundle attached to n, or nil.
func Of(n tree.Node) *Bundle {
	if tree.IsNil(n) {
		return nil
	}
	m, ok := tree.FindFirst[Marker](n.Markers())
	if !ok {
		return nil
	}
	return m.Bundle
}
