package printer

import (
	"strings"

	"github.com/yaklabco/golst/pkg/tree"
)

// Layer identifies which printer rendered a node.
type Layer int

// Printer layers.
const (
	LayerHost Layer = iota
	LayerExtension
)

// String returns the layer name.
func (l Layer) String() string {
	if l == LayerExtension {
		return "extension"
	}
	return "host"
}

// Output accumulates printed text. It carries the marker printer and the
// cursor of the node being printed.
type Output struct {
	sb            strings.Builder
	markerPrinter MarkerPrinter
	trace         func(layer Layer, n tree.Node)
	cursor        *tree.Cursor
}

// NewOutput returns an empty output using mp for marker text.
func NewOutput(mp MarkerPrinter) *Output {
	if mp == nil {
		mp = DefaultMarkerPrinter{}
	}
	return &Output{markerPrinter: mp, cursor: tree.RootCursor()}
}

// Append adds text to the output.
func (o *Output) Append(s string) *Output {
	o.sb.WriteString(s)
	return o
}

// String returns everything printed so far.
func (o *Output) String() string {
	return o.sb.String()
}

// Len returns the number of bytes printed so far.
func (o *Output) Len() int {
	return o.sb.Len()
}

// Cursor returns the cursor of the node being printed.
func (o *Output) Cursor() *tree.Cursor {
	return o.cursor
}

// MarkerPrinter returns the marker printer in use.
func (o *Output) MarkerPrinter() MarkerPrinter {
	return o.markerPrinter
}

func (o *Output) push(n tree.Node) {
	o.cursor = tree.NewCursor(o.cursor, n)
}

func (o *Output) pop() {
	o.cursor = o.cursor.Parent()
}

func (o *Output) traced(layer Layer, n tree.Node) {
	if o.trace != nil {
		o.trace(layer, n)
	}
}
