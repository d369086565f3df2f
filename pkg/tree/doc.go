// Package tree defines the lossless semantic tree shared by every front end.
//
// # Losslessness
//
// Every byte of the source that is not part of a token lives in a Space:
// the Prefix of the node that follows it, or the Before/After span of a
// padding wrapper (LeftPadded, RightPadded, Container). Printing a parsed
// tree with no edits reproduces the input exactly.
//
// # Immutability
//
// Nodes are never mutated. Walk rebuilds the tree from the values a Visitor
// returns and shares every subtree in which nothing changed. A Cursor gives
// hooks access to the enclosing path without parent pointers.
//
// # Markers
//
// Markers attach typed variants to nodes and padding wrappers. Extension
// languages reuse host node shapes and mark the differences, so printing
// stays a pure function of kind, children and markers.
package tree
