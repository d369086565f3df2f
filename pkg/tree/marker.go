package tree

import (
	"github.com/google/uuid"
)

// Marker is a typed annotation attached to a node or padding wrapper. Markers
// signal syntactic or semantic variants without changing the node kind.
//
// Implementations are small value types; lookups are by concrete type.
type Marker interface {
	// MarkerID returns the unique id of this marker instance.
	MarkerID() uuid.UUID

	// MarkerKind returns a stable tag naming the marker variant.
	MarkerKind() string
}

// Markers is an ordered, immutable collection of markers.
// The zero value is an empty collection.
type Markers struct {
	entries []Marker
}

// NewMarkers returns a collection holding the given markers in order.
func NewMarkers(ms ...Marker) Markers {
	if len(ms) == 0 {
		return Markers{}
	}
	entries := make([]Marker, len(ms))
	copy(entries, ms)
	return Markers{entries: entries}
}

// Len returns the number of markers.
func (m Markers) Len() int {
	return len(m.entries)
}

// IsEmpty returns true if the collection holds no markers.
func (m Markers) IsEmpty() bool {
	return len(m.entries) == 0
}

// All returns a copy of the markers in order.
func (m Markers) All() []Marker {
	out := make([]Marker, len(m.entries))
	copy(out, m.entries)
	return out
}

// Add returns a new collection with mk appended.
func (m Markers) Add(mk Marker) Markers {
	entries := make([]Marker, len(m.entries), len(m.entries)+1)
	copy(entries, m.entries)
	return Markers{entries: append(entries, mk)}
}

// Filter returns a new collection holding only the markers for which keep
// returns true.
func (m Markers) Filter(keep func(Marker) bool) Markers {
	var entries []Marker
	for _, mk := range m.entries {
		if keep(mk) {
			entries = append(entries, mk)
		}
	}
	return Markers{entries: entries}
}

// Kinds returns the kind tags of every marker, in order.
func (m Markers) Kinds() []string {
	kinds := make([]string, 0, len(m.entries))
	for _, mk := range m.entries {
		kinds = append(kinds, mk.MarkerKind())
	}
	return kinds
}

// FindFirst returns the first marker of variant M.
func FindFirst[M Marker](m Markers) (M, bool) {
	for _, mk := range m.entries {
		if found, ok := mk.(M); ok {
			return found, true
		}
	}
	var zero M
	return zero, false
}

// Has returns true if the collection holds a marker of variant M.
func Has[M Marker](m Markers) bool {
	_, ok := FindFirst[M](m)
	return ok
}

// AddIfAbsent appends mk unless a marker of the same variant is present.
func AddIfAbsent[M Marker](m Markers, mk M) Markers {
	if Has[M](m) {
		return m
	}
	return m.Add(mk)
}

// Remove returns a new collection without any marker of variant M.
func Remove[M Marker](m Markers) Markers {
	return m.Filter(func(mk Marker) bool {
		_, ok := mk.(M)
		return !ok
	})
}

// Compute replaces the first marker of variant M with fn(existing, true), or
// appends fn(zero, false) when none is present.
func Compute[M Marker](m Markers, fn func(existing M, found bool) M) Markers {
	for i, mk := range m.entries {
		if found, ok := mk.(M); ok {
			entries := make([]Marker, len(m.entries))
			copy(entries, m.entries)
			entries[i] = fn(found, true)
			return Markers{entries: entries}
		}
	}
	var zero M
	return m.Add(fn(zero, false))
}

// Semicolon marks a padded element followed by a statement terminator.
type Semicolon struct {
	ID uuid.UUID
}

// NewSemicolon returns a Semicolon marker with a fresh id.
func NewSemicolon() Semicolon { return Semicolon{ID: uuid.New()} }

// MarkerID implements Marker.
func (m Semicolon) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements Marker.
func (m Semicolon) MarkerKind() string { return "Semicolon" }

// TrailingComma marks the last element of a container that is followed by a
// comma. Suffix is the space between the comma and the closing delimiter.
type TrailingComma struct {
	ID     uuid.UUID
	Suffix Space
}

// NewTrailingComma returns a TrailingComma marker with a fresh id.
func NewTrailingComma(suffix Space) TrailingComma {
	return TrailingComma{ID: uuid.New(), Suffix: suffix}
}

// MarkerID implements Marker.
func (m TrailingComma) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements Marker.
func (m TrailingComma) MarkerKind() string { return "TrailingComma" }

// OmitParentheses marks a container printed without its delimiters.
type OmitParentheses struct {
	ID uuid.UUID
}

// NewOmitParentheses returns an OmitParentheses marker with a fresh id.
func NewOmitParentheses() OmitParentheses { return OmitParentheses{ID: uuid.New()} }

// MarkerID implements Marker.
func (m OmitParentheses) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements Marker.
func (m OmitParentheses) MarkerKind() string { return "OmitParentheses" }

// Implicit marks a synthesized element that has no source text. Printers
// skip it entirely.
type Implicit struct {
	ID uuid.UUID
}

// NewImplicit returns an Implicit marker with a fresh id.
func NewImplicit() Implicit { return Implicit{ID: uuid.New()} }

// MarkerID implements Marker.
func (m Implicit) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements Marker.
func (m Implicit) MarkerKind() string { return "Implicit" }

// ImplicitReturn marks a return whose keyword is absent from the source, such
// as the last expression of a lambda.
type ImplicitReturn struct {
	ID uuid.UUID
}

// NewImplicitReturn returns an ImplicitReturn marker with a fresh id.
func NewImplicitReturn() ImplicitReturn { return ImplicitReturn{ID: uuid.New()} }

// MarkerID implements Marker.
func (m ImplicitReturn) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements Marker.
func (m ImplicitReturn) MarkerKind() string { return "ImplicitReturn" }

// Synthesized marks a node built by a transformation rather than parsed.
// Printers substitute location defaults for its empty spans.
type Synthesized struct {
	ID uuid.UUID
}

// NewSynthesized returns a Synthesized marker with a fresh id.
func NewSynthesized() Synthesized { return Synthesized{ID: uuid.New()} }

// MarkerID implements Marker.
func (m Synthesized) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements Marker.
func (m Synthesized) MarkerKind() string { return "Synthesized" }

// SearchResult marks a node matched by a query. Printers may render it as an
// inline comment for review.
type SearchResult struct {
	ID          uuid.UUID
	Description string
}

// NewSearchResult returns a SearchResult marker with a fresh id.
func NewSearchResult(description string) SearchResult {
	return SearchResult{ID: uuid.New(), Description: description}
}

// MarkerID implements Marker.
func (m SearchResult) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements Marker.
func (m SearchResult) MarkerKind() string { return "SearchResult" }
