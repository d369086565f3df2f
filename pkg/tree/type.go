package tree

import (
	"strings"
)

// Type is an opaque type descriptor supplied by a type resolver.
type Type interface {
	// TypeString renders the type for diagnostics.
	TypeString() string
}

// Class describes a named class or interface type.
type Class struct {
	FullyQualifiedName string
}

// NewClassType returns the descriptor for a fully qualified class name.
func NewClassType(fqn string) *Class {
	return &Class{FullyQualifiedName: fqn}
}

// TypeString implements Type.
func (c *Class) TypeString() string { return c.FullyQualifiedName }

// SimpleName returns the last segment of the qualified name.
func (c *Class) SimpleName() string {
	if i := strings.LastIndexByte(c.FullyQualifiedName, '.'); i >= 0 {
		return c.FullyQualifiedName[i+1:]
	}
	return c.FullyQualifiedName
}

// PackageName returns everything before the last segment of the qualified
// name.
func (c *Class) PackageName() string {
	if i := strings.LastIndexByte(c.FullyQualifiedName, '.'); i >= 0 {
		return c.FullyQualifiedName[:i]
	}
	return ""
}

// Parameterized describes a generic class with type arguments.
type Parameterized struct {
	Class          *Class
	TypeParameters []Type
}

// TypeString implements Type.
func (p *Parameterized) TypeString() string {
	var sb strings.Builder
	sb.WriteString(p.Class.TypeString())
	sb.WriteByte('<')
	for i, t := range p.TypeParameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		if t == nil {
			sb.WriteByte('?')
			continue
		}
		sb.WriteString(t.TypeString())
	}
	sb.WriteByte('>')
	return sb.String()
}

// PrimitiveType describes a built-in value type such as int or boolean.
type PrimitiveType struct {
	Keyword string
}

// TypeString implements Type.
func (p *PrimitiveType) TypeString() string { return p.Keyword }

// FullyQualifiedName returns the class name behind t, unwrapping
// parameterized types. It is empty for primitives and nil.
func FullyQualifiedName(t Type) string {
	switch tt := t.(type) {
	case *Class:
		return tt.FullyQualifiedName
	case *Parameterized:
		if tt.Class != nil {
			return tt.Class.FullyQualifiedName
		}
	}
	return ""
}

// IsOfClassType reports whether t names the class fqn, ignoring type
// arguments.
func IsOfClassType(t Type, fqn string) bool {
	return t != nil && FullyQualifiedName(t) == fqn
}

// WithClass returns t with its class replaced, keeping type arguments.
func WithClass(t Type, c *Class) Type {
	if p, ok := t.(*Parameterized); ok {
		return &Parameterized{Class: c, TypeParameters: p.TypeParameters}
	}
	return c
}
