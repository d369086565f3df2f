package ktree

import (
	"github.com/google/uuid"

	"github.com/yaklabco/golst/pkg/tree"
)

// LogicalComma marks an || Binary that the extension language spells as a
// comma, as in when-branch conditions.
type LogicalComma struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m LogicalComma) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m LogicalComma) MarkerKind() string { return "LogicalComma" }

// OmitBraces marks a Block printed without braces.
type OmitBraces struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m OmitBraces) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m OmitBraces) MarkerKind() string { return "OmitBraces" }

// SingleExpressionBlock marks a function body written as "= expression".
type SingleExpressionBlock struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m SingleExpressionBlock) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m SingleExpressionBlock) MarkerKind() string { return "SingleExpressionBlock" }

// IsNullSafe marks a member access or call that uses "?." instead of ".".
type IsNullSafe struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m IsNullSafe) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m IsNullSafe) MarkerKind() string { return "IsNullSafe" }

// CheckNotNull marks an expression followed by "!!". Prefix is the space
// before the operator.
type CheckNotNull struct {
	ID     uuid.UUID
	Prefix tree.Space
}

// MarkerID implements tree.Marker.
func (m CheckNotNull) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m CheckNotNull) MarkerKind() string { return "CheckNotNull" }

// IsNullable marks a type reference followed by "?". Prefix is the space
// before the question mark.
type IsNullable struct {
	ID     uuid.UUID
	Prefix tree.Space
}

// MarkerID implements tree.Marker.
func (m IsNullable) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m IsNullable) MarkerKind() string { return "IsNullable" }

// TypeReferencePrefix marks a declaration whose type follows the name after
// a colon. Prefix is the space before the colon.
type TypeReferencePrefix struct {
	ID     uuid.UUID
	Prefix tree.Space
}

// MarkerID implements tree.Marker.
func (m TypeReferencePrefix) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m TypeReferencePrefix) MarkerKind() string { return "TypeReferencePrefix" }

// By marks a delegated property whose initializer is introduced by "by".
type By struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m By) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m By) MarkerKind() string { return "By" }

// OmitEquals marks an initializer printed without "=".
type OmitEquals struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m OmitEquals) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m OmitEquals) MarkerKind() string { return "OmitEquals" }

// NotIs marks a negated type test printed as "!is".
type NotIs struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m NotIs) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m NotIs) MarkerKind() string { return "NotIs" }

// TrailingLambdaArgument marks the last argument of a call written after the
// closing parenthesis.
type TrailingLambdaArgument struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m TrailingLambdaArgument) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m TrailingLambdaArgument) MarkerKind() string { return "TrailingLambdaArgument" }

// SpreadArgument marks an argument preceded by the spread operator "*".
// Prefix is the space between the operator and the argument.
type SpreadArgument struct {
	ID     uuid.UUID
	Prefix tree.Space
}

// MarkerID implements tree.Marker.
func (m SpreadArgument) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m SpreadArgument) MarkerKind() string { return "SpreadArgument" }

// AnonymousFunction marks a method declaration written as an anonymous "fun".
type AnonymousFunction struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m AnonymousFunction) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m AnonymousFunction) MarkerKind() string { return "AnonymousFunction" }

// KObject marks a class declaration introduced by "object" instead of its
// kind keyword.
type KObject struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m KObject) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m KObject) MarkerKind() string { return "KObject" }

// Extension marks a host node written in extension-language syntax where the
// two languages spell the same construct differently, such as "is" for
// instanceof or ":" for extends.
type Extension struct {
	ID uuid.UUID
}

// MarkerID implements tree.Marker.
func (m Extension) MarkerID() uuid.UUID { return m.ID }

// MarkerKind implements tree.Marker.
func (m Extension) MarkerKind() string { return "Extension" }

// Mark returns a new marker of variant M with a fresh id. Prefix-carrying
// variants start with an empty prefix.
func Mark[M tree.Marker]() M {
	var m M
	var out any
	id := uuid.New()
	switch any(m).(type) {
	case LogicalComma:
		out = LogicalComma{ID: id}
	case OmitBraces:
		out = OmitBraces{ID: id}
	case SingleExpressionBlock:
		out = SingleExpressionBlock{ID: id}
	case IsNullSafe:
		out = IsNullSafe{ID: id}
	case CheckNotNull:
		out = CheckNotNull{ID: id}
	case IsNullable:
		out = IsNullable{ID: id}
	case TypeReferencePrefix:
		out = TypeReferencePrefix{ID: id}
	case By:
		out = By{ID: id}
	case OmitEquals:
		out = OmitEquals{ID: id}
	case NotIs:
		out = NotIs{ID: id}
	case TrailingLambdaArgument:
		out = TrailingLambdaArgument{ID: id}
	case SpreadArgument:
		out = SpreadArgument{ID: id}
	case AnonymousFunction:
		out = AnonymousFunction{ID: id}
	case KObject:
		out = KObject{ID: id}
	case Extension:
		out = Extension{ID: id}
	default:
		return m
	}
	return out.(M)
}
