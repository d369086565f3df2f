package tree

//go:generate stringer -type=BinaryOperator,UnaryOperator,AssignmentOperator -trimprefix=Op -output=operator_string.go
//go:generate stringer -type=ClassKind -trimprefix=Kind
//go:generate stringer -type=WildcardBound -trimprefix=Bound

// BinaryOperator is the operator of a Binary node.
type BinaryOperator int

// Binary operators.
const (
	OpAdd BinaryOperator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpLessThan
	OpGreaterThan
	OpLessThanOrEqual
	OpGreaterThanOrEqual
	OpEqual
	OpNotEqual
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLeftShift
	OpRightShift
	OpUnsignedRightShift
	OpOr
	OpAnd
)

//nolint:gochecknoglobals // Lookup table.
var binaryTokens = [...]string{
	OpAdd:                "+",
	OpSubtract:           "-",
	OpMultiply:           "*",
	OpDivide:             "/",
	OpModulo:             "%",
	OpLessThan:           "<",
	OpGreaterThan:        ">",
	OpLessThanOrEqual:    "<=",
	OpGreaterThanOrEqual: ">=",
	OpEqual:              "==",
	OpNotEqual:           "!=",
	OpBitAnd:             "&",
	OpBitOr:              "|",
	OpBitXor:             "^",
	OpLeftShift:          "<<",
	OpRightShift:         ">>",
	OpUnsignedRightShift: ">>>",
	OpOr:                 "||",
	OpAnd:                "&&",
}

// Token returns the source text of the operator.
func (op BinaryOperator) Token() string {
	if op < 0 || int(op) >= len(binaryTokens) {
		return ""
	}
	return binaryTokens[op]
}

// BinaryOperatorFor returns the operator spelled by token.
func BinaryOperatorFor(token string) (BinaryOperator, bool) {
	for i, t := range binaryTokens {
		if t == token {
			return BinaryOperator(i), true
		}
	}
	return 0, false
}

// IsLogical reports whether op is && or ||.
func (op BinaryOperator) IsLogical() bool { return op == OpAnd || op == OpOr }

// IsEquality reports whether op is == or !=.
func (op BinaryOperator) IsEquality() bool { return op == OpEqual || op == OpNotEqual }

// IsRelational reports whether op compares order.
func (op BinaryOperator) IsRelational() bool {
	return op >= OpLessThan && op <= OpGreaterThanOrEqual
}

// IsAdditive reports whether op is + or -.
func (op BinaryOperator) IsAdditive() bool { return op == OpAdd || op == OpSubtract }

// IsMultiplicative reports whether op is *, / or %.
func (op BinaryOperator) IsMultiplicative() bool {
	return op == OpMultiply || op == OpDivide || op == OpModulo
}

// IsBitwise reports whether op is a bitwise or shift operator.
func (op BinaryOperator) IsBitwise() bool {
	return op >= OpBitAnd && op <= OpUnsignedRightShift
}

// UnaryOperator is the operator of a Unary node.
type UnaryOperator int

// Unary operators.
const (
	OpPreIncrement UnaryOperator = iota
	OpPreDecrement
	OpPostIncrement
	OpPostDecrement
	OpPositive
	OpNegative
	OpComplement
	OpNot
)

//nolint:gochecknoglobals // Lookup table.
var unaryTokens = [...]string{
	OpPreIncrement:  "++",
	OpPreDecrement:  "--",
	OpPostIncrement: "++",
	OpPostDecrement: "--",
	OpPositive:      "+",
	OpNegative:      "-",
	OpComplement:    "~",
	OpNot:           "!",
}

// Token returns the source text of the operator.
func (op UnaryOperator) Token() string {
	if op < 0 || int(op) >= len(unaryTokens) {
		return ""
	}
	return unaryTokens[op]
}

// IsPostfix reports whether the operator follows its operand.
func (op UnaryOperator) IsPostfix() bool {
	return op == OpPostIncrement || op == OpPostDecrement
}

// AssignmentOperator is the operator of an Assignment node.
type AssignmentOperator int

// Assignment operators.
const (
	OpAssign AssignmentOperator = iota
	OpAddAssign
	OpSubtractAssign
	OpMultiplyAssign
	OpDivideAssign
	OpModuloAssign
	OpBitAndAssign
	OpBitOrAssign
	OpBitXorAssign
	OpLeftShiftAssign
	OpRightShiftAssign
	OpUnsignedRightShiftAssign
)

//nolint:gochecknoglobals // Lookup table.
var assignmentTokens = [...]string{
	OpAssign:                   "=",
	OpAddAssign:                "+=",
	OpSubtractAssign:           "-=",
	OpMultiplyAssign:           "*=",
	OpDivideAssign:             "/=",
	OpModuloAssign:             "%=",
	OpBitAndAssign:             "&=",
	OpBitOrAssign:              "|=",
	OpBitXorAssign:             "^=",
	OpLeftShiftAssign:          "<<=",
	OpRightShiftAssign:         ">>=",
	OpUnsignedRightShiftAssign: ">>>=",
}

// Token returns the source text of the operator.
func (op AssignmentOperator) Token() string {
	if op < 0 || int(op) >= len(assignmentTokens) {
		return ""
	}
	return assignmentTokens[op]
}

// AssignmentOperatorFor returns the operator spelled by token.
func AssignmentOperatorFor(token string) (AssignmentOperator, bool) {
	for i, t := range assignmentTokens {
		if t == token {
			return AssignmentOperator(i), true
		}
	}
	return 0, false
}

// ClassKind is the keyword that introduces a type declaration.
type ClassKind int

// Class kinds.
const (
	KindClass ClassKind = iota
	KindInterface
	KindEnum
	KindRecord
	KindAnnotation
)

//nolint:gochecknoglobals // Lookup table.
var classKindTokens = [...]string{
	KindClass:      "class",
	KindInterface:  "interface",
	KindEnum:       "enum",
	KindRecord:     "record",
	KindAnnotation: "@interface",
}

// Token returns the keyword of the kind.
func (k ClassKind) Token() string {
	if k < 0 || int(k) >= len(classKindTokens) {
		return ""
	}
	return classKindTokens[k]
}

// WildcardBound is the keyword that bounds a Wildcard.
type WildcardBound int

// Wildcard bounds.
const (
	BoundExtends WildcardBound = iota
	BoundSuper
)

// Token returns the keyword of the bound, or the extension-language
// variance keyword when ext is set.
func (b WildcardBound) Token(ext bool) string {
	switch {
	case b == BoundExtends && ext:
		return "out"
	case b == BoundExtends:
		return "extends"
	case b == BoundSuper && ext:
		return "in"
	case b == BoundSuper:
		return "super"
	}
	return ""
}
