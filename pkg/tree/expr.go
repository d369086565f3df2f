package tree

// Identifier is a simple name.
type Identifier struct {
	Base
	SimpleName string
	Type       Type
}

// NewIdentifier builds an identifier with a fresh id.
func NewIdentifier(prefix Space, name string, typ Type) *Identifier {
	return &Identifier{Base: Prefixed(prefix), SimpleName: name, Type: typ}
}

// WithBase implements Node.
func (n *Identifier) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Identifier) ExpressionNode() {}

// TypeTreeNode implements TypeTree.
func (*Identifier) TypeTreeNode() {}

// NameTreeNode implements NameTree.
func (*Identifier) NameTreeNode() {}

// NodeType implements Typed.
func (n *Identifier) NodeType() Type { return n.Type }

// WithSimpleName returns a copy with the name replaced.
func (n *Identifier) WithSimpleName(name string) *Identifier {
	c := *n
	c.SimpleName = name
	return &c
}

// WithType returns a copy with the type descriptor replaced.
func (n *Identifier) WithType(t Type) *Identifier {
	c := *n
	c.Type = t
	return &c
}

// WalkChildren implements Node.
func (n *Identifier) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocIdentifierPrefix))
	return &c, nil
}

// FieldAccess is a qualified name or member access such as java.util.List
// or this.items.
type FieldAccess struct {
	Base
	Target Expression

	// Name is the selected member; Before is the space before the dot.
	Name LeftPadded[*Identifier]

	Type Type
}

// WithBase implements Node.
func (n *FieldAccess) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*FieldAccess) ExpressionNode() {}

// StatementNode implements Statement.
func (*FieldAccess) StatementNode() {}

// TypeTreeNode implements TypeTree.
func (*FieldAccess) TypeTreeNode() {}

// NameTreeNode implements NameTree.
func (*FieldAccess) NameTreeNode() {}

// NodeType implements Typed.
func (n *FieldAccess) NodeType() Type { return n.Type }

// SimpleName returns the selected member name.
func (n *FieldAccess) SimpleName() string { return n.Name.Element.SimpleName }

// WalkChildren implements Node.
func (n *FieldAccess) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocFieldAccessPrefix))

	target, ok, err := VisitChild(w, n.Target)
	if err != nil || !ok {
		return nil, err
	}
	c.Target = target
	name, ok, err := VisitLeftPadded(w, n.Name, LocFieldAccessName)
	if err != nil || !ok {
		return nil, err
	}
	c.Name = name
	return &c, nil
}

// QualifiedName renders a name expression as a dotted string without
// whitespace or comments. It is empty for other expressions.
func QualifiedName(n Node) string {
	switch e := n.(type) {
	case *Identifier:
		return e.SimpleName
	case *FieldAccess:
		target := QualifiedName(e.Target)
		if target == "" {
			return ""
		}
		return target + "." + e.Name.Element.SimpleName
	case *ParameterizedType:
		return QualifiedName(e.Clazz)
	}
	return ""
}

// ParameterizedType is a generic type reference such as List<String>.
type ParameterizedType struct {
	Base
	Clazz          NameTree
	TypeParameters *Container[Expression]
	Type           Type
}

// WithBase implements Node.
func (n *ParameterizedType) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*ParameterizedType) ExpressionNode() {}

// TypeTreeNode implements TypeTree.
func (*ParameterizedType) TypeTreeNode() {}

// NameTreeNode implements NameTree.
func (*ParameterizedType) NameTreeNode() {}

// NodeType implements Typed.
func (n *ParameterizedType) NodeType() Type { return n.Type }

// WalkChildren implements Node.
func (n *ParameterizedType) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocParameterizedTypePrefix))

	clazz, ok, err := VisitChild(w, n.Clazz)
	if err != nil || !ok {
		return nil, err
	}
	c.Clazz = clazz
	if c.TypeParameters, err = VisitContainerPtr(w, n.TypeParameters, LocTypeArguments, LocTypeArgumentSuffix); err != nil {
		return nil, err
	}
	return &c, nil
}

// Primitive is a primitive type keyword such as int or boolean.
type Primitive struct {
	Base
	Keyword string
}

// WithBase implements Node.
func (n *Primitive) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// TypeTreeNode implements TypeTree.
func (*Primitive) TypeTreeNode() {}

// ExpressionNode implements Expression.
func (*Primitive) ExpressionNode() {}

// NodeType implements Typed.
func (n *Primitive) NodeType() Type { return &PrimitiveType{Keyword: n.Keyword} }

// WalkChildren implements Node.
func (n *Primitive) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocPrimitivePrefix))
	return &c, nil
}

// Literal is a constant value. ValueSource is the exact source text.
type Literal struct {
	Base
	Value       any
	ValueSource string
	Type        Type
}

// WithBase implements Node.
func (n *Literal) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Literal) ExpressionNode() {}

// NodeType implements Typed.
func (n *Literal) NodeType() Type { return n.Type }

// WalkChildren implements Node.
func (n *Literal) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocLiteralPrefix))
	return &c, nil
}

// Binary is an infix expression.
type Binary struct {
	Base
	Left     Expression
	Operator LeftPadded[BinaryOperator]
	Right    Expression
	Type     Type
}

// WithBase implements Node.
func (n *Binary) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Binary) ExpressionNode() {}

// NodeType implements Typed.
func (n *Binary) NodeType() Type { return n.Type }

// WalkChildren implements Node.
func (n *Binary) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocBinaryPrefix))

	left, ok, err := VisitChild(w, n.Left)
	if err != nil || !ok {
		return nil, err
	}
	c.Left = left
	c.Operator = VisitLeftPaddedValue(w, n.Operator, LocBinaryOperator)
	right, ok, err := VisitChild(w, n.Right)
	if err != nil || !ok {
		return nil, err
	}
	c.Right = right
	return &c, nil
}

// Unary is a prefix or postfix operator applied to one operand. For postfix
// operators, Operator.Before is the space between operand and operator.
type Unary struct {
	Base
	Operator   LeftPadded[UnaryOperator]
	Expression Expression
	Type       Type
}

// WithBase implements Node.
func (n *Unary) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Unary) ExpressionNode() {}

// StatementNode implements Statement.
func (*Unary) StatementNode() {}

// NodeType implements Typed.
func (n *Unary) NodeType() Type { return n.Type }

// WalkChildren implements Node.
func (n *Unary) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocUnaryPrefix))

	c.Operator = VisitLeftPaddedValue(w, n.Operator, LocUnaryOperator)
	expr, ok, err := VisitChild(w, n.Expression)
	if err != nil || !ok {
		return nil, err
	}
	c.Expression = expr
	return &c, nil
}

// Assignment assigns or compound-assigns a value to a variable.
type Assignment struct {
	Base
	Variable Expression

	// Operator is "=" or a compound operator; Assignment.Before is the space
	// before it.
	Operator   AssignmentOperator
	Assignment LeftPadded[Expression]

	Type Type
}

// WithBase implements Node.
func (n *Assignment) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Assignment) ExpressionNode() {}

// StatementNode implements Statement.
func (*Assignment) StatementNode() {}

// NodeType implements Typed.
func (n *Assignment) NodeType() Type { return n.Type }

// WalkChildren implements Node.
func (n *Assignment) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocAssignmentPrefix))

	variable, ok, err := VisitChild(w, n.Variable)
	if err != nil || !ok {
		return nil, err
	}
	c.Variable = variable
	assign, ok, err := VisitLeftPadded(w, n.Assignment, LocAssignmentOperator)
	if err != nil || !ok {
		return nil, err
	}
	c.Assignment = assign
	return &c, nil
}

// MethodInvocation is a method call.
type MethodInvocation struct {
	Base

	// Select is the receiver; After is the space before the dot.
	Select *RightPadded[Expression]

	TypeParameters *Container[Expression]
	Name           *Identifier
	Arguments      Container[Expression]
	Type           Type
}

// WithBase implements Node.
func (n *MethodInvocation) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*MethodInvocation) ExpressionNode() {}

// StatementNode implements Statement.
func (*MethodInvocation) StatementNode() {}

// NodeType implements Typed.
func (n *MethodInvocation) NodeType() Type { return n.Type }

// WithArguments returns a copy with the arguments replaced.
func (n *MethodInvocation) WithArguments(args Container[Expression]) *MethodInvocation {
	c := *n
	c.Arguments = args
	return &c
}

// WalkChildren implements Node.
func (n *MethodInvocation) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocMethodInvocationPrefix))

	var err error
	if c.Select, err = VisitRightPaddedPtr(w, n.Select, LocMethodSelectSuffix); err != nil {
		return nil, err
	}
	if c.TypeParameters, err = VisitContainerPtr(w, n.TypeParameters, LocTypeArguments, LocTypeArgumentSuffix); err != nil {
		return nil, err
	}
	name, ok, err := VisitChild(w, n.Name)
	if err != nil || !ok {
		return nil, err
	}
	c.Name = name
	if c.Arguments, err = VisitContainer(w, n.Arguments, LocMethodInvocationArguments, LocMethodInvocationArgumentSuffix); err != nil {
		return nil, err
	}
	return &c, nil
}

// NewClass is an instance creation expression.
type NewClass struct {
	Base

	// Enclosing is the outer instance of an inner class creation.
	Enclosing *RightPadded[Expression]

	// New is the space before the new keyword.
	New Space

	Clazz     TypeTree
	Arguments Container[Expression]

	// Body is the anonymous class body, if any.
	Body *Block

	Type Type
}

// WithBase implements Node.
func (n *NewClass) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*NewClass) ExpressionNode() {}

// StatementNode implements Statement.
func (*NewClass) StatementNode() {}

// NodeType implements Typed.
func (n *NewClass) NodeType() Type { return n.Type }

// WalkChildren implements Node.
func (n *NewClass) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocNewClassPrefix))

	var err error
	if c.Enclosing, err = VisitRightPaddedPtr(w, n.Enclosing, LocNewClassEnclosingSuffix); err != nil {
		return nil, err
	}
	c.New = w.Space(n.New, LocNewClassNew)
	clazz, ok, err := VisitChild(w, n.Clazz)
	if err != nil || !ok {
		return nil, err
	}
	c.Clazz = clazz
	if c.Arguments, err = VisitContainer(w, n.Arguments, LocNewClassArguments, LocNewClassArgumentSuffix); err != nil {
		return nil, err
	}
	if c.Body, _, err = VisitChild(w, n.Body); err != nil {
		return nil, err
	}
	return &c, nil
}

// Parentheses is a parenthesized expression.
type Parentheses struct {
	Base
	Tree RightPadded[Expression]
}

// WithBase implements Node.
func (n *Parentheses) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Parentheses) ExpressionNode() {}

// WalkChildren implements Node.
func (n *Parentheses) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocParenthesesPrefix))

	tree, ok, err := VisitRightPadded(w, n.Tree, LocParenthesesSuffix)
	if err != nil || !ok {
		return nil, err
	}
	c.Tree = tree
	return &c, nil
}

// ControlParentheses is the parenthesized condition of a control statement.
type ControlParentheses struct {
	Base
	Tree RightPadded[Expression]
}

// WithBase implements Node.
func (n *ControlParentheses) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*ControlParentheses) ExpressionNode() {}

// WalkChildren implements Node.
func (n *ControlParentheses) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocControlParenthesesPrefix))

	tree, ok, err := VisitRightPadded(w, n.Tree, LocControlParenthesesSuffix)
	if err != nil || !ok {
		return nil, err
	}
	c.Tree = tree
	return &c, nil
}

// Lambda is a lambda expression.
type Lambda struct {
	Base
	Parameters *LambdaParameters

	// Arrow is the space before "->".
	Arrow Space

	// Body is an expression or a block.
	Body Node

	Type Type
}

// WithBase implements Node.
func (n *Lambda) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Lambda) ExpressionNode() {}

// NodeType implements Typed.
func (n *Lambda) NodeType() Type { return n.Type }

// WalkChildren implements Node.
func (n *Lambda) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocLambdaPrefix))

	params, ok, err := VisitChild(w, n.Parameters)
	if err != nil || !ok {
		return nil, err
	}
	c.Parameters = params
	c.Arrow = w.Space(n.Arrow, LocLambdaArrow)
	body, ok, err := VisitChild(w, n.Body)
	if err != nil || !ok {
		return nil, err
	}
	c.Body = body
	return &c, nil
}

// LambdaParameters is the parameter list of a lambda.
type LambdaParameters struct {
	Base
	Parenthesized bool
	Parameters    []RightPadded[Node]
}

// WithBase implements Node.
func (n *LambdaParameters) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// WalkChildren implements Node.
func (n *LambdaParameters) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocLambdaParametersPrefix))

	var err error
	if c.Parameters, err = VisitRightPaddedList(w, n.Parameters, LocLambdaParameterSuffix); err != nil {
		return nil, err
	}
	return &c, nil
}

// Ternary is a conditional expression.
type Ternary struct {
	Base
	Condition Expression
	TruePart  LeftPadded[Expression]
	FalsePart LeftPadded[Expression]
	Type      Type
}

// WithBase implements Node.
func (n *Ternary) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Ternary) ExpressionNode() {}

// NodeType implements Typed.
func (n *Ternary) NodeType() Type { return n.Type }

// WalkChildren implements Node.
func (n *Ternary) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocTernaryPrefix))

	cond, ok, err := VisitChild(w, n.Condition)
	if err != nil || !ok {
		return nil, err
	}
	c.Condition = cond
	if c.TruePart, ok, err = VisitLeftPadded(w, n.TruePart, LocTernaryTrue); err != nil || !ok {
		return nil, err
	}
	if c.FalsePart, ok, err = VisitLeftPadded(w, n.FalsePart, LocTernaryFalse); err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

// InstanceOf is a type test. The extension language spells it "is" or "!is".
type InstanceOf struct {
	Base

	// Expression is the tested value; After is the space before the keyword.
	Expression RightPadded[Expression]

	Clazz TypeTree
	Type  Type
}

// WithBase implements Node.
func (n *InstanceOf) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*InstanceOf) ExpressionNode() {}

// NodeType implements Typed.
func (n *InstanceOf) NodeType() Type { return n.Type }

// WalkChildren implements Node.
func (n *InstanceOf) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocInstanceOfPrefix))

	expr, ok, err := VisitRightPadded(w, n.Expression, LocInstanceOfSuffix)
	if err != nil || !ok {
		return nil, err
	}
	c.Expression = expr
	clazz, ok, err := VisitChild(w, n.Clazz)
	if err != nil || !ok {
		return nil, err
	}
	c.Clazz = clazz
	return &c, nil
}

// TypeCast is a cast such as (String) value.
type TypeCast struct {
	Base
	Clazz      *ControlParentheses
	Expression Expression
}

// WithBase implements Node.
func (n *TypeCast) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*TypeCast) ExpressionNode() {}

// WalkChildren implements Node.
func (n *TypeCast) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocTypeCastPrefix))

	clazz, ok, err := VisitChild(w, n.Clazz)
	if err != nil || !ok {
		return nil, err
	}
	c.Clazz = clazz
	expr, ok, err := VisitChild(w, n.Expression)
	if err != nil || !ok {
		return nil, err
	}
	c.Expression = expr
	return &c, nil
}

// Wildcard is a type argument of unknown type: ?, ? extends T or ? super T.
// With the Extension marker it prints *, out T or in T.
type Wildcard struct {
	Base

	// Bound is nil for an unbounded wildcard. Before is the space in front
	// of the bound keyword.
	Bound *LeftPadded[WildcardBound]

	// BoundedType is nil exactly when Bound is.
	BoundedType TypeTree
}

// WithBase implements Node.
func (n *Wildcard) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Wildcard) ExpressionNode() {}

// TypeTreeNode implements TypeTree.
func (*Wildcard) TypeTreeNode() {}

// WalkChildren implements Node.
func (n *Wildcard) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocWildcardPrefix))

	if n.Bound == nil {
		return &c, nil
	}
	bound := VisitLeftPaddedValue(w, *n.Bound, LocWildcardBound)
	c.Bound = &bound
	bounded, ok, err := VisitChild(w, n.BoundedType)
	if err != nil {
		return nil, err
	}
	if !ok {
		// A bound without a type can not print.
		c.Bound = nil
	}
	c.BoundedType = bounded
	return &c, nil
}
