// Package ktree defines the node kinds an extension language adds on top of
// the host tree, together with the markers that let it reuse host shapes.
//
// Extension trees mix both sets freely: a ktree.When may hold host Blocks,
// and a host MethodInvocation may take a ktree.StringTemplate argument.
package ktree

import (
	"github.com/yaklabco/golst/pkg/tree"
)

// Node is a node kind that only the extension language has.
type Node interface {
	tree.Node
	ExtensionNode()
}

// IsExtension reports whether n belongs to the extension node set.
func IsExtension(n tree.Node) bool {
	_, ok := n.(Node)
	return ok
}

// CompilationUnit is the root of an extension-language file. Unlike the host
// unit it allows top-level functions, properties and statements.
type CompilationUnit struct {
	tree.Base
	Path        string
	PackageDecl *tree.RightPadded[*tree.Package]
	Imports     []tree.RightPadded[*tree.Import]
	Statements  []tree.RightPadded[tree.Statement]
	EOF         tree.Space
}

// WithBase implements tree.Node.
func (n *CompilationUnit) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*CompilationUnit) ExtensionNode() {}

// SourcePath implements tree.SourceFile.
func (n *CompilationUnit) SourcePath() string { return n.Path }

// WithImports returns a copy with the imports replaced.
func (n *CompilationUnit) WithImports(imports []tree.RightPadded[*tree.Import]) *CompilationUnit {
	c := *n
	c.Imports = imports
	return &c
}

// WalkChildren implements tree.Node.
func (n *CompilationUnit) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocCompilationUnitPrefix))

	var err error
	if c.PackageDecl, err = tree.VisitRightPaddedPtr(w, n.PackageDecl, tree.LocPackageSuffix); err != nil {
		return nil, err
	}
	if c.Imports, err = tree.VisitRightPaddedList(w, n.Imports, tree.LocImportSuffix); err != nil {
		return nil, err
	}
	if c.Statements, err = tree.VisitRightPaddedList(w, n.Statements, tree.LocStatementSuffix); err != nil {
		return nil, err
	}
	c.EOF = w.Space(n.EOF, tree.LocCompilationUnitEOF)
	return &c, nil
}

//go:generate stringer -type=BinaryOperator -trimprefix=Op

// BinaryOperator is an operator only the extension language has.
type BinaryOperator int

// Extension binary operators.
const (
	OpContains BinaryOperator = iota
	OpNotContains
	OpIdentityEquals
	OpIdentityNotEquals
	OpRangeTo
	OpRangeUntil
	OpGet
)

//nolint:gochecknoglobals // Lookup table.
var binaryTokens = [...]string{
	OpContains:          "in",
	OpNotContains:       "!in",
	OpIdentityEquals:    "===",
	OpIdentityNotEquals: "!==",
	OpRangeTo:           "..",
	OpRangeUntil:        "..<",
	OpGet:               "[",
}

// Token returns the source text of the operator. For OpGet it is the
// opening bracket.
func (op BinaryOperator) Token() string {
	if op < 0 || int(op) >= len(binaryTokens) {
		return ""
	}
	return binaryTokens[op]
}

// Binary is an infix expression with an extension-only operator. For OpGet,
// After is the space before the closing bracket.
type Binary struct {
	tree.Base
	Left     tree.Expression
	Operator tree.LeftPadded[BinaryOperator]
	Right    tree.Expression
	After    tree.Space
	Type     tree.Type
}

// WithBase implements tree.Node.
func (n *Binary) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*Binary) ExtensionNode() {}

// ExpressionNode implements tree.Expression.
func (*Binary) ExpressionNode() {}

// StatementNode implements tree.Statement.
func (*Binary) StatementNode() {}

// NodeType implements tree.Typed.
func (n *Binary) NodeType() tree.Type { return n.Type }

// WalkChildren implements tree.Node.
func (n *Binary) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocExtBinaryPrefix))

	left, ok, err := tree.VisitChild(w, n.Left)
	if err != nil || !ok {
		return nil, err
	}
	c.Left = left
	c.Operator = tree.VisitLeftPaddedValue(w, n.Operator, tree.LocExtBinaryOperator)
	right, ok, err := tree.VisitChild(w, n.Right)
	if err != nil || !ok {
		return nil, err
	}
	c.Right = right
	c.After = w.Space(n.After, tree.LocExtBinarySuffix)
	return &c, nil
}

// StringTemplate is a string with embedded expressions. Strings holds
// literal fragments and StringTemplateValue nodes in source order.
type StringTemplate struct {
	tree.Base
	Delimiter string
	Strings   []tree.Node
	Type      tree.Type
}

// WithBase implements tree.Node.
func (n *StringTemplate) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*StringTemplate) ExtensionNode() {}

// ExpressionNode implements tree.Expression.
func (*StringTemplate) ExpressionNode() {}

// NodeType implements tree.Typed.
func (n *StringTemplate) NodeType() tree.Type { return n.Type }

// WalkChildren implements tree.Node.
func (n *StringTemplate) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocStringTemplatePrefix))

	var err error
	if c.Strings, err = tree.VisitList(w, n.Strings); err != nil {
		return nil, err
	}
	return &c, nil
}

// StringTemplateValue is an expression embedded in a StringTemplate, either
// "${expr}" when Enclosed or "$name" otherwise.
type StringTemplateValue struct {
	tree.Base
	Tree     tree.Node
	After    tree.Space
	Enclosed bool
}

// WithBase implements tree.Node.
func (n *StringTemplateValue) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*StringTemplateValue) ExtensionNode() {}

// ExpressionNode implements tree.Expression.
func (*StringTemplateValue) ExpressionNode() {}

// WalkChildren implements tree.Node.
func (n *StringTemplateValue) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocStringTemplateValuePrefix))

	inner, ok, err := tree.VisitChild(w, n.Tree)
	if err != nil || !ok {
		return nil, err
	}
	c.Tree = inner
	c.After = w.Space(n.After, tree.LocStringTemplateValueSuffix)
	return &c, nil
}

// This is a this reference with an optional label, as in this@Outer.
type This struct {
	tree.Base
	Label *tree.Identifier
	Type  tree.Type
}

// WithBase implements tree.Node.
func (n *This) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*This) ExtensionNode() {}

// ExpressionNode implements tree.Expression.
func (*This) ExpressionNode() {}

// NodeType implements tree.Typed.
func (n *This) NodeType() tree.Type { return n.Type }

// WalkChildren implements tree.Node.
func (n *This) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocThisPrefix))

	var err error
	if c.Label, _, err = tree.VisitChild(w, n.Label); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListLiteral is a bracketed collection literal.
type ListLiteral struct {
	tree.Base
	Elements tree.Container[tree.Expression]
	Type     tree.Type
}

// WithBase implements tree.Node.
func (n *ListLiteral) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*ListLiteral) ExtensionNode() {}

// ExpressionNode implements tree.Expression.
func (*ListLiteral) ExpressionNode() {}

// NodeType implements tree.Typed.
func (n *ListLiteral) NodeType() tree.Type { return n.Type }

// WalkChildren implements tree.Node.
func (n *ListLiteral) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocListLiteralPrefix))

	var err error
	if c.Elements, err = tree.VisitContainer(w, n.Elements, tree.LocListLiteralElements, tree.LocListLiteralElementSuffix); err != nil {
		return nil, err
	}
	return &c, nil
}

// When is a multi-way conditional. Branches holds WhenBranch statements.
type When struct {
	tree.Base

	// Selector is the optional subject in parentheses.
	Selector *tree.ControlParentheses

	Branches *tree.Block
	Type     tree.Type
}

// WithBase implements tree.Node.
func (n *When) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*When) ExtensionNode() {}

// ExpressionNode implements tree.Expression.
func (*When) ExpressionNode() {}

// StatementNode implements tree.Statement.
func (*When) StatementNode() {}

// NodeType implements tree.Typed.
func (n *When) NodeType() tree.Type { return n.Type }

// WalkChildren implements tree.Node.
func (n *When) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocWhenPrefix))

	var err error
	if c.Selector, _, err = tree.VisitChild(w, n.Selector); err != nil {
		return nil, err
	}
	branches, ok, err := tree.VisitChild(w, n.Branches)
	if err != nil || !ok {
		return nil, err
	}
	c.Branches = branches
	return &c, nil
}

// WhenBranch is one "conditions -> body" arm of a When. The After space of
// the last condition is the space before the arrow.
type WhenBranch struct {
	tree.Base
	Expressions tree.Container[tree.Expression]
	Body        tree.Node
}

// WithBase implements tree.Node.
func (n *WhenBranch) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*WhenBranch) ExtensionNode() {}

// StatementNode implements tree.Statement.
func (*WhenBranch) StatementNode() {}

// WalkChildren implements tree.Node.
func (n *WhenBranch) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocWhenBranchPrefix))

	var err error
	if c.Expressions, err = tree.VisitContainer(w, n.Expressions, tree.LocWhenBranchExpressions, tree.LocWhenBranchExpressionSuffix); err != nil {
		return nil, err
	}
	if len(c.Expressions.Elements) == 0 {
		return nil, nil
	}
	body, ok, err := tree.VisitChild(w, n.Body)
	if err != nil || !ok {
		return nil, err
	}
	c.Body = body
	return &c, nil
}

// Property is a property declaration with optional accessors.
type Property struct {
	tree.Base
	Declarations *tree.VariableDeclarations
	Getter       *tree.MethodDeclaration
	Setter       *tree.MethodDeclaration
}

// WithBase implements tree.Node.
func (n *Property) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*Property) ExtensionNode() {}

// StatementNode implements tree.Statement.
func (*Property) StatementNode() {}

// TypeExpression implements tree.TypedDeclaration.
func (n *Property) TypeExpression() tree.TypeTree { return n.Declarations.DeclaredType }

// WithTypeExpression implements tree.TypedDeclaration.
func (n *Property) WithTypeExpression(t tree.TypeTree) tree.Node {
	c := *n
	decls, _ := n.Declarations.WithTypeExpression(t).(*tree.VariableDeclarations)
	c.Declarations = decls
	return &c
}

// DeclaredName implements tree.NamedDeclaration.
func (n *Property) DeclaredName() *tree.Identifier { return n.Declarations.DeclaredName() }

// WithDeclaredName implements tree.NamedDeclaration.
func (n *Property) WithDeclaredName(name *tree.Identifier) (tree.Node, bool) {
	out, ok := n.Declarations.WithDeclaredName(name)
	if !ok {
		return n, false
	}
	c := *n
	c.Declarations, _ = out.(*tree.VariableDeclarations)
	return &c, true
}

// WalkChildren implements tree.Node.
func (n *Property) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocPropertyPrefix))

	decls, ok, err := tree.VisitChild(w, n.Declarations)
	if err != nil || !ok {
		return nil, err
	}
	c.Declarations = decls
	if c.Getter, _, err = tree.VisitChild(w, n.Getter); err != nil {
		return nil, err
	}
	if c.Setter, _, err = tree.VisitChild(w, n.Setter); err != nil {
		return nil, err
	}
	return &c, nil
}

// DestructuringDeclaration declares several variables from one value, as in
// val (a, b) = pair.
type DestructuringDeclaration struct {
	tree.Base
	Modifiers   []*tree.Modifier
	Destructs   tree.Container[*tree.NamedVariable]
	Initializer tree.LeftPadded[tree.Expression]
}

// WithBase implements tree.Node.
func (n *DestructuringDeclaration) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*DestructuringDeclaration) ExtensionNode() {}

// StatementNode implements tree.Statement.
func (*DestructuringDeclaration) StatementNode() {}

// WalkChildren implements tree.Node.
func (n *DestructuringDeclaration) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocDestructuringPrefix))

	var err error
	if c.Modifiers, err = tree.VisitList(w, n.Modifiers); err != nil {
		return nil, err
	}
	if c.Destructs, err = tree.VisitContainer(w, n.Destructs, tree.LocDestructuringElements, tree.LocDestructuringElementSuffix); err != nil {
		return nil, err
	}
	if len(c.Destructs.Elements) == 0 {
		return nil, nil
	}
	init, ok, err := tree.VisitLeftPadded(w, n.Initializer, tree.LocVariableInitializer)
	if err != nil || !ok {
		return nil, err
	}
	c.Initializer = init
	return &c, nil
}

// FunctionType is a function type reference such as (Int) -> String or
// String.() -> Unit.
type FunctionType struct {
	tree.Base
	Modifiers []*tree.Modifier

	// Receiver is the optional receiver type; After is the space before
	// the dot.
	Receiver *tree.RightPadded[tree.TypeTree]

	Parameters tree.Container[tree.TypeTree]

	// Arrow is the space before "->".
	Arrow tree.Space

	ReturnType tree.TypeTree
}

// WithBase implements tree.Node.
func (n *FunctionType) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*FunctionType) ExtensionNode() {}

// ExpressionNode implements tree.Expression.
func (*FunctionType) ExpressionNode() {}

// TypeTreeNode implements tree.TypeTree.
func (*FunctionType) TypeTreeNode() {}

// WalkChildren implements tree.Node.
func (n *FunctionType) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocFunctionTypePrefix))

	var err error
	if c.Modifiers, err = tree.VisitList(w, n.Modifiers); err != nil {
		return nil, err
	}
	if c.Receiver, err = tree.VisitRightPaddedPtr(w, n.Receiver, tree.LocFunctionTypeReceiverSuffix); err != nil {
		return nil, err
	}
	if c.Parameters, err = tree.VisitContainer(w, n.Parameters, tree.LocFunctionTypeParameters, tree.LocFunctionTypeParameterSuffix); err != nil {
		return nil, err
	}
	c.Arrow = w.Space(n.Arrow, tree.LocFunctionTypeArrow)
	ret, ok, err := tree.VisitChild(w, n.ReturnType)
	if err != nil || !ok {
		return nil, err
	}
	c.ReturnType = ret
	return &c, nil
}

// AnnotatedExpression is an expression preceded by annotations.
type AnnotatedExpression struct {
	tree.Base
	Annotations []*tree.Annotation
	Expression  tree.Expression
}

// WithBase implements tree.Node.
func (n *AnnotatedExpression) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*AnnotatedExpression) ExtensionNode() {}

// ExpressionNode implements tree.Expression.
func (*AnnotatedExpression) ExpressionNode() {}

// WalkChildren implements tree.Node.
func (n *AnnotatedExpression) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocAnnotatedExpressionPrefix))

	var err error
	if c.Annotations, err = tree.VisitList(w, n.Annotations); err != nil {
		return nil, err
	}
	expr, ok, err := tree.VisitChild(w, n.Expression)
	if err != nil || !ok {
		return nil, err
	}
	c.Expression = expr
	return &c, nil
}

// Return is a return with an optional label, as in return@forEach.
type Return struct {
	tree.Base
	Label      *tree.Identifier
	Expression tree.Expression
}

// WithBase implements tree.Node.
func (n *Return) WithBase(b tree.Base) tree.Node { c := *n; c.Base = b; return &c }

// ExtensionNode implements Node.
func (*Return) ExtensionNode() {}

// StatementNode implements tree.Statement.
func (*Return) StatementNode() {}

// ExpressionNode implements tree.Expression.
func (*Return) ExpressionNode() {}

// WalkChildren implements tree.Node.
func (n *Return) WalkChildren(w *tree.Walker) (tree.Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), tree.LocExtReturnPrefix))

	var err error
	if c.Label, _, err = tree.VisitChild(w, n.Label); err != nil {
		return nil, err
	}
	if c.Expression, _, err = tree.VisitChild(w, n.Expression); err != nil {
		return nil, err
	}
	return &c, nil
}
