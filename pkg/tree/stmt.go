package tree

// Return is a return statement. Expression is nil for a bare return.
type Return struct {
	Base
	Expression Expression
}

// WithBase implements Node.
func (n *Return) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*Return) StatementNode() {}

// WalkChildren implements Node.
func (n *Return) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocReturnPrefix))

	var err error
	if c.Expression, _, err = VisitChild(w, n.Expression); err != nil {
		return nil, err
	}
	return &c, nil
}

// If is an if statement with an optional else branch.
type If struct {
	Base
	Condition *ControlParentheses
	Then      RightPadded[Statement]
	Else      *Else
}

// WithBase implements Node.
func (n *If) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*If) StatementNode() {}

// ExpressionNode implements Expression; extension-language if is a value.
func (*If) ExpressionNode() {}

// WalkChildren implements Node.
func (n *If) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocIfPrefix))

	cond, ok, err := VisitChild(w, n.Condition)
	if err != nil || !ok {
		return nil, err
	}
	c.Condition = cond
	if c.Then, ok, err = VisitRightPadded(w, n.Then, LocIfThenSuffix); err != nil || !ok {
		return nil, err
	}
	if c.Else, _, err = VisitChild(w, n.Else); err != nil {
		return nil, err
	}
	return &c, nil
}

// Else is the else branch of an If.
type Else struct {
	Base
	Body RightPadded[Statement]
}

// WithBase implements Node.
func (n *Else) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// WalkChildren implements Node.
func (n *Else) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocElsePrefix))

	body, ok, err := VisitRightPadded(w, n.Body, LocStatementSuffix)
	if err != nil || !ok {
		return nil, err
	}
	c.Body = body
	return &c, nil
}

// Break is a break statement with an optional label.
type Break struct {
	Base
	Label *Identifier
}

// WithBase implements Node.
func (n *Break) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*Break) StatementNode() {}

// WalkChildren implements Node.
func (n *Break) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocBreakPrefix))

	var err error
	if c.Label, _, err = VisitChild(w, n.Label); err != nil {
		return nil, err
	}
	return &c, nil
}

// Continue is a continue statement with an optional label.
type Continue struct {
	Base
	Label *Identifier
}

// WithBase implements Node.
func (n *Continue) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*Continue) StatementNode() {}

// WalkChildren implements Node.
func (n *Continue) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocContinuePrefix))

	var err error
	if c.Label, _, err = VisitChild(w, n.Label); err != nil {
		return nil, err
	}
	return &c, nil
}

// Empty stands for an absent element that still owns whitespace, such as
// the inside of an empty argument list or a lone semicolon.
type Empty struct {
	Base
}

// NewEmpty builds an Empty with a fresh id.
func NewEmpty(prefix Space) *Empty {
	return &Empty{Base: Prefixed(prefix)}
}

// WithBase implements Node.
func (n *Empty) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Empty) ExpressionNode() {}

// StatementNode implements Statement.
func (*Empty) StatementNode() {}

// TypeTreeNode implements TypeTree.
func (*Empty) TypeTreeNode() {}

// NameTreeNode implements NameTree.
func (*Empty) NameTreeNode() {}

// WalkChildren implements Node.
func (n *Empty) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocEmptyPrefix))
	return &c, nil
}

// Unknown holds source a front end does not model. It prints verbatim.
type Unknown struct {
	Base

	// Source is the exact text of the construct, without the prefix.
	Source string

	// Kind is the front end's name for the construct, for diagnostics.
	Kind string
}

// WithBase implements Node.
func (n *Unknown) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Unknown) ExpressionNode() {}

// StatementNode implements Statement.
func (*Unknown) StatementNode() {}

// TypeTreeNode implements TypeTree.
func (*Unknown) TypeTreeNode() {}

// NameTreeNode implements NameTree.
func (*Unknown) NameTreeNode() {}

// WalkChildren implements Node.
func (n *Unknown) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocUnknownPrefix))
	return &c, nil
}
