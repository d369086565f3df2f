package tree

// ForEachLoop iterates over the elements of an array or iterable:
// for (T x : xs) body. With the Extension marker it prints for (x in xs).
type ForEachLoop struct {
	Base
	Control *ForEachControl
	Body    RightPadded[Statement]
}

// WithBase implements Node.
func (n *ForEachLoop) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*ForEachLoop) StatementNode() {}

// WalkChildren implements Node.
func (n *ForEachLoop) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocForEachLoopPrefix))

	control, ok, err := VisitChild(w, n.Control)
	if err != nil || !ok {
		return nil, err
	}
	c.Control = control
	if c.Body, ok, err = VisitRightPadded(w, n.Body, LocLoopBodySuffix); err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

// ForEachControl is the parenthesized header of a ForEachLoop. Its prefix
// is the space before the opening parenthesis. Variable.After is the space
// before the separator and Iterable.After the space before ")".
type ForEachControl struct {
	Base
	Variable RightPadded[*VariableDeclarations]
	Iterable RightPadded[Expression]
}

// WithBase implements Node.
func (n *ForEachControl) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// WalkChildren implements Node.
func (n *ForEachControl) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocForEachControlPrefix))

	var ok bool
	var err error
	if c.Variable, ok, err = VisitRightPadded(w, n.Variable, LocForEachVariableSuffix); err != nil || !ok {
		return nil, err
	}
	if c.Iterable, ok, err = VisitRightPadded(w, n.Iterable, LocForEachIterableSuffix); err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

// ForLoop is a counting for loop: for (init; condition; update) body.
type ForLoop struct {
	Base
	Control *ForControl
	Body    RightPadded[Statement]
}

// WithBase implements Node.
func (n *ForLoop) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*ForLoop) StatementNode() {}

// WalkChildren implements Node.
func (n *ForLoop) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocForLoopPrefix))

	control, ok, err := VisitChild(w, n.Control)
	if err != nil || !ok {
		return nil, err
	}
	c.Control = control
	if c.Body, ok, err = VisitRightPadded(w, n.Body, LocLoopBodySuffix); err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

// ForControl is the parenthesized header of a ForLoop. Its prefix is the
// space before the opening parenthesis.
//
// An absent part is an Empty holding the space in front of its delimiter,
// so Init and Update are never empty once parsed. The After of each Init
// entry is the space before the following comma or semicolon; the last
// Update entry's After is the space before ")".
type ForControl struct {
	Base
	Init      []RightPadded[Statement]
	Condition RightPadded[Expression]
	Update    []RightPadded[Statement]
}

// WithBase implements Node.
func (n *ForControl) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// WalkChildren implements Node.
func (n *ForControl) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocForControlPrefix))

	var err error
	if c.Init, err = VisitRightPaddedList(w, n.Init, LocForInitSuffix); err != nil {
		return nil, err
	}
	cond, ok, err := VisitRightPadded(w, n.Condition, LocForConditionSuffix)
	if err != nil {
		return nil, err
	}
	if !ok {
		cond = RightPad[Expression](NewEmpty(EmptySpace), n.Condition.After)
	}
	c.Condition = cond
	if c.Update, err = VisitRightPaddedList(w, n.Update, LocForUpdateSuffix); err != nil {
		return nil, err
	}
	return &c, nil
}

// Label names a statement for break and continue: name: statement. With
// the Extension marker it prints name@ statement.
type Label struct {
	Base

	// Label.After is the space before the colon.
	Label     RightPadded[*Identifier]
	Statement Statement
}

// WithBase implements Node.
func (n *Label) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*Label) StatementNode() {}

// WalkChildren implements Node.
func (n *Label) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocLabelPrefix))

	var ok bool
	var err error
	if c.Label, ok, err = VisitRightPadded(w, n.Label, LocLabelSuffix); err != nil || !ok {
		return nil, err
	}
	stmt, ok, err := VisitChild(w, n.Statement)
	if err != nil || !ok {
		return nil, err
	}
	c.Statement = stmt
	return &c, nil
}
