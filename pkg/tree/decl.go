package tree

// CompilationUnit is the root of a parsed source file.
type CompilationUnit struct {
	Base

	// Path is the source path relative to the project root.
	Path string

	PackageDecl *RightPadded[*Package]
	Imports     []RightPadded[*Import]
	Types       []RightPadded[Statement]

	// EOF is the space after the last token of the file.
	EOF Space
}

// WithBase implements Node.
func (n *CompilationUnit) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// SourcePath implements SourceFile.
func (n *CompilationUnit) SourcePath() string { return n.Path }

// WithImports returns a copy with the imports replaced.
func (n *CompilationUnit) WithImports(imports []RightPadded[*Import]) *CompilationUnit {
	c := *n
	c.Imports = imports
	return &c
}

// WithTypes returns a copy with the top-level declarations replaced.
func (n *CompilationUnit) WithTypes(types []RightPadded[Statement]) *CompilationUnit {
	c := *n
	c.Types = types
	return &c
}

// WalkChildren implements Node.
func (n *CompilationUnit) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocCompilationUnitPrefix))

	var err error
	if c.PackageDecl, err = VisitRightPaddedPtr(w, n.PackageDecl, LocPackageSuffix); err != nil {
		return nil, err
	}
	if c.Imports, err = VisitRightPaddedList(w, n.Imports, LocImportSuffix); err != nil {
		return nil, err
	}
	if c.Types, err = VisitRightPaddedList(w, n.Types, LocStatementSuffix); err != nil {
		return nil, err
	}
	c.EOF = w.Space(n.EOF, LocCompilationUnitEOF)
	return &c, nil
}

// Package is a package declaration.
type Package struct {
	Base
	Annotations []*Annotation
	Expression  Expression
}

// WithBase implements Node.
func (n *Package) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*Package) StatementNode() {}

// PackageName returns the dotted package name.
func (n *Package) PackageName() string { return QualifiedName(n.Expression) }

// WalkChildren implements Node.
func (n *Package) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocPackagePrefix))

	var err error
	if c.Annotations, err = VisitList(w, n.Annotations); err != nil {
		return nil, err
	}
	expr, ok, err := VisitChild(w, n.Expression)
	if err != nil || !ok {
		return nil, err
	}
	c.Expression = expr
	return &c, nil
}

// Import is an import declaration.
type Import struct {
	Base

	// Static holds true when the import is static; Before is the space
	// before the static keyword.
	Static LeftPadded[bool]

	Qualid *FieldAccess

	// Alias is the optional "as" alias of extension-language imports.
	Alias *LeftPadded[*Identifier]
}

// WithBase implements Node.
func (n *Import) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*Import) StatementNode() {}

// TypeName returns the imported name as written, e.g. "java.util.List".
func (n *Import) TypeName() string { return QualifiedName(n.Qualid) }

// WalkChildren implements Node.
func (n *Import) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocImportPrefix))
	c.Static = VisitLeftPaddedValue(w, n.Static, LocImportStatic)

	qualid, ok, err := VisitChild(w, n.Qualid)
	if err != nil || !ok {
		return nil, err
	}
	c.Qualid = qualid
	if c.Alias, err = VisitLeftPaddedPtr(w, n.Alias, LocImportAlias); err != nil {
		return nil, err
	}
	return &c, nil
}

// ClassDeclaration declares a class, interface, enum, record or annotation
// type.
type ClassDeclaration struct {
	Base
	LeadingAnnotations []*Annotation
	Modifiers          []*Modifier

	// Kind is the declaration keyword; Before is the space before it.
	Kind LeftPadded[ClassKind]

	Name           *Identifier
	TypeParameters *Container[*TypeParameter]
	Extends        *LeftPadded[TypeTree]
	Implements     *Container[TypeTree]
	Body           *Block
	Type           Type
}

// WithBase implements Node.
func (n *ClassDeclaration) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*ClassDeclaration) StatementNode() {}

// NodeType implements Typed.
func (n *ClassDeclaration) NodeType() Type { return n.Type }

// DeclaredName implements NamedDeclaration.
func (n *ClassDeclaration) DeclaredName() *Identifier { return n.Name }

// WithDeclaredName implements NamedDeclaration.
func (n *ClassDeclaration) WithDeclaredName(name *Identifier) (Node, bool) {
	c := *n
	c.Name = name
	return &c, true
}

// WithBody returns a copy with the body replaced.
func (n *ClassDeclaration) WithBody(body *Block) *ClassDeclaration {
	c := *n
	c.Body = body
	return &c
}

// WalkChildren implements Node.
func (n *ClassDeclaration) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocClassDeclarationPrefix))

	var err error
	if c.LeadingAnnotations, err = VisitList(w, n.LeadingAnnotations); err != nil {
		return nil, err
	}
	if c.Modifiers, err = VisitList(w, n.Modifiers); err != nil {
		return nil, err
	}
	c.Kind = VisitLeftPaddedValue(w, n.Kind, LocClassKind)

	name, ok, err := VisitChild(w, n.Name)
	if err != nil || !ok {
		return nil, err
	}
	c.Name = name
	if c.TypeParameters, err = VisitContainerPtr(w, n.TypeParameters, LocTypeParameters, LocTypeParameterSuffix); err != nil {
		return nil, err
	}
	if c.Extends, err = VisitLeftPaddedPtr(w, n.Extends, LocExtendsPrefix); err != nil {
		return nil, err
	}
	if c.Implements, err = VisitContainerPtr(w, n.Implements, LocImplementsPrefix, LocImplementsSuffix); err != nil {
		return nil, err
	}
	body, _, err := VisitChild(w, n.Body)
	if err != nil {
		return nil, err
	}
	c.Body = body
	return &c, nil
}

// Block is a braced statement list, or its brace-less extension-language
// variant.
type Block struct {
	Base
	Statements []RightPadded[Statement]

	// End is the space before the closing brace.
	End Space
}

// WithBase implements Node.
func (n *Block) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*Block) StatementNode() {}

// ExpressionNode implements Expression; extension-language blocks may be
// used as values.
func (*Block) ExpressionNode() {}

// WithStatements returns a copy with the statements replaced.
func (n *Block) WithStatements(stmts []RightPadded[Statement]) *Block {
	c := *n
	c.Statements = stmts
	return &c
}

// WithEnd returns a copy with the space before the closing brace replaced.
func (n *Block) WithEnd(end Space) *Block {
	c := *n
	c.End = end
	return &c
}

// WalkChildren implements Node.
func (n *Block) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocBlockPrefix))

	var err error
	if c.Statements, err = VisitRightPaddedList(w, n.Statements, LocBlockStatementSuffix); err != nil {
		return nil, err
	}
	c.End = w.Space(n.End, LocBlockEnd)
	return &c, nil
}

// MethodDeclaration declares a method or constructor.
type MethodDeclaration struct {
	Base
	LeadingAnnotations []*Annotation
	Modifiers          []*Modifier
	TypeParameters     *Container[*TypeParameter]

	// ReturnType is nil for constructors.
	ReturnType TypeTree

	Name       *Identifier
	Parameters Container[Statement]
	Throws     *Container[NameTree]

	// Body is nil for abstract and interface methods.
	Body *Block

	Type Type
}

// WithBase implements Node.
func (n *MethodDeclaration) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*MethodDeclaration) StatementNode() {}

// NodeType implements Typed.
func (n *MethodDeclaration) NodeType() Type { return n.Type }

// TypeExpression implements TypedDeclaration.
func (n *MethodDeclaration) TypeExpression() TypeTree { return n.ReturnType }

// WithTypeExpression implements TypedDeclaration.
func (n *MethodDeclaration) WithTypeExpression(t TypeTree) Node {
	c := *n
	c.ReturnType = t
	return &c
}

// DeclaredName implements NamedDeclaration.
func (n *MethodDeclaration) DeclaredName() *Identifier { return n.Name }

// WithDeclaredName implements NamedDeclaration.
func (n *MethodDeclaration) WithDeclaredName(name *Identifier) (Node, bool) {
	c := *n
	c.Name = name
	return &c, true
}

// IsConstructor reports whether the declaration has no return type.
func (n *MethodDeclaration) IsConstructor() bool { return IsNil(n.ReturnType) }

// WalkChildren implements Node.
func (n *MethodDeclaration) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocMethodDeclarationPrefix))

	var err error
	if c.LeadingAnnotations, err = VisitList(w, n.LeadingAnnotations); err != nil {
		return nil, err
	}
	if c.Modifiers, err = VisitList(w, n.Modifiers); err != nil {
		return nil, err
	}
	if c.TypeParameters, err = VisitContainerPtr(w, n.TypeParameters, LocTypeParameters, LocTypeParameterSuffix); err != nil {
		return nil, err
	}
	if c.ReturnType, _, err = VisitChild(w, n.ReturnType); err != nil {
		return nil, err
	}
	name, ok, err := VisitChild(w, n.Name)
	if err != nil || !ok {
		return nil, err
	}
	c.Name = name
	if c.Parameters, err = VisitContainer(w, n.Parameters, LocMethodDeclarationParameters, LocMethodDeclarationParameterSuffix); err != nil {
		return nil, err
	}
	if c.Throws, err = VisitContainerPtr(w, n.Throws, LocThrowsPrefix, LocThrowsSuffix); err != nil {
		return nil, err
	}
	if c.Body, _, err = VisitChild(w, n.Body); err != nil {
		return nil, err
	}
	return &c, nil
}

// VariableDeclarations declares one or more variables sharing modifiers and
// a declared type, such as a field or a local variable.
type VariableDeclarations struct {
	Base
	LeadingAnnotations []*Annotation
	Modifiers          []*Modifier

	// DeclaredType is nil when the type is inferred.
	DeclaredType TypeTree

	// Varargs is the space before "..." of a variadic parameter.
	Varargs *Space

	Variables []RightPadded[*NamedVariable]
}

// WithBase implements Node.
func (n *VariableDeclarations) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// StatementNode implements Statement.
func (*VariableDeclarations) StatementNode() {}

// TypeExpression implements TypedDeclaration.
func (n *VariableDeclarations) TypeExpression() TypeTree { return n.DeclaredType }

// WithTypeExpression implements TypedDeclaration.
func (n *VariableDeclarations) WithTypeExpression(t TypeTree) Node {
	c := *n
	c.DeclaredType = t
	return &c
}

// DeclaredName implements NamedDeclaration. It is nil unless exactly one
// variable is declared.
func (n *VariableDeclarations) DeclaredName() *Identifier {
	if len(n.Variables) != 1 {
		return nil
	}
	return n.Variables[0].Element.Name
}

// WithDeclaredName implements NamedDeclaration.
func (n *VariableDeclarations) WithDeclaredName(name *Identifier) (Node, bool) {
	if len(n.Variables) != 1 {
		return n, false
	}
	vars := []RightPadded[*NamedVariable]{n.Variables[0].WithElement(n.Variables[0].Element.WithName(name))}
	return n.WithVariables(vars), true
}

// WithVariables returns a copy with the variables replaced.
func (n *VariableDeclarations) WithVariables(vars []RightPadded[*NamedVariable]) *VariableDeclarations {
	c := *n
	c.Variables = vars
	return &c
}

// WithModifiers returns a copy with the modifiers replaced.
func (n *VariableDeclarations) WithModifiers(mods []*Modifier) *VariableDeclarations {
	c := *n
	c.Modifiers = mods
	return &c
}

// Names returns the declared variable names in order.
func (n *VariableDeclarations) Names() []string {
	names := make([]string, 0, len(n.Variables))
	for _, v := range n.Variables {
		names = append(names, v.Element.Name.SimpleName)
	}
	return names
}

// HasModifier reports whether a modifier with the keyword is present.
func (n *VariableDeclarations) HasModifier(keyword string) bool {
	for _, m := range n.Modifiers {
		if m.Keyword == keyword {
			return true
		}
	}
	return false
}

// WalkChildren implements Node.
func (n *VariableDeclarations) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocVariableDeclarationsPrefix))

	var err error
	if c.LeadingAnnotations, err = VisitList(w, n.LeadingAnnotations); err != nil {
		return nil, err
	}
	if c.Modifiers, err = VisitList(w, n.Modifiers); err != nil {
		return nil, err
	}
	if c.DeclaredType, _, err = VisitChild(w, n.DeclaredType); err != nil {
		return nil, err
	}
	if n.Varargs != nil {
		v := w.Space(*n.Varargs, LocVarargs)
		c.Varargs = &v
	}
	if c.Variables, err = VisitRightPaddedList(w, n.Variables, LocNamedVariableSuffix); err != nil {
		return nil, err
	}
	if len(c.Variables) == 0 {
		return nil, nil
	}
	return &c, nil
}

// NamedVariable is a single variable inside VariableDeclarations.
type NamedVariable struct {
	Base
	Name        *Identifier
	Initializer *LeftPadded[Expression]
	Type        Type
}

// WithBase implements Node.
func (n *NamedVariable) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// NodeType implements Typed.
func (n *NamedVariable) NodeType() Type { return n.Type }

// WithName returns a copy with the name replaced.
func (n *NamedVariable) WithName(name *Identifier) *NamedVariable {
	c := *n
	c.Name = name
	return &c
}

// WithInitializer returns a copy with the initializer replaced.
func (n *NamedVariable) WithInitializer(init *LeftPadded[Expression]) *NamedVariable {
	c := *n
	c.Initializer = init
	return &c
}

// WithType returns a copy with the type descriptor replaced.
func (n *NamedVariable) WithType(t Type) *NamedVariable {
	c := *n
	c.Type = t
	return &c
}

// DeclaredName implements NamedDeclaration.
func (n *NamedVariable) DeclaredName() *Identifier { return n.Name }

// WithDeclaredName implements NamedDeclaration.
func (n *NamedVariable) WithDeclaredName(name *Identifier) (Node, bool) {
	return n.WithName(name), true
}

// WalkChildren implements Node.
func (n *NamedVariable) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocNamedVariablePrefix))

	name, ok, err := VisitChild(w, n.Name)
	if err != nil || !ok {
		return nil, err
	}
	c.Name = name
	if c.Initializer, err = VisitLeftPaddedPtr(w, n.Initializer, LocVariableInitializer); err != nil {
		return nil, err
	}
	return &c, nil
}

// Modifier is a declaration keyword such as public, static, final, or an
// extension-language keyword such as val or fun.
type Modifier struct {
	Base
	Keyword string
}

// WithBase implements Node.
func (n *Modifier) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// WalkChildren implements Node.
func (n *Modifier) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocModifierPrefix))
	return &c, nil
}

// Annotation is an annotation use such as @Deprecated or @Size(max = 3).
type Annotation struct {
	Base
	AnnotationType NameTree
	Arguments      *Container[Expression]
}

// WithBase implements Node.
func (n *Annotation) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// ExpressionNode implements Expression.
func (*Annotation) ExpressionNode() {}

// WalkChildren implements Node.
func (n *Annotation) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocAnnotationPrefix))

	typ, ok, err := VisitChild(w, n.AnnotationType)
	if err != nil || !ok {
		return nil, err
	}
	c.AnnotationType = typ
	if c.Arguments, err = VisitContainerPtr(w, n.Arguments, LocAnnotationArguments, LocAnnotationArgumentSuffix); err != nil {
		return nil, err
	}
	return &c, nil
}

// TypeParameter declares a generic type parameter with optional bounds.
type TypeParameter struct {
	Base
	Annotations []*Annotation
	Name        Expression

	// Bounds is nil when unbounded; Before is the space before "extends".
	Bounds *Container[TypeTree]
}

// WithBase implements Node.
func (n *TypeParameter) WithBase(b Base) Node { c := *n; c.Base = b; return &c }

// WalkChildren implements Node.
func (n *TypeParameter) WalkChildren(w *Walker) (Node, error) {
	c := *n
	c.Base = n.Base.Reprefixed(w.Space(n.Prefix(), LocTypeParameterPrefix))

	var err error
	if c.Annotations, err = VisitList(w, n.Annotations); err != nil {
		return nil, err
	}
	name, ok, err := VisitChild(w, n.Name)
	if err != nil || !ok {
		return nil, err
	}
	c.Name = name
	if c.Bounds, err = VisitContainerPtr(w, n.Bounds, LocTypeBounds, LocTypeBoundSuffix); err != nil {
		return nil, err
	}
	return &c, nil
}
