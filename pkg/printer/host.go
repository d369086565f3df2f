package printer

import (
	"github.com/yaklabco/golst/pkg/ktree"
	"github.com/yaklabco/golst/pkg/tree"
)

// HostPrinter renders the host node set. Extension nodes met anywhere in the
// tree are handed to its ExtPrinter.
type HostPrinter struct {
	ext *ExtPrinter
}

// NewPrinters returns a host and an extension printer wired to each other.
func NewPrinters() (*HostPrinter, *ExtPrinter) {
	host := &HostPrinter{}
	ext := &ExtPrinter{host: host}
	host.ext = ext
	return host, ext
}

// Ext returns the extension printer this printer delegates to.
func (p *HostPrinter) Ext() *ExtPrinter {
	return p.ext
}

// Visit prints n, routing it to the extension printer when it is an
// extension node.
func (p *HostPrinter) Visit(n tree.Node, out *Output) {
	if tree.IsNil(n) {
		return
	}
	if ktree.IsExtension(n) {
		p.ext.Visit(n, out)
		return
	}

	out.push(n)
	defer out.pop()
	out.traced(LayerHost, n)
	if tree.Has[tree.Implicit](n.Markers()) {
		return
	}
	p.print(n, out)
}

//nolint:gocyclo,cyclop // One case per node kind.
func (p *HostPrinter) print(n tree.Node, out *Output) {
	switch n := n.(type) {
	case *tree.CompilationUnit:
		p.compilationUnit(n, out)
	case *tree.Package:
		p.pkg(n, out)
	case *tree.Import:
		p.imp(n, out)
	case *tree.ClassDeclaration:
		p.classDeclaration(n, out)
	case *tree.Block:
		p.block(n, out)
	case *tree.MethodDeclaration:
		p.methodDeclaration(n, out)
	case *tree.VariableDeclarations:
		p.variableDeclarations(n, out)
	case *tree.NamedVariable:
		p.namedVariable(n, out)
	case *tree.Modifier:
		beforeSyntax(n, tree.LocModifierPrefix, out)
		out.Append(n.Keyword)
		afterSyntax(n, out)
	case *tree.Annotation:
		p.annotation(n, out)
	case *tree.TypeParameter:
		p.typeParameter(n, out)
	case *tree.Identifier:
		beforeSyntax(n, tree.LocIdentifierPrefix, out)
		out.Append(n.SimpleName)
		afterSyntax(n, out)
	case *tree.FieldAccess:
		p.fieldAccess(n, out)
	case *tree.ParameterizedType:
		beforeSyntax(n, tree.LocParameterizedTypePrefix, out)
		p.require(n.Clazz, n, "type name", out)
		p.Visit(n.Clazz, out)
		if n.TypeParameters != nil {
			container(p, n, *n.TypeParameters, "<", ",", ">", tree.LocTypeArguments, tree.LocTypeArgumentSuffix, out)
		}
		afterSyntax(n, out)
	case *tree.Primitive:
		beforeSyntax(n, tree.LocPrimitivePrefix, out)
		out.Append(n.Keyword)
		afterSyntax(n, out)
	case *tree.Literal:
		beforeSyntax(n, tree.LocLiteralPrefix, out)
		out.Append(n.ValueSource)
		afterSyntax(n, out)
	case *tree.Binary:
		p.binary(n, out)
	case *tree.Unary:
		p.unary(n, out)
	case *tree.Assignment:
		beforeSyntax(n, tree.LocAssignmentPrefix, out)
		p.Visit(n.Variable, out)
		space(n, n.Assignment.Before, tree.LocAssignmentOperator, out)
		out.Append(n.Operator.Token())
		p.Visit(n.Assignment.Element, out)
		afterSyntax(n, out)
	case *tree.MethodInvocation:
		p.methodInvocation(n, out)
	case *tree.NewClass:
		p.newClass(n, out)
	case *tree.Return:
		beforeSyntax(n, tree.LocReturnPrefix, out)
		if !tree.Has[tree.ImplicitReturn](n.Markers()) {
			out.Append("return")
		}
		p.Visit(n.Expression, out)
		afterSyntax(n, out)
	case *tree.If:
		beforeSyntax(n, tree.LocIfPrefix, out)
		out.Append("if")
		p.require(n.Condition, n, "condition", out)
		p.Visit(n.Condition, out)
		rightPadded(p, n, n.Then, tree.LocIfThenSuffix, out)
		p.Visit(n.Else, out)
		afterSyntax(n, out)
	case *tree.Else:
		beforeSyntax(n, tree.LocElsePrefix, out)
		out.Append("else")
		rightPadded(p, n, n.Body, tree.LocStatementSuffix, out)
		afterSyntax(n, out)
	case *tree.ControlParentheses:
		beforeSyntax(n, tree.LocControlParenthesesPrefix, out)
		out.Append("(")
		rightPadded(p, n, n.Tree, tree.LocControlParenthesesSuffix, out)
		out.Append(")")
		afterSyntax(n, out)
	case *tree.Parentheses:
		beforeSyntax(n, tree.LocParenthesesPrefix, out)
		out.Append("(")
		rightPadded(p, n, n.Tree, tree.LocParenthesesSuffix, out)
		out.Append(")")
		afterSyntax(n, out)
	case *tree.Lambda:
		beforeSyntax(n, tree.LocLambdaPrefix, out)
		p.Visit(n.Parameters, out)
		space(n, n.Arrow, tree.LocLambdaArrow, out)
		out.Append("->")
		p.Visit(n.Body, out)
		afterSyntax(n, out)
	case *tree.LambdaParameters:
		p.lambdaParameters(n, out)
	case *tree.Ternary:
		beforeSyntax(n, tree.LocTernaryPrefix, out)
		p.Visit(n.Condition, out)
		space(n, n.TruePart.Before, tree.LocTernaryTrue, out)
		out.Append("?")
		p.Visit(n.TruePart.Element, out)
		space(n, n.FalsePart.Before, tree.LocTernaryFalse, out)
		out.Append(":")
		p.Visit(n.FalsePart.Element, out)
		afterSyntax(n, out)
	case *tree.InstanceOf:
		p.instanceOf(n, out)
	case *tree.TypeCast:
		beforeSyntax(n, tree.LocTypeCastPrefix, out)
		p.Visit(n.Clazz, out)
		p.Visit(n.Expression, out)
		afterSyntax(n, out)
	case *tree.ForEachLoop:
		beforeSyntax(n, tree.LocForEachLoopPrefix, out)
		out.Append("for")
		p.require(n.Control, n, "loop header", out)
		p.Visit(n.Control, out)
		rightPadded(p, n, n.Body, tree.LocLoopBodySuffix, out)
		afterSyntax(n, out)
	case *tree.ForEachControl:
		p.forEachControl(n, out)
	case *tree.ForLoop:
		beforeSyntax(n, tree.LocForLoopPrefix, out)
		out.Append("for")
		p.require(n.Control, n, "loop header", out)
		p.Visit(n.Control, out)
		rightPadded(p, n, n.Body, tree.LocLoopBodySuffix, out)
		afterSyntax(n, out)
	case *tree.ForControl:
		p.forControl(n, out)
	case *tree.Label:
		beforeSyntax(n, tree.LocLabelPrefix, out)
		rightPadded(p, n, n.Label, tree.LocLabelSuffix, out)
		if tree.Has[ktree.Extension](n.Markers()) {
			out.Append("@")
		} else {
			out.Append(":")
		}
		p.require(n.Statement, n, "labeled statement", out)
		p.Visit(n.Statement, out)
		afterSyntax(n, out)
	case *tree.Wildcard:
		p.wildcard(n, out)
	case *tree.Break:
		beforeSyntax(n, tree.LocBreakPrefix, out)
		out.Append("break")
		p.Visit(n.Label, out)
		afterSyntax(n, out)
	case *tree.Continue:
		beforeSyntax(n, tree.LocContinuePrefix, out)
		out.Append("continue")
		p.Visit(n.Label, out)
		afterSyntax(n, out)
	case *tree.Empty:
		beforeSyntax(n, tree.LocEmptyPrefix, out)
		afterSyntax(n, out)
	case *tree.Unknown:
		beforeSyntax(n, tree.LocUnknownPrefix, out)
		out.Append(n.Source)
		afterSyntax(n, out)
	default:
		panic(malformed(out.Cursor(), n, "no printer for node kind"))
	}
}

func (p *HostPrinter) compilationUnit(n *tree.CompilationUnit, out *Output) {
	beforeSyntax(n, tree.LocCompilationUnitPrefix, out)
	if n.PackageDecl != nil {
		rightPadded(p, n, *n.PackageDecl, tree.LocPackageSuffix, out)
	}
	for _, imp := range n.Imports {
		rightPadded(p, n, imp, tree.LocImportSuffix, out)
	}
	for _, t := range n.Types {
		rightPadded(p, n, t, tree.LocStatementSuffix, out)
	}
	space(n, n.EOF, tree.LocCompilationUnitEOF, out)
	afterSyntax(n, out)
}

func (p *HostPrinter) pkg(n *tree.Package, out *Output) {
	beforeSyntax(n, tree.LocPackagePrefix, out)
	visitAll(p, n.Annotations, out)
	out.Append("package")
	p.require(n.Expression, n, "package name", out)
	p.Visit(n.Expression, out)
	afterSyntax(n, out)
}

func (p *HostPrinter) imp(n *tree.Import, out *Output) {
	beforeSyntax(n, tree.LocImportPrefix, out)
	out.Append("import")
	if n.Static.Element {
		space(n, n.Static.Before, tree.LocImportStatic, out)
		out.Append("static")
	}
	p.require(n.Qualid, n, "imported name", out)
	p.Visit(n.Qualid, out)
	if n.Alias != nil {
		space(n, n.Alias.Before, tree.LocImportAlias, out)
		out.Append("as")
		p.Visit(n.Alias.Element, out)
	}
	afterSyntax(n, out)
}

func (p *HostPrinter) classDeclaration(n *tree.ClassDeclaration, out *Output) {
	beforeSyntax(n, tree.LocClassDeclarationPrefix, out)
	visitAll(p, n.LeadingAnnotations, out)
	visitAll(p, n.Modifiers, out)

	space(n, n.Kind.Before, tree.LocClassKind, out)
	if tree.Has[ktree.KObject](n.Markers()) {
		out.Append("object")
	} else {
		out.Append(n.Kind.Element.Token())
	}

	p.require(n.Name, n, "class name", out)
	p.Visit(n.Name, out)
	if n.TypeParameters != nil {
		container(p, n, *n.TypeParameters, "<", ",", ">", tree.LocTypeParameters, tree.LocTypeParameterSuffix, out)
	}

	ext := tree.Has[ktree.Extension](n.Markers())
	if n.Extends != nil {
		space(n, n.Extends.Before, tree.LocExtendsPrefix, out)
		if ext {
			out.Append(":")
		} else {
			out.Append("extends")
		}
		p.Visit(n.Extends.Element, out)
	}
	if n.Implements != nil {
		keyword := "implements"
		switch {
		case ext && n.Extends != nil:
			keyword = ","
		case ext:
			keyword = ":"
		}
		container(p, n, *n.Implements, keyword, ",", "", tree.LocImplementsPrefix, tree.LocImplementsSuffix, out)
	}
	p.Visit(n.Body, out)
	afterSyntax(n, out)
}

func (p *HostPrinter) block(n *tree.Block, out *Output) {
	beforeSyntax(n, tree.LocBlockPrefix, out)
	markers := n.Markers()
	if tree.Has[ktree.SingleExpressionBlock](markers) {
		if len(n.Statements) != 1 {
			panic(malformed(out.Cursor(), n, "single-expression block with %d statements", len(n.Statements)))
		}
		out.Append("=")
		rightPadded(p, n, n.Statements[0], tree.LocBlockStatementSuffix, out)
		afterSyntax(n, out)
		return
	}

	omit := tree.Has[ktree.OmitBraces](markers)
	if !omit {
		out.Append("{")
	}
	for _, s := range n.Statements {
		rightPadded(p, n, s, tree.LocBlockStatementSuffix, out)
	}
	space(n, n.End, tree.LocBlockEnd, out)
	if !omit {
		out.Append("}")
	}
	afterSyntax(n, out)
}

func (p *HostPrinter) methodDeclaration(n *tree.MethodDeclaration, out *Output) {
	beforeSyntax(n, tree.LocMethodDeclarationPrefix, out)
	visitAll(p, n.LeadingAnnotations, out)
	visitAll(p, n.Modifiers, out)

	markers := n.Markers()
	anonymous := tree.Has[ktree.AnonymousFunction](markers)
	if anonymous {
		out.Append("fun")
	}
	if n.TypeParameters != nil {
		container(p, n, *n.TypeParameters, "<", ",", ">", tree.LocTypeParameters, tree.LocTypeParameterSuffix, out)
	}

	typeRef, trailingType := tree.FindFirst[ktree.TypeReferencePrefix](markers)
	if !trailingType {
		p.Visit(n.ReturnType, out)
	}
	if !anonymous {
		p.require(n.Name, n, "method name", out)
		p.Visit(n.Name, out)
	}
	container(p, n, n.Parameters, "(", ",", ")", tree.LocMethodDeclarationParameters, tree.LocMethodDeclarationParameterSuffix, out)
	if trailingType && !tree.IsNil(n.ReturnType) {
		space(n, typeRef.Prefix, tree.LocTypeReferencePrefix, out)
		out.Append(":")
		p.Visit(n.ReturnType, out)
	}
	if n.Throws != nil {
		container(p, n, *n.Throws, "throws", ",", "", tree.LocThrowsPrefix, tree.LocThrowsSuffix, out)
	}
	p.Visit(n.Body, out)
	afterSyntax(n, out)
}

func (p *HostPrinter) variableDeclarations(n *tree.VariableDeclarations, out *Output) {
	beforeSyntax(n, tree.LocVariableDeclarationsPrefix, out)
	visitAll(p, n.LeadingAnnotations, out)
	visitAll(p, n.Modifiers, out)

	// With a type reference prefix the type is printed by the first variable.
	if !tree.Has[ktree.TypeReferencePrefix](n.Markers()) {
		p.Visit(n.DeclaredType, out)
	}
	if n.Varargs != nil {
		space(n, *n.Varargs, tree.LocVarargs, out)
		out.Append("...")
	}
	if len(n.Variables) == 0 {
		panic(malformed(out.Cursor(), n, "no variables"))
	}
	for i, v := range n.Variables {
		rightPadded(p, n, v, tree.LocNamedVariableSuffix, out)
		if i < len(n.Variables)-1 {
			out.Append(",")
		}
	}
	afterSyntax(n, out)
}

func (p *HostPrinter) namedVariable(n *tree.NamedVariable, out *Output) {
	beforeSyntax(n, tree.LocNamedVariablePrefix, out)
	p.require(n.Name, n, "variable name", out)
	p.Visit(n.Name, out)

	if decls, ok := out.Cursor().Parent().Value().(*tree.VariableDeclarations); ok {
		typeRef, found := tree.FindFirst[ktree.TypeReferencePrefix](decls.Markers())
		if found && !tree.IsNil(decls.DeclaredType) && len(decls.Variables) > 0 && decls.Variables[0].Element.ID() == n.ID() {
			space(decls, typeRef.Prefix, tree.LocTypeReferencePrefix, out)
			out.Append(":")
			p.Visit(decls.DeclaredType, out)
		}
	}

	if n.Initializer != nil {
		space(n, n.Initializer.Before, tree.LocVariableInitializer, out)
		markers := n.Markers()
		switch {
		case tree.Has[ktree.By](markers):
			out.Append("by")
		case tree.Has[ktree.OmitEquals](markers):
		default:
			out.Append("=")
		}
		p.Visit(n.Initializer.Element, out)
	}
	afterSyntax(n, out)
}

func (p *HostPrinter) annotation(n *tree.Annotation, out *Output) {
	beforeSyntax(n, tree.LocAnnotationPrefix, out)
	out.Append("@")
	p.require(n.AnnotationType, n, "annotation type", out)
	p.Visit(n.AnnotationType, out)
	if n.Arguments != nil {
		container(p, n, *n.Arguments, "(", ",", ")", tree.LocAnnotationArguments, tree.LocAnnotationArgumentSuffix, out)
	}
	afterSyntax(n, out)
}

func (p *HostPrinter) typeParameter(n *tree.TypeParameter, out *Output) {
	beforeSyntax(n, tree.LocTypeParameterPrefix, out)
	visitAll(p, n.Annotations, out)
	p.require(n.Name, n, "type parameter name", out)
	p.Visit(n.Name, out)
	if n.Bounds != nil {
		keyword := "extends"
		if tree.Has[ktree.Extension](n.Markers()) {
			keyword = ":"
		}
		container(p, n, *n.Bounds, keyword, "&", "", tree.LocTypeBounds, tree.LocTypeBoundSuffix, out)
	}
	afterSyntax(n, out)
}

func (p *HostPrinter) fieldAccess(n *tree.FieldAccess, out *Output) {
	beforeSyntax(n, tree.LocFieldAccessPrefix, out)
	p.require(n.Target, n, "target", out)
	p.Visit(n.Target, out)
	space(n, n.Name.Before, tree.LocFieldAccessName, out)
	out.Append(memberSeparator(n))
	p.require(n.Name.Element, n, "member name", out)
	p.Visit(n.Name.Element, out)
	afterSyntax(n, out)
}

func (p *HostPrinter) binary(n *tree.Binary, out *Output) {
	beforeSyntax(n, tree.LocBinaryPrefix, out)
	p.Visit(n.Left, out)
	space(n, n.Operator.Before, tree.LocBinaryOperator, out)
	if tree.Has[ktree.LogicalComma](n.Markers()) {
		if n.Operator.Element != tree.OpOr {
			panic(malformed(out.Cursor(), n, "logical comma on operator %q", n.Operator.Element.Token()))
		}
		out.Append(",")
	} else {
		out.Append(n.Operator.Element.Token())
	}
	p.Visit(n.Right, out)
	afterSyntax(n, out)
}

func (p *HostPrinter) unary(n *tree.Unary, out *Output) {
	beforeSyntax(n, tree.LocUnaryPrefix, out)
	if fused(n) {
		p.Visit(n.Expression, out)
		afterSyntax(n, out)
		return
	}
	op := n.Operator.Element
	if op.IsPostfix() {
		p.Visit(n.Expression, out)
		space(n, n.Operator.Before, tree.LocUnaryOperator, out)
		out.Append(op.Token())
	} else {
		space(n, n.Operator.Before, tree.LocUnaryOperator, out)
		out.Append(op.Token())
		p.Visit(n.Expression, out)
	}
	afterSyntax(n, out)
}

func (p *HostPrinter) methodInvocation(n *tree.MethodInvocation, out *Output) {
	beforeSyntax(n, tree.LocMethodInvocationPrefix, out)
	if n.Select != nil {
		p.Visit(n.Select.Element, out)
		space(n, n.Select.After, tree.LocMethodSelectSuffix, out)
		out.Append(memberSeparator(n))
	}
	if n.TypeParameters != nil {
		container(p, n, *n.TypeParameters, "<", ",", ">", tree.LocTypeArguments, tree.LocTypeArgumentSuffix, out)
	}
	p.require(n.Name, n, "method name", out)
	p.Visit(n.Name, out)
	p.arguments(n, n.Arguments, out)
	afterSyntax(n, out)
}

// arguments prints a call argument list, honoring omitted parentheses and a
// trailing lambda written after the closing parenthesis.
func (p *HostPrinter) arguments(owner tree.Node, args tree.Container[tree.Expression], out *Output) {
	list := args.Elements
	var trailing *tree.RightPadded[tree.Expression]
	if last := len(list) - 1; last >= 0 && tree.Has[ktree.TrailingLambdaArgument](list[last].Markers) {
		trailing = &list[last]
		list = list[:last]
	}

	omit := tree.Has[tree.OmitParentheses](args.Markers)
	space(owner, args.Before, tree.LocMethodInvocationArguments, out)
	if !omit {
		out.Append("(")
	}
	elements(p, owner, list, ",", tree.LocMethodInvocationArgumentSuffix, out)
	if !omit {
		out.Append(")")
	}
	if trailing != nil {
		p.Visit(trailing.Element, out)
		space(owner, trailing.After, tree.LocMethodInvocationArgumentSuffix, out)
	}
}

func (p *HostPrinter) newClass(n *tree.NewClass, out *Output) {
	beforeSyntax(n, tree.LocNewClassPrefix, out)
	if n.Enclosing != nil {
		p.Visit(n.Enclosing.Element, out)
		space(n, n.Enclosing.After, tree.LocNewClassEnclosingSuffix, out)
		out.Append(".")
	}
	space(n, n.New, tree.LocNewClassNew, out)
	out.Append("new")
	p.require(n.Clazz, n, "class", out)
	p.Visit(n.Clazz, out)
	p.arguments(n, n.Arguments, out)
	p.Visit(n.Body, out)
	afterSyntax(n, out)
}

func (p *HostPrinter) lambdaParameters(n *tree.LambdaParameters, out *Output) {
	beforeSyntax(n, tree.LocLambdaParametersPrefix, out)
	if n.Parenthesized {
		out.Append("(")
	}
	elements(p, n, n.Parameters, ",", tree.LocLambdaParameterSuffix, out)
	if n.Parenthesized {
		out.Append(")")
	}
	afterSyntax(n, out)
}

func (p *HostPrinter) instanceOf(n *tree.InstanceOf, out *Output) {
	beforeSyntax(n, tree.LocInstanceOfPrefix, out)
	rightPadded(p, n, n.Expression, tree.LocInstanceOfSuffix, out)
	markers := n.Markers()
	switch {
	case tree.Has[ktree.NotIs](markers):
		out.Append("!is")
	case tree.Has[ktree.Extension](markers):
		out.Append("is")
	default:
		out.Append("instanceof")
	}
	p.require(n.Clazz, n, "type", out)
	p.Visit(n.Clazz, out)
	afterSyntax(n, out)
}

func (p *HostPrinter) forEachControl(n *tree.ForEachControl, out *Output) {
	beforeSyntax(n, tree.LocForEachControlPrefix, out)
	out.Append("(")
	p.require(n.Variable.Element, n, "loop variable", out)
	rightPadded(p, n, n.Variable, tree.LocForEachVariableSuffix, out)
	if tree.Has[ktree.Extension](n.Markers()) {
		out.Append("in")
	} else {
		out.Append(":")
	}
	p.require(n.Iterable.Element, n, "iterable", out)
	rightPadded(p, n, n.Iterable, tree.LocForEachIterableSuffix, out)
	out.Append(")")
	afterSyntax(n, out)
}

func (p *HostPrinter) forControl(n *tree.ForControl, out *Output) {
	beforeSyntax(n, tree.LocForControlPrefix, out)
	out.Append("(")
	elements(p, n, n.Init, ",", tree.LocForInitSuffix, out)
	out.Append(";")
	rightPadded(p, n, n.Condition, tree.LocForConditionSuffix, out)
	out.Append(";")
	elements(p, n, n.Update, ",", tree.LocForUpdateSuffix, out)
	out.Append(")")
	afterSyntax(n, out)
}

func (p *HostPrinter) wildcard(n *tree.Wildcard, out *Output) {
	beforeSyntax(n, tree.LocWildcardPrefix, out)
	ext := tree.Has[ktree.Extension](n.Markers())
	switch {
	case n.Bound == nil && ext:
		out.Append("*")
	case n.Bound == nil:
		out.Append("?")
	default:
		if !ext {
			out.Append("?")
		}
		space(n, n.Bound.Before, tree.LocWildcardBound, out)
		out.Append(n.Bound.Element.Token(ext))
		p.require(n.BoundedType, n, "bounded type", out)
		p.Visit(n.BoundedType, out)
	}
	afterSyntax(n, out)
}

// require panics with a malformed-tree error when a required child is
// missing.
func (p *HostPrinter) require(child tree.Node, owner tree.Node, what string, out *Output) {
	if tree.IsNil(child) {
		panic(malformed(out.Cursor(), owner, "missing %s", what))
	}
}
