package printer

import (
	"github.com/yaklabco/golst/pkg/ktree"
	"github.com/yaklabco/golst/pkg/tree"
)

// ExtPrinter renders the extension node set. Host nodes met anywhere in the
// tree are handed back to its HostPrinter.
type ExtPrinter struct {
	host *HostPrinter
}

// Host returns the host printer this printer delegates to.
func (p *ExtPrinter) Host() *HostPrinter {
	return p.host
}

// Visit prints n, routing it to the host printer when it is not an
// extension node.
func (p *ExtPrinter) Visit(n tree.Node, out *Output) {
	if tree.IsNil(n) {
		return
	}
	if !ktree.IsExtension(n) {
		p.host.Visit(n, out)
		return
	}

	out.push(n)
	defer out.pop()
	out.traced(LayerExtension, n)
	if tree.Has[tree.Implicit](n.Markers()) {
		return
	}
	p.print(n, out)
}

//nolint:gocyclo,cyclop // One case per node kind.
func (p *ExtPrinter) print(n tree.Node, out *Output) {
	switch n := n.(type) {
	case *ktree.CompilationUnit:
		beforeSyntax(n, tree.LocCompilationUnitPrefix, out)
		if n.PackageDecl != nil {
			rightPadded(p, n, *n.PackageDecl, tree.LocPackageSuffix, out)
		}
		for _, imp := range n.Imports {
			rightPadded(p, n, imp, tree.LocImportSuffix, out)
		}
		for _, s := range n.Statements {
			rightPadded(p, n, s, tree.LocStatementSuffix, out)
		}
		space(n, n.EOF, tree.LocCompilationUnitEOF, out)
		afterSyntax(n, out)
	case *ktree.Binary:
		p.binary(n, out)
	case *ktree.StringTemplate:
		beforeSyntax(n, tree.LocStringTemplatePrefix, out)
		out.Append(n.Delimiter)
		visitAll(p, n.Strings, out)
		out.Append(n.Delimiter)
		afterSyntax(n, out)
	case *ktree.StringTemplateValue:
		beforeSyntax(n, tree.LocStringTemplateValuePrefix, out)
		if n.Enclosed {
			out.Append("${")
			p.Visit(n.Tree, out)
			space(n, n.After, tree.LocStringTemplateValueSuffix, out)
			out.Append("}")
		} else {
			out.Append("$")
			p.Visit(n.Tree, out)
		}
		afterSyntax(n, out)
	case *ktree.This:
		beforeSyntax(n, tree.LocThisPrefix, out)
		out.Append("this")
		if n.Label != nil {
			out.Append("@")
			p.Visit(n.Label, out)
		}
		afterSyntax(n, out)
	case *ktree.ListLiteral:
		beforeSyntax(n, tree.LocListLiteralPrefix, out)
		container(p, n, n.Elements, "[", ",", "]", tree.LocListLiteralElements, tree.LocListLiteralElementSuffix, out)
		afterSyntax(n, out)
	case *ktree.When:
		beforeSyntax(n, tree.LocWhenPrefix, out)
		out.Append("when")
		p.Visit(n.Selector, out)
		if n.Branches == nil {
			panic(malformed(out.Cursor(), n, "missing branches"))
		}
		p.Visit(n.Branches, out)
		afterSyntax(n, out)
	case *ktree.WhenBranch:
		beforeSyntax(n, tree.LocWhenBranchPrefix, out)
		space(n, n.Expressions.Before, tree.LocWhenBranchExpressions, out)
		elements(p, n, n.Expressions.Elements, ",", tree.LocWhenBranchExpressionSuffix, out)
		out.Append("->")
		p.Visit(n.Body, out)
		afterSyntax(n, out)
	case *ktree.Property:
		beforeSyntax(n, tree.LocPropertyPrefix, out)
		if n.Declarations == nil {
			panic(malformed(out.Cursor(), n, "missing declarations"))
		}
		p.Visit(n.Declarations, out)
		p.Visit(n.Getter, out)
		p.Visit(n.Setter, out)
		afterSyntax(n, out)
	case *ktree.DestructuringDeclaration:
		beforeSyntax(n, tree.LocDestructuringPrefix, out)
		visitAll(p, n.Modifiers, out)
		container(p, n, n.Destructs, "(", ",", ")", tree.LocDestructuringElements, tree.LocDestructuringElementSuffix, out)
		space(n, n.Initializer.Before, tree.LocVariableInitializer, out)
		out.Append("=")
		p.Visit(n.Initializer.Element, out)
		afterSyntax(n, out)
	case *ktree.FunctionType:
		beforeSyntax(n, tree.LocFunctionTypePrefix, out)
		visitAll(p, n.Modifiers, out)
		if n.Receiver != nil {
			p.Visit(n.Receiver.Element, out)
			space(n, n.Receiver.After, tree.LocFunctionTypeReceiverSuffix, out)
			out.Append(".")
		}
		container(p, n, n.Parameters, "(", ",", ")", tree.LocFunctionTypeParameters, tree.LocFunctionTypeParameterSuffix, out)
		space(n, n.Arrow, tree.LocFunctionTypeArrow, out)
		out.Append("->")
		p.Visit(n.ReturnType, out)
		afterSyntax(n, out)
	case *ktree.AnnotatedExpression:
		beforeSyntax(n, tree.LocAnnotatedExpressionPrefix, out)
		visitAll(p, n.Annotations, out)
		p.Visit(n.Expression, out)
		afterSyntax(n, out)
	case *ktree.Return:
		beforeSyntax(n, tree.LocExtReturnPrefix, out)
		out.Append("return")
		if n.Label != nil {
			out.Append("@")
			p.Visit(n.Label, out)
		}
		p.Visit(n.Expression, out)
		afterSyntax(n, out)
	default:
		panic(malformed(out.Cursor(), n, "no printer for extension node kind"))
	}
}

func (p *ExtPrinter) binary(n *ktree.Binary, out *Output) {
	beforeSyntax(n, tree.LocExtBinaryPrefix, out)
	p.Visit(n.Left, out)
	space(n, n.Operator.Before, tree.LocExtBinaryOperator, out)
	op := n.Operator.Element
	token := op.Token()
	if token == "" {
		panic(malformed(out.Cursor(), n, "unknown operator %d", int(op)))
	}
	out.Append(token)
	p.Visit(n.Right, out)
	space(n, n.After, tree.LocExtBinarySuffix, out)
	if op == ktree.OpGet {
		out.Append("]")
	}
	afterSyntax(n, out)
}
