package ktree_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/pkg/ktree"
	"github.com/yaklabco/golst/pkg/tree"
	"github.com/yaklabco/golst/pkg/tree/treetest"
)

func TestIsExtension(t *testing.T) {
	t.Parallel()

	assert.True(t, ktree.IsExtension(&ktree.This{Base: tree.Prefixed(tree.EmptySpace)}))
	assert.True(t, ktree.IsExtension(&ktree.Property{}))
	assert.False(t, ktree.IsExtension(treetest.Ident("", "x")))
	assert.False(t, ktree.IsExtension(nil))
}

func TestMarkAssignsFreshIDs(t *testing.T) {
	t.Parallel()

	a := ktree.Mark[ktree.OmitBraces]()
	b := ktree.Mark[ktree.OmitBraces]()
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	spread := ktree.Mark[ktree.SpreadArgument]()
	assert.True(t, spread.Prefix.IsEmpty())
	assert.Equal(t, "SpreadArgument", spread.MarkerKind())
}

func TestBinaryOperatorTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op   ktree.BinaryOperator
		want string
	}{
		{ktree.OpContains, "in"},
		{ktree.OpNotContains, "!in"},
		{ktree.OpIdentityEquals, "==="},
		{ktree.OpIdentityNotEquals, "!=="},
		{ktree.OpRangeTo, ".."},
		{ktree.OpRangeUntil, "..<"},
		{ktree.OpGet, "["},
		{ktree.BinaryOperator(99), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.Token())
	}
}

func property(prefix, name, fqn string) *ktree.Property {
	decls := treetest.Var("", treetest.Mods("val"), treetest.TypeRef(" ", fqn), name, nil)
	decls = tree.AddMarker(decls, tree.Marker(ktree.Mark[ktree.TypeReferencePrefix]()))
	return &ktree.Property{Base: tree.Prefixed(treetest.Space(prefix)), Declarations: decls}
}

func TestPropertyDeclarationRoles(t *testing.T) {
	t.Parallel()

	p := property("\n", "name", "kotlin.String")

	var typed tree.TypedDeclaration = p
	assert.Equal(t, "String", tree.QualifiedName(typed.TypeExpression()))

	retyped, ok := typed.WithTypeExpression(treetest.TypeRef(" ", "kotlin.Int")).(*ktree.Property)
	require.True(t, ok)
	assert.Equal(t, "Int", tree.QualifiedName(retyped.TypeExpression()))
	assert.Equal(t, p.ID(), retyped.ID())
	assert.Equal(t, "String", tree.QualifiedName(p.TypeExpression()), "receiver must be unchanged")

	var named tree.NamedDeclaration = p
	assert.Equal(t, "name", named.DeclaredName().SimpleName)
	renamed, ok := named.WithDeclaredName(treetest.Ident(" ", "title"))
	require.True(t, ok)
	assert.Equal(t, "title", renamed.(*ktree.Property).DeclaredName().SimpleName)
}

func TestWalkExtensionUnit(t *testing.T) {
	t.Parallel()

	cu := &ktree.CompilationUnit{
		Base: tree.Prefixed(tree.EmptySpace),
		Path: "Main.kt",
		Statements: []tree.RightPadded[tree.Statement]{
			tree.RightPad[tree.Statement](property("", "first", "kotlin.String"), tree.EmptySpace),
			tree.RightPad[tree.Statement](property("\n", "second", "kotlin.Int"), tree.EmptySpace),
		},
		EOF: treetest.Space("\n"),
	}
	assert.Equal(t, "Main.kt", cu.SourcePath())

	names := tree.Collect[*tree.NamedVariable](cu, nil)
	require.Len(t, names, 2)

	// Removing a property's only variable removes the property.
	out, err := tree.Walk(cu, &tree.Visitor{
		PreVisit: func(_ *tree.Cursor, n tree.Node) (tree.Node, error) {
			if v, ok := n.(*tree.NamedVariable); ok && v.Name.SimpleName == "first" {
				return nil, nil
			}
			return n, nil
		},
	})
	require.NoError(t, err)

	got, ok := out.(*ktree.CompilationUnit)
	require.True(t, ok)
	require.Len(t, got.Statements, 1)
	assert.Equal(t, "second", got.Statements[0].Element.(*ktree.Property).DeclaredName().SimpleName)
	assert.Equal(t, "", got.Statements[0].Element.Prefix().String(), "the survivor takes the first prefix")
}

func TestWalkWhenRebuildsBranches(t *testing.T) {
	t.Parallel()

	when := &ktree.When{
		Base: tree.Prefixed(tree.EmptySpace),
		Branches: treetest.Block(" ", "\n",
			treetest.Decl(&ktree.WhenBranch{
				Base: tree.Prefixed(treetest.Space("\n    ")),
				Expressions: tree.ContainerOf(tree.EmptySpace,
					tree.RightPad[tree.Expression](treetest.Int("", 1), tree.SingleSpace)),
				Body: treetest.Ident(" ", "one"),
			}),
		),
	}

	out, err := tree.Walk(when, &tree.Visitor{
		PostVisit: func(_ *tree.Cursor, n tree.Node) (tree.Node, error) {
			if id, ok := n.(*tree.Identifier); ok {
				return id.WithSimpleName("uno"), nil
			}
			return n, nil
		},
	})
	require.NoError(t, err)

	ids := tree.Collect[*tree.Identifier](out, nil)
	require.Len(t, ids, 1)
	assert.Equal(t, "uno", ids[0].SimpleName)
	assert.Equal(t, when.ID(), out.ID())
}
