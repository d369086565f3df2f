package style_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/pkg/style"
	"github.com/yaklabco/golst/pkg/tree"
	"github.com/yaklabco/golst/pkg/tree/treetest"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	d := style.Defaults()
	assert.Equal(t, style.DefaultName, d.Name)
	assert.Empty(t, d.Missing())
	assert.Equal(t, 4, d.TabsAndIndents.IndentSize)
	assert.Equal(t, 8, d.TabsAndIndents.ContinuationIndent)
	assert.True(t, d.Spaces.AroundOperators.Assignment)
	assert.False(t, d.Spaces.BeforeParentheses.MethodCall)
	assert.Equal(t, 2, d.BlankLines.KeepMaximumInCode)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tabs := style.TabsAndIndents{UseTabCharacter: true, TabSize: 4, IndentSize: 4, ContinuationIndent: 8}
	spaces := style.DefaultSpaces()
	spaces.Other.BeforeComma = true

	fileBundle := &style.Bundle{Name: "file", TabsAndIndents: &tabs}
	callerBundle := &style.Bundle{Name: "caller", Spaces: &spaces, TabsAndIndents: &style.TabsAndIndents{IndentSize: 2}}

	r := style.Resolve(fileBundle, nil, callerBundle)
	assert.Equal(t, "file", r.Name)
	assert.Equal(t, tabs, r.TabsAndIndents, "first bundle wins per section")
	assert.True(t, r.Spaces.Other.BeforeComma, "later bundles fill sections the first leaves out")
	assert.Equal(t, style.DefaultBlankLines(), r.BlankLines, "sections no bundle sets use defaults")

	empty := style.Resolve()
	assert.Equal(t, style.DefaultName, empty.Name)
	assert.Equal(t, style.DefaultTabsAndIndents(), empty.TabsAndIndents)
}

func TestMissing(t *testing.T) {
	t.Parallel()

	var none *style.Bundle
	assert.Equal(t, []string{style.SectionBlankLines, style.SectionSpaces, style.SectionTabsAndIndents}, none.Missing())

	partial := &style.Bundle{Spaces: &style.Spaces{}}
	assert.Equal(t, []string{style.SectionBlankLines, style.SectionTabsAndIndents}, partial.Missing())
}

func TestIndent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   style.TabsAndIndents
		columns int
		want    string
	}{
		{name: "spaces", style: style.DefaultTabsAndIndents(), columns: 8, want: "        "},
		{name: "zero", style: style.DefaultTabsAndIndents(), columns: 0, want: ""},
		{name: "tabs", style: style.TabsAndIndents{UseTabCharacter: true, TabSize: 4}, columns: 8, want: "\t\t"},
		{name: "tabs with remainder", style: style.TabsAndIndents{UseTabCharacter: true, TabSize: 4}, columns: 6, want: "\t  "},
		{name: "tabs without size", style: style.TabsAndIndents{UseTabCharacter: true}, columns: 2, want: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.style.Indent(tt.columns))
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`name: team
tabs_and_indents:
  use_tab_character: true
  indent_size: 8
colors: {}
`)
	res, err := style.Decode(data, style.FormatYAML)
	require.NoError(t, err)

	b := res.Bundle
	assert.Equal(t, "team", b.Name)
	require.NotNil(t, b.TabsAndIndents)
	assert.True(t, b.TabsAndIndents.UseTabCharacter)
	assert.Equal(t, 8, b.TabsAndIndents.IndentSize)
	assert.Equal(t, 4, b.TabsAndIndents.TabSize, "options left out keep their defaults")
	assert.Nil(t, b.Spaces)
	assert.Nil(t, b.BlankLines)

	assert.Equal(t, []string{
		`section "blank_lines" missing, using defaults`,
		`section "spaces" missing, using defaults`,
		`unknown section "colors" ignored`,
	}, res.Warnings)
}

func TestDecodeTOML(t *testing.T) {
	t.Parallel()

	data := []byte(`name = "team"

[blank_lines]
keep_maximum_in_code = 1

[spaces.other]
before_comma = true
after_semicolon = true
`)
	res, err := style.Decode(data, style.FormatTOML)
	require.NoError(t, err)

	b := res.Bundle
	require.NotNil(t, b.BlankLines)
	assert.Equal(t, 1, b.BlankLines.KeepMaximumInCode)
	assert.Equal(t, 2, b.BlankLines.KeepMaximumInDeclarations)
	require.NotNil(t, b.Spaces)
	assert.True(t, b.Spaces.Other.BeforeComma)
	assert.True(t, b.Spaces.Other.AfterComma, "options left out keep their defaults")
	assert.True(t, b.Spaces.AroundOperators.Assignment)
	assert.Nil(t, b.TabsAndIndents)

	assert.Equal(t, []string{
		`section "tabs_and_indents" missing, using defaults`,
		`unknown key "spaces.other.after_semicolon" ignored`,
	}, res.Warnings)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	_, err := style.Decode([]byte("name: [unclosed"), style.FormatYAML)
	require.Error(t, err)

	_, err = style.Decode([]byte("name = "), style.FormatTOML)
	require.Error(t, err)

	_, err = style.Decode(nil, style.FileFormat("ini"))
	require.ErrorIs(t, err, style.ErrUnknownFormat)

	_, err = style.FormatFor("style.json")
	require.ErrorIs(t, err, style.ErrUnknownFormat)
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	tabs := style.TabsAndIndents{UseTabCharacter: true, TabSize: 8, IndentSize: 8, ContinuationIndent: 16}
	in := &style.Bundle{Name: "wide", TabsAndIndents: &tabs}

	for _, format := range []style.FileFormat{style.FormatYAML, style.FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			data, err := style.Encode(in, format)
			require.NoError(t, err)

			res, err := style.Decode(data, format)
			require.NoError(t, err)
			assert.Empty(t, res.Warnings, "encoded files document every section")

			r := style.Resolve(res.Bundle)
			assert.Equal(t, "wide", r.Name)
			assert.Equal(t, tabs, r.TabsAndIndents)
			assert.Equal(t, style.DefaultSpaces(), r.Spaces)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: disk\nspaces: {}\n"), 0o600))

	res, err := style.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, "disk", res.Bundle.Name)
	require.NotNil(t, res.Bundle.Spaces)
	assert.Equal(t, style.DefaultSpaces(), *res.Bundle.Spaces)

	_, err = style.LoadFile(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestAttachAndOf(t *testing.T) {
	t.Parallel()

	cu := treetest.Unit("A.java", nil, nil)
	assert.Nil(t, style.Of(cu))

	first := &style.Bundle{Name: "first"}
	second := &style.Bundle{Name: "second"}

	withFirst := style.Attach(cu, first)
	assert.Same(t, first, style.Of(withFirst))
	assert.Nil(t, style.Of(cu), "receiver must be unchanged")

	withSecond := style.Attach(withFirst, second)
	assert.Same(t, second, style.Of(withSecond))
	assert.Equal(t, 1, withSecond.Markers().Len(), "attaching replaces the previous bundle")
	assert.Equal(t, cu.ID(), withSecond.ID())

	assert.Nil(t, style.Of(nil))
	assert.Equal(t, "Style", style.NewMarker(first).MarkerKind())
	assert.True(t, tree.Has[style.Marker](withSecond.Markers()))
}
