// Package style defines the formatting options the auto-format passes read.
//
// Options are grouped into one record per concern. A Bundle holds one
// optional record of each kind; a record left out of a bundle resolves to
// its default. Bundles are plain values and may be shared between
// goroutines.
package style

import "strings"

// BlankLines controls how many empty lines separate declarations.
type BlankLines struct {
	// KeepMaximumInDeclarations caps blank lines between members of a class
	// and between top-level declarations.
	KeepMaximumInDeclarations int `yaml:"keep_maximum_in_declarations" toml:"keep_maximum_in_declarations"`

	// KeepMaximumInCode caps blank lines between statements.
	KeepMaximumInCode int `yaml:"keep_maximum_in_code" toml:"keep_maximum_in_code"`

	// KeepMaximumBeforeEndOfBlock caps blank lines before a closing brace.
	KeepMaximumBeforeEndOfBlock int `yaml:"keep_maximum_before_end_of_block" toml:"keep_maximum_before_end_of_block"`

	MinimumAfterPackage     int `yaml:"minimum_after_package" toml:"minimum_after_package"`
	MinimumBeforeImports    int `yaml:"minimum_before_imports" toml:"minimum_before_imports"`
	MinimumAfterImports     int `yaml:"minimum_after_imports" toml:"minimum_after_imports"`
	MinimumAroundClass      int `yaml:"minimum_around_class" toml:"minimum_around_class"`
	MinimumAroundField      int `yaml:"minimum_around_field" toml:"minimum_around_field"`
	MinimumAroundMethod     int `yaml:"minimum_around_method" toml:"minimum_around_method"`
	MinimumAfterClassHeader int `yaml:"minimum_after_class_header" toml:"minimum_after_class_header"`
	MinimumBeforeClassEnd   int `yaml:"minimum_before_class_end" toml:"minimum_before_class_end"`
}

// BeforeParentheses controls the blank before an opening parenthesis.
type BeforeParentheses struct {
	MethodDeclaration bool `yaml:"method_declaration" toml:"method_declaration"`
	MethodCall        bool `yaml:"method_call" toml:"method_call"`
	IfParentheses     bool `yaml:"if_parentheses" toml:"if_parentheses"`
	ForParentheses    bool `yaml:"for_parentheses" toml:"for_parentheses"`
}

// AroundOperators controls the blanks on both sides of binary and
// assignment operators.
type AroundOperators struct {
	Assignment     bool `yaml:"assignment" toml:"assignment"`
	Logical        bool `yaml:"logical" toml:"logical"`
	Equality       bool `yaml:"equality" toml:"equality"`
	Relational     bool `yaml:"relational" toml:"relational"`
	Additive       bool `yaml:"additive" toml:"additive"`
	Multiplicative bool `yaml:"multiplicative" toml:"multiplicative"`
	Bitwise        bool `yaml:"bitwise" toml:"bitwise"`
}

// BeforeLeftBrace controls the blank before an opening brace.
type BeforeLeftBrace struct {
	ClassLeftBrace  bool `yaml:"class_left_brace" toml:"class_left_brace"`
	MethodLeftBrace bool `yaml:"method_left_brace" toml:"method_left_brace"`
	IfLeftBrace     bool `yaml:"if_left_brace" toml:"if_left_brace"`
	ElseLeftBrace   bool `yaml:"else_left_brace" toml:"else_left_brace"`
	ForLeftBrace    bool `yaml:"for_left_brace" toml:"for_left_brace"`
}

// Within controls blanks just inside parentheses.
type Within struct {
	MethodDeclarationParentheses bool `yaml:"method_declaration_parentheses" toml:"method_declaration_parentheses"`
	MethodCallParentheses        bool `yaml:"method_call_parentheses" toml:"method_call_parentheses"`
	IfParentheses                bool `yaml:"if_parentheses" toml:"if_parentheses"`
}

// Other holds the remaining space options.
type Other struct {
	BeforeComma          bool `yaml:"before_comma" toml:"before_comma"`
	AfterComma           bool `yaml:"after_comma" toml:"after_comma"`
	BeforeForSemicolon   bool `yaml:"before_for_semicolon" toml:"before_for_semicolon"`
	AfterForSemicolon    bool `yaml:"after_for_semicolon" toml:"after_for_semicolon"`
	BeforeColonInForEach bool `yaml:"before_colon_in_for_each" toml:"before_colon_in_for_each"`
}

// Spaces controls blanks on a single line.
type Spaces struct {
	BeforeParentheses BeforeParentheses `yaml:"before_parentheses" toml:"before_parentheses"`
	AroundOperators   AroundOperators   `yaml:"around_operators" toml:"around_operators"`
	BeforeLeftBrace   BeforeLeftBrace   `yaml:"before_left_brace" toml:"before_left_brace"`
	Within            Within            `yaml:"within" toml:"within"`
	Other             Other             `yaml:"other" toml:"other"`
}

// TabsAndIndents controls line indentation.
type TabsAndIndents struct {
	UseTabCharacter    bool `yaml:"use_tab_character" toml:"use_tab_character"`
	TabSize            int  `yaml:"tab_size" toml:"tab_size"`
	IndentSize         int  `yaml:"indent_size" toml:"indent_size"`
	ContinuationIndent int  `yaml:"continuation_indent" toml:"continuation_indent"`
}

// Indent returns the whitespace for the given number of columns.
func (t TabsAndIndents) Indent(columns int) string {
	if columns <= 0 {
		return ""
	}
	if !t.UseTabCharacter || t.TabSize <= 0 {
		return strings.Repeat(" ", columns)
	}
	return strings.Repeat("\t", columns/t.TabSize) + strings.Repeat(" ", columns%t.TabSize)
}

// Bundle is a named set of style records. Nil records resolve to defaults.
type Bundle struct {
	Name           string          `yaml:"name" toml:"name"`
	BlankLines     *BlankLines     `yaml:"blank_lines,omitempty" toml:"blank_lines,omitempty"`
	Spaces         *Spaces         `yaml:"spaces,omitempty" toml:"spaces,omitempty"`
	TabsAndIndents *TabsAndIndents `yaml:"tabs_and_indents,omitempty" toml:"tabs_and_indents,omitempty"`
}

// Section names, as used in style files and in log fields.
const (
	SectionBlankLines     = "blank_lines"
	SectionSpaces         = "spaces"
	SectionTabsAndIndents = "tabs_and_indents"
)

// Missing returns the names of the sections the bundle leaves out.
func (b *Bundle) Missing() []string {
	if b == nil {
		return []string{SectionBlankLines, SectionSpaces, SectionTabsAndIndents}
	}
	var missing []string
	if b.BlankLines == nil {
		missing = append(missing, SectionBlankLines)
	}
	if b.Spaces == nil {
		missing = append(missing, SectionSpaces)
	}
	if b.TabsAndIndents == nil {
		missing = append(missing, SectionTabsAndIndents)
	}
	return missing
}

// Resolved is a bundle with every record present.
type Resolved struct {
	Name           string
	BlankLines     BlankLines
	Spaces         Spaces
	TabsAndIndents TabsAndIndents
}

// Resolve layers the given bundles, first one winning per section, over the
// defaults. Nil bundles are skipped.
func Resolve(bundles ...*Bundle) Resolved {
	r := Resolved{
		Name:           DefaultName,
		BlankLines:     DefaultBlankLines(),
		Spaces:         DefaultSpaces(),
		TabsAndIndents: DefaultTabsAndIndents(),
	}
	var blank, sp, tabs, named bool
	for _, b := range bundles {
		if b == nil {
			continue
		}
		if !named && b.Name != "" {
			r.Name, named = b.Name, true
		}
		if !blank && b.BlankLines != nil {
			r.BlankLines, blank = *b.BlankLines, true
		}
		if !sp && b.Spaces != nil {
			r.Spaces, sp = *b.Spaces, true
		}
		if !tabs && b.TabsAndIndents != nil {
			r.TabsAndIndents, tabs = *b.TabsAndIndents, true
		}
	}
	return r
}
