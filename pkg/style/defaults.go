package style

// DefaultName is the name of the built-in bundle.
const DefaultName = "intellij"

// DefaultBlankLines returns the built-in blank line options.
func DefaultBlankLines() BlankLines {
	return BlankLines{
		KeepMaximumInDeclarations:   2,
		KeepMaximumInCode:           2,
		KeepMaximumBeforeEndOfBlock: 2,
		MinimumAfterPackage:         1,
		MinimumBeforeImports:        1,
		MinimumAfterImports:         1,
		MinimumAroundClass:          1,
		MinimumAroundField:          0,
		MinimumAroundMethod:         1,
		MinimumAfterClassHeader:     0,
		MinimumBeforeClassEnd:       0,
	}
}

// DefaultSpaces returns the built-in space options.
func DefaultSpaces() Spaces {
	return Spaces{
		BeforeParentheses: BeforeParentheses{
			IfParentheses:  true,
			ForParentheses: true,
		},
		AroundOperators: AroundOperators{
			Assignment:     true,
			Logical:        true,
			Equality:       true,
			Relational:     true,
			Additive:       true,
			Multiplicative: true,
			Bitwise:        true,
		},
		BeforeLeftBrace: BeforeLeftBrace{
			ClassLeftBrace:  true,
			MethodLeftBrace: true,
			IfLeftBrace:     true,
			ElseLeftBrace:   true,
			ForLeftBrace:    true,
		},
		Other: Other{
			AfterComma:           true,
			AfterForSemicolon:    true,
			BeforeColonInForEach: true,
		},
	}
}

// DefaultTabsAndIndents returns the built-in indentation options.
func DefaultTabsAndIndents() TabsAndIndents {
	return TabsAndIndents{
		TabSize:            4,
		IndentSize:         4,
		ContinuationIndent: 8,
	}
}

// Defaults returns a bundle with every record set to its default.
func Defaults() *Bundle {
	blank := DefaultBlankLines()
	sp := DefaultSpaces()
	tabs := DefaultTabsAndIndents()
	return &Bundle{
		Name:           DefaultName,
		BlankLines:     &blank,
		Spaces:         &sp,
		TabsAndIndents: &tabs,
	}
}
