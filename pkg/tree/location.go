package tree

import "strings"

//go:generate stringer -type=Location -trimprefix=Loc

// Location identifies where a Space sits structurally. Formatting passes use
// it to decide which style option owns a span; the printer uses it to pick a
// default for synthesized nodes whose spans were never captured.
type Location int

// Locations, grouped by the node that owns the span.
const (
	LocUnknown Location = iota

	LocAnnotationPrefix
	LocAnnotationArguments
	LocAnnotationArgumentSuffix
	LocAssignmentPrefix
	LocAssignmentOperator
	LocBinaryPrefix
	LocBinaryOperator
	LocBlockPrefix
	LocBlockEnd
	LocBlockStatementSuffix
	LocBreakPrefix
	LocClassDeclarationPrefix
	LocClassKind
	LocCompilationUnitPrefix
	LocCompilationUnitEOF
	LocContinuePrefix
	LocControlParenthesesPrefix
	LocControlParenthesesSuffix
	LocElsePrefix
	LocEmptyPrefix
	LocExtendsPrefix
	LocFieldAccessPrefix
	LocFieldAccessName
	LocForEachLoopPrefix
	LocForEachControlPrefix
	LocForEachVariableSuffix
	LocForEachIterableSuffix
	LocForLoopPrefix
	LocForControlPrefix
	LocForInitSuffix
	LocForConditionSuffix
	LocForUpdateSuffix
	LocIdentifierPrefix
	LocIfPrefix
	LocIfThenSuffix
	LocImplementsPrefix
	LocImplementsSuffix
	LocImportPrefix
	LocImportStatic
	LocImportAlias
	LocImportSuffix
	LocInstanceOfPrefix
	LocInstanceOfSuffix
	LocLabelPrefix
	LocLabelSuffix
	LocLambdaPrefix
	LocLambdaArrow
	LocLambdaParametersPrefix
	LocLambdaParameterSuffix
	LocLiteralPrefix
	LocLoopBodySuffix
	LocMethodDeclarationPrefix
	LocMethodDeclarationParameters
	LocMethodDeclarationParameterSuffix
	LocMethodInvocationPrefix
	LocMethodInvocationArguments
	LocMethodInvocationArgumentSuffix
	LocMethodSelectSuffix
	LocModifierPrefix
	LocNamedVariablePrefix
	LocNamedVariableSuffix
	LocNewClassPrefix
	LocNewClassNew
	LocNewClassArguments
	LocNewClassArgumentSuffix
	LocNewClassEnclosingSuffix
	LocPackagePrefix
	LocPackageSuffix
	LocParameterizedTypePrefix
	LocTypeArguments
	LocTypeArgumentSuffix
	LocParenthesesPrefix
	LocParenthesesSuffix
	LocPrimitivePrefix
	LocReturnPrefix
	LocStatementSuffix
	LocTernaryPrefix
	LocTernaryTrue
	LocTernaryFalse
	LocThrowsPrefix
	LocThrowsSuffix
	LocTypeCastPrefix
	LocTypeParameterPrefix
	LocTypeParameters
	LocTypeParameterSuffix
	LocTypeBounds
	LocTypeBoundSuffix
	LocUnaryPrefix
	LocUnaryOperator
	LocUnknownPrefix
	LocVariableDeclarationsPrefix
	LocVariableInitializer
	LocVarargs
	LocWildcardPrefix
	LocWildcardBound

	// Extension-language spans.
	LocExtBinaryPrefix
	LocExtBinaryOperator
	LocExtBinarySuffix
	LocDestructuringPrefix
	LocDestructuringElements
	LocDestructuringElementSuffix
	LocFunctionTypePrefix
	LocFunctionTypeParameters
	LocFunctionTypeParameterSuffix
	LocFunctionTypeReceiverSuffix
	LocFunctionTypeArrow
	LocListLiteralPrefix
	LocListLiteralElements
	LocListLiteralElementSuffix
	LocPropertyPrefix
	LocStringTemplatePrefix
	LocStringTemplateValuePrefix
	LocStringTemplateValueSuffix
	LocThisPrefix
	LocWhenPrefix
	LocWhenBranchPrefix
	LocWhenBranchExpressions
	LocWhenBranchExpressionSuffix
	LocWhenBranchBodySuffix
	LocAnnotatedExpressionPrefix
	LocExtReturnPrefix
	LocTypeReferencePrefix
	LocMarkerPrefix
)

// locationDefaults holds the whitespace a synthesized node gets at each
// location. Locations not listed default to no whitespace.
//
//nolint:gochecknoglobals // Lookup table.
var locationDefaults = map[Location]string{
	LocAssignmentOperator:         " ",
	LocBinaryOperator:             " ",
	LocExtBinaryOperator:          " ",
	LocVariableInitializer:        " ",
	LocTernaryTrue:                " ",
	LocTernaryFalse:               " ",
	LocLambdaArrow:                " ",
	LocFunctionTypeArrow:          " ",
	LocNewClassNew:                "",
	LocExtendsPrefix:              " ",
	LocImplementsPrefix:           " ",
	LocThrowsPrefix:               " ",
	LocTypeBounds:                 " ",
	LocImportStatic:               " ",
	LocImportAlias:                " ",
	LocInstanceOfSuffix:           " ",
	LocForEachVariableSuffix:      " ",
	LocWildcardBound:              " ",
	LocWhenBranchExpressionSuffix: " ",
	LocTypeReferencePrefix:        "",
}

// DefaultWhitespace returns the whitespace a freshly synthesized node uses at
// this location when none was captured.
func (l Location) DefaultWhitespace() string {
	return locationDefaults[l]
}

// notNodePrefix lists locations whose names end in Prefix but which sit
// inside a node rather than in front of it.
//
//nolint:gochecknoglobals // Lookup table.
var notNodePrefix = map[Location]bool{
	LocExtendsPrefix:       true,
	LocImplementsPrefix:    true,
	LocThrowsPrefix:        true,
	LocTypeReferencePrefix: true,
	LocMarkerPrefix:        true,
}

// IsPrefix reports whether l is the location of a node's own prefix.
func (l Location) IsPrefix() bool {
	return strings.HasSuffix(l.String(), "Prefix") && !notNodePrefix[l]
}
