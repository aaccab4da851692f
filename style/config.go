package style

// Config is the resolved, immutable style configuration for one
// formatting job. Once returned by Load it is read-only and may be
// shared freely across worker goroutines (spec.md §5, §9 "pass it
// explicitly rather than reading from global state").
type Config struct {
	ColumnLimit             int
	IndentWidth             int
	ContinuationIndentWidth int
	UseTabs                 bool
	ContinuationAlignStyle  ContinuationAlign
	SpacesBeforeComment     []int

	DedentClosingBrackets bool
	IndentClosingBrackets bool
	CoalesceBrackets      bool

	SplitAllCommaSeparatedValues          bool
	SplitAllTopLevelCommaSeparatedValues  bool
	SplitArgumentsWhenCommaTerminated     bool
	DisableEndingCommaHeuristic           bool
	DisableSplitListWithComment           bool
	EachDictEntryOnSeparateLine           bool
	ForceMultilineDict                    bool
	AllowMultilineLambdas                 bool
	AllowMultilineDictionaryKeys          bool
	ArithmeticPrecedenceIndication        bool
	NoSpacesAroundSelectedBinaryOperators map[string]bool

	SpacesAroundDefaultOrNamedAssign bool
	SpacesAroundPowerOperator        bool
	SpacesAroundSubscriptColon       bool
	SpacesAroundDictDelimiters       bool
	SpacesAroundListDelimiters       bool
	SpacesAroundTupleDelimiters      bool
	SpaceInsideBrackets              bool
	SpaceBetweenEndingCommaAndClosingBracket bool

	BlankLinesAroundTopLevelDefinition           int
	BlankLinesBetweenTopLevelImportsAndVariables int
	BlankLineBeforeModuleDocstring                bool
	BlankLineBeforeClassDocstring                  bool
	BlankLineBeforeNestedClassOrDef                bool

	JoinMultipleLines bool

	IndentDictionaryValue                 bool
	IndentBlankLines                      bool
	AllowSplitBeforeDictValue             bool
	AllowSplitBeforeDefaultOrNamedAssigns bool
	SplitComplexComprehension             bool
	SplitBeforeClosingBracket             bool
	SplitBeforeFirstArgument              bool

	I18nComment      string
	I18nFunctionCall []string

	SplitPenaltyExcessCharacter     int
	SplitPenaltyAfterOpeningBracket int
	SplitPenaltyArithmeticOperator  int
	SplitPenaltyBeforeIfExpr        int
	SplitPenaltyComprehension       int
	SplitPenaltyForAddedLineSplit   int

	// SplitPenalties holds any SPLIT_PENALTY_* knob not promoted to a
	// named field above, keyed by its full knob name.
	SplitPenalties map[string]int
}

// Default is the conservative baseline described by spec.md §6's table.
func Default() Config {
	return Config{
		ColumnLimit:             79,
		IndentWidth:             4,
		ContinuationIndentWidth: 4,
		UseTabs:                 false,
		ContinuationAlignStyle:  AlignSpace,
		SpacesBeforeComment:     []int{2},

		SplitArgumentsWhenCommaTerminated: true,
		EachDictEntryOnSeparateLine:       true,

		SpacesAroundDictDelimiters:  false,
		SpacesAroundListDelimiters:  false,
		SpacesAroundTupleDelimiters: false,

		BlankLinesAroundTopLevelDefinition:           2,
		BlankLinesBetweenTopLevelImportsAndVariables: 1,

		JoinMultipleLines: false,

		SplitPenaltyExcessCharacter:     100 * 30,
		SplitPenaltyAfterOpeningBracket: 300,
		SplitPenaltyArithmeticOperator:  300,
		SplitPenaltyBeforeIfExpr:        100,
		SplitPenaltyComprehension:       80,
		SplitPenaltyForAddedLineSplit:   30,

		NoSpacesAroundSelectedBinaryOperators: map[string]bool{},
		SplitPenalties:                        map[string]int{},
	}
}

// Chromium is a wider-column, 2-space baseline, analogous to how the
// teacher's DatabaseConfig carries one named preset per deployment target
// (spec.md §6.1): here one named preset per widely-used style sheet.
func Chromium() Config {
	c := Default()
	c.ColumnLimit = 80
	c.IndentWidth = 2
	c.ContinuationIndentWidth = 4
	c.SplitArgumentsWhenCommaTerminated = false
	return c
}

// Baseline looks up a named baseline (case-insensitive), the based_on_style
// value a style file or CLI flag names.
func Baseline(name string) (Config, bool) {
	switch normalizeKey(name) {
	case "", "DEFAULT", "PEP8":
		return Default(), true
	case "CHROMIUM":
		return Chromium(), true
	default:
		return Config{}, false
	}
}
