package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wsfmt/wsfmt/errs"
)

func normalizeKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Apply overlays a flat map of case-insensitive knob names onto cfg,
// returning a new Config (cfg is never mutated) and a ConfigError on an
// unknown knob name or a value of the wrong shape. This is the concrete
// form of spec.md §6's "a flat mapping from case-insensitive knob names
// to scalar values (integer, boolean, string, or list of integers for
// SPACES_BEFORE_COMMENT)".
func (cfg Config) Apply(overrides map[string]any) (Config, error) {
	out := cfg
	out.NoSpacesAroundSelectedBinaryOperators = copyBoolSet(cfg.NoSpacesAroundSelectedBinaryOperators)
	out.SplitPenalties = copyIntMap(cfg.SplitPenalties)

	for rawKey, value := range overrides {
		key := normalizeKey(rawKey)
		if err := out.applyOne(key, value); err != nil {
			return Config{}, err
		}
	}
	return out, nil
}

func (cfg *Config) applyOne(key string, value any) error {
	switch key {
	case ColumnLimit:
		return setInt(&cfg.ColumnLimit, key, value)
	case IndentWidth:
		return setInt(&cfg.IndentWidth, key, value)
	case ContinuationIndentWidth:
		return setInt(&cfg.ContinuationIndentWidth, key, value)
	case UseTabs:
		return setBool(&cfg.UseTabs, key, value)
	case ContinuationAlignStyle:
		s, ok := value.(string)
		if !ok {
			return errs.ConfigError{Message: key + " must be a string"}
		}
		align, ok := parseContinuationAlign(strings.ToLower(s))
		if !ok {
			return errs.ConfigError{Message: fmt.Sprintf("%s: unrecognized value %q", key, s)}
		}
		cfg.ContinuationAlignStyle = align
	case SpacesBeforeComment:
		ints, err := toIntList(key, value)
		if err != nil {
			return err
		}
		cfg.SpacesBeforeComment = ints
	case DedentClosingBrackets:
		return setBool(&cfg.DedentClosingBrackets, key, value)
	case IndentClosingBrackets:
		return setBool(&cfg.IndentClosingBrackets, key, value)
	case CoalesceBrackets:
		return setBool(&cfg.CoalesceBrackets, key, value)
	case SplitAllCommaSeparated:
		return setBool(&cfg.SplitAllCommaSeparatedValues, key, value)
	case SplitAllTopLevelComma:
		return setBool(&cfg.SplitAllTopLevelCommaSeparatedValues, key, value)
	case SplitArgumentsWhenCommaTerminated:
		return setBool(&cfg.SplitArgumentsWhenCommaTerminated, key, value)
	case DisableEndingCommaHeuristic:
		return setBool(&cfg.DisableEndingCommaHeuristic, key, value)
	case DisableSplitListWithComment:
		return setBool(&cfg.DisableSplitListWithComment, key, value)
	case EachDictEntryOnSeparateLine:
		return setBool(&cfg.EachDictEntryOnSeparateLine, key, value)
	case ForceMultilineDict:
		return setBool(&cfg.ForceMultilineDict, key, value)
	case AllowMultilineLambdas:
		return setBool(&cfg.AllowMultilineLambdas, key, value)
	case AllowMultilineDictionaryKeys:
		return setBool(&cfg.AllowMultilineDictionaryKeys, key, value)
	case ArithmeticPrecedenceIndication:
		return setBool(&cfg.ArithmeticPrecedenceIndication, key, value)
	case NoSpacesAroundSelectedBinaryOps:
		ops, err := toStringList(key, value)
		if err != nil {
			return err
		}
		if cfg.NoSpacesAroundSelectedBinaryOperators == nil {
			cfg.NoSpacesAroundSelectedBinaryOperators = map[string]bool{}
		}
		for _, op := range ops {
			cfg.NoSpacesAroundSelectedBinaryOperators[op] = true
		}
	case SpacesAroundDefaultOrNamedAssign:
		return setBool(&cfg.SpacesAroundDefaultOrNamedAssign, key, value)
	case SpacesAroundPowerOperator:
		return setBool(&cfg.SpacesAroundPowerOperator, key, value)
	case SpacesAroundSubscriptColon:
		return setBool(&cfg.SpacesAroundSubscriptColon, key, value)
	case SpacesAroundDictDelimiters:
		return setBool(&cfg.SpacesAroundDictDelimiters, key, value)
	case SpacesAroundListDelimiters:
		return setBool(&cfg.SpacesAroundListDelimiters, key, value)
	case SpacesAroundTupleDelimiters:
		return setBool(&cfg.SpacesAroundTupleDelimiters, key, value)
	case SpaceInsideBrackets:
		return setBool(&cfg.SpaceInsideBrackets, key, value)
	case SpaceBetweenEndingCommaAndClosingBracket:
		return setBool(&cfg.SpaceBetweenEndingCommaAndClosingBracket, key, value)
	case BlankLinesAroundTopLevelDefinition:
		return setInt(&cfg.BlankLinesAroundTopLevelDefinition, key, value)
	case BlankLinesBetweenTopLevelImportsAndVariables:
		return setInt(&cfg.BlankLinesBetweenTopLevelImportsAndVariables, key, value)
	case BlankLineBeforeModuleDocstring:
		return setBool(&cfg.BlankLineBeforeModuleDocstring, key, value)
	case BlankLineBeforeClassDocstring:
		return setBool(&cfg.BlankLineBeforeClassDocstring, key, value)
	case BlankLineBeforeNestedClassOrDef:
		return setBool(&cfg.BlankLineBeforeNestedClassOrDef, key, value)
	case JoinMultipleLines:
		return setBool(&cfg.JoinMultipleLines, key, value)
	case IndentDictionaryValue:
		return setBool(&cfg.IndentDictionaryValue, key, value)
	case IndentBlankLines:
		return setBool(&cfg.IndentBlankLines, key, value)
	case AllowSplitBeforeDictValue:
		return setBool(&cfg.AllowSplitBeforeDictValue, key, value)
	case AllowSplitBeforeDefaultOrNamedAssigns:
		return setBool(&cfg.AllowSplitBeforeDefaultOrNamedAssigns, key, value)
	case SplitComplexComprehension:
		return setBool(&cfg.SplitComplexComprehension, key, value)
	case SplitBeforeClosingBracket:
		return setBool(&cfg.SplitBeforeClosingBracket, key, value)
	case SplitBeforeFirstArgument:
		return setBool(&cfg.SplitBeforeFirstArgument, key, value)
	case I18nComment:
		s, ok := value.(string)
		if !ok {
			return errs.ConfigError{Message: key + " must be a string"}
		}
		cfg.I18nComment = s
	case I18nFunctionCall:
		fns, err := toStringList(key, value)
		if err != nil {
			return err
		}
		cfg.I18nFunctionCall = fns
	case SplitPenaltyExcessCharacter:
		return setInt(&cfg.SplitPenaltyExcessCharacter, key, value)
	case SplitPenaltyAfterOpeningBracket:
		return setInt(&cfg.SplitPenaltyAfterOpeningBracket, key, value)
	case SplitPenaltyArithmeticOperator:
		return setInt(&cfg.SplitPenaltyArithmeticOperator, key, value)
	case SplitPenaltyBeforeIfExpr:
		return setInt(&cfg.SplitPenaltyBeforeIfExpr, key, value)
	case SplitPenaltyComprehension:
		return setInt(&cfg.SplitPenaltyComprehension, key, value)
	case SplitPenaltyForAddedLineSplit:
		return setInt(&cfg.SplitPenaltyForAddedLineSplit, key, value)
	default:
		if strings.HasPrefix(key, "SPLIT_PENALTY_") {
			n, err := toInt(key, value)
			if err != nil {
				return err
			}
			if cfg.SplitPenalties == nil {
				cfg.SplitPenalties = map[string]int{}
			}
			cfg.SplitPenalties[key] = n
			return nil
		}
		return errs.ConfigError{Message: "unknown style knob: " + key}
	}
	return nil
}

func setBool(field *bool, key string, value any) error {
	b, ok := value.(bool)
	if !ok {
		return errs.ConfigError{Message: key + " must be a boolean"}
	}
	*field = b
	return nil
}

func setInt(field *int, key string, value any) error {
	n, err := toInt(key, value)
	if err != nil {
		return err
	}
	*field = n
	return nil
}

func toInt(key string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, errs.ConfigError{Message: key + " must be an integer"}
		}
		return n, nil
	default:
		return 0, errs.ConfigError{Message: key + " must be an integer"}
	}
}

func toIntList(key string, value any) ([]int, error) {
	raw, ok := value.([]any)
	if !ok {
		return nil, errs.ConfigError{Message: key + " must be a list of integers"}
	}
	out := make([]int, 0, len(raw))
	for _, item := range raw {
		n, err := toInt(key, item)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func toStringList(key string, value any) ([]string, error) {
	raw, ok := value.([]any)
	if !ok {
		return nil, errs.ConfigError{Message: key + " must be a list of strings"}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, errs.ConfigError{Message: key + " must be a list of strings"}
		}
		out = append(out, s)
	}
	return out, nil
}

func copyBoolSet(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
