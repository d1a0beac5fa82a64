package domain

import (
	"strconv"
	"strings"
)

// Collection rule operators.
const (
	OpEquals    = "=="
	OpNotEquals = "!="
	OpContains  = "contains"
	OpGreater   = ">"
	OpLess      = "<"
)

// CollectionRule is one declarative membership clause of a collection.
// Logic on rule i (i > 0) combines that rule's result with the running
// accumulator; the first rule's Logic is ignored.
type CollectionRule struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
	Logic    string `json:"logic,omitempty"` // "AND" | "OR"
}

// Collection computes a subcategory's game membership from rules instead
// of a hand-picked list.
type Collection struct {
	Rules         []CollectionRule `json:"rules"`
	AutoAdd       bool             `json:"auto_add"`
	MatchingCount int              `json:"matching_count,omitempty"`
}

// EvaluateRules reports whether game matches the rule list. Rules fold
// strictly left to right with no operator precedence: each rule's result
// is combined into the accumulator using that rule's own Logic connector.
// An empty rule list matches every game.
//
// This is the single shared implementation for both the authoring-time
// matching-count preview and run-time lobby population.
func EvaluateRules(game Game, rules []CollectionRule) bool {
	if len(rules) == 0 {
		return true
	}

	result := evaluateRule(game, rules[0])

	for i := 1; i < len(rules); i++ {
		ruleResult := evaluateRule(game, rules[i])
		if rules[i].Logic == "AND" {
			result = result && ruleResult
		} else {
			result = result || ruleResult
		}
	}

	return result
}

func evaluateRule(game Game, rule CollectionRule) bool {
	gameValue := strings.ToLower(game.FieldString(rule.Field))
	ruleValue := strings.ToLower(rule.Value)

	switch rule.Operator {
	case OpEquals:
		return gameValue == ruleValue
	case OpNotEquals:
		return gameValue != ruleValue
	case OpContains:
		return strings.Contains(gameValue, ruleValue)
	case OpGreater:
		lhs, lok := parseNumeric(game.FieldString(rule.Field))
		rhs, rok := parseNumeric(rule.Value)
		return lok && rok && lhs > rhs
	case OpLess:
		lhs, lok := parseNumeric(game.FieldString(rule.Field))
		rhs, rok := parseNumeric(rule.Value)
		return lok && rok && lhs < rhs
	default:
		return false
	}
}

// parseNumeric parses a float the way the rule editor expects; values
// that fail to parse compare as false on both sides.
func parseNumeric(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
