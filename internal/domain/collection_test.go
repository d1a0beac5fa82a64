package domain

import "testing"

func TestEvaluateRules(t *testing.T) {
	redTiger := Game{GameID: "g1", GameName: "Crazy Empire Spins", Studio: "Red Tiger", GameType: "Arcade", RTP: 90, Features: "Sticky Wilds, Multipliers"}
	netEntHigh := Game{GameID: "g2", GameName: "Starburst", Studio: "NetEnt", GameType: "Slots", RTP: 96}
	netEntLow := Game{GameID: "g3", GameName: "Gonzo", Studio: "NetEnt", GameType: "Slots", RTP: 90}

	leftFold := []CollectionRule{
		{Field: "studio", Operator: "==", Value: "Red Tiger"},
		{Field: "rtp", Operator: ">", Value: "95", Logic: "OR"},
	}

	tests := []struct {
		name     string
		game     Game
		rules    []CollectionRule
		expected bool
	}{
		{
			name:     "empty rule list matches every game",
			game:     netEntLow,
			rules:    nil,
			expected: true,
		},
		{
			name:     "equals is case-insensitive",
			game:     redTiger,
			rules:    []CollectionRule{{Field: "studio", Operator: "==", Value: "red tiger"}},
			expected: true,
		},
		{
			name:     "not equals",
			game:     netEntHigh,
			rules:    []CollectionRule{{Field: "studio", Operator: "!=", Value: "Red Tiger"}},
			expected: true,
		},
		{
			name:     "contains on features",
			game:     redTiger,
			rules:    []CollectionRule{{Field: "features", Operator: "contains", Value: "multipliers"}},
			expected: true,
		},
		{
			name:     "numeric greater than",
			game:     netEntHigh,
			rules:    []CollectionRule{{Field: "rtp", Operator: ">", Value: "95"}},
			expected: true,
		},
		{
			name:     "numeric less than",
			game:     redTiger,
			rules:    []CollectionRule{{Field: "rtp", Operator: "<", Value: "95"}},
			expected: true,
		},
		{
			name:     "unparseable numeric comparison is false",
			game:     redTiger,
			rules:    []CollectionRule{{Field: "studio", Operator: ">", Value: "95"}},
			expected: false,
		},
		{
			name:     "unknown operator is false",
			game:     redTiger,
			rules:    []CollectionRule{{Field: "studio", Operator: "matches", Value: "Red Tiger"}},
			expected: false,
		},
		{
			name:     "unknown field stringifies empty",
			game:     redTiger,
			rules:    []CollectionRule{{Field: "publisher", Operator: "==", Value: ""}},
			expected: true,
		},
		{
			name:     "left fold OR: first clause true",
			game:     redTiger,
			rules:    leftFold,
			expected: true,
		},
		{
			name:     "left fold OR: second clause true",
			game:     netEntHigh,
			rules:    leftFold,
			expected: true,
		},
		{
			name:     "left fold OR: both clauses false",
			game:     netEntLow,
			rules:    leftFold,
			expected: false,
		},
		{
			name: "strict left-to-right, no precedence",
			// (false OR true) AND false = false; with AND precedence it
			// would be false OR (true AND false) = false too, so use a
			// chain where the results differ:
			// (true OR false) AND false -> false under left fold,
			// true under AND-precedence reading.
			game: redTiger,
			rules: []CollectionRule{
				{Field: "studio", Operator: "==", Value: "Red Tiger"},
				{Field: "gametype", Operator: "==", Value: "Slots", Logic: "OR"},
				{Field: "rtp", Operator: ">", Value: "95", Logic: "AND"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRules(tt.game, tt.rules)
			if got != tt.expected {
				t.Errorf("EvaluateRules() = %v, want %v", got, tt.expected)
			}
		})
	}
}
