package domain

import "testing"

func TestTargetingEvaluate(t *testing.T) {
	ctx := TargetingContext{
		Device:   "mobile",
		Country:  "UK",
		Segment:  "vip",
		PlayerID: "player_123",
	}

	tests := []struct {
		name     string
		rule     *TargetingRule
		ctx      TargetingContext
		expected bool
	}{
		{
			name:     "nil rule matches everything",
			rule:     nil,
			ctx:      ctx,
			expected: true,
		},
		{
			name:     "empty rule matches everything",
			rule:     &TargetingRule{},
			ctx:      ctx,
			expected: true,
		},
		{
			name:     "device allowed",
			rule:     &TargetingRule{Devices: []string{"mobile", "desktop"}},
			ctx:      ctx,
			expected: true,
		},
		{
			name:     "device excluded",
			rule:     &TargetingRule{Devices: []string{"desktop"}},
			ctx:      ctx,
			expected: false,
		},
		{
			name:     "device constraint ignored without context device",
			rule:     &TargetingRule{Devices: []string{"desktop"}},
			ctx:      TargetingContext{Country: "UK"},
			expected: true,
		},
		{
			name:     "country allowed",
			rule:     &TargetingRule{Countries: []string{"UK", "Ireland"}},
			ctx:      ctx,
			expected: true,
		},
		{
			name:     "country excluded",
			rule:     &TargetingRule{Countries: []string{"France"}},
			ctx:      ctx,
			expected: false,
		},
		{
			name:     "segment match",
			rule:     &TargetingRule{Segment: "vip"},
			ctx:      ctx,
			expected: true,
		},
		{
			name:     "segment mismatch",
			rule:     &TargetingRule{Segment: "casual"},
			ctx:      ctx,
			expected: false,
		},
		{
			name:     "internal only blocks external viewer",
			rule:     &TargetingRule{InternalOnly: true},
			ctx:      ctx,
			expected: false,
		},
		{
			name:     "internal only passes internal viewer",
			rule:     &TargetingRule{InternalOnly: true},
			ctx:      TargetingContext{IsInternal: true},
			expected: true,
		},
		{
			name:     "player id allowed",
			rule:     &TargetingRule{PlayerIDs: []string{"player_123"}},
			ctx:      ctx,
			expected: true,
		},
		{
			name:     "player id excluded",
			rule:     &TargetingRule{PlayerIDs: []string{"player_999"}},
			ctx:      ctx,
			expected: false,
		},
		{
			name: "all dimensions must match",
			rule: &TargetingRule{
				Devices:   []string{"mobile"},
				Countries: []string{"UK"},
				Segment:   "vip",
				PlayerIDs: []string{"player_123"},
			},
			ctx:      ctx,
			expected: true,
		},
		{
			name: "single mismatch excludes",
			rule: &TargetingRule{
				Devices:   []string{"mobile"},
				Countries: []string{"France"},
				Segment:   "vip",
			},
			ctx:      ctx,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Evaluate(tt.ctx)
			if got != tt.expected {
				t.Errorf("Evaluate() = %v, want %v", got, tt.expected)
			}
		})
	}
}
