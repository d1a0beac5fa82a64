package domain

// AvailableCountries lists the country codes selectable in targeting rules.
var AvailableCountries = []string{
	"UK",
	"Ireland",
	"Austria",
	"Canada",
	"Ontario",
	"France",
}

// AvailableDevices lists the device classes selectable in targeting rules.
var AvailableDevices = []string{
	"mobile",
	"desktop",
}

// TargetingRule constrains the visibility of a navigation node.
// Every field is optional; an absent or empty constraint never excludes.
type TargetingRule struct {
	Devices      []string `json:"devices,omitempty"`
	Countries    []string `json:"countries,omitempty"`
	Segment      string   `json:"segment,omitempty"`
	InternalOnly bool     `json:"internal_only,omitempty"`
	PlayerIDs    []string `json:"player_ids,omitempty"`
}

// TargetingContext describes the viewer a node is evaluated against.
type TargetingContext struct {
	Device     string `json:"device"`
	Country    string `json:"country"`
	Segment    string `json:"segment"`
	IsInternal bool   `json:"is_internal"`
	PlayerID   string `json:"player_id"`
}

// Evaluate reports whether a node with this rule is visible to ctx.
// Constraints combine with logical AND: any single mismatch hides the
// node. A nil rule matches everything.
func (r *TargetingRule) Evaluate(ctx TargetingContext) bool {
	if r == nil {
		return true
	}

	if len(r.Devices) > 0 && ctx.Device != "" {
		if !containsString(r.Devices, ctx.Device) {
			return false
		}
	}

	if len(r.Countries) > 0 && ctx.Country != "" {
		if !containsString(r.Countries, ctx.Country) {
			return false
		}
	}

	if r.Segment != "" && ctx.Segment != r.Segment {
		return false
	}

	if r.InternalOnly && !ctx.IsInternal {
		return false
	}

	if len(r.PlayerIDs) > 0 && ctx.PlayerID != "" {
		if !containsString(r.PlayerIDs, ctx.PlayerID) {
			return false
		}
	}

	return true
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
