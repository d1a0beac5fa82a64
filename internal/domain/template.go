package domain

import "strings"

// CategoryTemplates is the closed set of lobby category templates.
// Every category renders through exactly one of these.
var CategoryTemplates = []string{
	"Coin Arcade",
	"Ez Nav",
	"Game Shows",
	"Minigames Bingo",
	"Minigames Sportsbook",
	"Standard lobby category",
}

// TemplateKeys maps internal template keys to display labels.
// Both forms are accepted on input; storage always holds the label.
var TemplateKeys = map[string]string{
	"COIN_ARCADE":          "Coin Arcade",
	"EZ_NAV":               "Ez Nav",
	"GAME_SHOWS":           "Game Shows",
	"MINIGAMES_BINGO":      "Minigames Bingo",
	"MINIGAMES_SPORTSBOOK": "Minigames Sportsbook",
	"STANDARD":             "Standard lobby category",
}

// DefaultTemplate is used when a template value is empty or unrecognized.
const DefaultTemplate = "Standard lobby category"

// NormalizeTemplate maps an arbitrary template value onto the closed set.
// Matching is case-insensitive against both display labels and internal
// keys. Idempotent: normalizing an already-normalized value is a no-op.
func NormalizeTemplate(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return DefaultTemplate
	}
	for _, label := range CategoryTemplates {
		if label == raw {
			return label
		}
	}
	for key, label := range TemplateKeys {
		if strings.EqualFold(key, raw) {
			return label
		}
	}
	for _, label := range CategoryTemplates {
		if strings.EqualFold(label, raw) {
			return label
		}
	}
	return DefaultTemplate
}
