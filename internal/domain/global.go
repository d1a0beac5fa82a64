package domain

// GlobalCategory is a shared, brand-independent template category that
// brand categories may link to for inherited presentation. ParentID
// points at another global category or nil; globals never link onward.
type GlobalCategory struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	ParentID       *string      `json:"parent_id"`
	Order          int          `json:"order"`
	Slug           Translations `json:"slug"`
	NavLabel       Translations `json:"nav_label"`
	DisplayedInNav bool         `json:"displayed_in_nav"`
	Template       string       `json:"template"`
	IsHome         bool         `json:"is_home"`
	NavIcon        string       `json:"nav_icon"`
	NewGamesCount  bool         `json:"new_games_count"`
	Type           string       `json:"type"`
	URL            string       `json:"url"`
}

// GlobalSubcategory is a subcategory owned by a global category.
// ParentCategory points at a GlobalCategory id or nil.
type GlobalSubcategory struct {
	ID              string         `json:"id"`
	SubcategoryName string         `json:"subcategory_name"`
	ParentCategory  *string        `json:"parent_category"`
	DisplayedInNav  bool           `json:"displayed_in_nav"`
	Order           int            `json:"order"`
	Type            string         `json:"type"`
	LayoutType      string         `json:"layout_type"`
	Icon            string         `json:"icon"`
	Slug            Translations   `json:"slug"`
	Label           Translations   `json:"label"`
	LabelSub        Translations   `json:"label_sub"`
	SelectedGames   []SelectedGame `json:"selected_games,omitempty"`
	Collection      *Collection    `json:"collection,omitempty"`
}

// AsSubcategory converts a global subcategory to the brand subcategory
// shape used in resolved views. The resolver concatenates these after
// brand-owned subcategories without deduplication.
func (g *GlobalSubcategory) AsSubcategory() Subcategory {
	return Subcategory{
		ID:              g.ID,
		SubcategoryName: g.SubcategoryName,
		ParentCategory:  clonePtr(g.ParentCategory),
		DisplayedInNav:  g.DisplayedInNav,
		Order:           g.Order,
		Type:            g.Type,
		LayoutType:      g.LayoutType,
		Icon:            g.Icon,
		Slug:            g.Slug.Clone(),
		Label:           g.Label.Clone(),
		LabelSub:        g.LabelSub.Clone(),
		SelectedGames:   append([]SelectedGame(nil), g.SelectedGames...),
		Collection:      cloneCollection(g.Collection),
	}
}

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneCollection(c *Collection) *Collection {
	if c == nil {
		return nil
	}
	out := *c
	out.Rules = append([]CollectionRule(nil), c.Rules...)
	return &out
}
