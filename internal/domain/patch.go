package domain

import "encoding/json"

// Patches are typed partial updates. Pointer fields distinguish "leave
// unchanged" from "set"; the *Set flags additionally distinguish an
// explicit null from an absent key for the nullable references whose
// merge rules depend on the difference (parent links, global links).

// BrandPatch updates a brand's own fields.
type BrandPatch struct {
	Name    *string
	Locales []string
	LocalesSet bool
}

// UnmarshalJSON records which keys were present in the payload.
func (p *BrandPatch) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name    *string  `json:"name"`
		Locales []string `json:"locales"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	keys := presentKeys(data)
	p.Name = aux.Name
	p.Locales = aux.Locales
	p.LocalesSet = keys["locales"]
	return nil
}

// CategoryPatch updates a brand category.
type CategoryPatch struct {
	Name                *string
	ParentID            *string
	ParentIDSet         bool
	Order               *int
	Slug                Translations
	NavLabel            Translations
	DisplayedInNav      *bool
	Template            *string
	IsHome              *bool
	NavIcon             *string
	NewGamesCount       *bool
	Type                *string
	URL                 *string
	GlobalCategoryID    *string
	GlobalCategoryIDSet bool
	Targeting           *TargetingRule
	TargetingSet        bool
}

func (p *CategoryPatch) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name             *string        `json:"name"`
		ParentID         *string        `json:"parent_id"`
		Order            *int           `json:"order"`
		Slug             Translations   `json:"slug"`
		NavLabel         Translations   `json:"nav_label"`
		DisplayedInNav   *bool          `json:"displayed_in_nav"`
		Template         *string        `json:"template"`
		IsHome           *bool          `json:"is_home"`
		NavIcon          *string        `json:"nav_icon"`
		NewGamesCount    *bool          `json:"new_games_count"`
		Type             *string        `json:"type"`
		URL              *string        `json:"url"`
		GlobalCategoryID *string        `json:"global_category_id"`
		Targeting        *TargetingRule `json:"targeting"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	keys := presentKeys(data)
	p.Name = aux.Name
	p.ParentID = aux.ParentID
	p.ParentIDSet = keys["parent_id"]
	p.Order = aux.Order
	p.Slug = aux.Slug
	p.NavLabel = aux.NavLabel
	p.DisplayedInNav = aux.DisplayedInNav
	p.Template = aux.Template
	p.IsHome = aux.IsHome
	p.NavIcon = aux.NavIcon
	p.NewGamesCount = aux.NewGamesCount
	p.Type = aux.Type
	p.URL = aux.URL
	p.GlobalCategoryID = aux.GlobalCategoryID
	p.GlobalCategoryIDSet = keys["global_category_id"]
	p.Targeting = aux.Targeting
	p.TargetingSet = keys["targeting"]
	return nil
}

// SubcategoryPatch updates a brand subcategory.
type SubcategoryPatch struct {
	SubcategoryName   *string
	ParentCategory    *string
	ParentCategorySet bool
	DisplayedInNav    *bool
	Order             *int
	Type              *string
	LayoutType        *string
	Icon              *string
	Slug              Translations
	Label             Translations
	LabelSub          Translations
	SelectedGames     []SelectedGame
	SelectedGamesSet  bool
	Collection        *Collection
	CollectionSet     bool
}

func (p *SubcategoryPatch) UnmarshalJSON(data []byte) error {
	var aux struct {
		SubcategoryName *string        `json:"subcategory_name"`
		ParentCategory  *string        `json:"parent_category"`
		DisplayedInNav  *bool          `json:"displayed_in_nav"`
		Order           *int           `json:"order"`
		Type            *string        `json:"type"`
		LayoutType      *string        `json:"layout_type"`
		Icon            *string        `json:"icon"`
		Slug            Translations   `json:"slug"`
		Label           Translations   `json:"label"`
		LabelSub        Translations   `json:"label_sub"`
		SelectedGames   []SelectedGame `json:"selected_games"`
		Collection      *Collection    `json:"collection"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	keys := presentKeys(data)
	p.SubcategoryName = aux.SubcategoryName
	p.ParentCategory = aux.ParentCategory
	p.ParentCategorySet = keys["parent_category"]
	p.DisplayedInNav = aux.DisplayedInNav
	p.Order = aux.Order
	p.Type = aux.Type
	p.LayoutType = aux.LayoutType
	p.Icon = aux.Icon
	p.Slug = aux.Slug
	p.Label = aux.Label
	p.LabelSub = aux.LabelSub
	p.SelectedGames = aux.SelectedGames
	p.SelectedGamesSet = keys["selected_games"]
	p.Collection = aux.Collection
	p.CollectionSet = keys["collection"]
	return nil
}

// GlobalCategoryPatch updates a global category.
type GlobalCategoryPatch struct {
	Name           *string
	ParentID       *string
	ParentIDSet    bool
	Order          *int
	Slug           Translations
	NavLabel       Translations
	DisplayedInNav *bool
	Template       *string
	IsHome         *bool
	NavIcon        *string
	NewGamesCount  *bool
	Type           *string
	URL            *string
}

func (p *GlobalCategoryPatch) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name           *string      `json:"name"`
		ParentID       *string      `json:"parent_id"`
		Order          *int         `json:"order"`
		Slug           Translations `json:"slug"`
		NavLabel       Translations `json:"nav_label"`
		DisplayedInNav *bool        `json:"displayed_in_nav"`
		Template       *string      `json:"template"`
		IsHome         *bool        `json:"is_home"`
		NavIcon        *string      `json:"nav_icon"`
		NewGamesCount  *bool        `json:"new_games_count"`
		Type           *string      `json:"type"`
		URL            *string      `json:"url"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	keys := presentKeys(data)
	p.Name = aux.Name
	p.ParentID = aux.ParentID
	p.ParentIDSet = keys["parent_id"]
	p.Order = aux.Order
	p.Slug = aux.Slug
	p.NavLabel = aux.NavLabel
	p.DisplayedInNav = aux.DisplayedInNav
	p.Template = aux.Template
	p.IsHome = aux.IsHome
	p.NavIcon = aux.NavIcon
	p.NewGamesCount = aux.NewGamesCount
	p.Type = aux.Type
	p.URL = aux.URL
	return nil
}

// GlobalSubcategoryPatch updates a global subcategory.
type GlobalSubcategoryPatch struct {
	SubcategoryName   *string
	ParentCategory    *string
	ParentCategorySet bool
	DisplayedInNav    *bool
	Order             *int
	Type              *string
	LayoutType        *string
	Icon              *string
	Slug              Translations
	Label             Translations
	LabelSub          Translations
	SelectedGames     []SelectedGame
	SelectedGamesSet  bool
	Collection        *Collection
	CollectionSet     bool
}

func (p *GlobalSubcategoryPatch) UnmarshalJSON(data []byte) error {
	var sub SubcategoryPatch
	if err := sub.UnmarshalJSON(data); err != nil {
		return err
	}
	*p = GlobalSubcategoryPatch(sub)
	return nil
}

func presentKeys(data []byte) map[string]bool {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	keys := make(map[string]bool, len(raw))
	for k := range raw {
		keys[k] = true
	}
	return keys
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
