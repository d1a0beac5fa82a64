package domain

import (
	"encoding/json"
	"sort"
)

// LobbyState is the whole CMS document: every brand tree plus the shared
// global catalog. It is persisted as a single JSON blob and replaced
// wholesale on every save; there are no partial updates at the storage
// boundary.
type LobbyState struct {
	Brands                      []Brand             `json:"brands"`
	GlobalCategories            []GlobalCategory    `json:"globalCategories"`
	GlobalCategorySubcategories []GlobalSubcategory `json:"globalCategorySubcategories"`
	GlobalLocales               []string            `json:"globalLocales"`
}

// EffectiveCategory is the computed render view of a brand category:
// brand structural fields, presentational fields possibly inherited from
// a linked global category, and the assembled subcategory list.
type EffectiveCategory struct {
	Category
	Subcategories []Subcategory `json:"subcategories"`
}

// SeedState is the document a fresh install starts from.
func SeedState() *LobbyState {
	return &LobbyState{
		Brands: []Brand{
			{
				ID:      "bwincom",
				Name:    "bwincom",
				Locales: []string{"en-GB"},
				Categories: []Category{
					{
						ID:             "cat-home",
						Name:           "Home",
						ParentID:       nil,
						Order:          0,
						Slug:           Translations{"en-GB": "home"},
						NavLabel:       Translations{"en-GB": "Home"},
						DisplayedInNav: true,
						Template:       DefaultTemplate,
						IsHome:         true,
						NavIcon:        "home",
						NewGamesCount:  false,
						Type:           CategoryTypeCategory,
						URL:            "",
					},
				},
				Subcategories: []Subcategory{},
			},
		},
		GlobalCategories:            []GlobalCategory{},
		GlobalCategorySubcategories: []GlobalSubcategory{},
		GlobalLocales:               []string{"en-gb", "de-at"},
	}
}

// Clone deep-copies the document through a JSON round trip, matching the
// copy-on-write discipline every mutation follows.
func (s *LobbyState) Clone() *LobbyState {
	raw, err := json.Marshal(s)
	if err != nil {
		// LobbyState contains only JSON-safe types; this cannot fail.
		panic(err)
	}
	var out LobbyState
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

// Brand returns the brand with the given id, or nil.
func (s *LobbyState) Brand(id string) *Brand {
	for i := range s.Brands {
		if s.Brands[i].ID == id {
			return &s.Brands[i]
		}
	}
	return nil
}

// GlobalCategory returns the global category with the given id, or nil.
func (s *LobbyState) GlobalCategory(id string) *GlobalCategory {
	for i := range s.GlobalCategories {
		if s.GlobalCategories[i].ID == id {
			return &s.GlobalCategories[i]
		}
	}
	return nil
}

// GlobalSubcategory returns the global subcategory with the given id, or nil.
func (s *LobbyState) GlobalSubcategory(id string) *GlobalSubcategory {
	for i := range s.GlobalCategorySubcategories {
		if s.GlobalCategorySubcategories[i].ID == id {
			return &s.GlobalCategorySubcategories[i]
		}
	}
	return nil
}

// Normalize fills defaults on a loaded document so the rest of the code
// never sees nil maps, blank ids or out-of-set templates. Documents
// written by older editors are brought up to the current shape in place.
func (s *LobbyState) Normalize() {
	if s.Brands == nil {
		s.Brands = []Brand{}
	}
	if s.GlobalCategories == nil {
		s.GlobalCategories = []GlobalCategory{}
	}
	if s.GlobalCategorySubcategories == nil {
		s.GlobalCategorySubcategories = []GlobalSubcategory{}
	}
	s.GlobalLocales = NormalizeLocales(s.GlobalLocales)
	if len(s.GlobalLocales) == 0 {
		s.GlobalLocales = []string{"en-gb", "de-at"}
	}

	for bi := range s.Brands {
		b := &s.Brands[bi]
		if b.Locales == nil {
			b.Locales = []string{}
		}
		for ci := range b.Categories {
			c := &b.Categories[ci]
			if c.ID == "" {
				c.ID = NewID()
			}
			if c.Name == "" {
				c.Name = c.NavLabel[b.BaseLocales()[0]]
			}
			if c.Name == "" {
				c.Name = "Untitled Category"
			}
			c.Slug = c.Slug.Clone()
			c.NavLabel = c.NavLabel.Clone()
			c.Template = NormalizeTemplate(c.Template)
			if c.Type == "" {
				c.Type = CategoryTypeCategory
			}
		}
		for si := range b.Subcategories {
			normalizeSubcategoryDefaults(&b.Subcategories[si])
		}
	}

	for gi := range s.GlobalCategories {
		g := &s.GlobalCategories[gi]
		if g.ID == "" {
			g.ID = NewID()
		}
		if g.Name == "" {
			g.Name = "Global Category"
		}
		g.Slug = g.Slug.Clone()
		g.NavLabel = g.NavLabel.Clone()
		g.Template = NormalizeTemplate(g.Template)
		if g.Type == "" {
			g.Type = CategoryTypeCategory
		}
	}
	for gi := range s.GlobalCategorySubcategories {
		g := &s.GlobalCategorySubcategories[gi]
		if g.ID == "" {
			g.ID = NewID()
		}
		if g.SubcategoryName == "" {
			g.SubcategoryName = "Global subcategory"
		}
		if g.Type == "" {
			g.Type = SubcategoryTypeGameList
		}
		if g.LayoutType == "" {
			g.LayoutType = DefaultLayout
		}
		g.Slug = g.Slug.Clone()
		g.Label = g.Label.Clone()
		g.LabelSub = g.LabelSub.Clone()
	}
}

func normalizeSubcategoryDefaults(sc *Subcategory) {
	if sc.ID == "" {
		sc.ID = NewID()
	}
	if sc.SubcategoryName == "" {
		sc.SubcategoryName = "New subcategory"
	}
	if sc.Type == "" {
		sc.Type = SubcategoryTypeGameList
	}
	if sc.LayoutType == "" {
		sc.LayoutType = DefaultLayout
	}
	sc.Slug = sc.Slug.Clone()
	sc.Label = sc.Label.Clone()
	sc.LabelSub = sc.LabelSub.Clone()
}

// ResolveCategory computes the effective view of a brand category:
//
//   - structural fields (id, name, parent_id, is_home, order, targeting)
//     always come from the brand category;
//   - when the category links to an existing global category, the
//     presentational fields (displayed_in_nav, template, nav_icon,
//     new_games_count, type, url, slug, nav_label) are taken from the
//     global one, overriding the brand-local values;
//   - subcategories are the brand's own (sorted by order) followed by
//     the linked global category's (sorted by order), never merged or
//     deduplicated.
//
// Returns nil when the brand or category does not exist: callers render
// nothing. Pure over the receiver; safe to call once per node per render.
func (s *LobbyState) ResolveCategory(brandID, categoryID string) *EffectiveCategory {
	b := s.Brand(brandID)
	if b == nil {
		return nil
	}
	cat := b.Category(categoryID)
	if cat == nil {
		return nil
	}

	var linked *GlobalCategory
	if cat.GlobalCategoryID != nil && *cat.GlobalCategoryID != "" {
		linked = s.GlobalCategory(*cat.GlobalCategoryID)
	}

	eff := &EffectiveCategory{Category: *cat}
	eff.Template = NormalizeTemplate(cat.Template)
	eff.Slug = cat.Slug.Clone()
	eff.NavLabel = cat.NavLabel.Clone()
	eff.ParentID = clonePtr(cat.ParentID)
	eff.GlobalCategoryID = clonePtr(cat.GlobalCategoryID)
	if cat.Targeting != nil {
		t := *cat.Targeting
		eff.Targeting = &t
	}

	if linked != nil {
		eff.DisplayedInNav = linked.DisplayedInNav
		eff.Template = NormalizeTemplate(linked.Template)
		eff.NavIcon = linked.NavIcon
		eff.NewGamesCount = linked.NewGamesCount
		eff.Type = linked.Type
		if eff.Type == "" {
			eff.Type = CategoryTypeCategory
		}
		eff.URL = linked.URL
		eff.Slug = linked.Slug.Clone()
		eff.NavLabel = linked.NavLabel.Clone()
	}

	brandSubs := make([]Subcategory, 0)
	for i := range b.Subcategories {
		if parentKey(b.Subcategories[i].ParentCategory) == cat.ID {
			brandSubs = append(brandSubs, b.Subcategories[i])
		}
	}
	sort.SliceStable(brandSubs, func(a, z int) bool {
		return brandSubs[a].Order < brandSubs[z].Order
	})

	var globalSubs []Subcategory
	if linked != nil {
		for i := range s.GlobalCategorySubcategories {
			g := &s.GlobalCategorySubcategories[i]
			if parentKey(g.ParentCategory) == linked.ID {
				globalSubs = append(globalSubs, g.AsSubcategory())
			}
		}
		sort.SliceStable(globalSubs, func(a, z int) bool {
			return globalSubs[a].Order < globalSubs[z].Order
		})
	}

	eff.Subcategories = append(brandSubs, globalSubs...)
	return eff
}
