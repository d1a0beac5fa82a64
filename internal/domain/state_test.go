package domain

import (
	"encoding/json"
	"testing"
)

func resolverState() *LobbyState {
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
						Order:          0,
						IsHome:         true,
						DisplayedInNav: true,
						Template:       "Standard lobby category",
						NavIcon:        "home",
						Type:           CategoryTypeCategory,
						Slug:           Translations{"en-GB": "home"},
						NavLabel:       Translations{"en-GB": "Home"},
					},
					{
						ID:             "cat-slots",
						Name:           "Slots",
						Order:          1,
						DisplayedInNav: true,
						Template:       "Standard lobby category",
						Type:           CategoryTypeCategory,
						Slug:           Translations{"en-GB": "slots"},
						NavLabel:       Translations{"en-GB": "Slots"},
					},
				},
				Subcategories: []Subcategory{
					{ID: "sub-b2", SubcategoryName: "Brand Two", ParentCategory: strPtr("cat-home"), Order: 2},
					{ID: "sub-b1", SubcategoryName: "Brand One", ParentCategory: strPtr("cat-home"), Order: 1},
					{ID: "sub-other", SubcategoryName: "Elsewhere", ParentCategory: strPtr("cat-slots"), Order: 0},
				},
			},
		},
		GlobalCategories: []GlobalCategory{
			{
				ID:             "g1",
				Name:           "Global Arcade",
				Order:          0,
				DisplayedInNav: false,
				Template:       "Ez Nav",
				NavIcon:        "arcade",
				NewGamesCount:  true,
				Type:           CategoryTypeCategory,
				URL:            "",
				Slug:           Translations{"en-gb": "arcade"},
				NavLabel:       Translations{"en-gb": "Arcade"},
			},
		},
		GlobalCategorySubcategories: []GlobalSubcategory{
			{ID: "gsub-2", SubcategoryName: "Global Two", ParentCategory: strPtr("g1"), Order: 5},
			{ID: "gsub-1", SubcategoryName: "Global One", ParentCategory: strPtr("g1"), Order: 3},
			{ID: "gsub-x", SubcategoryName: "Other Parent", ParentCategory: strPtr("g2"), Order: 0},
		},
		GlobalLocales: []string{"en-gb", "de-at"},
	}
}

func TestResolveCategoryUnlinked(t *testing.T) {
	s := resolverState()

	eff := s.ResolveCategory("bwincom", "cat-home")
	if eff == nil {
		t.Fatal("ResolveCategory returned nil")
	}
	if eff.Template != "Standard lobby category" {
		t.Errorf("template = %q, want brand-local default", eff.Template)
	}
	if eff.Slug["en-GB"] != "home" {
		t.Errorf("slug = %v, want brand-local", eff.Slug)
	}
	// brand subcategories sorted by order, no globals without a link
	if len(eff.Subcategories) != 2 {
		t.Fatalf("got %d subcategories, want 2", len(eff.Subcategories))
	}
	if eff.Subcategories[0].ID != "sub-b1" || eff.Subcategories[1].ID != "sub-b2" {
		t.Errorf("subcategory order = %s,%s, want sub-b1,sub-b2",
			eff.Subcategories[0].ID, eff.Subcategories[1].ID)
	}
}

func TestResolveCategoryLinkedOverridesPresentation(t *testing.T) {
	s := resolverState()
	s.Brands[0].Categories[0].GlobalCategoryID = strPtr("g1")

	eff := s.ResolveCategory("bwincom", "cat-home")
	if eff == nil {
		t.Fatal("ResolveCategory returned nil")
	}

	// structural fields stay brand-local
	if eff.ID != "cat-home" || !eff.IsHome || eff.ParentID != nil || eff.Order != 0 {
		t.Errorf("structural fields changed: id=%s is_home=%v parent=%v order=%d",
			eff.ID, eff.IsHome, eff.ParentID, eff.Order)
	}
	if eff.Name != "Home" {
		t.Errorf("name = %q, want brand-local Home", eff.Name)
	}

	// presentational fields come from the linked global
	if eff.Template != "Ez Nav" {
		t.Errorf("template = %q, want Ez Nav", eff.Template)
	}
	if eff.DisplayedInNav {
		t.Error("displayed_in_nav = true, want global value false")
	}
	if eff.NavIcon != "arcade" || !eff.NewGamesCount {
		t.Errorf("nav_icon=%q new_games_count=%v, want arcade/true", eff.NavIcon, eff.NewGamesCount)
	}
	if eff.Slug["en-gb"] != "arcade" || eff.NavLabel["en-gb"] != "Arcade" {
		t.Errorf("translations not inherited: slug=%v nav_label=%v", eff.Slug, eff.NavLabel)
	}

	// brand subs first (by order), then linked globals (by order)
	ids := make([]string, 0, len(eff.Subcategories))
	for _, sc := range eff.Subcategories {
		ids = append(ids, sc.ID)
	}
	want := []string{"sub-b1", "sub-b2", "gsub-1", "gsub-2"}
	if len(ids) != len(want) {
		t.Fatalf("subcategories = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("subcategories = %v, want %v", ids, want)
		}
	}
}

func TestResolveCategoryDanglingLink(t *testing.T) {
	s := resolverState()
	s.Brands[0].Categories[0].GlobalCategoryID = strPtr("deleted-global")

	eff := s.ResolveCategory("bwincom", "cat-home")
	if eff == nil {
		t.Fatal("ResolveCategory returned nil")
	}
	// a dangling link behaves like no link at all
	if eff.Template != "Standard lobby category" {
		t.Errorf("template = %q, want brand-local", eff.Template)
	}
	if len(eff.Subcategories) != 2 {
		t.Errorf("got %d subcategories, want brand-only 2", len(eff.Subcategories))
	}
}

func TestResolveCategoryMissing(t *testing.T) {
	s := resolverState()
	if eff := s.ResolveCategory("nope", "cat-home"); eff != nil {
		t.Error("unknown brand should resolve to nil")
	}
	if eff := s.ResolveCategory("bwincom", "nope"); eff != nil {
		t.Error("unknown category should resolve to nil")
	}
}

func TestResolveCategoryDoesNotAliasState(t *testing.T) {
	s := resolverState()
	s.Brands[0].Categories[0].GlobalCategoryID = strPtr("g1")

	eff := s.ResolveCategory("bwincom", "cat-home")
	eff.Slug["en-gb"] = "mutated"
	eff.NavLabel["en-gb"] = "mutated"

	if s.GlobalCategories[0].Slug["en-gb"] != "arcade" {
		t.Error("mutating the resolved view leaked into the global category slug")
	}
	if s.GlobalCategories[0].NavLabel["en-gb"] != "Arcade" {
		t.Error("mutating the resolved view leaked into the global category nav_label")
	}
}

func TestCloneIsolation(t *testing.T) {
	s := resolverState()
	c := s.Clone()

	c.Brands[0].Name = "changed"
	c.Brands[0].Categories[0].Slug["en-GB"] = "changed"
	c.GlobalLocales[0] = "fr-fr"

	if s.Brands[0].Name != "bwincom" {
		t.Error("clone shares brand struct with original")
	}
	if s.Brands[0].Categories[0].Slug["en-GB"] != "home" {
		t.Error("clone shares translation map with original")
	}
	if s.GlobalLocales[0] != "en-gb" {
		t.Error("clone shares locale slice with original")
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	raw := []byte(`{
		"brands": [{
			"id": "b1",
			"name": "b1",
			"categories": [{"id": "", "name": "", "template": "EZ_NAV"}],
			"subcategories": [{"id": "s1"}]
		}]
	}`)
	var s LobbyState
	if err := json.Unmarshal(raw, &s); err != nil {
		t.Fatal(err)
	}
	s.Normalize()

	if s.GlobalCategories == nil || s.GlobalCategorySubcategories == nil {
		t.Error("nil global arrays not replaced")
	}
	if len(s.GlobalLocales) == 0 {
		t.Error("empty global locales not defaulted")
	}

	c := &s.Brands[0].Categories[0]
	if c.ID == "" {
		t.Error("blank category id not generated")
	}
	if c.Name != "Untitled Category" {
		t.Errorf("category name = %q, want Untitled Category", c.Name)
	}
	if c.Template != "Ez Nav" {
		t.Errorf("template = %q, want normalized Ez Nav", c.Template)
	}
	if c.Type != CategoryTypeCategory {
		t.Errorf("type = %q, want %q", c.Type, CategoryTypeCategory)
	}
	if c.Slug == nil || c.NavLabel == nil {
		t.Error("nil translation maps not replaced")
	}

	sc := &s.Brands[0].Subcategories[0]
	if sc.SubcategoryName != "New subcategory" || sc.Type != SubcategoryTypeGameList || sc.LayoutType != DefaultLayout {
		t.Errorf("subcategory defaults not applied: %+v", sc)
	}
}

func TestSeedState(t *testing.T) {
	s := SeedState()
	b := s.Brand("bwincom")
	if b == nil {
		t.Fatal("seed has no bwincom brand")
	}
	home := b.Category("cat-home")
	if home == nil {
		t.Fatal("seed has no cat-home")
	}
	if !home.IsHome || home.ParentID != nil {
		t.Error("seed home must be a top-level home category")
	}
	if len(s.GlobalLocales) == 0 {
		t.Error("seed has no global locales")
	}
}
