package domain

import (
	"encoding/json"
	"testing"
)

func categoryPatch(t *testing.T, body string) *CategoryPatch {
	t.Helper()
	var p CategoryPatch
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal patch: %v", err)
	}
	return &p
}

func subcategoryPatch(t *testing.T, body string) *SubcategoryPatch {
	t.Helper()
	var p SubcategoryPatch
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal patch: %v", err)
	}
	return &p
}

func TestAddCategoryDefaults(t *testing.T) {
	b := &Brand{ID: "b1", Locales: []string{"en-GB"}}

	cat := b.AddCategory("", nil)
	if cat.Name != "New Category" {
		t.Errorf("name = %q, want New Category", cat.Name)
	}
	if cat.Order != 1 {
		t.Errorf("order = %d, want 1 (tail order never below 1)", cat.Order)
	}
	if !cat.DisplayedInNav || cat.IsHome {
		t.Errorf("defaults wrong: displayed=%v is_home=%v", cat.DisplayedInNav, cat.IsHome)
	}
	if cat.Template != DefaultTemplate {
		t.Errorf("template = %q, want default", cat.Template)
	}
	if cat.Slug["en-GB"] != "" || cat.NavLabel["en-GB"] != "New Category" {
		t.Errorf("translation seed wrong: slug=%v nav_label=%v", cat.Slug, cat.NavLabel)
	}
	if cat.ID == "" {
		t.Error("no id generated")
	}
}

func TestAddCategoryOrderPlacement(t *testing.T) {
	b := &Brand{
		ID:      "b1",
		Locales: []string{"en-GB"},
		Categories: []Category{
			{ID: "c1", Order: 0},
			{ID: "c2", Order: 4},
			{ID: "c1a", ParentID: strPtr("c1"), Order: 7},
		},
	}

	// top-level insert trails the whole collection, not just the roots
	top := b.AddCategory("Top", nil)
	if top.Order != 8 {
		t.Errorf("top-level order = %d, want 8", top.Order)
	}

	// nested insert trails only its sibling group
	nested := b.AddCategory("Nested", strPtr("c1"))
	if nested.Order != 8 {
		t.Errorf("nested order = %d, want 8 (after c1a at 7)", nested.Order)
	}
	first := b.AddCategory("First child", strPtr("c2"))
	if first.Order != 0 {
		t.Errorf("first-child order = %d, want 0", first.Order)
	}
}

func TestApplyCategoryPatchIsHomeClearsParent(t *testing.T) {
	b := &Brand{
		ID: "b1",
		Categories: []Category{
			{ID: "c1", Order: 0},
			{ID: "c2", ParentID: strPtr("c1"), Order: 0, IsHome: true},
		},
	}

	// any update to a home category re-clears the parent, even one that
	// tries to set it
	cat := b.ApplyCategoryPatch("c2", categoryPatch(t, `{"parent_id": "c1"}`))
	if cat == nil {
		t.Fatal("patch returned nil")
	}
	if cat.ParentID != nil {
		t.Errorf("parent_id = %v, want nil while is_home", *cat.ParentID)
	}
}

func TestApplyCategoryPatchReparentAppends(t *testing.T) {
	b := &Brand{
		ID: "b1",
		Categories: []Category{
			{ID: "c1", Order: 0},
			{ID: "c1a", ParentID: strPtr("c1"), Order: 0},
			{ID: "c1b", ParentID: strPtr("c1"), Order: 1},
			{ID: "c2", Order: 1},
		},
	}

	cat := b.ApplyCategoryPatch("c2", categoryPatch(t, `{"parent_id": "c1"}`))
	if cat.Order != 2 {
		t.Errorf("order = %d, want 2 (appended after c1b)", cat.Order)
	}

	// moving to an empty group starts at 0
	cat = b.ApplyCategoryPatch("c1a", categoryPatch(t, `{"parent_id": "c2"}`))
	if cat.Order != 0 {
		t.Errorf("order = %d, want 0 (empty group)", cat.Order)
	}

	// same parent again: no order change
	cat = b.ApplyCategoryPatch("c1b", categoryPatch(t, `{"parent_id": "c1", "name": "renamed"}`))
	if cat.Order != 1 {
		t.Errorf("order = %d, want unchanged 1", cat.Order)
	}

	// explicit null and absent key behave differently: null reparents to root
	cat = b.ApplyCategoryPatch("c1b", categoryPatch(t, `{"parent_id": null}`))
	if cat.ParentID != nil {
		t.Error("explicit null did not clear parent")
	}
	if cat.Order != 2 {
		t.Errorf("order = %d, want 2 (appended after roots c1,c2)", cat.Order)
	}
}

func TestApplyCategoryPatchLinkClearsTranslations(t *testing.T) {
	b := &Brand{
		ID: "b1",
		Categories: []Category{
			{
				ID:       "c1",
				Slug:     Translations{"en-GB": "slots"},
				NavLabel: Translations{"en-GB": "Slots"},
			},
		},
	}

	// newly linking wipes the brand-local maps
	cat := b.ApplyCategoryPatch("c1", categoryPatch(t, `{"global_category_id": "g1", "slug": {"en-GB": "ignored"}}`))
	if len(cat.Slug) != 0 || len(cat.NavLabel) != 0 {
		t.Errorf("translations not cleared on link: slug=%v nav_label=%v", cat.Slug, cat.NavLabel)
	}

	// re-sending the same link is not a new link; maps merge normally
	cat = b.ApplyCategoryPatch("c1", categoryPatch(t, `{"global_category_id": "g1", "slug": {"en-GB": "kept"}}`))
	if cat.Slug["en-GB"] != "kept" {
		t.Errorf("slug = %v, want merged value while link unchanged", cat.Slug)
	}

	// unlinking merges normally too
	cat = b.ApplyCategoryPatch("c1", categoryPatch(t, `{"global_category_id": null, "nav_label": {"en-GB": "Back"}}`))
	if cat.GlobalCategoryID != nil {
		t.Error("unlink did not clear global_category_id")
	}
	if cat.NavLabel["en-GB"] != "Back" || cat.Slug["en-GB"] != "kept" {
		t.Errorf("merge after unlink wrong: slug=%v nav_label=%v", cat.Slug, cat.NavLabel)
	}
}

func TestApplyCategoryPatchTranslationsMergeKeywise(t *testing.T) {
	b := &Brand{
		ID: "b1",
		Categories: []Category{
			{ID: "c1", Slug: Translations{"en-GB": "slots", "de-AT": "spiele"}},
		},
	}
	cat := b.ApplyCategoryPatch("c1", categoryPatch(t, `{"slug": {"en-GB": "new-slots"}}`))
	if cat.Slug["en-GB"] != "new-slots" {
		t.Errorf("updated key = %q, want new-slots", cat.Slug["en-GB"])
	}
	if cat.Slug["de-AT"] != "spiele" {
		t.Errorf("untouched key = %q, want spiele (maps merge, never replace)", cat.Slug["de-AT"])
	}
}

func TestApplyCategoryPatchNormalizesTemplate(t *testing.T) {
	b := &Brand{ID: "b1", Categories: []Category{{ID: "c1", Template: DefaultTemplate}}}
	cat := b.ApplyCategoryPatch("c1", categoryPatch(t, `{"template": "GAME_SHOWS"}`))
	if cat.Template != "Game Shows" {
		t.Errorf("template = %q, want Game Shows", cat.Template)
	}
	cat = b.ApplyCategoryPatch("c1", categoryPatch(t, `{"template": "bogus"}`))
	if cat.Template != DefaultTemplate {
		t.Errorf("template = %q, want default for unknown value", cat.Template)
	}
}

func TestApplyCategoryPatchTargeting(t *testing.T) {
	b := &Brand{ID: "b1", Categories: []Category{{ID: "c1"}}}

	cat := b.ApplyCategoryPatch("c1", categoryPatch(t, `{"targeting": {"devices": ["mobile"], "internal_only": true}}`))
	if cat.Targeting == nil || !cat.Targeting.InternalOnly || len(cat.Targeting.Devices) != 1 {
		t.Fatalf("targeting not applied: %+v", cat.Targeting)
	}

	cat = b.ApplyCategoryPatch("c1", categoryPatch(t, `{"targeting": null}`))
	if cat.Targeting != nil {
		t.Error("explicit null did not clear targeting")
	}
}

func TestApplyCategoryPatchMissing(t *testing.T) {
	b := &Brand{ID: "b1"}
	if got := b.ApplyCategoryPatch("nope", categoryPatch(t, `{}`)); got != nil {
		t.Error("patching a missing category should return nil")
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	b := &Brand{
		ID: "b1",
		Categories: []Category{
			{ID: "c1", Order: 0},
			{ID: "c1a", ParentID: strPtr("c1"), Order: 0},
			{ID: "c2", Order: 1},
		},
		Subcategories: []Subcategory{
			{ID: "s1", ParentCategory: strPtr("c1")},
			{ID: "s2", ParentCategory: strPtr("c2")},
		},
	}

	if !b.DeleteCategory("c1") {
		t.Fatal("DeleteCategory = false, want true")
	}
	if b.Category("c1") != nil {
		t.Error("category still present")
	}
	if b.Category("c1a").ParentID != nil {
		t.Error("child category not promoted to root")
	}
	if b.Subcategory("s1").ParentCategory != nil {
		t.Error("owned subcategory not unmapped")
	}
	if parentKey(b.Subcategory("s2").ParentCategory) != "c2" {
		t.Error("unrelated subcategory was detached")
	}
	if b.DeleteCategory("c1") {
		t.Error("second delete = true, want false")
	}
}

func TestAddSubcategoryDefaults(t *testing.T) {
	b := &Brand{ID: "b1", Subcategories: []Subcategory{{ID: "s1", Order: 3}}}
	sc := b.AddSubcategory(strPtr("c1"))
	if sc.SubcategoryName != "New subcategory" {
		t.Errorf("name = %q", sc.SubcategoryName)
	}
	if sc.Type != SubcategoryTypeGameList || sc.LayoutType != DefaultLayout {
		t.Errorf("type=%q layout=%q, want Game List/Carousel", sc.Type, sc.LayoutType)
	}
	if sc.Order != 4 {
		t.Errorf("order = %d, want 4", sc.Order)
	}
	if parentKey(sc.ParentCategory) != "c1" {
		t.Error("parent not set")
	}
}

func TestApplySubcategoryPatch(t *testing.T) {
	b := &Brand{
		ID: "b1",
		Subcategories: []Subcategory{
			{ID: "s1", ParentCategory: strPtr("c1"), Order: 0, Label: Translations{"en-GB": "Top"}},
			{ID: "s2", ParentCategory: strPtr("c2"), Order: 5},
		},
	}

	sc := b.ApplySubcategoryPatch("s1", subcategoryPatch(t, `{
		"subcategory_name": "Hot Games",
		"parent_category": "c2",
		"label": {"de-AT": "Heiss"},
		"selected_games": [{"id": "g1", "name": "Starburst", "supplier": "NetEnt"}],
		"collection": {"rules": [{"field": "rtp", "operator": ">", "value": "95"}], "auto_add": true}
	}`))
	if sc == nil {
		t.Fatal("patch returned nil")
	}
	if sc.SubcategoryName != "Hot Games" {
		t.Errorf("name = %q", sc.SubcategoryName)
	}
	if sc.Order != 6 {
		t.Errorf("order = %d, want 6 (appended after s2)", sc.Order)
	}
	if sc.Label["en-GB"] != "Top" || sc.Label["de-AT"] != "Heiss" {
		t.Errorf("label merge wrong: %v", sc.Label)
	}
	if len(sc.SelectedGames) != 1 || sc.SelectedGames[0].Name != "Starburst" {
		t.Errorf("selected_games = %+v", sc.SelectedGames)
	}
	if sc.Collection == nil || !sc.Collection.AutoAdd || len(sc.Collection.Rules) != 1 {
		t.Errorf("collection = %+v", sc.Collection)
	}

	// clearing the collection with explicit null
	sc = b.ApplySubcategoryPatch("s1", subcategoryPatch(t, `{"collection": null}`))
	if sc.Collection != nil {
		t.Error("explicit null did not clear collection")
	}
}

func TestDeleteSubcategory(t *testing.T) {
	b := &Brand{ID: "b1", Subcategories: []Subcategory{{ID: "s1"}}}
	if !b.DeleteSubcategory("s1") {
		t.Error("delete = false, want true")
	}
	if b.DeleteSubcategory("s1") {
		t.Error("second delete = true, want false")
	}
}

func TestAddGlobalCategory(t *testing.T) {
	s := &LobbyState{
		GlobalCategories: []GlobalCategory{{ID: "g1", Order: 0}},
		GlobalLocales:    []string{"en-gb", "de-at"},
	}
	gc := s.AddGlobalCategory(nil)
	if gc.Order != 1 {
		t.Errorf("order = %d, want 1 (appended after g1)", gc.Order)
	}
	if _, ok := gc.Slug["en-gb"]; !ok {
		t.Error("slug not seeded with global locales")
	}
	if _, ok := gc.NavLabel["de-at"]; !ok {
		t.Error("nav_label not seeded with global locales")
	}

	child := s.AddGlobalCategory(strPtr("g1"))
	if child.Order != 0 {
		t.Errorf("child order = %d, want 0 (first in its group)", child.Order)
	}
}

func TestApplyGlobalCategoryPatchEnsuresLocaleKeys(t *testing.T) {
	s := &LobbyState{
		GlobalCategories: []GlobalCategory{{ID: "g1", Slug: Translations{"en-gb": "arcade"}}},
		GlobalLocales:    []string{"en-gb", "de-at"},
	}
	gc := s.ApplyGlobalCategoryPatch("g1", &GlobalCategoryPatch{Slug: Translations{"en-gb": "new"}})
	if gc.Slug["en-gb"] != "new" {
		t.Errorf("slug = %v", gc.Slug)
	}
	if _, ok := gc.Slug["de-at"]; !ok {
		t.Error("missing global locale key not backfilled")
	}
}

func TestDeleteGlobalCategoryCascades(t *testing.T) {
	s := &LobbyState{
		GlobalCategories: []GlobalCategory{
			{ID: "g1"},
			{ID: "g1a", ParentID: strPtr("g1")},
		},
		GlobalCategorySubcategories: []GlobalSubcategory{
			{ID: "gs1", ParentCategory: strPtr("g1")},
		},
	}
	if !s.DeleteGlobalCategory("g1") {
		t.Fatal("delete = false, want true")
	}
	if s.GlobalCategory("g1a").ParentID != nil {
		t.Error("child global category not promoted")
	}
	if s.GlobalSubcategory("gs1").ParentCategory != nil {
		t.Error("global subcategory not unmapped")
	}
}

func TestSetGlobalLocales(t *testing.T) {
	s := &LobbyState{}
	got := s.SetGlobalLocales([]string{" EN-GB ", "de-AT", "en-gb"})
	if len(got) != 2 || got[0] != "en-gb" || got[1] != "de-at" {
		t.Errorf("locales = %v, want [en-gb de-at]", got)
	}
}

// End-to-end: edit flow of linking a home category to a global category
// and reading the resolved view back.
func TestLinkHomeCategoryScenario(t *testing.T) {
	s := SeedState()
	s.GlobalCategories = append(s.GlobalCategories, GlobalCategory{
		ID:             "g1",
		Name:           "Arcade",
		Template:       "Ez Nav",
		DisplayedInNav: true,
		Type:           CategoryTypeCategory,
		Slug:           Translations{"en-gb": "arcade"},
		NavLabel:       Translations{"en-gb": "Arcade"},
	})

	b := s.Brand("bwincom")
	cat := b.ApplyCategoryPatch("cat-home", categoryPatch(t, `{"global_category_id": "g1"}`))
	if cat == nil {
		t.Fatal("patch returned nil")
	}

	eff := s.ResolveCategory("bwincom", "cat-home")
	if eff == nil {
		t.Fatal("resolve returned nil")
	}
	if eff.Template != "Ez Nav" {
		t.Errorf("template = %q, want inherited Ez Nav", eff.Template)
	}
	if !eff.IsHome {
		t.Error("is_home lost through linking")
	}
	if eff.ParentID != nil {
		t.Error("parent_id should stay null")
	}
	if eff.Slug["en-gb"] != "arcade" {
		t.Errorf("slug = %v, want inherited", eff.Slug)
	}
}
