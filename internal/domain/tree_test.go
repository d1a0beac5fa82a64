package domain

import "testing"

func strPtr(s string) *string { return &s }

func testBrand() *Brand {
	return &Brand{
		ID:      "b1",
		Name:    "brand one",
		Locales: []string{"en-GB"},
		Categories: []Category{
			{ID: "c1", Order: 0},
			{ID: "c2", Order: 1},
			{ID: "c3", Order: 2},
			{ID: "c1a", ParentID: strPtr("c1"), Order: 0},
			{ID: "c1b", ParentID: strPtr("c1"), Order: 1},
		},
		Subcategories: []Subcategory{
			{ID: "s1", ParentCategory: strPtr("c1"), Order: 0},
			{ID: "s2", ParentCategory: strPtr("c1"), Order: 1},
			{ID: "s3", ParentCategory: strPtr("c2"), Order: 0},
		},
	}
}

func orderOf(t *testing.T, b *Brand, id string) int {
	t.Helper()
	c := b.Category(id)
	if c == nil {
		t.Fatalf("category %q not found", id)
	}
	return c.Order
}

func TestMoveCategorySwap(t *testing.T) {
	b := testBrand()

	if !b.MoveCategory("c2", MoveDown) {
		t.Fatal("MoveCategory(c2, down) = false, want true")
	}
	if got := orderOf(t, b, "c2"); got != 2 {
		t.Errorf("c2 order = %d, want 2", got)
	}
	if got := orderOf(t, b, "c3"); got != 1 {
		t.Errorf("c3 order = %d, want 1", got)
	}
	// untouched sibling and the other group keep their orders
	if got := orderOf(t, b, "c1"); got != 0 {
		t.Errorf("c1 order = %d, want 0", got)
	}
	if got := orderOf(t, b, "c1a"); got != 0 {
		t.Errorf("c1a order = %d, want 0", got)
	}
}

func TestMoveCategoryBoundary(t *testing.T) {
	b := testBrand()

	if b.MoveCategory("c1", MoveUp) {
		t.Error("MoveCategory(first, up) = true, want false")
	}
	if b.MoveCategory("c3", MoveDown) {
		t.Error("MoveCategory(last, down) = true, want false")
	}
	if b.MoveCategory("missing", MoveUp) {
		t.Error("MoveCategory(missing) = true, want false")
	}
	for _, c := range b.Categories {
		want := testBrand().Category(c.ID).Order
		if c.Order != want {
			t.Errorf("category %s order changed to %d, want %d", c.ID, c.Order, want)
		}
	}
}

func TestMoveCategoryWithinNestedGroup(t *testing.T) {
	b := testBrand()

	if !b.MoveCategory("c1b", MoveUp) {
		t.Fatal("MoveCategory(c1b, up) = false, want true")
	}
	if got := orderOf(t, b, "c1b"); got != 0 {
		t.Errorf("c1b order = %d, want 0", got)
	}
	if got := orderOf(t, b, "c1a"); got != 1 {
		t.Errorf("c1a order = %d, want 1", got)
	}
	// moving within the nested group never touches top-level orders
	if got := orderOf(t, b, "c2"); got != 1 {
		t.Errorf("c2 order = %d, want 1", got)
	}
}

func TestMoveSubcategorySwap(t *testing.T) {
	b := testBrand()

	if !b.MoveSubcategory("s1", MoveDown) {
		t.Fatal("MoveSubcategory(s1, down) = false, want true")
	}
	if got := b.Subcategory("s1").Order; got != 1 {
		t.Errorf("s1 order = %d, want 1", got)
	}
	if got := b.Subcategory("s2").Order; got != 0 {
		t.Errorf("s2 order = %d, want 0", got)
	}
	if got := b.Subcategory("s3").Order; got != 0 {
		t.Errorf("s3 order = %d, want 0 (other group untouched)", got)
	}
}

func TestMoveWithEqualOrdersKeepsInsertionOrder(t *testing.T) {
	// Two racing inserts can produce duplicate orders; the stable sort
	// must keep insertion order so moves stay deterministic.
	b := &Brand{
		ID: "b1",
		Categories: []Category{
			{ID: "x", Order: 5},
			{ID: "y", Order: 5},
		},
	}
	if !b.MoveCategory("y", MoveUp) {
		t.Fatal("MoveCategory(y, up) = false, want true")
	}
	// both orders were 5; the swap keeps values but must not panic or
	// reorder anything else
	if b.Category("x").Order != 5 || b.Category("y").Order != 5 {
		t.Errorf("orders changed: x=%d y=%d, want both 5", b.Category("x").Order, b.Category("y").Order)
	}
}

func TestAppendOrder(t *testing.T) {
	tests := []struct {
		name     string
		orders   []int
		expected int
	}{
		{"empty group", nil, 0},
		{"single sibling", []int{0}, 1},
		{"gapped orders", []int{3, 7, 5}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppendOrder(tt.orders); got != tt.expected {
				t.Errorf("AppendOrder(%v) = %d, want %d", tt.orders, got, tt.expected)
			}
		})
	}
}

func TestTailOrder(t *testing.T) {
	if got := TailOrder(nil); got != 1 {
		t.Errorf("TailOrder(nil) = %d, want 1", got)
	}
	if got := TailOrder([]int{0, 4, 2}); got != 5 {
		t.Errorf("TailOrder = %d, want 5", got)
	}
}

func TestMoveGlobalCategory(t *testing.T) {
	s := &LobbyState{
		GlobalCategories: []GlobalCategory{
			{ID: "g1", Order: 0},
			{ID: "g2", Order: 1},
		},
	}
	if !s.MoveGlobalCategory("g1", MoveDown) {
		t.Fatal("MoveGlobalCategory(g1, down) = false, want true")
	}
	if s.GlobalCategories[0].Order != 1 || s.GlobalCategories[1].Order != 0 {
		t.Errorf("orders = %d,%d, want 1,0", s.GlobalCategories[0].Order, s.GlobalCategories[1].Order)
	}
	if s.MoveGlobalCategory("g1", MoveDown) {
		t.Error("move past boundary = true, want false")
	}
}

func TestMoveGlobalSubcategory(t *testing.T) {
	s := &LobbyState{
		GlobalCategorySubcategories: []GlobalSubcategory{
			{ID: "gs1", ParentCategory: strPtr("g1"), Order: 2},
			{ID: "gs2", ParentCategory: strPtr("g1"), Order: 4},
		},
	}
	if !s.MoveGlobalSubcategory("gs2", MoveUp) {
		t.Fatal("MoveGlobalSubcategory(gs2, up) = false, want true")
	}
	if s.GlobalCategorySubcategories[0].Order != 4 || s.GlobalCategorySubcategories[1].Order != 2 {
		t.Error("orders not swapped")
	}
}
