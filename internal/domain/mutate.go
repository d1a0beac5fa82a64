package domain

// Lifecycle operations over the in-memory document. All of these mutate
// the receiver in place; the owning service clones the document first
// and swaps the mutated copy in (copy-on-write), so these never run on
// a snapshot another reader holds.

// ApplyPatch merges a brand patch.
func (b *Brand) ApplyPatch(p *BrandPatch) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.LocalesSet {
		b.Locales = append([]string(nil), p.Locales...)
	}
}

// AddCategory inserts a new category with editor defaults: appended at
// the tail of the collection-wide order, translation maps seeded with
// the brand's locales. A parent, when given, places it at the end of
// that parent's sibling group instead.
func (b *Brand) AddCategory(name string, parentID *string) *Category {
	if name == "" {
		name = "New Category"
	}
	baseLocales := b.BaseLocales()

	slug := Translations{}
	navLabel := Translations{}
	for _, l := range baseLocales {
		slug[l] = ""
		navLabel[l] = name
	}

	order := 0
	if parentID == nil {
		var orders []int
		for i := range b.Categories {
			orders = append(orders, b.Categories[i].Order)
		}
		order = TailOrder(orders)
	} else {
		var orders []int
		for i := range b.Categories {
			if parentKey(b.Categories[i].ParentID) == *parentID {
				orders = append(orders, b.Categories[i].Order)
			}
		}
		order = AppendOrder(orders)
	}

	cat := Category{
		ID:             NewID(),
		Name:           name,
		ParentID:       clonePtr(parentID),
		Order:          order,
		Slug:           slug,
		NavLabel:       navLabel,
		DisplayedInNav: true,
		Template:       DefaultTemplate,
		IsHome:         false,
		Type:           CategoryTypeCategory,
	}
	b.Categories = append(b.Categories, cat)
	return &b.Categories[len(b.Categories)-1]
}

// ApplyCategoryPatch merges a partial update into the category.
// Merge rules, applied in this order:
//
//   - is_home = true forces parent_id to null, on every update;
//   - a changed parent_id appends the node to the end of its new
//     sibling group (order = group max + 1, or 0 when empty);
//   - template values are normalized into the closed set;
//   - newly linking to a global category clears the brand-local slug
//     and nav_label maps so only inherited values show while linked;
//     otherwise translation maps merge key by key, never wholesale.
//
// Returns nil when the category does not exist.
func (b *Brand) ApplyCategoryPatch(id string, p *CategoryPatch) *Category {
	cat := b.Category(id)
	if cat == nil {
		return nil
	}

	linkChanged := p.GlobalCategoryIDSet && !strPtrEqual(p.GlobalCategoryID, cat.GlobalCategoryID)
	nowLinked := linkChanged && p.GlobalCategoryID != nil && *p.GlobalCategoryID != ""

	prevParent := clonePtr(cat.ParentID)
	prevSlug := cat.Slug
	prevNavLabel := cat.NavLabel

	if p.Name != nil {
		cat.Name = *p.Name
	}
	if p.ParentIDSet {
		cat.ParentID = normalizeRef(p.ParentID)
	}
	if p.Order != nil {
		cat.Order = *p.Order
	}
	if p.DisplayedInNav != nil {
		cat.DisplayedInNav = *p.DisplayedInNav
	}
	if p.IsHome != nil {
		cat.IsHome = *p.IsHome
	}
	if p.NavIcon != nil {
		cat.NavIcon = *p.NavIcon
	}
	if p.NewGamesCount != nil {
		cat.NewGamesCount = *p.NewGamesCount
	}
	if p.Type != nil {
		cat.Type = *p.Type
	}
	if p.URL != nil {
		cat.URL = *p.URL
	}
	if p.GlobalCategoryIDSet {
		cat.GlobalCategoryID = normalizeRef(p.GlobalCategoryID)
	}
	if p.TargetingSet {
		cat.Targeting = cloneTargeting(p.Targeting)
	}

	if cat.IsHome {
		cat.ParentID = nil
	}

	if p.ParentIDSet && parentKey(p.ParentID) != parentKey(prevParent) {
		newKey := parentKey(cat.ParentID)
		var orders []int
		for i := range b.Categories {
			sib := &b.Categories[i]
			if sib.ID != cat.ID && parentKey(sib.ParentID) == newKey {
				orders = append(orders, sib.Order)
			}
		}
		cat.Order = AppendOrder(orders)
	}

	if p.Template != nil {
		cat.Template = NormalizeTemplate(*p.Template)
	}

	if nowLinked {
		cat.Slug = Translations{}
		cat.NavLabel = Translations{}
	} else {
		cat.Slug = prevSlug.Merge(p.Slug)
		cat.NavLabel = prevNavLabel.Merge(p.NavLabel)
	}

	return cat
}

// DeleteCategory removes the category and detaches its dependents:
// child categories become top-level (parent_id = null) and owned
// subcategories become unmapped (parent_category = null).
func (b *Brand) DeleteCategory(id string) bool {
	idx := -1
	for i := range b.Categories {
		if b.Categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	b.Categories = append(b.Categories[:idx], b.Categories[idx+1:]...)
	for i := range b.Categories {
		if parentKey(b.Categories[i].ParentID) == id {
			b.Categories[i].ParentID = nil
		}
	}
	for i := range b.Subcategories {
		if parentKey(b.Subcategories[i].ParentCategory) == id {
			b.Subcategories[i].ParentCategory = nil
		}
	}
	return true
}

// AddSubcategory inserts a new subcategory with editor defaults,
// appended at the tail of the collection-wide order.
func (b *Brand) AddSubcategory(parentCategory *string) *Subcategory {
	var orders []int
	for i := range b.Subcategories {
		orders = append(orders, b.Subcategories[i].Order)
	}

	sc := Subcategory{
		ID:              NewID(),
		SubcategoryName: "New subcategory",
		ParentCategory:  clonePtr(parentCategory),
		DisplayedInNav:  true,
		Order:           TailOrder(orders),
		Type:            SubcategoryTypeGameList,
		LayoutType:      DefaultLayout,
		Slug:            Translations{},
		Label:           Translations{},
		LabelSub:        Translations{},
	}
	b.Subcategories = append(b.Subcategories, sc)
	return &b.Subcategories[len(b.Subcategories)-1]
}

// ApplySubcategoryPatch merges a partial update into the subcategory.
// Translation maps merge key by key; a changed parent_category appends
// the node to the end of its new sibling group. Returns nil when the
// subcategory does not exist.
func (b *Brand) ApplySubcategoryPatch(id string, p *SubcategoryPatch) *Subcategory {
	sc := b.Subcategory(id)
	if sc == nil {
		return nil
	}

	prevParent := clonePtr(sc.ParentCategory)

	if p.SubcategoryName != nil {
		sc.SubcategoryName = *p.SubcategoryName
	}
	if p.ParentCategorySet {
		sc.ParentCategory = normalizeRef(p.ParentCategory)
	}
	if p.DisplayedInNav != nil {
		sc.DisplayedInNav = *p.DisplayedInNav
	}
	if p.Order != nil {
		sc.Order = *p.Order
	}
	if p.Type != nil {
		sc.Type = *p.Type
	}
	if p.LayoutType != nil {
		sc.LayoutType = *p.LayoutType
	}
	if p.Icon != nil {
		sc.Icon = *p.Icon
	}
	if p.SelectedGamesSet {
		sc.SelectedGames = append([]SelectedGame(nil), p.SelectedGames...)
	}
	if p.CollectionSet {
		sc.Collection = cloneCollection(p.Collection)
	}

	sc.Slug = sc.Slug.Merge(p.Slug)
	sc.Label = sc.Label.Merge(p.Label)
	sc.LabelSub = sc.LabelSub.Merge(p.LabelSub)

	if p.ParentCategorySet && parentKey(p.ParentCategory) != parentKey(prevParent) {
		newKey := parentKey(sc.ParentCategory)
		var orders []int
		for i := range b.Subcategories {
			sib := &b.Subcategories[i]
			if sib.ID != sc.ID && parentKey(sib.ParentCategory) == newKey {
				orders = append(orders, sib.Order)
			}
		}
		sc.Order = AppendOrder(orders)
	}

	return sc
}

// DeleteSubcategory removes the subcategory.
func (b *Brand) DeleteSubcategory(id string) bool {
	for i := range b.Subcategories {
		if b.Subcategories[i].ID == id {
			b.Subcategories = append(b.Subcategories[:i], b.Subcategories[i+1:]...)
			return true
		}
	}
	return false
}

// AddGlobalCategory inserts a new global category, translation maps
// seeded with the global locale set, appended to its sibling group.
func (s *LobbyState) AddGlobalCategory(parentID *string) *GlobalCategory {
	var orders []int
	for i := range s.GlobalCategories {
		if parentKey(s.GlobalCategories[i].ParentID) == parentKey(parentID) {
			orders = append(orders, s.GlobalCategories[i].Order)
		}
	}

	gc := GlobalCategory{
		ID:             NewID(),
		Name:           "Global Category",
		ParentID:       clonePtr(parentID),
		Order:          AppendOrder(orders),
		Slug:           Translations{}.EnsureKeys(s.GlobalLocales),
		NavLabel:       Translations{}.EnsureKeys(s.GlobalLocales),
		DisplayedInNav: true,
		Template:       DefaultTemplate,
		Type:           CategoryTypeCategory,
	}
	s.GlobalCategories = append(s.GlobalCategories, gc)
	return &s.GlobalCategories[len(s.GlobalCategories)-1]
}

// ApplyGlobalCategoryPatch merges a partial update into a global
// category. Same rules as brand categories except translation maps are
// additionally re-keyed to the global locale set, and there is no
// global link to manage. Returns nil when the category does not exist.
func (s *LobbyState) ApplyGlobalCategoryPatch(id string, p *GlobalCategoryPatch) *GlobalCategory {
	gc := s.GlobalCategory(id)
	if gc == nil {
		return nil
	}

	prevParent := clonePtr(gc.ParentID)
	prevSlug := gc.Slug
	prevNavLabel := gc.NavLabel

	if p.Name != nil {
		gc.Name = *p.Name
	}
	if p.ParentIDSet {
		gc.ParentID = normalizeRef(p.ParentID)
	}
	if p.Order != nil {
		gc.Order = *p.Order
	}
	if p.DisplayedInNav != nil {
		gc.DisplayedInNav = *p.DisplayedInNav
	}
	if p.IsHome != nil {
		gc.IsHome = *p.IsHome
	}
	if p.NavIcon != nil {
		gc.NavIcon = *p.NavIcon
	}
	if p.NewGamesCount != nil {
		gc.NewGamesCount = *p.NewGamesCount
	}
	if p.Type != nil {
		gc.Type = *p.Type
	}
	if p.URL != nil {
		gc.URL = *p.URL
	}

	if gc.IsHome {
		gc.ParentID = nil
	}

	if p.ParentIDSet && parentKey(p.ParentID) != parentKey(prevParent) {
		newKey := parentKey(gc.ParentID)
		var orders []int
		for i := range s.GlobalCategories {
			sib := &s.GlobalCategories[i]
			if sib.ID != gc.ID && parentKey(sib.ParentID) == newKey {
				orders = append(orders, sib.Order)
			}
		}
		gc.Order = AppendOrder(orders)
	}

	if p.Template != nil {
		gc.Template = NormalizeTemplate(*p.Template)
	}

	gc.Slug = prevSlug.Merge(p.Slug).EnsureKeys(s.GlobalLocales)
	gc.NavLabel = prevNavLabel.Merge(p.NavLabel).EnsureKeys(s.GlobalLocales)

	return gc
}

// DeleteGlobalCategory removes the global category, promotes its child
// categories to root and unmaps its global subcategories.
func (s *LobbyState) DeleteGlobalCategory(id string) bool {
	idx := -1
	for i := range s.GlobalCategories {
		if s.GlobalCategories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	s.GlobalCategories = append(s.GlobalCategories[:idx], s.GlobalCategories[idx+1:]...)
	for i := range s.GlobalCategories {
		if parentKey(s.GlobalCategories[i].ParentID) == id {
			s.GlobalCategories[i].ParentID = nil
		}
	}
	for i := range s.GlobalCategorySubcategories {
		if parentKey(s.GlobalCategorySubcategories[i].ParentCategory) == id {
			s.GlobalCategorySubcategories[i].ParentCategory = nil
		}
	}
	return true
}

// AddGlobalSubcategory inserts a new global subcategory with editor
// defaults, appended at the tail of the collection-wide order.
func (s *LobbyState) AddGlobalSubcategory(parentCategory *string) *GlobalSubcategory {
	var orders []int
	for i := range s.GlobalCategorySubcategories {
		orders = append(orders, s.GlobalCategorySubcategories[i].Order)
	}

	gs := GlobalSubcategory{
		ID:              NewID(),
		SubcategoryName: "Global subcategory",
		ParentCategory:  clonePtr(parentCategory),
		DisplayedInNav:  true,
		Order:           TailOrder(orders),
		Type:            SubcategoryTypeGameList,
		LayoutType:      DefaultLayout,
		Slug:            Translations{}.EnsureKeys(s.GlobalLocales),
		Label:           Translations{}.EnsureKeys(s.GlobalLocales),
		LabelSub:        Translations{}.EnsureKeys(s.GlobalLocales),
	}
	s.GlobalCategorySubcategories = append(s.GlobalCategorySubcategories, gs)
	return &s.GlobalCategorySubcategories[len(s.GlobalCategorySubcategories)-1]
}

// ApplyGlobalSubcategoryPatch merges a partial update into a global
// subcategory, re-keying translation maps to the global locale set.
// Returns nil when the subcategory does not exist.
func (s *LobbyState) ApplyGlobalSubcategoryPatch(id string, p *GlobalSubcategoryPatch) *GlobalSubcategory {
	gs := s.GlobalSubcategory(id)
	if gs == nil {
		return nil
	}

	prevParent := clonePtr(gs.ParentCategory)

	if p.SubcategoryName != nil {
		gs.SubcategoryName = *p.SubcategoryName
	}
	if p.ParentCategorySet {
		gs.ParentCategory = normalizeRef(p.ParentCategory)
	}
	if p.DisplayedInNav != nil {
		gs.DisplayedInNav = *p.DisplayedInNav
	}
	if p.Order != nil {
		gs.Order = *p.Order
	}
	if p.Type != nil {
		gs.Type = *p.Type
	}
	if p.LayoutType != nil {
		gs.LayoutType = *p.LayoutType
	}
	if p.Icon != nil {
		gs.Icon = *p.Icon
	}
	if p.SelectedGamesSet {
		gs.SelectedGames = append([]SelectedGame(nil), p.SelectedGames...)
	}
	if p.CollectionSet {
		gs.Collection = cloneCollection(p.Collection)
	}

	gs.Slug = gs.Slug.Merge(p.Slug).EnsureKeys(s.GlobalLocales)
	gs.Label = gs.Label.Merge(p.Label).EnsureKeys(s.GlobalLocales)
	gs.LabelSub = gs.LabelSub.Merge(p.LabelSub).EnsureKeys(s.GlobalLocales)

	if p.ParentCategorySet && parentKey(p.ParentCategory) != parentKey(prevParent) {
		newKey := parentKey(gs.ParentCategory)
		var orders []int
		for i := range s.GlobalCategorySubcategories {
			sib := &s.GlobalCategorySubcategories[i]
			if sib.ID != gs.ID && parentKey(sib.ParentCategory) == newKey {
				orders = append(orders, sib.Order)
			}
		}
		gs.Order = AppendOrder(orders)
	}

	return gs
}

// DeleteGlobalSubcategory removes the global subcategory.
func (s *LobbyState) DeleteGlobalSubcategory(id string) bool {
	for i := range s.GlobalCategorySubcategories {
		if s.GlobalCategorySubcategories[i].ID == id {
			s.GlobalCategorySubcategories = append(
				s.GlobalCategorySubcategories[:i],
				s.GlobalCategorySubcategories[i+1:]...)
			return true
		}
	}
	return false
}

// SetGlobalLocales replaces the global locale list, lower-cased and
// deduplicated, and returns the cleaned list.
func (s *LobbyState) SetGlobalLocales(locales []string) []string {
	s.GlobalLocales = NormalizeLocales(locales)
	return s.GlobalLocales
}

// normalizeRef treats an explicit empty string the same as null so both
// clear a nullable reference.
func normalizeRef(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return clonePtr(p)
}

func cloneTargeting(t *TargetingRule) *TargetingRule {
	if t == nil {
		return nil
	}
	out := *t
	out.Devices = append([]string(nil), t.Devices...)
	out.Countries = append([]string(nil), t.Countries...)
	out.PlayerIDs = append([]string(nil), t.PlayerIDs...)
	return &out
}
