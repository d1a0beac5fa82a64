package domain

// Node types for categories.
const (
	CategoryTypeCategory = "category"
	CategoryTypeURL      = "url"
)

// Subcategory content types.
const (
	SubcategoryTypeGameList     = "Game List"
	SubcategoryTypeModule       = "Module"
	SubcategoryTypeCollection   = "Collection"
	SubcategoryTypePersonalised = "Personalised"
)

// SubcategoryTypes lists the selectable subcategory content types.
var SubcategoryTypes = []string{
	SubcategoryTypeGameList,
	SubcategoryTypeModule,
	SubcategoryTypeCollection,
	SubcategoryTypePersonalised,
}

// SubcategoryLayouts lists the selectable subcategory layout types.
var SubcategoryLayouts = []string{
	"1 row",
	"2 rows",
	"Hero",
	"Carousel",
}

// DefaultLayout is the layout assigned to newly created subcategories.
const DefaultLayout = "Carousel"

// Brand is the root aggregate: one tenant site with its own locale list,
// navigation categories and content subcategories.
type Brand struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Locales       []string      `json:"locales"`
	Categories    []Category    `json:"categories"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Category is a navigation node in a brand's tree. ParentID nil means
// top-level. Order ranks the node within its sibling group only (nodes
// sharing the same ParentID).
type Category struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ParentID         *string        `json:"parent_id"`
	Order            int            `json:"order"`
	Slug             Translations   `json:"slug"`
	NavLabel         Translations   `json:"nav_label"`
	DisplayedInNav   bool           `json:"displayed_in_nav"`
	Template         string         `json:"template"`
	IsHome           bool           `json:"is_home"`
	NavIcon          string         `json:"nav_icon"`
	NewGamesCount    bool           `json:"new_games_count"`
	Type             string         `json:"type"` // "category" | "url"
	URL              string         `json:"url"`
	GlobalCategoryID *string        `json:"global_category_id"`
	Targeting        *TargetingRule `json:"targeting,omitempty"`
}

// SelectedGame is one hand-picked entry of a Game List subcategory.
type SelectedGame struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Supplier string `json:"supplier"`
}

// Subcategory is a content module attached under a category.
// ParentCategory nil means unmapped. Order ranks it within the group of
// subcategories sharing the same ParentCategory.
type Subcategory struct {
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

// Category returns the category with the given id, or nil.
func (b *Brand) Category(id string) *Category {
	for i := range b.Categories {
		if b.Categories[i].ID == id {
			return &b.Categories[i]
		}
	}
	return nil
}

// Subcategory returns the subcategory with the given id, or nil.
func (b *Brand) Subcategory(id string) *Subcategory {
	for i := range b.Subcategories {
		if b.Subcategories[i].ID == id {
			return &b.Subcategories[i]
		}
	}
	return nil
}

// BaseLocales returns the brand's locale list, falling back to en-GB for
// brands configured without one.
func (b *Brand) BaseLocales() []string {
	if len(b.Locales) > 0 {
		return b.Locales
	}
	return []string{"en-GB"}
}
