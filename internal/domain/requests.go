package domain

import "time"

// ============================================
// Admin CMS API DTOs
// ============================================

// CreateCategoryRequest is the request body for creating a brand category.
type CreateCategoryRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

// CreateSubcategoryRequest is the request body for creating a brand subcategory.
type CreateSubcategoryRequest struct {
	ParentCategory *string `json:"parent_category"`
}

// CreateGlobalCategoryRequest is the request body for creating a global category.
type CreateGlobalCategoryRequest struct {
	ParentID *string `json:"parent_id"`
}

// CreateGlobalSubcategoryRequest is the request body for creating a global subcategory.
type CreateGlobalSubcategoryRequest struct {
	ParentCategory *string `json:"parent_category"`
}

// MoveRequest selects the direction of a sibling reorder.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// Dir converts the request direction to a move delta.
func (r *MoveRequest) Dir() int {
	if r.Direction == "up" {
		return MoveUp
	}
	return MoveDown
}

// SetGlobalLocalesRequest replaces the global locale list.
type SetGlobalLocalesRequest struct {
	Locales []string `json:"locales" binding:"required"`
}

// ReplaceStateRequest replaces the whole CMS document.
type ReplaceStateRequest struct {
	State *LobbyState `json:"state" binding:"required"`
}

// StateResponse is the whole-document read response.
type StateResponse struct {
	State     *LobbyState `json:"state"`
	Revision  int64       `json:"revision"`
	UpdatedAt *time.Time  `json:"updated_at,omitempty"`
}

// CollectionPreviewRequest asks which catalog games a rule list matches.
type CollectionPreviewRequest struct {
	Rules []CollectionRule `json:"rules"`
}

// CollectionPreviewResponse carries the live matching-count preview.
type CollectionPreviewResponse struct {
	MatchingCount int    `json:"matching_count"`
	Games         []Game `json:"games"`
}

// CmsMetaResponse lists the option sets the admin editors render.
type CmsMetaResponse struct {
	Templates        []string          `json:"templates"`
	TemplateKeys     map[string]string `json:"template_keys"`
	Countries        []string          `json:"countries"`
	Devices          []string          `json:"devices"`
	SubcategoryTypes []string          `json:"subcategory_types"`
	LayoutTypes      []string          `json:"layout_types"`
}

// ============================================
// Auth DTOs
// ============================================

// LoginRequest is the admin login request body.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued admin token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// ============================================
// Lobby API DTOs
// ============================================

// NavItem is one resolved, visibility-filtered navigation node.
type NavItem struct {
	EffectiveCategory
	Children []NavItem `json:"children"`
}

// NavResponse is a brand's resolved navigation tree for one viewer.
type NavResponse struct {
	BrandID string    `json:"brand_id"`
	Locale  string    `json:"locale,omitempty"`
	Items   []NavItem `json:"items"`
}

// SubcategoryGamesResponse is the content of one subcategory: either the
// hand-picked list or the collection evaluation result.
type SubcategoryGamesResponse struct {
	SubcategoryID string         `json:"subcategory_id"`
	Type          string         `json:"type"`
	Games         []Game         `json:"games,omitempty"`
	SelectedGames []SelectedGame `json:"selected_games,omitempty"`
}

// StateRecord is a loaded persistence row: the document plus its
// storage metadata.
type StateRecord struct {
	State     *LobbyState
	Revision  int64
	UpdatedAt time.Time
}
