package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/lobbyworks/lobby-cms-backend/internal/common"
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"github.com/lobbyworks/lobby-cms-backend/internal/repository"
	"github.com/lobbyworks/lobby-cms-backend/pkg/cache"
	"github.com/lobbyworks/lobby-cms-backend/pkg/logger"
)

// LobbyService renders the player-facing views: the targeting-filtered
// navigation tree, the home category and subcategory game lists.
type LobbyService interface {
	Nav(ctx context.Context, brandID string, tctx domain.TargetingContext) (*domain.NavResponse, error)
	Home(ctx context.Context, brandID string, tctx domain.TargetingContext) (*domain.EffectiveCategory, error)
	Category(ctx context.Context, brandID, categoryID string) (*domain.EffectiveCategory, error)
	SubcategoryGames(ctx context.Context, brandID, subcategoryID string) (*domain.SubcategoryGamesResponse, error)
	PreviewCollection(rules []domain.CollectionRule) (*domain.CollectionPreviewResponse, error)
}

type lobbyService struct {
	cms   CmsService
	games repository.GameRepository
	cache cache.Service
}

// NewLobbyService creates a new LobbyService
func NewLobbyService(cms CmsService, games repository.GameRepository, cacheSvc cache.Service) LobbyService {
	return &lobbyService{cms: cms, games: games, cache: cacheSvc}
}

// Nav returns the brand's navigation tree for one viewer: categories
// resolved against the global catalog, nested by parent, ordered by
// sibling order, with nodes hidden from nav or excluded by targeting
// pruned together with their subtrees.
//
// The resolved pre-targeting tree is cached per brand; targeting is
// always evaluated per request since it depends on the viewer.
func (s *lobbyService) Nav(ctx context.Context, brandID string, tctx domain.TargetingContext) (*domain.NavResponse, error) {
	items, err := s.resolvedTree(ctx, brandID)
	if err != nil {
		return nil, err
	}

	return &domain.NavResponse{
		BrandID: brandID,
		Items:   filterNav(items, tctx),
	}, nil
}

// Home returns the viewer's landing category: the first home-flagged
// top-level category by order, falling back to the first visible
// top-level category.
func (s *lobbyService) Home(ctx context.Context, brandID string, tctx domain.TargetingContext) (*domain.EffectiveCategory, error) {
	items, err := s.resolvedTree(ctx, brandID)
	if err != nil {
		return nil, err
	}
	visible := filterNav(items, tctx)

	for i := range visible {
		if visible[i].IsHome {
			return &visible[i].EffectiveCategory, nil
		}
	}
	if len(visible) > 0 {
		return &visible[0].EffectiveCategory, nil
	}
	return nil, common.ErrCategoryNotFound
}

// Category returns one fully resolved category for the lobby renderer.
func (s *lobbyService) Category(ctx context.Context, brandID, categoryID string) (*domain.EffectiveCategory, error) {
	return s.cms.ResolveCategory(brandID, categoryID)
}

// SubcategoryGames returns the playable content of one subcategory:
// Collection subcategories evaluate their rules against the whole
// catalog, everything else returns the hand-picked list.
func (s *lobbyService) SubcategoryGames(ctx context.Context, brandID, subcategoryID string) (*domain.SubcategoryGamesResponse, error) {
	if s.cache != nil && s.cache.IsAvailable() {
		if raw, err := s.cache.GetSubcategoryGames(ctx, subcategoryID); err == nil {
			var cached domain.SubcategoryGamesResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	state := s.cms.Snapshot()
	b := state.Brand(brandID)
	if b == nil {
		return nil, common.ErrBrandNotFound
	}

	sc := b.Subcategory(subcategoryID)
	if sc == nil {
		// brand categories linked to a global category surface global
		// subcategories too
		if g := state.GlobalSubcategory(subcategoryID); g != nil {
			converted := g.AsSubcategory()
			sc = &converted
		}
	}
	if sc == nil {
		return nil, common.ErrSubcategoryNotFound
	}

	resp := &domain.SubcategoryGamesResponse{
		SubcategoryID: sc.ID,
		Type:          sc.Type,
	}

	if sc.Type == domain.SubcategoryTypeCollection && sc.Collection != nil {
		matched, err := s.evaluateCollection(sc.Collection.Rules)
		if err != nil {
			return nil, err
		}
		resp.Games = matched
	} else {
		resp.SelectedGames = append([]domain.SelectedGame(nil), sc.SelectedGames...)
	}

	if s.cache != nil && s.cache.IsAvailable() {
		if err := s.cache.SetSubcategoryGames(ctx, subcategoryID, resp); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("subcategory games cache write failed")
		}
	}

	return resp, nil
}

// PreviewCollection evaluates a rule list against the catalog without
// touching any stored subcategory (the admin editor's live preview).
func (s *lobbyService) PreviewCollection(rules []domain.CollectionRule) (*domain.CollectionPreviewResponse, error) {
	matched, err := s.evaluateCollection(rules)
	if err != nil {
		return nil, err
	}
	return &domain.CollectionPreviewResponse{
		MatchingCount: len(matched),
		Games:         matched,
	}, nil
}

func (s *lobbyService) evaluateCollection(rules []domain.CollectionRule) ([]domain.Game, error) {
	all, err := s.games.GetAll()
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Game, 0)
	for _, g := range all {
		if domain.EvaluateRules(g, rules) {
			matched = append(matched, g)
		}
	}
	return matched, nil
}

// resolvedTree returns the brand's fully resolved, pre-targeting nav
// tree, from cache when possible.
func (s *lobbyService) resolvedTree(ctx context.Context, brandID string) ([]domain.NavItem, error) {
	if s.cache != nil && s.cache.IsAvailable() {
		if raw, err := s.cache.GetNav(ctx, brandID); err == nil {
			var cached []domain.NavItem
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	state := s.cms.Snapshot()
	b := state.Brand(brandID)
	if b == nil {
		return nil, common.ErrBrandNotFound
	}

	items := buildTree(state, b, nil)

	if s.cache != nil && s.cache.IsAvailable() {
		if err := s.cache.SetNav(ctx, brandID, items); err != nil {
			logger.GetLogger().Warn().Err(err).Str("brand", brandID).Msg("nav cache write failed")
		}
	}

	return items, nil
}

// buildTree resolves every category under the given parent, ordered by
// sibling order, recursing into children.
func buildTree(state *domain.LobbyState, b *domain.Brand, parentID *string) []domain.NavItem {
	key := ""
	if parentID != nil {
		key = *parentID
	}

	var group []*domain.Category
	for i := range b.Categories {
		c := &b.Categories[i]
		ck := ""
		if c.ParentID != nil {
			ck = *c.ParentID
		}
		if ck == key {
			group = append(group, c)
		}
	}
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Order < group[j].Order
	})

	items := make([]domain.NavItem, 0, len(group))
	for _, c := range group {
		eff := state.ResolveCategory(b.ID, c.ID)
		if eff == nil {
			continue
		}
		items = append(items, domain.NavItem{
			EffectiveCategory: *eff,
			Children:          buildTree(state, b, &c.ID),
		})
	}
	return items
}

// filterNav drops nodes hidden from nav or excluded by targeting; a
// dropped node takes its whole subtree with it.
func filterNav(items []domain.NavItem, tctx domain.TargetingContext) []domain.NavItem {
	out := make([]domain.NavItem, 0, len(items))
	for _, item := range items {
		if !item.DisplayedInNav {
			continue
		}
		if !item.Targeting.Evaluate(tctx) {
			continue
		}
		item.Children = filterNav(item.Children, tctx)
		item.Subcategories = visibleSubcategories(item.Subcategories)
		out = append(out, item)
	}
	return out
}

func visibleSubcategories(subs []domain.Subcategory) []domain.Subcategory {
	out := make([]domain.Subcategory, 0, len(subs))
	for _, sc := range subs {
		if sc.DisplayedInNav {
			out = append(out, sc)
		}
	}
	return out
}
