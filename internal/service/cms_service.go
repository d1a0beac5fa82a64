package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lobbyworks/lobby-cms-backend/internal/common"
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"github.com/lobbyworks/lobby-cms-backend/internal/repository"
	"github.com/lobbyworks/lobby-cms-backend/pkg/cache"
	"github.com/lobbyworks/lobby-cms-backend/pkg/logger"
)

// CmsService owns the in-memory CMS document and is the only writer.
// Every mutation clones the document, applies the change to the clone
// and swaps it in, so readers holding the previous snapshot are never
// affected. Saves run in the background; the editor never waits on the
// database.
type CmsService interface {
	// Whole document
	State() *domain.StateResponse
	ReplaceState(state *domain.LobbyState) (*domain.StateResponse, error)
	Meta() *domain.CmsMetaResponse

	// Brands
	GetBrands() ([]domain.Brand, error)
	GetBrand(brandID string) (*domain.Brand, error)
	UpdateBrand(brandID string, patch *domain.BrandPatch) (*domain.Brand, error)

	// Brand categories
	CreateCategory(brandID string, req *domain.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(brandID, categoryID string, patch *domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(brandID, categoryID string) error
	MoveCategory(brandID, categoryID string, dir int) error
	ResolveCategory(brandID, categoryID string) (*domain.EffectiveCategory, error)

	// Brand subcategories
	CreateSubcategory(brandID string, req *domain.CreateSubcategoryRequest) (*domain.Subcategory, error)
	UpdateSubcategory(brandID, subcategoryID string, patch *domain.SubcategoryPatch) (*domain.Subcategory, error)
	DeleteSubcategory(brandID, subcategoryID string) error
	MoveSubcategory(brandID, subcategoryID string, dir int) error

	// Global catalog
	CreateGlobalCategory(req *domain.CreateGlobalCategoryRequest) (*domain.GlobalCategory, error)
	UpdateGlobalCategory(categoryID string, patch *domain.GlobalCategoryPatch) (*domain.GlobalCategory, error)
	DeleteGlobalCategory(categoryID string) error
	MoveGlobalCategory(categoryID string, dir int) error
	CreateGlobalSubcategory(req *domain.CreateGlobalSubcategoryRequest) (*domain.GlobalSubcategory, error)
	UpdateGlobalSubcategory(subcategoryID string, patch *domain.GlobalSubcategoryPatch) (*domain.GlobalSubcategory, error)
	DeleteGlobalSubcategory(subcategoryID string) error
	MoveGlobalSubcategory(subcategoryID string, dir int) error
	SetGlobalLocales(locales []string) ([]string, error)

	// Snapshot returns a deep copy of the current document for readers
	// that walk the whole tree (lobby rendering).
	Snapshot() *domain.LobbyState

	// Flush waits for in-flight background saves (shutdown).
	Flush()
}

type cmsService struct {
	repo  repository.StateRepository
	cache cache.Service

	mu    sync.RWMutex
	state *domain.LobbyState

	// ticket numbers writes; a background save whose ticket is below the
	// latest issued one was superseded before it landed. saveMu
	// serializes the actual database writes so an older snapshot can
	// never overwrite a newer one.
	ticket     uint64
	lastSaved  uint64
	revision   int64
	lastWrite  atomic.Value // time.Time
	saveErrors uint64

	saveMu sync.Mutex
	wg     sync.WaitGroup
}

// NewCmsService loads the persisted document (or seeds a fresh one) and
// returns the service ready to serve.
func NewCmsService(repo repository.StateRepository, cacheSvc cache.Service) (CmsService, error) {
	s := &cmsService{
		repo:  repo,
		cache: cacheSvc,
	}

	rec, err := repo.Load()
	if err != nil {
		return nil, err
	}
	if rec == nil {
		s.state = domain.SeedState()
		revision, err := repo.Save(s.state)
		if err != nil {
			return nil, err
		}
		s.revision = revision
		s.lastWrite.Store(time.Now())
		logger.GetLogger().Info().Int64("revision", revision).Msg("seeded fresh cms document")
	} else {
		rec.State.Normalize()
		s.state = rec.State
		s.revision = rec.Revision
		s.lastWrite.Store(rec.UpdatedAt)
		logger.GetLogger().Info().
			Int64("revision", rec.Revision).
			Int("brands", len(rec.State.Brands)).
			Msg("loaded cms document")
	}

	return s, nil
}

// State returns the whole document with its storage metadata.
func (s *cmsService) State() *domain.StateResponse {
	s.mu.RLock()
	st := s.state.Clone()
	revision := s.revision
	s.mu.RUnlock()

	var updated *time.Time
	if t, ok := s.lastWrite.Load().(time.Time); ok {
		updated = &t
	}
	return &domain.StateResponse{State: st, Revision: revision, UpdatedAt: updated}
}

// Snapshot returns a deep copy of the current document.
func (s *cmsService) Snapshot() *domain.LobbyState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// ReplaceState swaps in a whole new document (import / restore).
func (s *cmsService) ReplaceState(state *domain.LobbyState) (*domain.StateResponse, error) {
	if state == nil {
		return nil, common.ErrInvalidInput
	}
	next := state.Clone()
	next.Normalize()

	s.mu.Lock()
	s.state = next
	ticket := s.nextTicket()
	snapshot := next.Clone()
	s.mu.Unlock()

	s.persistAsync(snapshot, ticket)
	s.invalidateLobbyCache()
	return s.State(), nil
}

// Meta lists the closed option sets the admin editors render.
func (s *cmsService) Meta() *domain.CmsMetaResponse {
	return &domain.CmsMetaResponse{
		Templates:        append([]string(nil), domain.CategoryTemplates...),
		TemplateKeys:     domain.TemplateKeys,
		Countries:        append([]string(nil), domain.AvailableCountries...),
		Devices:          append([]string(nil), domain.AvailableDevices...),
		SubcategoryTypes: append([]string(nil), domain.SubcategoryTypes...),
		LayoutTypes:      append([]string(nil), domain.SubcategoryLayouts...),
	}
}

// mutate runs fn against a clone of the document under the write lock
// and swaps the clone in when fn succeeds. The mutated document is
// persisted in the background.
func (s *cmsService) mutate(fn func(st *domain.LobbyState) error) error {
	s.mu.Lock()
	next := s.state.Clone()
	if err := fn(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	ticket := s.nextTicket()
	snapshot := next.Clone()
	s.mu.Unlock()

	s.persistAsync(snapshot, ticket)
	s.invalidateLobbyCache()
	return nil
}

// nextTicket must be called under the write lock.
func (s *cmsService) nextTicket() uint64 {
	s.ticket++
	return s.ticket
}

func (s *cmsService) persistAsync(snapshot *domain.LobbyState, ticket uint64) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.saveMu.Lock()
		defer s.saveMu.Unlock()

		s.mu.RLock()
		superseded := ticket <= s.lastSaved
		s.mu.RUnlock()
		if superseded {
			// a newer snapshot already reached the store
			logger.GetLogger().Debug().
				Uint64("ticket", ticket).
				Msg("skipping save superseded by a newer edit")
			return
		}

		revision, err := s.repo.Save(snapshot)
		if err != nil {
			atomic.AddUint64(&s.saveErrors, 1)
			logger.GetLogger().Error().
				Err(err).
				Uint64("ticket", ticket).
				Msg("background save failed; in-memory state kept")
			return
		}

		s.mu.Lock()
		if ticket > s.lastSaved {
			s.lastSaved = ticket
			s.revision = revision
			s.lastWrite.Store(time.Now())
		}
		s.mu.Unlock()
	}()
}

// Flush waits for every in-flight background save.
func (s *cmsService) Flush() {
	s.wg.Wait()
}

func (s *cmsService) invalidateLobbyCache() {
	if s.cache == nil || !s.cache.IsAvailable() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.cache.InvalidateAllNav(ctx); err != nil {
		logger.GetLogger().Warn().Err(err).Msg("nav cache invalidation failed")
	}
}

// ========================================
// Brands
// ========================================

func (s *cmsService) GetBrands() ([]domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone().Brands, nil
}

func (s *cmsService) GetBrand(brandID string) (*domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b := s.state.Brand(brandID)
	if b == nil {
		return nil, common.ErrBrandNotFound
	}
	clone := s.state.Clone().Brand(brandID)
	return clone, nil
}

func (s *cmsService) UpdateBrand(brandID string, patch *domain.BrandPatch) (*domain.Brand, error) {
	var out domain.Brand
	err := s.mutate(func(st *domain.LobbyState) error {
		b := st.Brand(brandID)
		if b == nil {
			return common.ErrBrandNotFound
		}
		b.ApplyPatch(patch)
		out = *b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ========================================
// Brand categories
// ========================================

func (s *cmsService) CreateCategory(brandID string, req *domain.CreateCategoryRequest) (*domain.Category, error) {
	var out domain.Category
	err := s.mutate(func(st *domain.LobbyState) error {
		b := st.Brand(brandID)
		if b == nil {
			return common.ErrBrandNotFound
		}
		out = *b.AddCategory(req.Name, req.ParentID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *cmsService) UpdateCategory(brandID, categoryID string, patch *domain.CategoryPatch) (*domain.Category, error) {
	var out domain.Category
	err := s.mutate(func(st *domain.LobbyState) error {
		b := st.Brand(brandID)
		if b == nil {
			return common.ErrBrandNotFound
		}
		cat := b.ApplyCategoryPatch(categoryID, patch)
		if cat == nil {
			return common.ErrCategoryNotFound
		}
		out = *cat
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *cmsService) DeleteCategory(brandID, categoryID string) error {
	return s.mutate(func(st *domain.LobbyState) error {
		b := st.Brand(brandID)
		if b == nil {
			return common.ErrBrandNotFound
		}
		if !b.DeleteCategory(categoryID) {
			return common.ErrCategoryNotFound
		}
		return nil
	})
}

// MoveCategory swaps the category with its up/down neighbour. Moving
// past the boundary of the sibling group is a no-op, not an error.
func (s *cmsService) MoveCategory(brandID, categoryID string, dir int) error {
	return s.mutate(func(st *domain.LobbyState) error {
		b := st.Brand(brandID)
		if b == nil {
			return common.ErrBrandNotFound
		}
		if b.Category(categoryID) == nil {
			return common.ErrCategoryNotFound
		}
		b.MoveCategory(categoryID, dir)
		return nil
	})
}

func (s *cmsService) ResolveCategory(brandID, categoryID string) (*domain.EffectiveCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	eff := s.state.ResolveCategory(brandID, categoryID)
	if eff == nil {
		if s.state.Brand(brandID) == nil {
			return nil, common.ErrBrandNotFound
		}
		return nil, common.ErrCategoryNotFound
	}
	return eff, nil
}

// ========================================
// Brand subcategories
// ========================================

func (s *cmsService) CreateSubcategory(brandID string, req *domain.CreateSubcategoryRequest) (*domain.Subcategory, error) {
	var out domain.Subcategory
	err := s.mutate(func(st *domain.LobbyState) error {
		b := st.Brand(brandID)
		if b == nil {
			return common.ErrBrandNotFound
		}
		out = *b.AddSubcategory(req.ParentCategory)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *cmsService) UpdateSubcategory(brandID, subcategoryID string, patch *domain.SubcategoryPatch) (*domain.Subcategory, error) {
	var out domain.Subcategory
	err := s.mutate(func(st *domain.LobbyState) error {
		b := st.Brand(brandID)
		if b == nil {
			return common.ErrBrandNotFound
		}
		sc := b.ApplySubcategoryPatch(subcategoryID, patch)
		if sc == nil {
			return common.ErrSubcategoryNotFound
		}
		out = *sc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *cmsService) DeleteSubcategory(brandID, subcategoryID string) error {
	return s.mutate(func(st *domain.LobbyState) error {
		b := st.Brand(brandID)
		if b == nil {
			return common.ErrBrandNotFound
		}
		if !b.DeleteSubcategory(subcategoryID) {
			return common.ErrSubcategoryNotFound
		}
		return nil
	})
}

func (s *cmsService) MoveSubcategory(brandID, subcategoryID string, dir int) error {
	return s.mutate(func(st *domain.LobbyState) error {
		b := st.Brand(brandID)
		if b == nil {
			return common.ErrBrandNotFound
		}
		if b.Subcategory(subcategoryID) == nil {
			return common.ErrSubcategoryNotFound
		}
		b.MoveSubcategory(subcategoryID, dir)
		return nil
	})
}

// ========================================
// Global catalog
// ========================================

func (s *cmsService) CreateGlobalCategory(req *domain.CreateGlobalCategoryRequest) (*domain.GlobalCategory, error) {
	var out domain.GlobalCategory
	err := s.mutate(func(st *domain.LobbyState) error {
		out = *st.AddGlobalCategory(req.ParentID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *cmsService) UpdateGlobalCategory(categoryID string, patch *domain.GlobalCategoryPatch) (*domain.GlobalCategory, error) {
	var out domain.GlobalCategory
	err := s.mutate(func(st *domain.LobbyState) error {
		gc := st.ApplyGlobalCategoryPatch(categoryID, patch)
		if gc == nil {
			return common.ErrGlobalCategoryNotFound
		}
		out = *gc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *cmsService) DeleteGlobalCategory(categoryID string) error {
	return s.mutate(func(st *domain.LobbyState) error {
		if !st.DeleteGlobalCategory(categoryID) {
			return common.ErrGlobalCategoryNotFound
		}
		return nil
	})
}

func (s *cmsService) MoveGlobalCategory(categoryID string, dir int) error {
	return s.mutate(func(st *domain.LobbyState) error {
		if st.GlobalCategory(categoryID) == nil {
			return common.ErrGlobalCategoryNotFound
		}
		st.MoveGlobalCategory(categoryID, dir)
		return nil
	})
}

func (s *cmsService) CreateGlobalSubcategory(req *domain.CreateGlobalSubcategoryRequest) (*domain.GlobalSubcategory, error) {
	var out domain.GlobalSubcategory
	err := s.mutate(func(st *domain.LobbyState) error {
		out = *st.AddGlobalSubcategory(req.ParentCategory)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *cmsService) UpdateGlobalSubcategory(subcategoryID string, patch *domain.GlobalSubcategoryPatch) (*domain.GlobalSubcategory, error) {
	var out domain.GlobalSubcategory
	err := s.mutate(func(st *domain.LobbyState) error {
		gs := st.ApplyGlobalSubcategoryPatch(subcategoryID, patch)
		if gs == nil {
			return common.ErrGlobalSubcategoryNotFound
		}
		out = *gs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *cmsService) DeleteGlobalSubcategory(subcategoryID string) error {
	return s.mutate(func(st *domain.LobbyState) error {
		if !st.DeleteGlobalSubcategory(subcategoryID) {
			return common.ErrGlobalSubcategoryNotFound
		}
		return nil
	})
}

func (s *cmsService) MoveGlobalSubcategory(subcategoryID string, dir int) error {
	return s.mutate(func(st *domain.LobbyState) error {
		if st.GlobalSubcategory(subcategoryID) == nil {
			return common.ErrGlobalSubcategoryNotFound
		}
		st.MoveGlobalSubcategory(subcategoryID, dir)
		return nil
	})
}

func (s *cmsService) SetGlobalLocales(locales []string) ([]string, error) {
	var out []string
	err := s.mutate(func(st *domain.LobbyState) error {
		out = st.SetGlobalLocales(locales)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
