package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lobbyworks/lobby-cms-backend/internal/common"
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"github.com/lobbyworks/lobby-cms-backend/internal/repository"
	"github.com/lobbyworks/lobby-cms-backend/pkg/cache"
	"github.com/lobbyworks/lobby-cms-backend/pkg/logger"
	"gorm.io/gorm"
)

// GameService exposes the read-only game catalog.
type GameService interface {
	List(ctx context.Context) ([]domain.Game, error)
	Get(gameID string) (*domain.Game, error)
}

type gameService struct {
	repo  repository.GameRepository
	cache cache.Service
}

// NewGameService creates a new GameService
func NewGameService(repo repository.GameRepository, cacheSvc cache.Service) GameService {
	return &gameService{repo: repo, cache: cacheSvc}
}

// List returns the whole catalog, cached
func (s *gameService) List(ctx context.Context) ([]domain.Game, error) {
	if s.cache != nil && s.cache.IsAvailable() {
		if raw, err := s.cache.GetCatalog(ctx); err == nil {
			var cached []domain.Game
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	games, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cache.IsAvailable() {
		if err := s.cache.SetCatalog(ctx, games); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("catalog cache write failed")
		}
	}

	return games, nil
}

// Get returns one catalog record
func (s *gameService) Get(gameID string) (*domain.Game, error) {
	game, err := s.repo.FindByID(gameID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	return game, nil
}
