package repository

import (
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"gorm.io/gorm"
)

// GameRepository defines the interface for catalog data access. The
// catalog is read-mostly: it is bulk-loaded at startup and only read
// afterwards (collection previews, lobby game lists).
type GameRepository interface {
	GetAll() ([]domain.Game, error)
	FindByID(gameID string) (*domain.Game, error)
	Count() (int64, error)
	BulkInsert(games []domain.Game) error
}

// gameRepository implements GameRepository with GORM
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

// GetAll retrieves the whole catalog ordered by name
func (r *gameRepository) GetAll() ([]domain.Game, error) {
	var games []domain.Game

	err := r.db.
		Order("gamename ASC").
		Find(&games).Error

	if err != nil {
		return nil, err
	}

	return games, nil
}

// FindByID finds a game by its catalog id
func (r *gameRepository) FindByID(gameID string) (*domain.Game, error) {
	var game domain.Game

	err := r.db.
		Where("gameid = ?", gameID).
		First(&game).Error

	if err != nil {
		return nil, err
	}

	return &game, nil
}

// Count returns the catalog size
func (r *gameRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Game{}).Count(&count).Error
	return count, err
}

// BulkInsert loads catalog records in batches (startup seeding)
func (r *gameRepository) BulkInsert(games []domain.Game) error {
	if len(games) == 0 {
		return nil
	}
	return r.db.CreateInBatches(games, 100).Error
}
