package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"gorm.io/gorm"
)

// StateRepository persists the CMS document as a single row. The
// document is written whole on every save; the revision column counts
// writes so callers can detect stale reads.
type StateRepository interface {
	// Load returns the stored document, or nil when no row exists yet.
	Load() (*domain.StateRecord, error)
	// Save replaces the document and returns the new revision.
	Save(state *domain.LobbyState) (int64, error)
}

// StateRow is the single-row storage shape of the CMS document.
// Table: cms_state (always id = 1)
type StateRow struct {
	ID        int       `gorm:"column:id;primaryKey"`
	State     []byte    `gorm:"column:state;type:jsonb"`
	Revision  int64     `gorm:"column:revision"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for StateRow model
func (StateRow) TableName() string {
	return "cms_state"
}

// stateRepository implements StateRepository with GORM
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new StateRepository
func NewStateRepository(db *gorm.DB) StateRepository {
	return &stateRepository{db: db}
}

// Load retrieves the stored document
func (r *stateRepository) Load() (*domain.StateRecord, error) {
	var row StateRow

	err := r.db.
		Where("id = ?", 1).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state domain.LobbyState
	if err := json.Unmarshal(row.State, &state); err != nil {
		return nil, err
	}

	return &domain.StateRecord{
		State:     &state,
		Revision:  row.Revision,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// Save upserts the single document row and bumps the revision counter
// atomically, returning the revision the write produced.
func (r *stateRepository) Save(state *domain.LobbyState) (int64, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return 0, err
	}

	var revision int64
	err = r.db.Raw(`
		INSERT INTO cms_state (id, state, revision, updated_at)
		VALUES (1, ?, 1, NOW())
		ON CONFLICT (id) DO UPDATE
		SET state = EXCLUDED.state,
		    revision = cms_state.revision + 1,
		    updated_at = NOW()
		RETURNING revision`, string(raw)).
		Scan(&revision).Error

	if err != nil {
		return 0, err
	}

	return revision, nil
}
