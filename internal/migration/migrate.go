package migration

import (
	"github.com/lobbyworks/lobby-cms-backend/internal/domain"
	"github.com/lobbyworks/lobby-cms-backend/internal/repository"
	"gorm.io/gorm"
)

// Run creates the cms_state and games tables when missing and seeds a
// minimal game catalog into an empty games table. The CMS document
// itself is seeded by the CMS service on first load.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&repository.StateRow{}, &domain.Game{}); err != nil {
		return err
	}

	var count int64
	db.Model(&domain.Game{}).Count(&count)
	if count == 0 {
		return seedGames(db)
	}

	return nil
}

func seedGames(db *gorm.DB) error {
	games := []domain.Game{
		{
			GameID:          "game_h8bk10ox",
			GameName:        "Crazy Empire Spins",
			GameType:        "Arcade",
			RTP:             94.55,
			Volatility:      "Low",
			Studio:          "Red Tiger",
			Features:        "Sticky Wilds, Multipliers",
			ReelLayout:      "4x5",
			Jackpot:         "Progressive",
			Searches:        6296,
			TheoRTP:         93.36,
			CurrentSessions: 286,
			RecentLaunches:  15,
			HitRate:         23.48,
			Themes:          "Classic Slots",
			WinlineType:     "Adjustable",
			WaysToWin:       4054,
			MaxMultiplier:   832,
			MinBet:          0.47,
			MaxBet:          48.29,
			ReleaseDate:     "2023-01-12",
		},
		{
			GameID:          "game_k2mn83pq",
			GameName:        "Starlight Riches",
			GameType:        "Slots",
			RTP:             96.21,
			Volatility:      "High",
			Studio:          "NetEnt",
			Features:        "Free Spins, Expanding Wilds",
			ReelLayout:      "3x5",
			Jackpot:         "None",
			Searches:        12480,
			TheoRTP:         96.21,
			CurrentSessions: 1043,
			RecentLaunches:  88,
			HitRate:         31.02,
			Themes:          "Space",
			WinlineType:     "Fixed",
			WaysToWin:       243,
			MaxMultiplier:   5000,
			MinBet:          0.10,
			MaxBet:          100,
			ReleaseDate:     "2022-06-30",
		},
		{
			GameID:          "game_w7xd45rt",
			GameName:        "Bingo Blitz Royale",
			GameType:        "Bingo",
			RTP:             92.80,
			Volatility:      "Medium",
			Studio:          "Pragmatic Play",
			Features:        "Bonus Rounds",
			ReelLayout:      "5x5",
			Jackpot:         "Fixed",
			Searches:        2210,
			TheoRTP:         92.10,
			CurrentSessions: 97,
			RecentLaunches:  4,
			HitRate:         41.77,
			Themes:          "Bingo",
			WinlineType:     "Fixed",
			WaysToWin:       25,
			MaxMultiplier:   250,
			MinBet:          0.25,
			MaxBet:          20,
			ReleaseDate:     "2024-03-18",
		},
	}

	return repository.NewGameRepository(db).BulkInsert(games)
}
