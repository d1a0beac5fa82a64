package domain

import "strconv"

// Game is one catalog record. The catalog is read-only at runtime and is
// treated as a flat record set by the collection rule evaluator.
// Table: games
type Game struct {
	GameID          string  `gorm:"column:gameid;primaryKey" json:"gameid"`
	GameName        string  `gorm:"column:gamename" json:"gamename"`
	GameType        string  `gorm:"column:gametype" json:"gametype"`
	RTP             float64 `gorm:"column:rtp" json:"rtp"`
	Volatility      string  `gorm:"column:volatility" json:"volatility"`
	Studio          string  `gorm:"column:studio" json:"studio"`
	Features        string  `gorm:"column:features" json:"features"`
	Exclusive       bool    `gorm:"column:exclusive" json:"exclusive"`
	Branded         bool    `gorm:"column:branded" json:"branded"`
	PersistentState bool    `gorm:"column:persistentstate" json:"persistentstate"`
	ReelLayout      string  `gorm:"column:reellayout" json:"reellayout"`
	Jackpot         string  `gorm:"column:jackpot" json:"jackpot"`
	Searches        int     `gorm:"column:searches" json:"searches"`
	TheoRTP         float64 `gorm:"column:theortp" json:"theortp"`
	CurrentSessions int     `gorm:"column:currentsessions" json:"currentsessions"`
	RecentLaunches  int     `gorm:"column:recentlaunches" json:"recentlaunches"`
	HitRate         float64 `gorm:"column:hitrate" json:"hitrate"`
	Themes          string  `gorm:"column:themes" json:"themes"`
	WinlineType     string  `gorm:"column:winlinetype" json:"winlinetype"`
	WaysToWin       int     `gorm:"column:waystowin" json:"waystowin"`
	MaxMultiplier   int     `gorm:"column:maxmultiplier" json:"maxmultiplier"`
	MinBet          float64 `gorm:"column:minbet" json:"minbet"`
	MaxBet          float64 `gorm:"column:maxbet" json:"maxbet"`
	ReleaseDate     string  `gorm:"column:releasedate" json:"releasedate"`
}

// TableName specifies the table name for Game model
func (Game) TableName() string {
	return "games"
}

// FieldString returns the stringified value of a named catalog field, as
// used by collection rules. Unknown fields stringify to "".
func (g Game) FieldString(field string) string {
	switch field {
	case "gameid":
		return g.GameID
	case "gamename":
		return g.GameName
	case "gametype":
		return g.GameType
	case "rtp":
		return formatFloat(g.RTP)
	case "volatility":
		return g.Volatility
	case "studio":
		return g.Studio
	case "features":
		return g.Features
	case "exclusive":
		return strconv.FormatBool(g.Exclusive)
	case "branded":
		return strconv.FormatBool(g.Branded)
	case "persistentstate":
		return strconv.FormatBool(g.PersistentState)
	case "reellayout":
		return g.ReelLayout
	case "jackpot":
		return g.Jackpot
	case "searches":
		return strconv.Itoa(g.Searches)
	case "theortp":
		return formatFloat(g.TheoRTP)
	case "currentsessions":
		return strconv.Itoa(g.CurrentSessions)
	case "recentlaunches":
		return strconv.Itoa(g.RecentLaunches)
	case "hitrate":
		return formatFloat(g.HitRate)
	case "themes":
		return g.Themes
	case "winlinetype":
		return g.WinlineType
	case "waystowin":
		return strconv.Itoa(g.WaysToWin)
	case "maxmultiplier":
		return strconv.Itoa(g.MaxMultiplier)
	case "minbet":
		return formatFloat(g.MinBet)
	case "maxbet":
		return formatFloat(g.MaxBet)
	case "releasedate":
		return g.ReleaseDate
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
