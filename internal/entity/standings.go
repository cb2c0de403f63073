package entity

// LeagueTable is the single element the standings endpoint wraps in its
// response array. Standings is a list of groups so one league can carry
// several tables (conference splits, relegation groups).
type LeagueTable struct {
	League StandingsLeague `json:"league"`
}

type StandingsLeague struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Country   string           `json:"country"`
	Logo      string           `json:"logo"`
	Flag      *string          `json:"flag"`
	Season    int              `json:"season"`
	Standings [][]TeamStanding `json:"standings"`
}

// TeamStanding is one row of a league table.
type TeamStanding struct {
	Rank        int     `json:"rank"`
	Team        Team    `json:"team"`
	Points      int     `json:"points"`
	GoalsDiff   int     `json:"goalsDiff"`
	Group       string  `json:"group"`
	Form        *string `json:"form"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	All         Stats   `json:"all"`
	Home        Stats   `json:"home"`
	Away        Stats   `json:"away"`
	Update      string  `json:"update"`
}

type Stats struct {
	Played int       `json:"played"`
	Win    int       `json:"win"`
	Draw   int       `json:"draw"`
	Lose   int       `json:"lose"`
	Goals  GoalStats `json:"goals"`
}

type GoalStats struct {
	For     int `json:"for"`
	Against int `json:"against"`
}
