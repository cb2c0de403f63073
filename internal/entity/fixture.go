package entity

// Fixture is one scheduled, live or finished match as returned by the
// fixtures endpoint.
type Fixture struct {
	Fixture Details `json:"fixture"`
	League  League  `json:"league"`
	Teams   Teams   `json:"teams"`
	Goals   Goals   `json:"goals"`
	Score   Score   `json:"score"`
}

type Details struct {
	ID        int64   `json:"id"`
	Referee   string  `json:"referee"`
	Timezone  string  `json:"timezone"`
	Date      string  `json:"date"`
	Timestamp int64   `json:"timestamp"`
	Periods   Periods `json:"periods"`
	Venue     Venue   `json:"venue"`
	Status    Status  `json:"status"`
}

type Periods struct {
	First  *int64 `json:"first"`
	Second *int64 `json:"second"`
}

type Venue struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type Status struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

// InProgress reports whether the fixture should be flagged as running.
// "FT", "TBD" and "NS" are the only short codes that mean otherwise; every
// other code (1H, HT, 2H, ET, P, ...) counts as in progress.
func (s Status) InProgress() bool {
	switch s.Short {
	case "FT", "TBD", "NS":
		return false
	}
	return true
}

type League struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Logo    string  `json:"logo"`
	Flag    *string `json:"flag"`
	Season  int     `json:"season"`
	Round   *string `json:"round,omitempty"`
}

type Teams struct {
	Home Team `json:"home"`
	Away Team `json:"away"`
}

// Team as embedded in fixtures, standings and team-search responses.
// Winner is nil when the match is undecided or drawn.
type Team struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner,omitempty"`
}

type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type Score struct {
	Halftime  Goals `json:"halftime"`
	Fulltime  Goals `json:"fulltime"`
	Extratime Goals `json:"extratime"`
	Penalty   Goals `json:"penalty"`
}
