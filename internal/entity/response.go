package entity

// TeamHit is one element of the teams-search response; only the team part
// matters for the roster.
type TeamHit struct {
	Team Team `json:"team"`
}
