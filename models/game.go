package models

// Game is immutable reference data. Individual games take single users
// as entrants; team games take teams.
type Game struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Individual bool   `json:"individual"`
}
