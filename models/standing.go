package models

// Standing is the scored shadow of a roster row: exactly one of UserID
// or TeamID is set, and the row exists if and only if the entrant is
// enrolled in the tournament. Position is unset until an administrator
// records a result.
type Standing struct {
	ID           int64  `json:"id"`
	TournamentID int64  `json:"tournament_id"`
	UserID       *int64 `json:"user_id,omitempty"`
	TeamID       *int64 `json:"team_id,omitempty"`
	Points       int    `json:"points"`
	Position     *int   `json:"position,omitempty"`

	// Entrant display names, populated by listing queries only.
	UserName *string `json:"user_name,omitempty"`
	TeamName *string `json:"team_name,omitempty"`
}
