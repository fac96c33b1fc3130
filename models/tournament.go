package models

import "time"

type Tournament struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Location  string    `json:"location"`
	EventID   int64     `json:"event_id"`
	GameID    int64     `json:"game_id"`
}

// TournamentPlayer is an individual entrant's roster row.
type TournamentPlayer struct {
	UserID       int64     `json:"user_id"`
	TournamentID int64     `json:"tournament_id"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}

// Entrant is a roster listing row: a user or team enrolled in a
// tournament.
type Entrant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TournamentTeam is a team entrant's roster row.
type TournamentTeam struct {
	TeamID       int64     `json:"team_id"`
	TournamentID int64     `json:"tournament_id"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}
