package models

// IndividualLeagueEntry is a user's participation in an individual
// game's league, unique per (user, game).
type IndividualLeagueEntry struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	GameID int64 `json:"game_id"`
	Wins   int   `json:"wins"`
	Losses int   `json:"losses"`
}

// TeamLeagueEntry is a team's participation in a team game's league,
// unique per (team, game). Only the team's founder may create one.
type TeamLeagueEntry struct {
	ID     int64 `json:"id"`
	TeamID int64 `json:"team_id"`
	GameID int64 `json:"game_id"`
	Wins   int   `json:"wins"`
	Losses int   `json:"losses"`
}
