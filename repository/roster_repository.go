package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"esportshub/database"
	"esportshub/models"
)

// RosterRepository provides access to tournament roster rows, both
// individual and team entrants.
type RosterRepository struct {
	q queryable
}

// NewRosterRepository creates a new roster repository backed by the pool.
func NewRosterRepository(db *database.DB) *RosterRepository {
	return &RosterRepository{q: db.Pool}
}

func newRosterRepositoryWithTx(tx queryable) *RosterRepository {
	return &RosterRepository{q: tx}
}

// GetPlayerEntry returns the user's roster row for a tournament, or nil
// when not enrolled.
func (r *RosterRepository) GetPlayerEntry(ctx context.Context, userID, tournamentID int64) (*models.TournamentPlayer, error) {
	query := `
		SELECT user_id, tournament_id, enrolled_at
		FROM tournament_players
		WHERE user_id = $1 AND tournament_id = $2
	`

	var entry models.TournamentPlayer
	err := r.q.QueryRow(ctx, query, userID, tournamentID).Scan(
		&entry.UserID, &entry.TournamentID, &entry.EnrolledAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player roster entry: %w", err)
	}

	return &entry, nil
}

// AddPlayer inserts an individual entrant's roster row.
func (r *RosterRepository) AddPlayer(ctx context.Context, userID, tournamentID int64) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO tournament_players (user_id, tournament_id) VALUES ($1, $2)`,
		userID, tournamentID,
	)
	if err != nil {
		return fmt.Errorf("failed to add user %d to tournament %d roster: %w", userID, tournamentID, err)
	}
	return nil
}

// RemovePlayer deletes an individual entrant's roster row.
func (r *RosterRepository) RemovePlayer(ctx context.Context, userID, tournamentID int64) error {
	result, err := r.q.Exec(ctx,
		`DELETE FROM tournament_players WHERE user_id = $1 AND tournament_id = $2`,
		userID, tournamentID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove user %d from tournament %d roster: %w", userID, tournamentID, err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotEnrolled, "user %d is not enrolled in tournament %d", userID, tournamentID)
	}
	return nil
}

// ListPlayers returns the individual entrants of a tournament.
func (r *RosterRepository) ListPlayers(ctx context.Context, tournamentID int64) ([]*models.Entrant, error) {
	query := `
		SELECT u.id, u.name
		FROM tournament_players tp
		JOIN users u ON u.id = tp.user_id
		WHERE tp.tournament_id = $1
		ORDER BY u.name
	`
	return r.listEntrants(ctx, query, tournamentID)
}

// GetTeamEntry returns the team's roster row for a tournament, or nil
// when not enrolled.
func (r *RosterRepository) GetTeamEntry(ctx context.Context, teamID, tournamentID int64) (*models.TournamentTeam, error) {
	query := `
		SELECT team_id, tournament_id, enrolled_at
		FROM tournament_teams
		WHERE team_id = $1 AND tournament_id = $2
	`

	var entry models.TournamentTeam
	err := r.q.QueryRow(ctx, query, teamID, tournamentID).Scan(
		&entry.TeamID, &entry.TournamentID, &entry.EnrolledAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team roster entry: %w", err)
	}

	return &entry, nil
}

// AddTeam inserts a team entrant's roster row.
func (r *RosterRepository) AddTeam(ctx context.Context, teamID, tournamentID int64) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO tournament_teams (team_id, tournament_id) VALUES ($1, $2)`,
		teamID, tournamentID,
	)
	if err != nil {
		return fmt.Errorf("failed to add team %d to tournament %d roster: %w", teamID, tournamentID, err)
	}
	return nil
}

// RemoveTeam deletes a team entrant's roster row.
func (r *RosterRepository) RemoveTeam(ctx context.Context, teamID, tournamentID int64) error {
	result, err := r.q.Exec(ctx,
		`DELETE FROM tournament_teams WHERE team_id = $1 AND tournament_id = $2`,
		teamID, tournamentID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove team %d from tournament %d roster: %w", teamID, tournamentID, err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotEnrolled, "team %d is not enrolled in tournament %d", teamID, tournamentID)
	}
	return nil
}

// RemoveTeamFromAll deletes every roster row of a team. Part of the
// founder-departure cascade.
func (r *RosterRepository) RemoveTeamFromAll(ctx context.Context, teamID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tournament_teams WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("failed to remove team %d from tournament rosters: %w", teamID, err)
	}
	return nil
}

// ListTeams returns the team entrants of a tournament.
func (r *RosterRepository) ListTeams(ctx context.Context, tournamentID int64) ([]*models.Entrant, error) {
	query := `
		SELECT t.id, t.name
		FROM tournament_teams tt
		JOIN teams t ON t.id = tt.team_id
		WHERE tt.tournament_id = $1
		ORDER BY t.name
	`
	return r.listEntrants(ctx, query, tournamentID)
}

func (r *RosterRepository) listEntrants(ctx context.Context, query string, tournamentID int64) ([]*models.Entrant, error) {
	rows, err := r.q.Query(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament %d entrants: %w", tournamentID, err)
	}
	defer rows.Close()

	var entrants []*models.Entrant
	for rows.Next() {
		var e models.Entrant
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("failed to scan entrant: %w", err)
		}
		entrants = append(entrants, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entrants: %w", err)
	}

	return entrants, nil
}
