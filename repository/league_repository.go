package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"esportshub/database"
	"esportshub/models"
)

// LeagueRepository provides access to individual and team league
// entries.
type LeagueRepository struct {
	q queryable
}

// NewLeagueRepository creates a new league repository backed by the pool.
func NewLeagueRepository(db *database.DB) *LeagueRepository {
	return &LeagueRepository{q: db.Pool}
}

func newLeagueRepositoryWithTx(tx queryable) *LeagueRepository {
	return &LeagueRepository{q: tx}
}

// GetIndividualEntry returns the (user, game) entry, or nil when absent.
func (r *LeagueRepository) GetIndividualEntry(ctx context.Context, userID, gameID int64) (*models.IndividualLeagueEntry, error) {
	query := `
		SELECT id, user_id, game_id, wins, losses
		FROM individual_league_entries
		WHERE user_id = $1 AND game_id = $2
	`

	var entry models.IndividualLeagueEntry
	err := r.q.QueryRow(ctx, query, userID, gameID).Scan(
		&entry.ID, &entry.UserID, &entry.GameID, &entry.Wins, &entry.Losses,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get individual league entry: %w", err)
	}

	return &entry, nil
}

// CreateIndividualEntry inserts a zero-win, zero-loss entry.
func (r *LeagueRepository) CreateIndividualEntry(ctx context.Context, userID, gameID int64) (*models.IndividualLeagueEntry, error) {
	query := `
		INSERT INTO individual_league_entries (user_id, game_id)
		VALUES ($1, $2)
		RETURNING id, user_id, game_id, wins, losses
	`

	var entry models.IndividualLeagueEntry
	err := r.q.QueryRow(ctx, query, userID, gameID).Scan(
		&entry.ID, &entry.UserID, &entry.GameID, &entry.Wins, &entry.Losses,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create individual league entry: %w", err)
	}

	return &entry, nil
}

// DeleteIndividualEntry removes the (user, game) entry.
func (r *LeagueRepository) DeleteIndividualEntry(ctx context.Context, userID, gameID int64) error {
	result, err := r.q.Exec(ctx,
		`DELETE FROM individual_league_entries WHERE user_id = $1 AND game_id = $2`,
		userID, gameID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete individual league entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotEnrolled, "user %d has no entry for game %d", userID, gameID)
	}
	return nil
}

// ListIndividualEntriesByUser returns a user's league entries.
func (r *LeagueRepository) ListIndividualEntriesByUser(ctx context.Context, userID int64) ([]*models.IndividualLeagueEntry, error) {
	query := `
		SELECT id, user_id, game_id, wins, losses
		FROM individual_league_entries
		WHERE user_id = $1
		ORDER BY game_id
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list individual league entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.IndividualLeagueEntry
	for rows.Next() {
		var entry models.IndividualLeagueEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.GameID, &entry.Wins, &entry.Losses); err != nil {
			return nil, fmt.Errorf("failed to scan individual league entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate individual league entries: %w", err)
	}

	return entries, nil
}

// RecordIndividualResult increments the win or loss counter of an entry.
func (r *LeagueRepository) RecordIndividualResult(ctx context.Context, userID, gameID int64, win bool) error {
	query := `UPDATE individual_league_entries SET losses = losses + 1 WHERE user_id = $1 AND game_id = $2`
	if win {
		query = `UPDATE individual_league_entries SET wins = wins + 1 WHERE user_id = $1 AND game_id = $2`
	}

	result, err := r.q.Exec(ctx, query, userID, gameID)
	if err != nil {
		return fmt.Errorf("failed to record individual result: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotEnrolled, "user %d has no entry for game %d", userID, gameID)
	}
	return nil
}

// GetTeamEntry returns the (team, game) entry, or nil when absent.
func (r *LeagueRepository) GetTeamEntry(ctx context.Context, teamID, gameID int64) (*models.TeamLeagueEntry, error) {
	query := `
		SELECT id, team_id, game_id, wins, losses
		FROM team_league_entries
		WHERE team_id = $1 AND game_id = $2
	`

	var entry models.TeamLeagueEntry
	err := r.q.QueryRow(ctx, query, teamID, gameID).Scan(
		&entry.ID, &entry.TeamID, &entry.GameID, &entry.Wins, &entry.Losses,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team league entry: %w", err)
	}

	return &entry, nil
}

// CreateTeamEntry inserts a zero-win, zero-loss entry.
func (r *LeagueRepository) CreateTeamEntry(ctx context.Context, teamID, gameID int64) (*models.TeamLeagueEntry, error) {
	query := `
		INSERT INTO team_league_entries (team_id, game_id)
		VALUES ($1, $2)
		RETURNING id, team_id, game_id, wins, losses
	`

	var entry models.TeamLeagueEntry
	err := r.q.QueryRow(ctx, query, teamID, gameID).Scan(
		&entry.ID, &entry.TeamID, &entry.GameID, &entry.Wins, &entry.Losses,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create team league entry: %w", err)
	}

	return &entry, nil
}

// DeleteTeamEntry removes the (team, game) entry.
func (r *LeagueRepository) DeleteTeamEntry(ctx context.Context, teamID, gameID int64) error {
	result, err := r.q.Exec(ctx,
		`DELETE FROM team_league_entries WHERE team_id = $1 AND game_id = $2`,
		teamID, gameID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete team league entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotEnrolled, "team %d has no entry for game %d", teamID, gameID)
	}
	return nil
}

// DeleteTeamEntriesByTeam removes every league entry of a team. Part of
// the founder-departure cascade.
func (r *LeagueRepository) DeleteTeamEntriesByTeam(ctx context.Context, teamID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM team_league_entries WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("failed to delete league entries of team %d: %w", teamID, err)
	}
	return nil
}

// ListTeamEntriesByTeam returns a team's league entries.
func (r *LeagueRepository) ListTeamEntriesByTeam(ctx context.Context, teamID int64) ([]*models.TeamLeagueEntry, error) {
	query := `
		SELECT id, team_id, game_id, wins, losses
		FROM team_league_entries
		WHERE team_id = $1
		ORDER BY game_id
	`

	rows, err := r.q.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team league entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.TeamLeagueEntry
	for rows.Next() {
		var entry models.TeamLeagueEntry
		if err := rows.Scan(&entry.ID, &entry.TeamID, &entry.GameID, &entry.Wins, &entry.Losses); err != nil {
			return nil, fmt.Errorf("failed to scan team league entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team league entries: %w", err)
	}

	return entries, nil
}

// RecordTeamResult increments the win or loss counter of an entry.
func (r *LeagueRepository) RecordTeamResult(ctx context.Context, teamID, gameID int64, win bool) error {
	query := `UPDATE team_league_entries SET losses = losses + 1 WHERE team_id = $1 AND game_id = $2`
	if win {
		query = `UPDATE team_league_entries SET wins = wins + 1 WHERE team_id = $1 AND game_id = $2`
	}

	result, err := r.q.Exec(ctx, query, teamID, gameID)
	if err != nil {
		return fmt.Errorf("failed to record team result: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotEnrolled, "team %d has no entry for game %d", teamID, gameID)
	}
	return nil
}
