package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"esportshub/database"
	"esportshub/models"
)

// StandingRepository provides access to the standings ledger. Standings
// rows shadow roster rows one-to-one; creation and deletion always
// happen inside the same unit of work as the paired roster write.
type StandingRepository struct {
	q queryable
}

// NewStandingRepository creates a new standing repository backed by the
// pool.
func NewStandingRepository(db *database.DB) *StandingRepository {
	return &StandingRepository{q: db.Pool}
}

func newStandingRepositoryWithTx(tx queryable) *StandingRepository {
	return &StandingRepository{q: tx}
}

// CreateForUser inserts the zero-point, unpositioned standing paired
// with an individual roster row.
func (r *StandingRepository) CreateForUser(ctx context.Context, tournamentID, userID int64) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO standings (tournament_id, user_id) VALUES ($1, $2)`,
		tournamentID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to create standing for user %d in tournament %d: %w", userID, tournamentID, err)
	}
	return nil
}

// CreateForTeam inserts the zero-point, unpositioned standing paired
// with a team roster row.
func (r *StandingRepository) CreateForTeam(ctx context.Context, tournamentID, teamID int64) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO standings (tournament_id, team_id) VALUES ($1, $2)`,
		tournamentID, teamID,
	)
	if err != nil {
		return fmt.Errorf("failed to create standing for team %d in tournament %d: %w", teamID, tournamentID, err)
	}
	return nil
}

// GetByUser returns the standing of an individual entrant, or nil.
func (r *StandingRepository) GetByUser(ctx context.Context, tournamentID, userID int64) (*models.Standing, error) {
	query := `
		SELECT id, tournament_id, user_id, team_id, points, position
		FROM standings
		WHERE tournament_id = $1 AND user_id = $2
	`
	return r.scanOne(ctx, query, tournamentID, userID)
}

// GetByTeam returns the standing of a team entrant, or nil.
func (r *StandingRepository) GetByTeam(ctx context.Context, tournamentID, teamID int64) (*models.Standing, error) {
	query := `
		SELECT id, tournament_id, user_id, team_id, points, position
		FROM standings
		WHERE tournament_id = $1 AND team_id = $2
	`
	return r.scanOne(ctx, query, tournamentID, teamID)
}

func (r *StandingRepository) scanOne(ctx context.Context, query string, args ...any) (*models.Standing, error) {
	var s models.Standing
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.TournamentID, &s.UserID, &s.TeamID, &s.Points, &s.Position,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get standing: %w", err)
	}
	return &s, nil
}

// DeleteByUser removes the standing paired with an individual roster row.
func (r *StandingRepository) DeleteByUser(ctx context.Context, tournamentID, userID int64) error {
	result, err := r.q.Exec(ctx,
		`DELETE FROM standings WHERE tournament_id = $1 AND user_id = $2`,
		tournamentID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete standing for user %d in tournament %d: %w", userID, tournamentID, err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotEnrolled, "no standing for user %d in tournament %d", userID, tournamentID)
	}
	return nil
}

// DeleteByTeam removes the standing paired with a team roster row.
func (r *StandingRepository) DeleteByTeam(ctx context.Context, tournamentID, teamID int64) error {
	result, err := r.q.Exec(ctx,
		`DELETE FROM standings WHERE tournament_id = $1 AND team_id = $2`,
		tournamentID, teamID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete standing for team %d in tournament %d: %w", teamID, tournamentID, err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotEnrolled, "no standing for team %d in tournament %d", teamID, tournamentID)
	}
	return nil
}

// DeleteAllByTeam removes every standing of a team across tournaments.
// Part of the founder-departure cascade.
func (r *StandingRepository) DeleteAllByTeam(ctx context.Context, teamID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM standings WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("failed to delete standings of team %d: %w", teamID, err)
	}
	return nil
}

// UpdateForUser overwrites the points and position of an individual
// entrant's standing.
func (r *StandingRepository) UpdateForUser(ctx context.Context, tournamentID, userID int64, points int, position *int) error {
	result, err := r.q.Exec(ctx,
		`UPDATE standings SET points = $1, position = $2 WHERE tournament_id = $3 AND user_id = $4`,
		points, position, tournamentID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update standing for user %d in tournament %d: %w", userID, tournamentID, err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotFound, "no standing for user %d in tournament %d", userID, tournamentID)
	}
	return nil
}

// UpdateForTeam overwrites the points and position of a team entrant's
// standing.
func (r *StandingRepository) UpdateForTeam(ctx context.Context, tournamentID, teamID int64, points int, position *int) error {
	result, err := r.q.Exec(ctx,
		`UPDATE standings SET points = $1, position = $2 WHERE tournament_id = $3 AND team_id = $4`,
		points, position, tournamentID, teamID,
	)
	if err != nil {
		return fmt.Errorf("failed to update standing for team %d in tournament %d: %w", teamID, tournamentID, err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotFound, "no standing for team %d in tournament %d", teamID, tournamentID)
	}
	return nil
}

// ListByTournament returns a tournament's standings with entrant names,
// positioned rows first.
func (r *StandingRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]*models.Standing, error) {
	query := `
		SELECT s.id, s.tournament_id, s.user_id, s.team_id, s.points, s.position,
		       u.name AS user_name, t.name AS team_name
		FROM standings s
		LEFT JOIN users u ON u.id = s.user_id
		LEFT JOIN teams t ON t.id = s.team_id
		WHERE s.tournament_id = $1
		ORDER BY s.position ASC NULLS LAST, s.points DESC
	`

	rows, err := r.q.Query(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	var standings []*models.Standing
	for rows.Next() {
		var s models.Standing
		err := rows.Scan(&s.ID, &s.TournamentID, &s.UserID, &s.TeamID, &s.Points, &s.Position, &s.UserName, &s.TeamName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		standings = append(standings, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate standings: %w", err)
	}

	return standings, nil
}

// DeleteOrphaned removes standings whose paired roster row no longer
// exists. Used by the reconciliation sweep.
func (r *StandingRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM standings s
		WHERE (s.user_id IS NOT NULL AND NOT EXISTS (
			SELECT 1 FROM tournament_players tp
			WHERE tp.user_id = s.user_id AND tp.tournament_id = s.tournament_id
		))
		OR (s.team_id IS NOT NULL AND NOT EXISTS (
			SELECT 1 FROM tournament_teams tt
			WHERE tt.team_id = s.team_id AND tt.tournament_id = s.tournament_id
		))
	`

	result, err := r.q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete orphaned standings: %w", err)
	}
	return result.RowsAffected(), nil
}

// CreateMissing inserts the zero-point standing for any roster row that
// lost its shadow. Used by the reconciliation sweep.
func (r *StandingRepository) CreateMissing(ctx context.Context) (int64, error) {
	playerQuery := `
		INSERT INTO standings (tournament_id, user_id)
		SELECT tp.tournament_id, tp.user_id
		FROM tournament_players tp
		WHERE NOT EXISTS (
			SELECT 1 FROM standings s
			WHERE s.user_id = tp.user_id AND s.tournament_id = tp.tournament_id
		)
	`
	teamQuery := `
		INSERT INTO standings (tournament_id, team_id)
		SELECT tt.tournament_id, tt.team_id
		FROM tournament_teams tt
		WHERE NOT EXISTS (
			SELECT 1 FROM standings s
			WHERE s.team_id = tt.team_id AND s.tournament_id = tt.tournament_id
		)
	`

	players, err := r.q.Exec(ctx, playerQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to restore player standings: %w", err)
	}
	teams, err := r.q.Exec(ctx, teamQuery)
	if err != nil {
		return players.RowsAffected(), fmt.Errorf("failed to restore team standings: %w", err)
	}

	return players.RowsAffected() + teams.RowsAffected(), nil
}
