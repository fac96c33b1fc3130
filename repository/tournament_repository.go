package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"esportshub/database"
	"esportshub/models"
)

// TournamentRepository provides access to tournaments.
type TournamentRepository struct {
	q queryable
}

// NewTournamentRepository creates a new tournament repository backed by
// the pool.
func NewTournamentRepository(db *database.DB) *TournamentRepository {
	return &TournamentRepository{q: db.Pool}
}

func newTournamentRepositoryWithTx(tx queryable) *TournamentRepository {
	return &TournamentRepository{q: tx}
}

// Create inserts a new tournament.
func (r *TournamentRepository) Create(ctx context.Context, name string, start, end time.Time, location string, eventID, gameID int64) (*models.Tournament, error) {
	query := `
		INSERT INTO tournaments (name, start_date, end_date, location, event_id, game_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, start_date, end_date, location, event_id, game_id
	`

	var t models.Tournament
	err := r.q.QueryRow(ctx, query, name, start, end, location, eventID, gameID).Scan(
		&t.ID,
		&t.Name,
		&t.StartDate,
		&t.EndDate,
		&t.Location,
		&t.EventID,
		&t.GameID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	return &t, nil
}

// GetByID retrieves a tournament by primary key. Returns nil when absent.
func (r *TournamentRepository) GetByID(ctx context.Context, id int64) (*models.Tournament, error) {
	query := `
		SELECT id, name, start_date, end_date, location, event_id, game_id
		FROM tournaments
		WHERE id = $1
	`

	var t models.Tournament
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.StartDate,
		&t.EndDate,
		&t.Location,
		&t.EventID,
		&t.GameID,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}

	return &t, nil
}

// GetAll returns all tournaments ordered by start date.
func (r *TournamentRepository) GetAll(ctx context.Context) ([]*models.Tournament, error) {
	query := `
		SELECT id, name, start_date, end_date, location, event_id, game_id
		FROM tournaments
		ORDER BY start_date DESC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	defer rows.Close()

	var tournaments []*models.Tournament
	for rows.Next() {
		var t models.Tournament
		err := rows.Scan(&t.ID, &t.Name, &t.StartDate, &t.EndDate, &t.Location, &t.EventID, &t.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", err)
		}
		tournaments = append(tournaments, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tournaments: %w", err)
	}

	return tournaments, nil
}
