package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"esportshub/database"
	"esportshub/models"
)

// GameRepository provides read access to the immutable game reference
// data.
type GameRepository struct {
	q queryable
}

// NewGameRepository creates a new game repository backed by the pool.
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{q: db.Pool}
}

func newGameRepositoryWithTx(tx queryable) *GameRepository {
	return &GameRepository{q: tx}
}

// GetByID retrieves a game by primary key. Returns nil when absent.
func (r *GameRepository) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	query := `SELECT id, name, individual FROM games WHERE id = $1`

	var game models.Game
	err := r.q.QueryRow(ctx, query, id).Scan(&game.ID, &game.Name, &game.Individual)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}

	return &game, nil
}

// GetAll returns games, optionally filtered by entrant type. A nil
// filter returns everything.
func (r *GameRepository) GetAll(ctx context.Context, individual *bool) ([]*models.Game, error) {
	query := `SELECT id, name, individual FROM games ORDER BY name`
	args := []any{}
	if individual != nil {
		query = `SELECT id, name, individual FROM games WHERE individual = $1 ORDER BY name`
		args = append(args, *individual)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		var game models.Game
		if err := rows.Scan(&game.ID, &game.Name, &game.Individual); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, &game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, nil
}
