package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"esportshub/database"
	"esportshub/models"
)

// EventRepository provides access to events.
type EventRepository struct {
	q queryable
}

// NewEventRepository creates a new event repository backed by the pool.
func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{q: db.Pool}
}

func newEventRepositoryWithTx(tx queryable) *EventRepository {
	return &EventRepository{q: tx}
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, name string, kind models.EventKind, year int, month *int) (*models.Event, error) {
	query := `
		INSERT INTO events (name, kind, year, month)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, kind, year, month
	`

	var event models.Event
	err := r.q.QueryRow(ctx, query, name, kind, year, month).Scan(
		&event.ID,
		&event.Name,
		&event.Kind,
		&event.Year,
		&event.Month,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

// GetByID retrieves an event by primary key. Returns nil when absent.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT id, name, kind, year, month FROM events WHERE id = $1`

	var event models.Event
	err := r.q.QueryRow(ctx, query, id).Scan(&event.ID, &event.Name, &event.Kind, &event.Year, &event.Month)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event %d: %w", id, err)
	}

	return &event, nil
}

// GetAll returns all events, newest year first.
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	query := `SELECT id, name, kind, year, month FROM events ORDER BY year DESC, month DESC NULLS LAST`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.Name, &event.Kind, &event.Year, &event.Month); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}
