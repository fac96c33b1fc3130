package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"esportshub/database"
)

// ReconcileReport summarizes a standings repair run.
type ReconcileReport struct {
	OrphansRemoved int64
	MissingCreated int64
}

// ReconcileStandings repairs the pairing between tournament rosters and
// standings in one transaction: standings without a roster row are
// removed, roster rows without a standing get a zero-point one. This is
// the operator remedy after an operation reported a partial failure.
func ReconcileStandings(ctx context.Context, db *database.DB) (*ReconcileReport, error) {
	var report ReconcileReport

	err := db.WithTransaction(ctx, func(tx pgx.Tx) error {
		repo := newStandingRepositoryWithTx(tx)

		removed, err := repo.DeleteOrphaned(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete orphaned standings: %w", err)
		}
		report.OrphansRemoved = removed

		created, err := repo.CreateMissing(ctx)
		if err != nil {
			return fmt.Errorf("failed to create missing standings: %w", err)
		}
		report.MissingCreated = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &report, nil
}
