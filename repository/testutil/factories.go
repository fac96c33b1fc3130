package testutil

import (
	"fmt"
	"time"
)

// PasswordHash is a placeholder credential for repository tests. These
// tests never authenticate, so any text will do.
const PasswordHash = "not-a-real-hash"

// Game IDs seeded by the games migration.
const (
	TeamGameID       = int64(1) // League of Legends
	IndividualGameID = int64(5) // Street Fighter 6
)

// Email derives a unique address from a username.
func Email(name string) string {
	return fmt.Sprintf("%s@test.example", name)
}

// TournamentDates returns a three day window starting tomorrow.
func TournamentDates() (time.Time, time.Time) {
	start := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	return start, start.AddDate(0, 0, 3)
}
