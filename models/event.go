package models

type EventKind string

const (
	EventAnnual  EventKind = "annual"
	EventMonthly EventKind = "monthly"
)

// Event groups tournaments. Month is set only for monthly events.
type Event struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Kind  EventKind `json:"kind"`
	Year  int       `json:"year"`
	Month *int      `json:"month,omitempty"`
}
