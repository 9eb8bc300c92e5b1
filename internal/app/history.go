package app

import "time"

// HistoryEntry is an entry in the travel history of a commander.
type HistoryEntry struct {
	ID          int64
	EventType   string
	IsDocked    bool
	Position    Position
	StartMarker bool
	StopMarker  bool
	System      string
	Time        time.Time
}

// LedgerTransaction is a financial event of a commander.
type LedgerTransaction struct {
	ID        int64
	Amount    float64
	Balance   float64
	EventType string
	Notes     string
	Time      time.Time
}
