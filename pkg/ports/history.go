package ports

import (
	"context"
	"time"
)

// HistoryEntry is one recorded conversion.
type HistoryEntry struct {
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Direction string    `json:"direction"`
	At        time.Time `json:"at"`
}

// History journals conversions for later inspection.
type History interface {
	// Append records one entry.
	Append(ctx context.Context, entry HistoryEntry) error

	// List returns all recorded entries, oldest first.
	List(ctx context.Context) ([]HistoryEntry, error)
}
