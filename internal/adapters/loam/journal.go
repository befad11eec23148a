// Package loam journals conversions as documents in a Loam repository,
// one file per entry.
package loam

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"

	"github.com/aretw0/abacus/pkg/ports"
)

// entryMetadata is the frontmatter of a journal document.
type entryMetadata struct {
	Input     string `json:"input" mapstructure:"input"`
	Output    string `json:"output" mapstructure:"output"`
	Direction string `json:"direction" mapstructure:"direction"`
	At        string `json:"at" mapstructure:"at"`
}

// Journal implements ports.History on top of a Loam repository.
type Journal struct {
	svc  *core.Service
	repo *loam.TypedRepository[entryMetadata]
}

// New opens (or creates) the journal at dir.
// Versioning is disabled: the journal is append-only, one commit per entry.
func New(dir string) (*Journal, error) {
	repo, err := loam.Init(dir, loam.WithVersioning(false))
	if err != nil {
		return nil, fmt.Errorf("failed to init loam: %w", err)
	}

	return &Journal{
		svc:  core.NewService(repo),
		repo: loam.NewTypedRepository[entryMetadata](repo),
	}, nil
}

// Append records one entry as a new document.
func (j *Journal) Append(ctx context.Context, entry ports.HistoryEntry) error {
	tx, err := j.svc.Begin(ctx)
	if err != nil {
		return fmt.Errorf("journal tx begin failed: %w", err)
	}

	// Nanosecond timestamps keep IDs unique and sortable.
	id := fmt.Sprintf("%d.json", entry.At.UnixNano())

	err = tx.Save(ctx, core.Document{
		ID:      id,
		Content: fmt.Sprintf("%s -> %s", entry.Input, entry.Output),
		Metadata: core.Metadata{
			"input":     entry.Input,
			"output":    entry.Output,
			"direction": entry.Direction,
			"at":        entry.At.Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return fmt.Errorf("journal save failed: %w", err)
	}

	if err := tx.Commit(ctx, "Record conversion "+entry.Input); err != nil {
		return fmt.Errorf("journal commit failed: %w", err)
	}
	return nil
}

// List returns all recorded entries, oldest first.
func (j *Journal) List(ctx context.Context) ([]ports.HistoryEntry, error) {
	docs, err := j.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("journal list failed: %w", err)
	}

	entries := make([]ports.HistoryEntry, 0, len(docs))
	for _, doc := range docs {
		at, err := time.Parse(time.RFC3339Nano, doc.Data.At)
		if err != nil {
			// Skip documents that are not journal entries.
			continue
		}
		entries = append(entries, ports.HistoryEntry{
			Input:     doc.Data.Input,
			Output:    doc.Data.Output,
			Direction: doc.Data.Direction,
			At:        at,
		})
	}

	sort.Slice(entries, func(i, k int) bool {
		return entries[i].At.Before(entries[k].At)
	})

	return entries, nil
}
