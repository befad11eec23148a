package loam_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/abacus/internal/adapters/loam"
	"github.com/aretw0/abacus/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalAppendAndList(t *testing.T) {
	journal, err := loam.New(t.TempDir())
	require.NoError(t, err, "New should not return error")

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entries := []ports.HistoryEntry{
		{Input: "1994", Output: "MCMXCIV", Direction: "to_roman", At: base},
		{Input: "XIV", Output: "14", Direction: "from_roman", At: base.Add(time.Second)},
	}
	for _, e := range entries {
		require.NoError(t, journal.Append(ctx, e))
	}

	got, err := journal.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Oldest first.
	assert.Equal(t, "1994", got[0].Input)
	assert.Equal(t, "MCMXCIV", got[0].Output)
	assert.Equal(t, "XIV", got[1].Input)
	assert.Equal(t, "from_roman", got[1].Direction)
	assert.True(t, got[0].At.Before(got[1].At))
}

func TestJournalListEmpty(t *testing.T) {
	journal, err := loam.New(t.TempDir())
	require.NoError(t, err)

	got, err := journal.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
