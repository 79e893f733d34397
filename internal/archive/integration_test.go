package archive_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonauction/auction-server/internal/archive"
	"github.com/neonauction/auction-server/internal/auction"
	"github.com/neonauction/auction-server/internal/testutil"
)

func TestArchiveRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers test in short mode")
	}

	tdb := testutil.NewTestDB(t)
	archiver, err := archive.NewWithDB(tdb.DB, zerolog.Nop())
	require.NoError(t, err)

	score := 850.0
	res := auction.FinalResult{
		Code:        "QWERTY",
		Winner:      "CSK",
		WinnerScore: score,
		Leaderboard: []auction.ScoreRow{{Team: "CSK", Username: "Dhoni", Score: score}},
		Teams: []auction.FinalTeam{
			{
				Team:            "CSK",
				Username:        "Dhoni",
				BudgetRemaining: 22.4,
				Qualified:       true,
				Players: []auction.FinalPlayer{
					{ID: 14, Name: "Ravindra Jadeja", Role: "All-Rounder", Country: "India", Price: 1600},
				},
				XI:    []int{14, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
				Score: &score,
			},
		},
		CompletedAt: time.Now().UTC().Truncate(time.Second),
	}

	ctx := context.Background()
	require.NoError(t, archiver.ArchiveResult(ctx, res))

	rooms, err := archiver.FindByCode(ctx, "QWERTY")
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	got := rooms[0]
	assert.Equal(t, "CSK", got.Winner)
	assert.InDelta(t, score, got.WinnerScore, 1e-9)
	require.Len(t, got.Teams, 1)
	assert.Equal(t, "Dhoni", got.Teams[0].Username)
	assert.True(t, got.Teams[0].Qualified)
	require.NotNil(t, got.Teams[0].Score)
	assert.InDelta(t, score, *got.Teams[0].Score, 1e-9)
}
