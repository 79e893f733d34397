package archive

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonauction/auction-server/internal/auction"
)

func sampleResult() auction.FinalResult {
	score := 1023.5
	return auction.FinalResult{
		Code:        "AB12CD",
		Winner:      "MI",
		WinnerScore: score,
		Leaderboard: []auction.ScoreRow{
			{Team: "MI", Username: "Rohit", Score: score},
			{Team: "CSK", Username: "Dhoni", Score: 998.0},
		},
		Teams: []auction.FinalTeam{
			{
				Team:            "MI",
				Username:        "Rohit",
				BudgetRemaining: 14.5,
				Qualified:       true,
				Players: []auction.FinalPlayer{
					{ID: 7, Name: "Jasprit Bumrah", Role: "Bowler", Country: "India", Price: 1200},
				},
				XI:    []int{7, 1, 2, 3, 4, 5, 6, 8, 9, 10, 11},
				Score: &score,
			},
			{
				Team:            "RCB",
				Username:        "Kohli",
				BudgetRemaining: 120.0,
				Qualified:       false,
			},
		},
		CompletedAt: time.Date(2026, 5, 1, 18, 30, 0, 0, time.UTC),
	}
}

func TestRecordFromResult(t *testing.T) {
	res := sampleResult()
	rec, err := recordFromResult(res)
	require.NoError(t, err)

	assert.Equal(t, "AB12CD", rec.Code)
	assert.Equal(t, "MI", rec.Winner)
	assert.Equal(t, res.WinnerScore, rec.WinnerScore)
	assert.Equal(t, res.CompletedAt, rec.CompletedAt)
	assert.NotEqual(t, rec.ID.String(), "00000000-0000-0000-0000-000000000000")

	var leaderboard []auction.ScoreRow
	require.NoError(t, json.Unmarshal(rec.Leaderboard, &leaderboard))
	assert.Equal(t, res.Leaderboard, leaderboard)

	require.Len(t, rec.Teams, 2)
	mi := rec.Teams[0]
	assert.Equal(t, rec.ID, mi.RoomID)
	assert.Equal(t, "MI", mi.Team)
	assert.True(t, mi.Qualified)
	require.NotNil(t, mi.Score)
	assert.Equal(t, res.WinnerScore, *mi.Score)

	var roster []auction.FinalPlayer
	require.NoError(t, json.Unmarshal(mi.Roster, &roster))
	require.Len(t, roster, 1)
	assert.Equal(t, "Jasprit Bumrah", roster[0].Name)

	var xi []int
	require.NoError(t, json.Unmarshal(mi.XI, &xi))
	assert.Len(t, xi, 11)

	// The eliminated team has no XI payload and no score.
	rcb := rec.Teams[1]
	assert.False(t, rcb.Qualified)
	assert.Nil(t, rcb.Score)
	assert.Empty(t, rcb.XI)
}
