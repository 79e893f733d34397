package auction

import (
	"time"

	"github.com/neonauction/auction-server/internal/domain"
)

// FinalPlayer is one purchased player in the archived result.
type FinalPlayer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Country string `json:"country"`
	Price   int    `json:"price"` // lakhs
}

// FinalTeam is one team's closing position: full roster, submitted XI (nil if
// the team never submitted) and the leaderboard score for scored teams.
type FinalTeam struct {
	Team            string        `json:"team"`
	Username        string        `json:"username"`
	BudgetRemaining float64       `json:"budget_remaining"` // crores
	Qualified       bool          `json:"qualified"`
	Players         []FinalPlayer `json:"players"`
	XI              []int         `json:"xi,omitempty"`
	Score           *float64      `json:"score,omitempty"`
}

// FinalResult is the immutable outcome of a completed room. Winner is empty
// when no team qualified.
type FinalResult struct {
	Code        string      `json:"code"`
	Winner      string      `json:"winner"`
	WinnerScore float64     `json:"winner_score"`
	Leaderboard []ScoreRow  `json:"leaderboard"`
	Teams       []FinalTeam `json:"teams"`
	CompletedAt time.Time   `json:"completed_at"`
}

// buildResultLocked assembles the final result from frozen room state.
// Caller holds the write lock and has already computed the leaderboard.
func (r *Room) buildResultLocked() FinalResult {
	scores := make(map[string]float64, len(r.leaderboard))
	for _, row := range r.leaderboard {
		scores[row.Team] = row.Score
	}
	teams := make([]FinalTeam, 0, len(r.teams))
	for _, t := range r.teams {
		ft := FinalTeam{
			Team:            string(t.Tag),
			Username:        t.Manager,
			BudgetRemaining: domain.LakhsToCr(t.BudgetLakhs),
			Qualified:       t.Qualified(),
		}
		for _, op := range t.Players {
			p := r.playersByID[op.PlayerID]
			ft.Players = append(ft.Players, FinalPlayer{
				ID:      p.ID,
				Name:    p.Name,
				Role:    string(p.Role),
				Country: p.Country,
				Price:   op.Price,
			})
		}
		if t.XI != nil {
			ft.XI = make([]int, len(t.XI.PlayerIDs))
			copy(ft.XI, t.XI.PlayerIDs)
		}
		if s, ok := scores[string(t.Tag)]; ok && t.XI != nil {
			score := s
			ft.Score = &score
		}
		teams = append(teams, ft)
	}
	res := FinalResult{
		Code:        r.code,
		Leaderboard: append([]ScoreRow(nil), r.leaderboard...),
		Teams:       teams,
		CompletedAt: r.completedAt,
	}
	if len(r.leaderboard) > 0 {
		res.Winner = r.leaderboard[0].Team
		res.WinnerScore = r.leaderboard[0].Score
	}
	return res
}
