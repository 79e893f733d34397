package auction

import (
	"fmt"
	"sort"
	"time"

	"github.com/neonauction/auction-server/internal/domain"
)

// ScoringConfig fixes the constants behind the final leaderboard. The values
// are deliberately configuration, not code: the power index formula is a
// product decision, and tests pin the defaults.
type ScoringConfig struct {
	// RoleBonus is added to every selected player's power index.
	RoleBonus map[domain.Role]float64

	// BasePriceDivisor scales a player's base price (lakhs) into index points.
	BasePriceDivisor float64

	// BalanceBonus is awarded once if the XI meets both depth minimums.
	BalanceBonus    float64
	MinBattingDepth int
	MinBowlingDepth int

	// WicketKeeperPenalty applies when the XI has no wicketkeeper.
	WicketKeeperPenalty float64

	// MissingBowlerPenalty applies per bowling-capable player short of MinBowlers.
	MinBowlers           int
	MissingBowlerPenalty float64
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		RoleBonus: map[domain.Role]float64{
			domain.RoleBatsman:      10,
			domain.RoleBowler:       10,
			domain.RoleAllRounder:   18,
			domain.RoleWicketKeeper: 12,
		},
		BasePriceDivisor:     20,
		BalanceBonus:         25,
		MinBattingDepth:      4,
		MinBowlingDepth:      4,
		WicketKeeperPenalty:  50,
		MinBowlers:           5,
		MissingBowlerPenalty: 10,
	}
}

// PowerIndex computes a single player's contribution to the team score.
func PowerIndex(p *domain.Player, cfg ScoringConfig) float64 {
	return float64(p.Potential) + float64(p.BasePrice)/cfg.BasePriceDivisor + cfg.RoleBonus[p.Role]
}

// ScoreRow is one leaderboard entry. Rows are ordered rank 1 first.
type ScoreRow struct {
	Team     string  `json:"team"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

// ValidateXI checks a playing-XI selection against the team's roster:
// exactly 11 distinct owned players with at most 4 overseas among them.
func ValidateXI(team *domain.Team, ids []int, byID map[int]*domain.Player) error {
	if len(ids) != domain.XISize {
		return fmt.Errorf("%w: expected %d players, got %d", domain.ErrInvalidSelection, domain.XISize, len(ids))
	}
	seen := make(map[int]struct{}, len(ids))
	overseas := 0
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate player %d", domain.ErrInvalidSelection, id)
		}
		seen[id] = struct{}{}
		if !team.Owns(id) {
			return fmt.Errorf("%w: player %d is not in your squad", domain.ErrInvalidSelection, id)
		}
		p, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: unknown player %d", domain.ErrInvalidSelection, id)
		}
		if p.IsOverseas() {
			overseas++
		}
	}
	if overseas > domain.XIOverseasCap {
		return fmt.Errorf("%w: %d overseas players, maximum is %d", domain.ErrInvalidSelection, overseas, domain.XIOverseasCap)
	}
	return nil
}

// scoreXI computes the total for one submitted XI.
func scoreXI(ids []int, byID map[int]*domain.Player, cfg ScoringConfig) float64 {
	var total float64
	batting, bowling, keepers := 0, 0, 0
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			continue
		}
		total += PowerIndex(p, cfg)
		if p.Role.BattingCapable() {
			batting++
		}
		if p.Role.BowlingCapable() {
			bowling++
		}
		if p.Role == domain.RoleWicketKeeper {
			keepers++
		}
	}
	if batting >= cfg.MinBattingDepth && bowling >= cfg.MinBowlingDepth {
		total += cfg.BalanceBonus
	}
	if keepers == 0 {
		total -= cfg.WicketKeeperPenalty
	}
	if bowling < cfg.MinBowlers {
		total -= float64(cfg.MinBowlers-bowling) * cfg.MissingBowlerPenalty
	}
	return total
}

// computeLeaderboard ranks every qualified team that submitted an XI.
// Eliminated and non-submitting teams are excluded. Ties break toward the
// earlier submission.
func computeLeaderboard(teams []*domain.Team, byID map[int]*domain.Player, cfg ScoringConfig) []ScoreRow {
	type scored struct {
		row         ScoreRow
		submittedAt time.Time
	}
	entries := make([]scored, 0, len(teams))
	for _, t := range teams {
		if !t.Qualified() || t.XI == nil {
			continue
		}
		entries = append(entries, scored{
			row: ScoreRow{
				Team:     string(t.Tag),
				Username: t.Manager,
				Score:    scoreXI(t.XI.PlayerIDs, byID, cfg),
			},
			submittedAt: t.XI.SubmittedAt,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].row.Score != entries[j].row.Score {
			return entries[i].row.Score > entries[j].row.Score
		}
		return entries[i].submittedAt.Before(entries[j].submittedAt)
	})
	rows := make([]ScoreRow, len(entries))
	for i, e := range entries {
		rows[i] = e.row
	}
	return rows
}
