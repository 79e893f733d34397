package auction

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonauction/auction-server/internal/domain"
)

// fixture builds a team owning n players with the given role cycle, plus a
// lookup map covering them. Player ids start at base+1.
func fixture(tag domain.TeamTag, base, n int, roles []domain.Role, countries []string) (*domain.Team, map[int]*domain.Player) {
	team := &domain.Team{Tag: tag, Manager: string(tag) + " boss", BudgetLakhs: 5000}
	byID := make(map[int]*domain.Player)
	for i := 0; i < n; i++ {
		id := base + i + 1
		p := &domain.Player{
			ID:        id,
			Name:      fmt.Sprintf("Player %d", id),
			Role:      roles[i%len(roles)],
			Country:   countries[i%len(countries)],
			BasePrice: 100,
			Potential: 80,
			Status:    domain.PlayerStatusSold,
			SoldTo:    tag,
		}
		byID[id] = p
		team.Players = append(team.Players, domain.OwnedPlayer{PlayerID: id, Price: 100})
	}
	return team, byID
}

func ids(team *domain.Team, n int) []int {
	out := make([]int, 0, n)
	for _, op := range team.Players[:n] {
		out = append(out, op.PlayerID)
	}
	return out
}

func TestValidateXISize(t *testing.T) {
	roles := []domain.Role{domain.RoleBatsman, domain.RoleBowler, domain.RoleAllRounder, domain.RoleWicketKeeper}
	team, byID := fixture(domain.TeamCSK, 0, 18, roles, []string{"India"})

	assert.ErrorIs(t, ValidateXI(team, ids(team, 10), byID), domain.ErrInvalidSelection)
	assert.ErrorIs(t, ValidateXI(team, ids(team, 12), byID), domain.ErrInvalidSelection)
	assert.NoError(t, ValidateXI(team, ids(team, 11), byID))
}

func TestValidateXIOverseasCap(t *testing.T) {
	roles := []domain.Role{domain.RoleBatsman, domain.RoleBowler}

	// First 4 players overseas, rest Indian: legal.
	team, byID := fixture(domain.TeamMI, 100, 18, roles,
		[]string{"Australia", "England", "South Africa", "New Zealand", "India", "India", "India", "India", "India", "India", "India", "India", "India", "India", "India", "India", "India", "India"})
	assert.NoError(t, ValidateXI(team, ids(team, 11), byID))

	// Five overseas in the eleven: rejected.
	team5, byID5 := fixture(domain.TeamRCB, 200, 18, roles,
		[]string{"Australia", "England", "South Africa", "New Zealand", "West Indies", "India", "India", "India", "India", "India", "India", "India", "India", "India", "India", "India", "India", "India"})
	assert.ErrorIs(t, ValidateXI(team5, ids(team5, 11), byID5), domain.ErrInvalidSelection)
}

func TestValidateXIOwnershipAndDuplicates(t *testing.T) {
	roles := []domain.Role{domain.RoleBatsman}
	team, byID := fixture(domain.TeamKKR, 300, 18, roles, []string{"India"})

	notOwned := ids(team, 11)
	notOwned[10] = 9999
	assert.ErrorIs(t, ValidateXI(team, notOwned, byID), domain.ErrInvalidSelection)

	dup := ids(team, 11)
	dup[10] = dup[0]
	assert.ErrorIs(t, ValidateXI(team, dup, byID), domain.ErrInvalidSelection)
}

func TestPowerIndex(t *testing.T) {
	cfg := DefaultScoringConfig()
	p := &domain.Player{Role: domain.RoleAllRounder, BasePrice: 200, Potential: 90}
	// 90 + 200/20 + 18
	assert.InDelta(t, 118.0, PowerIndex(p, cfg), 1e-9)
}

func TestScoreXIPenaltiesAndBonus(t *testing.T) {
	cfg := DefaultScoringConfig()

	// Balanced XI: 4 batsmen, 1 keeper, 2 all-rounders, 4 bowlers.
	roles := []domain.Role{
		domain.RoleBatsman, domain.RoleBatsman, domain.RoleBatsman, domain.RoleBatsman,
		domain.RoleWicketKeeper,
		domain.RoleAllRounder, domain.RoleAllRounder,
		domain.RoleBowler, domain.RoleBowler, domain.RoleBowler, domain.RoleBowler,
	}
	byID := make(map[int]*domain.Player)
	sel := make([]int, 0, 11)
	var base float64
	for i, role := range roles {
		id := i + 1
		byID[id] = &domain.Player{ID: id, Role: role, Country: "India", BasePrice: 100, Potential: 80}
		sel = append(sel, id)
		base += 80 + 100.0/20 + cfg.RoleBonus[role]
	}

	// 6 bowling-capable, keeper present, depth on both sides: bonus only.
	assert.InDelta(t, base+cfg.BalanceBonus, scoreXI(sel, byID, cfg), 1e-9)

	// Swap the keeper for a batsman: keeper penalty, balance bonus stays.
	byID[5].Role = domain.RoleBatsman
	noKeeper := base - cfg.RoleBonus[domain.RoleWicketKeeper] + cfg.RoleBonus[domain.RoleBatsman]
	assert.InDelta(t, noKeeper+cfg.BalanceBonus-cfg.WicketKeeperPenalty, scoreXI(sel, byID, cfg), 1e-9)
	byID[5].Role = domain.RoleWicketKeeper

	// Turn two bowlers into batsmen: 4 bowling-capable left, one short of the
	// minimum five, so a single missing-bowler penalty.
	byID[10].Role = domain.RoleBatsman
	byID[11].Role = domain.RoleBatsman
	fewBowlers := base - 2*cfg.RoleBonus[domain.RoleBowler] + 2*cfg.RoleBonus[domain.RoleBatsman]
	assert.InDelta(t, fewBowlers+cfg.BalanceBonus-cfg.MissingBowlerPenalty, scoreXI(sel, byID, cfg), 1e-9)
}

func TestLeaderboardExcludesEliminatedAndNonSubmitting(t *testing.T) {
	cfg := DefaultScoringConfig()
	roles := []domain.Role{domain.RoleBatsman, domain.RoleBowler, domain.RoleAllRounder, domain.RoleWicketKeeper}

	qualified, byID1 := fixture(domain.TeamCSK, 0, 18, roles, []string{"India"})
	qualified.XI = &domain.XISubmission{PlayerIDs: ids(qualified, 11), SubmittedAt: time.Now()}

	eliminated, byID2 := fixture(domain.TeamMI, 100, 15, roles, []string{"India"})

	silent, byID3 := fixture(domain.TeamRCB, 200, 18, roles, []string{"India"})

	byID := map[int]*domain.Player{}
	for _, m := range []map[int]*domain.Player{byID1, byID2, byID3} {
		for id, p := range m {
			byID[id] = p
		}
	}

	rows := computeLeaderboard([]*domain.Team{qualified, eliminated, silent}, byID, cfg)
	require.Len(t, rows, 1)
	assert.Equal(t, "CSK", rows[0].Team)
}

func TestLeaderboardOrderingAndTieBreak(t *testing.T) {
	cfg := DefaultScoringConfig()
	roles := []domain.Role{domain.RoleBatsman, domain.RoleBowler, domain.RoleAllRounder, domain.RoleWicketKeeper}

	early, byID1 := fixture(domain.TeamCSK, 0, 18, roles, []string{"India"})
	late, byID2 := fixture(domain.TeamMI, 100, 18, roles, []string{"India"})

	t0 := time.Now()
	early.XI = &domain.XISubmission{PlayerIDs: ids(early, 11), SubmittedAt: t0}
	late.XI = &domain.XISubmission{PlayerIDs: ids(late, 11), SubmittedAt: t0.Add(time.Minute)}

	byID := map[int]*domain.Player{}
	for _, m := range []map[int]*domain.Player{byID1, byID2} {
		for id, p := range m {
			byID[id] = p
		}
	}

	// Identical rosters score identically; the earlier submission ranks first.
	rows := computeLeaderboard([]*domain.Team{late, early}, byID, cfg)
	require.Len(t, rows, 2)
	assert.Equal(t, "CSK", rows[0].Team)
	assert.Equal(t, "MI", rows[1].Team)
	assert.Equal(t, rows[0].Score, rows[1].Score)

	// A stronger squad outranks submission order.
	for _, op := range late.Players[:11] {
		byID[op.PlayerID].Potential = 95
	}
	rows = computeLeaderboard([]*domain.Team{late, early}, byID, cfg)
	require.Len(t, rows, 2)
	assert.Equal(t, "MI", rows[0].Team)
	assert.Greater(t, rows[0].Score, rows[1].Score)
}
