package domain

import "strings"

type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-Rounder"
	RoleWicketKeeper Role = "Wicket-Keeper"
)

// NormalizeRole maps free-text role strings onto the closed Role set.
// Matching is case-insensitive and ignores spaces and hyphens, so
// "wicketkeeper", "WK" and "Wicket Keeper" all normalize the same way.
func NormalizeRole(s string) (Role, bool) {
	key := strings.ToLower(s)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	switch key {
	case "batsman", "batter":
		return RoleBatsman, true
	case "bowler":
		return RoleBowler, true
	case "allrounder":
		return RoleAllRounder, true
	case "wicketkeeper", "wk", "keeper", "wicketkeeperbatsman":
		return RoleWicketKeeper, true
	}
	return "", false
}

// BattingCapable is used for squad-balance scoring.
func (r Role) BattingCapable() bool {
	return r == RoleBatsman || r == RoleAllRounder || r == RoleWicketKeeper
}

// BowlingCapable is used for squad-balance scoring and the bowler penalty.
func (r Role) BowlingCapable() bool {
	return r == RoleBowler || r == RoleAllRounder
}

const hostNation = "India"

type PlayerStatus string

const (
	PlayerStatusPending PlayerStatus = "PENDING"
	PlayerStatusSold    PlayerStatus = "SOLD"
	PlayerStatusUnsold  PlayerStatus = "UNSOLD"
	PlayerStatusSkipped PlayerStatus = "SKIPPED"
)

// Player is one auction pool item. Created at room setup, never deleted;
// Status, SoldPrice and SoldTo mutate as the auction progresses.
type Player struct {
	ID           int
	Name         string
	Role         Role
	Country      string
	BasePrice    int // lakhs
	Age          int
	BattingHand  string
	BowlingStyle string
	SetNo        int
	Potential    int // 1-100, drives the power index

	Status    PlayerStatus
	SoldPrice int
	SoldTo    TeamTag
}

func (p *Player) IsOverseas() bool {
	return !strings.EqualFold(strings.TrimSpace(p.Country), hostNation)
}

func (p *Player) Resolved() bool {
	return p.Status != PlayerStatusPending
}
