package domain

import "time"

type TeamTag string

const (
	TeamCSK  TeamTag = "CSK"
	TeamMI   TeamTag = "MI"
	TeamRCB  TeamTag = "RCB"
	TeamKKR  TeamTag = "KKR"
	TeamGT   TeamTag = "GT"
	TeamLSG  TeamTag = "LSG"
	TeamRR   TeamTag = "RR"
	TeamSRH  TeamTag = "SRH"
	TeamDC   TeamTag = "DC"
	TeamPBKS TeamTag = "PBKS"
)

var AllTeamTags = []TeamTag{
	TeamCSK, TeamMI, TeamRCB, TeamKKR, TeamGT,
	TeamLSG, TeamRR, TeamSRH, TeamDC, TeamPBKS,
}

func ValidTeamTag(tag TeamTag) bool {
	for _, t := range AllTeamTags {
		if t == tag {
			return true
		}
	}
	return false
}

// OwnedPlayer records a purchase: the pool player id and the winning price in lakhs.
type OwnedPlayer struct {
	PlayerID int
	Price    int
}

// XISubmission is a team's post-auction playing XI. Immutable once set.
type XISubmission struct {
	PlayerIDs   []int
	SubmittedAt time.Time
}

type Team struct {
	Tag         TeamTag
	Manager     string
	BudgetLakhs int
	IsHost      bool
	Players     []OwnedPlayer
	XI          *XISubmission
}

// OverseasCount counts overseas players on the roster, resolving pool
// players through the supplied lookup.
func (t *Team) OverseasCount(byID map[int]*Player) int {
	n := 0
	for _, op := range t.Players {
		if p, ok := byID[op.PlayerID]; ok && p.IsOverseas() {
			n++
		}
	}
	return n
}

// Owns reports whether the team purchased the given pool player.
func (t *Team) Owns(playerID int) bool {
	for _, op := range t.Players {
		if op.PlayerID == playerID {
			return true
		}
	}
	return false
}

// Qualified reports whether the team reached the minimum squad size.
func (t *Team) Qualified() bool {
	return len(t.Players) >= MinSquadSize
}
