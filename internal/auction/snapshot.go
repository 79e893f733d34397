package auction

import "github.com/neonauction/auction-server/internal/domain"

// PlayerView is the current-player block of a room snapshot.
type PlayerView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Country   string `json:"country"`
	BasePrice int    `json:"base_price"`
	Age       int    `json:"age"`
	Hand      string `json:"hand"`
	Bowling   string `json:"bowling"`
}

// StateSnapshot is the point-in-time room view served to polling clients.
// Monetary fields are lakhs except UserBudget, which is crores.
type StateSnapshot struct {
	Timer             int                `json:"timer"`
	DefaultTimer      int                `json:"default_timer"`
	IsPaused          bool               `json:"is_paused"`
	IsLive            bool               `json:"is_live"`
	Status            domain.RoomStatus  `json:"status"`
	PlayersJoined     int                `json:"players_joined"`
	TotalPlayersLimit int                `json:"total_players_limit"`
	CurrentBid        int                `json:"current_bid"`
	HighestBidder     *string            `json:"highest_bidder"`
	CurrentPlayer     *PlayerView        `json:"current_player"`
	SoldStatus        string             `json:"sold_status"`
	SoldPrice         int                `json:"sold_price"`
	SoldTeam          string             `json:"sold_team"`
	BidIncrement      int                `json:"bid_increment"`
	UserBudget        *float64           `json:"user_budget"`
}

// OwnedView is one purchased player in a squad listing. Price is lakhs.
type OwnedView struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Country string `json:"country"`
	Price   int    `json:"price"`
}

// TeamSummary is one row of the all-squads summary. BudgetRemaining is crores.
type TeamSummary struct {
	Team            string      `json:"team"`
	Username        string      `json:"username"`
	PlayersCount    int         `json:"players_count"`
	BudgetRemaining float64     `json:"budget_remaining"`
	Players         []OwnedView `json:"players"`
}

type UnsoldView struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	BasePrice int    `json:"base_price"`
	Status    string `json:"status"`
}

type UpcomingView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Country   string `json:"country"`
	BasePrice int    `json:"base_price"`
	SetNo     int    `json:"set_no"`
}

type QualificationView struct {
	Team   string `json:"team"`
	Status string `json:"status"` // QUALIFIED | ELIMINATED
}

// RoomSummary is one row of the public room listing.
type RoomSummary struct {
	Code        string            `json:"code"`
	Status      domain.RoomStatus `json:"status"`
	Host        string            `json:"host"`
	HostTeam    string            `json:"host_team"`
	PlayerCount int               `json:"player_count"`
}
