package domain

type RoomStatus string

const (
	RoomStatusWaiting   RoomStatus = "WAITING"
	RoomStatusLive      RoomStatus = "LIVE"
	RoomStatusSelection RoomStatus = "SELECTION"
	RoomStatusCompleted RoomStatus = "COMPLETED"
)

// Auction rules. Money is always stored in lakhs (1 Cr = 100 lakhs).
const (
	DefaultBudgetLakhs  = 12000 // 120 Cr purse per team
	DefaultBidIncrement = 20
	DefaultTimerSeconds = 15

	SquadCap      = 25
	OverseasCap   = 8
	MinSquadSize  = 18
	XISize        = 11
	XIOverseasCap = 4

	MaxTeamsPerRoom = 10
	RoomCodeLength  = 6
)

// LakhsToCr converts an amount in lakhs to crores for display-facing fields.
func LakhsToCr(lakhs int) float64 {
	return float64(lakhs) / 100.0
}
