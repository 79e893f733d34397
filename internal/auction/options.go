package auction

import (
	"time"

	"github.com/neonauction/auction-server/internal/domain"
)

// Options carries the per-store auction tunables. Rooms copy the values they
// need at creation, so changing Options later never affects live rooms.
type Options struct {
	DefaultTimerSeconds int
	BidIncrementLakhs   int
	BudgetLakhs         int

	// ResolveDelay is the display window between a player resolving and the
	// next player coming up, so polling clients can render the SOLD/UNSOLD
	// banner before the state resets.
	ResolveDelay time.Duration

	// AntiSnipe, when non-zero, stretches the countdown back to this value
	// if a bid lands with less time remaining. Zero disables it; a plain
	// countdown with no extension is the default behavior.
	AntiSnipe time.Duration

	// SelectionTimeout force-completes a room stuck in SELECTION, since an
	// eliminated team never submits an XI.
	SelectionTimeout time.Duration

	// IdleTTL is how long a room may go without any reads or writes before
	// the janitor tears it down.
	IdleTTL time.Duration

	Scoring ScoringConfig
}

func DefaultOptions() Options {
	return Options{
		DefaultTimerSeconds: domain.DefaultTimerSeconds,
		BidIncrementLakhs:   domain.DefaultBidIncrement,
		BudgetLakhs:         domain.DefaultBudgetLakhs,
		ResolveDelay:        4 * time.Second,
		AntiSnipe:           0,
		SelectionTimeout:    10 * time.Minute,
		IdleTTL:             2 * time.Hour,
		Scoring:             DefaultScoringConfig(),
	}
}
