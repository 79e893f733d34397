package domain

import "errors"

// Room and membership errors
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrTeamNotFound = errors.New("team not found in this room")
	ErrTeamTaken    = errors.New("team is already taken")
	ErrRoomFull     = errors.New("room is full")
	ErrInvalidTeam  = errors.New("unknown team tag")
	ErrForbidden    = errors.New("only the host can perform this action")
	ErrInvalidState = errors.New("action is not allowed in the current room state")
)

// Bidding errors
var (
	ErrNotAcceptingBids     = errors.New("bidding is not open")
	ErrAlreadyLeading       = errors.New("you are already the highest bidder")
	ErrStaleBid             = errors.New("bid amount is out of date, refresh and try again")
	ErrInsufficientBudget   = errors.New("insufficient budget")
	ErrSquadFull            = errors.New("squad limit reached")
	ErrOverseasLimitReached = errors.New("overseas player limit reached")
)

// Selection and scoring errors
var (
	ErrNotQualified     = errors.New("team is eliminated and cannot submit a playing XI")
	ErrAlreadySubmitted = errors.New("playing XI already submitted")
	ErrInvalidSelection = errors.New("invalid playing XI selection")
	ErrResultsNotReady  = errors.New("results are not available yet")
)
