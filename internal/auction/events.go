package auction

import "time"

type EventType string

const (
	EventTeamJoined     EventType = "team_joined"
	EventAuctionStarted EventType = "auction_started"
	EventAuctionPaused  EventType = "auction_paused"
	EventAuctionResumed EventType = "auction_resumed"
	EventAuctionEnded   EventType = "auction_ended"
	EventPlayerUp       EventType = "player_up"
	EventBidPlaced      EventType = "bid_placed"
	EventPlayerSold     EventType = "player_sold"
	EventPlayerUnsold   EventType = "player_unsold"
	EventPlayerSkipped  EventType = "player_skipped"
	EventXISubmitted    EventType = "xi_submitted"
	EventRoomCompleted  EventType = "room_completed"
	EventChatMessage    EventType = "chat_message"
)

// Event mirrors a room log entry for push delivery. Polling the log remains
// the authoritative way to observe a room; events are best-effort.
type Event struct {
	Type    EventType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// EventSink receives room events. Implementations must not block: the sink
// is invoked while the room lock is held.
type EventSink interface {
	Publish(code string, ev Event)
}
