package auction

import (
	"context"
	"crypto/rand"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/neonauction/auction-server/internal/domain"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ123456789"

// Store is the in-process room registry. Rooms live entirely in memory and
// are reaped by the janitor once idle past the TTL or completed.
type Store struct {
	opts   Options
	clock  clockwork.Clock
	events EventSink
	log    zerolog.Logger

	// onCompleted is handed to every room; used to archive final results.
	onCompleted func(FinalResult)

	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewStore(opts Options, clock clockwork.Clock, events EventSink, onCompleted func(FinalResult), log zerolog.Logger) *Store {
	return &Store{
		opts:        opts,
		clock:       clock,
		events:      events,
		log:         log,
		onCompleted: onCompleted,
		rooms:       make(map[string]*Room),
	}
}

// CreateRoom allocates a fresh room with the creator as host.
func (s *Store) CreateRoom(hostName string, tag domain.TeamTag, public bool) (*Room, error) {
	if !domain.ValidTeamTag(tag) {
		return nil, domain.ErrInvalidTeam
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	code, err := s.newCodeLocked()
	if err != nil {
		return nil, err
	}
	room := newRoom(code, public, hostName, tag, s.opts, s.clock, s.events, s.onCompleted)
	s.rooms[code] = room
	s.log.Info().Str("code", code).Str("host", hostName).Str("team", string(tag)).Bool("public", public).Msg("room created")
	return room, nil
}

func (s *Store) newCodeLocked() (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		buf := make([]byte, domain.RoomCodeLength)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate room code: %w", err)
		}
		for i, b := range buf {
			buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
		}
		code := string(buf)
		if _, exists := s.rooms[code]; !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("generate room code: exhausted attempts")
}

// Get looks up a room by code.
func (s *Store) Get(code string) (*Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

// JoinRoom resolves the code and joins the team in one step.
func (s *Store) JoinRoom(code string, manager string, tag domain.TeamTag) (*Room, error) {
	room, err := s.Get(code)
	if err != nil {
		return nil, err
	}
	if err := room.Join(manager, tag); err != nil {
		return nil, err
	}
	return room, nil
}

// ListPublic returns joinable public rooms, newest code last for a stable
// listing order.
func (s *Store) ListPublic() []RoomSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []RoomSummary
	for _, room := range s.rooms {
		if !room.isPublic() {
			continue
		}
		sum := room.PublicSummary()
		if sum.Status != domain.RoomStatusWaiting && sum.Status != domain.RoomStatusLive {
			continue
		}
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Sweep removes rooms idle past the TTL, plus completed rooms idle past a
// short grace so clients can fetch the winner screen first. Returns the
// number of rooms reaped.
func (s *Store) Sweep() int {
	now := s.clock.Now()
	s.mu.Lock()
	var reaped []*Room
	for code, room := range s.rooms {
		ttl := s.opts.IdleTTL
		if room.Status() == domain.RoomStatusCompleted {
			ttl = s.opts.IdleTTL / 4
		}
		if room.idleSince(now, ttl) {
			delete(s.rooms, code)
			reaped = append(reaped, room)
		}
	}
	s.mu.Unlock()
	for _, room := range reaped {
		room.stop()
		s.log.Info().Str("code", room.Code()).Msg("room reaped")
	}
	return len(reaped)
}

// StartJanitor runs periodic sweeps until ctx is done.
func (s *Store) StartJanitor(ctx context.Context, every time.Duration) {
	go func() {
		ticker := s.clock.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				s.Sweep()
			}
		}
	}()
}

// Len reports the number of live rooms.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}
