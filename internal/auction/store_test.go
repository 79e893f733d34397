package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonauction/auction-server/internal/domain"
)

func TestCreateRoomCodes(t *testing.T) {
	store, _ := testStore(t)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		room, err := store.CreateRoom("Host", domain.TeamMI, false)
		require.NoError(t, err)
		assert.Len(t, room.Code(), domain.RoomCodeLength)
		assert.False(t, seen[room.Code()], "duplicate code %s", room.Code())
		seen[room.Code()] = true
	}
	assert.Equal(t, 20, store.Len())
}

func TestCreateRoomRejectsBadTag(t *testing.T) {
	store, _ := testStore(t)
	_, err := store.CreateRoom("Host", domain.TeamTag("NOPE"), false)
	assert.ErrorIs(t, err, domain.ErrInvalidTeam)
}

func TestGetUnknownRoom(t *testing.T) {
	store, _ := testStore(t)
	_, err := store.Get("ZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestJoinRoomThroughStore(t *testing.T) {
	store, _ := testStore(t)
	room, err := store.CreateRoom("Host", domain.TeamMI, false)
	require.NoError(t, err)

	joined, err := store.JoinRoom(room.Code(), "Dhoni", domain.TeamCSK)
	require.NoError(t, err)
	assert.Same(t, room, joined)

	_, err = store.JoinRoom(room.Code(), "Copycat", domain.TeamCSK)
	assert.ErrorIs(t, err, domain.ErrTeamTaken)

	_, err = store.JoinRoom("AAAAAA", "Lost", domain.TeamRCB)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestListPublicRooms(t *testing.T) {
	store, _ := testStore(t)
	public, err := store.CreateRoom("Host", domain.TeamMI, true)
	require.NoError(t, err)
	_, err = store.CreateRoom("Hidden", domain.TeamCSK, false)
	require.NoError(t, err)

	rooms := store.ListPublic()
	require.Len(t, rooms, 1)
	assert.Equal(t, public.Code(), rooms[0].Code)
	assert.Equal(t, "Host", rooms[0].Host)
	assert.Equal(t, "MI", rooms[0].HostTeam)
	assert.Equal(t, 1, rooms[0].PlayerCount)

	// Completed rooms fall out of the listing.
	require.NoError(t, public.End(domain.TeamMI))
	assert.Empty(t, store.ListPublic())
}

func TestSweepReapsIdleRooms(t *testing.T) {
	store, clock := testStore(t)
	room, err := store.CreateRoom("Host", domain.TeamMI, false)
	require.NoError(t, err)

	assert.Zero(t, store.Sweep())

	clock.Advance(time.Hour)
	// Activity within the TTL keeps the room alive.
	room.Snapshot("")
	clock.Advance(90 * time.Minute)
	assert.Zero(t, store.Sweep())

	clock.Advance(time.Hour)
	assert.Equal(t, 1, store.Sweep())
	_, err = store.Get(room.Code())
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}
