package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonauction/auction-server/internal/auction"
)

func testClient(hub *Hub, code string, buffer int) *Client {
	return &Client{hub: hub, code: code, send: make(chan []byte, buffer), log: zerolog.Nop()}
}

func TestPublishReachesSubscribers(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	c := testClient(hub, "AB12CD", 4)
	hub.register(c)

	ev := auction.Event{Type: auction.EventBidPlaced, Code: "AB12CD", Message: "CSK bid 200 lakhs", At: time.Now()}
	hub.Publish("AB12CD", ev)

	select {
	case payload := <-c.send:
		var got auction.Event
		require.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, auction.EventBidPlaced, got.Type)
		assert.Equal(t, "CSK bid 200 lakhs", got.Message)
	default:
		t.Fatal("no event delivered")
	}
}

func TestPublishScopedToRoom(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	a := testClient(hub, "ROOMAA", 4)
	b := testClient(hub, "ROOMBB", 4)
	hub.register(a)
	hub.register(b)

	hub.Publish("ROOMAA", auction.Event{Type: auction.EventPlayerUp, Code: "ROOMAA"})

	assert.Len(t, a.send, 1)
	assert.Empty(t, b.send)
}

func TestSlowSubscriberDropped(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	c := testClient(hub, "AB12CD", 1)
	hub.register(c)

	hub.Publish("AB12CD", auction.Event{Type: auction.EventPlayerUp})
	// Buffer full now; the next publish evicts the client.
	hub.Publish("AB12CD", auction.Event{Type: auction.EventBidPlaced})

	hub.mu.RLock()
	_, stillThere := hub.rooms["AB12CD"]
	hub.mu.RUnlock()
	assert.False(t, stillThere)

	// Channel was closed after draining the one buffered event.
	<-c.send
	_, open := <-c.send
	assert.False(t, open)
}

func TestUnregisterTwiceIsSafe(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	c := testClient(hub, "AB12CD", 1)
	hub.register(c)
	hub.unregister(c)
	hub.unregister(c)
}
