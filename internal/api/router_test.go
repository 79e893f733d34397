package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonauction/auction-server/internal/testutil"
)

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createRoom(t *testing.T, ts *testutil.TestServer) string {
	t.Helper()
	resp := postJSON(t, ts.APIURL("/create-room"), map[string]any{
		"host_name": "Rohit",
		"team":      "MI",
		"is_public": false,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Code string `json:"code"`
	}
	decode(t, resp, &created)
	require.Len(t, created.Code, 6)
	return created.Code
}

func TestCreateAndJoinRoom(t *testing.T) {
	ts := testutil.NewTestServer(t)
	code := createRoom(t, ts)

	resp := postJSON(t, ts.APIURL("/join-room"), map[string]any{
		"code":     code,
		"username": "Dhoni",
		"team":     "CSK",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Same tag again conflicts.
	resp = postJSON(t, ts.APIURL("/join-room"), map[string]any{
		"code":     code,
		"username": "Copycat",
		"team":     "CSK",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Unknown room.
	resp = postJSON(t, ts.APIURL("/join-room"), map[string]any{
		"code":     "ZZZZZZ",
		"username": "Lost",
		"team":     "RCB",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoomStateEndpoint(t *testing.T) {
	ts := testutil.NewTestServer(t)
	code := createRoom(t, ts)

	var state struct {
		Status        string   `json:"status"`
		PlayersJoined int      `json:"players_joined"`
		IsLive        bool     `json:"is_live"`
		UserBudget    *float64 `json:"user_budget"`
	}
	// Trailing slash must work; the client sends Django-style paths.
	resp := getJSON(t, ts.APIURL(fmt.Sprintf("/room-state/%s/?team=MI", code)), &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "WAITING", state.Status)
	assert.Equal(t, 1, state.PlayersJoined)
	assert.False(t, state.IsLive)
	require.NotNil(t, state.UserBudget)
	assert.InDelta(t, 120.0, *state.UserBudget, 1e-9)

	resp = getJSON(t, ts.APIURL("/room-state/NOPE42"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHostGatedControls(t *testing.T) {
	ts := testutil.NewTestServer(t)
	code := createRoom(t, ts)
	resp := postJSON(t, ts.APIURL("/join-room"), map[string]any{
		"code": code, "username": "Dhoni", "team": "CSK",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Non-host cannot start.
	resp = postJSON(t, ts.APIURL("/start-auction"), map[string]any{"code": code, "team": "CSK"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = postJSON(t, ts.APIURL("/start-auction"), map[string]any{"code": code, "team": "MI"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var state struct {
		IsLive     bool `json:"is_live"`
		CurrentBid int  `json:"current_bid"`
		Timer      int  `json:"timer"`
	}
	getJSON(t, ts.APIURL(fmt.Sprintf("/room-state/%s?team=MI", code)), &state)
	assert.True(t, state.IsLive)
	assert.Equal(t, 15, state.Timer)
}

func TestBiddingOverHTTP(t *testing.T) {
	ts := testutil.NewTestServer(t)
	code := createRoom(t, ts)
	postJSON(t, ts.APIURL("/join-room"), map[string]any{"code": code, "username": "Dhoni", "team": "CSK"})
	postJSON(t, ts.APIURL("/start-auction"), map[string]any{"code": code, "team": "MI"})

	var state struct {
		CurrentPlayer struct {
			BasePrice int `json:"base_price"`
		} `json:"current_player"`
		BidIncrement int `json:"bid_increment"`
	}
	getJSON(t, ts.APIURL(fmt.Sprintf("/room-state/%s", code)), &state)
	base := state.CurrentPlayer.BasePrice
	require.Positive(t, base)

	resp := postJSON(t, ts.APIURL("/place-bid"), map[string]any{"code": code, "team": "CSK", "amount": base})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Stale amount conflicts so the client resyncs.
	resp = postJSON(t, ts.APIURL("/place-bid"), map[string]any{"code": code, "team": "MI", "amount": base})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = postJSON(t, ts.APIURL("/place-bid"), map[string]any{"code": code, "team": "MI", "amount": base + state.BidIncrement})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var after struct {
		CurrentBid    int     `json:"current_bid"`
		HighestBidder *string `json:"highest_bidder"`
	}
	getJSON(t, ts.APIURL(fmt.Sprintf("/room-state/%s", code)), &after)
	assert.Equal(t, base+state.BidIncrement, after.CurrentBid)
	require.NotNil(t, after.HighestBidder)
	assert.Equal(t, "MI", *after.HighestBidder)
}

func TestWinnerPendingAndChat(t *testing.T) {
	ts := testutil.NewTestServer(t)
	code := createRoom(t, ts)

	resp := getJSON(t, ts.APIURL(fmt.Sprintf("/winner/%s", code)), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = postJSON(t, ts.APIURL("/send-message"), map[string]any{
		"code": code, "sender": "Rohit", "message": "good luck",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var msgs []struct {
		Sender  string `json:"sender"`
		Message string `json:"message"`
	}
	getJSON(t, ts.APIURL(fmt.Sprintf("/chat/%s", code)), &msgs)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Rohit", msgs[0].Sender)
	assert.Equal(t, "good luck", msgs[0].Message)

	var logs []struct {
		Message string `json:"message"`
	}
	getJSON(t, ts.APIURL(fmt.Sprintf("/logs/%s", code)), &logs)
	assert.NotEmpty(t, logs)
}

func TestPublicRoomListing(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.APIURL("/create-room"), map[string]any{
		"host_name": "Rohit", "team": "MI", "is_public": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	createRoom(t, ts) // private, should not appear

	var rooms []struct {
		Code     string `json:"code"`
		Status   string `json:"status"`
		HostTeam string `json:"host_team"`
	}
	getJSON(t, ts.APIURL("/rooms"), &rooms)
	require.Len(t, rooms, 1)
	assert.Equal(t, "WAITING", rooms[0].Status)
	assert.Equal(t, "MI", rooms[0].HostTeam)
}
