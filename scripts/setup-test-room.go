// Dev helper: seeds a running server with a room, a few teams and an
// opening bid so the client has something to render.
//
//	go run scripts/setup-test-room.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const apiBase = "http://localhost:8080/api"

func post(path string, body map[string]any) (map[string]any, error) {
	payload, _ := json.Marshal(body)
	resp, err := http.Post(apiBase+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("POST %s: %s: %s", path, resp.Status, raw)
	}
	var out map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func getState(code string) (map[string]any, error) {
	resp, err := http.Get(fmt.Sprintf("%s/room-state/%s", apiBase, code))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func main() {
	created, err := post("/create-room", map[string]any{
		"host_name": "Rohit", "team": "MI", "is_public": true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	code := created["code"].(string)
	fmt.Printf("room created: %s\n", code)

	for _, join := range []map[string]any{
		{"code": code, "username": "Dhoni", "team": "CSK"},
		{"code": code, "username": "Kohli", "team": "RCB"},
		{"code": code, "username": "Shreyas", "team": "KKR"},
	} {
		if _, err := post("/join-room", join); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s joined as %s\n", join["username"], join["team"])
	}

	if _, err := post("/start-auction", map[string]any{"code": code, "team": "MI"}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("auction started")

	state, err := getState(code)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	player, _ := state["current_player"].(map[string]any)
	if player == nil {
		fmt.Println("no current player; done")
		return
	}
	base := int(player["base_price"].(float64))
	if _, err := post("/place-bid", map[string]any{"code": code, "team": "CSK", "amount": base}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("CSK opened the bidding on %s at %d lakhs\n", player["name"], base)
	fmt.Printf("\nroom code: %s\n", code)
}
