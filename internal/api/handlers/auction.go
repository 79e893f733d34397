package handlers

import (
	"net/http"
	"strings"

	"github.com/neonauction/auction-server/internal/auction"
	"github.com/neonauction/auction-server/internal/domain"
)

// AuctionHandler carries the bid endpoint and the host controls.
type AuctionHandler struct {
	store *auction.Store
}

func NewAuctionHandler(store *auction.Store) *AuctionHandler {
	return &AuctionHandler{store: store}
}

type PlaceBidRequest struct {
	Code   string `json:"code"`
	Team   string `json:"team"`
	Amount int    `json:"amount"`
}

func (h *AuctionHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	var req PlaceBidRequest
	if !decodeBody(w, r, &req) {
		return
	}
	room, err := h.store.Get(strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := room.PlaceBid(domain.TeamTag(strings.ToUpper(req.Team)), req.Amount); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{})
}

// ControlRequest is the shared body of the host-gated control posts.
type ControlRequest struct {
	Code string `json:"code"`
	Team string `json:"team"`
}

// control decodes the shared body, resolves the room and runs fn as the
// acting team. The room itself enforces the host check.
func (h *AuctionHandler) control(w http.ResponseWriter, r *http.Request, fn func(room *auction.Room, tag domain.TeamTag) error) {
	var req ControlRequest
	if !decodeBody(w, r, &req) {
		return
	}
	room, err := h.store.Get(strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := fn(room, domain.TeamTag(strings.ToUpper(req.Team))); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (h *AuctionHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.control(w, r, func(room *auction.Room, tag domain.TeamTag) error {
		return room.Start(tag)
	})
}

// Pause toggles: a paused room resumes, a running room pauses.
func (h *AuctionHandler) Pause(w http.ResponseWriter, r *http.Request) {
	var req ControlRequest
	if !decodeBody(w, r, &req) {
		return
	}
	room, err := h.store.Get(strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	paused, err := room.TogglePause(domain.TeamTag(strings.ToUpper(req.Team)))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_paused": paused})
}

func (h *AuctionHandler) Skip(w http.ResponseWriter, r *http.Request) {
	h.control(w, r, func(room *auction.Room, tag domain.TeamTag) error {
		return room.Skip(tag)
	})
}

func (h *AuctionHandler) End(w http.ResponseWriter, r *http.Request) {
	h.control(w, r, func(room *auction.Room, tag domain.TeamTag) error {
		return room.End(tag)
	})
}

type UpdateSettingsRequest struct {
	Code          string `json:"code"`
	Team          string `json:"team"`
	TimerDuration int    `json:"timer_duration"`
}

func (h *AuctionHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	room, err := h.store.Get(strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := room.UpdateSettings(domain.TeamTag(strings.ToUpper(req.Team)), req.TimerDuration); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{})
}
