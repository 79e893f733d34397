package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/neonauction/auction-server/internal/auction"
	"github.com/neonauction/auction-server/internal/domain"
)

// SquadHandler serves the roster and pool views.
type SquadHandler struct {
	store *auction.Store
}

func NewSquadHandler(store *auction.Store) *SquadHandler {
	return &SquadHandler{store: store}
}

func (h *SquadHandler) room(w http.ResponseWriter, r *http.Request) (*auction.Room, bool) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	room, err := h.store.Get(code)
	if err != nil {
		writeDomainError(w, r, err)
		return nil, false
	}
	return room, true
}

func (h *SquadHandler) MyTeam(w http.ResponseWriter, r *http.Request) {
	room, ok := h.room(w, r)
	if !ok {
		return
	}
	tag := domain.TeamTag(strings.ToUpper(chi.URLParam(r, "team")))
	summary, err := room.MyTeam(tag)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary.Players)
}

func (h *SquadHandler) Summary(w http.ResponseWriter, r *http.Request) {
	room, ok := h.room(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, room.Summary())
}

func (h *SquadHandler) UnsoldPlayers(w http.ResponseWriter, r *http.Request) {
	room, ok := h.room(w, r)
	if !ok {
		return
	}
	players := room.UnsoldPlayers()
	if players == nil {
		players = []auction.UnsoldView{}
	}
	writeJSON(w, http.StatusOK, players)
}

func (h *SquadHandler) UpcomingPlayers(w http.ResponseWriter, r *http.Request) {
	room, ok := h.room(w, r)
	if !ok {
		return
	}
	players := room.UpcomingPlayers()
	if players == nil {
		players = []auction.UpcomingView{}
	}
	writeJSON(w, http.StatusOK, players)
}
